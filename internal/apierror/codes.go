package apierror

// Error type URIs following the urn:leetguide:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:leetguide:error:validation"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:leetguide:error:bad_request"

	// TypeUserNotFound indicates LeetCode has no matching user (404)
	TypeUserNotFound = "urn:leetguide:error:user_not_found"

	// TypeUpstreamUnavailable indicates the LeetCode API could not be
	// reached or returned a malformed response (503)
	TypeUpstreamUnavailable = "urn:leetguide:error:upstream_unavailable"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:leetguide:error:internal"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation          = "Validation Error"
	TitleBadRequest          = "Bad Request"
	TitleUserNotFound        = "User Not Found"
	TitleUpstreamUnavailable = "Upstream Unavailable"
	TitleInternal            = "Internal Server Error"
)
