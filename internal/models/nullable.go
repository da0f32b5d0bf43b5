package models

import "encoding/json"

// NullableString represents a string field that can distinguish between:
// - Field absent in JSON: Set=false, Valid=false, Value=""
// - Field present with null: Set=true, Valid=false, Value=""
// - Field present with value: Set=true, Valid=true, Value="the value"
//
// This is needed because Go's standard JSON unmarshaling treats both
// "field absent" and "field: null" as nil for pointer types.
type NullableString struct {
	Value string
	Valid bool // true if Value is not null
	Set   bool // true if field was present in JSON
}

// UnmarshalJSON implements custom JSON unmarshaling for NullableString.
// A non-string value marks the field invalid instead of failing, so one
// malformed upstream field never aborts decoding the whole payload.
func (ns *NullableString) UnmarshalJSON(data []byte) error {
	ns.Set = true

	if string(data) == "null" {
		ns.Valid = false
		ns.Value = ""
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		ns.Valid = false
		ns.Value = ""
		return nil
	}
	ns.Value = s
	ns.Valid = true
	return nil
}

// MarshalJSON implements custom JSON marshaling for NullableString.
func (ns NullableString) MarshalJSON() ([]byte, error) {
	if !ns.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ns.Value)
}

// Or returns the value, or def when the field was absent, null or malformed.
func (ns NullableString) Or(def string) string {
	if !ns.Valid {
		return def
	}
	return ns.Value
}

// NullableInt represents an integer field that can distinguish between
// absent, null, malformed and present-with-value, with the same semantics
// as NullableString.
type NullableInt struct {
	Value int
	Valid bool
	Set   bool
}

// UnmarshalJSON implements custom JSON unmarshaling for NullableInt.
// Non-numeric values (including numeric strings) mark the field invalid
// instead of failing.
func (ni *NullableInt) UnmarshalJSON(data []byte) error {
	ni.Set = true

	if string(data) == "null" {
		ni.Valid = false
		ni.Value = 0
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		ni.Valid = false
		ni.Value = 0
		return nil
	}
	ni.Value = n
	ni.Valid = true
	return nil
}

// MarshalJSON implements custom JSON marshaling for NullableInt.
func (ni NullableInt) MarshalJSON() ([]byte, error) {
	if !ni.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(ni.Value)
}

// Or returns the value, or def when the field was absent, null or malformed.
func (ni NullableInt) Or(def int) int {
	if !ni.Valid {
		return def
	}
	return ni.Value
}
