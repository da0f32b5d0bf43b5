package repository

// GraphQL queries against the public LeetCode API. Shapes follow the
// queries the leetcode.com frontend itself issues.
const (
	userProfileQuery = `
		query getUserProfile($username: String!) {
			matchedUser(username: $username) {
				username
				submitStats: submitStatsGlobal {
					acSubmissionNum {
						difficulty
						count
						submissions
					}
					totalSubmissionNum {
						difficulty
						count
						submissions
					}
				}
				profile {
					ranking
					reputation
					userAvatar
					realName
					aboutMe
					school
					countryName
					company
				}
			}
		}`

	skillStatsQuery = `
		query getTagProblemCounts($username: String!) {
			matchedUser(username: $username) {
				tagProblemCounts {
					advanced {
						tagName
						problemsSolved
					}
					intermediate {
						tagName
						problemsSolved
					}
					fundamental {
						tagName
						problemsSolved
					}
				}
			}
		}`

	calendarQuery = `
		query getUserCalendar($username: String!) {
			matchedUser(username: $username) {
				submissionCalendar
			}
		}`

	recentSubmissionsQuery = `
		query getRecentSubmissions($username: String!, $limit: Int!) {
			recentSubmissionList(username: $username, limit: $limit) {
				title
				titleSlug
				timestamp
				statusDisplay
				lang
			}
		}`

	languageStatsQuery = `
		query getLanguageStats($username: String!) {
			matchedUser(username: $username) {
				languageProblemCount {
					languageName
					problemsSolved
				}
			}
		}`

	badgesQuery = `
		query getUserBadges($username: String!) {
			matchedUser(username: $username) {
				badges {
					id
					displayName
					icon
					creationDate
				}
			}
		}`

	contestQuery = `
		query getUserContestRanking($username: String!) {
			userContestRanking(username: $username) {
				attendedContestsCount
				rating
				globalRanking
				totalParticipants
				topPercentage
				badge {
					name
				}
			}
			userContestRankingHistory(username: $username) {
				attended
				trendDirection
				problemsSolved
				totalProblems
				finishTimeInSeconds
				rating
				ranking
				contest {
					title
					startTime
				}
			}
		}`

	problemListQuery = `
		query problemsetQuestionList($categorySlug: String, $limit: Int, $skip: Int, $filters: QuestionListFilterInput) {
			problemsetQuestionList: questionList(
				categorySlug: $categorySlug
				limit: $limit
				skip: $skip
				filters: $filters
			) {
				questions: data {
					title
					titleSlug
					difficulty
					acRate
					likes
					dislikes
					topicTags {
						name
					}
				}
			}
		}`
)
