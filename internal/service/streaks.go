package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/leetguide/backend/internal/models"
)

// Calendar arithmetic is done entirely in UTC: upstream keys are UNIX day
// timestamps, and truncating them against a local clock would shift day
// boundaries near midnight. Every function takes "today" as a parameter so
// results are deterministic in tests.

const dateLayout = "2006-01-02"

// activityWindowDays is the fixed window for rolling activity metrics.
const activityWindowDays = 7

// dayUTC truncates a time to its UTC midnight.
func dayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeCalendarWindow converts a sparse submission calendar into a
// dense ascending sequence of exactly windowDays entries spanning
// [today-(windowDays-1), today]. Days absent from the calendar yield a
// zero count.
func NormalizeCalendarWindow(calendar models.SubmissionCalendar, windowDays int, today time.Time) []models.CalendarDay {
	if windowDays <= 0 {
		return []models.CalendarDay{}
	}

	counts := make(map[time.Time]int, len(calendar))
	for ts, count := range calendar {
		if count < 0 {
			continue
		}
		counts[dayUTC(time.Unix(ts, 0))] += count
	}

	start := dayUTC(today).AddDate(0, 0, -(windowDays - 1))
	window := make([]models.CalendarDay, 0, windowDays)
	for i := 0; i < windowDays; i++ {
		day := start.AddDate(0, 0, i)
		window = append(window, models.CalendarDay{
			Date:  day.Format(dateLayout),
			Count: counts[day],
		})
	}
	return window
}

// ComputeStreaks derives current streak, longest streak and total active
// days from a sparse submission calendar. All provided entries are
// considered, not just a fixed window.
//
// The current streak is anchored at today, or at yesterday when today has
// no activity yet; that one-day grace applies only at the start of the
// backward walk, never at later gaps.
func ComputeStreaks(calendar models.SubmissionCalendar, today time.Time) models.StreakSummary {
	active := make(map[time.Time]bool, len(calendar))
	for ts, count := range calendar {
		if count > 0 {
			active[dayUTC(time.Unix(ts, 0))] = true
		}
	}
	if len(active) == 0 {
		return models.StreakSummary{}
	}

	// Current streak: walk backward one day at a time from the anchor.
	cursor := dayUTC(today)
	if !active[cursor] {
		cursor = cursor.AddDate(0, 0, -1)
	}
	current := 0
	for active[cursor] {
		current++
		cursor = cursor.AddDate(0, 0, -1)
	}

	// Longest streak: run lengths over the descending-sorted active dates.
	dates := make([]time.Time, 0, len(active))
	for day := range active {
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(dates); i++ {
		if dates[i-1].Sub(dates[i]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// The current run is itself a candidate for longest.
	if current > longest {
		longest = current
	}

	return models.StreakSummary{
		CurrentStreak:   current,
		LongestStreak:   longest,
		TotalActiveDays: len(dates),
	}
}

// ComputeActivity sums submissions over the fixed 7-day window ending
// today (inclusive) and reports the rolling average per day. The divisor
// is always 7, so inactive days depress the average instead of being
// excluded. When the calendar is entirely empty the all-time average
// totalSolved/totalActiveDays is used if both are positive, else "0".
func ComputeActivity(calendar models.SubmissionCalendar, today time.Time, totalSolved, totalActiveDays int) models.ActivitySummary {
	if len(calendar) == 0 {
		average := "0"
		if totalSolved > 0 && totalActiveDays > 0 {
			average = formatDecimal(float64(totalSolved) / float64(totalActiveDays))
		}
		return models.ActivitySummary{AveragePerDay: average}
	}

	start := dayUTC(today).AddDate(0, 0, -(activityWindowDays - 1))
	end := dayUTC(today)

	sum := 0
	activeDays := 0
	for ts, count := range calendar {
		day := dayUTC(time.Unix(ts, 0))
		if day.Before(start) || day.After(end) {
			continue
		}
		if count > 0 {
			sum += count
			activeDays++
		}
	}

	return models.ActivitySummary{
		AveragePerDay:        formatDecimal(float64(sum) / activityWindowDays),
		Past7DaysSubmissions: sum,
		Past7DaysActiveDays:  activeDays,
	}
}

// formatDecimal renders a value with one decimal place, e.g. "4.3".
func formatDecimal(v float64) string {
	return fmt.Sprintf("%.1f", v)
}
