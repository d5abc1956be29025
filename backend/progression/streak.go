package progression

import "sort"

// StreakResult summarizes consecutive-day activity, derived fresh from the
// full history on every call.
type StreakResult struct {
	CurrentStreak int   `json:"current_streak"`
	LongestStreak int   `json:"longest_streak"`
	LastEntryDate *Date `json:"last_entry_date"`
}

// CalculateStreak walks the history from the most recent entry backwards.
//
// The current streak only counts when its newest entry is dated today or
// yesterday: an entry for yesterday with nothing logged today still keeps the
// streak alive (one-day grace period), while anything older means the streak
// is broken. The longest streak considers every consecutive run in the
// history, including runs that never reach today.
func CalculateStreak(history []Entry, today Date) StreakResult {
	if len(history) == 0 {
		return StreakResult{}
	}

	sorted := make([]Entry, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})

	lastEntryDate := sorted[0].Date

	currentStreak := 0
	yesterday := today.AddDays(-1)
	anchored := lastEntryDate.Equal(today) || lastEntryDate.Equal(yesterday)

	longestStreak := 0
	run := 0
	for i, entry := range sorted {
		if i == 0 || sorted[i-1].Date.AddDays(-1).Equal(entry.Date) {
			run++
		} else {
			run = 1
		}
		if run > longestStreak {
			longestStreak = run
		}
		// The first run is the only one that can be the current streak.
		if anchored && run == i+1 {
			currentStreak = run
		}
	}

	return StreakResult{
		CurrentStreak: currentStreak,
		LongestStreak: longestStreak,
		LastEntryDate: &lastEntryDate,
	}
}
