package achievements

import (
	"sort"

	"pushup365/backend/progression"
)

// Evaluate returns the keys of every achievement the history currently
// satisfies. It is stateless and recomputes the full qualifying set on each
// call; filtering out achievements a user already earned is the job of the
// award step in the caller, which checks the user_achievements table.
func Evaluate(history []progression.Entry, totalCount int, today progression.Date) []string {
	if len(history) == 0 {
		return nil
	}

	var keys []string
	keys = append(keys, checkMilestones(totalCount)...)
	keys = append(keys, checkStreaks(history, today)...)
	keys = append(keys, checkDaily(history, today)...)
	keys = append(keys, checkConsistency(history)...)
	keys = append(keys, checkRecovery(history)...)
	keys = append(keys, checkSpecial(history, totalCount)...)
	return keys
}

func checkMilestones(totalCount int) []string {
	var keys []string
	for _, a := range Catalog {
		if a.Category == CategoryMilestone && totalCount >= a.Requirement {
			keys = append(keys, a.Key)
		}
	}
	return keys
}

func checkStreaks(history []progression.Entry, today progression.Date) []string {
	current := progression.CalculateStreak(history, today).CurrentStreak

	var keys []string
	for _, a := range Catalog {
		if a.Category == CategoryStreak && current >= a.Requirement {
			keys = append(keys, a.Key)
		}
	}
	return keys
}

func checkDaily(history []progression.Entry, today progression.Date) []string {
	maxSingleDay := 0
	for _, e := range history {
		if e.Count > maxSingleDay {
			maxSingleDay = e.Count
		}
	}

	var keys []string
	for _, key := range []string{"daily_100", "daily_150", "daily_200"} {
		a, _ := ByKey(key)
		if maxSingleDay >= a.Requirement {
			keys = append(keys, key)
		}
	}

	base := progression.Default.BaseDailyTarget
	if hasPerfectRun(history, today, 7, base) {
		keys = append(keys, "perfect_week")
	}
	if hasPerfectRun(history, today, 30, base) {
		keys = append(keys, "perfect_month")
	}
	return keys
}

// checkConsistency is a reserved category with no predicates yet.
// TODO: Monday streak and weekend streak detection.
func checkConsistency(_ []progression.Entry) []string {
	return nil
}

// checkRecovery is a reserved category with no predicates yet.
func checkRecovery(_ []progression.Entry) []string {
	return nil
}

func checkSpecial(history []progression.Entry, totalCount int) []string {
	var keys []string

	for _, e := range history {
		if e.Date.Equal(progression.Default.StartDate) {
			keys = append(keys, "special_newyear")
			break
		}
	}

	halfway, _ := ByKey("special_halfway")
	if totalCount >= halfway.Requirement {
		keys = append(keys, "special_halfway")
	}

	hasNight, hasEarly := false, false
	for _, e := range history {
		if e.LoggedAt.IsZero() {
			continue
		}
		hour := e.LoggedAt.Hour()
		if hour >= 22 {
			hasNight = true
		}
		if hour < 6 {
			hasEarly = true
		}
	}
	if hasNight {
		keys = append(keys, "special_night")
	}
	if hasEarly {
		keys = append(keys, "special_early")
	}

	exactBase := 0
	for _, e := range history {
		if e.Count == progression.Default.BaseDailyTarget {
			exactBase++
		}
	}
	perfect, _ := ByKey("special_perfect")
	if exactBase >= perfect.Requirement {
		keys = append(keys, "special_perfect")
	}

	return keys
}

// hasPerfectRun reports whether the history contains needDays consecutive
// calendar days, each with at least minCount, anchored at today or yesterday
// like the streak walk.
func hasPerfectRun(history []progression.Entry, today progression.Date, needDays, minCount int) bool {
	sorted := make([]progression.Entry, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[j].Date.Before(sorted[i].Date)
	})

	newest := sorted[0].Date
	if !newest.Equal(today) && !newest.Equal(today.AddDays(-1)) {
		return false
	}

	run := 0
	for i, e := range sorted {
		if e.Count < minCount {
			return false
		}
		if i > 0 && !sorted[i-1].Date.AddDays(-1).Equal(e.Date) {
			return false
		}
		run++
		if run >= needDays {
			return true
		}
	}
	return false
}
