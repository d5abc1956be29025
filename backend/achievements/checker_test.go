package achievements

import (
	"testing"
	"time"

	"pushup365/backend/progression"

	"github.com/stretchr/testify/assert"
)

func consecutiveDays(end progression.Date, days, count int) []progression.Entry {
	entries := make([]progression.Entry, 0, days)
	for i := days - 1; i >= 0; i-- {
		entries = append(entries, progression.Entry{Date: end.AddDays(-i), Count: count})
	}
	return entries
}

func total(history []progression.Entry) int {
	sum := 0
	for _, e := range history {
		sum += e.Count
	}
	return sum
}

func TestEvaluateEmptyHistory(t *testing.T) {
	assert.Empty(t, Evaluate(nil, 0, progression.NewDate(2026, time.March, 7)))
}

func TestEvaluateIsIdempotent(t *testing.T) {
	today := progression.NewDate(2026, time.March, 7)
	history := consecutiveDays(today, 7, 100)

	first := Evaluate(history, total(history), today)
	second := Evaluate(history, total(history), today)
	assert.Equal(t, first, second)
}

func TestMilestones(t *testing.T) {
	today := progression.NewDate(2026, time.March, 7)
	history := []progression.Entry{{Date: today, Count: 50}}

	assert.NotContains(t, Evaluate(history, 99, today), "milestone_100")

	keys := Evaluate(history, 5000, today)
	assert.Contains(t, keys, "milestone_100")
	assert.Contains(t, keys, "milestone_1000")
	assert.Contains(t, keys, "milestone_5000")
	assert.NotContains(t, keys, "milestone_10000")

	keys = Evaluate(history, 36500, today)
	assert.Contains(t, keys, "milestone_36500")
}

func TestStreakAchievements(t *testing.T) {
	today := progression.NewDate(2026, time.March, 7)

	history := consecutiveDays(today, 3, 50)
	keys := Evaluate(history, total(history), today)
	assert.Contains(t, keys, "streak_3")
	assert.NotContains(t, keys, "streak_7")

	history = consecutiveDays(today, 14, 50)
	keys = Evaluate(history, total(history), today)
	assert.Contains(t, keys, "streak_7")
	assert.Contains(t, keys, "streak_14")

	// A streak broken two days ago counts for nothing
	history = consecutiveDays(today.AddDays(-2), 5, 50)
	keys = Evaluate(history, total(history), today)
	assert.NotContains(t, keys, "streak_3")
}

func TestDailyRecords(t *testing.T) {
	today := progression.NewDate(2026, time.March, 7)

	keys := Evaluate([]progression.Entry{{Date: today, Count: 150}}, 150, today)
	assert.Contains(t, keys, "daily_100")
	assert.Contains(t, keys, "daily_150")
	assert.NotContains(t, keys, "daily_200")

	keys = Evaluate([]progression.Entry{{Date: today, Count: 200}}, 200, today)
	assert.Contains(t, keys, "daily_200")
}

func TestPerfectWeek(t *testing.T) {
	// Seven days at 100+, March 1-7, evaluated on March 7
	today := progression.NewDate(2026, time.March, 7)
	history := consecutiveDays(today, 7, 100)

	keys := Evaluate(history, total(history), today)
	assert.Contains(t, keys, "perfect_week")
	assert.NotContains(t, keys, "perfect_month")

	// One sub-100 day spoils it
	history[3].Count = 99
	keys = Evaluate(history, total(history), today)
	assert.NotContains(t, keys, "perfect_week")

	// Six days is not enough
	history = consecutiveDays(today, 6, 120)
	keys = Evaluate(history, total(history), today)
	assert.NotContains(t, keys, "perfect_week")
}

func TestPerfectWeekNeedsRecentAnchor(t *testing.T) {
	today := progression.NewDate(2026, time.March, 20)

	// A perfect run that ended two weeks ago does not qualify
	history := consecutiveDays(today.AddDays(-14), 7, 120)
	keys := Evaluate(history, total(history), today)
	assert.NotContains(t, keys, "perfect_week")

	// Anchored at yesterday still qualifies (grace period)
	history = consecutiveDays(today.AddDays(-1), 7, 120)
	keys = Evaluate(history, total(history), today)
	assert.Contains(t, keys, "perfect_week")
}

func TestPerfectMonth(t *testing.T) {
	today := progression.NewDate(2026, time.March, 30)
	history := consecutiveDays(today, 30, 110)

	keys := Evaluate(history, total(history), today)
	assert.Contains(t, keys, "perfect_month")
	assert.Contains(t, keys, "perfect_week")
}

func TestHalfwaySpecial(t *testing.T) {
	today := progression.NewDate(2026, time.July, 1)
	history := []progression.Entry{{Date: today, Count: 100}}

	assert.Contains(t, Evaluate(history, 18250, today), "special_halfway")
	assert.NotContains(t, Evaluate(history, 18249, today), "special_halfway")
}

func TestNewYearSpecial(t *testing.T) {
	today := progression.NewDate(2026, time.January, 5)

	history := []progression.Entry{{Date: progression.NewDate(2026, time.January, 1), Count: 20}}
	assert.Contains(t, Evaluate(history, 20, today), "special_newyear")

	history = []progression.Entry{{Date: progression.NewDate(2026, time.January, 2), Count: 20}}
	assert.NotContains(t, Evaluate(history, 20, today), "special_newyear")
}

func TestTimeOfDaySpecials(t *testing.T) {
	today := progression.NewDate(2026, time.March, 7)

	lateNight := time.Date(2026, time.March, 7, 22, 30, 0, 0, time.UTC)
	keys := Evaluate([]progression.Entry{{Date: today, Count: 50, LoggedAt: lateNight}}, 50, today)
	assert.Contains(t, keys, "special_night")
	assert.NotContains(t, keys, "special_early")

	earlyMorning := time.Date(2026, time.March, 7, 5, 59, 0, 0, time.UTC)
	keys = Evaluate([]progression.Entry{{Date: today, Count: 50, LoggedAt: earlyMorning}}, 50, today)
	assert.Contains(t, keys, "special_early")
	assert.NotContains(t, keys, "special_night")

	// Midday logging triggers neither
	noon := time.Date(2026, time.March, 7, 12, 0, 0, 0, time.UTC)
	keys = Evaluate([]progression.Entry{{Date: today, Count: 50, LoggedAt: noon}}, 50, today)
	assert.NotContains(t, keys, "special_night")
	assert.NotContains(t, keys, "special_early")
}

func TestPerfectScoreSpecial(t *testing.T) {
	today := progression.NewDate(2026, time.April, 20)

	// Nine days of exactly 100 is not enough, ten is
	history := consecutiveDays(today, 9, 100)
	keys := Evaluate(history, total(history), today)
	assert.NotContains(t, keys, "special_perfect")

	history = consecutiveDays(today, 10, 100)
	keys = Evaluate(history, total(history), today)
	assert.Contains(t, keys, "special_perfect")
}

func TestReservedCategoriesStayEmpty(t *testing.T) {
	today := progression.NewDate(2026, time.March, 7)
	history := consecutiveDays(today, 30, 150)

	for _, key := range Evaluate(history, total(history), today) {
		a, ok := ByKey(key)
		assert.True(t, ok)
		assert.NotEqual(t, CategoryConsistency, a.Category)
		assert.NotEqual(t, CategoryRecovery, a.Category)
	}
}

func TestCatalogKeysUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range Catalog {
		assert.False(t, seen[a.Key], "duplicate key %s", a.Key)
		seen[a.Key] = true
	}
}
