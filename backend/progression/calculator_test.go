package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) Date {
	return Default.StartDate.AddDays(d - 1) // challenge day number -> date
}

func TestDaysElapsed(t *testing.T) {
	// The start date itself counts as day 1
	assert.Equal(t, 1, Default.DaysElapsed(Default.StartDate))
	assert.Equal(t, 10, Default.DaysElapsed(day(10)))
	assert.Equal(t, 365, Default.DaysElapsed(Default.EndDate))

	// Before the challenge starts
	assert.Equal(t, 0, Default.DaysElapsed(Default.StartDate.AddDays(-1)))
}

func TestDaysRemainingNeverZero(t *testing.T) {
	assert.Equal(t, 364, Default.DaysRemaining(Default.StartDate))
	assert.Equal(t, 1, Default.DaysRemaining(Default.EndDate))
	assert.Equal(t, 1, Default.DaysRemaining(Default.EndDate.AddDays(30)))
}

func TestExpectedTotalCappedAtGoal(t *testing.T) {
	assert.Equal(t, 100, Default.ExpectedTotal(day(1)))
	assert.Equal(t, 1000, Default.ExpectedTotal(day(10)))
	assert.Equal(t, 36500, Default.ExpectedTotal(Default.EndDate))
	assert.Equal(t, 36500, Default.ExpectedTotal(Default.EndDate.AddDays(10)))
}

func TestSevenDayAverage(t *testing.T) {
	assert.Equal(t, 0.0, SevenDayAverage(nil))

	// Fewer than 7 entries: divide by what exists
	history := []Entry{
		{Date: day(1), Count: 50},
		{Date: day(2), Count: 100},
	}
	assert.Equal(t, 75.0, SevenDayAverage(history))

	// More than 7: only the last 7 chronological entries count,
	// regardless of input order
	history = []Entry{{Date: day(9), Count: 70}}
	for i := 1; i <= 8; i++ {
		history = append(history, Entry{Date: day(i), Count: 140})
	}
	// last 7 by date: days 3..8 at 140 plus day 9 at 70
	assert.InDelta(t, (6*140+70)/7.0, SevenDayAverage(history), 1e-9)
}

func TestDetermineMode(t *testing.T) {
	tests := []struct {
		name    string
		deficit int
		want    Mode
	}{
		{"ahead when positive", 500, ModeAhead},
		{"ahead when exactly on pace", 0, ModeAhead},
		{"standard when slightly behind", -1, ModeStandard},
		{"standard at three days behind", -300, ModeStandard},
		{"catchup past three days behind", -301, ModeCatchUp},
		{"catchup when far behind", -5000, ModeCatchUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Default.DetermineMode(tt.deficit))
		})
	}
}

func TestDailyTarget(t *testing.T) {
	t.Run("zero when goal reached", func(t *testing.T) {
		assert.Equal(t, 0, Default.DailyTarget(ModeAhead, 36500, 100, 120))
		assert.Equal(t, 0, Default.DailyTarget(ModeCatchUp, 40000, 100, 120))
	})

	t.Run("base rate outside catch-up", func(t *testing.T) {
		assert.Equal(t, 100, Default.DailyTarget(ModeAhead, 5000, 300, 150))
		assert.Equal(t, 100, Default.DailyTarget(ModeStandard, 5000, 300, 80))
	})

	t.Run("tapered catch-up", func(t *testing.T) {
		// Scenario from the challenge: 400 done on day 10, slow recent pace.
		// naive = ceil(36100/355) = 102; capacity = max(40, 100) = 100;
		// taper allows up to 120, so the naive 102 stands.
		assert.Equal(t, 102, Default.DailyTarget(ModeCatchUp, 400, 355, 40))

		// Huge backlog late in the year gets capped at the injury limit
		assert.Equal(t, 200, Default.DailyTarget(ModeCatchUp, 1000, 60, 190))

		// Taper binds before the cap when recent capacity is low
		assert.Equal(t, 120, Default.DailyTarget(ModeCatchUp, 1000, 60, 50))
	})

	t.Run("never below base while goal remains", func(t *testing.T) {
		assert.Equal(t, 100, Default.DailyTarget(ModeCatchUp, 36400, 300, 5))
	})
}

func TestDailyTargetCapInvariant(t *testing.T) {
	// For any mix of inputs the target stays within [base, cap]
	// as long as the goal has not been reached.
	for _, total := range []int{0, 400, 10000, 36000} {
		for _, remaining := range []int{1, 30, 180, 355} {
			for _, avg := range []float64{0, 20, 100, 250} {
				for _, mode := range []Mode{ModeAhead, ModeStandard, ModeCatchUp} {
					target := Default.DailyTarget(mode, total, remaining, avg)
					assert.GreaterOrEqual(t, target, Default.BaseDailyTarget)
					assert.LessOrEqual(t, target, Default.MaxDailyCap)
				}
			}
		}
	}
}

func TestCalculateAheadOnDayTen(t *testing.T) {
	// Day 10 with exactly the expected 1000 pushups
	result := Default.Calculate(1000, nil, day(10))

	assert.Equal(t, ModeAhead, result.Mode)
	assert.Equal(t, 10, result.DaysElapsed)
	assert.Equal(t, 355, result.DaysRemaining)
	assert.Equal(t, 1000, result.ExpectedTotal)
	assert.Equal(t, 0, result.Deficit)
	assert.Equal(t, 100, result.DailyTarget)
	assert.Equal(t, 700, result.WeeklyTarget)
	assert.True(t, result.OnTrack)
}

func TestCalculateCatchUpOnDayTen(t *testing.T) {
	// 400 pushups logged over 9 days; the last 7 entries average 40.
	history := []Entry{
		{Date: day(1), Count: 60},
		{Date: day(2), Count: 60},
	}
	for i := 3; i <= 9; i++ {
		history = append(history, Entry{Date: day(i), Count: 40})
	}

	result := Default.Calculate(400, history, day(10))

	assert.Equal(t, ModeCatchUp, result.Mode)
	assert.Equal(t, -600, result.Deficit)
	assert.InDelta(t, 40.0, result.SevenDayAverage, 1e-9)
	assert.Equal(t, 102, result.DailyTarget)
	assert.False(t, result.OnTrack)
	assert.InDelta(t, 400+40.0*355, result.ProjectedTotal, 1e-9)
}

func TestCalculateDeficitMonotonicity(t *testing.T) {
	// With everything else fixed, more pushups never lowers the deficit
	// and never moves the mode toward catch-up.
	rank := map[Mode]int{ModeCatchUp: 0, ModeStandard: 1, ModeAhead: 2}

	now := day(30)
	prev := Default.Calculate(0, nil, now)
	for total := 100; total <= 4000; total += 100 {
		result := Default.Calculate(total, nil, now)
		assert.Greater(t, result.Deficit, prev.Deficit)
		assert.GreaterOrEqual(t, rank[result.Mode], rank[prev.Mode])
		prev = result
	}
}

func TestCalculateEmptyHistory(t *testing.T) {
	result := Default.Calculate(0, nil, day(1))

	assert.Equal(t, 0.0, result.SevenDayAverage)
	assert.Equal(t, 0.0, result.ProjectedTotal)
	assert.Nil(t, result.ProjectedCompletion)
}

func TestProjectedCompletion(t *testing.T) {
	now := day(10)

	// No pace, no projection
	assert.Nil(t, Default.ProjectedCompletion(400, 0, now))

	// Already done
	done := Default.ProjectedCompletion(36500, 50, now)
	assert.NotNil(t, done)
	assert.Equal(t, now, *done)

	// 36100 remaining at 100/day -> 361 days out
	completion := Default.ProjectedCompletion(400, 100, now)
	assert.NotNil(t, completion)
	assert.Equal(t, now.AddDays(361), *completion)
}

func TestCatchupDaysNeeded(t *testing.T) {
	// 600 behind with a 102 target means 2 extra pushups per day:
	// 300 extra-effort days to erase the backlog.
	history := []Entry{
		{Date: day(1), Count: 60},
		{Date: day(2), Count: 60},
	}
	for i := 3; i <= 9; i++ {
		history = append(history, Entry{Date: day(i), Count: 40})
	}
	result := Default.Calculate(400, history, day(10))
	assert.Equal(t, 300, result.CatchupDaysNeeded)

	// No extra effort needed when ahead
	ahead := Default.Calculate(2000, nil, day(10))
	assert.Equal(t, 0, ahead.CatchupDaysNeeded)
}

func TestModeMessages(t *testing.T) {
	assert.Contains(t, ModeDescription(ModeAhead), "ahead")
	assert.Contains(t, ModeDescription(ModeCatchUp), "Catch-up")

	assert.Contains(t, EncouragementMessage(ModeAhead, 250, 10), "250")
	assert.Contains(t, EncouragementMessage(ModeStandard, -50, 80), "home stretch")
	assert.Contains(t, EncouragementMessage(ModeCatchUp, -400, 10), "close")
	assert.Contains(t, EncouragementMessage(ModeCatchUp, -2000, 10), "One day at a time")
}

func TestChallengeDefaults(t *testing.T) {
	assert.Equal(t, NewDate(2026, time.January, 1), Default.StartDate)
	assert.Equal(t, 365, Default.TotalDays)
	assert.Equal(t, Default.TotalGoal/Default.TotalDays, Default.BaseDailyTarget)
}
