package progression

import (
	"math"
	"sort"
	"time"
)

// Mode describes how the daily target is being computed for a user.
type Mode string

const (
	// ModeAhead - the user is at or above the expected cumulative total.
	ModeAhead Mode = "ahead"
	// ModeStandard - behind, but by less than three days worth of the base rate.
	ModeStandard Mode = "standard"
	// ModeCatchUp - significantly behind; the tapered catch-up target applies.
	ModeCatchUp Mode = "catchup"
)

// Challenge holds the fixed parameters of one fitness challenge.
type Challenge struct {
	StartDate       Date `json:"start_date"`
	EndDate         Date `json:"end_date"`
	TotalDays       int  `json:"total_days"`
	TotalGoal       int  `json:"total_goal"`
	BaseDailyTarget int  `json:"base_daily_target"`
	MaxDailyCap     int  `json:"max_daily_cap"` // injury prevention
}

// Default is the 2026 challenge: 36,500 pushups across 365 days.
var Default = Challenge{
	StartDate:       NewDate(2026, time.January, 1),
	EndDate:         NewDate(2026, time.December, 31),
	TotalDays:       365,
	TotalGoal:       36500,
	BaseDailyTarget: 100,
	MaxDailyCap:     200,
}

// onTrackTolerance is the fraction of the expected total within which a user
// still counts as on track. Display framing only, never used for mode selection.
const onTrackTolerance = 0.05

// taperFactor bounds how far the catch-up target may exceed the user's recent
// capacity: never ask for more than a 20% jump.
const taperFactor = 1.2

// Entry is one user-day record as seen by the engine. LoggedAt is the wall
// clock of the log action and is only consulted by time-of-day achievement
// predicates; the zero value means unknown.
type Entry struct {
	Date     Date      `json:"date"`
	Count    int       `json:"count"`
	LoggedAt time.Time `json:"logged_at,omitempty"`
}

// Result is the full progression picture for one user at one point in time.
// Recomputed from scratch on every call; the engine keeps no state.
type Result struct {
	Mode            Mode    `json:"mode"`
	DailyTarget     int     `json:"daily_target"`
	WeeklyTarget    int     `json:"weekly_target"`
	CurrentTotal    int     `json:"current_total"`
	ExpectedTotal   int     `json:"expected_total"`
	Deficit         int     `json:"deficit"` // positive = ahead of schedule
	DaysElapsed     int     `json:"days_elapsed"`
	DaysRemaining   int     `json:"days_remaining"`
	SevenDayAverage float64 `json:"seven_day_average"`
	OnTrack         bool    `json:"on_track"`
	PercentComplete float64 `json:"percent_complete"`

	// Projections at the current seven-day pace.
	ProjectedTotal      float64 `json:"projected_total"`
	ProjectedCompletion *Date   `json:"projected_completion,omitempty"`
	CatchupDaysNeeded   int     `json:"catchup_days_needed"`
}

// DaysElapsed returns how many challenge days have passed as of now.
// The start date itself counts as day 1.
func (ch Challenge) DaysElapsed(now Date) int {
	elapsed := now.DaysSince(ch.StartDate) + 1
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// DaysRemaining never returns less than 1 so that later divisions are safe
// even after the challenge end; callers decide separately whether the
// challenge is closed.
func (ch Challenge) DaysRemaining(now Date) int {
	remaining := ch.TotalDays - ch.DaysElapsed(now)
	if remaining < 1 {
		return 1
	}
	return remaining
}

// ExpectedTotal is the cumulative count a user keeping exactly the base pace
// would have by now, capped at the total goal.
func (ch Challenge) ExpectedTotal(now Date) int {
	expected := ch.DaysElapsed(now) * ch.BaseDailyTarget
	if expected > ch.TotalGoal {
		return ch.TotalGoal
	}
	return expected
}

// SevenDayAverage averages the counts of the last 7 chronological entries.
// Calendar gaps are ignored: with fewer than 7 entries, however many exist
// are used. Returns 0 for an empty history.
func SevenDayAverage(history []Entry) float64 {
	if len(history) == 0 {
		return 0
	}
	sorted := sortAscending(history)
	if len(sorted) > 7 {
		sorted = sorted[len(sorted)-7:]
	}
	total := 0
	for _, e := range sorted {
		total += e.Count
	}
	return float64(total) / float64(len(sorted))
}

// DetermineMode picks the progression mode. Evaluated top-down; first match
// wins. Deficit is positive when ahead.
func (ch Challenge) DetermineMode(deficit int) Mode {
	switch {
	case deficit >= 0:
		return ModeAhead
	case deficit >= -(ch.BaseDailyTarget * 3):
		return ModeStandard
	default:
		return ModeCatchUp
	}
}

// DailyTarget computes the adaptive daily target for the given mode.
//
// In catch-up mode the naive "remaining over days left" rate is tapered so it
// never exceeds 120% of the user's recent capacity, then capped for injury
// prevention, and finally floored at the base rate.
func (ch Challenge) DailyTarget(mode Mode, currentTotal int, daysRemaining int, sevenDayAverage float64) int {
	if daysRemaining <= 0 {
		return 0
	}

	remaining := ch.TotalGoal - currentTotal
	if remaining <= 0 {
		// Goal already reached.
		return 0
	}

	if mode == ModeAhead || mode == ModeStandard {
		return ch.BaseDailyTarget
	}

	naiveTarget := ceilDiv(remaining, daysRemaining)

	userCapacity := sevenDayAverage
	if userCapacity < float64(ch.BaseDailyTarget) {
		userCapacity = float64(ch.BaseDailyTarget)
	}
	maxIncrease := int(math.Ceil(userCapacity * taperFactor))

	taperedTarget := naiveTarget
	if maxIncrease < taperedTarget {
		taperedTarget = maxIncrease
	}

	cappedTarget := taperedTarget
	if cappedTarget > ch.MaxDailyCap {
		cappedTarget = ch.MaxDailyCap
	}

	if cappedTarget < ch.BaseDailyTarget {
		return ch.BaseDailyTarget
	}
	return cappedTarget
}

// ProjectedCompletion estimates the date the goal is reached at the current
// seven-day pace. Returns nil when there is no pace to project from, and now
// itself when the goal is already met.
func (ch Challenge) ProjectedCompletion(currentTotal int, sevenDayAverage float64, now Date) *Date {
	if sevenDayAverage <= 0 {
		return nil
	}
	remaining := ch.TotalGoal - currentTotal
	if remaining <= 0 {
		return &now
	}
	daysNeeded := int(math.Ceil(float64(remaining) / sevenDayAverage))
	completion := now.AddDays(daysNeeded)
	return &completion
}

// Calculate is the main entry point: it turns a user's raw totals and history
// into the full progression result. Pure function of its inputs.
func (ch Challenge) Calculate(currentTotal int, history []Entry, now Date) Result {
	daysElapsed := ch.DaysElapsed(now)
	daysRemaining := ch.DaysRemaining(now)
	expectedTotal := ch.ExpectedTotal(now)
	sevenDayAverage := SevenDayAverage(history)

	deficit := currentTotal - expectedTotal
	mode := ch.DetermineMode(deficit)
	dailyTarget := ch.DailyTarget(mode, currentTotal, daysRemaining, sevenDayAverage)

	tolerance := float64(expectedTotal) * onTrackTolerance
	onTrack := math.Abs(float64(deficit)) <= tolerance

	percentComplete := 0.0
	if ch.TotalGoal > 0 {
		percentComplete = float64(currentTotal) / float64(ch.TotalGoal) * 100
	}

	// Extra-effort days needed to erase the backlog, given the target bump.
	catchupDaysNeeded := 0
	if behind := -deficit; behind > 0 && dailyTarget > ch.BaseDailyTarget {
		catchupDaysNeeded = ceilDiv(behind, dailyTarget-ch.BaseDailyTarget)
	}

	return Result{
		Mode:                mode,
		DailyTarget:         dailyTarget,
		WeeklyTarget:        dailyTarget * 7,
		CurrentTotal:        currentTotal,
		ExpectedTotal:       expectedTotal,
		Deficit:             deficit,
		DaysElapsed:         daysElapsed,
		DaysRemaining:       daysRemaining,
		SevenDayAverage:     sevenDayAverage,
		OnTrack:             onTrack,
		PercentComplete:     percentComplete,
		ProjectedTotal:      float64(currentTotal) + sevenDayAverage*float64(daysRemaining),
		ProjectedCompletion: ch.ProjectedCompletion(currentTotal, sevenDayAverage, now),
		CatchupDaysNeeded:   catchupDaysNeeded,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func sortAscending(history []Entry) []Entry {
	sorted := make([]Entry, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
