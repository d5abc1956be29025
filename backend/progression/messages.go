package progression

import "fmt"

// ModeDescription is the short status line shown next to the daily target.
func ModeDescription(mode Mode) string {
	switch mode {
	case ModeAhead:
		return "You're ahead of schedule! 🎉"
	case ModeStandard:
		return "You're on track! 💪"
	case ModeCatchUp:
		return "Catch-up mode - Let's get back on track! 🚀"
	default:
		return ""
	}
}

// EncouragementMessage picks a message for the user's current standing.
// Deficit follows the engine convention: positive means ahead.
func EncouragementMessage(mode Mode, deficit int, percentComplete float64) string {
	if mode == ModeAhead {
		return fmt.Sprintf("Amazing work! You're %d pushups ahead!", deficit)
	}

	if mode == ModeStandard {
		if percentComplete >= 75 {
			return "You're in the home stretch! Keep it up!"
		}
		return "Steady progress! You're doing great!"
	}

	behind := -deficit
	switch {
	case behind <= 500:
		return "You're close! A few strong days and you'll be caught up!"
	case behind <= 1000:
		return "Don't worry, the adjusted targets will help you catch up!"
	default:
		return "One day at a time. You've got this!"
	}
}
