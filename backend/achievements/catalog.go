package achievements

// Category is a closed enumeration of achievement groups. Display colors and
// labels belong to the frontend; the engine only needs the grouping.
type Category string

const (
	CategoryMilestone   Category = "milestone"
	CategoryStreak      Category = "streak"
	CategoryDaily       Category = "daily"
	CategoryConsistency Category = "consistency"
	CategoryRecovery    Category = "recovery"
	CategorySpecial     Category = "special"
)

// Achievement is one static catalog entry. The catalog is reference data:
// defined once here, seeded into the database at startup, never mutated.
type Achievement struct {
	Key         string   `json:"key"`
	Category    Category `json:"category"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Requirement int      `json:"requirement"` // threshold the predicate checks, 0 when not numeric
}

// Catalog lists every achievement the challenge can award.
var Catalog = []Achievement{
	{Key: "milestone_100", Category: CategoryMilestone, Name: "First Step", Description: "Complete 100 total pushups", Icon: "🏁", Requirement: 100},
	{Key: "milestone_1000", Category: CategoryMilestone, Name: "Thousand Club", Description: "Complete 1,000 total pushups", Icon: "🎯", Requirement: 1000},
	{Key: "milestone_5000", Category: CategoryMilestone, Name: "Five Grand", Description: "Complete 5,000 total pushups", Icon: "💪", Requirement: 5000},
	{Key: "milestone_10000", Category: CategoryMilestone, Name: "Ten Thousand Strong", Description: "Complete 10,000 total pushups", Icon: "🔥", Requirement: 10000},
	{Key: "milestone_20000", Category: CategoryMilestone, Name: "Twenty K Champion", Description: "Complete 20,000 total pushups", Icon: "🏆", Requirement: 20000},
	{Key: "milestone_36500", Category: CategoryMilestone, Name: "Goal Complete", Description: "Complete 36,500 total pushups", Icon: "💎", Requirement: 36500},

	{Key: "streak_3", Category: CategoryStreak, Name: "Three Days Strong", Description: "Log pushups 3 days in a row", Icon: "🌟", Requirement: 3},
	{Key: "streak_7", Category: CategoryStreak, Name: "Week Warrior", Description: "Log pushups 7 days in a row", Icon: "⭐", Requirement: 7},
	{Key: "streak_14", Category: CategoryStreak, Name: "Two Week Titan", Description: "Log pushups 14 days in a row", Icon: "🌠", Requirement: 14},
	{Key: "streak_30", Category: CategoryStreak, Name: "Month Master", Description: "Log pushups 30 days in a row", Icon: "🔆", Requirement: 30},
	{Key: "streak_50", Category: CategoryStreak, Name: "Unbreakable", Description: "Log pushups 50 days in a row", Icon: "☀️", Requirement: 50},
	{Key: "streak_100", Category: CategoryStreak, Name: "Century Streak", Description: "Log pushups 100 days in a row", Icon: "🌞", Requirement: 100},
	{Key: "streak_365", Category: CategoryStreak, Name: "Year-Long Legend", Description: "Log pushups 365 days in a row", Icon: "🏅", Requirement: 365},

	{Key: "daily_100", Category: CategoryDaily, Name: "Century Club", Description: "Complete 100+ pushups in one day", Icon: "✨", Requirement: 100},
	{Key: "daily_150", Category: CategoryDaily, Name: "Overachiever", Description: "Complete 150+ pushups in one day", Icon: "💥", Requirement: 150},
	{Key: "daily_200", Category: CategoryDaily, Name: "Beast Mode", Description: "Complete 200+ pushups in one day", Icon: "🚀", Requirement: 200},
	{Key: "perfect_week", Category: CategoryDaily, Name: "Superhuman", Description: "Complete 100+ pushups every day for 7 days", Icon: "🦾", Requirement: 7},
	{Key: "perfect_month", Category: CategoryDaily, Name: "Perfect Month", Description: "Complete 100+ pushups every day for 30 days", Icon: "🎖️", Requirement: 30},

	{Key: "special_newyear", Category: CategorySpecial, Name: "New Year's Hero", Description: "Log pushups on January 1, 2026", Icon: "🎆"},
	{Key: "special_halfway", Category: CategorySpecial, Name: "Halfway There", Description: "Reach 18,250 pushups", Icon: "🎊", Requirement: 18250},
	{Key: "special_night", Category: CategorySpecial, Name: "Night Owl", Description: "Log pushups after 10 PM", Icon: "🌙"},
	{Key: "special_early", Category: CategorySpecial, Name: "Early Bird", Description: "Log pushups before 6 AM", Icon: "🌅"},
	{Key: "special_perfect", Category: CategorySpecial, Name: "Perfect Score", Description: "Log exactly 100 pushups (10 times)", Icon: "🔢", Requirement: 10},
}

// ByKey looks up a catalog entry.
func ByKey(key string) (Achievement, bool) {
	for _, a := range Catalog {
		if a.Key == key {
			return a, true
		}
	}
	return Achievement{}, false
}
