package raiderio

import (
	"fmt"
	"strings"
)

// CharacterDetailsFields is the set of optional payloads requested for a character profile.
// Methods return an updated copy, the receiver is never modified.
type CharacterDetailsFields struct {
	gear                                     bool
	guild                                    bool
	raidProgression                          bool
	mythicPlusScoresBySeason                 []Season
	mythicPlusRanks                          bool
	mythicPlusRecentRuns                     bool
	mythicPlusBestRuns                       BestRunsMode
	mythicPlusHighestLevelRuns               bool
	mythicPlusWeeklyHighestLevelRuns         bool
	mythicPlusPreviousWeeklyHighestLevelRuns bool
	previousMythicPlusRanks                  bool
	raidAchievementMeta                      []int
	raidAchievementCurve                     []Raid
}

// appendUnique copies before appending so a shared backing array is never written to
func appendUnique[T comparable](set []T, values ...T) []T {
	out := make([]T, len(set), len(set)+len(values))
	copy(out, set)
	for _, v := range values {
		found := false
		for _, existing := range out {
			if existing == v {
				found = true

				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}

	return out
}

// WithGear requests high level item information
func (f CharacterDetailsFields) WithGear() CharacterDetailsFields {
	f.gear = true

	return f
}

// WithGuild requests basic information about the character's guild
func (f CharacterDetailsFields) WithGuild() CharacterDetailsFields {
	f.guild = true

	return f
}

// WithRaidProgression requests raid progression
func (f CharacterDetailsFields) WithRaidProgression() CharacterDetailsFields {
	f.raidProgression = true

	return f
}

// WithMythicPlusScoresBySeason adds a season to the requested scores, adding a season twice has no effect
func (f CharacterDetailsFields) WithMythicPlusScoresBySeason(season Season) CharacterDetailsFields {
	f.mythicPlusScoresBySeason = appendUnique(f.mythicPlusScoresBySeason, season)

	return f
}

// WithMythicPlusRanks requests current season rankings
func (f CharacterDetailsFields) WithMythicPlusRanks() CharacterDetailsFields {
	f.mythicPlusRanks = true

	return f
}

// WithMythicPlusRecentRuns requests the three most recent runs
func (f CharacterDetailsFields) WithMythicPlusRecentRuns() CharacterDetailsFields {
	f.mythicPlusRecentRuns = true

	return f
}

// WithMythicPlusBestRuns sets the best runs mode, the last mode set wins
func (f CharacterDetailsFields) WithMythicPlusBestRuns(mode BestRunsMode) CharacterDetailsFields {
	f.mythicPlusBestRuns = mode

	return f
}

// WithMythicPlusHighestLevelRuns requests the three highest runs by level
func (f CharacterDetailsFields) WithMythicPlusHighestLevelRuns() CharacterDetailsFields {
	f.mythicPlusHighestLevelRuns = true

	return f
}

// WithMythicPlusWeeklyHighestLevelRuns requests the three highest runs of the current raid week
func (f CharacterDetailsFields) WithMythicPlusWeeklyHighestLevelRuns() CharacterDetailsFields {
	f.mythicPlusWeeklyHighestLevelRuns = true

	return f
}

// WithMythicPlusPreviousWeeklyHighestLevelRuns requests the three highest runs of the previous raid week
func (f CharacterDetailsFields) WithMythicPlusPreviousWeeklyHighestLevelRuns() CharacterDetailsFields {
	f.mythicPlusPreviousWeeklyHighestLevelRuns = true

	return f
}

// WithPreviousMythicPlusRanks requests previous season rankings
func (f CharacterDetailsFields) WithPreviousMythicPlusRanks() CharacterDetailsFields {
	f.previousMythicPlusRanks = true

	return f
}

// WithRaidAchievementMeta requests meta achievement status for the given raid tiers
func (f CharacterDetailsFields) WithRaidAchievementMeta(tiers ...int) CharacterDetailsFields {
	f.raidAchievementMeta = appendUnique(f.raidAchievementMeta, tiers...)

	return f
}

// WithRaidAchievementCurve requests ahead of the curve and cutting edge dates for the given raids
func (f CharacterDetailsFields) WithRaidAchievementCurve(raids ...Raid) CharacterDetailsFields {
	f.raidAchievementCurve = appendUnique(f.raidAchievementCurve, raids...)

	return f
}

// IsEmpty reports whether no field is selected
func (f CharacterDetailsFields) IsEmpty() bool {
	return len(f.Tokens()) == 0
}

// Tokens lists the selected field names in the order the api documents them
func (f CharacterDetailsFields) Tokens() []string {
	out := []string{}

	if f.gear {
		out = append(out, "gear")
	}
	if f.guild {
		out = append(out, "guild")
	}
	if f.raidProgression {
		out = append(out, "raid_progression")
	}
	if f.mythicPlusScoresBySeason != nil {
		field := "mythic_plus_scores_by_season"
		for _, season := range f.mythicPlusScoresBySeason {
			field += season.fieldSuffix()
		}
		out = append(out, field)
	}
	if f.mythicPlusRanks {
		out = append(out, "mythic_plus_ranks")
	}
	if f.mythicPlusRecentRuns {
		out = append(out, "mythic_plus_recent_runs")
	}
	switch f.mythicPlusBestRuns {
	case BestRunsThree:
		out = append(out, "mythic_plus_best_runs")
	case BestRunsAll:
		out = append(out, "mythic_plus_best_runs:all")
	}
	if f.mythicPlusHighestLevelRuns {
		out = append(out, "mythic_plus_highest_level_runs")
	}
	if f.mythicPlusWeeklyHighestLevelRuns {
		out = append(out, "mythic_plus_weekly_highest_level_runs")
	}
	if f.mythicPlusPreviousWeeklyHighestLevelRuns {
		out = append(out, "mythic_plus_previous_weekly_highest_level_runs")
	}
	if f.previousMythicPlusRanks {
		out = append(out, "previous_mythic_plus_ranks")
	}
	if f.raidAchievementMeta != nil {
		field := "raid_achievement_meta"
		for _, tier := range f.raidAchievementMeta {
			field += fmt.Sprintf(":tier%d", tier)
		}
		out = append(out, field)
	}
	if f.raidAchievementCurve != nil {
		field := "raid_achievement_curve"
		for _, raid := range f.raidAchievementCurve {
			field += ":" + string(raid)
		}
		out = append(out, field)
	}

	return out
}

// String renders the fields query parameter, empty when nothing is selected
func (f CharacterDetailsFields) String() string {
	return strings.Join(f.Tokens(), ",")
}
