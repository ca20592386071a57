package raiderio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type toggle struct {
	token  string
	enable func(CharacterDetailsFields) CharacterDetailsFields
}

var toggles = []toggle{
	{"gear", CharacterDetailsFields.WithGear},
	{"guild", CharacterDetailsFields.WithGuild},
	{"raid_progression", CharacterDetailsFields.WithRaidProgression},
	{"mythic_plus_ranks", CharacterDetailsFields.WithMythicPlusRanks},
	{"mythic_plus_recent_runs", CharacterDetailsFields.WithMythicPlusRecentRuns},
	{"mythic_plus_highest_level_runs", CharacterDetailsFields.WithMythicPlusHighestLevelRuns},
	{"mythic_plus_weekly_highest_level_runs", CharacterDetailsFields.WithMythicPlusWeeklyHighestLevelRuns},
	{"mythic_plus_previous_weekly_highest_level_runs", CharacterDetailsFields.WithMythicPlusPreviousWeeklyHighestLevelRuns},
	{"previous_mythic_plus_ranks", CharacterDetailsFields.WithPreviousMythicPlusRanks},
}

func TestFieldsEmpty(t *testing.T) {
	f := CharacterDetailsFields{}
	if !assert.True(t, f.IsEmpty()) {
		return
	}
	if !assert.Equal(t, "", f.String()) {
		return
	}
}

func TestFieldsEveryToggleCombination(t *testing.T) {
	for mask := 0; mask < 1<<len(toggles); mask++ {
		f := CharacterDetailsFields{}
		expected := []string{}
		for i, tog := range toggles {
			if mask&(1<<i) == 0 {
				continue
			}
			f = tog.enable(f)
			expected = append(expected, tog.token)
		}

		rendered := f.String()
		if !assert.Equal(t, strings.Join(expected, ","), rendered, "mask %b", mask) {
			return
		}
		if !assert.False(t, strings.HasPrefix(rendered, ","), "mask %b", mask) {
			return
		}
		if !assert.False(t, strings.HasSuffix(rendered, ","), "mask %b", mask) {
			return
		}
	}
}

func TestFieldsSelectionOrderIsIrrelevant(t *testing.T) {
	f := CharacterDetailsFields{}
	for i := len(toggles) - 1; i >= 0; i-- {
		f = toggles[i].enable(f)
	}

	tokens := make([]string, len(toggles))
	for i, tog := range toggles {
		tokens[i] = tog.token
	}
	if !assert.Equal(t, strings.Join(tokens, ","), f.String()) {
		return
	}
}

func TestFieldsFullOrder(t *testing.T) {
	f := CharacterDetailsFields{}.
		WithRaidAchievementCurve(RaidNyalothaTheWakingCity, RaidTheEternalPalace).
		WithRaidAchievementMeta(23, 24).
		WithPreviousMythicPlusRanks().
		WithMythicPlusPreviousWeeklyHighestLevelRuns().
		WithMythicPlusWeeklyHighestLevelRuns().
		WithMythicPlusHighestLevelRuns().
		WithMythicPlusBestRuns(BestRunsAll).
		WithMythicPlusRecentRuns().
		WithMythicPlusRanks().
		WithMythicPlusScoresBySeason(SeasonCurrent).
		WithMythicPlusScoresBySeason(SpecificSeason(BattleForAzeroth, 1)).
		WithRaidProgression().
		WithGuild().
		WithGear()

	expected := strings.Join([]string{
		"gear",
		"guild",
		"raid_progression",
		"mythic_plus_scores_by_season:current:season-bfa-1",
		"mythic_plus_ranks",
		"mythic_plus_recent_runs",
		"mythic_plus_best_runs:all",
		"mythic_plus_highest_level_runs",
		"mythic_plus_weekly_highest_level_runs",
		"mythic_plus_previous_weekly_highest_level_runs",
		"previous_mythic_plus_ranks",
		"raid_achievement_meta:tier23:tier24",
		"raid_achievement_curve:nyalotha-the-waking-city:the-eternal-palace",
	}, ",")
	if !assert.Equal(t, expected, f.String()) {
		return
	}
}

func TestFieldsBestRunsLastWriteWins(t *testing.T) {
	client := NewClient()

	req := client.CharacterDetails(RegionEU, "Andybrew", "Draenor").
		MythicPlusAllBestRuns().
		MythicPlusThreeBestRuns()
	if !assert.Equal(t, "mythic_plus_best_runs", req.Fields().String()) {
		return
	}

	req = client.CharacterDetails(RegionEU, "Andybrew", "Draenor").
		MythicPlusThreeBestRuns().
		MythicPlusAllBestRuns()
	if !assert.Equal(t, "mythic_plus_best_runs:all", req.Fields().String()) {
		return
	}
}

func TestFieldsSeasons(t *testing.T) {
	f := CharacterDetailsFields{}.
		WithMythicPlusScoresBySeason(SeasonPrevious).
		WithMythicPlusScoresBySeason(SeasonCurrent).
		WithMythicPlusScoresBySeason(SeasonPrevious).
		WithMythicPlusScoresBySeason(SpecificSeason(BattleForAzeroth, 3)).
		WithMythicPlusScoresBySeason(SpecificSeason(BattleForAzeroth, 3))

	if !assert.Equal(t, "mythic_plus_scores_by_season:previous:current:season-bfa-3", f.String()) {
		return
	}
}

func TestFieldsRaidAchievementsDeduplicate(t *testing.T) {
	f := CharacterDetailsFields{}.
		WithRaidAchievementMeta(24, 24).
		WithRaidAchievementMeta(23, 24).
		WithRaidAchievementCurve(RaidUldir).
		WithRaidAchievementCurve(RaidUldir)

	if !assert.Equal(t, "raid_achievement_meta:tier24:tier23,raid_achievement_curve:uldir", f.String()) {
		return
	}
}

func TestFieldsCopiesDoNotAlias(t *testing.T) {
	base := CharacterDetailsFields{}.
		WithMythicPlusScoresBySeason(SeasonCurrent)

	left := base.WithMythicPlusScoresBySeason(SeasonPrevious)
	right := base.WithMythicPlusScoresBySeason(SpecificSeason(BattleForAzeroth, 2))

	if !assert.Equal(t, "mythic_plus_scores_by_season:current", base.String()) {
		return
	}
	if !assert.Equal(t, "mythic_plus_scores_by_season:current:previous", left.String()) {
		return
	}
	if !assert.Equal(t, "mythic_plus_scores_by_season:current:season-bfa-2", right.String()) {
		return
	}
}

func TestRequestClear(t *testing.T) {
	req := NewClient().CharacterDetails(RegionUS, "Sylvanella", "Illidan").
		Gear().
		Guild().
		MythicPlusScoresBySeason(SeasonCurrent).
		MythicPlusAllBestRuns().
		RaidAchievementMeta(24)

	cleared := req.Clear()
	if !assert.True(t, cleared.Fields().IsEmpty()) {
		return
	}
	if !assert.Equal(t, "gear,guild,mythic_plus_scores_by_season:current,mythic_plus_best_runs:all,raid_achievement_meta:tier24", req.Fields().String()) {
		return
	}

	params := cleared.queryParams()
	if _, ok := params["fields"]; !assert.False(t, ok) {
		return
	}
}
