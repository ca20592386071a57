package raiderio

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeasonFieldSuffix(t *testing.T) {
	if !assert.Equal(t, ":season-bfa-1", SpecificSeason(BattleForAzeroth, 1).fieldSuffix()) {
		return
	}
	if !assert.Equal(t, ":current", SeasonCurrent.fieldSuffix()) {
		return
	}
	if !assert.Equal(t, ":previous", SeasonPrevious.fieldSuffix()) {
		return
	}
}

func TestParseSeason(t *testing.T) {
	season, err := ParseSeason("mythic_plus_scores_by_season-bfa-1")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, SpecificSeason(BattleForAzeroth, 1), season) {
		return
	}

	season, err = ParseSeason("season-bfa-4")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, SpecificSeason(BattleForAzeroth, 4), season) {
		return
	}

	season, err = ParseSeason("current")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, SeasonCurrent, season) {
		return
	}

	season, err = ParseSeason(":previous")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, SeasonPrevious, season) {
		return
	}
}

func TestParseSeasonRoundTrip(t *testing.T) {
	original := SpecificSeason(BattleForAzeroth, 1)

	parsed, err := ParseSeason(original.String())
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, original, parsed) {
		return
	}
}

func TestParseSeasonMissingNumber(t *testing.T) {
	_, err := ParseSeason("season-bfa")
	if !assert.NotNil(t, err) {
		return
	}
	if !assert.True(t, errors.Is(err, ErrSeasonNoNumber)) {
		return
	}
	if !assert.Contains(t, err.Error(), "no season number") {
		return
	}
}

func TestParseSeasonMissingExpansion(t *testing.T) {
	_, err := ParseSeason("season")
	if !assert.NotNil(t, err) {
		return
	}
	if !assert.True(t, errors.Is(err, ErrSeasonNoExpansion)) {
		return
	}
}

func TestParseSeasonUnknownExpansion(t *testing.T) {
	_, err := ParseSeason("season-wod-2")
	if !assert.NotNil(t, err) {
		return
	}

	var enumErr *EnumError
	if !assert.True(t, errors.As(err, &enumErr)) {
		return
	}
	if !assert.Equal(t, "expansion", enumErr.Kind) {
		return
	}
	if !assert.Contains(t, err.Error(), `unknown expansion "wod"`) {
		return
	}
}

func TestParseSeasonInvalidNumber(t *testing.T) {
	for _, input := range []string{"season-bfa-x", "season-bfa-256", "season-bfa--1"} {
		_, err := ParseSeason(input)
		if !assert.NotNil(t, err, input) {
			return
		}
	}
}

func TestSeasonUnmarshalJSON(t *testing.T) {
	scores := MythicPlusScores{}
	err := json.Unmarshal([]byte(`{"season":"season-bfa-2","scores":{"all":10.5}}`), &scores)
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, SpecificSeason(BattleForAzeroth, 2), scores.Season) {
		return
	}
	if !assert.Equal(t, 10.5, scores.Scores.All) {
		return
	}

	err = json.Unmarshal([]byte(`{"season":"season-bfa"}`), &scores)
	if !assert.NotNil(t, err) {
		return
	}
}

func TestParseBestRunsMode(t *testing.T) {
	mode, err := ParseBestRunsMode("all")
	if !assert.Nil(t, err) || !assert.Equal(t, BestRunsAll, mode) {
		return
	}

	mode, err = ParseBestRunsMode("three")
	if !assert.Nil(t, err) || !assert.Equal(t, BestRunsThree, mode) {
		return
	}

	_, err = ParseBestRunsMode("al")
	if !assert.NotNil(t, err) {
		return
	}
	if !assert.Contains(t, err.Error(), `did you mean "all"`) {
		return
	}
}
