package internal

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/sotah-inc/raiderio/pkg/raiderio"
	"github.com/sotah-inc/raiderio/pkg/utiltest"
	"github.com/stretchr/testify/assert"
)

func TestFieldFlagsFields(t *testing.T) {
	f, err := FieldFlags{
		Gear:       true,
		Guild:      true,
		Seasons:    []string{"current", "season-bfa-1"},
		BestRuns:   "all",
		MetaTiers:  []int{24},
		CurveRaids: []string{"Uldir"},
	}.Fields()
	if !assert.Nil(t, err) {
		return
	}

	expected := "gear,guild,mythic_plus_scores_by_season:current:season-bfa-1,mythic_plus_best_runs:all,raid_achievement_meta:tier24,raid_achievement_curve:uldir"
	if !assert.Equal(t, expected, f.String()) {
		return
	}
}

func TestFieldFlagsInvalid(t *testing.T) {
	if _, err := (FieldFlags{Seasons: []string{"season-bfa"}}).Fields(); !assert.NotNil(t, err) {
		return
	}
	if _, err := (FieldFlags{BestRuns: "some"}).Fields(); !assert.NotNil(t, err) {
		return
	}
	if _, err := (FieldFlags{CurveRaids: []string{"naxxramas"}}).Fields(); !assert.NotNil(t, err) {
		return
	}
}

func TestFetchProfiles(t *testing.T) {
	ts, reqLog, err := utiltest.ServeFileWithStatus("../pkg/raiderio/TestData/character-profile-minimal.json", http.StatusOK)
	if !assert.Nil(t, err) {
		return
	}
	defer ts.Close()

	client := raiderio.NewClient(raiderio.WithBaseURL(ts.URL))
	profiles, err := FetchProfiles(context.Background(), client, ProfileRequest{
		Region:  raiderio.RegionUS,
		Realm:   "Illidan",
		Names:   []string{"Sylvanella", "Sylvanella", "Sylvanella"},
		Fields:  raiderio.CharacterDetailsFields{}.WithGuild(),
		Workers: 2,
	})
	if !assert.Nil(t, err) || !assert.Len(t, profiles, 3) {
		return
	}
	for _, cd := range profiles {
		if !assert.Equal(t, "Sylvanella", cd.Name) {
			return
		}
	}
	if !assert.Equal(t, 3, reqLog.Len()) {
		return
	}
	if !assert.Equal(t, "guild", reqLog.Last().URL.Query().Get("fields")) {
		return
	}
}

func TestFetchProfilesAPIError(t *testing.T) {
	ts, _, err := utiltest.ServeFileWithStatus("../pkg/raiderio/TestData/api-error.json", http.StatusBadRequest)
	if !assert.Nil(t, err) {
		return
	}
	defer ts.Close()

	client := raiderio.NewClient(raiderio.WithBaseURL(ts.URL))
	_, err = FetchProfiles(context.Background(), client, ProfileRequest{
		Region: raiderio.RegionEU,
		Realm:  "Nowhere",
		Names:  []string{"Andybrew"},
	})

	var apiErr *raiderio.APIError
	if !assert.True(t, errors.As(err, &apiErr)) {
		return
	}
	if !assert.Equal(t, "Invalid realm", apiErr.Message) {
		return
	}
}
