package internal

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sotah-inc/raiderio/pkg/logging"
	"github.com/sotah-inc/raiderio/pkg/raiderio"
	"golang.org/x/sync/errgroup"
)

// DefaultProfileWorkers bounds how many profiles are fetched at once
const DefaultProfileWorkers = 4

// FieldFlags are the field selections gathered from the command line
type FieldFlags struct {
	Gear                      bool
	Guild                     bool
	RaidProgression           bool
	Seasons                   []string
	Ranks                     bool
	RecentRuns                bool
	BestRuns                  string
	HighestRuns               bool
	WeeklyHighestRuns         bool
	PreviousWeeklyHighestRuns bool
	PreviousRanks             bool
	MetaTiers                 []int
	CurveRaids                []string
}

// Fields resolves the flags into a field selection
func (ff FieldFlags) Fields() (raiderio.CharacterDetailsFields, error) {
	f := raiderio.CharacterDetailsFields{}

	if ff.Gear {
		f = f.WithGear()
	}
	if ff.Guild {
		f = f.WithGuild()
	}
	if ff.RaidProgression {
		f = f.WithRaidProgression()
	}
	for _, s := range ff.Seasons {
		season, err := raiderio.ParseSeason(s)
		if err != nil {
			return raiderio.CharacterDetailsFields{}, err
		}
		f = f.WithMythicPlusScoresBySeason(season)
	}
	if ff.Ranks {
		f = f.WithMythicPlusRanks()
	}
	if ff.RecentRuns {
		f = f.WithMythicPlusRecentRuns()
	}
	if ff.BestRuns != "" {
		mode, err := raiderio.ParseBestRunsMode(ff.BestRuns)
		if err != nil {
			return raiderio.CharacterDetailsFields{}, err
		}
		f = f.WithMythicPlusBestRuns(mode)
	}
	if ff.HighestRuns {
		f = f.WithMythicPlusHighestLevelRuns()
	}
	if ff.WeeklyHighestRuns {
		f = f.WithMythicPlusWeeklyHighestLevelRuns()
	}
	if ff.PreviousWeeklyHighestRuns {
		f = f.WithMythicPlusPreviousWeeklyHighestLevelRuns()
	}
	if ff.PreviousRanks {
		f = f.WithPreviousMythicPlusRanks()
	}
	if len(ff.MetaTiers) > 0 {
		f = f.WithRaidAchievementMeta(ff.MetaTiers...)
	}
	for _, slug := range ff.CurveRaids {
		raid, err := raiderio.ParseRaid(strings.ToLower(slug))
		if err != nil {
			return raiderio.CharacterDetailsFields{}, err
		}
		f = f.WithRaidAchievementCurve(raid)
	}

	return f, nil
}

// ProfileRequest describes a batch of characters on one realm
type ProfileRequest struct {
	Region  raiderio.Region
	Realm   string
	Names   []string
	Fields  raiderio.CharacterDetailsFields
	Workers int
}

// FetchProfiles fetches every named character, results keep the order of the names
func FetchProfiles(ctx context.Context, client *raiderio.Client, pr ProfileRequest) ([]raiderio.CharacterDetails, error) {
	workers := pr.Workers
	if workers < 1 {
		workers = DefaultProfileWorkers
	}

	logging.WithFields(logrus.Fields{
		"region": pr.Region,
		"realm":  pr.Realm,
		"names":  pr.Names,
		"fields": pr.Fields.String(),
	}).Info("Fetching character profiles")

	out := make([]raiderio.CharacterDetails, len(pr.Names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, name := range pr.Names {
		i, name := i, name

		g.Go(func() error {
			cd, err := client.CharacterDetails(pr.Region, name, pr.Realm).
				WithFields(pr.Fields).
				Get(ctx)
			if err != nil {
				logging.WithFields(logrus.Fields{
					"error": err.Error(),
					"name":  name,
				}).Error("Could not fetch character profile")

				return err
			}

			out[i] = cd

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
