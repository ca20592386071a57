package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/sotah-inc/raiderio/cmd/raiderio/commands"
	"github.com/sotah-inc/raiderio/internal"
	"github.com/sotah-inc/raiderio/pkg/logging"
	"github.com/sotah-inc/raiderio/pkg/raiderio"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

func main() {
	// parsing the command flags
	var (
		app            = kingpin.New("raiderio", "A command-line raider.io client.")
		configFilepath = app.Flag("config", "Relative path to config json").Short('c').String()
		verbosity      = app.Flag("verbosity", "Log verbosity").Default("info").Short('v').String()
		logFile        = app.Flag("log-file", "File to write rotated logs to").OverrideDefaultFromEnvar("LOG_FILE").String()
		baseURL        = app.Flag("base-url", "raider.io api root").OverrideDefaultFromEnvar("RAIDERIO_BASE_URL").String()
		accessKey      = app.Flag("access-key", "raider.io api key").OverrideDefaultFromEnvar("RAIDERIO_ACCESS_KEY").String()

		profileCommand            = app.Command(string(commands.Profile), "For fetching character profiles.")
		region                    = profileCommand.Flag("region", "Region code (us, eu, kr, tw)").Short('r').String()
		realm                     = profileCommand.Flag("realm", "Realm name").String()
		names                     = profileCommand.Flag("name", "Character name, repeatable").Short('n').Required().Strings()
		workers                   = profileCommand.Flag("workers", "Profiles fetched at once").Default("4").Int()
		query                     = profileCommand.Flag("query", "jq expression applied to the output").Short('q').String()
		gear                      = profileCommand.Flag("gear", "Include gear").Bool()
		guild                     = profileCommand.Flag("guild", "Include guild").Bool()
		raidProgression           = profileCommand.Flag("raid-progression", "Include raid progression").Bool()
		seasons                   = profileCommand.Flag("season", "Include scores for a season (current, previous, season-bfa-N), repeatable").Strings()
		ranks                     = profileCommand.Flag("ranks", "Include mythic plus ranks").Bool()
		recentRuns                = profileCommand.Flag("recent-runs", "Include recent mythic plus runs").Bool()
		bestRuns                  = profileCommand.Flag("best-runs", "Include best mythic plus runs").Enum("all", "three")
		highestRuns               = profileCommand.Flag("highest-runs", "Include highest level mythic plus runs").Bool()
		weeklyHighestRuns         = profileCommand.Flag("weekly-highest-runs", "Include this week's highest level runs").Bool()
		previousWeeklyHighestRuns = profileCommand.Flag("previous-weekly-highest-runs", "Include last week's highest level runs").Bool()
		previousRanks             = profileCommand.Flag("previous-ranks", "Include previous season mythic plus ranks").Bool()
		metaTiers                 = profileCommand.Flag("meta-tier", "Include meta achievement status for a raid tier, repeatable").Ints()
		curveRaids                = profileCommand.Flag("curve", "Include curve achievements for a raid slug, repeatable").Strings()
	)
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// loading the config file
	c := internal.Config{}
	if len(*configFilepath) > 0 {
		var err error
		c, err = internal.NewConfigFromFilepath(*configFilepath)
		if err != nil {
			logging.WithFields(logrus.Fields{
				"error":    err.Error(),
				"filepath": *configFilepath,
			}).Fatal("Could not fetch config")

			return
		}
	}

	// optionally overriding verbosity and log file found in config
	if len(c.Verbosity) > 0 && *verbosity == "info" {
		*verbosity = c.Verbosity
	}
	logVerbosity, err := logrus.ParseLevel(*verbosity)
	if err != nil {
		logging.WithField("error", err.Error()).Fatal("Could not parse log level")

		return
	}
	logging.SetLevel(logVerbosity)

	if len(*logFile) > 0 {
		c.LogFile = *logFile
	}
	if len(c.LogFile) > 0 {
		out := internal.NewLogFile(c.LogFile)
		defer out.Close()

		logging.SetOutput(out)
		logging.SetFormatter(&logrus.JSONFormatter{})
	}
	logging.Info("Starting")

	// optionally overriding base-url and access-key in config
	if len(*baseURL) > 0 {
		logging.WithField("base-url", *baseURL).Info("Overriding base-url found in config")

		c.BaseURL = *baseURL
	}
	if len(*accessKey) > 0 {
		logging.Info("Overriding access-key found in config")

		c.AccessKey = *accessKey
	}

	opts, err := c.ClientOptions()
	if err != nil {
		logging.WithField("error", err.Error()).Fatal("Could not produce client options")

		return
	}
	client := raiderio.NewClient(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch cmd {
	case profileCommand.FullCommand():
		// resolving region and realm
		if len(*region) > 0 {
			reg, err := raiderio.ParseRegion(*region)
			if err != nil {
				logging.WithField("error", err.Error()).Fatal("Could not parse region")

				return
			}
			c.Region = reg
		}
		if len(*realm) > 0 {
			c.Realm = *realm
		}
		if c.Region == "" || c.Realm == "" {
			logging.Fatal("Region and realm cannot be blank")

			return
		}

		fields, err := internal.FieldFlags{
			Gear:                      *gear,
			Guild:                     *guild,
			RaidProgression:           *raidProgression,
			Seasons:                   *seasons,
			Ranks:                     *ranks,
			RecentRuns:                *recentRuns,
			BestRuns:                  *bestRuns,
			HighestRuns:               *highestRuns,
			WeeklyHighestRuns:         *weeklyHighestRuns,
			PreviousWeeklyHighestRuns: *previousWeeklyHighestRuns,
			PreviousRanks:             *previousRanks,
			MetaTiers:                 *metaTiers,
			CurveRaids:                *curveRaids,
		}.Fields()
		if err != nil {
			logging.WithField("error", err.Error()).Fatal("Could not parse fields")

			return
		}

		profiles, err := internal.FetchProfiles(ctx, client, internal.ProfileRequest{
			Region:  c.Region,
			Realm:   c.Realm,
			Names:   *names,
			Fields:  fields,
			Workers: *workers,
		})
		if err != nil {
			logging.WithFields(logrus.Fields{
				"error": err.Error(),
				"names": strings.Join(*names, ","),
			}).Fatal("Could not fetch character profiles")

			return
		}

		if err := internal.WriteJSON(os.Stdout, profiles, *query); err != nil {
			logging.WithField("error", err.Error()).Fatal("Could not write output")

			return
		}
	}
}
