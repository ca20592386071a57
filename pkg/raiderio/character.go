package raiderio

import (
	"encoding/json"

	"github.com/sotah-inc/raiderio/pkg/util"
)

// CharacterDetails is a character profile, optional payloads are nil unless their field was requested
type CharacterDetails struct {
	Name              string  `json:"name"`
	Race              Race    `json:"race"`
	Class             Class   `json:"class"`
	ActiveSpecName    Spec    `json:"active_spec_name"`
	ActiveSpecRole    Role    `json:"active_spec_role"`
	Gender            Gender  `json:"gender"`
	Faction           Faction `json:"faction"`
	Region            Region  `json:"region"`
	Realm             string  `json:"realm"`
	ProfileURL        string  `json:"profile_url"`
	AchievementPoints int     `json:"achievement_points"`
	HonorableKills    int     `json:"honorable_kills"`
	ThumbnailURL      string  `json:"thumbnail_url"`

	Gear                                     *Gear                  `json:"gear,omitempty"`
	Guild                                    *Guild                 `json:"guild,omitempty"`
	RaidProgression                          *RaidProgression       `json:"raid_progression,omitempty"`
	MythicPlusRanks                          *MythicPlusRanks       `json:"mythic_plus_ranks,omitempty"`
	MythicPlusScoresBySeason                 []MythicPlusScores     `json:"mythic_plus_scores_by_season,omitempty"`
	MythicPlusRecentRuns                     []KeystoneRun          `json:"mythic_plus_recent_runs,omitempty"`
	MythicPlusBestRuns                       []KeystoneRun          `json:"mythic_plus_best_runs,omitempty"`
	MythicPlusHighestLevelRuns               []KeystoneRun          `json:"mythic_plus_highest_level_runs,omitempty"`
	MythicPlusWeeklyHighestLevelRuns         []KeystoneRun          `json:"mythic_plus_weekly_highest_level_runs,omitempty"`
	MythicPlusPreviousWeeklyHighestLevelRuns []KeystoneRun          `json:"mythic_plus_previous_weekly_highest_level_runs,omitempty"`
	PreviousMythicPlusRanks                  *MythicPlusRanks       `json:"previous_mythic_plus_ranks,omitempty"`
	RaidAchievementMeta                      RaidAchievementMeta    `json:"raid_achievement_meta,omitempty"`
	RaidAchievementCurve                     []RaidAchievementCurve `json:"raid_achievement_curve,omitempty"`
}

// NewCharacterDetails loads a character profile from a byte array of json
func NewCharacterDetails(body []byte) (CharacterDetails, error) {
	cd := &CharacterDetails{}
	if err := json.Unmarshal(body, cd); err != nil {
		return CharacterDetails{}, err
	}

	return *cd, nil
}

// NewCharacterDetailsFromFilepath loads a character profile from a json file
func NewCharacterDetailsFromFilepath(relativeFilepath string) (CharacterDetails, error) {
	body, err := util.ReadFile(relativeFilepath)
	if err != nil {
		return CharacterDetails{}, err
	}

	return NewCharacterDetails(body)
}
