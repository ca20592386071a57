package raiderio

import "time"

// Ranking is a position at world, region and realm scope
type Ranking struct {
	World  int `json:"world"`
	Region int `json:"region"`
	Realm  int `json:"realm"`
}

// MythicPlusRanks are the character's mythic plus rankings, role rankings are only present for roles played
type MythicPlusRanks struct {
	Overall        Ranking `json:"overall"`
	FactionOverall Ranking `json:"faction_overall"`

	Class        Ranking `json:"class"`
	FactionClass Ranking `json:"faction_class"`

	DPS        *Ranking `json:"dps"`
	FactionDPS *Ranking `json:"faction_dps"`

	ClassDPS        *Ranking `json:"class_dps"`
	FactionClassDPS *Ranking `json:"faction_class_dps"`

	Tank        *Ranking `json:"tank"`
	FactionTank *Ranking `json:"faction_tank"`

	ClassTank        *Ranking `json:"class_tank"`
	FactionClassTank *Ranking `json:"faction_class_tank"`

	Healer        *Ranking `json:"healer"`
	FactionHealer *Ranking `json:"faction_healer"`

	ClassHealer        *Ranking `json:"class_healer"`
	FactionClassHealer *Ranking `json:"faction_class_healer"`
}

// Scores are mythic plus scores per role and per spec slot
type Scores struct {
	All    float64 `json:"all"`
	DPS    float64 `json:"dps"`
	Healer float64 `json:"healer"`
	Tank   float64 `json:"tank"`
	Spec0  float64 `json:"spec_0"`
	Spec1  float64 `json:"spec_1"`
	Spec2  float64 `json:"spec_2"`
	Spec3  float64 `json:"spec_3"`
}

// MythicPlusScores are the scores for one season
type MythicPlusScores struct {
	Season Season `json:"season"`
	Scores Scores `json:"scores"`
}

// Dungeon is a mythic plus dungeon
type Dungeon string

// dungeons
const (
	DungeonMechagonWorkshop   Dungeon = "Mechagon Workshop"
	DungeonMechagonJunkyard   Dungeon = "Mechagon Junkyard"
	DungeonKingsRest          Dungeon = "Kings' Rest"
	DungeonFreehold           Dungeon = "Freehold"
	DungeonTempleOfSethraliss Dungeon = "Temple of Sethraliss"
	DungeonTolDagor           Dungeon = "Tol Dagor"
	DungeonTheUnderrot        Dungeon = "The Underrot"
	DungeonShrineOfTheStorm   Dungeon = "Shrine of the Storm"
	DungeonAtalDazar          Dungeon = "Atal'dazar"
	DungeonTheMotherlode      Dungeon = "The MOTHERLODE!!"
	DungeonSiegeOfBoralus     Dungeon = "Siege of Boralus"
	DungeonWaycrestManor      Dungeon = "Waycrest Manor"
)

var dungeons = []Dungeon{
	DungeonMechagonWorkshop, DungeonMechagonJunkyard, DungeonKingsRest,
	DungeonFreehold, DungeonTempleOfSethraliss, DungeonTolDagor,
	DungeonTheUnderrot, DungeonShrineOfTheStorm, DungeonAtalDazar,
	DungeonTheMotherlode, DungeonSiegeOfBoralus, DungeonWaycrestManor,
}

// UnmarshalJSON rejects unknown dungeons
func (d *Dungeon) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("dungeon", data, dungeons)
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// AffixName names a weekly mythic plus affix
type AffixName string

// affixes
const (
	AffixFortified  AffixName = "Fortified"
	AffixTyrannical AffixName = "Tyrannical"
	AffixBolstering AffixName = "Bolstering"
	AffixRaging     AffixName = "Raging"
	AffixSanguine   AffixName = "Sanguine"
	AffixTeeming    AffixName = "Teeming"
	AffixBursting   AffixName = "Bursting"
	AffixNecrotic   AffixName = "Necrotic"
	AffixSkittish   AffixName = "Skittish"
	AffixVolcanic   AffixName = "Volcanic"
	AffixExplosive  AffixName = "Explosive"
	AffixQuaking    AffixName = "Quaking"
	AffixGrievous   AffixName = "Grievous"
	AffixInfested   AffixName = "Infested"
	AffixReaping    AffixName = "Reaping"
	AffixBeguiling  AffixName = "Beguiling"
	AffixAwakened   AffixName = "Awakened"
)

var affixNames = []AffixName{
	AffixFortified, AffixTyrannical, AffixBolstering, AffixRaging,
	AffixSanguine, AffixTeeming, AffixBursting, AffixNecrotic, AffixSkittish,
	AffixVolcanic, AffixExplosive, AffixQuaking, AffixGrievous, AffixInfested,
	AffixReaping, AffixBeguiling, AffixAwakened,
}

// UnmarshalJSON rejects unknown affixes
func (a *AffixName) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("affix", data, affixNames)
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// Affix is a modifier active during a keystone run
type Affix struct {
	ID          int       `json:"id"`
	Name        AffixName `json:"name"`
	Description string    `json:"description"`
	WowheadURL  string    `json:"wowhead_url"`
}

// KeystoneRun is one completed mythic plus dungeon
type KeystoneRun struct {
	Dungeon             Dungeon   `json:"dungeon"`
	ShortName           string    `json:"short_name"`
	KeystoneRunID       int       `json:"keystone_run_id"`
	MythicLevel         int       `json:"mythic_level"`
	CompletedAt         time.Time `json:"completed_at"`
	ClearTimeMs         int       `json:"clear_time_ms"`
	ParTimeMs           int       `json:"par_time_ms"`
	NumKeystoneUpgrades int       `json:"num_keystone_upgrades"`
	MapChallengeModeID  int       `json:"map_challenge_mode_id"`
	Score               float64   `json:"score"`
	URL                 string    `json:"url"`
	Affixes             []Affix   `json:"affixes"`
}

// ClearTime is the time taken to complete the run
func (r KeystoneRun) ClearTime() time.Duration {
	return time.Duration(r.ClearTimeMs) * time.Millisecond
}

// InTime reports whether the run beat the par time, false when the par time is unknown
func (r KeystoneRun) InTime() bool {
	return r.ParTimeMs > 0 && r.ClearTimeMs <= r.ParTimeMs
}
