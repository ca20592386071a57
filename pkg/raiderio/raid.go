package raiderio

import (
	"encoding/json"
	"time"
)

// Raid is a raid instance, its value is the raider.io slug
type Raid string

// raids
const (
	RaidUldir                 Raid = "uldir"
	RaidBattleOfDazaralor     Raid = "battle-of-dazaralor"
	RaidCrucibleOfStorms      Raid = "crucible-of-storms"
	RaidTheEternalPalace      Raid = "the-eternal-palace"
	RaidNyalothaTheWakingCity Raid = "nyalotha-the-waking-city"
)

// Raids lists every known raid
var Raids = []Raid{
	RaidUldir, RaidBattleOfDazaralor, RaidCrucibleOfStorms,
	RaidTheEternalPalace, RaidNyalothaTheWakingCity,
}

// ParseRaid resolves a raid slug
func ParseRaid(slug string) (Raid, error) {
	return parseEnum("raid", slug, Raids)
}

// UnmarshalJSON rejects unknown raids
func (r *Raid) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("raid", data, Raids)
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// Progression is the boss kill count for a raid at each difficulty
type Progression struct {
	Summary            string `json:"summary"`
	TotalBosses        int    `json:"total_bosses"`
	NormalBossesKilled int    `json:"normal_bosses_killed"`
	HeroicBossesKilled int    `json:"heroic_bosses_killed"`
	MythicBossesKilled int    `json:"mythic_bosses_killed"`
}

// RaidProgression holds progression for every raid tier
type RaidProgression struct {
	BattleOfDazaralor     Progression `json:"battle-of-dazaralor"`
	CrucibleOfStorms      Progression `json:"crucible-of-storms"`
	NyalothaTheWakingCity Progression `json:"nyalotha-the-waking-city"`
	TheEternalPalace      Progression `json:"the-eternal-palace"`
	Uldir                 Progression `json:"uldir"`
}

// Get returns the progression for a raid
func (p RaidProgression) Get(raid Raid) (Progression, bool) {
	switch raid {
	case RaidUldir:
		return p.Uldir, true
	case RaidBattleOfDazaralor:
		return p.BattleOfDazaralor, true
	case RaidCrucibleOfStorms:
		return p.CrucibleOfStorms, true
	case RaidTheEternalPalace:
		return p.TheEternalPalace, true
	case RaidNyalothaTheWakingCity:
		return p.NyalothaTheWakingCity, true
	default:
		return Progression{}, false
	}
}

// RaidAchievementCurve is when ahead of the curve and cutting edge were earned for a raid
type RaidAchievementCurve struct {
	Raid            Raid       `json:"raid"`
	AheadOfTheCurve *time.Time `json:"aotc"`
	CuttingEdge     *time.Time `json:"cutting_edge"`
}

// RaidAchievementMeta is the per-tier meta achievement payload, kept undecoded
type RaidAchievementMeta map[string]json.RawMessage
