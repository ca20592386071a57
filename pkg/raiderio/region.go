package raiderio

import (
	"fmt"
	"strings"
)

// Region is a raider.io region, its value is the wire form
type Region string

// regions
const (
	RegionUS Region = "us"
	RegionEU Region = "eu"
	RegionKR Region = "kr"
	RegionTW Region = "tw"
)

// Regions lists every known region
var Regions = []Region{RegionUS, RegionEU, RegionKR, RegionTW}

// ParseRegion resolves a region code, ignoring case
func ParseRegion(s string) (Region, error) {
	return parseEnum("region", strings.ToLower(strings.TrimSpace(s)), Regions)
}

// UnmarshalJSON rejects unknown regions
func (r *Region) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum("region", data, Regions)
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// Expansion is a World of Warcraft expansion
type Expansion string

// expansions
const (
	BattleForAzeroth Expansion = "bfa"
)

// Expansions lists every known expansion
var Expansions = []Expansion{BattleForAzeroth}

// ParseExpansion resolves an expansion by its short code
func ParseExpansion(code string) (Expansion, error) {
	return parseEnum("expansion", code, Expansions)
}

// Code is the short code used on the wire
func (e Expansion) Code() string {
	return string(e)
}

func (e Expansion) String() string {
	switch e {
	case BattleForAzeroth:
		return "Battle for Azeroth"
	default:
		return fmt.Sprintf("Expansion(%s)", string(e))
	}
}
