package raiderio

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// SeasonKind discriminates the Season variants
type SeasonKind int

// season kinds
const (
	SeasonKindCurrent SeasonKind = iota
	SeasonKindPrevious
	SeasonKindSpecific
)

// Season identifies a mythic plus season: current, previous, or a numbered season of an expansion
type Season struct {
	Kind      SeasonKind
	Expansion Expansion
	Number    uint8
}

// relative seasons
var (
	SeasonCurrent  = Season{Kind: SeasonKindCurrent}
	SeasonPrevious = Season{Kind: SeasonKindPrevious}
)

// SpecificSeason builds a numbered season of an expansion
func SpecificSeason(expansion Expansion, number uint8) Season {
	return Season{Kind: SeasonKindSpecific, Expansion: expansion, Number: number}
}

// season parse errors
var (
	ErrSeasonNoExpansion = errors.New("no expansion")
	ErrSeasonNoNumber    = errors.New("no season number")
)

// SeasonParseError describes why a season string could not be parsed
type SeasonParseError struct {
	Input string
	Err   error
}

func (e *SeasonParseError) Error() string {
	return fmt.Sprintf("could not parse season %q: %s", e.Input, e.Err.Error())
}

func (e *SeasonParseError) Unwrap() error {
	return e.Err
}

// ParseSeason parses strings of the form <prefix>-<expansion>-<number>, e.g. season-bfa-4.
// The words current and previous resolve to the relative seasons.
func ParseSeason(s string) (Season, error) {
	switch strings.TrimPrefix(s, ":") {
	case "current":
		return SeasonCurrent, nil
	case "previous":
		return SeasonPrevious, nil
	}

	parts := strings.Split(s, "-")
	if len(parts) < 2 || parts[1] == "" {
		return Season{}, &SeasonParseError{Input: s, Err: ErrSeasonNoExpansion}
	}

	expansion, err := ParseExpansion(parts[1])
	if err != nil {
		return Season{}, &SeasonParseError{Input: s, Err: err}
	}

	if len(parts) < 3 || parts[2] == "" {
		return Season{}, &SeasonParseError{Input: s, Err: ErrSeasonNoNumber}
	}

	number, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return Season{}, &SeasonParseError{Input: s, Err: fmt.Errorf("invalid number %q", parts[2])}
	}

	return SpecificSeason(expansion, uint8(number)), nil
}

func (s Season) String() string {
	switch s.Kind {
	case SeasonKindCurrent:
		return "current"
	case SeasonKindPrevious:
		return "previous"
	default:
		return fmt.Sprintf("season-%s-%d", s.Expansion.Code(), s.Number)
	}
}

// fieldSuffix is the form appended to mythic_plus_scores_by_season
func (s Season) fieldSuffix() string {
	return ":" + s.String()
}

// MarshalJSON encodes the season in its wire form
func (s Season) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes the wire form
func (s *Season) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v, err := ParseSeason(raw)
	if err != nil {
		return err
	}
	*s = v

	return nil
}

// BestRunsMode selects how many best runs are requested
type BestRunsMode int

// best runs modes
const (
	BestRunsNone BestRunsMode = iota
	BestRunsThree
	BestRunsAll
)

// ParseBestRunsMode resolves all or three
func ParseBestRunsMode(s string) (BestRunsMode, error) {
	switch s {
	case "all":
		return BestRunsAll, nil
	case "three":
		return BestRunsThree, nil
	default:
		return BestRunsNone, &EnumError{Kind: "best runs mode", Value: s, Suggestion: suggest(s, []string{"all", "three"})}
	}
}
