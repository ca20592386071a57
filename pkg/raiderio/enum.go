package raiderio

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// maxSuggestionDistance is the largest edit distance still offered as a suggestion
const maxSuggestionDistance = 3

// EnumError is returned when a string does not name a known member of an enumeration
type EnumError struct {
	Kind       string
	Value      string
	Suggestion string
}

func (e *EnumError) Error() string {
	if e.Suggestion == "" {
		return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
	}

	return fmt.Sprintf("unknown %s %q (did you mean %q?)", e.Kind, e.Value, e.Suggestion)
}

func suggest(value string, known []string) string {
	best := ""
	bestDistance := maxSuggestionDistance + 1
	for _, candidate := range known {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(value), strings.ToLower(candidate))
		if distance < bestDistance {
			best = candidate
			bestDistance = distance
		}
	}

	return best
}

func parseEnum[T ~string](kind string, value string, known []T) (T, error) {
	names := make([]string, len(known))
	for i, member := range known {
		if string(member) == value {
			return member, nil
		}
		names[i] = string(member)
	}

	return "", &EnumError{Kind: kind, Value: value, Suggestion: suggest(value, names)}
}

func unmarshalEnum[T ~string](kind string, data []byte, known []T) (T, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}

	return parseEnum(kind, s, known)
}
