package internal

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/itchyny/gojq"
)

// ApplyQuery runs a jq expression over the json form of v
func ApplyQuery(expression string, v interface{}) ([]interface{}, error) {
	query, err := gojq.Parse(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(query)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	// gojq only walks plain maps and slices
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var input interface{}
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, err
	}

	out := []interface{}{}
	iter := code.Run(input)
	for {
		result, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := result.(error); isErr {
			return nil, err
		}

		out = append(out, result)
	}

	return out, nil
}

// WriteJSON writes v as indented json, or each result of the jq expression when one is given
func WriteJSON(w io.Writer, v interface{}, expression string) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if expression == "" {
		return encoder.Encode(v)
	}

	results, err := ApplyQuery(expression, v)
	if err != nil {
		return err
	}
	for _, result := range results {
		if err := encoder.Encode(result); err != nil {
			return err
		}
	}

	return nil
}
