package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyQuery(t *testing.T) {
	v := []map[string]interface{}{
		{"name": "Andybrew", "realm": "Draenor"},
		{"name": "Sylvanella", "realm": "Illidan"},
	}

	results, err := ApplyQuery(".[].name", v)
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, []interface{}{"Andybrew", "Sylvanella"}, results) {
		return
	}
}

func TestApplyQueryInvalid(t *testing.T) {
	if _, err := ApplyQuery(".[", nil); !assert.NotNil(t, err) {
		return
	}
	if _, err := ApplyQuery(`error("boom")`, nil); !assert.NotNil(t, err) {
		return
	}
}

func TestWriteJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	err := WriteJSON(buf, map[string]int{"level": 18}, "")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, "{\n  \"level\": 18\n}\n", buf.String()) {
		return
	}

	buf.Reset()
	err = WriteJSON(buf, map[string]int{"level": 18}, ".level")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, "18\n", buf.String()) {
		return
	}
}
