package metric

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sotah-inc/raiderio/pkg/logging"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeURI(t *testing.T) {
	uri, err := SanitizeURI("https://raider.io/api/v1/characters/profile?access_key=secret&name=Andybrew")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, "https://raider.io/api/v1/characters/profile?access_key=xxx&name=Andybrew", uri) {
		return
	}

	uri, err = SanitizeURI("https://raider.io/api/v1/characters/profile?name=Andybrew")
	if !assert.Nil(t, err) {
		return
	}
	if !assert.Equal(t, "https://raider.io/api/v1/characters/profile?name=Andybrew", uri) {
		return
	}
}

func TestReportRaiderIOAPIIngress(t *testing.T) {
	buf := &bytes.Buffer{}
	logging.SetOutput(buf)
	defer logging.SetOutput(os.Stderr)
	logging.SetFormatter(&logrus.JSONFormatter{})
	defer logging.SetFormatter(&logrus.TextFormatter{})

	err := ReportRaiderIOAPIIngress("https://raider.io/api/v1/characters/profile?access_key=secret", RaiderIOAPIIngressMetrics{
		RequestID:          "abc",
		Status:             200,
		ByteCount:          512,
		ConnectionDuration: 20 * time.Millisecond,
		RequestDuration:    150 * time.Millisecond,
	})
	if !assert.Nil(t, err) {
		return
	}

	entry := map[string]interface{}{}
	if !assert.Nil(t, json.Unmarshal(buf.Bytes(), &entry)) {
		return
	}
	if !assert.Equal(t, string(raiderIOAPIIngress), entry["metric"]) {
		return
	}
	if !assert.Equal(t, float64(512), entry["byte_count"]) {
		return
	}
	if !assert.Equal(t, float64(150), entry["req_duration"]) {
		return
	}
	if !assert.NotContains(t, entry["uri"], "secret") {
		return
	}
}
