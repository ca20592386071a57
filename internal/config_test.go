package internal

import (
	"testing"

	"github.com/sotah-inc/raiderio/pkg/raiderio"
	"github.com/sotah-inc/raiderio/pkg/utiltest"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigFromFilepath(t *testing.T) {
	c, err := NewConfigFromFilepath("./TestData/Config.json")
	if !assert.Nil(t, err) || !assert.NotEmpty(t, c.BaseURL) {
		return
	}
	if !assert.Equal(t, raiderio.RegionEU, c.Region) || !assert.Equal(t, "Draenor", c.Realm) {
		return
	}
}

func TestNewConfig(t *testing.T) {
	body, err := utiltest.ReadFile("./TestData/Config.json")
	if !assert.Nil(t, err) {
		return
	}

	c, err := newConfig(body)
	if !assert.Nil(t, err) || !assert.Equal(t, "10s", c.Timeout) {
		return
	}

	opts, err := c.ClientOptions()
	if !assert.Nil(t, err) || !assert.Len(t, opts, 4) {
		return
	}
}

func TestNewConfigInvalidRegion(t *testing.T) {
	_, err := newConfig([]byte(`{"region": "mars"}`))
	if !assert.NotNil(t, err) {
		return
	}
}

func TestConfigInvalidTimeout(t *testing.T) {
	c := Config{Timeout: "soon"}
	if _, err := c.ClientOptions(); !assert.NotNil(t, err) {
		return
	}
}
