package internal

import (
	"encoding/json"
	"time"

	"github.com/sotah-inc/raiderio/pkg/logging"
	"github.com/sotah-inc/raiderio/pkg/raiderio"
	"github.com/sotah-inc/raiderio/pkg/util"
	"golang.org/x/time/rate"
)

func NewConfigFromFilepath(relativePath string) (Config, error) {
	logging.WithField("path", relativePath).Info("Reading Config")

	body, err := util.ReadFile(relativePath)
	if err != nil {
		return Config{}, err
	}

	return newConfig(body)
}

func newConfig(body []byte) (Config, error) {
	c := &Config{}
	if err := json.Unmarshal(body, &c); err != nil {
		return Config{}, err
	}

	return *c, nil
}

type Config struct {
	BaseURL   string          `json:"base_url"`
	Region    raiderio.Region `json:"region"`
	Realm     string          `json:"realm"`
	AccessKey string          `json:"access_key"`
	UserAgent string          `json:"user_agent"`
	RateLimit float64         `json:"rate_limit"`
	RateBurst int             `json:"rate_burst"`
	Timeout   string          `json:"timeout"`
	LogFile   string          `json:"log_file"`
	Verbosity string          `json:"verbosity"`
}

// ClientOptions turns the config into options for raiderio.NewClient
func (c Config) ClientOptions() ([]raiderio.ClientOption, error) {
	opts := []raiderio.ClientOption{}

	if c.BaseURL != "" {
		opts = append(opts, raiderio.WithBaseURL(c.BaseURL))
	}
	if c.AccessKey != "" {
		opts = append(opts, raiderio.WithAccessKey(c.AccessKey))
	}
	if c.UserAgent != "" {
		opts = append(opts, raiderio.WithUserAgent(c.UserAgent))
	}
	if c.RateLimit > 0 {
		burst := c.RateBurst
		if burst < 1 {
			burst = 1
		}
		opts = append(opts, raiderio.WithRateLimit(rate.Limit(c.RateLimit), burst))
	}
	if c.Timeout != "" {
		timeout, err := time.ParseDuration(c.Timeout)
		if err != nil {
			return nil, err
		}
		opts = append(opts, raiderio.WithTimeout(timeout))
	}

	return opts, nil
}
