package raiderio

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"github.com/sotah-inc/raiderio/pkg/logging"
	"github.com/sotah-inc/raiderio/pkg/metric"
	"github.com/twinj/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// DefaultBaseURL - root of the raider.io api
const DefaultBaseURL = "https://raider.io/api/v1"

const (
	characterProfilePath = "/characters/profile"
	requestIDHeader      = "X-Request-Id"
	defaultUserAgent     = "sotah-inc/raiderio"
)

// Client - used for querying the raider.io api, safe for concurrent use
type Client struct {
	http      *resty.Client
	limiter   *rate.Limiter
	accessKey string
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBaseURL points the client at another api root
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// WithTransport replaces the underlying round tripper, it stays instrumented
func WithTransport(rt http.RoundTripper) ClientOption {
	return func(c *Client) {
		c.http.SetTransport(otelhttp.NewTransport(rt))
	}
}

// WithTimeout bounds every request, zero means no bound
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		c.http.SetHeader("User-Agent", userAgent)
	}
}

// WithAccessKey sends a raider.io api key with every request
func WithAccessKey(accessKey string) ClientOption {
	return func(c *Client) {
		c.accessKey = accessKey
	}
}

// WithRateLimit throttles requests made through this client
func WithRateLimit(limit rate.Limit, burst int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(limit, burst)
	}
}

// NewClient - generates a client used for querying the raider.io api
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(DefaultBaseURL).
			SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
			SetHeader("Accept", "application/json").
			SetHeader("User-Agent", defaultUserAgent).
			SetLogger(logging.Base()),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CharacterDetails starts a character profile request with no optional fields selected
func (c *Client) CharacterDetails(region Region, name string, realm string) CharacterDetailsRequest {
	return CharacterDetailsRequest{
		client: c,
		region: region,
		name:   name,
		realm:  realm,
	}
}

// CharacterDetailsRequest - a character profile request being built, every method returns an updated copy
type CharacterDetailsRequest struct {
	client *Client
	region Region
	name   string
	realm  string
	fields CharacterDetailsFields
}

// Fields returns the currently selected fields
func (r CharacterDetailsRequest) Fields() CharacterDetailsFields {
	return r.fields
}

// WithFields replaces the selected fields
func (r CharacterDetailsRequest) WithFields(fields CharacterDetailsFields) CharacterDetailsRequest {
	r.fields = fields

	return r
}

// Clear removes every selected field
func (r CharacterDetailsRequest) Clear() CharacterDetailsRequest {
	r.fields = CharacterDetailsFields{}

	return r
}

// Guild retrieves basic information about the guild the character is in
func (r CharacterDetailsRequest) Guild() CharacterDetailsRequest {
	r.fields = r.fields.WithGuild()

	return r
}

// Gear retrieves high level item information for the character
func (r CharacterDetailsRequest) Gear() CharacterDetailsRequest {
	r.fields = r.fields.WithGear()

	return r
}

// RaidProgression retrieves raid progression data for the character
func (r CharacterDetailsRequest) RaidProgression() CharacterDetailsRequest {
	r.fields = r.fields.WithRaidProgression()

	return r
}

// MythicPlusScoresBySeason retrieves scores for the given mythic plus season
func (r CharacterDetailsRequest) MythicPlusScoresBySeason(season Season) CharacterDetailsRequest {
	r.fields = r.fields.WithMythicPlusScoresBySeason(season)

	return r
}

// MythicPlusRanks retrieves current season mythic plus rankings
func (r CharacterDetailsRequest) MythicPlusRanks() CharacterDetailsRequest {
	r.fields = r.fields.WithMythicPlusRanks()

	return r
}

// MythicPlusRecentRuns retrieves the three most recent runs (current season only)
func (r CharacterDetailsRequest) MythicPlusRecentRuns() CharacterDetailsRequest {
	r.fields = r.fields.WithMythicPlusRecentRuns()

	return r
}

// MythicPlusAllBestRuns retrieves all of the character's best runs for the season
func (r CharacterDetailsRequest) MythicPlusAllBestRuns() CharacterDetailsRequest {
	r.fields = r.fields.WithMythicPlusBestRuns(BestRunsAll)

	return r
}

// MythicPlusThreeBestRuns retrieves the three highest scoring runs (current season only)
func (r CharacterDetailsRequest) MythicPlusThreeBestRuns() CharacterDetailsRequest {
	r.fields = r.fields.WithMythicPlusBestRuns(BestRunsThree)

	return r
}

// MythicPlusHighestLevelRuns retrieves the three highest runs by keystone level (current season only)
func (r CharacterDetailsRequest) MythicPlusHighestLevelRuns() CharacterDetailsRequest {
	r.fields = r.fields.WithMythicPlusHighestLevelRuns()

	return r
}

// MythicPlusWeeklyHighestLevelRuns retrieves the three highest runs of the current raid week
func (r CharacterDetailsRequest) MythicPlusWeeklyHighestLevelRuns() CharacterDetailsRequest {
	r.fields = r.fields.WithMythicPlusWeeklyHighestLevelRuns()

	return r
}

// MythicPlusPreviousWeeklyHighestLevelRuns retrieves the three highest runs of the previous raid week
func (r CharacterDetailsRequest) MythicPlusPreviousWeeklyHighestLevelRuns() CharacterDetailsRequest {
	r.fields = r.fields.WithMythicPlusPreviousWeeklyHighestLevelRuns()

	return r
}

// PreviousMythicPlusRanks retrieves previous season mythic plus rankings
func (r CharacterDetailsRequest) PreviousMythicPlusRanks() CharacterDetailsRequest {
	r.fields = r.fields.WithPreviousMythicPlusRanks()

	return r
}

// RaidAchievementMeta retrieves meta achievement status for the given raid tiers
func (r CharacterDetailsRequest) RaidAchievementMeta(tiers ...int) CharacterDetailsRequest {
	r.fields = r.fields.WithRaidAchievementMeta(tiers...)

	return r
}

// RaidAchievementCurve retrieves ahead of the curve and cutting edge dates for the given raids
func (r CharacterDetailsRequest) RaidAchievementCurve(raids ...Raid) CharacterDetailsRequest {
	r.fields = r.fields.WithRaidAchievementCurve(raids...)

	return r
}

func (r CharacterDetailsRequest) queryParams() map[string]string {
	params := map[string]string{
		"name":   r.name,
		"region": string(r.region),
		"realm":  r.realm,
	}
	if fields := r.fields.String(); fields != "" {
		params["fields"] = fields
	}
	if r.client.accessKey != "" {
		params["access_key"] = r.client.accessKey
	}

	return params
}

// Get executes the request against the raider.io api
func (r CharacterDetailsRequest) Get(ctx context.Context) (CharacterDetails, error) {
	requestID := uuid.NewV4().String()
	entry := logging.WithFields(logrus.Fields{
		"request_id": requestID,
		"region":     r.region,
		"realm":      r.realm,
		"name":       r.name,
		"fields":     r.fields.String(),
	})

	if r.client.limiter != nil {
		if err := r.client.limiter.Wait(ctx); err != nil {
			return CharacterDetails{}, &TransportError{Err: err}
		}
	}

	entry.Debug("Fetching character profile")
	resp, err := r.client.http.R().
		SetContext(ctx).
		EnableTrace().
		SetHeader(requestIDHeader, requestID).
		SetQueryParams(r.queryParams()).
		Get(characterProfilePath)
	if err != nil {
		entry.WithField("error", err.Error()).Error("Character profile request failed")

		return CharacterDetails{}, &TransportError{Err: err}
	}

	reportIngress(requestID, resp)

	cd, err := newCharacterDetailsFromResponse(resp.StatusCode(), resp.Body())
	if err != nil {
		entry.WithFields(logrus.Fields{
			"error":  err.Error(),
			"status": resp.StatusCode(),
		}).Info("Received failed character profile response from raider.io api")

		return CharacterDetails{}, err
	}

	return cd, nil
}

func reportIngress(requestID string, resp *resty.Response) {
	trace := resp.Request.TraceInfo()
	err := metric.ReportRaiderIOAPIIngress(resp.Request.URL, metric.RaiderIOAPIIngressMetrics{
		RequestID:          requestID,
		Status:             resp.StatusCode(),
		ByteCount:          resp.Size(),
		ConnectionDuration: trace.ConnTime,
		RequestDuration:    trace.TotalTime - trace.ConnTime,
	})
	if err != nil {
		logging.WithField("error", err.Error()).Debug("Could not report raider.io api ingress")
	}
}

// newCharacterDetailsFromResponse branches on the status class of a response
func newCharacterDetailsFromResponse(status int, body []byte) (CharacterDetails, error) {
	switch {
	case status >= 400 && status < 500:
		apiErr := &APIError{}
		if err := json.Unmarshal(body, apiErr); err != nil {
			return CharacterDetails{}, &DecodeError{StatusCode: status, Err: err}
		}
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = status
		}

		return CharacterDetails{}, apiErr
	case status >= 200 && status < 300:
		cd, err := NewCharacterDetails(body)
		if err != nil {
			return CharacterDetails{}, &DecodeError{StatusCode: status, Err: err}
		}

		return cd, nil
	default:
		return CharacterDetails{}, newUnexpectedStatusError(status, body)
	}
}
