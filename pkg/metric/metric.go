package metric

import (
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sotah-inc/raiderio/pkg/logging"
)

const defaultMessage = "welp"

type name string

const (
	raiderIOAPIIngress name = "raiderio_api_ingress"
)

func report(n name, fields logrus.Fields) {
	fields["metric"] = n

	logging.WithFields(fields).Info(defaultMessage)
}

// RaiderIOAPIIngressMetrics - encapsulation of raider.io api metrics
type RaiderIOAPIIngressMetrics struct {
	RequestID          string
	Status             int
	ByteCount          int64
	ConnectionDuration time.Duration
	RequestDuration    time.Duration
}

func (m RaiderIOAPIIngressMetrics) toFields() logrus.Fields {
	return logrus.Fields{
		"request_id":    m.RequestID,
		"status":        m.Status,
		"byte_count":    m.ByteCount,
		"conn_duration": m.ConnectionDuration.Milliseconds(),
		"req_duration":  m.RequestDuration.Milliseconds(),
	}
}

// SanitizeURI blanks out the access key so it never reaches the logs
func SanitizeURI(uri string) (string, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}

	q := u.Query()
	if q.Get("access_key") == "" {
		return u.String(), nil
	}
	q.Set("access_key", "xxx")
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// ReportRaiderIOAPIIngress - for knowing how much network ingress is happening via raider.io api
func ReportRaiderIOAPIIngress(uri string, m RaiderIOAPIIngressMetrics) error {
	uri, err := SanitizeURI(uri)
	if err != nil {
		return err
	}

	fields := m.toFields()
	fields["uri"] = uri

	report(raiderIOAPIIngress, fields)

	return nil
}
