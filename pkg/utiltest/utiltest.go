package utiltest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/sotah-inc/raiderio/pkg/util"
)

// ReadFile - reads a file from a relative path
func ReadFile(relativePath string) ([]byte, error) {
	return util.ReadFile(relativePath)
}

// RequestLog - collects the requests received by a test server
type RequestLog struct {
	mu       sync.Mutex
	requests []*http.Request
}

func (l *RequestLog) add(r *http.Request) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.requests = append(l.requests, r.Clone(context.Background()))
}

// Len - number of requests received so far
func (l *RequestLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.requests)
}

// Last - most recently received request, nil when there were none
func (l *RequestLog) Last() *http.Request {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.requests) == 0 {
		return nil
	}

	return l.requests[len(l.requests)-1]
}

// ServeBody - serves a fixed body and status code up in an httptest server
func ServeBody(body []byte, status int) (*httptest.Server, *RequestLog) {
	reqLog := &RequestLog{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLog.add(r)

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		fmt.Fprintln(w, string(body))
	}))

	return ts, reqLog
}

// ServeFileWithStatus - serves a file up in an httptest server with the given status code
func ServeFileWithStatus(relativePath string, status int) (*httptest.Server, *RequestLog, error) {
	body, err := ReadFile(relativePath)
	if err != nil {
		return nil, nil, err
	}

	ts, reqLog := ServeBody(body, status)

	return ts, reqLog, nil
}

// ServeFile - serves a file up in an httptest server
func ServeFile(relativePath string) (*httptest.Server, error) {
	ts, _, err := ServeFileWithStatus(relativePath, http.StatusOK)

	return ts, err
}
