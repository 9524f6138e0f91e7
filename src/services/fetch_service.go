package services

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"os"
	"strings"
	"time"

	"github.com/username/matchpulse/src/logger"
	"golang.org/x/net/publicsuffix"
)

// ErrFetch reports a source that could not be retrieved.
var ErrFetch = errors.New("fetch: source unreachable")

type fetchServiceImpl struct {
	httpClient http.Client
}

// NewFetchService creates a fetch service backed by an HTTP client with
// a cookie jar. Some feed hosts bounce the first request through a
// cookie-setting redirect.
func NewFetchService(timeout time.Duration) FetchService {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		logger.L.Error("Failed to create cookie jar", "error", err)
	}

	return &fetchServiceImpl{
		httpClient: http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
	}
}

// Fetch returns a reader over the source body. Sources without an
// http(s) scheme are treated as local file paths. The caller owns the
// returned ReadCloser.
func (s *fetchServiceImpl) Fetch(source string) (io.ReadCloser, error) {
	logger.L.Info("Fetching match data", "source", source)

	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetch, err)
		}
		return file, nil
	}

	resp, err := s.httpClient.Get(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %d from %s", ErrFetch, resp.StatusCode, source)
	}
	return resp.Body, nil
}
