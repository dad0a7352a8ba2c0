package http

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

// RetryableTransport retries transient failures (network errors and 502/503/504
// responses) with exponential backoff before giving up.
type RetryableTransport struct {
	Transport  http.RoundTripper
	RetryCount int
}

func (t *RetryableTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading body: %w", err)
		}
	}

	var resp *http.Response
	var err error
	for attempt := 0; attempt <= t.RetryCount; attempt++ {
		if attempt > 0 {
			time.Sleep(backoff(attempt - 1))
			// consume any response to reuse the connection.
			drainBody(resp)
		}

		if bodyBytes != nil {
			req.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}
		resp, err = t.Transport.RoundTrip(req)

		if !shouldRetry(err, resp) {
			break
		}
	}

	return resp, err
}

func backoff(retries int) time.Duration {
	return time.Duration(math.Pow(2, float64(retries))) * time.Second
}

func shouldRetry(err error, resp *http.Response) bool {
	if err != nil {
		return true
	}
	if resp == nil {
		return true
	}

	return resp.StatusCode == http.StatusBadGateway ||
		resp.StatusCode == http.StatusServiceUnavailable ||
		resp.StatusCode == http.StatusGatewayTimeout
}

func drainBody(resp *http.Response) {
	if resp.Body != nil {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}
}
