package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// LeetCodeEndpoint is the upstream GraphQL URL. Var so tests can point
// it at a local httptest server.
var LeetCodeEndpoint = "https://leetcode.com/graphql"

// Every call round-trips to LeetCode; no caching (low traffic site).
var leetcodeClient = &http.Client{Timeout: 10 * time.Second}

const leetcodeCalendarQuery = `
query userProfileCalendar($username: String!) {
    matchedUser(username: $username) {
        userCalendar {
            activeYears
            streak
            totalActiveDays
            submissionCalendar
        }
    }
}
`

// LeetCodeUpstreamError reports a non-2xx answer from LeetCode so the
// handler can relay the upstream status code.
type LeetCodeUpstreamError struct {
	StatusCode int
	Status     string
}

func (e *LeetCodeUpstreamError) Error() string {
	return fmt.Sprintf("LeetCode API error: %s", e.Status)
}

// FetchLeetCodeCalendar posts the submission-calendar query for a
// username and returns the raw JSON response body.
func FetchLeetCodeCalendar(ctx context.Context, username string) ([]byte, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"query":     leetcodeCalendarQuery,
		"variables": map[string]string{"username": username},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, LeetCodeEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Referer", "https://leetcode.com")
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")

	resp, err := leetcodeClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &LeetCodeUpstreamError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}
