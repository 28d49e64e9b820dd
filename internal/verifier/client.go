// Package verifier talks to the remote F* verification service over
// HTTP/JSON and normalizes its replies.
package verifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

const (
	// DefaultBaseURL is used when FSTAR_VERIFIER_SERVER_HOST is not set.
	DefaultBaseURL = "http://localhost:8005"
	// DefaultTimeout bounds the whole request: connect, write and read.
	DefaultTimeout = 15 * time.Second

	checkPath = "/check_problem_solution"
)

// Request is the outbound payload for a verification round trip.
type Request struct {
	Solution  string `json:"solution"`
	ProblemID string `json:"problem_id"`
}

// Response is the service's reply with every field defaulted defensively:
// a missing return_code reads as -2, a missing score leaves ScoreSet false,
// a missing messages reads as the empty string.
type Response struct {
	ReturnCode int
	Score      float64
	ScoreSet   bool
	Messages   string
}

// Passed reports whether the service verified the submission.
func (r Response) Passed() bool {
	return r.ReturnCode == 0 && r.ScoreSet && r.Score == 1.0
}

// Client issues verification requests. The zero value is not usable; use
// NewClient.
type Client struct {
	baseURL string
	timeout time.Duration
	logger  zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the verification service base URL.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if strings.TrimSpace(u) != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithTimeout overrides the whole-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckProblemSolution POSTs the submission and decodes the reply. Errors
// are always *Error with a transport or protocol kind. Each call uses a
// fresh http.Client: no connection reuse across verification calls.
func (c *Client) CheckProblemSolution(ctx context.Context, req Request) (Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, transportError(fmt.Sprintf("encode request: %v", err), err)
	}

	url := c.baseURL + checkPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Response{}, transportError(fmt.Sprintf("build request: %v", err), err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	httpClient := &http.Client{Timeout: c.timeout}
	resp, err := httpClient.Do(httpReq)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", url).Str("problem_id", req.ProblemID).Msg("verification request failed")
		return Response{}, transportError(err.Error(), err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, transportError(fmt.Sprintf("read response: %v", err), err)
	}

	c.logger.Debug().
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Str("problem_id", req.ProblemID).
		Msg("verification response")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		detail := strings.TrimSpace(string(respBody))
		if detail == "" {
			detail = http.StatusText(resp.StatusCode)
		}
		return Response{}, protocolError(fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, detail), nil)
	}

	return decodeResponse(respBody)
}

func decodeResponse(body []byte) (Response, error) {
	if !gjson.ValidBytes(body) {
		return Response{}, protocolError("malformed JSON response body", nil)
	}

	out := Response{ReturnCode: -2}
	if rc := gjson.GetBytes(body, "return_code"); rc.Exists() {
		out.ReturnCode = int(rc.Int())
	}
	if sc := gjson.GetBytes(body, "score"); sc.Exists() {
		out.Score = sc.Float()
		out.ScoreSet = true
	}
	out.Messages = gjson.GetBytes(body, "messages").String()
	return out, nil
}
