package tradeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"tradeaskill/internal/domain/skill"
	"tradeaskill/internal/domain/user"
	"tradeaskill/internal/pkg/metrics"
)

// ErrTimeout matches any NetworkError caused by the request deadline.
var ErrTimeout = errors.New("upstream timeout")

// NetworkError covers every way an upstream call can fail: transport errors,
// non-2xx responses, undecodable bodies and timeouts.
type NetworkError struct {
	Op         string
	URL        string
	StatusCode int
	Err        error

	timeout bool
}

func (e *NetworkError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.timeout:
		return fmt.Sprintf("%s %s: timed out", e.Op, e.URL)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: status=%d", e.Op, e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Op, e.URL, e.Err)
	}
	return fmt.Sprintf("%s %s: failed", e.Op, e.URL)
}

func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrTimeout && e != nil && e.timeout
}

func (e *NetworkError) Timeout() bool {
	return e != nil && e.timeout
}

type Client struct {
	skillsURL string
	usersURL  string
	client    *http.Client
	logger    *log.Logger
}

func NewClient(skillsURL, usersURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		skillsURL: strings.TrimSpace(skillsURL),
		usersURL:  strings.TrimSpace(usersURL),
		client:    &http.Client{Timeout: timeout},
		logger:    logger,
	}
}

func (c *Client) FetchSkills(ctx context.Context) ([]skill.Record, error) {
	var out []skill.Record
	if err := c.getJSON(ctx, "fetch_skills", c.skillsURL, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []skill.Record{}
	}
	return out, nil
}

func (c *Client) FetchUsers(ctx context.Context) ([]user.Profile, error) {
	var out []user.Profile
	if err := c.getJSON(ctx, "fetch_users", c.usersURL, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateUser(ctx context.Context, u user.NewUser) error {
	const op = "create_user"

	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.usersURL, bytes.NewReader(b))
	if err != nil {
		return c.fail(op, c.usersURL, 0, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fail(op, c.usersURL, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.failStatus(op, c.usersURL, resp)
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))
	metrics.ObserveUpstream(op, metrics.OutcomeOK)
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return c.fail(op, endpoint, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return c.fail(op, endpoint, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return c.failStatus(op, endpoint, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(op, endpoint, 0, fmt.Errorf("decode response: %w", err))
	}
	metrics.ObserveUpstream(op, metrics.OutcomeOK)
	return nil
}

func (c *Client) failStatus(op, endpoint string, resp *http.Response) error {
	rb, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if c.logger != nil {
		c.logger.Printf("[Upstream] %s error endpoint=%s status=%d body=%q", op, endpoint, resp.StatusCode, strings.TrimSpace(string(rb)))
	}
	metrics.ObserveUpstream(op, metrics.OutcomeError)
	return &NetworkError{Op: op, URL: endpoint, StatusCode: resp.StatusCode}
}

func (c *Client) fail(op, endpoint string, status int, err error) error {
	ne := &NetworkError{Op: op, URL: endpoint, StatusCode: status, Err: err, timeout: isTimeout(err)}
	if c.logger != nil {
		c.logger.Printf("[Upstream] %s error endpoint=%s err=%v", op, endpoint, err)
	}
	outcome := metrics.OutcomeError
	if ne.timeout {
		outcome = metrics.OutcomeTimeout
	}
	metrics.ObserveUpstream(op, outcome)
	return ne
}

func isTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var nerr net.Error
	return errors.As(err, &nerr) && nerr.Timeout()
}
