// Package feedback submits user feedback to an external collector.
//
// Submission is fire-and-forget: callers never block on it and never see its
// outcome; failures are only logged.
package feedback

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const sendTimeout = 5 * time.Second

type Client struct {
	url  string
	hc   *http.Client
	log  *zap.SugaredLogger
	done chan struct{} // closed when the last Send completes
}

// New returns a client posting to url. An empty url disables submission.
func New(url string, log *zap.SugaredLogger) *Client {
	return &Client{
		url: url,
		hc:  &http.Client{Timeout: sendTimeout},
		log: log,
	}
}

type message struct {
	Text string    `json:"text"`
	When time.Time `json:"when"`
}

// Send posts text in the background and returns immediately.
func (c *Client) Send(text string) {
	if c == nil || c.url == "" {
		return
	}
	done := make(chan struct{})
	c.done = done
	go func() {
		defer close(done)
		c.post(text)
	}()
}

// Wait blocks until the most recent Send completes. One-shot callers use it
// to flush before exiting.
func (c *Client) Wait() {
	if c == nil || c.done == nil {
		return
	}
	<-c.done
}

func (c *Client) post(text string) {
	body, err := json.Marshal(message{Text: text, When: time.Now().UTC()})
	if err != nil {
		c.log.Warnw("feedback encode failed", "err", err)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		c.log.Warnw("feedback request failed", "err", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warnw("feedback send failed", "err", err)
		return
	}
	resp.Body.Close()
	if resp.StatusCode >= 300 {
		c.log.Warnw("feedback rejected", "status", resp.StatusCode)
	}
}
