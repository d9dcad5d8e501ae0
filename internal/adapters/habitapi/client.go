// Package habitapi talks to the external habit/calendar service over
// plain HTTP+JSON. One client implements all three collaborator ports:
// day-plan source, task service and calendar service.
package habitapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/korahq/kora-agent/internal/domain"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// TodayPlan fetches today's habits and events snapshot.
func (c *Client) TodayPlan(ctx context.Context) (*domain.DayPlan, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/plan/today", nil)
	if err != nil {
		return nil, fmt.Errorf("habitapi: build request: %w", err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("habitapi: fetch plan: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("habitapi: fetch plan: status %d", res.StatusCode)
	}

	var plan domain.DayPlan
	if err := json.NewDecoder(res.Body).Decode(&plan); err != nil {
		return nil, fmt.Errorf("habitapi: decode plan: %w", err)
	}
	return &plan, nil
}

// AddTask creates a task in the knowledge base.
func (c *Client) AddTask(ctx context.Context, title, priority string) error {
	return c.post(ctx, "/tasks", map[string]string{
		"title":    title,
		"priority": priority,
	})
}

// ScheduleEvent creates a calendar entry.
func (c *Client) ScheduleEvent(ctx context.Context, title, when string) error {
	return c.post(ctx, "/events", map[string]string{
		"title": title,
		"when":  when,
	})
}

func (c *Client) post(ctx context.Context, path string, body map[string]string) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("habitapi: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("habitapi: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("habitapi: %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("habitapi: %s: status %d", path, res.StatusCode)
	}
	return nil
}
