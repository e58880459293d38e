package calendar

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/luisesc/salesbridge/internal/config"
)

// Client wraps the Google Calendar service.
type Client struct {
	svc *calendar.Service
}

// NewClient creates a Calendar client from a service-account key file. When
// cfg.DelegatedUser is set the client acts on behalf of that user via
// domain-wide delegation.
func NewClient(ctx context.Context, cfg config.Google) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read calendar credentials: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}
	jwtConfig.Subject = cfg.DelegatedUser

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create Calendar service: %w", err)
	}

	return &Client{svc: svc}, nil
}

// NewClientWithService wraps an existing Calendar service. Used by tests.
func NewClientWithService(svc *calendar.Service) *Client {
	return &Client{svc: svc}
}

// CreateEvent inserts a new event into the given calendar. The call is made
// exactly once; retries are the caller's concern.
func (c *Client) CreateEvent(ctx context.Context, calendarID string, input EventInput) (*EventSummary, error) {
	created, err := c.svc.Events.Insert(calendarID, toEvent(input)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	summary := toEventSummary(created)
	return &summary, nil
}

// GetEvent retrieves a specific event by ID.
func (c *Client) GetEvent(ctx context.Context, calendarID, eventID string) (*EventSummary, error) {
	event, err := c.svc.Events.Get(calendarID, eventID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	summary := toEventSummary(event)
	return &summary, nil
}

// ListEvents lists events in a calendar within a time range.
func (c *Client) ListEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]EventSummary, error) {
	events, err := c.svc.Events.List(calendarID).
		TimeMin(timeMin.Format(time.RFC3339)).
		TimeMax(timeMax.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	var summaries []EventSummary
	for _, event := range events.Items {
		summaries = append(summaries, toEventSummary(event))
	}

	return summaries, nil
}

// DeleteEvent deletes a calendar event.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.svc.Events.Delete(calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	return nil
}
