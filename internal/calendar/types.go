package calendar

import (
	"time"

	calendar "google.golang.org/api/calendar/v3"
)

// Reminder is one entry of an event's reminder override list.
type Reminder struct {
	// Method is "email" or "popup".
	Method string

	// Minutes before the event start.
	Minutes int64
}

// DefaultReminders is the fixed reminder policy for follow-up events: one
// email a day ahead, one popup ten minutes ahead.
func DefaultReminders() []Reminder {
	return []Reminder{
		{Method: "email", Minutes: 24 * 60},
		{Method: "popup", Minutes: 10},
	}
}

// EventInput represents the input for creating a calendar event.
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time

	// TimeZone is the IANA label sent with both start and end. Defaults to
	// UTC when empty.
	TimeZone string

	// Reminders, when non-empty, disables the calendar's default reminders
	// and installs these overrides instead.
	Reminders []Reminder
}

// EventSummary represents a created or fetched calendar event. ID and
// HTMLLink are backend-assigned opaque strings.
type EventSummary struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Status      string
	HTMLLink    string
}

// toEvent converts an EventInput to the wire representation.
func toEvent(input EventInput) *calendar.Event {
	tz := input.TimeZone
	if tz == "" {
		tz = "UTC"
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.Format(time.RFC3339),
			TimeZone: tz,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.Format(time.RFC3339),
			TimeZone: tz,
		},
	}

	if len(input.Reminders) > 0 {
		overrides := make([]*calendar.EventReminder, 0, len(input.Reminders))
		for _, r := range input.Reminders {
			overrides = append(overrides, &calendar.EventReminder{
				Method:  r.Method,
				Minutes: r.Minutes,
			})
		}
		event.Reminders = &calendar.EventReminders{
			UseDefault: false,
			Overrides:  overrides,
			// UseDefault is a zero value and would otherwise be dropped
			// from the request body.
			ForceSendFields: []string{"UseDefault"},
		}
	}

	return event
}

// toEventSummary converts a wire event to an EventSummary.
func toEventSummary(event *calendar.Event) EventSummary {
	if event == nil {
		return EventSummary{}
	}

	summary := EventSummary{
		ID:          event.Id,
		Summary:     event.Summary,
		Description: event.Description,
		Status:      event.Status,
		HTMLLink:    event.HtmlLink,
	}

	if event.Start != nil && event.Start.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, event.Start.DateTime); err == nil {
			summary.Start = t
		}
	}
	if event.End != nil && event.End.DateTime != "" {
		if t, err := time.Parse(time.RFC3339, event.End.DateTime); err == nil {
			summary.End = t
		}
	}

	return summary
}
