package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	calendar "google.golang.org/api/calendar/v3"
)

func TestToEvent(t *testing.T) {
	start := time.Date(2026, 9, 5, 8, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	event := toEvent(EventInput{
		Summary:     "Follow up with Acme",
		Description: "agenda",
		Start:       start,
		End:         end,
		TimeZone:    "America/Phoenix",
		Reminders:   DefaultReminders(),
	})

	assert.Equal(t, "Follow up with Acme", event.Summary)
	require.NotNil(t, event.Start)
	assert.Equal(t, start.Format(time.RFC3339), event.Start.DateTime)
	assert.Equal(t, "America/Phoenix", event.Start.TimeZone)
	require.NotNil(t, event.End)
	assert.Equal(t, "America/Phoenix", event.End.TimeZone)

	require.NotNil(t, event.Reminders)
	assert.False(t, event.Reminders.UseDefault)
	assert.Contains(t, event.Reminders.ForceSendFields, "UseDefault")
	require.Len(t, event.Reminders.Overrides, 2)
	assert.Equal(t, "email", event.Reminders.Overrides[0].Method)
	assert.EqualValues(t, 1440, event.Reminders.Overrides[0].Minutes)
	assert.Equal(t, "popup", event.Reminders.Overrides[1].Method)
	assert.EqualValues(t, 10, event.Reminders.Overrides[1].Minutes)
}

func TestToEventDefaultsTimezoneToUTC(t *testing.T) {
	event := toEvent(EventInput{
		Start: time.Now(),
		End:   time.Now().Add(time.Hour),
	})
	assert.Equal(t, "UTC", event.Start.TimeZone)
	assert.Equal(t, "UTC", event.End.TimeZone)
	assert.Nil(t, event.Reminders)
}

func TestToEventSummary(t *testing.T) {
	t.Run("nil event", func(t *testing.T) {
		assert.Equal(t, EventSummary{}, toEventSummary(nil))
	})

	t.Run("full event", func(t *testing.T) {
		summary := toEventSummary(&calendar.Event{
			Id:          "evt-1",
			Summary:     "Follow up with Acme",
			Description: "agenda",
			Status:      "confirmed",
			HtmlLink:    "https://calendar.google.com/event?eid=abc",
			Start:       &calendar.EventDateTime{DateTime: "2026-09-05T08:00:00-07:00"},
			End:         &calendar.EventDateTime{DateTime: "2026-09-05T08:30:00-07:00"},
		})

		assert.Equal(t, "evt-1", summary.ID)
		assert.Equal(t, "https://calendar.google.com/event?eid=abc", summary.HTMLLink)
		assert.False(t, summary.Start.IsZero())
		assert.Equal(t, 30*time.Minute, summary.End.Sub(summary.Start))
	})
}
