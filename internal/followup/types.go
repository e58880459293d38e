package followup

import (
	"encoding/json"
	"fmt"
)

// ScheduleRequest carries the parameters of a single scheduling run. The
// caller fills in defaults before handing it to the scheduler, so a zero
// DaysFromNow genuinely means "today".
type ScheduleRequest struct {
	AccountID       string
	DaysFromNow     int
	DurationMinutes int
	EventHour       int
	EventMinute     int
	Title           string
}

// AccountSummary is the account slice of a successful result.
type AccountSummary struct {
	ID       string `json:"Id"`
	Name     string `json:"Name"`
	Type     string `json:"Type"`
	Industry string `json:"Industry"`
}

// CreatedEvent describes the calendar event a successful run produced.
type CreatedEvent struct {
	ID              string `json:"Id"`
	Title           string `json:"title"`
	Start           string `json:"start"`
	DurationMinutes int    `json:"duration"`
	Link            string `json:"link"`
}

// Result is the outcome envelope of a scheduling run. It is a tagged
// union: a successful result carries the account, event and opportunity
// count and no error, a failed one carries only the error message.
type Result struct {
	Success            bool
	Account            *AccountSummary
	CalendarEvent      *CreatedEvent
	OpportunitiesFound int
	Error              string
}

// MarshalJSON emits exactly one branch of the union so a failed result
// never leaks partial account or event data.
func (r Result) MarshalJSON() ([]byte, error) {
	if !r.Success {
		return json.Marshal(struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}{Success: false, Error: r.Error})
	}
	return json.Marshal(struct {
		Success            bool            `json:"success"`
		Account            *AccountSummary `json:"account"`
		CalendarEvent      *CreatedEvent   `json:"calendar_event"`
		OpportunitiesFound int             `json:"opportunities_found"`
	}{
		Success:            true,
		Account:            r.Account,
		CalendarEvent:      r.CalendarEvent,
		OpportunitiesFound: r.OpportunitiesFound,
	})
}

// failure builds a failed result from an error.
func failure(err error) Result {
	return Result{Error: err.Error()}
}

// LookupError indicates the CRM fetch stage failed, before anything was
// written to the calendar.
type LookupError struct {
	AccountID string
	Err       error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to look up account %s: %v", e.AccountID, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

// CalendarError indicates the Calendar API rejected the event insert.
type CalendarError struct {
	Err error
}

func (e *CalendarError) Error() string {
	return fmt.Sprintf("Google Calendar API error: %v", e.Err)
}

func (e *CalendarError) Unwrap() error { return e.Err }
