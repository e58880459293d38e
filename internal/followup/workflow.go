package followup

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"google.golang.org/api/googleapi"

	"github.com/luisesc/salesbridge/internal/calendar"
	"github.com/luisesc/salesbridge/internal/logging"
	"github.com/luisesc/salesbridge/internal/salesforce"
)

// openOpportunityLimit caps the opportunities pulled into the agenda.
const openOpportunityLimit = 5

// CRM provides the account and opportunity lookups the scheduler needs.
// *salesforce.Client satisfies it.
type CRM interface {
	GetAccount(ctx context.Context, accountID string) (*salesforce.Account, error)
	OpenOpportunities(ctx context.Context, accountID string, limit int) ([]salesforce.Opportunity, error)
}

// Publisher writes events to a calendar. *calendar.Client satisfies it.
type Publisher interface {
	CreateEvent(ctx context.Context, calendarID string, input calendar.EventInput) (*calendar.EventSummary, error)
}

// Scheduler runs the follow-up workflow end to end.
type Scheduler struct {
	crm        CRM
	publisher  Publisher
	calendarID string
	loc        *time.Location
	now        func() time.Time
	logger     *slog.Logger
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithClock overrides the scheduler's clock. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// WithLogger sets the logger used for workflow stage logging.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		s.logger = logger
	}
}

// NewScheduler wires a scheduler against a CRM, a calendar publisher, the
// target calendar and the timezone follow-ups are booked in.
func NewScheduler(crm CRM, publisher Publisher, calendarID string, loc *time.Location, opts ...Option) *Scheduler {
	s := &Scheduler{
		crm:        crm,
		publisher:  publisher,
		calendarID: calendarID,
		loc:        loc,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Schedule books a follow-up meeting for the account. It never returns a
// Go error to the caller: every failure is folded into the result
// envelope, matching what the tool surface reports to the client.
func (s *Scheduler) Schedule(ctx context.Context, req ScheduleRequest) Result {
	logger := s.logger.With(
		logging.Operation("schedule_follow_up"),
		logging.AccountID(req.AccountID),
	)

	account, err := s.crm.GetAccount(ctx, req.AccountID)
	if err != nil {
		lookupErr := &LookupError{AccountID: req.AccountID, Err: err}
		logger.Error("account lookup failed", logging.Err(lookupErr))
		return failure(lookupErr)
	}

	opportunities, err := s.crm.OpenOpportunities(ctx, req.AccountID, openOpportunityLimit)
	if err != nil {
		lookupErr := &LookupError{AccountID: req.AccountID, Err: err}
		logger.Error("opportunity lookup failed", logging.Err(lookupErr))
		return failure(lookupErr)
	}

	title := req.Title
	if title == "" {
		title = DefaultTitle(account)
	}

	slot := ResolveSlot(s.now(), s.loc, req.DaysFromNow, req.EventHour, req.EventMinute, req.DurationMinutes)

	created, err := s.publisher.CreateEvent(ctx, s.calendarID, calendar.EventInput{
		Summary:     title,
		Description: RenderAgenda(account, opportunities),
		Start:       slot.Start,
		End:         slot.End,
		TimeZone:    s.loc.String(),
		Reminders:   calendar.DefaultReminders(),
	})
	if err != nil {
		err = classifyPublishError(err)
		logger.Error("event publish failed", logging.Err(err))
		return failure(err)
	}

	logger.Info("follow-up scheduled",
		slog.String("event_id", created.ID),
		slog.Time("start", slot.Start),
		slog.Int("opportunities", len(opportunities)))

	return Result{
		Success: true,
		Account: &AccountSummary{
			ID:       account.ID,
			Name:     account.Name,
			Type:     account.Type,
			Industry: account.Industry,
		},
		CalendarEvent: &CreatedEvent{
			ID:              created.ID,
			Title:           title,
			Start:           slot.Start.Format(time.RFC3339),
			DurationMinutes: req.DurationMinutes,
			Link:            created.HTMLLink,
		},
		OpportunitiesFound: len(opportunities),
	}
}

// classifyPublishError wraps Calendar API rejections so their messages
// carry the API error prefix. Other errors pass through unchanged.
func classifyPublishError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &CalendarError{Err: err}
	}
	return err
}
