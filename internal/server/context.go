package server

import (
	"context"
	"sync"
	"time"

	"github.com/luisesc/salesbridge/internal/calendar"
	"github.com/luisesc/salesbridge/internal/config"
	"github.com/luisesc/salesbridge/internal/followup"
	"github.com/luisesc/salesbridge/internal/instrumentation"
	"github.com/luisesc/salesbridge/internal/salesforce"
	"github.com/luisesc/salesbridge/internal/sheets"
)

// ServerContext holds the context for the MCP server. Backend clients are
// created lazily on first use and cached, so the server starts without
// credentials and only fails when a tool actually needs a backend.
type ServerContext struct {
	ctx    context.Context
	cancel context.CancelFunc

	cfg config.Config

	salesforceClient *salesforce.Client
	calendarClient   *calendar.Client
	sheetsClient     *sheets.Client

	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger

	mu       sync.RWMutex
	shutdown bool
}

// NewServerContext creates a new server context.
func NewServerContext(ctx context.Context, cfg config.Config) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	return &ServerContext{
		ctx:    shutdownCtx,
		cancel: cancel,
		cfg:    cfg,
	}, nil
}

// Context returns the server context.
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// Config returns the loaded configuration.
func (sc *ServerContext) Config() config.Config {
	return sc.cfg
}

// SalesforceClient returns the Salesforce client, logging in on first use.
// The session is cached for subsequent calls.
func (sc *ServerContext) SalesforceClient(ctx context.Context) (*salesforce.Client, error) {
	sc.mu.RLock()
	client := sc.salesforceClient
	sc.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.salesforceClient != nil {
		return sc.salesforceClient, nil
	}

	client, err := salesforce.Login(ctx, sc.cfg.Salesforce)
	if err != nil {
		return nil, err
	}
	sc.salesforceClient = client
	return client, nil
}

// SetSalesforceClient sets the Salesforce client. Used by tests.
func (sc *ServerContext) SetSalesforceClient(client *salesforce.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.salesforceClient = client
}

// CalendarClient returns the Google Calendar client, creating it on first use.
func (sc *ServerContext) CalendarClient(ctx context.Context) (*calendar.Client, error) {
	sc.mu.RLock()
	client := sc.calendarClient
	sc.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.calendarClient != nil {
		return sc.calendarClient, nil
	}

	client, err := calendar.NewClient(ctx, sc.cfg.Google)
	if err != nil {
		return nil, err
	}
	sc.calendarClient = client
	return client, nil
}

// SetCalendarClient sets the Calendar client. Used by tests.
func (sc *ServerContext) SetCalendarClient(client *calendar.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.calendarClient = client
}

// SheetsClient returns the Google Sheets client, creating it on first use.
func (sc *ServerContext) SheetsClient(ctx context.Context) (*sheets.Client, error) {
	sc.mu.RLock()
	client := sc.sheetsClient
	sc.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if sc.sheetsClient != nil {
		return sc.sheetsClient, nil
	}

	client, err := sheets.NewClient(ctx, sc.cfg.Google)
	if err != nil {
		return nil, err
	}
	sc.sheetsClient = client
	return client, nil
}

// SetSheetsClient sets the Sheets client. Used by tests.
func (sc *ServerContext) SetSheetsClient(client *sheets.Client) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.sheetsClient = client
}

// Scheduler builds a follow-up scheduler against the live backends.
func (sc *ServerContext) Scheduler(ctx context.Context) (*followup.Scheduler, error) {
	crm, err := sc.SalesforceClient(ctx)
	if err != nil {
		return nil, err
	}

	cal, err := sc.CalendarClient(ctx)
	if err != nil {
		return nil, err
	}

	loc, err := sc.cfg.Location()
	if err != nil {
		return nil, err
	}

	return followup.NewScheduler(crm, cal, sc.cfg.Google.CalendarID, loc), nil
}

// SetMetrics sets the metrics recorder for instrumented tool handlers.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the metrics recorder, or nil when instrumentation is off.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// SetAuditLogger sets the audit logger for tool invocations.
func (sc *ServerContext) SetAuditLogger(logger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = logger
}

// AuditLogger returns the audit logger, or nil when audit logging is off.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// Location returns the timezone follow-ups are booked in.
func (sc *ServerContext) Location() (*time.Location, error) {
	return sc.cfg.Location()
}

// IsShutdown returns whether the server has been shutdown.
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context.
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
