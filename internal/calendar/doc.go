// Package calendar provides a client for the Google Calendar API.
//
// Authentication uses a service-account JSON key, optionally impersonating a
// user via domain-wide delegation. The client covers the event operations the
// follow-up workflow and its tools need: create (with reminder overrides),
// get, list, and delete.
package calendar
