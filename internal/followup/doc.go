// Package followup implements the account follow-up workflow: it fetches
// the account and its open opportunities from Salesforce, resolves the
// meeting slot in the configured timezone, renders the agenda, and
// publishes the event to Google Calendar.
package followup
