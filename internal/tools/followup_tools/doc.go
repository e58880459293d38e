// Package followup_tools provides the MCP (Model Context Protocol) tool for
// scheduling CRM follow-up meetings.
//
// The followup_schedule tool runs the full workflow: it fetches the account
// and its open opportunities from Salesforce, renders a meeting agenda, and
// publishes a calendar event with fixed reminders. Because it creates
// calendar events, the tool is only registered when write operations are
// enabled.
package followup_tools
