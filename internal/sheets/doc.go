// Package sheets provides a client for writing CRM account exports to a
// Google spreadsheet. It shares the service-account credential path with the
// calendar package.
package sheets
