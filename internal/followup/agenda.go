package followup

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/luisesc/salesbridge/internal/salesforce"
)

// amountPrinter formats opportunity amounts with thousands separators.
var amountPrinter = message.NewPrinter(language.English)

// DisplayName returns the account name to use in titles and agendas.
func DisplayName(account *salesforce.Account) string {
	if account.Name == "" {
		return "Unknown Account"
	}
	return account.Name
}

// DefaultTitle is the event title used when the caller does not provide one.
func DefaultTitle(account *salesforce.Account) string {
	return "Follow up with " + DisplayName(account)
}

// RenderAgenda builds the event description for a follow-up meeting with
// the account. The opportunity section is omitted when there are no open
// opportunities.
func RenderAgenda(account *salesforce.Account, opportunities []salesforce.Opportunity) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Follow-up meeting with %s\n\n", DisplayName(account))
	fmt.Fprintf(&b, "Account ID: %s\n\n", account.ID)
	fmt.Fprintf(&b, "Type: %s\n", valueOrNA(account.Type))
	fmt.Fprintf(&b, "Industry: %s\n", valueOrNA(account.Industry))

	if account.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", account.Phone)
	}

	if len(opportunities) > 0 {
		b.WriteString("\nOpen Opportunities:\n")
		for _, opp := range opportunities {
			fmt.Fprintf(&b, " - %s | Amount: $%s | Stage: %s\n",
				opp.Name, amountPrinter.Sprintf("%.2f", opp.AmountValue()), opp.StageName)
		}
	}

	b.WriteString("\nPlease prepare accordingly.")
	return b.String()
}

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
