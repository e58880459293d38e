package salesforce

import "strings"

// Address is the compound billing address returned by the Account sobject.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Flatten joins the populated address parts into a single comma-separated
// line, in street/city/state/postal/country order.
func (a *Address) Flatten() string {
	if a == nil {
		return ""
	}
	parts := make([]string, 0, 5)
	for _, p := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Account is a CRM account record. It is read-only from this codebase's
// perspective; the CRM owns the persisted copy.
type Account struct {
	ID             string   `json:"Id"`
	Name           string   `json:"Name"`
	Type           string   `json:"Type,omitempty"`
	Industry       string   `json:"Industry,omitempty"`
	Phone          string   `json:"Phone,omitempty"`
	BillingAddress *Address `json:"BillingAddress,omitempty"`
}

// Opportunity is a CRM opportunity record. Amount is nullable in the CRM;
// consumers treat a nil Amount as zero.
type Opportunity struct {
	ID        string   `json:"Id"`
	Name      string   `json:"Name"`
	Amount    *float64 `json:"Amount"`
	StageName string   `json:"StageName"`
	CloseDate string   `json:"CloseDate,omitempty"`
	IsClosed  bool     `json:"IsClosed,omitempty"`
}

// AmountValue returns the opportunity amount, defaulting to 0 when the CRM
// reports it as null.
func (o Opportunity) AmountValue() float64 {
	if o.Amount == nil {
		return 0
	}
	return *o.Amount
}
