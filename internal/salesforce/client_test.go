package salesforce

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luisesc/salesbridge/internal/config"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := Login(context.Background(), config.Salesforce{},
		WithHTTPClient(srv.Client()),
		WithInstanceURL(srv.URL, "session-123"))
	require.NoError(t, err)
	return client
}

func TestGetAccount(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/data/v59.0/sobjects/Account/001", r.URL.Path)
		assert.Equal(t, "Bearer session-123", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"Id": "001",
			"Name": "Acme",
			"Type": "Customer",
			"Industry": "Tech",
			"Phone": "555-1234",
			"BillingAddress": {"street": "1 Main St", "city": "Phoenix", "state": "AZ"}
		}`)
	}))

	account, err := client.GetAccount(context.Background(), "001")
	require.NoError(t, err)
	assert.Equal(t, "001", account.ID)
	assert.Equal(t, "Acme", account.Name)
	assert.Equal(t, "Customer", account.Type)
	assert.Equal(t, "Tech", account.Industry)
	assert.Equal(t, "555-1234", account.Phone)
	require.NotNil(t, account.BillingAddress)
	assert.Equal(t, "1 Main St, Phoenix, AZ", account.BillingAddress.Flatten())
}

func TestGetAccountNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `[{"message": "The requested resource does not exist", "errorCode": "NOT_FOUND"}]`)
	}))

	_, err := client.GetAccount(context.Background(), "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
	assert.Contains(t, err.Error(), "missing")
}

func TestOpenOpportunities(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/data/v59.0/query", r.URL.Path)
		soql := r.URL.Query().Get("q")
		assert.Contains(t, soql, "FROM Opportunity")
		assert.Contains(t, soql, "AccountId = '001'")
		assert.Contains(t, soql, "IsClosed = false")
		assert.Contains(t, soql, "LIMIT 5")

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"totalSize": 2,
			"done": true,
			"records": [
				{"Id": "006A", "Name": "Deal1", "Amount": 1000, "StageName": "Negotiation"},
				{"Id": "006B", "Name": "Deal2", "Amount": null, "StageName": "Prospecting"}
			]
		}`)
	}))

	opps, err := client.OpenOpportunities(context.Background(), "001", 5)
	require.NoError(t, err)
	require.Len(t, opps, 2)
	assert.Equal(t, "Deal1", opps[0].Name)
	assert.Equal(t, float64(1000), opps[0].AmountValue())
	assert.Nil(t, opps[1].Amount)
	assert.Zero(t, opps[1].AmountValue())
}

func TestOpenOpportunitiesEmptyResultIsValid(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"totalSize": 0, "done": true, "records": []}`)
	}))

	opps, err := client.OpenOpportunities(context.Background(), "001", 5)
	require.NoError(t, err)
	assert.Empty(t, opps)
}

func TestSearchAccounts(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		soql := r.URL.Query().Get("q")
		assert.Contains(t, soql, "Name LIKE '%United%'")
		assert.Contains(t, soql, "LIMIT 10")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"totalSize": 1,
			"done":      true,
			"records": []map[string]any{
				{"Id": "001U", "Name": "United Partners"},
			},
		})
	}))

	accounts, total, err := client.SearchAccounts(context.Background(), "United", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, accounts, 1)
	assert.Equal(t, "United Partners", accounts[0].Name)
}

func TestSoapLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "login", r.Header.Get("SOAPAction"))
		assert.Contains(t, r.Header.Get("Content-Type"), "text/xml")

		w.Header().Set("Content-Type", "text/xml")
		fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <loginResponse>
      <result>
        <serverUrl>%s/services/Soap/u/59.0/00D</serverUrl>
        <sessionId>00Dsession</sessionId>
      </result>
    </loginResponse>
  </soapenv:Body>
</soapenv:Envelope>`, "https://na1.salesforce.com")
	}))
	t.Cleanup(srv.Close)

	sessionID, serverURL, err := soapLogin(context.Background(), srv.Client(), srv.URL, "user@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "00Dsession", sessionID)
	assert.Equal(t, "https://na1.salesforce.com/services/Soap/u/59.0/00D", serverURL)
}

func TestSoapLoginFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <soapenv:Fault>
      <faultcode>INVALID_LOGIN</faultcode>
      <faultstring>INVALID_LOGIN: Invalid username, password, security token</faultstring>
    </soapenv:Fault>
  </soapenv:Body>
</soapenv:Envelope>`)
	}))
	t.Cleanup(srv.Close)

	_, _, err := soapLogin(context.Background(), srv.Client(), srv.URL, "user@example.com", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "INVALID_LOGIN")
}

func TestXMLEscape(t *testing.T) {
	assert.Equal(t, "a&amp;b", xmlEscape("a&b"))
	assert.Equal(t, "&lt;tag&gt;", xmlEscape("<tag>"))
	assert.Equal(t, "plain", xmlEscape("plain"))
}
