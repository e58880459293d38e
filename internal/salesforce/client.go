package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/luisesc/salesbridge/internal/config"
	"github.com/luisesc/salesbridge/internal/logging"
)

// apiVersion is the Salesforce REST/SOAP API version the client speaks.
const apiVersion = "59.0"

// Client is an authenticated Salesforce REST client. Create one with Login;
// the zero value is not usable.
type Client struct {
	httpClient  *http.Client
	instanceURL string
	sessionID   string
	logger      *slog.Logger
}

// Option configures a Client during Login.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithInstanceURL bypasses the SOAP login and points the client at a fixed
// instance with a pre-established session. Used by tests.
func WithInstanceURL(instanceURL, sessionID string) Option {
	return func(c *Client) {
		c.instanceURL = instanceURL
		c.sessionID = sessionID
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// Login authenticates with the SOAP username/password flow and returns a
// REST client bound to the resulting instance URL.
func Login(ctx context.Context, cfg config.Salesforce, opts ...Option) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     slog.Default().With(logging.Service("salesforce")),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.instanceURL != "" {
		// Session injected, nothing to do.
		return c, nil
	}

	domain := cfg.Domain
	if domain == "" {
		domain = config.DefaultSFDomain
	}
	loginURL := fmt.Sprintf("https://%s.salesforce.com/services/Soap/u/%s", domain, apiVersion)

	sessionID, serverURL, err := soapLogin(ctx, c.httpClient, loginURL, cfg.Username, cfg.Password+cfg.SecurityToken)
	if err != nil {
		return nil, fmt.Errorf("salesforce login failed: %w", err)
	}

	parsed, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("salesforce login returned invalid server URL: %w", err)
	}

	c.instanceURL = parsed.Scheme + "://" + parsed.Host
	c.sessionID = sessionID
	c.logger.Debug("salesforce session established",
		slog.String("instance", c.instanceURL),
		slog.String("session", logging.SanitizeToken(sessionID)))
	return c, nil
}

// loginEnvelope is the SOAP body for the partner login call.
const loginEnvelope = `<?xml version="1.0" encoding="utf-8"?>
<env:Envelope xmlns:env="http://schemas.xmlsoap.org/soap/envelope/" xmlns:urn="urn:partner.soap.sforce.com">
  <env:Body>
    <urn:login>
      <urn:username>%s</urn:username>
      <urn:password>%s</urn:password>
    </urn:login>
  </env:Body>
</env:Envelope>`

type loginResponse struct {
	SessionID string `xml:"Body>loginResponse>result>sessionId"`
	ServerURL string `xml:"Body>loginResponse>result>serverUrl"`
}

type soapFault struct {
	FaultCode   string `xml:"Body>Fault>faultcode"`
	FaultString string `xml:"Body>Fault>faultstring"`
}

func soapLogin(ctx context.Context, hc *http.Client, loginURL, username, password string) (sessionID, serverURL string, err error) {
	body := fmt.Sprintf(loginEnvelope, xmlEscape(username), xmlEscape(password))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, loginURL, bytes.NewBufferString(body))
	if err != nil {
		return "", "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "text/xml; charset=UTF-8")
	req.Header.Set("SOAPAction", "login")

	resp, err := hc.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to execute login request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", fmt.Errorf("failed to read login response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var fault soapFault
		if xml.Unmarshal(raw, &fault) == nil && fault.FaultString != "" {
			return "", "", fmt.Errorf("login rejected: %s", fault.FaultString)
		}
		return "", "", fmt.Errorf("login failed (status %d)", resp.StatusCode)
	}

	var lr loginResponse
	if err := xml.Unmarshal(raw, &lr); err != nil {
		return "", "", fmt.Errorf("failed to parse login response: %w", err)
	}
	if lr.SessionID == "" || lr.ServerURL == "" {
		return "", "", fmt.Errorf("login response missing session id or server URL")
	}
	return lr.SessionID, lr.ServerURL, nil
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// restError is the JSON error shape of the Salesforce REST API.
type restError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// get issues an authenticated GET and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.instanceURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.sessionID)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var restErrs []restError
		if json.Unmarshal(raw, &restErrs) == nil && len(restErrs) > 0 {
			return fmt.Errorf("salesforce API error (status %d): %s: %s",
				resp.StatusCode, restErrs[0].ErrorCode, restErrs[0].Message)
		}
		return fmt.Errorf("salesforce API error (status %d): %s", resp.StatusCode, string(raw))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// GetAccount retrieves one account by id.
func (c *Client) GetAccount(ctx context.Context, accountID string) (*Account, error) {
	var account Account
	path := fmt.Sprintf("/services/data/v%s/sobjects/Account/%s", apiVersion, url.PathEscape(accountID))
	if err := c.get(ctx, path, nil, &account); err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	return &account, nil
}

// queryResult is the envelope the query endpoint wraps records in.
type queryResult[T any] struct {
	TotalSize int  `json:"totalSize"`
	Done      bool `json:"done"`
	Records   []T  `json:"records"`
}

func runQuery[T any](ctx context.Context, c *Client, soql string) ([]T, int, error) {
	var result queryResult[T]
	path := fmt.Sprintf("/services/data/v%s/query", apiVersion)
	params := url.Values{"q": []string{soql}}
	if err := c.get(ctx, path, params, &result); err != nil {
		return nil, 0, fmt.Errorf("query failed: %w", err)
	}
	return result.Records, result.TotalSize, nil
}

// SearchAccounts finds accounts whose name contains the given text.
func (c *Client) SearchAccounts(ctx context.Context, name string, limit int) ([]Account, int, error) {
	soql := NewQuery("Account", "Id", "Name", "BillingAddress", "Phone", "Type", "Industry").
		WhereLike("Name", name).
		Limit(limit).
		String()
	return runQuery[Account](ctx, c, soql)
}

// RecentOpportunities lists the most recently created opportunities.
func (c *Client) RecentOpportunities(ctx context.Context, limit int) ([]Opportunity, int, error) {
	soql := NewQuery("Opportunity", "Id", "Name", "StageName", "Amount", "CloseDate").
		OrderBy("CreatedDate", "DESC").
		Limit(limit).
		String()
	return runQuery[Opportunity](ctx, c, soql)
}

// ClosedWonOpportunities lists opportunities in the Closed Won stage.
func (c *Client) ClosedWonOpportunities(ctx context.Context, limit int) ([]Opportunity, int, error) {
	soql := NewQuery("Opportunity", "Id", "Name", "StageName", "Amount", "CloseDate").
		Where("StageName", "=", "Closed Won").
		OrderBy("Name", "ASC").
		Limit(limit).
		String()
	return runQuery[Opportunity](ctx, c, soql)
}

// OpenOpportunities lists the open opportunities attached to an account,
// capped at limit. An empty result is valid.
func (c *Client) OpenOpportunities(ctx context.Context, accountID string, limit int) ([]Opportunity, error) {
	soql := NewQuery("Opportunity", "Id", "Name", "CloseDate", "Amount", "StageName").
		Where("AccountId", "=", accountID).
		Where("IsClosed", "=", false).
		Limit(limit).
		String()
	records, _, err := runQuery[Opportunity](ctx, c, soql)
	return records, err
}
