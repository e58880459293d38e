// Package salesforce provides a client for the Salesforce REST API.
//
// Authentication uses the SOAP username/password/security-token login to
// obtain a session id, which is then carried as a Bearer token on REST
// calls. Queries are built with a small parameterized SOQL builder so that
// caller-supplied values are never interpolated into query text directly.
//
// Example usage:
//
//	ctx := context.Background()
//	client, err := salesforce.Login(ctx, cfg.Salesforce)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	account, err := client.GetAccount(ctx, "001xx000003DGb2AAG")
//	if err != nil {
//	    log.Fatal(err)
//	}
package salesforce
