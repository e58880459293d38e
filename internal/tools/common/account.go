package common

// GetAccountIDFromArgs extracts the CRM account ID from request arguments.
// Returns "" when the tool call does not target a specific account.
func GetAccountIDFromArgs(args map[string]interface{}) string {
	if accountID, ok := args["account_id"].(string); ok {
		return accountID
	}
	return ""
}
