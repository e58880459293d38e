package sheets_tools

import (
	"testing"
)

func TestGetWorksheetFromArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     map[string]interface{}
		expected string
	}{
		{
			name:     "no worksheet provided",
			args:     map[string]interface{}{},
			expected: "Accounts",
		},
		{
			name: "worksheet provided",
			args: map[string]interface{}{
				"worksheet": "Accounts for United",
			},
			expected: "Accounts for United",
		},
		{
			name: "empty worksheet string",
			args: map[string]interface{}{
				"worksheet": "",
			},
			expected: "Accounts",
		},
		{
			name: "non-string worksheet",
			args: map[string]interface{}{
				"worksheet": 42,
			},
			expected: "Accounts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := getWorksheetFromArgs(tt.args)
			if result != tt.expected {
				t.Errorf("getWorksheetFromArgs() = %v, expected %v", result, tt.expected)
			}
		})
	}
}
