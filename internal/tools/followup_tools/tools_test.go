package followup_tools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRequestFromArgs_Defaults(t *testing.T) {
	req, err := scheduleRequestFromArgs("001xx000003DGb1AAG", map[string]interface{}{})
	require.NoError(t, err)

	assert.Equal(t, "001xx000003DGb1AAG", req.AccountID)
	assert.Equal(t, 7, req.DaysFromNow)
	assert.Equal(t, 30, req.DurationMinutes)
	assert.Equal(t, 8, req.EventHour)
	assert.Equal(t, 0, req.EventMinute)
	assert.Empty(t, req.Title)
}

func TestScheduleRequestFromArgs_Overrides(t *testing.T) {
	args := map[string]interface{}{
		"days_from_now": float64(14),
		"duration_min":  float64(45),
		"event_hour":    float64(0),
		"event_minute":  float64(15),
		"title":         "Quarterly review",
	}

	req, err := scheduleRequestFromArgs("001xx000003DGb1AAG", args)
	require.NoError(t, err)

	assert.Equal(t, 14, req.DaysFromNow)
	assert.Equal(t, 45, req.DurationMinutes)
	assert.Equal(t, 0, req.EventHour, "midnight is a valid hour")
	assert.Equal(t, 15, req.EventMinute)
	assert.Equal(t, "Quarterly review", req.Title)
}

func TestScheduleRequestFromArgs_Validation(t *testing.T) {
	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{
			name: "negative days",
			args: map[string]interface{}{"days_from_now": float64(-1)},
		},
		{
			name: "zero duration",
			args: map[string]interface{}{"duration_min": float64(0)},
		},
		{
			name: "hour out of range",
			args: map[string]interface{}{"event_hour": float64(24)},
		},
		{
			name: "minute out of range",
			args: map[string]interface{}{"event_minute": float64(60)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scheduleRequestFromArgs("001xx000003DGb1AAG", tt.args)
			assert.Error(t, err)
		})
	}
}
