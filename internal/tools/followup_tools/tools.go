package followup_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/luisesc/salesbridge/internal/config"
	"github.com/luisesc/salesbridge/internal/followup"
	"github.com/luisesc/salesbridge/internal/server"
	"github.com/luisesc/salesbridge/internal/tools/common"
)

// RegisterFollowupTools registers follow-up scheduling tools with the MCP server.
// Nothing is registered in read-only mode because scheduling creates calendar
// events.
func RegisterFollowupTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	if readOnly {
		return nil
	}

	scheduleTool := mcp.NewTool("followup_schedule",
		mcp.WithDescription("Schedule a follow-up meeting for a Salesforce account, with an agenda built from its open opportunities"),
		mcp.WithString("account_id",
			mcp.Required(),
			mcp.Description("The Salesforce account record ID"),
		),
		mcp.WithNumber("days_from_now",
			mcp.Description("Days from today to schedule the meeting (default: 7)"),
		),
		mcp.WithNumber("duration_min",
			mcp.Description("Meeting duration in minutes (default: 30)"),
		),
		mcp.WithNumber("event_hour",
			mcp.Description("Hour of day for the meeting, 0-23 (default: 8)"),
		),
		mcp.WithNumber("event_minute",
			mcp.Description("Minute of the hour for the meeting, 0-59 (default: 0)"),
		),
		mcp.WithString("title",
			mcp.Description("Event title (default: 'Follow up with <account name>')"),
		),
	)

	s.AddTool(scheduleTool, common.InstrumentedToolHandlerWithService(
		"followup_schedule", "calendar", "schedule", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleSchedule(ctx, request, sc)
		}))

	return nil
}

func handleSchedule(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	accountID, ok := args["account_id"].(string)
	if !ok || accountID == "" {
		return mcp.NewToolResultError("account_id is required"), nil
	}

	req, err := scheduleRequestFromArgs(accountID, args)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	scheduler, err := sc.Scheduler(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create scheduler: %v", err)), nil
	}

	result := scheduler.Schedule(ctx, req)

	data, err := json.Marshal(result)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// scheduleRequestFromArgs builds a ScheduleRequest from tool arguments,
// applying the configured defaults for anything the caller omitted.
func scheduleRequestFromArgs(accountID string, args map[string]interface{}) (followup.ScheduleRequest, error) {
	req := followup.ScheduleRequest{
		AccountID:       accountID,
		DaysFromNow:     config.DefaultDaysFromNow,
		DurationMinutes: config.DefaultDurationMinutes,
		EventHour:       config.DefaultEventHour,
		EventMinute:     config.DefaultEventMinute,
	}

	if v, ok := args["days_from_now"].(float64); ok {
		if v < 0 {
			return req, fmt.Errorf("days_from_now must not be negative")
		}
		req.DaysFromNow = int(v)
	}
	if v, ok := args["duration_min"].(float64); ok {
		if v <= 0 {
			return req, fmt.Errorf("duration_min must be positive")
		}
		req.DurationMinutes = int(v)
	}
	if v, ok := args["event_hour"].(float64); ok {
		if v < 0 || v > 23 {
			return req, fmt.Errorf("event_hour must be between 0 and 23")
		}
		req.EventHour = int(v)
	}
	if v, ok := args["event_minute"].(float64); ok {
		if v < 0 || v > 59 {
			return req, fmt.Errorf("event_minute must be between 0 and 59")
		}
		req.EventMinute = int(v)
	}
	if v, ok := args["title"].(string); ok {
		req.Title = v
	}

	return req, nil
}
