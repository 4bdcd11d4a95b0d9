package mcp

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Handler turns tool calls into service calls for a single athlete.
type Handler struct {
	service contextService
	userID  int
}

func NewHandler(service contextService, userID int) *Handler {
	return &Handler{
		service: service,
		userID:  userID,
	}
}

func errorResult(msg string, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg + ": " + err.Error()}},
		IsError: true,
	}
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func jsonResult(v any) *mcp.CallToolResult {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult("Error encoding response", err)
	}
	return textResult(string(raw))
}

func (h *Handler) GetSchemaTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		text, err := h.service.GetSchema(ctx)
		if err != nil {
			return errorResult("Error fetching schema", err), nil, nil
		}
		return textResult(text), nil, nil
	}
}

type HealthSummaryInput struct {
	Days int `json:"days,omitempty" jsonschema:"Number of days to summarize, counted back from now (default 7)"`
}

func (h *Handler) GetHealthSummaryTool() func(context.Context, *mcp.CallToolRequest, HealthSummaryInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in HealthSummaryInput) (*mcp.CallToolResult, any, error) {
		summary, err := h.service.HealthSummary(ctx, h.userID, in.Days)
		if err != nil {
			return errorResult("Error fetching health summary", err), nil, nil
		}
		return jsonResult(summary), nil, nil
	}
}

type PageInput struct {
	Page int `json:"page,omitempty" jsonschema:"Page number, starting at 1"`
	Size int `json:"size,omitempty" jsonschema:"Page size (default 20, max 100)"`
}

type healthRecordsOutput struct {
	Records any `json:"records"`
	Total   int `json:"total"`
}

func (h *Handler) GetHealthRecordsTool() func(context.Context, *mcp.CallToolRequest, PageInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
		records, total, err := h.service.HealthRecords(ctx, h.userID, in.Page, in.Size)
		if err != nil {
			return errorResult("Error listing health records", err), nil, nil
		}
		return jsonResult(healthRecordsOutput{Records: records, Total: total}), nil, nil
	}
}

func (h *Handler) GetPostureStatusTool() func(context.Context, *mcp.CallToolRequest, any) (*mcp.CallToolResult, any, error) {
	return func(_ context.Context, _ *mcp.CallToolRequest, _ any) (*mcp.CallToolResult, any, error) {
		status, err := h.service.PostureStatus()
		if err != nil {
			return errorResult("Error fetching posture status", err), nil, nil
		}
		return jsonResult(status), nil, nil
	}
}

type postureAlarmsOutput struct {
	Alarms any `json:"alarms"`
	Total  int `json:"total"`
}

func (h *Handler) GetPostureAlarmsTool() func(context.Context, *mcp.CallToolRequest, PageInput) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in PageInput) (*mcp.CallToolResult, any, error) {
		alarms, total, err := h.service.PostureAlarms(ctx, in.Page, in.Size)
		if err != nil {
			return errorResult("Error listing posture alarms", err), nil, nil
		}
		return jsonResult(postureAlarmsOutput{Alarms: alarms, Total: total}), nil, nil
	}
}
