package mcp

import (
	"net/http"

	"github.com/2beens/sportai/internal/auth"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

const (
	serverName    = "sportai-context"
	serverVersion = "1.0.0"
)

// NewServer builds an MCP server whose tools read the data of athlete userID.
func NewServer(service contextService, userID int) *mcp.Server {
	h := NewHandler(service, userID)
	s := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_sportai_schema",
		Description: "Returns the DB schema of the athlete data tables (health_record, posture_alarm): columns, types, nullable, default.",
	}, h.GetSchemaTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_health_summary",
		Description: "Returns averages (heartbeat, sleep, hydration), total walking steps and active minutes of the athlete over the last N days. Optional arg: days (default 7).",
	}, h.GetHealthSummaryTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_health_records",
		Description: "Returns the athlete's health records, newest first. Optional args: page (from 1), size (default 20).",
	}, h.GetHealthRecordsTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_posture_status",
		Description: "Returns the form monitor state: running, exercise mode, incorrect frames counter, frames processed, alarms fired and the last frame report with joint angles.",
	}, h.GetPostureStatusTool())

	mcp.AddTool(s, &mcp.Tool{
		Name:        "get_posture_alarms",
		Description: "Returns the recorded bad form alarms (mode, time, shoulder and elbow angles), newest first. Optional args: page (from 1), size (default 20).",
	}, h.GetPostureAlarmsTool())

	return s
}

// NewHTTPHandler serves MCP over streamable HTTP. Every session is bound to
// the user logged in on the request that opened it.
func NewHTTPHandler(service contextService) http.Handler {
	return mcp.NewStreamableHTTPHandler(func(r *http.Request) *mcp.Server {
		userID, ok := auth.UserIDFromContext(r.Context())
		if !ok {
			log.Warnf("mcp session requested without a logged user [%s]", r.URL.Path)
			return nil
		}
		return NewServer(service, userID)
	}, nil)
}
