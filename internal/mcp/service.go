package mcp

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/2beens/sportai/internal/health"
	"github.com/2beens/sportai/internal/posture"
)

const (
	defaultSummaryDays = 7
	maxSummaryDays     = 365
	defaultPageSize    = 20
	maxPageSize        = 100
)

var ErrNoPostureMonitor = errors.New("posture monitor not available")

type healthRepo interface {
	List(ctx context.Context, userID, page, size int) (_ []health.Record, total int, err error)
	Summary(ctx context.Context, userID int, from, to time.Time) (*health.Summary, error)
}

type alarmsRepo interface {
	List(ctx context.Context, page, size int) (_ []posture.AlarmEvent, total int, err error)
}

type statusProvider interface {
	Status() posture.Status
}

// contextService is what the tool handlers need, kept small for tests.
type contextService interface {
	GetSchema(ctx context.Context) (string, error)
	HealthSummary(ctx context.Context, userID, days int) (*health.Summary, error)
	HealthRecords(ctx context.Context, userID, page, size int) ([]health.Record, int, error)
	PostureStatus() (posture.Status, error)
	PostureAlarms(ctx context.Context, page, size int) ([]posture.AlarmEvent, int, error)
}

// ContextService gathers the athlete data exposed over MCP.
type ContextService struct {
	schema  SchemaRepo
	health  healthRepo
	alarms  alarmsRepo
	monitor statusProvider
	now     func() time.Time
}

// NewContextService builds the service. monitor may be nil when the process
// does not run a form monitor.
func NewContextService(schema SchemaRepo, records healthRepo, alarms alarmsRepo, monitor statusProvider) *ContextService {
	return &ContextService{
		schema:  schema,
		health:  records,
		alarms:  alarms,
		monitor: monitor,
		now:     time.Now,
	}
}

func (s *ContextService) GetSchema(ctx context.Context) (string, error) {
	cols, err := s.schema.GetColumns(ctx)
	if err != nil {
		return "", err
	}
	return formatSchema(cols), nil
}

func formatSchema(cols []SchemaColumn) string {
	if len(cols) == 0 {
		return "# SportAI DB Schema\n\nNo athlete tables found in the database.\n"
	}

	byTable := make(map[string][]SchemaColumn)
	for _, c := range cols {
		byTable[c.TableName] = append(byTable[c.TableName], c)
	}
	tables := make([]string, 0, len(byTable))
	for t := range byTable {
		tables = append(tables, t)
	}
	slices.Sort(tables)

	var b strings.Builder
	b.WriteString("# SportAI DB Schema\n\n")
	for _, table := range tables {
		fmt.Fprintf(&b, "## %s\n\n| Column | Type | Nullable | Default |\n|--------|------|----------|---------|\n", table)
		for _, c := range byTable[table] {
			def := "-"
			if c.ColumnDef != nil && *c.ColumnDef != "" {
				def = *c.ColumnDef
			}
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", c.ColumnName, c.DataType, c.IsNullable, def)
		}
		b.WriteString("\n")
	}

	return strings.TrimSuffix(b.String(), "\n\n") + "\n"
}

// HealthSummary summarizes the last days of records, 7 by default.
func (s *ContextService) HealthSummary(ctx context.Context, userID, days int) (*health.Summary, error) {
	if days <= 0 {
		days = defaultSummaryDays
	}
	days = min(days, maxSummaryDays)

	to := s.now()
	return s.health.Summary(ctx, userID, to.AddDate(0, 0, -days), to)
}

func (s *ContextService) HealthRecords(ctx context.Context, userID, page, size int) ([]health.Record, int, error) {
	page, size = normalizePage(page, size)
	return s.health.List(ctx, userID, page, size)
}

func (s *ContextService) PostureStatus() (posture.Status, error) {
	if s.monitor == nil {
		return posture.Status{}, ErrNoPostureMonitor
	}
	return s.monitor.Status(), nil
}

func (s *ContextService) PostureAlarms(ctx context.Context, page, size int) ([]posture.AlarmEvent, int, error) {
	page, size = normalizePage(page, size)
	return s.alarms.List(ctx, page, size)
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = defaultPageSize
	}
	return page, min(size, maxPageSize)
}
