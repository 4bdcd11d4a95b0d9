package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/sportai/internal/health"
	"github.com/2beens/sportai/internal/telemetry/tracing"
	"github.com/2beens/sportai/internal/users"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=weekly_report_mocks_test.go -package=notify_test

const reportPeriod = 7 * 24 * time.Hour

type usersLister interface {
	List(ctx context.Context) ([]users.User, error)
}

type healthSummarizer interface {
	Summary(ctx context.Context, userID int, from, to time.Time) (*health.Summary, error)
}

type weeklyReportSender interface {
	SendWeeklyReport(ctx context.Context, user users.User, summary health.Summary) error
}

// WeeklyReporter periodically mails every user the summary of their health
// records of the past week.
type WeeklyReporter struct {
	users    usersLister
	health   healthSummarizer
	sender   weeklyReportSender
	interval time.Duration
	now      func() time.Time
}

func NewWeeklyReporter(
	usersLister usersLister,
	healthRepo healthSummarizer,
	sender weeklyReportSender,
	interval time.Duration,
) *WeeklyReporter {
	if interval <= 0 {
		interval = reportPeriod
	}
	return &WeeklyReporter{
		users:    usersLister,
		health:   healthRepo,
		sender:   sender,
		interval: interval,
		now:      time.Now,
	}
}

// Run sends the reports on every tick, until ctx is done.
func (r *WeeklyReporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	log.Debugf("weekly report job started, interval: %s", r.interval)
	for {
		select {
		case <-ctx.Done():
			log.Debugln("weekly report job stopped")
			return
		case <-ticker.C:
			sent, err := r.SendReports(ctx)
			if err != nil {
				log.Errorf("weekly reports: %s", err)
				continue
			}
			log.Infof("weekly reports sent: %d", sent)
		}
	}
}

// SendReports mails the report to every user. A failure for a single user is
// logged and does not stop the others.
func (r *WeeklyReporter) SendReports(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notify.weeklyReports")
	defer tracing.EndSpanWithErrCheck(span, &err)

	allUsers, err := r.users.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list users: %w", err)
	}

	to := r.now()
	from := to.Add(-reportPeriod)
	sent := 0
	for _, user := range allUsers {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		if user.Email == "" {
			continue
		}

		summary, err := r.health.Summary(ctx, user.ID, from, to)
		if err != nil {
			log.Errorf("weekly report, summary for user %d: %s", user.ID, err)
			continue
		}
		if err := r.sender.SendWeeklyReport(ctx, user, *summary); err != nil {
			log.Errorf("weekly report, send to user %d: %s", user.ID, err)
			continue
		}
		sent++
	}

	span.SetAttributes(attribute.Int("sent", sent), attribute.Int("users", len(allUsers)))
	return sent, nil
}
