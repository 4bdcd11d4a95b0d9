package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/sportai/internal/health"
	"github.com/2beens/sportai/internal/telemetry/metrics"
	"github.com/2beens/sportai/internal/users"
)

type Notifier struct {
	mailer         Mailer
	metricsManager *metrics.Manager
}

func NewNotifier(mailer Mailer, metricsManager *metrics.Manager) *Notifier {
	return &Notifier{
		mailer:         mailer,
		metricsManager: metricsManager,
	}
}

func (n *Notifier) send(ctx context.Context, templateName string, to, subject string, data any) error {
	body, err := render(templateName, data)
	if err != nil {
		return err
	}

	if err := n.mailer.Send(ctx, Message{To: to, Subject: subject, Body: body}); err != nil {
		return err
	}

	if n.metricsManager != nil {
		n.metricsManager.CounterEmailsSent.WithLabelValues(templateName).Inc()
	}
	return nil
}

func (n *Notifier) SendPasswordReset(ctx context.Context, user users.User, newPassword string) error {
	data := struct {
		Name     string
		Password string
	}{
		Name:     displayName(user),
		Password: newPassword,
	}
	if err := n.send(ctx, templatePasswordReset, user.Email, "SportAI password reset", data); err != nil {
		return fmt.Errorf("password reset mail for user %d: %w", user.ID, err)
	}
	return nil
}

func (n *Notifier) SendWeeklyReport(ctx context.Context, user users.User, summary health.Summary) error {
	data := struct {
		Name     string
		From, To time.Time
		Summary  health.Summary
	}{
		Name:    displayName(user),
		From:    summary.From,
		To:      summary.To,
		Summary: summary,
	}
	if err := n.send(ctx, templateWeeklyReport, user.Email, "Your weekly SportAI health report", data); err != nil {
		return fmt.Errorf("weekly report mail for user %d: %w", user.ID, err)
	}
	return nil
}

func displayName(user users.User) string {
	if user.Name != "" {
		return user.Name
	}
	return user.Username
}
