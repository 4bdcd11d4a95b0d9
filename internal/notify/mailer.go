package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/sportai/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type Message struct {
	To      string
	Subject string
	Body    string
}

// Mailer delivers plain-text messages.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type SMTPMailer struct {
	addr     string
	host     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
	now      func() time.Time
}

func NewSMTPMailer(host string, port int, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}
	return &SMTPMailer{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		host:     host,
		from:     from,
		auth:     auth,
		sendMail: smtp.SendMail,
		now:      time.Now,
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) (err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "notify.smtp.send")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("mail.subject", msg.Subject))

	if err := validateMessage(msg); err != nil {
		return err
	}

	raw := buildMessage(m.from, msg, m.now())
	if err := m.sendMail(m.addr, m.auth, m.from, []string{msg.To}, raw); err != nil {
		return fmt.Errorf("send mail to %s via %s: %w", msg.To, m.addr, err)
	}
	return nil
}

func validateMessage(msg Message) error {
	if msg.To == "" {
		return errors.New("mail recipient not set")
	}
	// header injection
	if strings.ContainsAny(msg.To, "\r\n") || strings.ContainsAny(msg.Subject, "\r\n") {
		return errors.New("invalid mail header value")
	}
	return nil
}

func buildMessage(from string, msg Message, date time.Time) []byte {
	var sb strings.Builder
	sb.WriteString("From: " + from + "\r\n")
	sb.WriteString("To: " + msg.To + "\r\n")
	sb.WriteString("Subject: " + msg.Subject + "\r\n")
	sb.WriteString("Date: " + date.Format(time.RFC1123Z) + "\r\n")
	sb.WriteString("MIME-Version: 1.0\r\n")
	sb.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	sb.WriteString("\r\n")
	body := strings.ReplaceAll(msg.Body, "\r\n", "\n")
	sb.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(sb.String())
}

// LogMailer only logs the messages, used when no SMTP host is configured.
type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg Message) error {
	if err := validateMessage(msg); err != nil {
		return err
	}
	log.Infof("mail (not sent) to [%s], subject [%s]:\n%s", msg.To, msg.Subject, msg.Body)
	return nil
}

// NewMailer returns an SMTP mailer, or a log only one if host is empty.
func NewMailer(host string, port int, username, password, from string) Mailer {
	if host == "" {
		log.Warnln("smtp host not set, emails will only be logged")
		return LogMailer{}
	}
	return NewSMTPMailer(host, port, username, password, from)
}
