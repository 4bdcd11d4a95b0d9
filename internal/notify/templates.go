package notify

import (
	"bytes"
	"fmt"
	"text/template"
)

const (
	templatePasswordReset = "password_reset"
	templateWeeklyReport  = "weekly_report"
)

var templates = template.Must(template.New("mail").Funcs(template.FuncMap{
	"f1": func(v *float64) string {
		if v == nil {
			return "n/a"
		}
		return fmt.Sprintf("%.1f", *v)
	},
}).Parse(`
{{define "password_reset"}}Hi {{.Name}},

your SportAI password was reset. Your new password is:

    {{.Password}}

Please log in and change it as soon as possible.

SportAI
{{end}}

{{define "weekly_report"}}Hi {{.Name}},

here is your health summary for {{.From.Format "Jan 2"}} - {{.To.Format "Jan 2, 2006"}}.
{{if eq .Summary.Records 0}}
You did not log any health records this week. Keep tracking to get better insights!
{{else}}
Records logged:    {{.Summary.Records}}
Average heartbeat: {{f1 .Summary.AvgHeartbeat}} bpm
Average sleep:     {{f1 .Summary.AvgSleepHours}} h
Average hydration: {{f1 .Summary.AvgHydration}} %
Total steps:       {{.Summary.TotalSteps}}
Active minutes:    {{.Summary.ActiveMinutes}}
{{end}}
SportAI
{{end}}
`))

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s template: %w", name, err)
	}
	return buf.String(), nil
}
