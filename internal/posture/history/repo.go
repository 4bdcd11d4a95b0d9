package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/sportai/internal/posture"
	"github.com/2beens/sportai/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, event posture.AlarmEvent) (_ *posture.AlarmEvent, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.posture_alarm.add")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.String("mode", event.Mode.String()))

	if event.FiredAt.IsZero() {
		return nil, errors.New("alarm fired at timestamp empty")
	}

	var id int
	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO posture_alarm
				(mode, fired_at, frame_seq, shoulder_angle, elbow_angle)
				VALUES ($1, $2, $3, $4, $5)
			RETURNING id;`,
		event.Mode.String(), event.FiredAt, event.FrameSeq, event.ShoulderAngle, event.ElbowAngle,
	).Scan(&id); err != nil {
		return nil, fmt.Errorf("insert alarm: %w", err)
	}

	event.ID = id
	return &event, nil
}

func (r *Repo) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM posture_alarm;`).Scan(&count); err != nil {
		return -1, fmt.Errorf("count alarms: %w", err)
	}
	return count, nil
}

// List returns the requested page of alarms, newest first, along with the total count.
func (r *Repo) List(ctx context.Context, page, size int) (_ []posture.AlarmEvent, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.posture_alarm.list")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	if page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	total, err = r.Count(ctx)
	if err != nil {
		return nil, -1, err
	}

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, mode, fired_at, frame_seq, shoulder_angle, elbow_angle
			FROM posture_alarm
			ORDER BY fired_at DESC, id DESC
			LIMIT $1
			OFFSET $2;`,
		size, (page-1)*size,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var alarms []posture.AlarmEvent
	for rows.Next() {
		var alarm posture.AlarmEvent
		var mode string
		if err := rows.Scan(
			&alarm.ID, &mode, &alarm.FiredAt, &alarm.FrameSeq, &alarm.ShoulderAngle, &alarm.ElbowAngle,
		); err != nil {
			return nil, -1, fmt.Errorf("rows scan: %w", err)
		}
		alarm.Mode = posture.ExerciseMode(mode)
		alarms = append(alarms, alarm)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, fmt.Errorf("rows: %w", err)
	}

	return alarms, total, nil
}
