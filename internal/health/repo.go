package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/sportai/internal/telemetry/tracing"
	"github.com/2beens/sportai/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const metricColumns = `heartbeat, bp_systolic, bp_diastolic, hydration, sleep_hours, blood_oxygen,
	ecg_reading, walking_steps, running_duration, cycling_duration, skipping_duration,
	badminton_duration, basketball_duration, football_duration, swimming_duration, elliptical_duration`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func scanRecord(row pgx.Row) (*Record, error) {
	var r Record
	dest := append([]any{&r.ID, &r.UserID, &r.RecordedAt}, r.metricFields()...)
	if err := row.Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (repo *Repo) Add(ctx context.Context, record Record) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.add")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("user.id", record.UserID))

	if record.RecordedAt.IsZero() {
		return nil, errors.New("health record timestamp empty")
	}

	args := append([]any{record.UserID, record.RecordedAt}, record.metricValues()...)
	if err := repo.db.QueryRow(
		ctx,
		`INSERT INTO health_record (user_id, recorded_at, `+metricColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
			RETURNING id;`,
		args...,
	).Scan(&record.ID); err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrUnknownUser
		}
		return nil, fmt.Errorf("insert health record: %w", err)
	}

	return &record, nil
}

// Get returns the record only if it belongs to the given user.
func (repo *Repo) Get(ctx context.Context, userID, id int) (_ *Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.get")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("id", id))

	return scanRecord(repo.db.QueryRow(
		ctx,
		`SELECT id, user_id, recorded_at, `+metricColumns+`
			FROM health_record
			WHERE id = $1 AND user_id = $2;`,
		id, userID,
	))
}

func (repo *Repo) Count(ctx context.Context, userID int) (int, error) {
	var count int
	if err := repo.db.QueryRow(
		ctx,
		`SELECT COUNT(*) FROM health_record WHERE user_id = $1;`,
		userID,
	).Scan(&count); err != nil {
		return -1, fmt.Errorf("count health records: %w", err)
	}
	return count, nil
}

// List returns the requested page of the user's records, newest first, and their total count.
func (repo *Repo) List(ctx context.Context, userID, page, size int) (_ []Record, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.list")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("page", page), attribute.Int("size", size))

	if page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	total, err = repo.Count(ctx, userID)
	if err != nil {
		return nil, -1, err
	}

	rows, err := repo.db.Query(
		ctx,
		`SELECT id, user_id, recorded_at, `+metricColumns+`
			FROM health_record
			WHERE user_id = $1
			ORDER BY recorded_at DESC, id DESC
			LIMIT $2
			OFFSET $3;`,
		userID, size, (page-1)*size,
	)
	if err != nil {
		return nil, -1, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, -1, fmt.Errorf("rows scan: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, -1, fmt.Errorf("rows: %w", err)
	}

	return records, total, nil
}

func (repo *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("user.id", userID), attribute.Int("id", id))

	tag, err := repo.db.Exec(
		ctx,
		`DELETE FROM health_record WHERE id = $1 AND user_id = $2;`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

// Summary aggregates the user's records logged in [from, to).
func (repo *Repo) Summary(ctx context.Context, userID int, from, to time.Time) (_ *Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.health.summary")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("user.id", userID))

	summary := Summary{
		UserID: userID,
		From:   from,
		To:     to,
	}
	if err := repo.db.QueryRow(
		ctx,
		`SELECT
				COUNT(*),
				AVG(heartbeat)::float8,
				AVG(sleep_hours)::float8,
				AVG(hydration)::float8,
				COALESCE(SUM(walking_steps), 0)::bigint,
				COALESCE(SUM(
					COALESCE(running_duration, 0) + COALESCE(cycling_duration, 0) +
					COALESCE(skipping_duration, 0) + COALESCE(badminton_duration, 0) +
					COALESCE(basketball_duration, 0) + COALESCE(football_duration, 0) +
					COALESCE(swimming_duration, 0) + COALESCE(elliptical_duration, 0)
				), 0)::bigint
			FROM health_record
			WHERE user_id = $1 AND recorded_at >= $2 AND recorded_at < $3;`,
		userID, from, to,
	).Scan(
		&summary.Records, &summary.AvgHeartbeat, &summary.AvgSleepHours, &summary.AvgHydration,
		&summary.TotalSteps, &summary.ActiveMinutes,
	); err != nil {
		return nil, fmt.Errorf("summary query: %w", err)
	}

	return &summary, nil
}
