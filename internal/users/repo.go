package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/sportai/internal/telemetry/tracing"
	"github.com/2beens/sportai/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

const userColumns = `id, name, username, email, phone, gender, dob, password_hash, created_at`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func duplicateErr(err error) error {
	if pkg.IsUniqueViolationError(err) {
		return fmt.Errorf("%w: %s", ErrDuplicateUser, pkg.ViolatedConstraint(err))
	}
	return err
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Gender, &u.DOB, &u.PasswordHash, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *Repo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer tracing.EndSpanWithErrCheck(span, &err)

	if user.PasswordHash == "" || user.CreatedAt.IsZero() {
		return nil, errors.New("user password hash or created at empty")
	}

	if err := r.db.QueryRow(
		ctx,
		`INSERT INTO sportai_user
				(name, username, email, phone, gender, dob, password_hash, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id;`,
		user.Name, user.Username, user.Email, user.Phone, user.Gender, user.DOB, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID); err != nil {
		return nil, duplicateErr(err)
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))
	return &user, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("user.id", id))

	return scanUser(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM sportai_user WHERE id = $1;`,
		id,
	))
}

// GetByIdentifier finds the user by username, email or phone number.
func (r *Repo) GetByIdentifier(ctx context.Context, identifier string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get_by_identifier")
	defer tracing.EndSpanWithErrCheck(span, &err)

	return scanUser(r.db.QueryRow(
		ctx,
		`SELECT `+userColumns+` FROM sportai_user
			WHERE username = $1 OR lower(email) = lower($1) OR phone = $1
			LIMIT 1;`,
		identifier,
	))
}

func (r *Repo) List(ctx context.Context) (_ []User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.list")
	defer tracing.EndSpanWithErrCheck(span, &err)

	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM sportai_user ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return users, nil
}

func (r *Repo) UpdateProfile(ctx context.Context, user User) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update_profile")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("user.id", user.ID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE sportai_user
			SET name = $1, username = $2, email = $3, phone = $4, gender = $5, dob = $6
			WHERE id = $7;`,
		user.Name, user.Username, user.Email, user.Phone, user.Gender, user.DOB, user.ID,
	)
	if err != nil {
		return duplicateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) UpdatePassword(ctx context.Context, id int, passwordHash string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.update_password")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("user.id", id))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE sportai_user SET password_hash = $1 WHERE id = $2;`,
		passwordHash, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.delete")
	defer tracing.EndSpanWithErrCheck(span, &err)
	span.SetAttributes(attribute.Int("user.id", id))

	tag, err := r.db.Exec(ctx, `DELETE FROM sportai_user WHERE id = $1;`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
