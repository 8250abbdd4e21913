package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"festivalhub/internal/domain"
)

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) domain.UserRepository {
	return &userRepository{
		DB: db,
	}
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `
		INSERT INTO users (id, fullname, email, password_hash, password_salt, age, gender, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := q(ctx, r.DB).ExecContext(ctx, query,
		u.ID, u.Fullname, u.Email, u.PasswordHash, u.PasswordSalt, u.Age, u.Gender, u.Role, u.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, fullname, email, age, gender, role, created_at
		FROM users
		WHERE id = $1
	`
	u := &domain.User{}
	err := q(ctx, r.DB).QueryRowContext(ctx, query, id).Scan(
		&u.ID, &u.Fullname, &u.Email, &u.Age, &u.Gender, &u.Role, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, fullname, email, age, gender, role, created_at
		FROM users
		ORDER BY created_at
	`
	return r.queryUsers(ctx, query)
}

func (r *userRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.User, error) {
	query := `
		SELECT u.id, u.fullname, u.email, u.age, u.gender, u.role, u.created_at
		FROM users u
		JOIN rsvps r ON r.user_id = u.id
		WHERE r.event_id = $1
		ORDER BY r.created_at
	`
	return r.queryUsers(ctx, query, eventID)
}

func (r *userRepository) queryUsers(ctx context.Context, query string, args ...any) ([]*domain.User, error) {
	rows, err := q(ctx, r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		u := &domain.User{}
		if err := rows.Scan(&u.ID, &u.Fullname, &u.Email, &u.Age, &u.Gender, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := q(ctx, r.DB).QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count)
	return count, err
}
