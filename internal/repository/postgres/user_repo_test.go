package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"festivalhub/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		user        *domain.User
		mock        func(mock sqlmock.Sqlmock)
		wantErr     bool
		isDuplicate bool
	}{
		{
			name: "success",
			user: &domain.User{
				ID:           "user-1",
				Fullname:     "Thandi Nkosi",
				Email:        "thandi@example.com",
				PasswordHash: "hash",
				PasswordSalt: "salt",
				Age:          28,
				Gender:       "Female",
				Role:         "attendee",
				CreatedAt:    created,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users \(id, fullname, email, password_hash, password_salt, age, gender, role, created_at\)`).
					WithArgs("user-1", "Thandi Nkosi", "thandi@example.com", "hash", "salt", 28, "Female", "attendee", created).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			user: &domain.User{ID: "user-2", Email: "thandi@example.com", CreatedAt: created},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr:     true,
			isDuplicate: true,
		},
		{
			name: "db error",
			user: &domain.User{ID: "user-3", CreatedAt: created},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			err = repo.Create(ctx, tt.user)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isDuplicate {
					require.True(t, errors.Is(err, domain.ErrDuplicateEmail))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		id         string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.User
		wantErr    bool
		isNotFound bool
	}{
		{
			name: "success",
			id:   "user-1",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, fullname, email, age, gender, role, created_at\s+FROM users\s+WHERE id = \$1`).
					WithArgs("user-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "fullname", "email", "age", "gender", "role", "created_at"}).
						AddRow("user-1", "Thandi Nkosi", "thandi@example.com", 28, "Female", "attendee", created))
			},
			want: &domain.User{
				ID:        "user-1",
				Fullname:  "Thandi Nkosi",
				Email:     "thandi@example.com",
				Age:       28,
				Gender:    "Female",
				Role:      "attendee",
				CreatedAt: created,
			},
			wantErr: false,
		},
		{
			name: "not found",
			id:   "user-missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, fullname, email, age, gender, role, created_at`).
					WithArgs("user-missing").
					WillReturnError(sql.ErrNoRows)
			},
			want:       nil,
			wantErr:    true,
			isNotFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrUserNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_List(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantLen int
		wantErr bool
	}{
		{
			name: "success multiple",
			mock: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "fullname", "email", "age", "gender", "role", "created_at"}).
					AddRow("user-1", "Thandi Nkosi", "thandi@example.com", 28, "Female", "attendee", created).
					AddRow("user-2", "Sipho Dlamini", "sipho@example.com", 35, "Male", "attendee", created)
				mock.ExpectQuery(`FROM users\s+ORDER BY created_at`).
					WillReturnRows(rows)
			},
			wantLen: 2,
			wantErr: false,
		},
		{
			name: "success empty",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users\s+ORDER BY created_at`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "fullname", "email", "age", "gender", "role", "created_at"}))
			},
			wantLen: 0,
			wantErr: false,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`FROM users`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewUserRepository(db)
			got, err := repo.List(ctx)
			if tt.wantErr {
				require.Error(t, err)
				require.Nil(t, got)
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Len(t, got, tt.wantLen)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserRepository_ListByEventID(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`JOIN rsvps r ON r.user_id = u.id\s+WHERE r.event_id = \$1`).
			WithArgs("ev-1").
			WillReturnRows(sqlmock.NewRows([]string{"id", "fullname", "email", "age", "gender", "role", "created_at"}).
				AddRow("user-1", "Thandi Nkosi", "thandi@example.com", 28, "Female", "attendee", created))

		repo := NewUserRepository(db)
		got, err := repo.ListByEventID(ctx, "ev-1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "user-1", got[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success empty", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`JOIN rsvps r ON r.user_id = u.id`).
			WithArgs("ev-empty").
			WillReturnRows(sqlmock.NewRows([]string{"id", "fullname", "email", "age", "gender", "role", "created_at"}))

		repo := NewUserRepository(db)
		got, err := repo.ListByEventID(ctx, "ev-empty")
		require.NoError(t, err)
		require.Empty(t, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_Count(t *testing.T) {
	ctx := context.Background()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM users`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	repo := NewUserRepository(db)
	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 42, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
