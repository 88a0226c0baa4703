package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/fieldcrypt/pkg/pg"
)

const userColumns = `id, email, username, first_name, last_name, phone_number,
	date_of_birth, address, password_hash, encrypted_national_id, is_active, created_at, updated_at`

var _ Storage = (*PostgresStorage)(nil)

// PostgresStorage keeps users in the table created by Migrations.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

func NewPostgresStorage(pool *pgxpool.Pool) *PostgresStorage {
	return &PostgresStorage{pool: pool}
}

func (s *PostgresStorage) CreateUser(ctx context.Context, u *User) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, u.Email, u.Username, u.FirstName, u.LastName, u.PhoneNumber,
		u.DateOfBirth, u.Address, u.PasswordHash, u.EncryptedNationalID, u.Active, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if pg.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *PostgresStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (s *PostgresStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (s *PostgresStorage) UpdateNationalID(ctx context.Context, id uuid.UUID, envelope *string, updatedAt time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET encrypted_national_id = $2, updated_at = $3 WHERE id = $1`,
		id, envelope, updatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostgresStorage) UpdateProfile(ctx context.Context, u *User) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET first_name = $2, last_name = $3, phone_number = $4,
		date_of_birth = $5, address = $6, updated_at = $7 WHERE id = $1`,
		u.ID, u.FirstName, u.LastName, u.PhoneNumber, u.DateOfBirth, u.Address, u.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *PostgresStorage) SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE users SET is_active = $2, updated_at = $3 WHERE id = $1`,
		id, active, updatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.FirstName, &u.LastName, &u.PhoneNumber,
		&u.DateOfBirth, &u.Address, &u.PasswordHash, &u.EncryptedNationalID, &u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if pg.IsNotFoundError(err) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Join(errors.New("failed to scan user"), err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}
