package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Storage persists user records. Implementations return ErrUserNotFound for
// missing users and ErrEmailTaken for duplicate emails.
type Storage interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	UpdateNationalID(ctx context.Context, id uuid.UUID, envelope *string, updatedAt time.Time) error

	// UpdateProfile writes the name, phone number, date of birth, address and
	// UpdatedAt of u. Other fields are left as stored.
	UpdateProfile(ctx context.Context, u *User) error
	SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) error
}
