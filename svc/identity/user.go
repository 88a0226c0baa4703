package identity

import (
	"time"

	"github.com/google/uuid"
)

// User is the stored user record. EncryptedNationalID holds the envelope
// produced by the field cipher and is nil when no national ID was given.
type User struct {
	ID                  uuid.UUID
	Email               string
	Username            string
	FirstName           string
	LastName            string
	PhoneNumber         *string
	DateOfBirth         *time.Time
	Address             *string
	PasswordHash        []byte
	EncryptedNationalID *string
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// FullName returns "First Last", or the username when both are empty.
func (u *User) FullName() string {
	switch {
	case u.FirstName != "" && u.LastName != "":
		return u.FirstName + " " + u.LastName
	case u.FirstName != "":
		return u.FirstName
	case u.LastName != "":
		return u.LastName
	default:
		return u.Username
	}
}

// HasNationalID reports whether an envelope is stored.
func (u *User) HasNationalID() bool {
	return u.EncryptedNationalID != nil && *u.EncryptedNationalID != ""
}

// View returns the fields safe to show to any authenticated caller.
func (u *User) View() UserView {
	return UserView{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		PhoneNumber: u.PhoneNumber,
		DateOfBirth: u.DateOfBirth,
		Address:     u.Address,
		Active:      u.Active,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func (u *User) clone() *User {
	c := *u
	c.PasswordHash = append([]byte(nil), u.PasswordHash...)
	c.PhoneNumber = clonePtr(u.PhoneNumber)
	c.DateOfBirth = clonePtr(u.DateOfBirth)
	c.Address = clonePtr(u.Address)
	c.EncryptedNationalID = clonePtr(u.EncryptedNationalID)
	return &c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// UserView is the public projection of a user. It never carries the
// national ID, encrypted or not.
type UserView struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Username    string     `json:"username"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Address     *string    `json:"address,omitempty"`
	Active      bool       `json:"is_active"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Profile is what a trusted reader sees. NationalIDAvailable is false both
// when nothing is stored and when the stored envelope cannot be decrypted.
type Profile struct {
	UserView
	NationalID          string `json:"national_id,omitempty"`
	NationalIDAvailable bool   `json:"national_id_available"`
}
