package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrymomot/fieldcrypt/pkg/fieldcrypt"
	"github.com/dmitrymomot/fieldcrypt/pkg/logger"
)

// RegisterInput carries the data for a new account. NationalID is optional
// and is encrypted before it reaches storage.
type RegisterInput struct {
	Email       string     `validate:"required,email,max=254"`
	Username    string     `validate:"required,min=3,max=150"`
	FirstName   string     `validate:"required,max=150"`
	LastName    string     `validate:"required,max=150"`
	Password    string     `validate:"required,min=8,max=72"`
	NationalID  string     `validate:"omitempty,max=64"`
	PhoneNumber string     `validate:"omitempty,max=15"`
	Address     string     `validate:"omitempty,max=1024"`
	DateOfBirth *time.Time `validate:"omitempty"`
}

// UpdateProfileInput changes the editable profile fields. Nil fields are left
// as stored; an empty PhoneNumber or Address clears it. Email, username,
// password and national ID have their own flows and cannot be set here.
type UpdateProfileInput struct {
	FirstName   *string    `validate:"omitnil,min=1,max=150"`
	LastName    *string    `validate:"omitnil,min=1,max=150"`
	PhoneNumber *string    `validate:"omitnil,max=15"`
	Address     *string    `validate:"omitnil,max=1024"`
	DateOfBirth *time.Time `validate:"omitnil"`
}

// Service manages user records whose national ID is stored encrypted.
type Service struct {
	storage    Storage
	fields     *FieldAdapter
	validate   *validator.Validate
	bcryptCost int
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures a Service during construction.
type Option func(*Service)

// WithLogger configures the logger for the service.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		s.logger = log
	}
}

// WithBcryptCost configures the bcrypt cost parameter for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a user service over storage. The field adapter handles
// the national ID in both directions.
func NewService(storage Storage, fields *FieldAdapter, opts ...Option) *Service {
	s := &Service{
		storage:    storage,
		fields:     fields,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		bcryptCost: bcrypt.DefaultCost,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	s.logger = s.logger.With(logger.Component("identity"))
	return s
}

// Register validates input, hashes the password, encrypts the national ID
// and stores the new user.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*User, error) {
	in.Email = normalizeEmail(in.Email)
	in.Username = strings.TrimSpace(in.Username)
	in.NationalID = strings.TrimSpace(in.NationalID)

	if err := s.validate.StructCtx(ctx, in); err != nil {
		return nil, errors.Join(ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.timestamp()
	u := &User{
		ID:           uuid.New(),
		Email:        in.Email,
		Username:     in.Username,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		PhoneNumber:  optional(in.PhoneNumber),
		DateOfBirth:  in.DateOfBirth,
		Address:      optional(in.Address),
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.fields.Seal(u, in.NationalID); err != nil {
		return nil, sealError(err)
	}

	if err := s.storage.CreateUser(ctx, u); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered",
		logger.UserID(u.ID.String()),
		logger.Event("user.registered"),
		slog.Bool("national_id_set", u.HasNationalID()),
	)

	return u, nil
}

// GetUser returns the public view of a user.
func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (UserView, error) {
	u, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return UserView{}, fmt.Errorf("failed to get user: %w", err)
	}
	return u.View(), nil
}

// GetProfile returns the user together with the decrypted national ID. A
// stored envelope that cannot be decrypted yields NationalIDAvailable=false
// and no error.
func (s *Service) GetProfile(ctx context.Context, id uuid.UUID) (Profile, error) {
	u, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to get user: %w", err)
	}

	p := Profile{UserView: u.View()}
	p.NationalID, p.NationalIDAvailable = s.fields.Reveal(ctx, u)
	return p, nil
}

// SetNationalID encrypts and stores a new national ID. Empty input leaves
// the stored value unchanged.
func (s *Service) SetNationalID(ctx context.Context, id uuid.UUID, nationalID string) error {
	nationalID = strings.TrimSpace(nationalID)
	if err := s.validate.VarCtx(ctx, nationalID, "omitempty,max=64"); err != nil {
		return errors.Join(ErrInvalidInput, err)
	}
	if nationalID == "" {
		return nil
	}

	u, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := s.fields.Seal(u, nationalID); err != nil {
		return sealError(err)
	}

	if err := s.storage.UpdateNationalID(ctx, id, u.EncryptedNationalID, s.timestamp()); err != nil {
		return fmt.Errorf("failed to update national id: %w", err)
	}

	s.logger.InfoContext(ctx, "national id updated",
		logger.UserID(id.String()),
		logger.Event("user.national_id_updated"),
	)
	return nil
}

// UpdateProfile applies in to the user and returns the updated view. The
// stored national ID is not touched.
func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (UserView, error) {
	in.FirstName = trimmed(in.FirstName)
	in.LastName = trimmed(in.LastName)
	in.PhoneNumber = trimmed(in.PhoneNumber)
	in.Address = trimmed(in.Address)

	if err := s.validate.StructCtx(ctx, in); err != nil {
		return UserView{}, errors.Join(ErrInvalidInput, err)
	}

	u, err := s.storage.GetUserByID(ctx, id)
	if err != nil {
		return UserView{}, fmt.Errorf("failed to get user: %w", err)
	}

	if in.FirstName != nil {
		u.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		u.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		u.PhoneNumber = optional(*in.PhoneNumber)
	}
	if in.Address != nil {
		u.Address = optional(*in.Address)
	}
	if in.DateOfBirth != nil {
		u.DateOfBirth = in.DateOfBirth
	}
	u.UpdatedAt = s.timestamp()

	if err := s.storage.UpdateProfile(ctx, u); err != nil {
		return UserView{}, fmt.Errorf("failed to update profile: %w", err)
	}

	s.logger.InfoContext(ctx, "profile updated",
		logger.UserID(id.String()),
		logger.Event("user.profile_updated"),
	)
	return u.View(), nil
}

// SetActive enables or disables login for the user.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	if err := s.storage.SetActive(ctx, id, active, s.timestamp()); err != nil {
		return fmt.Errorf("failed to set account status: %w", err)
	}

	s.logger.InfoContext(ctx, "account status changed",
		logger.UserID(id.String()),
		logger.Event("user.active_changed"),
		slog.Bool("active", active),
	)
	return nil
}

// ClearNationalID removes the stored national ID.
func (s *Service) ClearNationalID(ctx context.Context, id uuid.UUID) error {
	if err := s.storage.UpdateNationalID(ctx, id, nil, s.timestamp()); err != nil {
		return fmt.Errorf("failed to clear national id: %w", err)
	}

	s.logger.InfoContext(ctx, "national id cleared",
		logger.UserID(id.String()),
		logger.Event("user.national_id_cleared"),
	)
	return nil
}

// Authenticate checks email and password. Unknown emails and wrong
// passwords both return ErrInvalidCredentials; a correct password on a
// disabled account returns ErrAccountDisabled.
func (s *Service) Authenticate(ctx context.Context, email, password string) (UserView, error) {
	u, err := s.storage.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return UserView{}, ErrInvalidCredentials
		}
		return UserView{}, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(u.PasswordHash, []byte(password)); err != nil {
		return UserView{}, ErrInvalidCredentials
	}
	if !u.Active {
		return UserView{}, ErrAccountDisabled
	}

	return u.View(), nil
}

// timestamp is truncated to milliseconds, the coarsest precision of the
// storage backends.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// sealError marks plaintext the cipher refuses as invalid input.
func sealError(err error) error {
	if errors.Is(err, fieldcrypt.ErrInvalidPlaintext) {
		return errors.Join(ErrInvalidInput, err)
	}
	return fmt.Errorf("failed to encrypt national id: %w", err)
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	return &v
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
