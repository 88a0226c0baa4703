package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UsersCollection is the collection MongoStorage writes to.
const UsersCollection = "users"

type userDocument struct {
	ID                  string     `bson:"_id"`
	Email               string     `bson:"email"`
	Username            string     `bson:"username"`
	FirstName           string     `bson:"first_name"`
	LastName            string     `bson:"last_name"`
	PhoneNumber         *string    `bson:"phone_number"`
	DateOfBirth         *time.Time `bson:"date_of_birth"`
	Address             *string    `bson:"address"`
	PasswordHash        []byte     `bson:"password_hash"`
	EncryptedNationalID *string    `bson:"encrypted_national_id"`
	Active              bool       `bson:"is_active"`
	CreatedAt           time.Time  `bson:"created_at"`
	UpdatedAt           time.Time  `bson:"updated_at"`
}

var _ Storage = (*MongoStorage)(nil)

// MongoStorage keeps users in a MongoDB collection with a unique email index.
type MongoStorage struct {
	coll *mongo.Collection
}

// NewMongoStorage ensures the email index exists and returns the storage.
func NewMongoStorage(ctx context.Context, db *mongo.Database) (*MongoStorage, error) {
	coll := db.Collection(UsersCollection)
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_key"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create users email index: %w", err)
	}
	return &MongoStorage{coll: coll}, nil
}

func (s *MongoStorage) CreateUser(ctx context.Context, u *User) error {
	if _, err := s.coll.InsertOne(ctx, toDocument(u)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (s *MongoStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.findOne(ctx, bson.M{"_id": id.String()})
}

func (s *MongoStorage) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *MongoStorage) UpdateNationalID(ctx context.Context, id uuid.UUID, envelope *string, updatedAt time.Time) error {
	return s.set(ctx, id, bson.M{
		"encrypted_national_id": envelope,
		"updated_at":            updatedAt,
	})
}

func (s *MongoStorage) UpdateProfile(ctx context.Context, u *User) error {
	return s.set(ctx, u.ID, bson.M{
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"phone_number":  u.PhoneNumber,
		"date_of_birth": u.DateOfBirth,
		"address":       u.Address,
		"updated_at":    u.UpdatedAt,
	})
}

func (s *MongoStorage) SetActive(ctx context.Context, id uuid.UUID, active bool, updatedAt time.Time) error {
	return s.set(ctx, id, bson.M{
		"is_active":  active,
		"updated_at": updatedAt,
	})
}

func (s *MongoStorage) set(ctx context.Context, id uuid.UUID, fields bson.M) error {
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id.String()}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *MongoStorage) findOne(ctx context.Context, filter bson.M) (*User, error) {
	var doc userDocument
	if err := s.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return doc.toUser()
}

func toDocument(u *User) userDocument {
	return userDocument{
		ID:                  u.ID.String(),
		Email:               u.Email,
		Username:            u.Username,
		FirstName:           u.FirstName,
		LastName:            u.LastName,
		PhoneNumber:         u.PhoneNumber,
		DateOfBirth:         u.DateOfBirth,
		Address:             u.Address,
		PasswordHash:        u.PasswordHash,
		EncryptedNationalID: u.EncryptedNationalID,
		Active:              u.Active,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

func (d userDocument) toUser() (*User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", d.ID, err)
	}
	return &User{
		ID:                  id,
		Email:               d.Email,
		Username:            d.Username,
		FirstName:           d.FirstName,
		LastName:            d.LastName,
		PhoneNumber:         d.PhoneNumber,
		DateOfBirth:         d.DateOfBirth,
		Address:             d.Address,
		PasswordHash:        d.PasswordHash,
		EncryptedNationalID: d.EncryptedNationalID,
		Active:              d.Active,
		CreatedAt:           d.CreatedAt.UTC(),
		UpdatedAt:           d.UpdatedAt.UTC(),
	}, nil
}
