package repository

import (
	"context"
	"errors"
	"net/url"
	"time"
	"unicode/utf8"

	authdomain "around-backend/internal/auth/domain"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

const usersCollection = "users"

// userRepository implements UserRepository on top of MongoDB
type userRepository struct {
	users     *mongo.Collection
	opTimeout time.Duration
}

// NewUserRepository creates a new instance of userRepository. Every store
// call runs under opTimeout so a hung store call cannot pin a request.
func NewUserRepository(db *mongo.Database, opTimeout time.Duration) UserRepository {
	return &userRepository{
		users:     db.Collection(usersCollection),
		opTimeout: opTimeout,
	}
}

// EnsureIndexes creates the unique email index. Called once at startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *userRepository) Create(ctx context.Context, user *authdomain.User) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	user.ID = uuid.New().String()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	if _, err := r.users.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*authdomain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var user authdomain.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*authdomain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	var user authdomain.User
	err := r.users.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]authdomain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	cursor, err := r.users.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var users []authdomain.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id, name, about string) (*authdomain.User, error) {
	if err := validateLength(name); err != nil {
		return nil, err
	}
	if err := validateLength(about); err != nil {
		return nil, err
	}
	return r.updateFields(ctx, id, bson.M{"name": name, "about": about})
}

func (r *userRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*authdomain.User, error) {
	if err := validateURL(avatar); err != nil {
		return nil, err
	}
	return r.updateFields(ctx, id, bson.M{"avatar": avatar})
}

// updateFields applies a partial update and returns the post-update record,
// or (nil, nil) when the id resolves to no record.
func (r *userRepository) updateFields(ctx context.Context, id string, fields bson.M) (*authdomain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	fields["updated_at"] = time.Now()

	var user authdomain.User
	err := r.users.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": fields},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// Field rules mirror the collection schema: free-text fields are 2-30
// characters, avatar must be an absolute URL. Checked before the write so a
// failed validation leaves the stored record unchanged.
func validateLength(value string) error {
	if n := utf8.RuneCountInString(value); n < 2 || n > 30 {
		return ErrValidation
	}
	return nil
}

func validateURL(value string) error {
	u, err := url.Parse(value)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrValidation
	}
	return nil
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPasswordHash compares a password with a hash
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
