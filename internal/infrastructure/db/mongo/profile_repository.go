package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmarks/account/internal/core/domain"
)

const profilesCollection = "profiles"

type ProfileRepository struct {
	coll *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{coll: db.Collection(profilesCollection)}
}

type mongoProfile struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      string             `bson:"user_id"`
	DateOfBirth *time.Time         `bson:"date_of_birth,omitempty"`
	Photo       string             `bson:"photo,omitempty"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mp *mongoProfile) toDomain() *domain.Profile {
	p := &domain.Profile{
		ID:        mp.ID.Hex(),
		UserID:    mp.UserID,
		Photo:     mp.Photo,
		UpdatedAt: mp.UpdatedAt.UTC(),
	}
	if mp.DateOfBirth != nil {
		d := mp.DateOfBirth.UTC()
		p.DateOfBirth = &d
	}
	return p
}

// FindByUserID is the explicit user -> profile lookup.
func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoProfile
	if err := r.coll.FindOne(ctx, bson.M{"user_id": userID}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return mp.toDomain(), nil
}

func (r *ProfileRepository) Create(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoProfile{
		UserID:      profile.UserID,
		DateOfBirth: profile.DateOfBirth,
		Photo:       profile.Photo,
		UpdatedAt:   profile.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrProfileExists
		}
		return nil, fmt.Errorf("insert profile: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.toDomain(), nil
}

func (r *ProfileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"photo":      profile.Photo,
		"updated_at": profile.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if profile.DateOfBirth != nil {
		set["date_of_birth"] = profile.DateOfBirth.UTC()
	} else {
		update["$unset"] = bson.M{"date_of_birth": ""}
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"user_id": profile.UserID}, update)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrProfileNotFound
	}
	return nil
}
