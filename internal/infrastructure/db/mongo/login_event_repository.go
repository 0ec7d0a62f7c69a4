package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bookmarks/account/internal/core/domain"
)

const loginEventsCollection = "login_events"

// LoginEventRepository appends login attempts to the login_events collection.
type LoginEventRepository struct {
	coll *mongo.Collection
}

func NewLoginEventRepository(db *mongo.Database) *LoginEventRepository {
	return &LoginEventRepository{coll: db.Collection(loginEventsCollection)}
}

func (r *LoginEventRepository) InsertLoginEvent(ctx context.Context, event *domain.LoginEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"username": event.Username,
		"outcome":  string(event.Outcome),
		"at":       event.At.UTC(),
	}
	if event.RemoteIP != "" {
		doc["remote_ip"] = event.RemoteIP
	}

	_, err := r.coll.InsertOne(ctx, doc)
	return err
}
