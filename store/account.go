package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aidconnect/aid-connect-api/schema"
)

var (
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrEmailTaken   = fmt.Errorf("email already registered")
	ErrNoRating     = fmt.Errorf("user has no community rating")
)

// Account - user accounts and the helper reliability they carry
type Account interface {
	CreateUser(ctx context.Context, user schema.User) error
	GetUser(ctx context.Context, userID string) (*schema.User, error)
	GetUserByEmail(ctx context.Context, email string) (*schema.User, error)
	TouchUser(ctx context.Context, userID string, at time.Time) error
	HelperRating(ctx context.Context, userID string) (float64, error)
}

// CreateUser inserts a new user. Emails are unique.
func (m *mongoDB) CreateUser(ctx context.Context, user schema.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := m.collection(schema.UserCollection).InsertOne(ctx, user); err != nil {
		if isDuplicateKey(err) {
			return ErrEmailTaken
		}
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"user_id": user.UserID,
			"error":   err,
		}).Error("insert user")
		return err
	}

	return nil
}

func (m *mongoDB) findUser(ctx context.Context, query bson.M) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var user schema.User
	if err := m.collection(schema.UserCollection).FindOne(ctx, query).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (m *mongoDB) GetUser(ctx context.Context, userID string) (*schema.User, error) {
	return m.findUser(ctx, bson.M{"user_id": userID})
}

func (m *mongoDB) GetUserByEmail(ctx context.Context, email string) (*schema.User, error) {
	return m.findUser(ctx, bson.M{"email": email})
}

// TouchUser records the last time the user was seen
func (m *mongoDB) TouchUser(ctx context.Context, userID string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.UserCollection).UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"last_active": at.UTC()}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}

// HelperRating returns the community rating of a user. A missing user and a
// user without a rating are reported as errors, so the caller decides on the
// fallback.
func (m *mongoDB) HelperRating(ctx context.Context, userID string) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var result struct {
		Stats struct {
			CommunityRating *float64 `bson:"community_rating"`
		} `bson:"stats"`
	}

	opts := options.FindOne().SetProjection(bson.M{"stats.community_rating": 1})
	if err := m.collection(schema.UserCollection).FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&result); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, ErrUserNotFound
		}
		return 0, err
	}

	if result.Stats.CommunityRating == nil {
		return 0, ErrNoRating
	}

	return *result.Stats.CommunityRating, nil
}
