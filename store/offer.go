package store

import (
	"context"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aidconnect/aid-connect-api/schema"
)

// Offer - help offers. ActiveOffers serves as the candidate source of the
// matching engine.
type Offer interface {
	CreateOffer(ctx context.Context, offer schema.HelpOffer) error
	ListOffers(ctx context.Context, category schema.Category, limit int64) ([]schema.HelpOffer, error)
	ActiveOffers(ctx context.Context, category schema.Category, requesterID string) ([]schema.HelpOffer, error)
}

func (m *mongoDB) CreateOffer(ctx context.Context, offer schema.HelpOffer) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if offer.Skills == nil {
		offer.Skills = []string{}
	}

	if _, err := m.collection(schema.OfferCollection).InsertOne(ctx, offer); err != nil {
		log.WithFields(log.Fields{
			"prefix":   mongoLogPrefix,
			"offer_id": offer.OfferID,
			"error":    err,
		}).Error("insert help offer")
		return err
	}

	return nil
}

// ListOffers returns active offers, optionally of one category
func (m *mongoDB) ListOffers(ctx context.Context, category schema.Category, limit int64) ([]schema.HelpOffer, error) {
	query := bson.M{"status": schema.OfferActive}
	if category != "" {
		query["category"] = category
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}

	return m.findOffers(ctx, query, options.Find().SetLimit(limit))
}

// ActiveOffers returns every active offer of the category that does not
// belong to the requester
func (m *mongoDB) ActiveOffers(ctx context.Context, category schema.Category, requesterID string) ([]schema.HelpOffer, error) {
	query := bson.M{
		"category": category,
		"status":   schema.OfferActive,
		"user_id":  bson.M{"$ne": requesterID},
	}

	return m.findOffers(ctx, query)
}

func (m *mongoDB) findOffers(ctx context.Context, query bson.M, opts ...*options.FindOptions) ([]schema.HelpOffer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := m.collection(schema.OfferCollection).Find(ctx, query, opts...)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"query":  query,
			"error":  err,
		}).Error("find help offers")
		return nil, err
	}

	offers := make([]schema.HelpOffer, 0)
	if err := cur.All(ctx, &offers); err != nil {
		return nil, err
	}

	return offers, nil
}
