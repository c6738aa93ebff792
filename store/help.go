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

const (
	// metersPerDegree approximates one degree of latitude
	metersPerDegree = 111000.0

	DefaultListLimit = 20
)

var (
	ErrRequestNotFound = fmt.Errorf("help request not found")
)

// RequestFilter narrows down a help request listing. An empty Statuses
// lists the requests still waiting for help.
type RequestFilter struct {
	Category schema.Category
	Statuses []schema.RequestStatus
	Near     *schema.Location
	Radius   int
	Limit    int64
}

// Help - help requests and their computed matches
type Help interface {
	CreateHelpRequest(ctx context.Context, request schema.HelpRequest) error
	GetHelpRequest(ctx context.Context, requestID string) (*schema.HelpRequest, error)
	ListHelpRequests(ctx context.Context, filter RequestFilter) ([]schema.HelpRequest, error)
	UpdateHelpMatches(ctx context.Context, requestID string, matches []schema.MatchCandidate) error
	ExpireHelpRequests(ctx context.Context, now time.Time) (int64, error)
}

func (m *mongoDB) CreateHelpRequest(ctx context.Context, request schema.HelpRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if request.Matching.AIMatches == nil {
		request.Matching.AIMatches = []schema.MatchCandidate{}
	}
	if request.Matching.Respondents == nil {
		request.Matching.Respondents = []string{}
	}

	if _, err := m.collection(schema.RequestCollection).InsertOne(ctx, request); err != nil {
		log.WithFields(log.Fields{
			"prefix":     mongoLogPrefix,
			"request_id": request.RequestID,
			"error":      err,
		}).Error("insert help request")
		return err
	}

	return nil
}

func (m *mongoDB) GetHelpRequest(ctx context.Context, requestID string) (*schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var request schema.HelpRequest
	if err := m.collection(schema.RequestCollection).FindOne(ctx, bson.M{"request_id": requestID}).Decode(&request); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	return &request, nil
}

// ListHelpRequests returns the most urgent requests first
func (m *mongoDB) ListHelpRequests(ctx context.Context, filter RequestFilter) ([]schema.HelpRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{"urgency_score", -1}}).
		SetLimit(limit)

	cur, err := m.collection(schema.RequestCollection).Find(ctx, requestQuery(filter), opts)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": mongoLogPrefix,
			"error":  err,
		}).Error("list help requests")
		return nil, err
	}

	requests := make([]schema.HelpRequest, 0)
	if err := cur.All(ctx, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// requestQuery builds the listing query. The geographic part is a rough
// bounding box in degrees, not a radius.
func requestQuery(filter RequestFilter) bson.M {
	statuses := filter.Statuses
	if len(statuses) == 0 {
		statuses = []schema.RequestStatus{schema.RequestOpen, schema.RequestMatched}
	}

	query := bson.M{
		"status": bson.M{"$in": statuses},
	}

	if filter.Category != "" {
		query["category"] = filter.Category
	}

	if filter.Near != nil && filter.Radius > 0 {
		delta := float64(filter.Radius) / metersPerDegree
		query["location.latitude"] = bson.M{
			"$gte": filter.Near.Latitude - delta,
			"$lte": filter.Near.Latitude + delta,
		}
		query["location.longitude"] = bson.M{
			"$gte": filter.Near.Longitude - delta,
			"$lte": filter.Near.Longitude + delta,
		}
	}

	return query
}

// UpdateHelpMatches replaces the stored matches of a request. Concurrent
// writers are not coordinated, the last write wins.
func (m *mongoDB) UpdateHelpMatches(ctx context.Context, requestID string, matches []schema.MatchCandidate) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if matches == nil {
		matches = []schema.MatchCandidate{}
	}

	result, err := m.collection(schema.RequestCollection).UpdateOne(ctx,
		bson.M{"request_id": requestID},
		bson.M{"$set": bson.M{
			"matching.ai_matches": matches,
			"updated_at":          time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrRequestNotFound
	}

	return nil
}

// ExpireHelpRequests marks every pending request whose expiry is not after
// now as expired and returns how many were changed
func (m *mongoDB) ExpireHelpRequests(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.RequestCollection).UpdateMany(ctx,
		bson.M{
			"status":     bson.M{"$in": []schema.RequestStatus{schema.RequestOpen, schema.RequestMatched}},
			"expires_at": bson.M{"$lte": now.UTC()},
		},
		bson.M{"$set": bson.M{
			"status":     schema.RequestExpired,
			"updated_at": now.UTC(),
		}},
	)
	if err != nil {
		return 0, err
	}

	log.WithFields(log.Fields{
		"prefix":  mongoLogPrefix,
		"expired": result.ModifiedCount,
	}).Debug("expire help requests")

	return result.ModifiedCount, nil
}
