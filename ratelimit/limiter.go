// Package ratelimit throttles user submissions with a Redis fixed window
// counter (INCR + EXPIRE).
package ratelimit

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "ratelimit")
}

// Rule defines a rate limiting policy: the Redis key prefix, maximum number of
// requests allowed in the window, and the window duration.
type Rule struct {
	Key    string
	Limit  int
	Window time.Duration
}

var (
	// RuleCreateRequest allows 10 new help requests per hour per user.
	RuleCreateRequest = Rule{Key: "rl:request:", Limit: 10, Window: time.Hour}

	// RuleCreateOffer allows 20 new help offers per hour per user.
	RuleCreateOffer = Rule{Key: "rl:offer:", Limit: 20, Window: time.Hour}
)

// RateLimiter reports whether an identifier may act once more under rule
type RateLimiter interface {
	Allow(ctx context.Context, identifier string, rule Rule) (bool, error)
}

// Limiter performs rate limiting checks against Redis.
type Limiter struct {
	client redis.Cmdable
}

func NewLimiter(client redis.Cmdable) *Limiter {
	return &Limiter{client: client}
}

// Allow increments the counter of the identifier and sets the expiry on
// first access. Redis errors fail open: the call is allowed and the error
// returned for logging.
func (l *Limiter) Allow(ctx context.Context, identifier string, rule Rule) (bool, error) {
	key := rule.Key + identifier

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		log.WithFields(logrus.Fields{
			"key":   key,
			"error": err,
		}).Warn("redis INCR failed, allow")
		return true, err
	}

	if count == 1 {
		if err := l.client.Expire(ctx, key, rule.Window).Err(); err != nil {
			log.WithFields(logrus.Fields{
				"key":   key,
				"error": err,
			}).Warn("redis EXPIRE failed, allow")
			// a key without TTL would block the identifier forever
			l.client.Del(ctx, key)
			return true, err
		}
	}

	return int(count) <= rule.Limit, nil
}

// Unlimited never throttles. It stands in when no Redis is configured.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string, Rule) (bool, error) {
	return true, nil
}
