// Package ai holds the contracts of the external classifier and moderator
// and the defaults used whenever they cannot answer.
package ai

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aidconnect/aid-connect-api/metrics"
	"github.com/aidconnect/aid-connect-api/schema"
)

const (
	DefaultUrgencyScore  = 3.0
	DefaultResponseTime  = "within 4 hours"
	DefaultClassifyNote  = "AI classification unavailable, using default values"
	DefaultModerateNote  = "Moderation unavailable, allowing content"
	DefaultModConfidence = 0.5

	minUrgencyScore = 1.0
	maxUrgencyScore = 10.0

	serviceClassifier = "classifier"
	serviceModerator  = "moderator"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "ai")
}

// Classification is the urgency assessment of a help request
type Classification struct {
	UrgencyScore          float64         `json:"urgency_score"`
	Category              schema.Category `json:"category"`
	Priority              schema.Priority `json:"priority"`
	EstimatedResponseTime string          `json:"estimated_response_time"`
	Reasoning             string          `json:"reasoning"`
}

type ModerationResult struct {
	Approved   bool     `json:"approved"`
	Confidence float64  `json:"confidence"`
	Flags      []string `json:"flags"`
	Reasoning  string   `json:"reasoning"`
}

// Classifier rates the urgency of a request and suggests its category.
// categoryHint is empty when the requester did not pick one.
type Classifier interface {
	Classify(ctx context.Context, title, description string, categoryHint schema.Category) (*Classification, error)
}

// Moderator decides whether user content may be published
type Moderator interface {
	Moderate(ctx context.Context, content string) (*ModerationResult, error)
}

// DefaultClassification is what a request gets when no classifier answered
func DefaultClassification(categoryHint schema.Category) Classification {
	category := categoryHint
	if !category.Valid() {
		category = schema.CategoryOther
	}

	return Classification{
		UrgencyScore:          DefaultUrgencyScore,
		Category:              category,
		Priority:              schema.PriorityMedium,
		EstimatedResponseTime: DefaultResponseTime,
		Reasoning:             DefaultClassifyNote,
	}
}

// ClassifyOrDefault never fails. A missing classifier or a failing call
// yields DefaultClassification, and values outside of the known enumerations
// are replaced field by field.
func ClassifyOrDefault(ctx context.Context, c Classifier, title, description string, categoryHint schema.Category) Classification {
	fallback := DefaultClassification(categoryHint)
	if c == nil {
		metrics.AIFallbacks.WithLabelValues(serviceClassifier).Inc()
		return fallback
	}

	result, err := c.Classify(ctx, title, description, categoryHint)
	if err != nil || result == nil {
		log.WithError(err).Warn("classify request, use default classification")
		metrics.AIFallbacks.WithLabelValues(serviceClassifier).Inc()
		return fallback
	}

	classification := *result
	if !classification.Category.Valid() {
		classification.Category = fallback.Category
	}
	if !classification.Priority.Valid() {
		classification.Priority = fallback.Priority
	}
	if classification.EstimatedResponseTime == "" {
		classification.EstimatedResponseTime = fallback.EstimatedResponseTime
	}

	switch {
	case classification.UrgencyScore <= 0:
		classification.UrgencyScore = fallback.UrgencyScore
	case classification.UrgencyScore < minUrgencyScore:
		classification.UrgencyScore = minUrgencyScore
	case classification.UrgencyScore > maxUrgencyScore:
		classification.UrgencyScore = maxUrgencyScore
	}

	return classification
}

// ModerateOrApprove approves the content when the moderator is missing or
// fails
func ModerateOrApprove(ctx context.Context, m Moderator, content string) ModerationResult {
	approved := ModerationResult{
		Approved:   true,
		Confidence: DefaultModConfidence,
		Flags:      []string{},
		Reasoning:  DefaultModerateNote,
	}
	if m == nil {
		metrics.AIFallbacks.WithLabelValues(serviceModerator).Inc()
		return approved
	}

	result, err := m.Moderate(ctx, content)
	if err != nil || result == nil {
		log.WithError(err).Warn("moderate content, approve by default")
		metrics.AIFallbacks.WithLabelValues(serviceModerator).Inc()
		return approved
	}

	if result.Flags == nil {
		result.Flags = []string{}
	}

	return *result
}
