package schema

import (
	"time"
)

const (
	RequestCollection = "requests"
	OfferCollection   = "offers"

	DefaultRequestTTL  = 7 * 24 * time.Hour
	DefaultOfferRadius = 5000
	DefaultCapacity    = 1
)

type Category string

const (
	CategoryMedical   Category = "medical"
	CategoryFood      Category = "food"
	CategoryShelter   Category = "shelter"
	CategoryTransport Category = "transport"
	CategorySafety    Category = "safety"
	CategoryEducation Category = "education"
	CategoryElderCare Category = "elder_care"
	CategoryChildCare Category = "child_care"
	CategoryPetCare   Category = "pet_care"
	CategoryOther     Category = "other"
)

var Categories = []Category{
	CategoryMedical,
	CategoryFood,
	CategoryShelter,
	CategoryTransport,
	CategorySafety,
	CategoryEducation,
	CategoryElderCare,
	CategoryChildCare,
	CategoryPetCare,
	CategoryOther,
}

func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Priority string

const (
	PriorityLow       Priority = "low"
	PriorityMedium    Priority = "medium"
	PriorityHigh      Priority = "high"
	PriorityEmergency Priority = "emergency"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityEmergency:
		return true
	}
	return false
}

type RequestStatus string

const (
	RequestOpen      RequestStatus = "open"
	RequestMatched   RequestStatus = "matched"
	RequestFulfilled RequestStatus = "fulfilled"
	RequestExpired   RequestStatus = "expired"
	RequestCancelled RequestStatus = "cancelled"
)

func (s RequestStatus) Valid() bool {
	switch s {
	case RequestOpen, RequestMatched, RequestFulfilled, RequestExpired, RequestCancelled:
		return true
	}
	return false
}

type OfferStatus string

const (
	OfferActive   OfferStatus = "active"
	OfferPaused   OfferStatus = "paused"
	OfferFull     OfferStatus = "full"
	OfferInactive OfferStatus = "inactive"
)

// MatchCandidate is an offer ranked against a single request. It is embedded
// into the request and never stored on its own.
type MatchCandidate struct {
	OfferID      string  `json:"offer_id" bson:"offer_id"`
	UserID       string  `json:"user_id" bson:"user_id"`
	Title        string  `json:"title" bson:"title"`
	Distance     int     `json:"distance" bson:"distance"`
	MatchScore   float64 `json:"match_score" bson:"match_score"`
	HelperRating float64 `json:"helper_rating" bson:"helper_rating"`
}

type RequestMedia struct {
	Images       []string `json:"images" bson:"images"`
	VoiceNoteURL string   `json:"voice_note_url,omitempty" bson:"voice_note_url,omitempty"`
}

type RequestMatching struct {
	Respondents []string         `json:"respondents" bson:"respondents"`
	MatchedWith string           `json:"matched_with,omitempty" bson:"matched_with,omitempty"`
	AIMatches   []MatchCandidate `json:"ai_matches" bson:"ai_matches"`
}

type HelpRequest struct {
	RequestID             string          `json:"request_id" bson:"request_id"`
	UserID                string          `json:"user_id" bson:"user_id"`
	Title                 string          `json:"title" bson:"title"`
	Description           string          `json:"description" bson:"description"`
	Category              Category        `json:"category" bson:"category"`
	UrgencyScore          float64         `json:"urgency_score" bson:"urgency_score"`
	Priority              Priority        `json:"priority" bson:"priority"`
	Status                RequestStatus   `json:"status" bson:"status"`
	Location              Location        `json:"location" bson:"location"`
	Media                 RequestMedia    `json:"media" bson:"media"`
	Matching              RequestMatching `json:"matching" bson:"matching"`
	EstimatedResponseTime string          `json:"estimated_response_time,omitempty" bson:"estimated_response_time,omitempty"`
	CreatedAt             time.Time       `json:"created_at" bson:"created_at"`
	ExpiresAt             *time.Time      `json:"expires_at,omitempty" bson:"expires_at,omitempty"`
	UpdatedAt             time.Time       `json:"updated_at" bson:"updated_at"`
}

type OfferAvailability struct {
	StartTime time.Time `json:"start_time" bson:"start_time"`
	EndTime   time.Time `json:"end_time" bson:"end_time"`
	Recurring bool      `json:"recurring" bson:"recurring"`
	// 0 is Monday, 6 is Sunday
	DaysOfWeek []int `json:"days_of_week" bson:"days_of_week"`
}

type HelpOffer struct {
	OfferID        string            `json:"offer_id" bson:"offer_id"`
	UserID         string            `json:"user_id" bson:"user_id"`
	Title          string            `json:"title" bson:"title"`
	Description    string            `json:"description" bson:"description"`
	Category       Category          `json:"category" bson:"category"`
	Skills         []string          `json:"skills" bson:"skills"`
	Availability   OfferAvailability `json:"availability" bson:"availability"`
	Location       Location          `json:"location" bson:"location"`
	MaxDistance    int               `json:"max_distance" bson:"max_distance"`
	Capacity       int               `json:"capacity" bson:"capacity"`
	CurrentMatches int               `json:"current_matches" bson:"current_matches"`
	Status         OfferStatus       `json:"status" bson:"status"`
	CreatedAt      time.Time         `json:"created_at" bson:"created_at"`
}

// EffectiveCapacity is the capacity of the offer, DefaultCapacity when the
// document carries none
func (o HelpOffer) EffectiveCapacity() int {
	if o.Capacity <= 0 {
		return DefaultCapacity
	}
	return o.Capacity
}

// Available tells whether the offer may still be handed out as a candidate
func (o HelpOffer) Available() bool {
	return o.Status == OfferActive && o.CurrentMatches < o.EffectiveCapacity()
}
