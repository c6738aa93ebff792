package schema

import (
	"time"
)

const (
	UserCollection = "users"

	DefaultFuzzyRadius     = 100
	DefaultSearchDistance  = 5000
	DefaultCommunityRating = 5.0
	DefaultTrustScore      = 1.0

	maxLatitude  = 90.0
	maxLongitude = 180.0
)

// Location is a WGS84 coordinate attached to users, requests and offers.
// FuzzyRadius is only used to blur the position on display.
type Location struct {
	Latitude    float64 `json:"latitude" bson:"latitude"`
	Longitude   float64 `json:"longitude" bson:"longitude"`
	Address     string  `json:"address" bson:"address"`
	FuzzyRadius int     `json:"fuzzy_radius" bson:"fuzzy_radius"`
}

// Valid reports whether the coordinate is inside the WGS84 range
func (l Location) Valid() bool {
	return l.Latitude >= -maxLatitude && l.Latitude <= maxLatitude &&
		l.Longitude >= -maxLongitude && l.Longitude <= maxLongitude
}

type UserProfile struct {
	Name      string   `json:"name" bson:"name"`
	AvatarURL string   `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	Location  Location `json:"location" bson:"location"`
	Bio       string   `json:"bio,omitempty" bson:"bio,omitempty"`
}

type UserPreferences struct {
	MaxDistance          int      `json:"max_distance" bson:"max_distance"`
	Categories           []string `json:"categories" bson:"categories"`
	NotificationsEnabled bool     `json:"notifications_enabled" bson:"notifications_enabled"`
}

type UserStats struct {
	RequestsMade    int     `json:"requests_made" bson:"requests_made"`
	OffersMade      int     `json:"offers_made" bson:"offers_made"`
	HelpProvided    int     `json:"help_provided" bson:"help_provided"`
	CommunityRating float64 `json:"community_rating" bson:"community_rating"`
	TotalRatings    int     `json:"total_ratings" bson:"total_ratings"`
}

type UserVerification struct {
	PhoneVerified bool    `json:"phone_verified" bson:"phone_verified"`
	EmailVerified bool    `json:"email_verified" bson:"email_verified"`
	IDVerified    bool    `json:"id_verified" bson:"id_verified"`
	TrustScore    float64 `json:"trust_score" bson:"trust_score"`
}

type User struct {
	UserID         string           `json:"user_id" bson:"user_id"`
	Email          string           `json:"email" bson:"email"`
	Phone          string           `json:"phone,omitempty" bson:"phone,omitempty"`
	HashedPassword string           `json:"-" bson:"hashed_password"`
	Profile        UserProfile      `json:"profile" bson:"profile"`
	Preferences    UserPreferences  `json:"preferences" bson:"preferences"`
	Verification   UserVerification `json:"verification" bson:"verification"`
	Stats          UserStats        `json:"stats" bson:"stats"`
	CreatedAt      time.Time        `json:"created_at" bson:"created_at"`
	LastActive     time.Time        `json:"last_active" bson:"last_active"`
	IsActive       bool             `json:"is_active" bson:"is_active"`
}

// NewUser returns a user with the defaults a fresh signup gets
func NewUser(userID, email, phone, hashedPassword string, profile UserProfile) User {
	now := time.Now().UTC()
	if profile.Location.FuzzyRadius == 0 {
		profile.Location.FuzzyRadius = DefaultFuzzyRadius
	}

	return User{
		UserID:         userID,
		Email:          email,
		Phone:          phone,
		HashedPassword: hashedPassword,
		Profile:        profile,
		Preferences: UserPreferences{
			MaxDistance:          DefaultSearchDistance,
			Categories:           []string{},
			NotificationsEnabled: true,
		},
		Verification: UserVerification{
			TrustScore: DefaultTrustScore,
		},
		Stats: UserStats{
			CommunityRating: DefaultCommunityRating,
		},
		CreatedAt:  now,
		LastActive: now,
		IsActive:   true,
	}
}
