package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aidconnect/aid-connect-api/ai"
	"github.com/aidconnect/aid-connect-api/geo"
	"github.com/aidconnect/aid-connect-api/match"
	"github.com/aidconnect/aid-connect-api/ratelimit"
	"github.com/aidconnect/aid-connect-api/schema"
	"github.com/aidconnect/aid-connect-api/store"
)

const (
	defaultSearchRadius = schema.DefaultSearchDistance
	maxListLimit        = 100
)

func requestUser(c *gin.Context) (*schema.User, bool) {
	user, ok := c.MustGet("user").(*schema.User)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	}
	return user, ok
}

// withinLimit is to throttle submissions of a user, it writes the response
// when the user is over the limit
func (s *Server) withinLimit(c *gin.Context, userID string, rule ratelimit.Rule) bool {
	allowed, err := s.limiter.Allow(c.Request.Context(), userID, rule)
	if err != nil {
		log.WithField("user_id", userID).WithError(err).Warn("rate limiter unavailable")
	}

	if !allowed {
		abortWithEncoding(c, http.StatusTooManyRequests, errorTooManyRequests)
		return false
	}
	return true
}

// createHelpRequest admits a new help request. The content is moderated,
// classified and matched against the active offers before it is stored.
func (s *Server) createHelpRequest(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var params struct {
		Title       string           `json:"title" binding:"required"`
		Description string           `json:"description" binding:"required"`
		Category    schema.Category  `json:"category"`
		Location    *schema.Location `json:"location"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Category != "" && !params.Category.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	// a missing location would otherwise decode to (0, 0)
	if params.Location == nil || !params.Location.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocation)
		return
	}

	if !s.withinLimit(c, user.UserID, ratelimit.RuleCreateRequest) {
		return
	}

	ctx := c.Request.Context()

	moderation := ai.ModerateOrApprove(ctx, s.moderator, params.Title+" "+params.Description)
	if !moderation.Approved {
		reason := moderation.Reasoning
		if reason == "" {
			reason = "Content moderation failed"
		}
		abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
			Code:    errorRequestRejected.Code,
			Message: "Request rejected: " + reason,
		})
		return
	}

	classification := ai.ClassifyOrDefault(ctx, s.classifier, params.Title, params.Description, params.Category)

	location := geo.FillAddress(ctx, s.resolver, *params.Location)
	if location.FuzzyRadius == 0 {
		location.FuzzyRadius = schema.DefaultFuzzyRadius
	}

	now := time.Now().UTC()
	expiresAt := now.Add(schema.DefaultRequestTTL)
	request := schema.HelpRequest{
		RequestID:    uuid.New().String(),
		UserID:       user.UserID,
		Title:        params.Title,
		Description:  params.Description,
		Category:     classification.Category,
		UrgencyScore: classification.UrgencyScore,
		Priority:     classification.Priority,
		Status:       schema.RequestOpen,
		Location:     location,
		Media: schema.RequestMedia{
			Images: []string{},
		},
		Matching: schema.RequestMatching{
			Respondents: []string{},
			AIMatches:   []schema.MatchCandidate{},
		},
		EstimatedResponseTime: classification.EstimatedResponseTime,
		CreatedAt:             now,
		ExpiresAt:             &expiresAt,
		UpdatedAt:             now,
	}

	// a request is admitted even when no match could be computed
	matches, err := s.matcher.FindMatches(ctx, request, match.DefaultLimit)
	if err != nil {
		log.WithField("request_id", request.RequestID).WithError(err).Error("find initial matches")
	} else {
		request.Matching.AIMatches = matches
	}

	if err := s.mongoStore.CreateHelpRequest(ctx, request); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

func (s *Server) listHelpRequests(c *gin.Context) {
	var params struct {
		Category  string   `form:"category"`
		Status    string   `form:"status"`
		Latitude  *float64 `form:"latitude"`
		Longitude *float64 `form:"longitude"`
		Radius    int      `form:"radius"`
		Limit     int64    `form:"limit"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	filter := store.RequestFilter{
		Category: schema.Category(strings.TrimSpace(params.Category)),
		Radius:   params.Radius,
		Limit:    listLimit(params.Limit),
	}

	if filter.Category != "" && !filter.Category.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Status != "" {
		status := schema.RequestStatus(params.Status)
		if !status.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		filter.Statuses = []schema.RequestStatus{status}
	}

	if params.Latitude != nil && params.Longitude != nil {
		near := schema.Location{Latitude: *params.Latitude, Longitude: *params.Longitude}
		if !near.Valid() {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocation)
			return
		}
		filter.Near = &near
	} else {
		filter.Near = headerLocation(c)
	}

	if filter.Near != nil && filter.Radius <= 0 {
		filter.Radius = defaultSearchRadius
	}

	requests, err := s.mongoStore.ListHelpRequests(c.Request.Context(), filter)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (s *Server) getHelpRequest(c *gin.Context) {
	request, err := s.mongoStore.GetHelpRequest(c.Request.Context(), c.Param("requestID"))
	if err == store.ErrRequestNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, request)
}

// refreshMatches runs the matching engine again for a stored request and
// replaces its matches. Only the requester may do so.
func (s *Server) refreshMatches(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var params struct {
		Limit int `form:"limit"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	if params.Limit == 0 {
		params.Limit = match.DefaultLimit
	}
	if params.Limit < 0 || params.Limit > maxListLimit {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	ctx := c.Request.Context()

	request, err := s.mongoStore.GetHelpRequest(ctx, c.Param("requestID"))
	if err == store.ErrRequestNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	if request.UserID != user.UserID {
		abortWithEncoding(c, http.StatusForbidden, errorNotRequestOwner)
		return
	}

	matches, err := s.matcher.FindMatches(ctx, *request, params.Limit)
	if shouldInterupt(err, c) {
		return
	}

	if err := s.mongoStore.UpdateHelpMatches(ctx, request.RequestID, matches); err != nil {
		if err == store.ErrRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorRequestNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"request_id": request.RequestID,
		"matches":    matches,
	})
}

func listLimit(limit int64) int64 {
	if limit <= 0 {
		return store.DefaultListLimit
	}
	if limit > maxListLimit {
		return maxListLimit
	}
	return limit
}
