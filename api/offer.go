package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aidconnect/aid-connect-api/geo"
	"github.com/aidconnect/aid-connect-api/ratelimit"
	"github.com/aidconnect/aid-connect-api/schema"
)

// createOffer publishes an offer of help. It becomes a match candidate for
// requests created afterwards.
func (s *Server) createOffer(c *gin.Context) {
	user, ok := requestUser(c)
	if !ok {
		return
	}

	var params struct {
		Title        string                   `json:"title" binding:"required"`
		Description  string                   `json:"description" binding:"required"`
		Category     schema.Category          `json:"category" binding:"required"`
		Skills       []string                 `json:"skills"`
		Availability schema.OfferAvailability `json:"availability"`
		Location     *schema.Location         `json:"location"`
		MaxDistance  int                      `json:"max_distance"`
		Capacity     int                      `json:"capacity"`
	}

	if err := c.ShouldBindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !params.Category.Valid() || params.MaxDistance < 0 || params.Capacity < 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	// a missing location would otherwise decode to (0, 0)
	if params.Location == nil || !params.Location.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocation)
		return
	}

	if !s.withinLimit(c, user.UserID, ratelimit.RuleCreateOffer) {
		return
	}

	if params.MaxDistance == 0 {
		params.MaxDistance = schema.DefaultOfferRadius
	}
	if params.Capacity == 0 {
		params.Capacity = schema.DefaultCapacity
	}
	if params.Skills == nil {
		params.Skills = []string{}
	}
	if params.Availability.DaysOfWeek == nil {
		params.Availability.DaysOfWeek = []int{}
	}

	location := geo.FillAddress(c.Request.Context(), s.resolver, *params.Location)
	if location.FuzzyRadius == 0 {
		location.FuzzyRadius = schema.DefaultFuzzyRadius
	}

	offer := schema.HelpOffer{
		OfferID:        uuid.New().String(),
		UserID:         user.UserID,
		Title:          params.Title,
		Description:    params.Description,
		Category:       params.Category,
		Skills:         params.Skills,
		Availability:   params.Availability,
		Location:       location,
		MaxDistance:    params.MaxDistance,
		Capacity:       params.Capacity,
		CurrentMatches: 0,
		Status:         schema.OfferActive,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.mongoStore.CreateOffer(c.Request.Context(), offer); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, offer)
}

func (s *Server) listOffers(c *gin.Context) {
	var params struct {
		Category string `form:"category"`
		Limit    int64  `form:"limit"`
	}

	if err := c.ShouldBindQuery(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	category := schema.Category(strings.TrimSpace(params.Category))
	if category != "" && !category.Valid() {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	offers, err := s.mongoStore.ListOffers(c.Request.Context(), category, listLimit(params.Limit))
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, offers)
}
