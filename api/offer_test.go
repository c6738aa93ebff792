package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/golang/mock/gomock"

	"github.com/aidconnect/aid-connect-api/ratelimit"
	"github.com/aidconnect/aid-connect-api/schema"
)

func offerBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Weekend grocery runs",
		"description": "I drive to the market every Saturday",
		"category":    "food",
		"skills":      []string{"driving"},
		"availability": map[string]interface{}{
			"start_time":   "2024-03-02T09:00:00Z",
			"end_time":     "2024-03-02T12:00:00Z",
			"recurring":    true,
			"days_of_week": []int{5},
		},
		"location": map[string]interface{}{
			"latitude":  40.7228,
			"longitude": -74.0060,
			"address":   "Tribeca",
		},
	}
}

func (s *ServerTestSuite) TestCreateOffer() {
	token := s.authorized()

	s.limiterMock.EXPECT().Allow(gomock.Any(), testRequester, ratelimit.RuleCreateOffer).Return(true, nil)

	var stored schema.HelpOffer
	s.storeMock.EXPECT().CreateOffer(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, offer schema.HelpOffer) error {
			stored = offer
			return nil
		})

	w := s.do("POST", "/api/offers", offerBody(), token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp schema.HelpOffer
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	s.Equal(stored.OfferID, resp.OfferID)
	s.Equal(testRequester, resp.UserID)
	s.Equal(schema.CategoryFood, resp.Category)
	s.Equal(schema.OfferActive, resp.Status)
	s.Equal(5000, resp.MaxDistance)
	s.Equal(1, resp.Capacity)
	s.Equal(0, resp.CurrentMatches)
	s.Equal([]string{"driving"}, resp.Skills)
	s.Equal([]int{5}, resp.Availability.DaysOfWeek)
	s.True(resp.Availability.Recurring)
	s.True(stored.Available())
}

func (s *ServerTestSuite) TestCreateOfferInvalid() {
	body := offerBody()
	body["category"] = "plumbing"

	w := s.do("POST", "/api/offers", body, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1010), s.errorCode(w).Code)

	body = offerBody()
	body["max_distance"] = -10

	w = s.do("POST", "/api/offers", body, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)

	body = offerBody()
	delete(body, "location")

	w = s.do("POST", "/api/offers", body, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1012), s.errorCode(w).Code)

	body = offerBody()
	body["location"] = nil

	w = s.do("POST", "/api/offers", body, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1012), s.errorCode(w).Code)

	body = offerBody()
	delete(body, "category")

	w = s.do("POST", "/api/offers", body, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1011), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestListOffers() {
	offers := []schema.HelpOffer{{OfferID: "offer-1", Category: schema.CategoryFood, Status: schema.OfferActive}}

	s.storeMock.EXPECT().ListOffers(gomock.Any(), schema.CategoryFood, int64(20)).Return(offers, nil)

	w := s.do("GET", "/api/offers?category=food", nil, s.authorized())
	s.Require().Equal(http.StatusOK, w.Code)

	var resp []schema.HelpOffer
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp, 1)

	s.storeMock.EXPECT().ListOffers(gomock.Any(), schema.Category(""), int64(5)).Return([]schema.HelpOffer{}, nil)

	w = s.do("GET", "/api/offers?limit=5", nil, s.authorized())
	s.Equal(http.StatusOK, w.Code)

	w = s.do("GET", "/api/offers?category=plumbing", nil, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
}
