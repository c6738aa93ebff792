package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/aidconnect/aid-connect-api/ai"
	"github.com/aidconnect/aid-connect-api/ratelimit"
	"github.com/aidconnect/aid-connect-api/schema"
	"github.com/aidconnect/aid-connect-api/store"
)

func helpRequestBody(category string) map[string]interface{} {
	body := map[string]interface{}{
		"title":       "Need insulin pickup",
		"description": "Pharmacy closes at 9pm and I cannot walk",
		"location": map[string]interface{}{
			"latitude":  40.7128,
			"longitude": -74.0060,
			"address":   "City Hall",
		},
	}
	if category != "" {
		body["category"] = category
	}
	return body
}

var foundMatches = []schema.MatchCandidate{
	{OfferID: "offer-1", UserID: "helper-1", Title: "Pharmacy runs", Distance: 0, MatchScore: 1.0, HelperRating: 5},
	{OfferID: "offer-2", UserID: "helper-2", Title: "Driver", Distance: 1113, MatchScore: 0.85, HelperRating: 4},
}

func (s *ServerTestSuite) TestCreateHelpRequest() {
	token := s.authorized()

	var stored schema.HelpRequest
	gomock.InOrder(
		s.limiterMock.EXPECT().Allow(gomock.Any(), testRequester, ratelimit.RuleCreateRequest).Return(true, nil),
		s.moderatorMock.EXPECT().
			Moderate(gomock.Any(), "Need insulin pickup Pharmacy closes at 9pm and I cannot walk").
			Return(&ai.ModerationResult{Approved: true, Confidence: 0.9}, nil),
		s.classifierMock.EXPECT().
			Classify(gomock.Any(), "Need insulin pickup", "Pharmacy closes at 9pm and I cannot walk", schema.Category("")).
			Return(&ai.Classification{
				UrgencyScore:          7,
				Category:              schema.CategoryMedical,
				Priority:              schema.PriorityHigh,
				EstimatedResponseTime: "within 1 hour",
			}, nil),
		s.matcherMock.EXPECT().FindMatches(gomock.Any(), gomock.Any(), 10).DoAndReturn(
			func(_ context.Context, request schema.HelpRequest, _ int) ([]schema.MatchCandidate, error) {
				s.Equal(schema.CategoryMedical, request.Category)
				s.Equal(testRequester, request.UserID)
				return foundMatches, nil
			}),
		s.storeMock.EXPECT().CreateHelpRequest(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, request schema.HelpRequest) error {
				stored = request
				return nil
			}),
	)

	w := s.do("POST", "/api/requests", helpRequestBody(""), token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp schema.HelpRequest
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))

	s.Equal(stored.RequestID, resp.RequestID)
	s.NotEmpty(resp.RequestID)
	s.Equal(schema.RequestOpen, resp.Status)
	s.Equal(schema.CategoryMedical, resp.Category)
	s.Equal(7.0, resp.UrgencyScore)
	s.Equal(schema.PriorityHigh, resp.Priority)
	s.Equal("within 1 hour", resp.EstimatedResponseTime)
	s.Equal("City Hall", resp.Location.Address)
	s.Equal(100, resp.Location.FuzzyRadius)
	s.Equal(foundMatches, resp.Matching.AIMatches)
	s.Equal(foundMatches, stored.Matching.AIMatches)

	s.Require().NotNil(resp.ExpiresAt)
	s.WithinDuration(resp.CreatedAt.Add(7*24*time.Hour), *resp.ExpiresAt, time.Second)
}

func (s *ServerTestSuite) TestCreateHelpRequestRejectedByModeration() {
	token := s.authorized()

	s.limiterMock.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.moderatorMock.EXPECT().Moderate(gomock.Any(), gomock.Any()).Return(&ai.ModerationResult{
		Approved:  false,
		Flags:     []string{"spam"},
		Reasoning: "asks for money",
	}, nil)

	w := s.do("POST", "/api/requests", helpRequestBody(""), token)
	s.Equal(http.StatusBadRequest, w.Code)

	resp := s.errorCode(w)
	s.Equal(int64(1201), resp.Code)
	s.Equal("Request rejected: asks for money", resp.Message)
}

func (s *ServerTestSuite) TestCreateHelpRequestWithoutAI() {
	token := s.authorized()

	s.limiterMock.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.moderatorMock.EXPECT().Moderate(gomock.Any(), gomock.Any()).Return(nil, errors.New("unavailable"))
	s.classifierMock.EXPECT().Classify(gomock.Any(), gomock.Any(), gomock.Any(), schema.CategoryFood).
		Return(nil, errors.New("unavailable"))
	s.matcherMock.EXPECT().FindMatches(gomock.Any(), gomock.Any(), 10).DoAndReturn(
		func(_ context.Context, request schema.HelpRequest, _ int) ([]schema.MatchCandidate, error) {
			s.Equal(schema.CategoryFood, request.Category)
			return []schema.MatchCandidate{}, nil
		})
	s.storeMock.EXPECT().CreateHelpRequest(gomock.Any(), gomock.Any()).Return(nil)

	w := s.do("POST", "/api/requests", helpRequestBody("food"), token)
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp schema.HelpRequest
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal(schema.CategoryFood, resp.Category)
	s.Equal(3.0, resp.UrgencyScore)
	s.Equal(schema.PriorityMedium, resp.Priority)
	s.Equal("within 4 hours", resp.EstimatedResponseTime)
	s.Empty(resp.Matching.AIMatches)
}

func (s *ServerTestSuite) TestCreateHelpRequestMatchingFailure() {
	token := s.authorized()

	s.limiterMock.EXPECT().Allow(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
	s.moderatorMock.EXPECT().Moderate(gomock.Any(), gomock.Any()).Return(&ai.ModerationResult{Approved: true}, nil)
	s.classifierMock.EXPECT().Classify(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ai.Classification{UrgencyScore: 4, Category: schema.CategoryFood, Priority: schema.PriorityLow}, nil)
	s.matcherMock.EXPECT().FindMatches(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("server selection timeout"))
	s.storeMock.EXPECT().CreateHelpRequest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, request schema.HelpRequest) error {
			s.NotNil(request.Matching.AIMatches)
			s.Empty(request.Matching.AIMatches)
			return nil
		})

	w := s.do("POST", "/api/requests", helpRequestBody(""), token)
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestCreateHelpRequestRateLimited() {
	token := s.authorized()

	s.limiterMock.EXPECT().Allow(gomock.Any(), testRequester, ratelimit.RuleCreateRequest).Return(false, nil)

	w := s.do("POST", "/api/requests", helpRequestBody(""), token)
	s.Equal(http.StatusTooManyRequests, w.Code)
	s.Equal(int64(1202), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestCreateHelpRequestInvalid() {
	w := s.do("POST", "/api/requests", helpRequestBody("plumbing"), s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1010), s.errorCode(w).Code)

	body := helpRequestBody("")
	body["location"] = map[string]interface{}{"latitude": 12.0, "longitude": 190.0}

	w = s.do("POST", "/api/requests", body, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1012), s.errorCode(w).Code)

	body = helpRequestBody("")
	delete(body, "location")

	w = s.do("POST", "/api/requests", body, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1012), s.errorCode(w).Code)

	body = helpRequestBody("")
	body["location"] = nil

	w = s.do("POST", "/api/requests", body, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1012), s.errorCode(w).Code)

	body = helpRequestBody("")
	delete(body, "title")

	w = s.do("POST", "/api/requests", body, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1011), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestListHelpRequests() {
	requests := []schema.HelpRequest{{RequestID: "request-1", Category: schema.CategoryMedical}}

	s.storeMock.EXPECT().ListHelpRequests(gomock.Any(), store.RequestFilter{
		Category: schema.CategoryMedical,
		Near:     &schema.Location{Latitude: 40.7, Longitude: -74},
		Radius:   1000,
		Limit:    100,
	}).Return(requests, nil)

	w := s.do("GET", "/api/requests?category=medical&latitude=40.7&longitude=-74&radius=1000&limit=500", nil, s.authorized())
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp []schema.HelpRequest
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Len(resp, 1)
	s.Equal("request-1", resp[0].RequestID)
}

func (s *ServerTestSuite) TestListHelpRequestsDefaults() {
	s.storeMock.EXPECT().ListHelpRequests(gomock.Any(), store.RequestFilter{Limit: 20}).Return([]schema.HelpRequest{}, nil)

	w := s.do("GET", "/api/requests", nil, s.authorized())
	s.Equal(http.StatusOK, w.Code)
	s.Equal("[]", w.Body.String())

	s.storeMock.EXPECT().ListHelpRequests(gomock.Any(), store.RequestFilter{
		Statuses: []schema.RequestStatus{schema.RequestFulfilled},
		Near:     &schema.Location{Latitude: 1, Longitude: 2},
		Radius:   5000,
		Limit:    20,
	}).Return([]schema.HelpRequest{}, nil)

	w = s.do("GET", "/api/requests?status=fulfilled&latitude=1&longitude=2", nil, s.authorized())
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestListHelpRequestsInvalidFilter() {
	w := s.do("GET", "/api/requests?status=lost", nil, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)

	w = s.do("GET", "/api/requests?latitude=100&longitude=2", nil, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1012), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestGetHelpRequest() {
	s.storeMock.EXPECT().GetHelpRequest(gomock.Any(), "request-1").Return(&schema.HelpRequest{RequestID: "request-1"}, nil)

	w := s.do("GET", "/api/requests/request-1", nil, s.authorized())
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"request_id":"request-1"`)

	s.storeMock.EXPECT().GetHelpRequest(gomock.Any(), "missing").Return(nil, store.ErrRequestNotFound)

	w = s.do("GET", "/api/requests/missing", nil, s.authorized())
	s.Equal(http.StatusNotFound, w.Code)
	s.Equal(int64(1200), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestRefreshMatches() {
	request := &schema.HelpRequest{RequestID: "request-1", UserID: testRequester, Category: schema.CategoryFood}

	s.storeMock.EXPECT().GetHelpRequest(gomock.Any(), "request-1").Return(request, nil)
	s.matcherMock.EXPECT().FindMatches(gomock.Any(), *request, 3).Return(foundMatches, nil)
	s.storeMock.EXPECT().UpdateHelpMatches(gomock.Any(), "request-1", foundMatches).Return(nil)

	w := s.do("POST", "/api/requests/request-1/matches?limit=3", nil, s.authorized())
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		RequestID string                  `json:"request_id"`
		Matches   []schema.MatchCandidate `json:"matches"`
	}
	s.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.Equal("request-1", resp.RequestID)
	s.Equal(foundMatches, resp.Matches)
}

func (s *ServerTestSuite) TestRefreshMatchesDefaultLimit() {
	request := &schema.HelpRequest{RequestID: "request-1", UserID: testRequester}

	s.storeMock.EXPECT().GetHelpRequest(gomock.Any(), "request-1").Return(request, nil)
	s.matcherMock.EXPECT().FindMatches(gomock.Any(), gomock.Any(), 10).Return([]schema.MatchCandidate{}, nil)
	s.storeMock.EXPECT().UpdateHelpMatches(gomock.Any(), "request-1", []schema.MatchCandidate{}).Return(nil)

	w := s.do("POST", "/api/requests/request-1/matches", nil, s.authorized())
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestRefreshMatchesErrors() {
	w := s.do("POST", "/api/requests/request-1/matches?limit=-1", nil, s.authorized())
	s.Equal(http.StatusBadRequest, w.Code)

	s.storeMock.EXPECT().GetHelpRequest(gomock.Any(), "request-2").
		Return(&schema.HelpRequest{RequestID: "request-2", UserID: "someone-else"}, nil)

	w = s.do("POST", "/api/requests/request-2/matches", nil, s.authorized())
	s.Equal(http.StatusForbidden, w.Code)
	s.Equal(int64(1203), s.errorCode(w).Code)

	s.storeMock.EXPECT().GetHelpRequest(gomock.Any(), "request-3").
		Return(&schema.HelpRequest{RequestID: "request-3", UserID: testRequester}, nil)
	s.matcherMock.EXPECT().FindMatches(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	w = s.do("POST", "/api/requests/request-3/matches", nil, s.authorized())
	s.Equal(http.StatusInternalServerError, w.Code)
}
