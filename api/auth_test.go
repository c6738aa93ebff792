package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/golang/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/aidconnect/aid-connect-api/schema"
	"github.com/aidconnect/aid-connect-api/store"
)

func registerBody() map[string]interface{} {
	return map[string]interface{}{
		"email":    "new@example.com",
		"password": "s3cret",
		"profile": map[string]interface{}{
			"name": "Newcomer",
			"location": map[string]interface{}{
				"latitude":  40.7306,
				"longitude": -73.9352,
				"address":   "Williamsburg",
			},
		},
	}
}

func (s *ServerTestSuite) TestRegisterAndMe() {
	var created schema.User

	s.storeMock.EXPECT().GetUserByEmail(gomock.Any(), "new@example.com").Return(nil, store.ErrUserNotFound)
	s.storeMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, user schema.User) error {
			created = user
			return nil
		})

	w := s.do("POST", "/api/auth/register", registerBody(), "")
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var token tokenResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &token))
	s.Equal("bearer", token.TokenType)
	s.Equal(created.UserID, token.UserID)
	s.NotEmpty(token.AccessToken)

	s.Equal("new@example.com", created.Email)
	s.Equal(5.0, created.Stats.CommunityRating)
	s.Equal(5000, created.Preferences.MaxDistance)
	s.Equal(100, created.Profile.Location.FuzzyRadius)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(created.HashedPassword), []byte("s3cret")))

	s.storeMock.EXPECT().GetUser(gomock.Any(), created.UserID).Return(&created, nil)

	w = s.do("GET", "/api/auth/me", nil, token.AccessToken)
	s.Require().Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"email":"new@example.com"`)
	s.NotContains(w.Body.String(), "hashed_password")
	s.NotContains(w.Body.String(), created.HashedPassword)
}

func (s *ServerTestSuite) TestRegisterEmailTaken() {
	s.storeMock.EXPECT().GetUserByEmail(gomock.Any(), "new@example.com").Return(&s.requester, nil)

	w := s.do("POST", "/api/auth/register", registerBody(), "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1100), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestRegisterRaceOnEmail() {
	s.storeMock.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(nil, store.ErrUserNotFound)
	s.storeMock.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(store.ErrEmailTaken)

	w := s.do("POST", "/api/auth/register", registerBody(), "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1100), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestRegisterInvalidParameters() {
	body := registerBody()
	body["profile"].(map[string]interface{})["location"] = map[string]interface{}{
		"latitude":  123.0,
		"longitude": 0.0,
	}

	w := s.do("POST", "/api/auth/register", body, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1012), s.errorCode(w).Code)

	body = registerBody()
	delete(body, "password")

	w = s.do("POST", "/api/auth/register", body, "")
	s.Equal(http.StatusBadRequest, w.Code)
	s.Equal(int64(1011), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestLogin() {
	s.storeMock.EXPECT().GetUserByEmail(gomock.Any(), "requester@example.com").Return(&s.requester, nil)
	s.storeMock.EXPECT().TouchUser(gomock.Any(), testRequester, gomock.Any()).Return(nil)

	w := s.do("POST", "/api/auth/login", map[string]string{
		"email":    "requester@example.com",
		"password": testPassword,
	}, "")
	s.Require().Equal(http.StatusOK, w.Code)

	var token tokenResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &token))
	s.Equal(testRequester, token.UserID)

	claims := &jwt.StandardClaims{}
	_, err := jwt.ParseWithClaims(token.AccessToken, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	s.NoError(err)
	s.Equal(testRequester, claims.Subject)
	s.InDelta(time.Now().Add(30*time.Minute).Unix(), claims.ExpiresAt, 5)
}

func (s *ServerTestSuite) TestLoginTouchFailureIsIgnored() {
	s.storeMock.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&s.requester, nil)
	s.storeMock.EXPECT().TouchUser(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("write conflict"))

	w := s.do("POST", "/api/auth/login", map[string]string{
		"email":    "requester@example.com",
		"password": testPassword,
	}, "")
	s.Equal(http.StatusOK, w.Code)
}

func (s *ServerTestSuite) TestLoginInvalidCredentials() {
	s.storeMock.EXPECT().GetUserByEmail(gomock.Any(), "requester@example.com").Return(&s.requester, nil)

	w := s.do("POST", "/api/auth/login", map[string]string{
		"email":    "requester@example.com",
		"password": "wrong",
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1102), s.errorCode(w).Code)

	s.storeMock.EXPECT().GetUserByEmail(gomock.Any(), "nobody@example.com").Return(nil, store.ErrUserNotFound)

	w = s.do("POST", "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever",
	}, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1102), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestAuthMiddlewareRejectsMissingToken() {
	w := s.do("GET", "/api/auth/me", nil, "")
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1001), s.errorCode(w).Code)
}

func (s *ServerTestSuite) TestAuthMiddlewareRejectsBadTokens() {
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   testRequester,
		ExpiresAt: time.Now().Add(-time.Minute).Unix(),
	})
	expiredToken, err := expired.SignedString([]byte(testJWTSecret))
	s.Require().NoError(err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.StandardClaims{
		Subject:   testRequester,
		ExpiresAt: time.Now().Add(time.Minute).Unix(),
	})
	forgedToken, err := forged.SignedString([]byte("another-secret"))
	s.Require().NoError(err)

	for _, token := range []string{"not-a-jwt", expiredToken, forgedToken} {
		w := s.do("GET", "/api/auth/me", nil, token)
		s.Equal(http.StatusUnauthorized, w.Code)
		s.Equal(int64(1003), s.errorCode(w).Code)
	}
}

func (s *ServerTestSuite) TestRecognizeUserUnknown() {
	token, err := s.server.issueToken("ghost")
	s.Require().NoError(err)

	s.storeMock.EXPECT().GetUser(gomock.Any(), "ghost").Return(nil, store.ErrUserNotFound)

	w := s.do("GET", "/api/auth/me", nil, token.AccessToken)
	s.Equal(http.StatusUnauthorized, w.Code)
	s.Equal(int64(1101), s.errorCode(w).Code)
}
