package api

import (
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"

	"github.com/aidconnect/aid-connect-api/background"
)

type recordingEnqueuer struct {
	sent []*tasks.Signature
	err  error
}

func (r *recordingEnqueuer) SendTask(signature *tasks.Signature) (*result.AsyncResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.sent = append(r.sent, signature)
	return nil, nil
}

func (s *ServerTestSuite) admin(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, nil)
	req.Header.Set("Api-Token", testAdminKey)

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *ServerTestSuite) TestAdminRequiresAPIKey() {
	w := s.do("POST", "/api/admin/expire-requests", nil, "")
	s.Equal(http.StatusForbidden, w.Code)
	s.Empty(s.enqueuer.sent)
}

func (s *ServerTestSuite) TestAdminExpireRequests() {
	w := s.admin("/api/admin/expire-requests")
	s.Equal(http.StatusOK, w.Code)

	s.Require().Len(s.enqueuer.sent, 1)
	s.Equal(background.TaskExpireHelpRequests, s.enqueuer.sent[0].Name)
}

func (s *ServerTestSuite) TestAdminRefreshMatches() {
	w := s.admin("/api/admin/requests/request-1/refresh")
	s.Equal(http.StatusOK, w.Code)

	s.Require().Len(s.enqueuer.sent, 1)
	s.Equal(background.TaskRefreshRequestMatches, s.enqueuer.sent[0].Name)
	s.Equal("request-1", s.enqueuer.sent[0].Args[0].Value)
}

func (s *ServerTestSuite) TestAdminEnqueueFailure() {
	s.enqueuer.err = errors.New("redis unavailable")

	w := s.admin("/api/admin/expire-requests")
	s.Equal(http.StatusInternalServerError, w.Code)
	s.Equal(int64(999), s.errorCode(w).Code)
}
