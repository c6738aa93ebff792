package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/backends/result"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"

	"github.com/aidconnect/aid-connect-api/background"
)

// TaskEnqueuer queues background tasks, *machinery.Server is one
type TaskEnqueuer interface {
	SendTask(signature *tasks.Signature) (*result.AsyncResult, error)
}

func (s *Server) enqueue(c *gin.Context, signature *tasks.Signature) {
	if s.background == nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorInternalServer)
		return
	}

	if _, err := s.background.SendTask(signature); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// adminExpireRequests is an internal only api to trigger the task to
// expire the outdated help requests
func (s *Server) adminExpireRequests(c *gin.Context) {
	s.enqueue(c, background.ExpireSignature())
}

// adminRefreshMatches is an internal only api to recompute the matches of a
// request in the background
func (s *Server) adminRefreshMatches(c *gin.Context) {
	s.enqueue(c, background.RefreshSignature(c.Param("requestID")))
}
