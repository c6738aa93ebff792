package background

import (
	"errors"

	"github.com/RichardKnop/machinery/v1"
	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/sirupsen/logrus"

	"github.com/aidconnect/aid-connect-api/match"
	"github.com/aidconnect/aid-connect-api/store"
)

const (
	TaskExpireHelpRequests    = "expire_help_requests"
	TaskRefreshRequestMatches = "refresh_request_matches"

	DefaultQueue = "aidconnect_background"

	workerName        = "aidconnect-worker"
	workerConcurrency = 5
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "background")
}

// BackgroundManager runs the maintenance jobs of help requests
type BackgroundManager struct {
	store   store.Help
	matcher match.Matcher

	taskServer *machinery.Server

	worker *machinery.Worker
}

func New(helpStore store.Help, matcher match.Matcher, taskServer *machinery.Server) *BackgroundManager {
	return &BackgroundManager{
		store:      helpStore,
		matcher:    matcher,
		taskServer: taskServer,
	}
}

// RegisterTasks binds every job of the manager to its task name
func (m *BackgroundManager) RegisterTasks() error {
	return m.taskServer.RegisterTasks(map[string]interface{}{
		TaskExpireHelpRequests:    m.ExpireHelpRequests,
		TaskRefreshRequestMatches: m.RefreshRequestMatches,
	})
}

// Run spawn workers to execute background jobs
func (m *BackgroundManager) Run() error {
	if m.worker != nil {
		return errors.New("background worker has started")
	}
	m.worker = m.taskServer.NewWorker(workerName, workerConcurrency)
	return m.worker.Launch()
}

// Stop quits the worker when it is running
func (m *BackgroundManager) Stop() {
	if m.worker != nil {
		m.worker.Quit()
	}
}

// ExpireSignature is the task signature of ExpireHelpRequests
func ExpireSignature() *tasks.Signature {
	return &tasks.Signature{
		Name: TaskExpireHelpRequests,
	}
}

// RefreshSignature is the task signature of RefreshRequestMatches
func RefreshSignature(requestID string) *tasks.Signature {
	return &tasks.Signature{
		Name: TaskRefreshRequestMatches,
		Args: []tasks.Arg{
			{Type: "string", Value: requestID},
		},
	}
}
