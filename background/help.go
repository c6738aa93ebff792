package background

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aidconnect/aid-connect-api/match"
	"github.com/aidconnect/aid-connect-api/schema"
	"github.com/aidconnect/aid-connect-api/store"
)

const taskTimeout = 30 * time.Second

// ExpireHelpRequests is a background job to close the pending help requests
// which are past their expiry
func (m *BackgroundManager) ExpireHelpRequests() error {
	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()

	expired, err := m.store.ExpireHelpRequests(ctx, time.Now().UTC())
	if err != nil {
		log.WithError(err).Error("expire help requests")
		return err
	}

	log.WithField("expired", expired).Info("expired help requests")
	return nil
}

// RefreshRequestMatches is a background job to recompute the matches of a
// pending help request. Requests that are gone or no longer pending are
// skipped without error so that the task is not retried.
func (m *BackgroundManager) RefreshRequestMatches(requestID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), taskTimeout)
	defer cancel()

	logger := log.WithField("request_id", requestID)

	request, err := m.store.GetHelpRequest(ctx, requestID)
	if err == store.ErrRequestNotFound {
		logger.Warn("refresh matches of a missing request")
		return nil
	} else if err != nil {
		logger.WithError(err).Error("get help request")
		return err
	}

	if request.Status != schema.RequestOpen && request.Status != schema.RequestMatched {
		logger.WithField("status", request.Status).Debug("skip refreshing a closed request")
		return nil
	}

	matches, err := m.matcher.FindMatches(ctx, *request, match.DefaultLimit)
	if err != nil {
		logger.WithError(err).Error("find matches")
		return err
	}

	if err := m.store.UpdateHelpMatches(ctx, requestID, matches); err != nil {
		if err == store.ErrRequestNotFound {
			return nil
		}
		logger.WithError(err).Error("update help matches")
		return err
	}

	logger.WithFields(logrus.Fields{
		"matches": len(matches),
	}).Info("refreshed matches")
	return nil
}
