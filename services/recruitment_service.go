// File: services/recruitment_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go-clan-admin/logger"
	"go-clan-admin/models"
	"go-clan-admin/store"
)

// ErrRequestNotFound is returned when the join request id does not exist.
var ErrRequestNotFound = errors.New("join request not found")

// RecruitmentService handles join requests, including turning an accepted
// request into a roster member.
type RecruitmentService struct {
	// acceptMu serialises the read-then-accept sequence so one request
	// yields at most one member.
	acceptMu sync.Mutex
	requests store.Store[models.JoinRequest]
	members  store.Store[models.Member]
	metrics  MetricsPublisher
}

// NewRecruitmentService wires the two collections the accept flow touches.
func NewRecruitmentService(requests store.Store[models.JoinRequest], members store.Store[models.Member], metrics MetricsPublisher) *RecruitmentService {
	if metrics == nil {
		metrics = NoopPublisher{}
	}
	return &RecruitmentService{requests: requests, members: members, metrics: metrics}
}

// Submit stores a join request from the public form. The status is always
// pending regardless of what the caller sent.
func (s *RecruitmentService) Submit(ctx context.Context, req models.JoinRequest) (models.JoinRequest, error) {
	req.Status = models.RequestPending
	req.Date = ""
	created, err := s.requests.Create(ctx, req)
	if err != nil {
		return created, err
	}
	Count(s.metrics, MetricJoinRequestsOpen)
	logger.Info.Printf("Join request %d submitted by %q", created.ID, created.Email)
	return created, nil
}

// Update applies patch to the request. When the patch moves a request that
// was not yet accepted to "accepted", a member is created from it; if that
// fails the status is put back and the error returned. The created member is
// returned, or nil when none was created.
func (s *RecruitmentService) Update(ctx context.Context, id int64, patch store.Patch) (*models.Member, error) {
	status, _ := patch.String("status")
	if status != models.RequestAccepted {
		return nil, s.plainUpdate(ctx, id, patch)
	}

	s.acceptMu.Lock()
	defer s.acceptMu.Unlock()

	current, found, err := s.requests.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrRequestNotFound
	}
	if current.Status == models.RequestAccepted {
		return nil, s.plainUpdate(ctx, id, patch)
	}
	return s.accept(ctx, current, patch)
}

func (s *RecruitmentService) plainUpdate(ctx context.Context, id int64, patch store.Patch) error {
	ok, err := s.requests.Update(ctx, id, patch)
	if err != nil {
		return err
	}
	if !ok {
		return ErrRequestNotFound
	}
	return nil
}

// accept runs the two steps: mark accepted, then create the member.
func (s *RecruitmentService) accept(ctx context.Context, current models.JoinRequest, patch store.Patch) (*models.Member, error) {
	if err := s.plainUpdate(ctx, current.ID, patch); err != nil {
		return nil, err
	}

	accepted, found, err := s.requests.Get(ctx, current.ID)
	if err != nil || !found {
		// Deleted in between; build the member from what we had.
		accepted = current
	}

	member, err := s.members.Create(ctx, accepted.ToMember())
	if err != nil {
		logger.Error.Printf("Accept request %d - member creation failed, reverting status: %v", current.ID, err)
		s.revert(ctx, current, patch)
		return nil, fmt.Errorf("create member for request %d: %w", current.ID, err)
	}

	Count(s.metrics, MetricRequestAccepted)
	logger.Info.Printf("Join request %d accepted, member %d created", current.ID, member.ID)
	return &member, nil
}

// revert puts back every field the accepting patch touched.
func (s *RecruitmentService) revert(ctx context.Context, previous models.JoinRequest, patch store.Patch) {
	restore, err := store.Snapshot(previous, patch)
	if err == nil {
		_, err = s.requests.Update(ctx, previous.ID, restore)
	}
	if err != nil {
		logger.Error.Printf("Accept request %d - revert failed: %v", previous.ID, err)
		return
	}
	Count(s.metrics, MetricAcceptReverted)
}
