// file: services/recruitment_service_test.go
package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-clan-admin/models"
	"go-clan-admin/store"
)

// failingMembers wraps a member store and fails every Create.
type failingMembers struct {
	store.Store[models.Member]
}

func (failingMembers) Create(context.Context, models.Member) (models.Member, error) {
	return models.Member{}, errors.New("disk full")
}

// slowRequests delays every Get, the way a networked database would.
type slowRequests struct {
	store.Store[models.JoinRequest]
}

func (s slowRequests) Get(ctx context.Context, id int64) (models.JoinRequest, bool, error) {
	time.Sleep(5 * time.Millisecond)
	return s.Store.Get(ctx, id)
}

func statusPatch(status string) store.Patch {
	raw, _ := json.Marshal(status)
	return store.Patch{"status": raw}
}

func newRecruitment(t *testing.T) (*RecruitmentService, *store.Stores, *MockMetricsPublisher) {
	t.Helper()
	stores := store.NewMemoryStores()
	metrics := new(MockMetricsPublisher)
	metrics.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return()
	return NewRecruitmentService(stores.Requests, stores.Members, metrics), stores, metrics
}

func TestSubmit_ForcesPending(t *testing.T) {
	svc, _, metrics := newRecruitment(t)

	created, err := svc.Submit(context.Background(), models.JoinRequest{
		Name:   "Z",
		Email:  "z@x.com",
		Status: models.RequestAccepted,
		Date:   "1999-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, created.Status)
	assert.NotEqual(t, "1999-01-01", created.Date)
	assert.Contains(t, metrics.Names(), MetricJoinRequestsOpen)
}

func TestUpdate_AcceptCreatesOneMember(t *testing.T) {
	svc, stores, metrics := newRecruitment(t)
	ctx := context.Background()

	req, err := stores.Requests.Create(ctx, models.JoinRequest{
		Name: "Z", Email: "z@x.com", Position: "Goalkeeper", Age: 19, PhoneNumber: "555",
	})
	require.NoError(t, err)

	member, err := svc.Update(ctx, req.ID, statusPatch(models.RequestAccepted))
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, "Z", member.Name)
	assert.Equal(t, "Goalkeeper", member.Position)
	assert.Equal(t, "z@x.com", member.Email)
	assert.Equal(t, "555", member.Phone)
	assert.Equal(t, models.MemberActive, member.Status)

	got, _, err := stores.Requests.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestAccepted, got.Status)
	assert.Contains(t, metrics.Names(), MetricRequestAccepted)

	// Accepting again does not add a second member.
	again, err := svc.Update(ctx, req.ID, statusPatch(models.RequestAccepted))
	require.NoError(t, err)
	assert.Nil(t, again)

	members, err := stores.Members.List(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestUpdate_AcceptUsesPatchedFields(t *testing.T) {
	svc, stores, _ := newRecruitment(t)
	ctx := context.Background()

	req, err := stores.Requests.Create(ctx, models.JoinRequest{Name: "old", Position: "Defender"})
	require.NoError(t, err)

	patch := statusPatch(models.RequestAccepted)
	patch["name"] = json.RawMessage(`"new"`)
	member, err := svc.Update(ctx, req.ID, patch)
	require.NoError(t, err)
	require.NotNil(t, member)
	assert.Equal(t, "new", member.Name)
}

func TestUpdate_RejectDoesNotCreateMember(t *testing.T) {
	svc, stores, _ := newRecruitment(t)
	ctx := context.Background()

	req, err := stores.Requests.Create(ctx, models.JoinRequest{Name: "Z"})
	require.NoError(t, err)

	member, err := svc.Update(ctx, req.ID, statusPatch(models.RequestRejected))
	require.NoError(t, err)
	assert.Nil(t, member)

	members, err := stores.Members.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestUpdate_NotFound(t *testing.T) {
	svc, _, _ := newRecruitment(t)

	_, err := svc.Update(context.Background(), 404, statusPatch(models.RequestAccepted))
	assert.ErrorIs(t, err, ErrRequestNotFound)

	_, err = svc.Update(context.Background(), 404, statusPatch(models.RequestRejected))
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestUpdate_InvalidPatch(t *testing.T) {
	svc, stores, _ := newRecruitment(t)
	ctx := context.Background()
	req, err := stores.Requests.Create(ctx, models.JoinRequest{Name: "Z"})
	require.NoError(t, err)

	_, err = svc.Update(ctx, req.ID, store.Patch{"age": json.RawMessage(`"old"`)})
	assert.ErrorIs(t, err, store.ErrInvalidPatch)
}

func TestUpdate_MemberFailureRevertsStatus(t *testing.T) {
	stores := store.NewMemoryStores()
	metrics := new(MockMetricsPublisher)
	metrics.On("Publish", mock.Anything, mock.Anything, mock.Anything).Return()
	svc := NewRecruitmentService(stores.Requests, failingMembers{stores.Members}, metrics)
	ctx := context.Background()

	req, err := stores.Requests.Create(ctx, models.JoinRequest{Name: "Z"})
	require.NoError(t, err)

	member, err := svc.Update(ctx, req.ID, statusPatch(models.RequestAccepted))
	assert.Error(t, err)
	assert.Nil(t, member)

	got, _, err := stores.Requests.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, got.Status)
	assert.Contains(t, metrics.Names(), MetricAcceptReverted)
}

func TestUpdate_ConcurrentAcceptsCreateOneMember(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewRecruitmentService(slowRequests{stores.Requests}, stores.Members, nil)
	ctx := context.Background()

	req, err := stores.Requests.Create(ctx, models.JoinRequest{Name: "Z", Position: "Striker"})
	require.NoError(t, err)

	const callers = 4
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			member, err := svc.Update(ctx, req.ID, statusPatch(models.RequestAccepted))
			assert.NoError(t, err)
			if member != nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	members, err := stores.Members.List(ctx)
	require.NoError(t, err)
	assert.Len(t, members, 1)
}

func TestUpdate_MemberFailureRevertsPatchedFields(t *testing.T) {
	stores := store.NewMemoryStores()
	svc := NewRecruitmentService(stores.Requests, failingMembers{stores.Members}, nil)
	ctx := context.Background()

	req, err := stores.Requests.Create(ctx, models.JoinRequest{Name: "old", Position: "Defender"})
	require.NoError(t, err)

	patch := statusPatch(models.RequestAccepted)
	patch["name"] = json.RawMessage(`"new"`)
	patch["position"] = json.RawMessage(`"Striker"`)
	patch["phoneNumber"] = json.RawMessage(`"555"`)
	_, err = svc.Update(ctx, req.ID, patch)
	require.Error(t, err)

	got, _, err := stores.Requests.Get(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestPending, got.Status)
	assert.Equal(t, "old", got.Name)
	assert.Equal(t, "Defender", got.Position)
	assert.Empty(t, got.PhoneNumber)
}
