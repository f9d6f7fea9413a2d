// file: controllers/resource_controller_test.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-clan-admin/models"
	"go-clan-admin/services"
	"go-clan-admin/store"
)

// brokenStore fails every call, like an unreachable database.
type brokenStore[T any] struct{}

var errBroken = errors.New("connection refused")

func (brokenStore[T]) List(context.Context) ([]T, error) { return nil, errBroken }
func (brokenStore[T]) Get(context.Context, int64) (T, bool, error) {
	var zero T
	return zero, false, errBroken
}
func (brokenStore[T]) Create(context.Context, T) (T, error) {
	var zero T
	return zero, errBroken
}
func (brokenStore[T]) Update(context.Context, int64, store.Patch) (bool, error) {
	return false, errBroken
}
func (brokenStore[T]) Delete(context.Context, int64) (bool, error) { return false, errBroken }

func setupMembers(t *testing.T, st store.Store[models.Member], metrics services.MetricsPublisher) *testEnv {
	env := setupTestRouter(t)
	rc := NewResourceController(st, "teamMembers", "member", "Team member not found", metrics)
	rc.Register(env.router.Group("/api", env.admin), "/members")
	return env
}

func TestResourceController_RequiresAdmin(t *testing.T) {
	env := setupMembers(t, store.NewMemoryStore[models.Member](), nil)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := env.do(method, "/api/members?id=1", `{"id":1,"name":"X"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, method)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	}
}

func TestResourceController_CRUD(t *testing.T) {
	members := store.NewMemoryStore[models.Member]()
	env := setupMembers(t, members, nil)
	ck := env.SetSession(t)

	w := env.do(http.MethodPost, "/api/members", map[string]any{"name": "X", "position": "Striker"}, ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created models.Member
	require.NoError(t, json.Unmarshal(decode(t, w)["member"], &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.MemberActive, created.Status)

	w = env.do(http.MethodPut, "/api/members", map[string]any{"id": created.ID, "status": "inactive"}, ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	w = env.do(http.MethodGet, "/api/members", nil, ck)
	require.Equal(t, http.StatusOK, w.Code)
	var list []models.Member
	require.NoError(t, json.Unmarshal(decode(t, w)["teamMembers"], &list))
	require.Len(t, list, 1)
	assert.Equal(t, "inactive", list[0].Status)
	assert.Equal(t, "X", list[0].Name)

	w = env.do(http.MethodDelete, fmt.Sprintf("/api/members?id=%d", created.ID), nil, ck)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodDelete, fmt.Sprintf("/api/members?id=%d", created.ID), nil, ck)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Team member not found"}`, w.Body.String())
}

func TestResourceController_UpdateIDForms(t *testing.T) {
	members := store.NewMemoryStore[models.Member]()
	env := setupMembers(t, members, nil)
	ck := env.SetSession(t)
	created, err := members.Create(context.Background(), models.Member{Name: "A"})
	require.NoError(t, err)

	w := env.do(http.MethodPut, "/api/members", fmt.Sprintf(`{"id":"%d","name":"B"}`, created.ID), ck)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(http.MethodPut, fmt.Sprintf("/api/members?id=%d", created.ID), `{"name":"C"}`, ck)
	assert.Equal(t, http.StatusOK, w.Code)

	got, _, err := members.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "C", got.Name)
}

func TestResourceController_BadRequests(t *testing.T) {
	members := store.NewMemoryStore[models.Member]()
	env := setupMembers(t, members, nil)
	ck := env.SetSession(t)
	created, err := members.Create(context.Background(), models.Member{Name: "A", Age: 30})
	require.NoError(t, err)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
	}{
		{"malformed create body", http.MethodPost, "/api/members", `{"name":`},
		{"wrong field type on create", http.MethodPost, "/api/members", `{"age":"old"}`},
		{"update without id", http.MethodPut, "/api/members", `{"name":"B"}`},
		{"update with non-numeric id", http.MethodPut, "/api/members", `{"id":"abc"}`},
		{"update with wrong field type", http.MethodPut, "/api/members", fmt.Sprintf(`{"id":%d,"age":"old"}`, created.ID)},
		{"delete without id", http.MethodDelete, "/api/members", nil},
		{"delete with non-numeric id", http.MethodDelete, "/api/members?id=abc", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(tt.method, tt.path, tt.body, ck)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	got, _, err := members.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 30, got.Age)
}

func TestResourceController_UpdateMissing(t *testing.T) {
	env := setupMembers(t, store.NewMemoryStore[models.Member](), nil)
	ck := env.SetSession(t)

	w := env.do(http.MethodPut, "/api/members", `{"id":99999,"name":"ghost"}`, ck)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Team member not found"}`, w.Body.String())
}

func TestResourceController_StoreFailureIs500(t *testing.T) {
	metrics := new(services.MockMetricsPublisher)
	metrics.On("Publish", services.MetricStoreErrors, mock.Anything, mock.Anything).Return()
	env := setupMembers(t, brokenStore[models.Member]{}, metrics)
	ck := env.SetSession(t)

	for _, req := range []struct {
		method, path string
		body         any
	}{
		{http.MethodGet, "/api/members", nil},
		{http.MethodPost, "/api/members", `{"name":"X"}`},
		{http.MethodPut, "/api/members", `{"id":1,"name":"X"}`},
		{http.MethodDelete, "/api/members?id=1", nil},
	} {
		w := env.do(req.method, req.path, req.body, ck)
		assert.Equal(t, http.StatusInternalServerError, w.Code, req.method)
		assert.JSONEq(t, `{"error":"Internal server error"}`, w.Body.String())
	}
	metrics.AssertNumberOfCalls(t, "Publish", 4)
}

func TestResourceController_ListEmpty(t *testing.T) {
	env := setupTestRouter(t)
	rc := NewResourceController[models.TrainingSession](store.NewMemoryStore[models.TrainingSession](), "trainingSessions", "session", "Training session not found", nil)
	rc.Register(env.router.Group("/api", env.admin), "/training")
	ck := env.SetSession(t)

	w := env.do(http.MethodGet, "/api/training", nil, ck)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"trainingSessions":[]}`, w.Body.String())
}

func TestResourceController_DefaultsRunBeforeCreate(t *testing.T) {
	env := setupTestRouter(t)
	rc := NewResourceController(store.NewMemoryStore[models.NewsArticle](), "newsArticles", "article", "News article not found", nil)
	rc.Defaults = func(a *models.NewsArticle) {
		if a.Author == "" {
			a.Author = "Captain"
		}
	}
	rc.Register(env.router.Group("/api", env.admin), "/news")
	ck := env.SetSession(t)

	w := env.do(http.MethodPost, "/api/news", map[string]any{"title": "T"}, ck)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var created models.NewsArticle
	require.NoError(t, json.Unmarshal(decode(t, w)["article"], &created))
	assert.Equal(t, "Captain", created.Author)

	w = env.do(http.MethodPost, "/api/news", map[string]any{"title": "T", "author": "Guest"}, ck)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(decode(t, w)["article"], &created))
	assert.Equal(t, "Guest", created.Author)
}
