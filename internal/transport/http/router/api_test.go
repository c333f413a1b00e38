package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"go-user-service/internal/core/auth"
	"go-user-service/internal/domain"
	"go-user-service/internal/service"
)

// memStore keeps the store contract in memory for end-to-end routing tests.
type memStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*domain.User
}

func newMemStore() *memStore { return &memStore{users: make(map[uuid.UUID]*domain.User)} }

func (m *memStore) Create(_ context.Context, u *domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ex := range m.users {
		if ex.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	cp := *u
	m.users[u.UserID] = &cp
	return nil
}

func (m *memStore) FindByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (m *memStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memStore) Update(_ context.Context, id uuid.UUID, fields map[string]any) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !u.IsActive {
		return false, nil
	}
	if v, ok := fields["name"].(string); ok {
		u.Name = v
	}
	if v, ok := fields["surname"].(string); ok {
		u.Surname = v
	}
	if v, ok := fields["email"].(string); ok {
		u.Email = v
	}
	return true, nil
}

func (m *memStore) SoftDelete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok || !u.IsActive {
		return false, nil
	}
	u.IsActive = false
	return true, nil
}

func newTestEngine(t *testing.T, ttl time.Duration) (*gin.Engine, *memStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := newMemStore()
	log := zap.NewNop()
	jwter, err := auth.New("test-secret", "go-user-service", "HS256", ttl)
	require.NoError(t, err)
	svc := service.NewUserService(store, nil, 0, log)
	return NewAPIEngine(log, svc, store, jwter), store
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

func do(r *gin.Engine, method, target, body, bearer string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	r.ServeHTTP(w, req)
	return w
}

func createUser(t *testing.T, r *gin.Engine) uuid.UUID {
	t.Helper()
	w := do(r, http.MethodPost, "/api/v1/user",
		`{"name":"Nikolai","surname":"Sviridov","email":"lol@kek.com","password":"SamplePass1"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var show struct {
		UserID uuid.UUID `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &show))
	return show.UserID
}

func loginToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	form := url.Values{"username": {"lol@kek.com"}, "password": {"SamplePass1"}}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/login/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var tok struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &tok))
	return tok.AccessToken
}

func TestFullAccountFlow(t *testing.T) {
	r, _ := newTestEngine(t, time.Hour)

	id := createUser(t, r)
	tok := loginToken(t, r)

	// read requires the bearer identity
	w := do(r, http.MethodGet, "/api/v1/user?user_id="+id.String(), "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(r, http.MethodGet, "/api/v1/user?user_id="+id.String(), "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"lol@kek.com"`)
	assert.NotContains(t, w.Body.String(), "password")

	// partial update
	w = do(r, http.MethodPatch, "/api/v1/user?user_id="+id.String(), `{"name":"Ivan"}`, tok)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/v1/user?user_id="+id.String(), "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Ivan"`)
	assert.Contains(t, w.Body.String(), `"surname":"Sviridov"`)

	// delete deactivates; second delete is a 404; the row stays readable
	w = do(r, http.MethodDelete, "/api/v1/user?user_id="+id.String(), "", tok)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodDelete, "/api/v1/user?user_id="+id.String(), "", tok)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodGet, "/api/v1/user?user_id="+id.String(), "", tok)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_active":false`)
}

func TestExpiredTokenRejected(t *testing.T) {
	r, _ := newTestEngine(t, -2*time.Hour)

	id := createUser(t, r)
	tok := loginToken(t, r)

	w := do(r, http.MethodGet, "/api/v1/user?user_id="+id.String(), "", tok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateAfterDeleteNotFound(t *testing.T) {
	r, store := newTestEngine(t, time.Hour)

	id := createUser(t, r)
	tok := loginToken(t, r)

	ok, err := store.SoftDelete(context.Background(), id)
	require.NoError(t, err)
	require.True(t, ok)

	// token still resolves: the holder's account row exists, just inactive
	w := do(r, http.MethodPatch, "/api/v1/user?user_id="+id.String(), `{"name":"Ivan"}`, tok)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
