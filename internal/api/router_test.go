package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	config "github.com/maheshrc27/adspark/configs"
	"github.com/maheshrc27/adspark/internal/models"
	"github.com/maheshrc27/adspark/internal/service"
	"github.com/maheshrc27/adspark/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPosts is a PostService over a slice, enough to drive the routes end to end.
type memoryPosts struct {
	mu    sync.Mutex
	posts []*models.SocialMediaPost
}

func (m *memoryPosts) List(ctx context.Context) ([]*models.SocialMediaPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*models.SocialMediaPost(nil), m.posts...), nil
}

func (m *memoryPosts) PostInfo(ctx context.Context, postID string) (*models.SocialMediaPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.ID == postID {
			return p, nil
		}
	}
	return nil, service.ErrPostNotFound
}

func (m *memoryPosts) Remove(ctx context.Context, postID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.posts {
		if p.ID == postID {
			m.posts = append(m.posts[:i], m.posts[i+1:]...)
			return nil
		}
	}
	return service.ErrPostNotFound
}

func newMemoryPosts() *memoryPosts {
	return &memoryPosts{posts: []*models.SocialMediaPost{{ID: "2"}, {ID: "1"}}}
}

func testDeps(posts service.PostService) Dependencies {
	cfg := config.Config{LoginUsername: "admin", LoginPassword: "pw", SessionSecret: "S", Environment: "development"}
	credential := session.NewSecretCredential(cfg.SessionSecret)
	return Dependencies{
		Config:      cfg,
		Credential:  credential,
		AuthService: service.NewAuthService(cfg, credential),
		PostService: posts,
	}
}

func TestRouter_LoginThenDeleteTwice(t *testing.T) {
	app, err := NewApp(testDeps(newMemoryPosts()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"admin","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var auth *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == session.CookieName {
			auth = c
		}
	}
	require.NotNil(t, auth)
	assert.Equal(t, "S", auth.Value)

	del := func() int {
		req := httptest.NewRequest(http.MethodDelete, "/api/posts/2", nil)
		req.AddCookie(&http.Cookie{Name: auth.Name, Value: auth.Value})
		resp, err := app.Test(req)
		require.NoError(t, err)
		return resp.StatusCode
	}
	assert.Equal(t, http.StatusOK, del())
	assert.Equal(t, http.StatusNotFound, del())

	req = httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	req.AddCookie(&http.Cookie{Name: auth.Name, Value: auth.Value})
	resp, err = app.Test(req)
	require.NoError(t, err)

	var posts []models.SocialMediaPost
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "1", posts[0].ID)
}

func TestRouter_GatesDashboardAndAPI(t *testing.T) {
	app, err := NewApp(testDeps(newMemoryPosts()))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Equal(t, "/login?from=%2F", resp.Header.Get("Location"))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/posts", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/login", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_ServesStaticWithoutSession(t *testing.T) {
	app, err := NewApp(testDeps(newMemoryPosts()))
	require.NoError(t, err)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/static/dashboard.js", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRouter_WrongPassword(t *testing.T) {
	app, err := NewApp(testDeps(newMemoryPosts()))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"username":"admin","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Invalid username or password", body["error"])
}
