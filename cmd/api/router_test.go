package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "around-backend/cmd/api"
	"around-backend/internal/auth/repository"
	authUsecase "around-backend/internal/auth/usecase"
	usersUsecase "around-backend/internal/users/usecase"
	"around-backend/pkg/client"
	"around-backend/pkg/token"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens, err := token.NewService("test-secret", 7*24*time.Hour)
	require.NoError(t, err)

	repo := repository.NewMemoryRepository()
	authUc := authUsecase.NewAuthUsecase(repo, tokens)
	userUc := usersUsecase.NewUserUsecase(repo)

	router := gin.New()
	api.SetupRoutes(router, authUc, userUc)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestRegisterLoginProfileScenario(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	c := client.New(srv.URL)

	created, err := c.Register(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "a@x.com", created.Email)

	tok, err := c.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	profile, err := c.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", profile.Email)
	assert.Equal(t, created.ID, profile.ID)
}

func TestProfileResponseOmitsPassword(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	c := client.New(srv.URL)

	_, err := c.Register(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	_, err = c.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/users/me", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+loginRaw(t, srv.URL))

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var raw map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
	assert.NotContains(t, raw, "password")
	assert.Equal(t, "a@x.com", raw["email"])
}

// loginRaw performs a login over plain HTTP and returns the raw token string.
func loginRaw(t *testing.T, baseURL string) string {
	t.Helper()

	resp, err := http.Post(baseURL+"/signin", "application/json",
		strings.NewReader(`{"email":"a@x.com","password":"secret123"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Token
}

func TestRegisterConflicts(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	c := client.New(srv.URL)

	_, err := c.Register(ctx, "a@x.com", "secret123")
	require.NoError(t, err)

	_, err = c.Register(ctx, "a@x.com", "other456")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "email already registered", apiErr.Message)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	for _, path := range []string{"/users", "/users/me"} {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+path, nil)
		require.NoError(t, err)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, path)
	}
}

func TestProfileUpdates(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	c := client.New(srv.URL)

	_, err := c.Register(ctx, "a@x.com", "secret123")
	require.NoError(t, err)
	_, err = c.Login(ctx, "a@x.com", "secret123")
	require.NoError(t, err)

	t.Run("profile update", func(t *testing.T) {
		updated, err := c.UpdateProfile(ctx, "Marie", "Scientist")
		require.NoError(t, err)
		assert.Equal(t, "Marie", updated.Name)
		assert.Equal(t, "Scientist", updated.About)
		assert.Equal(t, "a@x.com", updated.Email)
	})

	t.Run("avatar update", func(t *testing.T) {
		updated, err := c.UpdateAvatar(ctx, "https://example.com/b.png")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/b.png", updated.Avatar)
	})

	t.Run("validation failure is a 400", func(t *testing.T) {
		_, err := c.UpdateProfile(ctx, "x", "Scientist")
		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	})

	t.Run("listing users includes the caller", func(t *testing.T) {
		users, err := c.Users(ctx)
		require.NoError(t, err)
		require.Len(t, users, 1)
		assert.Equal(t, "a@x.com", users[0].Email)
	})
}
