package api_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiddheshD91/PPL2026/internal/api"
	"github.com/SiddheshD91/PPL2026/internal/api/apierr"
	"github.com/SiddheshD91/PPL2026/internal/api/response"
	"github.com/SiddheshD91/PPL2026/internal/factory"
	"github.com/SiddheshD91/PPL2026/internal/model"
	"github.com/SiddheshD91/PPL2026/internal/services/auth"
	"github.com/SiddheshD91/PPL2026/internal/storage/memory"
)

const (
	adminEmail    = "admin@ppl.local"
	adminPassword = "secret123"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	auth    *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with a real clock
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)
	require.NoError(t, app.AuthService.SeedAdmin(context.Background(), adminEmail, adminPassword))

	router := api.NewRouter(api.RouterConfig{
		Logger:          logger,
		AuthService:     app.AuthService,
		PlayerService:   app.PlayerService,
		CategoryService: app.CategoryService,
	})

	return &testServer{
		handler: router,
		storage: app.Storage.(*memory.Storage),
		auth:    app.AuthService,
	}
}

func (ts *testServer) request(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func registrationBody(name string) map[string]any {
	return map[string]any{
		"name":               name,
		"tshirt_size":        40,
		"dob":                "2000-06-01",
		"photo":              base64.StdEncoding.EncodeToString([]byte("fake png bytes")),
		"photo_content_type": "image/png",
	}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"email": adminEmail, "password": adminPassword}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.Equal(t, adminEmail, resp.Email)
	assert.NotEmpty(t, resp.SessionToken)
}

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t)

	body := map[string]string{"email": adminEmail, "password": "nope"}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assertErrorCode(t, rr, apierr.CodeInvalidCredentials)
}

func TestLogout(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/auth/logout", nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// Token is dead afterwards
	rr = ts.request(http.MethodGet, "/api/v1/auth/me", nil, token)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUnauthorizedWithoutToken(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/players", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/categories", map[string]string{"name": "x"}, "")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/auth/me", nil, "bogus-token")
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestRegistrationIsPublic(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/players", registrationBody("Virat"), "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Player
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Virat", resp.Name)
	assert.Equal(t, 40, resp.TshirtSize)
	assert.Contains(t, resp.PhotoURL, "data:image/png;base64,")
	assert.NotZero(t, resp.Age)
}

func TestRegistrationValidation(t *testing.T) {
	ts := newTestServer(t)

	body := registrationBody("Virat")
	body["tshirt_size"] = 9
	rr := ts.request(http.MethodPost, "/api/v1/players", body, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assertErrorCode(t, rr, apierr.CodeValidationError)

	body = registrationBody("Virat")
	body["dob"] = "not-a-date"
	rr = ts.request(http.MethodPost, "/api/v1/players", body, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	body = registrationBody("Virat")
	body["photo"] = "!!! not base64 !!!"
	rr = ts.request(http.MethodPost, "/api/v1/players", body, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assertErrorCode(t, rr, apierr.CodeInvalidRequest)
}

func TestListAndSearchPlayers(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	registerPlayer(t, ts, "Rohit Sharma")
	registerPlayer(t, ts, "Virat Kohli")

	rr := ts.request(http.MethodGet, "/api/v1/players", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var players []response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	assert.Len(t, players, 2)

	rr = ts.request(http.MethodGet, "/api/v1/players?search=rohit", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &players))
	require.Len(t, players, 1)
	assert.Equal(t, "Rohit Sharma", players[0].Name)
}

func TestGetPlayerNotFound(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	rr := ts.request(http.MethodGet, "/api/v1/players/no-such-id", nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assertErrorCode(t, rr, apierr.CodePlayerNotFound)
}

func TestUpdatePlayer(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	playerID := registerPlayer(t, ts, "Virat")

	body := map[string]any{"tshirt_size": 42}
	rr := ts.request(http.MethodPatch, "/api/v1/players/"+playerID, body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, 42, resp.TshirtSize)
	assert.Equal(t, "Virat", resp.Name)
}

func TestCreateAndDeleteCategory(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	rr := ts.request(http.MethodPost, "/api/v1/categories", map[string]string{"name": "A1 Batsman"}, token)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created response.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, "A1 Batsman", created.Name)
	assert.Empty(t, created.Players)

	rr = ts.request(http.MethodDelete, "/api/v1/categories/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/categories/"+created.ID, nil, token)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assertErrorCode(t, rr, apierr.CodeCategoryNotFound)
}

func TestCategoryCapacity(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	categoryID := createCategory(t, ts, token, "A1 Batsman")

	var playerIDs []string
	for i := 0; i < model.MaxCategoryPlayers; i++ {
		id := registerPlayer(t, ts, fmt.Sprintf("Player %d", i))
		playerIDs = append(playerIDs, id)

		body := map[string]string{"player_id": id}
		rr := ts.request(http.MethodPost, "/api/v1/categories/"+categoryID+"/players", body, token)
		assert.Equal(t, http.StatusOK, rr.Code)
	}

	// Ninth player bounces off the cap
	ninth := registerPlayer(t, ts, "Player 9")
	rr := ts.request(http.MethodPost, "/api/v1/categories/"+categoryID+"/players", map[string]string{"player_id": ninth}, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assertErrorCode(t, rr, apierr.CodeCategoryFull)

	// Membership is untouched and in insertion order
	rr = ts.request(http.MethodGet, "/api/v1/categories/"+categoryID, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var category response.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &category))
	assert.Equal(t, playerIDs, category.Players)
}

func TestAddPlayerTwice(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	categoryID := createCategory(t, ts, token, "A1 Batsman")
	playerID := registerPlayer(t, ts, "Virat")

	body := map[string]string{"player_id": playerID}
	rr := ts.request(http.MethodPost, "/api/v1/categories/"+categoryID+"/players", body, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/categories/"+categoryID+"/players", body, token)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assertErrorCode(t, rr, apierr.CodeAlreadyInCategory)
}

func TestRemovePlayer(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	categoryID := createCategory(t, ts, token, "A1 Batsman")
	playerID := registerPlayer(t, ts, "Virat")

	body := map[string]string{"player_id": playerID}
	rr := ts.request(http.MethodPost, "/api/v1/categories/"+categoryID+"/players", body, token)
	require.Equal(t, http.StatusOK, rr.Code)

	rr = ts.request(http.MethodDelete, "/api/v1/categories/"+categoryID+"/players/"+playerID, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var category response.Category
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &category))
	assert.Empty(t, category.Players)

	// Removing again is a harmless no-op
	rr = ts.request(http.MethodDelete, "/api/v1/categories/"+categoryID+"/players/"+playerID, nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCategoryMembersDropsDanglingIDs(t *testing.T) {
	ts := newTestServer(t)
	token := login(t, ts)

	categoryID := createCategory(t, ts, token, "A1 Batsman")
	p1 := registerPlayer(t, ts, "Keep")
	p2 := registerPlayer(t, ts, "Gone")

	for _, id := range []string{p1, p2} {
		rr := ts.request(http.MethodPost, "/api/v1/categories/"+categoryID+"/players", map[string]string{"player_id": id}, token)
		require.Equal(t, http.StatusOK, rr.Code)
	}

	// Delete the second player behind the category's back
	require.NoError(t, ts.storage.DeletePlayer(context.Background(), model.PlayerID(p2)))

	rr := ts.request(http.MethodGet, "/api/v1/categories/"+categoryID+"/players", nil, token)
	assert.Equal(t, http.StatusOK, rr.Code)

	var resp response.CategoryMembers
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))

	// The stale id is still a member, just not resolvable
	assert.Len(t, resp.Category.Players, 2)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "Keep", resp.Members[0].Name)
}

// Helper functions

func login(t *testing.T, ts *testServer) string {
	t.Helper()

	body := map[string]string{"email": adminEmail, "password": adminPassword}
	rr := ts.request(http.MethodPost, "/api/v1/auth/login", body, "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp response.AuthResponse
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.SessionToken
}

func registerPlayer(t *testing.T, ts *testServer, name string) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/players", registrationBody(name), "")
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Player
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.ID
}

func createCategory(t *testing.T, ts *testServer, token, name string) string {
	t.Helper()

	rr := ts.request(http.MethodPost, "/api/v1/categories", map[string]string{"name": name}, token)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp response.Category
	err := json.Unmarshal(rr.Body.Bytes(), &resp)
	require.NoError(t, err)

	return resp.ID
}

func assertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, code string) {
	t.Helper()

	var resp apierr.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, code, resp.Error.Code)
}
