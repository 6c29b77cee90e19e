package routes_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"questboard/backend/config"
	"questboard/backend/middleware"
	"questboard/backend/routes"
	"questboard/backend/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success  bool            `json:"success"`
	Data     json.RawMessage `json:"data"`
	Error    string          `json:"error"`
	Message  string          `json:"message"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"pageSize"`
}

type apiUser struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Point    int    `json:"point"`
	Password string `json:"password"`
}

type apiTask struct {
	ID       uint   `json:"id"`
	UserID   uint   `json:"user_id"`
	Name     string `json:"name"`
	Priority string `json:"priority"`
	IsDone   bool   `json:"is_done"`
}

func setup(t *testing.T) (*fiber.App, *config.Config) {
	t.Helper()
	cfg := &config.Config{
		JWTSecret:     "testsecret",
		SessionCookie: "user_id",
		SessionTTL:    time.Hour,
	}
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	routes.SetupRoutes(app, testutil.NewDB(t), cfg, nil)
	return app, cfg
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}, cookies ...*http.Cookie) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env), string(raw))
	}
	return resp, env
}

func sessionCookie(t *testing.T, resp *http.Response, cfg *config.Config) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == cfg.SessionCookie {
			return c
		}
	}
	t.Fatalf("response has no %s cookie", cfg.SessionCookie)
	return nil
}

func register(t *testing.T, app *fiber.App, email string) (apiUser, *http.Response) {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodPost, "/users", fiber.Map{"email": email, "password": "password123"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	var user apiUser
	require.NoError(t, json.Unmarshal(env.Data, &user))
	return user, resp
}

func TestHealth(t *testing.T) {
	app, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "UP", body["status"])
}

func TestRegisterAndLogin(t *testing.T) {
	app, cfg := setup(t)

	user, resp := register(t, app, "alice@example.com")
	assert.Equal(t, "Guest", user.Name)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, sessionCookie(t, resp, cfg).Value)

	resp, env := doJSON(t, app, http.MethodPost, "/users", fiber.Map{"email": "alice@example.com", "password": "x"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.False(t, env.Success)

	resp, _ = doJSON(t, app, http.MethodPost, "/login", fiber.Map{"email": "alice@example.com", "password": "password123"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, sessionCookie(t, resp, cfg).Value)

	resp, wrongPassword := doJSON(t, app, http.MethodPost, "/login", fiber.Map{"email": "alice@example.com", "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp, unknownEmail := doJSON(t, app, http.MethodPost, "/login", fiber.Map{"email": "bob@example.com", "password": "nope"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, wrongPassword.Message, unknownEmail.Message)

	resp, env = doJSON(t, app, http.MethodPost, "/users", fiber.Map{"email": "not-an-email", "password": "x"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, env.Message, "email")
}

func TestUpdateProfile(t *testing.T) {
	app, cfg := setup(t)
	_, resp := register(t, app, "alice@example.com")
	cookie := sessionCookie(t, resp, cfg)

	resp, _ = doJSON(t, app, http.MethodPut, "/profile", fiber.Map{"name": "Alice"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodPut, "/profile", fiber.Map{"name": "Alice"}, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var user apiUser
	require.NoError(t, json.Unmarshal(env.Data, &user))
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUsersAndPoints(t *testing.T) {
	app, _ := setup(t)
	alice, _ := register(t, app, "alice@example.com")
	bob, _ := register(t, app, "bob@example.com")

	resp, env := doJSON(t, app, http.MethodPost, "/point", fiber.Map{"user_id": bob.ID, "point": 50})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated apiUser
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 50, updated.Point)

	resp, env = doJSON(t, app, http.MethodGet, "/users", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []apiUser
	require.NoError(t, json.Unmarshal(env.Data, &users))
	require.Len(t, users, 2)
	assert.Equal(t, bob.ID, users[0].ID)
	assert.Equal(t, int64(2), env.Total)

	resp, _ = doJSON(t, app, http.MethodPost, "/point", fiber.Map{"user_id": 999, "point": 5})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/users/%d", alice.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/users/%d", alice.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/users/%d", alice.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodGet, "/users/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTasks(t *testing.T) {
	app, _ := setup(t)
	user, _ := register(t, app, "alice@example.com")

	resp, env := doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{"user_id": user.ID, "name": "read"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)
	var task apiTask
	require.NoError(t, json.Unmarshal(env.Data, &task))
	assert.Equal(t, "low", task.Priority)

	resp, _ = doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{"user_id": user.ID, "name": "x", "priority": "urgent"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = doJSON(t, app, http.MethodPut, fmt.Sprintf("/tasks/%d/done", task.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &task))
	assert.True(t, task.IsDone)

	resp, env = doJSON(t, app, http.MethodPut, fmt.Sprintf("/tasks/%d", task.ID), fiber.Map{"priority": "high"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &task))
	assert.Equal(t, "high", task.Priority)
	assert.Equal(t, "read", task.Name)
	assert.True(t, task.IsDone)

	resp, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/tasks/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tasks []apiTask
	require.NoError(t, json.Unmarshal(env.Data, &tasks))
	assert.Len(t, tasks, 1)

	resp, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/rate/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rate struct {
		Rate int `json:"rate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &rate))
	assert.Equal(t, 100, rate.Rate)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/tasks/%d", task.ID+1), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/tasks/%d", task.ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestBoards(t *testing.T) {
	app, _ := setup(t)
	user, _ := register(t, app, "alice@example.com")

	resp, env := doJSON(t, app, http.MethodPost, "/boards", fiber.Map{"user_id": user.ID, "content": "hello"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, env.Message)

	resp, env = doJSON(t, app, http.MethodGet, "/boards", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var posts []struct {
		ID       uint   `json:"id"`
		Content  string `json:"content"`
		UserName string `json:"user_name"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "Guest", posts[0].UserName)

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	resp, _ = doJSON(t, app, http.MethodPut, fmt.Sprintf("/boards/%d", posts[0].ID), fiber.Map{"content": string(long)})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodDelete, fmt.Sprintf("/boards/%d", posts[0].ID), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestQuests(t *testing.T) {
	app, _ := setup(t)

	for i := 0; i < 2; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/init", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	resp, env := doJSON(t, app, http.MethodGet, "/quests", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var quests []struct {
		ID    uint   `json:"id"`
		Title string `json:"title"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &quests))
	assert.Len(t, quests, 3)

	user, _ := register(t, app, "alice@example.com")
	for i := 0; i < 3; i++ {
		resp, _ = doJSON(t, app, http.MethodPost, "/tasks", fiber.Map{"user_id": user.ID, "name": "t"})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/checkquests/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var status map[string]bool
	require.NoError(t, json.Unmarshal(env.Data, &status))
	assert.Equal(t, map[string]bool{"task_starter": true, "task_finisher": false, "first_post": false}, status)

	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/checkquests/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stored apiUser
	require.NoError(t, json.Unmarshal(env.Data, &stored))
	assert.Equal(t, 100, stored.Point)

	resp, env = doJSON(t, app, http.MethodGet, fmt.Sprintf("/quests/%d", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &quests))
	require.Len(t, quests, 2)
	assert.Equal(t, uint(2), quests[0].ID)

	resp, _ = doJSON(t, app, http.MethodGet, "/checkquests/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
