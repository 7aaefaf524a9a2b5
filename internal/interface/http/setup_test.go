package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"taskboard/internal/application"
	"taskboard/internal/infrastructure/memory"
	handlers "taskboard/internal/interface/http"
	"taskboard/internal/mapper"
	"taskboard/internal/router"
	"taskboard/internal/router/modules"
	"taskboard/pkg/helpers"
	"taskboard/pkg/validation"
)

// testServer runs the full route table against the in-memory stores, with the
// same middleware chain the real server uses minus redis.
type testServer struct {
	engine   *gin.Engine
	jwt      *helpers.JWTManager
	users    *memory.UserStore
	statuses *memory.TaskStatusStore
	labels   *memory.LabelStore
	tasks    *memory.TaskStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	users := memory.NewUserStore()
	statuses := memory.NewTaskStatusStore()
	labels := memory.NewLabelStore()
	tasks := memory.NewTaskStore(statuses)

	jwt := helpers.NewJWTManager("test-access", "test-refresh", time.Minute, time.Hour)
	taskMapper := mapper.NewTaskMapper(statuses, labels, users)

	authSvc := application.NewAuthService(users, jwt, nil, logger)
	userSvc := application.NewUserService(users, tasks, logger, nil)
	statusSvc := application.NewTaskStatusService(statuses, tasks, logger)
	labelSvc := application.NewLabelService(labels, tasks, logger)
	taskSvc := application.NewTaskService(tasks, taskMapper, logger)

	engine := gin.New()
	engine.Use(gin.Recovery())

	reg := router.NewRegistry(engine)
	reg.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger, "localhost", false), jwt, nil))
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), jwt, nil))
	reg.Add(modules.NewTaskStatusModule(handlers.NewTaskStatusHandler(statusSvc, logger), jwt, nil))
	reg.Add(modules.NewLabelModule(handlers.NewLabelHandler(labelSvc, logger), jwt, nil))
	reg.Add(modules.NewTaskModule(handlers.NewTaskHandler(taskSvc, logger), jwt, nil))
	reg.RegisterAll()

	return &testServer{
		engine:   engine,
		jwt:      jwt,
		users:    users,
		statuses: statuses,
		labels:   labels,
		tasks:    tasks,
	}
}

// do performs a request; a non-empty actor is sent as a bearer access token.
func (ts *testServer) do(t *testing.T, method, path, actor string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actor != "" {
		token, _, err := ts.jwt.GenerateAccessToken(actor)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

// rawJSON performs a request with a handwritten JSON body, for payloads the
// typed DTOs cannot express (explicit nulls, malformed JSON).
func (ts *testServer) rawJSON(t *testing.T, method, path, actor, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	if actor != "" {
		token, _, err := ts.jwt.GenerateAccessToken(actor)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

// data unmarshals the "data" member of the response envelope.
func data[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope.Data
}

func (ts *testServer) register(t *testing.T, email string) mapper.UserDTO {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/users", "", mapper.UserCreateDTO{
		Email:     email,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "secret",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return data[mapper.UserDTO](t, w)
}

func (ts *testServer) seedWorkflow(t *testing.T, actor string) (statusID, labelID int64) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/api/task_statuses", actor, mapper.TaskStatusCreateDTO{Name: "Draft", Slug: "draft"})
	require.Equal(t, http.StatusCreated, w.Code)
	statusID = data[mapper.TaskStatusDTO](t, w).ID

	w = ts.do(t, http.MethodPost, "/api/labels", actor, mapper.LabelCreateDTO{Name: "bug"})
	require.Equal(t, http.StatusCreated, w.Code)
	labelID = data[mapper.LabelDTO](t, w).ID
	return statusID, labelID
}
