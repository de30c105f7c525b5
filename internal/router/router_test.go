package router

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/agendaescolar/backend/api/handler"
	"github.com/agendaescolar/backend/api/transport"
	"github.com/agendaescolar/backend/domain"
	"github.com/agendaescolar/backend/internal/infrastructure/monitor"
	"github.com/agendaescolar/backend/internal/middleware"
	"github.com/agendaescolar/backend/pkg/token"
	"github.com/agendaescolar/backend/repository/memory"
	authUC "github.com/agendaescolar/backend/usecase/auth"
	taskUC "github.com/agendaescolar/backend/usecase/task"
)

type testServer struct {
	handler fasthttp.RequestHandler
}

func newTestServer() *testServer {
	users := memory.NewUserRepository()
	tasks := memory.NewTaskRepository(users)
	issuer := token.New("e2e-secret", time.Hour)

	handlers := Handlers{
		Auth:   apiHandler.NewAuthHandler(authUC.New(users, issuer, nil), nil, nil),
		Task:   apiHandler.NewTaskHandler(taskUC.New(tasks, nil, nil), nil, nil),
		Health: apiHandler.NewHealthHandler(monitor.New(nil, nil, nil, time.Second, nil), nil, nil),
	}

	r := New(handlers, middleware.BearerAuth(issuer, users, nil))
	return &testServer{handler: r.Handler}
}

func (s *testServer) do(method, uri string, body interface{}, headers map[string]string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.Header.SetMethod(method)
	req.SetRequestURI(uri)
	if body != nil {
		payload, _ := json.Marshal(body)
		req.SetBody(payload)
		req.Header.SetContentType("application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	s.handler(ctx)
	return ctx
}

func decode(t *testing.T, ctx *fasthttp.RequestCtx, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), target))
}

func TestFullAgendaFlow(t *testing.T) {
	srv := newTestServer()

	// register
	resp := srv.do(fasthttp.MethodPost, "/register", transport.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret123",
	}, nil)
	require.Equal(t, fasthttp.StatusCreated, resp.Response.StatusCode())

	// login
	resp = srv.do(fasthttp.MethodPost, "/login", transport.LoginRequest{
		Email:    "ana@x.com",
		Password: "secret123",
	}, nil)
	require.Equal(t, fasthttp.StatusOK, resp.Response.StatusCode())

	var login transport.LoginResponse
	decode(t, resp, &login)
	require.NotEmpty(t, login.Token)

	// the token resolves to the registered identity
	authHeader := map[string]string{"Authorization": "Bearer " + login.Token}
	resp = srv.do(fasthttp.MethodGet, "/validar-token", nil, authHeader)
	require.Equal(t, fasthttp.StatusOK, resp.Response.StatusCode())

	var identity domain.User
	decode(t, resp, &identity)
	assert.Equal(t, "ana@x.com", identity.Email)
	require.NotEmpty(t, identity.ID)

	// create a dated task for the account
	resp = srv.do(fasthttp.MethodPost, "/tareas", transport.TaskCreateRequest{
		Name:    "Math HW",
		Subject: "Math",
		Time:    "18:00",
		Date:    "2024-05-01",
		OwnerID: identity.ID,
	}, nil)
	require.Equal(t, fasthttp.StatusCreated, resp.Response.StatusCode())

	// list by owner and date returns exactly that task
	listURI := fmt.Sprintf("/tareas?fecha=2024-05-01&usuario=%s", identity.ID)
	resp = srv.do(fasthttp.MethodGet, listURI, nil, nil)
	require.Equal(t, fasthttp.StatusOK, resp.Response.StatusCode())

	var tasks []domain.Task
	decode(t, resp, &tasks)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Math HW", tasks[0].Name)
	assert.Equal(t, identity.ID, tasks[0].OwnerID)

	// delete it, then the listing is empty
	resp = srv.do(fasthttp.MethodDelete, "/tareas/"+tasks[0].ID, nil, nil)
	require.Equal(t, fasthttp.StatusOK, resp.Response.StatusCode())

	resp = srv.do(fasthttp.MethodGet, listURI, nil, nil)
	require.Equal(t, fasthttp.StatusOK, resp.Response.StatusCode())
	tasks = nil
	decode(t, resp, &tasks)
	assert.Empty(t, tasks)

	// deleting again reports not found
	resp = srv.do(fasthttp.MethodDelete, "/tareas/"+identity.ID, nil, nil)
	assert.Equal(t, fasthttp.StatusNotFound, resp.Response.StatusCode())
}

func TestRegisterDuplicateEmailIsRejected(t *testing.T) {
	srv := newTestServer()

	payload := transport.RegisterRequest{Name: "Ana", Email: "ana@x.com", Password: "secret123"}
	resp := srv.do(fasthttp.MethodPost, "/register", payload, nil)
	require.Equal(t, fasthttp.StatusCreated, resp.Response.StatusCode())

	resp = srv.do(fasthttp.MethodPost, "/register", payload, nil)
	require.Equal(t, fasthttp.StatusBadRequest, resp.Response.StatusCode())

	var body transport.ErrorResponse
	decode(t, resp, &body)
	assert.NotEmpty(t, body.Error)
}

func TestLoginWrongPassword(t *testing.T) {
	srv := newTestServer()

	resp := srv.do(fasthttp.MethodPost, "/register", transport.RegisterRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "secret123",
	}, nil)
	require.Equal(t, fasthttp.StatusCreated, resp.Response.StatusCode())

	resp = srv.do(fasthttp.MethodPost, "/login", transport.LoginRequest{
		Email:    "ana@x.com",
		Password: "wrong-password",
	}, nil)
	require.Equal(t, fasthttp.StatusBadRequest, resp.Response.StatusCode())

	var body transport.ErrorResponse
	decode(t, resp, &body)
	assert.NotEmpty(t, body.Error)
}

func TestTaskCreationWithUnknownOwner(t *testing.T) {
	srv := newTestServer()

	resp := srv.do(fasthttp.MethodPost, "/tareas", transport.TaskCreateRequest{
		Name:    "Math HW",
		Subject: "Math",
		Time:    "18:00",
		Date:    "2024-05-01",
		OwnerID: "no-such-user",
	}, nil)
	require.Equal(t, fasthttp.StatusBadRequest, resp.Response.StatusCode())
}

func TestListTasksRequiresQueryParams(t *testing.T) {
	srv := newTestServer()

	resp := srv.do(fasthttp.MethodGet, "/tareas?fecha=2024-05-01", nil, nil)
	assert.Equal(t, fasthttp.StatusBadRequest, resp.Response.StatusCode())

	resp = srv.do(fasthttp.MethodGet, "/tareas?usuario=abc", nil, nil)
	assert.Equal(t, fasthttp.StatusBadRequest, resp.Response.StatusCode())
}

func TestValidateTokenWithoutHeader(t *testing.T) {
	srv := newTestServer()

	resp := srv.do(fasthttp.MethodGet, "/validar-token", nil, nil)
	assert.Equal(t, fasthttp.StatusForbidden, resp.Response.StatusCode())
}
