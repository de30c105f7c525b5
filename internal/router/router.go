package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/agendaescolar/backend/api/handler"
)

type Handlers struct {
	Auth   *apiHandler.AuthHandler
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Account routes; these bypass the auth gate.
	r.POST("/register", handlers.Auth.Register)
	r.POST("/login", handlers.Auth.Login)

	// Protected routes
	r.GET("/validar-token", authMiddleware(handlers.Auth.ValidateToken))

	// Task routes; owner is client-supplied by contract.
	r.POST("/tareas", handlers.Task.Create)
	r.GET("/tareas", handlers.Task.ListByDate)
	r.GET("/tareas/{usuario}", handlers.Task.ListByOwner)
	r.DELETE("/tareas/{id}", handlers.Task.Delete)

	return r
}
