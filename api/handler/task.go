package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/agendaescolar/backend/api/transport"
	"github.com/agendaescolar/backend/domain"
	"github.com/agendaescolar/backend/pkg/httpcontext"
	"github.com/agendaescolar/backend/repository"
	taskUC "github.com/agendaescolar/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// Create stores a new task for the owner named in the body.
// POST /tareas
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	var req transport.TaskCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	task := &domain.Task{
		Name:    req.Name,
		Subject: req.Subject,
		Time:    req.Time,
		Date:    req.Date,
		OwnerID: req.OwnerID,
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if _, err := h.uc.Create(stdCtx, task); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusCreated, transport.NewMessage("task created successfully"))
}

// ListByDate returns the owner's tasks for one exact date.
// GET /tareas?fecha=&usuario=
func (h *TaskHandler) ListByDate(ctx *fasthttp.RequestCtx) {
	fecha := string(ctx.QueryArgs().Peek("fecha"))
	usuario := string(ctx.QueryArgs().Peek("usuario"))
	if fecha == "" || usuario == "" {
		h.respondError(ctx, domain.NewError(domain.ErrCodeInvalid, "missing fecha or usuario parameter"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.List(stdCtx, repository.TaskFilter{OwnerID: usuario, Date: fecha})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondTasks(ctx, tasks)
}

// ListByOwner returns every task of one owner.
// GET /tareas/{usuario}
func (h *TaskHandler) ListByOwner(ctx *fasthttp.RequestCtx) {
	usuario, _ := ctx.UserValue("usuario").(string)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	tasks, err := h.uc.List(stdCtx, repository.TaskFilter{OwnerID: usuario})
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondTasks(ctx, tasks)
}

// Delete removes a task by id.
// DELETE /tareas/{id}
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	id, _ := ctx.UserValue("id").(string)
	if id == "" {
		h.respondError(ctx, domain.NewError(domain.ErrCodeInvalid, "missing task id"))
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Delete(stdCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondJSON(ctx, http.StatusOK, transport.NewMessage("task deleted successfully"))
}

func (h *TaskHandler) respondTasks(ctx *fasthttp.RequestCtx, tasks []domain.Task) {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	h.respondJSON(ctx, http.StatusOK, tasks)
}
