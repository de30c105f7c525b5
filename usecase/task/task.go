package task

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/agendaescolar/backend/domain"
	"github.com/agendaescolar/backend/repository"
	"github.com/agendaescolar/backend/usecase"
)

var (
	errMissingFields = domain.NewError(domain.ErrCodeInvalid, "all fields are required")
	errMissingOwner  = domain.NewError(domain.ErrCodeInvalid, "missing owner id")
)

type UseCase struct {
	tasks  repository.TaskRepository
	buffer usecase.OperationBuffer
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		buffer: buffer,
		logger: logger,
	}
}

// Create stores a new task. Owner existence is enforced by the repository;
// infrastructure failures fall back to the offline buffer.
func (uc *UseCase) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil || task.Name == "" || task.Subject == "" || task.Time == "" || task.Date == "" || task.OwnerID == "" {
		return nil, errMissingFields
	}

	created, err := uc.tasks.Create(ctx, task)
	if err != nil {
		var dErr *domain.Error
		if errors.As(err, &dErr) {
			return nil, err
		}
		if uc.shouldBuffer(ctx, usecase.OperationCreate, task) {
			return task, nil
		}
		return nil, err
	}
	return created, nil
}

// List returns the owner's tasks, optionally narrowed to an exact date.
func (uc *UseCase) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	if filter.OwnerID == "" {
		return nil, errMissingOwner
	}
	return uc.tasks.List(ctx, filter)
}

// Delete removes a task by id. A missing task is reported as not found, not
// buffered.
func (uc *UseCase) Delete(ctx context.Context, id string) error {
	if err := uc.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return err
		}
		if uc.shouldBuffer(ctx, usecase.OperationDelete, &domain.Task{ID: id}) {
			return nil
		}
		return err
	}
	return nil
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, task *domain.Task) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferTask(ctx, operation, task); err != nil {
		uc.logger.Error("failed to buffer task operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("task operation buffered", zap.String("operation", operation))
	return true
}
