package repository

import (
	"context"

	"github.com/agendaescolar/backend/domain"
)

// TaskFilter narrows List results. OwnerID is required; Date, when set, is
// matched by string equality (not a range).
type TaskFilter struct {
	OwnerID string
	Date    string
}

// TaskRepository persists user-owned tasks. Create enforces that the owner
// exists (domain.ErrInvalidOwner otherwise); Delete reports
// domain.ErrTaskNotFound when nothing was removed.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Delete(ctx context.Context, id string) error
}
