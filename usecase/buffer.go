package usecase

import (
	"context"

	"github.com/agendaescolar/backend/domain"
)

// Operation names recognized by the write buffer.
const (
	OperationCreate = "create"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the offline write buffer so use cases stay
// storage-agnostic.
type OperationBuffer interface {
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
}
