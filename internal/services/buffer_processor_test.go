package services

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agendaescolar/backend/domain"
	"github.com/agendaescolar/backend/internal/infrastructure/buffer"
	"github.com/agendaescolar/backend/repository"
	"github.com/agendaescolar/backend/repository/memory"
	"github.com/agendaescolar/backend/usecase"
)

type staticHealth bool

func (h staticHealth) IsOnline() bool { return bool(h) }

func newProcessorFixtures(t *testing.T, online bool) (*BufferProcessor, *memory.TaskRepository, *memory.UserRepository) {
	t.Helper()

	store, err := buffer.Open(filepath.Join(t.TempDir(), "buffer.db"), "buffer")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	users := memory.NewUserRepository()
	tasks := memory.NewTaskRepository(users)

	bp := NewBufferProcessor(store, staticHealth(online), tasks, nil, ProcessorConfig{
		Interval:   time.Minute,
		BatchSize:  10,
		MaxRetries: 2,
	})
	return bp, tasks, users
}

func TestBufferOperationProcessesImmediatelyWhenOnline(t *testing.T) {
	bp, tasks, users := newProcessorFixtures(t, true)
	bridge := NewBufferBridge(bp)

	ctx := context.Background()
	owner, err := users.Create(ctx, &domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"})
	require.NoError(t, err)

	task := &domain.Task{ID: "t1", Name: "Math HW", Subject: "Math", Time: "18:00", Date: "2024-05-01", OwnerID: owner.ID}
	require.NoError(t, bridge.BufferTask(ctx, usecase.OperationCreate, task))

	stored, err := tasks.List(ctx, repository.TaskFilter{OwnerID: owner.ID})
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "Math HW", stored[0].Name)
	assert.Equal(t, 0, bp.Size())
}

func TestDrainReplaysBufferedWrites(t *testing.T) {
	bp, tasks, users := newProcessorFixtures(t, false)
	bridge := NewBufferBridge(bp)

	ctx := context.Background()
	owner, err := users.Create(ctx, &domain.User{Name: "Ana", Email: "ana@x.com", PasswordHash: "hash"})
	require.NoError(t, err)

	task := &domain.Task{ID: "t1", Name: "Math HW", Subject: "Math", Time: "18:00", Date: "2024-05-01", OwnerID: owner.ID}
	require.NoError(t, bridge.BufferTask(ctx, usecase.OperationCreate, task))
	assert.Equal(t, 1, bp.Size())

	// offline: drain is a no-op
	require.NoError(t, bp.Drain(ctx))
	assert.Equal(t, 1, bp.Size())

	// back online: the buffered create lands in the repository
	bp.monitor = staticHealth(true)
	require.NoError(t, bp.Drain(ctx))
	assert.Equal(t, 0, bp.Size())

	stored, err := tasks.List(ctx, repository.TaskFilter{OwnerID: owner.ID})
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestDrainDropsItemAfterMaxRetries(t *testing.T) {
	bp, _, _ := newProcessorFixtures(t, true)
	bridge := NewBufferBridge(bp)

	ctx := context.Background()

	// owner never registered, so immediate processing and every replay
	// attempt fail and the operation lands in the buffer
	task := &domain.Task{ID: "t1", Name: "Math HW", Subject: "Math", Time: "18:00", Date: "2024-05-01", OwnerID: "ghost"}
	require.NoError(t, bridge.BufferTask(ctx, usecase.OperationCreate, task))
	require.Equal(t, 1, bp.Size())

	require.NoError(t, bp.Drain(ctx))
	assert.Equal(t, 1, bp.Size(), "first failure requeues")

	require.NoError(t, bp.Drain(ctx))
	assert.Equal(t, 0, bp.Size(), "second failure exhausts retries")
}
