package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/agendaescolar/backend/domain"
	"github.com/agendaescolar/backend/repository"
)

// TaskRepository is an in-memory repository.TaskRepository. It checks task
// ownership against the user store at creation time, mirroring the Postgres
// foreign-key constraint.
type TaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]domain.Task
	seq   int
	order map[string]int
	users *UserRepository
}

// NewTaskRepository creates an empty in-memory task store validating owners
// against users.
func NewTaskRepository(users *UserRepository) *TaskRepository {
	return &TaskRepository{
		tasks: make(map[string]domain.Task),
		order: make(map[string]int),
		users: users,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if task == nil {
		return nil, domain.ErrInvalidPayload
	}
	if r.users != nil && !r.users.Exists(task.OwnerID) {
		return nil, domain.ErrInvalidOwner
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	r.seq++
	r.order[task.ID] = r.seq
	r.tasks[task.ID] = *task
	return task, nil
}

func (r *TaskRepository) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tasks []domain.Task
	for _, task := range r.tasks {
		if task.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Date != "" && task.Date != filter.Date {
			continue
		}
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return r.order[tasks[i].ID] < r.order[tasks[j].ID]
	})
	return tasks, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return domain.ErrTaskNotFound
	}
	delete(r.tasks, id)
	delete(r.order, id)
	return nil
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
