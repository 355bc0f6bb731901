package task

import (
	"context"
	"sync"
)

// MemoryRepo is the sole source of truth: an in-process map keyed by task ID.
// Nothing is persisted; a restart starts over from the seed records.
type MemoryRepo struct {
	mu    sync.RWMutex
	tasks map[string]Task
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		tasks: make(map[string]Task),
	}
}

func (r *MemoryRepo) List(ctx context.Context) ([]Task, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (r *MemoryRepo) Get(ctx context.Context, id string) (Task, error) {
	_ = ctx

	r.mu.RLock()
	t, ok := r.tasks[id]
	r.mu.RUnlock()

	if !ok {
		return Task{}, ErrNotFound
	}
	return t, nil
}

func (r *MemoryRepo) Create(ctx context.Context, title, description, priority string, dueDate *string) (Task, error) {
	_ = ctx

	t := NewTask(title, description, priority, dueDate)

	r.mu.Lock()
	defer r.mu.Unlock()

	// Eight hex characters leave a real, if tiny, collision window. Re-roll
	// rather than clobber an existing record.
	for {
		if _, taken := r.tasks[t.ID]; !taken {
			break
		}
		t.ID = NewID()
	}

	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemoryRepo) Update(ctx context.Context, id string, p Patch) (Task, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}

	t.Apply(p)
	r.tasks[id] = t
	return t, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id string) (Task, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.tasks[id]
	if !ok {
		return Task{}, ErrNotFound
	}
	delete(r.tasks, id)
	return t, nil
}

// Seed inserts records verbatim, keeping whatever IDs they carry.
func (r *MemoryRepo) Seed(ctx context.Context, tasks []Task) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tasks {
		r.tasks[t.ID] = t
	}
	return nil
}
