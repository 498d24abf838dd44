package inmemory

import (
	"context"
	"sync"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	repo "taskBoard/internal/repository"

	"github.com/google/uuid"
)

// TaskStorage хранит задачи в памяти, порядок выдачи — порядок вставки
type TaskStorage struct {
	storage map[uuid.UUID]*task.Task
	ids     []uuid.UUID
	mtx     *sync.RWMutex
}

func NewTaskStorage() *TaskStorage {
	return &TaskStorage{
		storage: make(map[uuid.UUID]*task.Task),
		ids:     []uuid.UUID{},
		mtx:     &sync.RWMutex{},
	}
}

func (s *TaskStorage) HealthCheck(ctx context.Context) error {
	return nil
}

// Create присваивает идентификатор — id назначает хранилище, ровно один раз
func (s *TaskStorage) Create(ctx context.Context, taskToCreate *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	taskToCreate.ID = uuid.New()

	copied := *taskToCreate
	s.storage[copied.ID] = &copied
	s.ids = append(s.ids, copied.ID)
	return nil
}

// Save — upsert по существующему id
func (s *TaskStorage) Save(ctx context.Context, taskToSave *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[taskToSave.ID]; !ok {
		s.ids = append(s.ids, taskToSave.ID)
	}

	copied := *taskToSave
	s.storage[copied.ID] = &copied
	return nil
}

func (s *TaskStorage) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	taskToGet, ok := s.storage[id]
	if !ok {
		return nil, repo.ErrNotFound
	}

	copied := *taskToGet
	return &copied, nil
}

func (s *TaskStorage) GetAll(ctx context.Context) ([]*task.Task, error) {
	s.mtx.RLock()
	defer s.mtx.RUnlock()

	res := make([]*task.Task, 0, len(s.ids))
	for _, id := range s.ids {
		copied := *s.storage[id]
		res = append(res, &copied)
	}
	return res, nil
}

func (s *TaskStorage) Delete(ctx context.Context, taskToDelete *task.Task) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if _, ok := s.storage[taskToDelete.ID]; !ok {
		logger.Info("Repository: Задача для удаления не найдена")
		return repo.ErrNotFound
	}

	delete(s.storage, taskToDelete.ID)
	for ind, val := range s.ids {
		if val == taskToDelete.ID {
			s.ids = append(s.ids[:ind], s.ids[ind+1:]...)
			break
		}
	}
	return nil
}
