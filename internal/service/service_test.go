package service_test

import (
	"context"
	"errors"
	"taskBoard/internal/models/task"
	repo "taskBoard/internal/repository"
	"taskBoard/internal/service"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTaskRepository - мок шлюза хранения
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTaskRepository) Create(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) Save(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*task.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*task.Task), args.Error(1)
}

func (m *MockTaskRepository) GetAll(ctx context.Context) ([]*task.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*task.Task), args.Error(1)
}

func (m *MockTaskRepository) Delete(ctx context.Context, t *task.Task) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

var _ service.TaskRepository = (*MockTaskRepository)(nil)

func strPtr(s string) *string {
	return &s
}

// TestTaskService_CreateTask тестирует создание задачи
func TestTaskService_CreateTask(t *testing.T) {
	ctx := context.Background()
	dueTime := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success - candidate passes through", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		assignedID := uuid.New()

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(tt *task.Task) bool {
			return tt.Title == "Test Task" && tt.Status == task.StatusPending
		})).Run(func(args mock.Arguments) {
			// id назначает хранилище
			args.Get(1).(*task.Task).ID = assignedID
		}).Return(nil)

		svc := service.NewTaskService(mockRepo)
		result, err := svc.CreateTask(ctx, &task.Task{
			Title:       "Test Task",
			Description: strPtr("Test Description"),
			Status:      task.StatusPending,
			DueDateTime: dueTime,
		})

		require.NoError(t, err)
		assert.Equal(t, assignedID, result.ID)
		assert.Equal(t, "Test Task", result.Title)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - nil candidate", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.CreateTask(ctx, nil)

		require.Error(t, err)
		var busErr *service.BusinessError
		require.ErrorAs(t, err, &busErr)
		assert.Equal(t, service.CodeInvalidArgument, busErr.Code)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("error - storage failure", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))

		svc := service.NewTaskService(mockRepo)
		_, err := svc.CreateTask(ctx, &task.Task{Title: "Test", Status: task.StatusPending, DueDateTime: dueTime})

		require.Error(t, err)
		var busErr *service.BusinessError
		assert.False(t, errors.As(err, &busErr), "отказ хранилища не должен становиться бизнес-ошибкой")
		mockRepo.AssertExpectations(t)
	})
}

// TestTaskService_GetTaskByID тестирует получение задачи по идентификатору
func TestTaskService_GetTaskByID(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New()

	t.Run("success - existing task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		existing := &task.Task{
			ID:          taskID,
			Title:       "Test Task",
			Status:      task.StatusInProgress,
			DueDateTime: time.Now().Add(24 * time.Hour),
		}
		mockRepo.On("GetByID", mock.Anything, taskID).Return(existing, nil)

		svc := service.NewTaskService(mockRepo)
		result, err := svc.GetTaskByID(ctx, taskID.String())

		require.NoError(t, err)
		assert.Equal(t, taskID, result.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - malformed id never reaches storage", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.GetTaskByID(ctx, "not-a-uuid")

		require.Error(t, err)
		var busErr *service.BusinessError
		require.ErrorAs(t, err, &busErr)
		assert.Equal(t, service.CodeMalformedID, busErr.Code)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("error - not found carries requested id", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetByID", mock.Anything, taskID).Return(nil, repo.ErrNotFound)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.GetTaskByID(ctx, taskID.String())

		require.Error(t, err)
		var busErr *service.BusinessError
		require.ErrorAs(t, err, &busErr)
		assert.Equal(t, service.CodeNotFound, busErr.Code)
		assert.Equal(t, taskID.String(), busErr.Details["id"])
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - storage failure is not a business error", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetByID", mock.Anything, taskID).Return(nil, errors.New("connection refused"))

		svc := service.NewTaskService(mockRepo)
		_, err := svc.GetTaskByID(ctx, taskID.String())

		require.Error(t, err)
		var busErr *service.BusinessError
		assert.False(t, errors.As(err, &busErr))
		mockRepo.AssertExpectations(t)
	})
}

// TestTaskService_GetAllTasks тестирует получение всех задач
func TestTaskService_GetAllTasks(t *testing.T) {
	ctx := context.Background()

	t.Run("success - no filtering", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		tasks := []*task.Task{
			{ID: uuid.New(), Title: "Task 1", Status: task.StatusPending},
			{ID: uuid.New(), Title: "Task 2", Status: task.StatusCompleted},
		}
		mockRepo.On("GetAll", mock.Anything).Return(tasks, nil)

		svc := service.NewTaskService(mockRepo)
		result, err := svc.GetAllTasks(ctx)

		require.NoError(t, err)
		assert.Len(t, result, 2)
		mockRepo.AssertExpectations(t)
	})
}

// TestTaskService_UpdateTaskStatus тестирует обновление статуса
func TestTaskService_UpdateTaskStatus(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New()

	tests := []struct {
		name       string
		fromStatus task.Status
		toStatus   task.Status
	}{
		{name: "pending to completed", fromStatus: task.StatusPending, toStatus: task.StatusCompleted},
		{name: "completed back to pending", fromStatus: task.StatusCompleted, toStatus: task.StatusPending},
		{name: "no-op same status", fromStatus: task.StatusInProgress, toStatus: task.StatusInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			existing := &task.Task{
				ID:          taskID,
				Title:       "Test Task",
				Status:      tt.fromStatus,
				DueDateTime: time.Now().Add(24 * time.Hour),
			}

			mockRepo.On("GetByID", mock.Anything, taskID).Return(existing, nil)
			mockRepo.On("Save", mock.Anything, mock.MatchedBy(func(saved *task.Task) bool {
				return saved.ID == taskID && saved.Status == tt.toStatus && saved.Title == "Test Task"
			})).Return(nil)

			svc := service.NewTaskService(mockRepo)
			result, err := svc.UpdateTaskStatus(ctx, taskID.String(), tt.toStatus)

			require.NoError(t, err)
			assert.Equal(t, tt.toStatus, result.Status)
			mockRepo.AssertExpectations(t)
		})
	}

	t.Run("error - status outside enumeration", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.UpdateTaskStatus(ctx, taskID.String(), task.Status("ARCHIVED"))

		require.Error(t, err)
		var busErr *service.BusinessError
		require.ErrorAs(t, err, &busErr)
		assert.Equal(t, service.CodeInvalidArgument, busErr.Code)
		mockRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("error - malformed id", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.UpdateTaskStatus(ctx, "42", task.StatusCompleted)

		require.Error(t, err)
		var busErr *service.BusinessError
		require.ErrorAs(t, err, &busErr)
		assert.Equal(t, service.CodeMalformedID, busErr.Code)
	})

	t.Run("error - not found", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetByID", mock.Anything, taskID).Return(nil, repo.ErrNotFound)

		svc := service.NewTaskService(mockRepo)
		_, err := svc.UpdateTaskStatus(ctx, taskID.String(), task.StatusCompleted)

		require.Error(t, err)
		var busErr *service.BusinessError
		require.ErrorAs(t, err, &busErr)
		assert.Equal(t, service.CodeNotFound, busErr.Code)
		mockRepo.AssertNotCalled(t, "Save")
	})
}

// TestTaskService_DeleteTask тестирует удаление задачи
func TestTaskService_DeleteTask(t *testing.T) {
	ctx := context.Background()
	taskID := uuid.New()

	t.Run("success - delete existing task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		existing := &task.Task{ID: taskID, Title: "Test Task", Status: task.StatusPending}

		mockRepo.On("GetByID", mock.Anything, taskID).Return(existing, nil)
		mockRepo.On("Delete", mock.Anything, mock.MatchedBy(func(tt *task.Task) bool {
			return tt.ID == taskID
		})).Return(nil)

		svc := service.NewTaskService(mockRepo)
		err := svc.DeleteTask(ctx, taskID.String())

		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - repeat delete yields not found", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("GetByID", mock.Anything, taskID).Return(nil, repo.ErrNotFound)

		svc := service.NewTaskService(mockRepo)
		err := svc.DeleteTask(ctx, taskID.String())

		require.Error(t, err)
		var busErr *service.BusinessError
		require.ErrorAs(t, err, &busErr)
		assert.Equal(t, service.CodeNotFound, busErr.Code)
		mockRepo.AssertNotCalled(t, "Delete")
	})

	t.Run("error - race with concurrent delete", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		existing := &task.Task{ID: taskID, Title: "Test Task", Status: task.StatusPending}

		mockRepo.On("GetByID", mock.Anything, taskID).Return(existing, nil)
		mockRepo.On("Delete", mock.Anything, mock.Anything).Return(repo.ErrNotFound)

		svc := service.NewTaskService(mockRepo)
		err := svc.DeleteTask(ctx, taskID.String())

		require.Error(t, err)
		var busErr *service.BusinessError
		require.ErrorAs(t, err, &busErr)
		assert.Equal(t, service.CodeNotFound, busErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

// TestTaskService_HealthCheck тестирует проверку здоровья
func TestTaskService_HealthCheck(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("HealthCheck", mock.Anything).Return(nil)

		svc := service.NewTaskService(mockRepo)
		assert.NoError(t, svc.HealthCheck(ctx))
		mockRepo.AssertExpectations(t)
	})

	t.Run("error - storage is down", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("HealthCheck", mock.Anything).Return(errors.New("db connection failed"))

		svc := service.NewTaskService(mockRepo)
		err := svc.HealthCheck(ctx)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "проверка здоровья сервиса")
		mockRepo.AssertExpectations(t)
	})
}
