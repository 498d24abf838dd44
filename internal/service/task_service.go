package service

import (
	"context"
	"errors"
	"fmt"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	repo "taskBoard/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// здесь ошибки хранилища превращаются в доменные

type TaskService struct {
	repo TaskRepository
}

func NewTaskService(repo TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) HealthCheck(ctx context.Context) error {
	if err := s.repo.HealthCheck(ctx); err != nil {
		return fmt.Errorf("проверка здоровья сервиса: %w", err)
	}
	return nil
}

func (s *TaskService) CreateTask(ctx context.Context, candidate *task.Task) (*task.Task, error) {
	if candidate == nil {
		return nil, NewInvalidArgument("task", "кандидат на создание не передан")
	}

	if err := s.repo.Create(ctx, candidate); err != nil {
		return nil, fmt.Errorf("создание задачи: %w", err)
	}

	logger.Info("Service: Задача создана", zap.String("task_id", candidate.ID.String()))
	return candidate, nil
}

// resolveTask — общий путь parse/not-found для get, update и delete
func (s *TaskService) resolveTask(ctx context.Context, idText string) (*task.Task, error) {
	id, err := uuid.Parse(idText)
	if err != nil {
		logger.Warn("Service: Некорректный идентификатор", zap.String("raw_id", idText))
		return nil, NewMalformedID(idText)
	}

	taskFound, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			logger.Info("Service: Задача не найдена", zap.String("task_id", id.String()))
			return nil, NewNotFound(id.String())
		}
		return nil, fmt.Errorf("получение задачи: %w", err)
	}
	return taskFound, nil
}

func (s *TaskService) GetTaskByID(ctx context.Context, idText string) (*task.Task, error) {
	return s.resolveTask(ctx, idText)
}

func (s *TaskService) GetAllTasks(ctx context.Context) ([]*task.Task, error) {
	tasks, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("получение задач: %w", err)
	}
	return tasks, nil
}

// UpdateTaskStatus разрешает любой переход между значениями перечисления,
// включая повтор того же статуса
func (s *TaskService) UpdateTaskStatus(ctx context.Context, idText string, newStatus task.Status) (*task.Task, error) {
	if !newStatus.Valid() {
		return nil, NewInvalidArgument("status", fmt.Sprintf("значение %q вне перечисления", newStatus))
	}

	taskToUpdate, err := s.resolveTask(ctx, idText)
	if err != nil {
		return nil, err
	}

	taskToUpdate.Status = newStatus
	if err := s.repo.Save(ctx, taskToUpdate); err != nil {
		return nil, fmt.Errorf("сохранение задачи: %w", err)
	}

	logger.Info("Service: Статус обновлён",
		zap.String("task_id", taskToUpdate.ID.String()),
		zap.String("status", string(newStatus)))
	return taskToUpdate, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, idText string) error {
	taskToDelete, err := s.resolveTask(ctx, idText)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, taskToDelete); err != nil {
		// гонка: задачу успели удалить между чтением и удалением
		if errors.Is(err, repo.ErrNotFound) {
			return NewNotFound(taskToDelete.ID.String())
		}
		return fmt.Errorf("удаление задачи: %w", err)
	}

	logger.Info("Service: Задача удалена", zap.String("task_id", taskToDelete.ID.String()))
	return nil
}
