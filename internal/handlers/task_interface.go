package handlers

import (
	"context"
	"taskBoard/internal/models/task"
)

type Service interface {
	HealthCheck(ctx context.Context) error
	CreateTask(ctx context.Context, candidate *task.Task) (*task.Task, error)
	GetTaskByID(ctx context.Context, idText string) (*task.Task, error)
	GetAllTasks(ctx context.Context) ([]*task.Task, error)
	UpdateTaskStatus(ctx context.Context, idText string, newStatus task.Status) (*task.Task, error)
	DeleteTask(ctx context.Context, idText string) error
}
