package dto

import (
	"encoding/json"
	"fmt"
	"taskBoard/internal/models/task"
	"time"

	"github.com/google/uuid"
)

// dueDateTime на проводе — локальная дата-время без зоны
const LocalDateTimeLayout = "2006-01-02T15:04:05"

type LocalDateTime struct {
	time.Time
}

func (t LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(LocalDateTimeLayout))
}

func (t *LocalDateTime) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("разбор dueDateTime: %w", err)
	}

	parsed, err := time.Parse(LocalDateTimeLayout, raw)
	if err != nil {
		// допускаем дробные секунды
		parsed, err = time.Parse(LocalDateTimeLayout+".999999999", raw)
		if err != nil {
			return fmt.Errorf("разбор dueDateTime: %w", err)
		}
	}
	t.Time = parsed
	return nil
}

type CreateTaskRequest struct {
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Status      string        `json:"status"`
	DueDateTime LocalDateTime `json:"dueDateTime"`
}

type UpdateStatusRequest struct {
	Status *string `json:"status"`
}

type TaskResponse struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	Status      string        `json:"status"`
	DueDateTime LocalDateTime `json:"dueDateTime"`
}

func FromTask(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDateTime: LocalDateTime{t.DueDateTime},
	}
}

func FromTaskList(tasks []*task.Task) []TaskResponse {
	result := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		result[i] = FromTask(t)
	}
	return result
}
