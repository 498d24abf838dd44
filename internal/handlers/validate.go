package handlers

import (
	"mime"
	"net/http"
	"strings"
	"taskBoard/internal/handlers/dto"
	"taskBoard/internal/models/task"
)

func checkContentType(r *http.Request, target string) bool {
	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == target
}

type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// validateCreateTask проверяет структуру тела до вызова сервиса
func validateCreateTask(req dto.CreateTaskRequest) []FieldViolation {
	violations := []FieldViolation{}

	if strings.TrimSpace(req.Title) == "" {
		violations = append(violations, FieldViolation{Field: "title", Reason: "обязательное поле, не может быть пустым"})
	}

	if req.Status == "" {
		violations = append(violations, FieldViolation{Field: "status", Reason: "обязательное поле"})
	} else if _, err := task.ParseStatus(req.Status); err != nil {
		violations = append(violations, FieldViolation{Field: "status", Reason: "допустимы только PENDING, IN_PROGRESS, COMPLETED"})
	}

	if req.DueDateTime.IsZero() {
		violations = append(violations, FieldViolation{Field: "dueDateTime", Reason: "обязательное поле"})
	}

	return violations
}

func validateUpdateStatus(req dto.UpdateStatusRequest) []FieldViolation {
	violations := []FieldViolation{}

	if req.Status == nil || *req.Status == "" {
		violations = append(violations, FieldViolation{Field: "status", Reason: "обязательное поле"})
	} else if _, err := task.ParseStatus(*req.Status); err != nil {
		violations = append(violations, FieldViolation{Field: "status", Reason: "допустимы только PENDING, IN_PROGRESS, COMPLETED"})
	}

	return violations
}
