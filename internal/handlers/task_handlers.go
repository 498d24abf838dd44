package handlers

import (
	"encoding/json"
	"net/http"
	"taskBoard/internal/handlers/dto"
	"taskBoard/internal/logger"
	"taskBoard/internal/models/task"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TaskHandler struct {
	TaskService Service
}

func NewTaskHandler(taskService Service) TaskHandler {
	return TaskHandler{TaskService: taskService}
}

func (h *TaskHandler) PostTask(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN: Создание задачи")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	var request dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: Ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса")
		return
	}
	defer r.Body.Close()

	if violations := validateCreateTask(request); len(violations) > 0 {
		logger.Warn("HTTP: Ошибка валидации",
			zap.Int("violations", len(violations)),
			zap.String("client_ip", r.RemoteAddr))
		responseWithJSON(w, http.StatusBadRequest,
			toPayload("error", "VALIDATION_ERROR"),
			toPayload("message", "неверные данные запроса"),
			toPayload("details", violations),
		)
		return
	}

	// статус уже проверен валидацией
	status, _ := task.ParseStatus(request.Status)
	candidate := &task.Task{
		Title:       request.Title,
		Description: request.Description,
		Status:      status,
		DueDateTime: request.DueDateTime.Time,
	}

	created, err := h.TaskService.CreateTask(r.Context(), candidate)
	if err != nil {
		handleServiceError(w, err, "create_task")
		return
	}

	logger.Info("HTTP_OUT: Задача создана",
		zap.String("task_id", created.ID.String()),
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusCreated))

	writeEntity(w, http.StatusCreated, dto.FromTask(created))
}

func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN: Получение всех задач")

	tasks, err := h.TaskService.GetAllTasks(r.Context())
	if err != nil {
		handleServiceError(w, err, "get_all_tasks")
		return
	}

	logger.Info("HTTP_OUT: Задачи получены",
		zap.Int("count", len(tasks)),
		zap.Duration("ms", time.Since(start)))

	writeEntity(w, http.StatusOK, dto.FromTaskList(tasks))
}

func (h *TaskHandler) GetTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN: Получение задачи")

	idParam := chi.URLParam(r, "id")

	taskFound, err := h.TaskService.GetTaskByID(r.Context(), idParam)
	if err != nil {
		handleServiceError(w, err, "get_task")
		return
	}

	logger.Info("HTTP_OUT: Задача получена",
		zap.String("task_id", taskFound.ID.String()),
		zap.Duration("ms", time.Since(start)))

	writeEntity(w, http.StatusOK, dto.FromTask(taskFound))
}

func (h *TaskHandler) UpdateTaskStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN: Обновление статуса")

	if !checkContentType(r, "application/json") {
		logger.Warn("HTTP: Неверный тип контента",
			zap.String("received", r.Header.Get("Content-Type")),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusUnsupportedMediaType, "Content-Type должен быть application/json")
		return
	}

	idParam := chi.URLParam(r, "id")

	var request dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		logger.Warn("HTTP: Ошибка чтения JSON",
			zap.Error(err),
			zap.String("client_ip", r.RemoteAddr))
		responseWithError(w, http.StatusBadRequest, "неверное тело запроса")
		return
	}
	defer r.Body.Close()

	if violations := validateUpdateStatus(request); len(violations) > 0 {
		logger.Warn("HTTP: Ошибка валидации",
			zap.Int("violations", len(violations)),
			zap.String("client_ip", r.RemoteAddr))
		responseWithJSON(w, http.StatusBadRequest,
			toPayload("error", "VALIDATION_ERROR"),
			toPayload("message", "неверные данные запроса"),
			toPayload("details", violations),
		)
		return
	}

	newStatus, _ := task.ParseStatus(*request.Status)

	updated, err := h.TaskService.UpdateTaskStatus(r.Context(), idParam, newStatus)
	if err != nil {
		handleServiceError(w, err, "update_task_status")
		return
	}

	logger.Info("HTTP_OUT: Статус обновлён",
		zap.String("task_id", updated.ID.String()),
		zap.String("status", string(updated.Status)),
		zap.Duration("ms", time.Since(start)))

	writeEntity(w, http.StatusOK, dto.FromTask(updated))
}

func (h *TaskHandler) DeleteTaskByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	logger.HttpRequestInfo(r, "HTTP_IN: Удаление задачи")

	idParam := chi.URLParam(r, "id")

	if err := h.TaskService.DeleteTask(r.Context(), idParam); err != nil {
		handleServiceError(w, err, "delete_task")
		return
	}

	logger.Info("HTTP_OUT: Задача удалена",
		zap.Duration("ms", time.Since(start)),
		zap.Int("http_status", http.StatusNoContent))

	w.WriteHeader(http.StatusNoContent)
}

func (h *TaskHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	logger.HttpRequestInfo(r, "HTTP: Health check")

	if err := h.TaskService.HealthCheck(r.Context()); err != nil {
		responseWithJSON(w, http.StatusServiceUnavailable,
			toPayload("status", "unavailable"),
			toPayload("service", "task-board"),
		)
		return
	}

	responseWithJSON(w, http.StatusOK,
		toPayload("status", "ok"),
		toPayload("service", "task-board"),
	)
}
