package handlers

import (
	"errors"
	"net/http"
	"taskBoard/internal/logger"
	"taskBoard/internal/service"

	"go.uber.org/zap"
)

// handleServiceError переводит доменные ошибки в коды ответа;
// всё неизвестное — отказ хранилища, 500 и запись в лог
func handleServiceError(w http.ResponseWriter, err error, operation string) {
	var busErr *service.BusinessError
	if errors.As(err, &busErr) {
		statusCode := mapBusinessErrorToHTTP(busErr.Code)

		logger.Warn("HTTP: Бизнес-ошибка",
			zap.String("operation", operation),
			zap.String("error_code", busErr.Code),
			zap.Int("http_status", statusCode))

		responseWithJSON(w, statusCode,
			toPayload("error", busErr.Code),
			toPayload("message", busErr.Message),
			toPayload("details", busErr.Details),
		)
		return
	}

	logger.Error("HTTP: Ошибка хранилища", err, zap.String("operation", operation))
	responseWithError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
}

func mapBusinessErrorToHTTP(code string) int {
	switch code {
	case service.CodeNotFound:
		return http.StatusNotFound
	case service.CodeMalformedID, service.CodeValidation, service.CodeInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusBadRequest
	}
}
