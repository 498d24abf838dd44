package service

import "fmt"

const (
	CodeNotFound        = "NOT_FOUND"
	CodeMalformedID     = "MALFORMED_ID"
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidArgument = "INVALID_ARGUMENT"
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

type Detail struct {
	Key     string
	Payload any
}

func ToDetail(key string, payload any) Detail {
	return Detail{Key: key, Payload: payload}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}
	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}
	return busErr
}

// NewNotFound несёт запрошенный идентификатор
func NewNotFound(id string) *BusinessError {
	return NewBusinessError(
		CodeNotFound,
		fmt.Sprintf("задача %s не найдена", id),
		ToDetail("id", id),
	)
}

func NewMalformedID(raw string) *BusinessError {
	return NewBusinessError(
		CodeMalformedID,
		fmt.Sprintf("идентификатор %q не является корректным UUID", raw),
		ToDetail("id", raw),
	)
}

func NewInvalidArgument(name, reason string) *BusinessError {
	return NewBusinessError(
		CodeInvalidArgument,
		fmt.Sprintf("неверный аргумент '%s': %s", name, reason),
		ToDetail("argument", name),
		ToDetail("reason", reason),
	)
}
