package dto_test

import (
	"encoding/json"
	"taskBoard/internal/handlers/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLocalDateTime тестирует формат даты-времени без зоны
func TestLocalDateTime(t *testing.T) {
	t.Run("marshal drops the zone", func(t *testing.T) {
		value := dto.LocalDateTime{time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)}

		raw, err := json.Marshal(value)
		require.NoError(t, err)
		assert.Equal(t, `"2025-06-01T10:30:00"`, string(raw))
	})

	t.Run("unmarshal accepts plain and fractional seconds", func(t *testing.T) {
		var plain dto.LocalDateTime
		require.NoError(t, json.Unmarshal([]byte(`"2025-06-01T10:30:00"`), &plain))
		assert.Equal(t, 10, plain.Hour())

		var fractional dto.LocalDateTime
		require.NoError(t, json.Unmarshal([]byte(`"2025-06-01T10:30:00.123456"`), &fractional))
		assert.Equal(t, 30, fractional.Minute())
	})

	t.Run("unmarshal tolerates null", func(t *testing.T) {
		var value dto.LocalDateTime
		require.NoError(t, json.Unmarshal([]byte(`null`), &value))
		assert.True(t, value.IsZero())
	})

	t.Run("unmarshal rejects zoned timestamps", func(t *testing.T) {
		var value dto.LocalDateTime
		assert.Error(t, json.Unmarshal([]byte(`"2025-06-01T10:30:00Z"`), &value))
	})
}
