package observability

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogIncident writes err at error level under a fresh correlation id and
// returns that id so it can be shown to the user who hit the failure.
func LogIncident(logger *zap.Logger, err error, msg string, fields ...zap.Field) string {
	id := uuid.NewString()
	all := make([]zap.Field, 0, len(fields)+2)
	all = append(all, zap.String("error_id", id), zap.Error(err))
	all = append(all, fields...)
	logger.Error(msg, all...)
	return id
}
