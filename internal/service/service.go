// Package service is the thin layer between handlers and the data layer. It
// validates required input, turns a missing parent entity into NotFound, and
// delegates everything else to repositories and coordinators.
package service

import (
	"context"
	"strings"

	"clubhub-backend/internal/apperr"
	"clubhub-backend/internal/logger"

	"go.uber.org/zap"
)

type field struct {
	name  string
	value string
}

// required fails with Validation naming the first blank field.
func required(op string, fields ...field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperr.Validation(op, "%s is required", f.name)
		}
	}
	return nil
}

// notBlank rejects an update that would blank a required column.
func notBlank(op, name string, v *string) error {
	if v != nil && strings.TrimSpace(*v) == "" {
		return apperr.Validation(op, "%s cannot be empty", name)
	}
	return nil
}

// logFailure records a failed coordinated operation. Domain failures are
// expected traffic and go to warn; anything else is an error.
func logFailure(ctx context.Context, op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.String("op", op), zap.Error(err))
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindNotFound, apperr.KindConflict:
		logger.From(ctx).Warn("operation rejected", fields...)
	default:
		logger.From(ctx).Error("operation failed", fields...)
	}
}
