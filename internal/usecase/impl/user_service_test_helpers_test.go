package impl

import (
	"io"
	"log/slog"
	"time"

	"keycard/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestUser(email, record string) *entity.User {
	now := time.Now()

	return &entity.User{
		ID:             uuid.Must(uuid.NewV7()),
		Email:          email,
		PasswordRecord: record,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func strPtr(s string) *string {
	return &s
}
