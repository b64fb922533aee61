package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/simcard_ledger/internal/core/domain"
	"github.com/SscSPs/simcard_ledger/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	clock    func() time.Time
	location *time.Location
}

// ServiceOption is a functional option shared by the ledger services
type ServiceOption func(*BaseService)

// WithClock overrides the time source used for stamping records.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.clock = clock
	}
}

// WithLocation sets the business time zone records are stamped in.
func WithLocation(loc *time.Location) ServiceOption {
	return func(s *BaseService) {
		s.location = loc
	}
}

func newBaseService(options []ServiceOption) BaseService {
	base := BaseService{clock: time.Now, location: time.Local}
	for _, option := range options {
		option(&base)
	}
	if base.clock == nil {
		base.clock = time.Now
	}
	if base.location == nil {
		base.location = time.Local
	}
	return base
}

// Timestamp returns the current time as a sortable YYYY-MM-DD HH:MM:SS string.
func (s *BaseService) Timestamp() string {
	return domain.FormatTimestamp(s.clock(), s.location)
}

// Today returns the current date as YYYY-MM-DD.
func (s *BaseService) Today() string {
	return domain.FormatDate(s.clock(), s.location)
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}
