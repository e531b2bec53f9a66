package ports

import "context"

// Logger: минимальный контракт логгера для рантайма и хост-слоёв.
// ctx передаётся всегда, чтобы реализация могла подтянуть request_id/trace_id.
type Logger interface {
	Debugf(ctx context.Context, format string, args ...any) // Debugf: подробности по отдельным записям.
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
