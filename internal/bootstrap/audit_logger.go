package bootstrap

import "context"

// AuditLog is a single operational audit entry (server lifecycle events,
// not business data).
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
