package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational events that must survive in some durable
// sink; the default implementation writes them to the process log.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
