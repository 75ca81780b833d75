package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Role records a role name under the key "role".
func Role(role string) slog.Attr {
	return slog.String("role", role)
}

// Module records a catalog module code under the key "module".
func Module(module string) slog.Attr {
	return slog.String("module", module)
}

// Action records a catalog action code under the key "action".
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Group records a scope group name under the key "group".
func Group(group string) slog.Attr {
	return slog.String("group", group)
}

// IntentID records a mutation intent identifier under the key "intent_id".
func IntentID(id string) slog.Attr {
	return slog.String("intent_id", id)
}
