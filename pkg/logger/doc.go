// Package logger builds configured log/slog loggers with context-aware
// attribute injection and attribute helpers for the authorization domain.
//
// Basic usage:
//
//	log := logger.New(
//	    logger.WithProduction("authz"),
//	    logger.WithContextExtractors(func(ctx context.Context) (slog.Attr, bool) {
//	        if role, ok := authz.GetRoleFromContext(ctx); ok {
//	            return logger.Role(role), true
//	        }
//	        return slog.Attr{}, false
//	    }),
//	)
//	logger.SetAsDefault(log)
package logger
