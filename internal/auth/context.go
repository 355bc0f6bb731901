package auth

import "context"

type ctxKey string

const userContextKey ctxKey = "taskmaster.auth.user"

func withUserContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, userContextKey, username)
}

// UserFromContext returns the authenticated username, if any.
func UserFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(userContextKey).(string)
	return v, ok
}
