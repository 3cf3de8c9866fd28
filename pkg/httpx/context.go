package httpx

import "context"

type ctxKey string

// CtxKeyUsername holds the authenticated username for rate limiting and logs.
const CtxKeyUsername ctxKey = "username"

func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, CtxKeyUsername, username)
}

func UsernameFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}
