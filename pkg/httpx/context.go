package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the verified token subject. Nothing else from the
// token is propagated to handlers.
const CtxKeyUserID ctxKey = "user_id"

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, CtxKeyUserID, userID)
}

// UserIDFromContext returns the authenticated user id, if the request went
// through AuthnMiddleware.
func UserIDFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyUserID).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
