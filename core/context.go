package core

import "context"

type ctxKey int

const tokenKey ctxKey = iota

// WithToken returns a copy of ctx carrying the backend bearer token of the current session.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom returns the backend bearer token stored in ctx, if any.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}
