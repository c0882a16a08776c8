package httpserver

import (
	"context"

	"github.com/avm-dev/notehub/internal/model"
)

type ctxKey string

const claimsKey ctxKey = "nh.claims"

// WithClaims stores verified token claims in context.
func WithClaims(ctx context.Context, c model.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFromCtx fetches verified token claims from context.
func ClaimsFromCtx(ctx context.Context) (model.Claims, bool) {
	v := ctx.Value(claimsKey)
	if v == nil {
		return model.Claims{}, false
	}
	c, ok := v.(model.Claims)
	return c, ok
}
