package auth

import "context"

type contextKey int

const claimsKey contextKey = iota

// WithClaims добавляет данные пользователя в контекст запроса
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext возвращает данные пользователя из контекста
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// UserIDFromContext возвращает ID пользователя или 0 для анонимного запроса
func UserIDFromContext(ctx context.Context) int {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims.UserID
	}
	return 0
}
