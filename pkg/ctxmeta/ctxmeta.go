// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, user_id, trace_id).
// HTTP-слой и логгер зависят от небольшого общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyUserID    ctxKey = "user_id"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithUserID кладёт id аутентифицированного пользователя (id <= 0 игнорируется).
func WithUserID(ctx context.Context, userID int64) context.Context {
	if ctx == nil || userID <= 0 {
		return ctx
	}
	return context.WithValue(ctx, KeyUserID, userID)
}

// UserIDFromContext достаёт user_id; false — запрос не аутентифицирован.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	if ctx == nil {
		return 0, false
	}
	if v, ok := ctx.Value(KeyUserID).(int64); ok && v > 0 {
		return v, true
	}
	return 0, false
}
