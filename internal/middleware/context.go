// Package middleware 提供 HTTP 中间件：请求 ID、恢复、超时、CORS、访问日志等。
package middleware

import (
	"context"
)

// 上下文键使用私有类型，避免与其他包写入的键冲突。
type requestIDKey struct{}

// withRequestID 将请求 ID 写入上下文。
func withRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext 从上下文中读取请求 ID，缺失时返回空串。
func RequestIDFromContext(ctx context.Context) string {
	if s, ok := ctx.Value(requestIDKey{}).(string); ok {
		return s
	}
	return ""
}
