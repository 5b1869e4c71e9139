package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// HeaderRequestID 请求 ID 使用的头字段
const HeaderRequestID = "X-Request-ID"

// maxRequestIDLen 限制透传的请求 ID 长度，防止恶意超长头
const maxRequestIDLen = 64

// RequestID 确保每个请求都携带请求 ID：
// 优先透传请求头中的 X-Request-ID（超长或空白则丢弃改为生成 UUID），
// 并将该 ID 同时写入响应头和请求上下文。
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if rid == "" || len(rid) > maxRequestIDLen {
			rid = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, rid)
		next.ServeHTTP(w, r.WithContext(withRequestID(r.Context(), rid)))
	})
}
