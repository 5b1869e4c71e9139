package service

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain 确保测试结束后没有goroutine泄漏
// 结算流程会派生goroutine和定时器，这里兜底验证它们都正常退出
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
