package xmemo

import (
	"testing"

	"go.uber.org/goleak"
)

// 解析缓存不应启动任何后台 goroutine。
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
