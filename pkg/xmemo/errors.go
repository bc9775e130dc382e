package xmemo

import "errors"

var (
	// ErrInvalidSize 表示缓存大小配置无效（0 表示使用默认值，负数非法）。
	ErrInvalidSize = errors.New("xmemo: size must not be negative")

	// ErrSizeExceedsMax 表示缓存大小超过上限 (16,777,216)。
	ErrSizeExceedsMax = errors.New("xmemo: size must not exceed 16777216")
)
