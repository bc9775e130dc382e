package xplan

import "errors"

// 规划文件加载和查询相关错误。
var (
	// ErrEmptyPath 表示规划文件路径为空。
	ErrEmptyPath = errors.New("xplan: empty plan path")

	// ErrUnsupportedFormat 表示不支持的文件格式。
	ErrUnsupportedFormat = errors.New("xplan: unsupported plan format")

	// ErrLoadFailed 表示规划文件读取失败。
	ErrLoadFailed = errors.New("xplan: failed to load plan")

	// ErrParseFailed 表示规划文件解析失败。
	ErrParseFailed = errors.New("xplan: failed to parse plan")

	// ErrEmptyName 表示某个网络条目缺少名字。
	ErrEmptyName = errors.New("xplan: network entry with empty name")

	// ErrDuplicateName 表示网络名重复。
	ErrDuplicateName = errors.New("xplan: duplicate network name")

	// ErrBadCIDR 表示某个网络条目的 CIDR 无法解析。
	ErrBadCIDR = errors.New("xplan: bad network cidr")

	// ErrUnknownNetwork 表示按名字查询的网络不存在。
	ErrUnknownNetwork = errors.New("xplan: unknown network")
)
