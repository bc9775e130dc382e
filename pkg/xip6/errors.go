package xip6

import "errors"

// 预定义错误变量，支持 errors.Is 判断。
// 所有错误都是本地同步校验失败，不可重试，失败时不产生部分结果。
var (
	// ErrEmpty 表示输入为空字符串。
	ErrEmpty = errors.New("xip6: empty input")

	// ErrMalformedHextet 表示 hextet 超过 4 位或含非十六进制字符。
	ErrMalformedHextet = errors.New("xip6: malformed hextet")

	// ErrMultipleElision 表示地址中出现多于一个 "::"。
	ErrMultipleElision = errors.New("xip6: address can only have one '::'")

	// ErrUnrecognizedToken 表示输入含无法识别的字节序列。
	ErrUnrecognizedToken = errors.New("xip6: unrecognized token")

	// ErrTrailingData 表示出现了不该出现的尾随内容
	// （前缀长度之后还有词元，或纯地址解析遇到前缀长度）。
	ErrTrailingData = errors.New("xip6: unexpected trailing data")

	// ErrMissingPrefix 表示需要前缀长度但输入未携带。
	ErrMissingPrefix = errors.New("xip6: missing prefix length")

	// ErrHextetCount 表示 hextet 数量不合法
	// （无 "::" 时必须恰好 8 个；有 "::" 时最多 7 个）。
	ErrHextetCount = errors.New("xip6: wrong hextet count")

	// ErrOutOfRange 表示数值超出 128 位无符号范围（含运算上溢/下溢）。
	ErrOutOfRange = errors.New("xip6: value out of 128-bit range")

	// ErrPrefixRange 表示前缀长度不在 [0, 128] 范围内。
	ErrPrefixRange = errors.New("xip6: prefix length out of range")

	// ErrZeroStep 表示切片步长为 0。
	ErrZeroStep = errors.New("xip6: step cannot be zero")

	// ErrIndexRange 表示网络索引超出 [0, host_count-1]。
	ErrIndexRange = errors.New("xip6: index out of host range")

	// ErrBadFormatFlag 表示格式化标志中含未知字符。
	ErrBadFormatFlag = errors.New("xip6: unknown format flag")

	// ErrNotIPv6 表示 netip 互转时遇到非 IPv6 地址（IPv4、IPv4-mapped 或带 zone）。
	ErrNotIPv6 = errors.New("xip6: not an IPv6 address")

	// ErrNilReceiver 表示对 nil 接收者调用反序列化方法。
	ErrNilReceiver = errors.New("xip6: nil receiver")
)
