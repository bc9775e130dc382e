package xip6

import "fmt"

// Compression 控制零压缩轴：是否把最长的连续零 hextet 段缩写为 "::"。
type Compression uint8

const (
	// Compress 压缩最长零段（规范短格式的默认值）。
	Compress Compression = iota
	// Expand 不做零压缩，输出全部 8 个 hextet。
	Expand
)

// Padding 控制补位轴：hextet 是否补足 4 位十六进制。
type Padding uint8

const (
	// Trim 去除前导零，至少保留一位（规范短格式的默认值）。
	Trim Padding = iota
	// Pad 每个 hextet 补零到 4 位。
	Pad
)

// FormatOptions 是格式化模式：两个互相独立的轴。
// 零值即规范短格式（Compress + Trim）。
type FormatOptions struct {
	Compression Compression
	Padding     Padding
}

// 单字符标志迷你语言只在这个字符串边界上解析，
// 内部表示始终是 FormatOptions 结构体。
//
// ParseFormatFlags 支持的标志：
//
//	s  短格式（= 压缩 + 去前导零），等价 "ct"
//	l  长格式（= 展开 + 补位），等价 "ep"
//	c  压缩零段        e  展开零段
//	p  补位到 4 位      t  去除前导零
//
// 同一轴出现冲突标志时，后出现者生效；空字符串返回默认值（短格式）。
// 未知字符返回 [ErrBadFormatFlag]。
func ParseFormatFlags(flags string) (FormatOptions, error) {
	var o FormatOptions
	for _, r := range flags {
		switch r {
		case 's':
			o = FormatOptions{Compress, Trim}
		case 'l':
			o = FormatOptions{Expand, Pad}
		case 'c':
			o.Compression = Compress
		case 'e':
			o.Compression = Expand
		case 'p':
			o.Padding = Pad
		case 't':
			o.Padding = Trim
		default:
			return FormatOptions{}, fmt.Errorf("%w: %q", ErrBadFormatFlag, r)
		}
	}
	return o, nil
}

const hexLower = "0123456789abcdef"

// String 返回规范短格式（零压缩 + 去前导零，小写）。
func (a Addr) String() string {
	return a.Format(FormatOptions{})
}

// FormatFlags 按单字符标志串格式化，标志语义见 [ParseFormatFlags]。
func (a Addr) FormatFlags(flags string) (string, error) {
	o, err := ParseFormatFlags(flags)
	if err != nil {
		return "", err
	}
	return a.Format(o), nil
}

// Format 按给定模式格式化地址。十六进制数字一律小写。
func (a Addr) Format(o FormatOptions) string {
	h := a.Hextets()

	zs, ze := -1, -1
	if o.Compression == Compress {
		zs, ze = longestZeroRun(h)
	}

	// 最长形态 "xxxx:xxxx:...:xxxx" 共 39 字节
	buf := make([]byte, 0, 39)
	for i := 0; i < 8; i++ {
		if i == zs {
			buf = append(buf, ':', ':')
			i = ze - 1 // 循环自增后跳到省略段之后
			continue
		}
		if i > 0 && i != ze {
			buf = append(buf, ':')
		}
		buf = appendHextet(buf, h[i], o.Padding == Pad)
	}
	return string(buf)
}

// longestZeroRun 返回最靠左的最长零段 [start, end)。
// 只有长度 ≥ 2 的零段才会被省略（RFC 5952 约定，与 net/netip 输出一致；
// 单个零 hextet 原样输出）。找不到合格零段时返回 (-1, -1)。
//
// 扫描到 i == 8 的虚拟非零哨兵时结算最后一个零段；
// 长度严格更大才替换已知最优，平局保留更靠左者。
func longestZeroRun(h [8]uint16) (start, end int) {
	best, bestLen := -1, 0
	run := -1
	for i := 0; i <= 8; i++ {
		if i < 8 && h[i] == 0 {
			if run < 0 {
				run = i
			}
			continue
		}
		if run >= 0 {
			if l := i - run; l >= 2 && l > bestLen {
				best, bestLen = run, l
			}
			run = -1
		}
	}
	if best < 0 {
		return -1, -1
	}
	return best, best + bestLen
}

// appendHextet 追加一个 hextet 的十六进制表示。
// pad 为 true 时补零到 4 位，否则去除前导零但至少保留一位。
func appendHextet(buf []byte, v uint16, pad bool) []byte {
	for shift := 12; shift >= 0; shift -= 4 {
		if !pad && shift > 0 && v>>shift == 0 {
			continue
		}
		buf = append(buf, hexLower[(v>>shift)&0xf])
	}
	return buf
}
