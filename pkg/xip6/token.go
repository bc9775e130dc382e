package xip6

// tokenKind 标记词元类型。解析器对其做穷尽 switch。
type tokenKind uint8

const (
	// tokenHextet 连续的字母数字段（长度在词法层不设上限，由解析器校验）。
	tokenHextet tokenKind = iota
	// tokenElision 零压缩标记 "::"。
	tokenElision
	// tokenSep 单个分隔符 ":"。
	tokenSep
	// tokenPrefixLen 前缀长度 "/<十进制数字>"，text 只保留数字部分。
	tokenPrefixLen
	// tokenInvalid 无法识别的字节序列，仅用于错误诊断。
	tokenInvalid
)

// token 是解析期间的瞬态产物：类型标记加匹配到的文本片段。
type token struct {
	kind tokenKind
	text string
}

// nextToken 从 s 的 pos 处扫描下一个词元，返回词元和新的偏移量。
// 纯函数，除位置外不保留任何状态。
//
// 同一位置可匹配多个备选时按最长优先："::" 先于 ":" 尝试
// （":" 是 "::" 的前缀，顺序颠倒会错误切分）。
// 调用方保证 pos < len(s)。
func nextToken(s string, pos int) (token, int) {
	c := s[pos]
	switch {
	case c == ':':
		if pos+1 < len(s) && s[pos+1] == ':' {
			return token{tokenElision, s[pos : pos+2]}, pos + 2
		}
		return token{tokenSep, s[pos : pos+1]}, pos + 1
	case isAlnum(c):
		end := pos + 1
		for end < len(s) && isAlnum(s[end]) {
			end++
		}
		return token{tokenHextet, s[pos:end]}, end
	case c == '/' && pos+1 < len(s) && isDigit(s[pos+1]):
		end := pos + 1
		for end < len(s) && isDigit(s[end]) {
			end++
		}
		return token{tokenPrefixLen, s[pos+1 : end]}, end
	default:
		// 吞掉一段都无法识别的字节，让错误信息携带完整片段
		end := pos + 1
		for end < len(s) && !startsToken(s, end) {
			end++
		}
		return token{tokenInvalid, s[pos:end]}, end
	}
}

// startsToken 报告 s 的第 i 个字节是否可以开启一个合法词元。
func startsToken(s string, i int) bool {
	c := s[i]
	return c == ':' || isAlnum(c) || (c == '/' && i+1 < len(s) && isDigit(s[i+1]))
}

func isAlnum(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// hexValue 返回十六进制字符的数值，无效字符返回 -1。
func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c - 'a' + 10)
	case 'A' <= c && c <= 'F':
		return int(c - 'A' + 10)
	default:
		return -1
	}
}
