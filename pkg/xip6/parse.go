package xip6

import (
	"fmt"
	"strconv"
	"strings"
)

// parseAddr 解析纯地址文本（不允许携带前缀长度）。
func parseAddr(s string) (uint128, error) {
	v, plen, hasPrefix, err := parse(s)
	if err != nil {
		return uint128{}, err
	}
	if hasPrefix {
		return uint128{}, fmt.Errorf("%w: prefix length /%d not allowed here", ErrTrailingData, plen)
	}
	return v, nil
}

// parseCIDR 解析 "addr/prefix" 文本，前缀长度必须存在。
// 前缀长度的取值范围由调用方（Network 构造）校验。
func parseCIDR(s string) (uint128, int, error) {
	v, plen, hasPrefix, err := parse(s)
	if err != nil {
		return uint128{}, 0, err
	}
	if !hasPrefix {
		return uint128{}, 0, fmt.Errorf("%w: %q", ErrMissingPrefix, s)
	}
	return v, plen, nil
}

// parse 消费整个词元流，折叠出 128 位值和可选的前缀长度。
//
// "::" 之前的 hextet 自左向右填入高位通道（hi）；"::" 之后的 hextet
// 通过整体左移 16 位再按位或的方式压入低位（lo）——不需要预先知道
// 被省略的长度，hi 中未填的中段比特天然为零。最终值为 hi | lo。
//
// hextet 数量做显式校验：无 "::" 时必须恰好 8 个；有 "::" 时
// 最多 7 个（至少省略一个）。
func parse(s string) (v uint128, prefixLen int, hasPrefix bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return uint128{}, 0, false, ErrEmpty
	}

	var (
		hi, lo     uint128
		preCount   int // "::" 之前的 hextet 数
		postCount  int // "::" 之后的 hextet 数
		sawElision bool
	)
	pos := 0
	for pos < len(s) {
		var tok token
		tok, pos = nextToken(s, pos)
		switch tok.kind {
		case tokenHextet:
			if len(tok.text) > 4 {
				return uint128{}, 0, false, fmt.Errorf("%w: %q has more than 4 digits", ErrMalformedHextet, tok.text)
			}
			val, ok := parseHextet(tok.text)
			if !ok {
				return uint128{}, 0, false, fmt.Errorf("%w: %q is not hexadecimal", ErrMalformedHextet, tok.text)
			}
			if sawElision {
				lo = lo.shl16()
				lo.lo |= uint64(val)
				postCount++
			} else {
				if preCount < 8 {
					hi = hi.orHextet(preCount, val)
				}
				preCount++
			}
		case tokenElision:
			if sawElision {
				return uint128{}, 0, false, fmt.Errorf("%w: second '::' at offset %d", ErrMultipleElision, pos-2)
			}
			sawElision = true
		case tokenSep:
			// 分隔符不携带信息
		case tokenPrefixLen:
			n, convErr := strconv.Atoi(tok.text)
			if convErr != nil {
				// 数字串长到溢出 int，必然超出 [0,128]
				return uint128{}, 0, false, fmt.Errorf("%w: /%s", ErrPrefixRange, tok.text)
			}
			prefixLen, hasPrefix = n, true
			if pos < len(s) {
				return uint128{}, 0, false, fmt.Errorf("%w: %q after prefix length", ErrTrailingData, s[pos:])
			}
		case tokenInvalid:
			return uint128{}, 0, false, fmt.Errorf("%w: %q", ErrUnrecognizedToken, tok.text)
		}
	}

	if sawElision {
		if preCount+postCount > 7 {
			return uint128{}, 0, false, fmt.Errorf("%w: %d hextets with '::'", ErrHextetCount, preCount+postCount)
		}
	} else if preCount != 8 {
		return uint128{}, 0, false, fmt.Errorf("%w: got %d, want 8", ErrHextetCount, preCount)
	}
	return hi.or(lo), prefixLen, hasPrefix, nil
}

// parseHextet 解析 1–4 个十六进制字符。大小写不敏感。
func parseHextet(s string) (uint16, bool) {
	var v uint16
	for i := 0; i < len(s); i++ {
		d := hexValue(s[i])
		if d < 0 {
			return 0, false
		}
		v = v<<4 | uint16(d)
	}
	return v, true
}
