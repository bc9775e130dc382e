package xip6

import (
	"encoding/binary"
	"math/big"
	"math/bits"
)

// uint128 用两个 uint64 表示 128 位无符号整数。
// hi 是高 64 位（hextet 0–3），lo 是低 64 位（hextet 4–7）。
type uint128 struct {
	hi uint64
	lo uint64
}

func (u uint128) and(v uint128) uint128 {
	return uint128{u.hi & v.hi, u.lo & v.lo}
}

func (u uint128) or(v uint128) uint128 {
	return uint128{u.hi | v.hi, u.lo | v.lo}
}

func (u uint128) not() uint128 {
	return uint128{^u.hi, ^u.lo}
}

func (u uint128) isZero() bool {
	return u.hi == 0 && u.lo == 0
}

// cmp 比较两个 uint128。返回 -1 (u < v)、0 (u == v)、1 (u > v)。
func (u uint128) cmp(v uint128) int {
	switch {
	case u.hi < v.hi:
		return -1
	case u.hi > v.hi:
		return 1
	case u.lo < v.lo:
		return -1
	case u.lo > v.lo:
		return 1
	default:
		return 0
	}
}

// addChecked 返回 u + d。第二个返回值在 128 位上溢时为 false。
func (u uint128) addChecked(d uint64) (uint128, bool) {
	lo, carry := bits.Add64(u.lo, d, 0)
	hi, carry := bits.Add64(u.hi, 0, carry)
	if carry != 0 {
		return uint128{}, false
	}
	return uint128{hi, lo}, true
}

// subChecked 返回 u - d。第二个返回值在下溢（结果为负）时为 false。
func (u uint128) subChecked(d uint64) (uint128, bool) {
	lo, borrow := bits.Sub64(u.lo, d, 0)
	hi, borrow := bits.Sub64(u.hi, 0, borrow)
	if borrow != 0 {
		return uint128{}, false
	}
	return uint128{hi, lo}, true
}

// shl16 整体左移 16 位，移出 128 位的比特被丢弃。
// 解析器用它把 "::" 之后的 hextet 不断右对齐压入低位。
func (u uint128) shl16() uint128 {
	return uint128{u.hi<<16 | u.lo>>48, u.lo << 16}
}

// orHextet 把 16 位值 v 按位或进第 i 个 hextet 通道（i 从 0 起，最高位在前）。
func (u uint128) orHextet(i int, v uint16) uint128 {
	if i < 4 {
		u.hi |= uint64(v) << (16 * (3 - i))
	} else {
		u.lo |= uint64(v) << (16 * (7 - i))
	}
	return u
}

// hextet 返回第 i 个 16 位分组（i 从 0 起，最高位在前）。
func (u uint128) hextet(i int) uint16 {
	if i < 4 {
		return uint16(u.hi >> (16 * (3 - i)))
	}
	return uint16(u.lo >> (16 * (7 - i)))
}

// mask128 返回前 n 位为 1、其余为 0 的掩码。n 必须在 [0, 128] 内。
func mask128(n int) uint128 {
	switch {
	case n <= 0:
		return uint128{}
	case n <= 64:
		return uint128{^uint64(0) << (64 - n), 0}
	case n < 128:
		return uint128{^uint64(0), ^uint64(0) << (128 - n)}
	default:
		return uint128{^uint64(0), ^uint64(0)}
	}
}

// bigInt 返回 u 的 *big.Int 表示。
func (u uint128) bigInt() *big.Int {
	v := new(big.Int).SetUint64(u.hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.lo))
}

// uint128FromBig 从 big.Int 构造 uint128。
// v 为 nil、负数或超过 128 位时返回 false。
func uint128FromBig(v *big.Int) (uint128, bool) {
	if v == nil || v.Sign() < 0 || v.BitLen() > 128 {
		return uint128{}, false
	}
	var b [16]byte
	v.FillBytes(b[:])
	return uint128From16(b), true
}

// uint128From16 从 16 字节大端表示构造 uint128。
func uint128From16(b [16]byte) uint128 {
	return uint128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// bytes16 返回 u 的 16 字节大端表示。
func (u uint128) bytes16() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.hi)
	binary.BigEndian.PutUint64(b[8:], u.lo)
	return b
}
