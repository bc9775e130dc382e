package xip6

import (
	"fmt"
	"math/big"
)

// Addr 表示一个 128 位 IPv6 地址。
//
// Addr 是不可变值类型：
//   - 可直接比较（==）和用作 map key
//   - 运算产生新实例，原值永不改变
//   - 并发安全，无需加锁
//
// 零值 Addr{} 就是合法地址 "::"。这与 [net/netip.Addr] 和 xmac 的
// "零值无效"语义不同：IPv6 地址空间覆盖全部 128 位整数，没有多余的
// 状态位可用来表示"未初始化"，全零本身即未指定地址。
type Addr struct {
	v uint128
}

// Parse 解析 IPv6 地址文本（如 "2001:db8::1"）。
// 输入首尾空白会被去除；空输入返回 [ErrEmpty]。
// 不允许携带前缀长度，"addr/64" 形式返回 [ErrTrailingData]，
// 网络请使用 [ParseNetwork]。
func Parse(s string) (Addr, error) {
	v, err := parseAddr(s)
	if err != nil {
		return Addr{}, err
	}
	return Addr{v}, nil
}

// MustParse 类似 [Parse]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParse(s string) Addr {
	addr, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("xip6.MustParse(%q): %v", s, err))
	}
	return addr
}

// AddrFrom16 从 16 字节大端表示创建地址。
func AddrFrom16(b [16]byte) Addr {
	return Addr{uint128From16(b)}
}

// FromBigInt 从 big.Int 创建地址。
// v 为 nil、负数或超过 2^128-1 时返回 [ErrOutOfRange]。
func FromBigInt(v *big.Int) (Addr, error) {
	u, ok := uint128FromBig(v)
	if !ok {
		return Addr{}, fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	return Addr{u}, nil
}

// BigInt 返回地址的 128 位整数值。
// 每次调用返回新的 big.Int，修改不影响原值。
func (a Addr) BigInt() *big.Int {
	return a.v.bigInt()
}

// As16 返回地址的 16 字节大端表示。
func (a Addr) As16() [16]byte {
	return a.v.bytes16()
}

// Hextets 返回 8 个 16 位分组，最高位在前。
// 整数值与 hextet 序列是同一状态的两个视图：
// value = Σ hextet[i] << (16*(7-i))。
func (a Addr) Hextets() [8]uint16 {
	var h [8]uint16
	for i := range h {
		h[i] = a.v.hextet(i)
	}
	return h
}

// IsZero 报告 a 是否为未指定地址 "::"。
func (a Addr) IsZero() bool {
	return a.v.isZero()
}

// Add 返回 a + delta 的新地址。delta 可以为负数表示减法。
// 结果越过 128 位边界时返回 [ErrOutOfRange]，不做回绕。
//
// 只支持地址在左侧的运算形式，没有 "整数 + 地址" 的镜像入口。
func (a Addr) Add(delta int64) (Addr, error) {
	if delta >= 0 {
		v, ok := a.v.addChecked(uint64(delta))
		if !ok {
			return Addr{}, fmt.Errorf("%w: %s + %d", ErrOutOfRange, a, delta)
		}
		return Addr{v}, nil
	}
	// -(delta+1)+1 避免 -MinInt64 在 int64 内溢出
	v, ok := a.v.subChecked(uint64(-(delta + 1)) + 1)
	if !ok {
		return Addr{}, fmt.Errorf("%w: %s %d", ErrOutOfRange, a, delta)
	}
	return Addr{v}, nil
}

// Sub 返回 a - delta 的新地址。delta 可以为负数表示加法。
// 结果越过 128 位边界时返回 [ErrOutOfRange]。
func (a Addr) Sub(delta int64) (Addr, error) {
	if delta >= 0 {
		v, ok := a.v.subChecked(uint64(delta))
		if !ok {
			return Addr{}, fmt.Errorf("%w: %s - %d", ErrOutOfRange, a, delta)
		}
		return Addr{v}, nil
	}
	v, ok := a.v.addChecked(uint64(-(delta + 1)) + 1)
	if !ok {
		return Addr{}, fmt.Errorf("%w: %s - (%d)", ErrOutOfRange, a, delta)
	}
	return Addr{v}, nil
}

// And 返回 a 与 b 按位与的新地址（网络掩码运算用）。
func (a Addr) And(b Addr) Addr {
	return Addr{a.v.and(b.v)}
}

// Or 返回 a 与 b 按位或的新地址。
func (a Addr) Or(b Addr) Addr {
	return Addr{a.v.or(b.v)}
}

// Compare 按整数值比较两个地址。
// 返回值：-1 (a < b)、0 (a == b)、1 (a > b)。
func (a Addr) Compare(b Addr) int {
	return a.v.cmp(b.v)
}

// Less 报告 a 是否小于 b。
func (a Addr) Less(b Addr) bool {
	return a.v.cmp(b.v) < 0
}
