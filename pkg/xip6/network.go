package xip6

import (
	"fmt"
	"iter"
	"math/big"
	"strconv"
)

// Network 表示一个 IPv6 网络：基地址加前缀长度（CIDR）。
//
// Network 是不可变值类型，可直接比较（==）和用作 map key。
//
// 基地址按调用方提供的原样存储，不会自动清零主机位。
// 主机位非零的网络上 [Network.Contains] 永远为 false
// （掩码后的地址不可能等于带主机位的基地址），需要规范形态时
// 先调用 [Network.Masked]。
type Network struct {
	base Addr
	bits uint8
}

// ParseNetwork 解析 CIDR 文本（如 "2001:db8::/32"）。
// 前缀长度必须存在，否则返回 [ErrMissingPrefix]；
// 超出 [0, 128] 返回 [ErrPrefixRange]。
func ParseNetwork(s string) (Network, error) {
	v, plen, err := parseCIDR(s)
	if err != nil {
		return Network{}, err
	}
	return NetworkFrom(Addr{v}, plen)
}

// MustParseNetwork 类似 [ParseNetwork]，但解析失败时 panic。
// 仅用于包级变量初始化或测试。
func MustParseNetwork(s string) Network {
	n, err := ParseNetwork(s)
	if err != nil {
		panic(fmt.Sprintf("xip6.MustParseNetwork(%q): %v", s, err))
	}
	return n
}

// NetworkFrom 从基地址和前缀长度创建网络。
// bits 超出 [0, 128] 返回 [ErrPrefixRange]。
func NetworkFrom(base Addr, bits int) (Network, error) {
	if bits < 0 || bits > 128 {
		return Network{}, fmt.Errorf("%w: %d", ErrPrefixRange, bits)
	}
	return Network{base: base, bits: uint8(bits)}, nil
}

// Base 返回构造时提供的基地址（未做掩码处理）。
func (n Network) Base() Addr {
	return n.base
}

// Bits 返回前缀长度（0–128）。
func (n Network) Bits() int {
	return int(n.bits)
}

// Mask 返回前缀掩码：前 bits 位为 1，其余为 0。
func (n Network) Mask() Addr {
	return Addr{mask128(int(n.bits))}
}

// Masked 返回主机位清零后的规范网络。
func (n Network) Masked() Network {
	return Network{base: n.base.And(n.Mask()), bits: n.bits}
}

// IsMasked 报告基地址的主机位是否已全部为零。
func (n Network) IsMasked() bool {
	return n.base == n.base.And(n.Mask())
}

// First 返回网络的首地址（主机位全零）。
func (n Network) First() Addr {
	return n.base.And(n.Mask())
}

// Last 返回网络的末地址（主机位全一）。
func (n Network) Last() Addr {
	return Addr{n.base.v.and(mask128(int(n.bits))).or(mask128(int(n.bits)).not())}
}

// HostCount 返回网络包含的地址数量 2^(128-bits)。
// 每次调用返回新的 big.Int。
func (n Network) HostCount() *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), uint(128-int(n.bits)))
}

// Contains 报告 addr 是否属于本网络：(addr & mask) == base。
func (n Network) Contains(addr Addr) bool {
	return addr.And(n.Mask()) == n.base
}

// Overlaps 报告两个网络的地址区间是否有交集。
// 比较时双方都先做掩码处理。
func (n Network) Overlaps(o Network) bool {
	shorter, longer := n, o
	if shorter.bits > longer.bits {
		shorter, longer = longer, shorter
	}
	return longer.First().And(shorter.Mask()) == shorter.First()
}

// AddrAt 返回基地址偏移 k 处的成员地址 base + k。
// 合法范围是闭区间 0 ≤ k ≤ host_count-1，越界返回 [ErrIndexRange]。
func (n Network) AddrAt(k int64) (Addr, error) {
	hostMask := mask128(int(n.bits)).not()
	if k < 0 || (uint128{0, uint64(k)}).cmp(hostMask) > 0 {
		return Addr{}, fmt.Errorf("%w: %d (max %s)", ErrIndexRange, k, hostMask.bigInt())
	}
	return n.base.Add(k)
}

// Addrs 返回遍历全部成员地址的迭代器：
// 从 base 到 base + host_count - 1（含），步长 1 升序。
//
// 迭代器惰性、有限、可重入：序列由不可变的 Network 派生，
// 每次 range 都会派生全新游标，互不影响。
func (n Network) Addrs() iter.Seq[Addr] {
	start := n.base.BigInt()
	stop := new(big.Int).Add(start, n.HostCount())
	return walk(start, stop, big.NewInt(1))
}

// String 返回规范 CIDR 文本："基地址短格式/前缀长度"。
func (n Network) String() string {
	return n.base.String() + "/" + strconv.Itoa(int(n.bits))
}

// Format 按给定模式格式化基地址，前缀长度照常追加。
func (n Network) Format(o FormatOptions) string {
	return n.base.Format(o) + "/" + strconv.Itoa(int(n.bits))
}

// FormatFlags 按单字符标志串格式化，标志语义见 [ParseFormatFlags]。
func (n Network) FormatFlags(flags string) (string, error) {
	s, err := n.base.FormatFlags(flags)
	if err != nil {
		return "", err
	}
	return s + "/" + strconv.Itoa(int(n.bits)), nil
}
