package xip6

import (
	"fmt"
	"net/netip"

	"go4.org/netipx"
)

// Netip 返回地址的 [netip.Addr] 表示（无 zone 的纯 IPv6）。
func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom16(a.As16())
}

// FromNetip 从 [netip.Addr] 创建地址。
// 只接受无 zone 的纯 IPv6：IPv4、IPv4-mapped IPv6 地址返回 [ErrNotIPv6]
// （本库不处理 IPv4 嵌入写法），带 zone 的地址同样拒绝
// （128 位数值无处保存 zone，静默丢弃会造成误匹配）。
func FromNetip(addr netip.Addr) (Addr, error) {
	if !addr.IsValid() {
		return Addr{}, fmt.Errorf("%w: zero netip.Addr", ErrNotIPv6)
	}
	if addr.Is4() || addr.Is4In6() {
		return Addr{}, fmt.Errorf("%w: %s", ErrNotIPv6, addr)
	}
	if addr.Zone() != "" {
		return Addr{}, fmt.Errorf("%w: zone %q would be dropped", ErrNotIPv6, addr.Zone())
	}
	return AddrFrom16(addr.As16()), nil
}

// Prefix 返回网络的 [netip.Prefix] 表示。
// 基地址按原样进入 Prefix，不做掩码处理（与 Network 的存储语义一致）。
func (n Network) Prefix() netip.Prefix {
	return netip.PrefixFrom(n.base.Netip(), int(n.bits))
}

// NetworkFromPrefix 从 [netip.Prefix] 创建网络。
// 地址部分的限制与 [FromNetip] 相同；无效 Prefix 返回 [ErrPrefixRange]。
func NetworkFromPrefix(p netip.Prefix) (Network, error) {
	base, err := FromNetip(p.Addr())
	if err != nil {
		return Network{}, err
	}
	return NetworkFrom(base, p.Bits())
}

// Range 返回网络的 [netipx.IPRange]：掩码后的首地址到末地址。
func (n Network) Range() netipx.IPRange {
	return netipx.IPRangeFrom(n.First().Netip(), n.Last().Netip())
}
