package xmemo

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/omeyang/v6kit/pkg/xip6"
)

// maxSize 单个缓存最大条目数上限。
const maxSize = 1 << 24 // 16,777,216

// defaultSize 未配置时的缓存条目数。
const defaultSize = 4096

// Config 定义缓存配置。两个字段为 0 时使用默认值 4096。
type Config struct {
	// AddrSize 地址缓存最大条目数。
	AddrSize int

	// NetworkSize 网络缓存最大条目数。
	NetworkSize int
}

// Stats 是命中计数的一次性快照。
type Stats struct {
	AddrHits      int64
	AddrMisses    int64
	NetworkHits   int64
	NetworkMisses int64
}

// Cache 是缓存化的 IPv6 解析前端。
// 必须通过 [New] 创建，零值不可用。
// 所有方法都是并发安全的。
type Cache struct {
	addrs *lru.Cache[string, xip6.Addr]
	nets  *lru.Cache[string, xip6.Network]

	addrHits   atomic.Int64
	addrMisses atomic.Int64
	netHits    atomic.Int64
	netMisses  atomic.Int64
}

// New 创建新的解析缓存。
// 任一 Size 为负返回 ErrInvalidSize，超过 16,777,216 返回 ErrSizeExceedsMax。
func New(cfg Config) (*Cache, error) {
	addrSize, err := normalizeSize(cfg.AddrSize)
	if err != nil {
		return nil, err
	}
	netSize, err := normalizeSize(cfg.NetworkSize)
	if err != nil {
		return nil, err
	}

	addrs, err := lru.New[string, xip6.Addr](addrSize)
	if err != nil {
		return nil, err
	}
	nets, err := lru.New[string, xip6.Network](netSize)
	if err != nil {
		return nil, err
	}

	return &Cache{addrs: addrs, nets: nets}, nil
}

func normalizeSize(n int) (int, error) {
	if n == 0 {
		return defaultSize, nil
	}
	if n < 0 {
		return 0, ErrInvalidSize
	}
	if n > maxSize {
		return 0, ErrSizeExceedsMax
	}
	return n, nil
}

// ParseAddr 解析 IPv6 地址文本，命中缓存时直接返回缓存值。
// 解析失败的输入不进入缓存，错误原样返回。
func (c *Cache) ParseAddr(s string) (xip6.Addr, error) {
	if addr, ok := c.addrs.Get(s); ok {
		c.addrHits.Add(1)
		return addr, nil
	}
	c.addrMisses.Add(1)

	addr, err := xip6.Parse(s)
	if err != nil {
		return xip6.Addr{}, err
	}
	c.addrs.Add(s, addr)
	return addr, nil
}

// ParseNetwork 解析 CIDR 文本，命中缓存时直接返回缓存值。
// 解析失败的输入不进入缓存，错误原样返回。
func (c *Cache) ParseNetwork(s string) (xip6.Network, error) {
	if net, ok := c.nets.Get(s); ok {
		c.netHits.Add(1)
		return net, nil
	}
	c.netMisses.Add(1)

	net, err := xip6.ParseNetwork(s)
	if err != nil {
		return xip6.Network{}, err
	}
	c.nets.Add(s, net)
	return net, nil
}

// Stats 返回命中计数快照。
// 各计数独立读取，高并发下彼此之间不保证同一时刻的一致性。
func (c *Cache) Stats() Stats {
	return Stats{
		AddrHits:      c.addrHits.Load(),
		AddrMisses:    c.addrMisses.Load(),
		NetworkHits:   c.netHits.Load(),
		NetworkMisses: c.netMisses.Load(),
	}
}

// Purge 清空两个缓存的全部条目，计数保持不变。
func (c *Cache) Purge() {
	c.addrs.Purge()
	c.nets.Purge()
}

// Len 返回当前缓存条目总数（地址与网络之和）。
func (c *Cache) Len() int {
	return c.addrs.Len() + c.nets.Len()
}
