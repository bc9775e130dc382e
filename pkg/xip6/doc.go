// Package xip6 提供 IPv6 地址与网络的值类型库。
//
// xip6 把文本写法解析为定宽 128 位数值表示，按可配置的格式化规则
// 渲染回文本，并提供支持包含判断、索引访问和带步长迭代的网络抽象。
// 数据单向流动：文本 → 词法扫描 → 解析 → Addr/Network → 格式化 → 文本。
//
// # 核心类型
//
//   - [Addr]: 不可变 128 位地址值，构造即做范围校验，算术产生新实例
//   - [Network]: 基地址 + 前缀长度（0–128），派生掩码、地址数量与成员判断
//   - [Slice] / [Bound]: 网络成员的惰性切片，支持任意非零步长（含负步长反向）
//   - [FormatOptions]: 零压缩 × 补位两个独立格式化轴
//
// # 快速示例
//
// 解析与格式化：
//
//	addr, err := xip6.Parse("2001:DB8::8:800:200C:417A")
//	fmt.Println(addr)                        // 2001:db8::8:800:200c:417a
//	fmt.Println(addr.Format(xip6.FormatOptions{
//	    Compression: xip6.Expand,
//	    Padding:     xip6.Pad,
//	}))                                      // 2001:0db8:0000:0000:0008:0800:200c:417a
//	s, _ := addr.FormatFlags("ep")           // 同上，单字符标志入口
//
// 网络与成员判断：
//
//	n, _ := xip6.ParseNetwork("2001:db8::/32")
//	n.Contains(addr)                         // true
//	first, _ := n.AddrAt(0)                  // 2001:db8::
//
// 迭代与切片：
//
//	for a := range n.Addrs() { ... }         // 全量升序
//	s, _ := n.Slice(xip6.OffsetBound(0), xip6.OffsetBound(16), -2)
//	for a := range s.Addrs() { ... }         // 反向，步长 2
//
// # 设计决策
//
//   - Addr/Network 是可比较值类型，零分配比较，可做 map key（同 [net/netip]）
//   - 零值 Addr{} 即合法地址 "::"：128 位地址空间没有多余状态表示"无效"，
//     全零本身就是未指定地址这个普通值
//   - 算术越过 128 位边界返回 [ErrOutOfRange] 而非回绕；只支持地址在左的
//     运算形式，避免 "整数 + 地址" 的歧义语义
//   - hextet 数量做显式校验（无 "::" 恰好 8 个，有 "::" 至多 7 个），
//     不依赖越界位移之类的偶然失败
//   - Network 按原样存储基地址，不自动清零主机位；[Network.Masked] 给出
//     规范形态，[Network.IsMasked] 用于判断
//   - 零压缩只省略长度 ≥ 2 的零段（RFC 5952），[Addr.String] 与
//     [netip.Addr.String] 对纯 IPv6 地址逐字节一致（IPv4-mapped 区段除外，
//     netip 对其输出内嵌点分十进制，本库始终输出 hextet）
//   - 单字符格式化标志（s/l/c/e/p/t）只在字符串边界解析，内部表示始终是
//     [FormatOptions] 结构体；同轴冲突后者生效
//   - 迭代器游标用 big.Int 运算，负步长 ±1 换向在 128 位边缘也不会回绕
//   - 所有可失败操作返回 error，预定义错误变量支持 errors.Is；
//     失败不产生部分结果
//
// # 不做什么
//
// 不做网络 I/O、不解析主机名、不校验可路由性/作用域（链路本地、多播等），
// 也不支持 IPv4-mapped 或内嵌 IPv4 写法——这是纯同步的值/转换层，
// 无持久化、无后台任务。需要这些能力时在 [netip.Addr] 侧处理后经
// [FromNetip] / [Addr.Netip] 互转。
//
// # 并发
//
// 全部类型不可变，多 goroutine 共享读取无需同步。迭代器各自持有私有游标，
// 单个迭代过程不可多 goroutine 并发推进；同一 Network/Slice 上
// 每次 range 派生的游标互相独立。
package xip6
