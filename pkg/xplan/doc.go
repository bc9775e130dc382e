// Package xplan 提供 IPv6 编址规划文件的加载与查询。
//
// 规划文件是一组命名网络加上可选的展示格式标志，支持 YAML 与 JSON：
//
//	format: "l"
//	networks:
//	  - name: backbone
//	    cidr: "2001:db8::/32"
//	  - name: lab
//	    cidr: "2001:db8:ffff::/48"
//
// 基于 github.com/knadh/koanf/v2 加载（rawbytes provider + yaml/json
// parser），根据文件扩展名自动检测格式。
//
// # 查询能力
//
//   - Network / Names：按名字取网络，或按文件顺序列出全部名字
//   - Covers：地址是否落在规划内的任意网络中，
//     由 go4.org/netipx 的 IPSet 提供 O(log n) 区间查找
//   - Owners：返回包含给定地址的全部网络名
//
// # 设计决策
//
// Plan 加载后不可变，所有查询方法并发安全。重复的网络名在加载期
// 报 ErrDuplicateName 而不是静默覆盖：规划文件是人手维护的，
// 重名几乎总是笔误。
//
// CIDR 携带主机位时（如 "2001:db8::1/64"）在加载期清零为规范形态。
// xip6.Network 对带主机位的基地址 Contains 永远为 false，规划查询
// 若保留原样，Covers 与 Owners 会对同一地址给出矛盾答案；
// Network 方法返回的因此始终是掩码后的网络。
package xplan
