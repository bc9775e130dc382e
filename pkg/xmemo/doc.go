// Package xmemo 提供带 LRU 缓存的 IPv6 解析前端。
//
// xmemo 基于 github.com/hashicorp/golang-lru/v2 封装 [xip6.Parse] 与
// [xip6.ParseNetwork]，对重复出现的文本输入（日志流、配置重载、
// 批量导入等场景）省去重复解析开销。
//
// # 核心特性
//
//   - 地址与网络分别维护独立的 LRU 缓存，容量可分别配置
//   - 命中/未命中计数通过原子变量维护，可随时读取快照
//   - 并发安全：所有操作都是线程安全的
//
// # 设计决策
//
// 解析是纯函数，结果永不失效，因此使用不带 TTL 的 LRU 而非
// expirable 变体：没有后台清理 goroutine，也就没有 Close 的负担。
//
// 缓存键是 strings.TrimSpace 之前的原始输入。同一地址的不同写法
// （"::1" 与 "0::1"）会各占一个条目，这是有意的：归一化键本身
// 就需要一次解析，违背缓存的初衷。
//
// 解析失败的结果不缓存。错误输入通常不会高频重复，缓存错误值
// 只会挤占正常条目的容量。
//
// # 注意事项
//
//   - Size 是条目数量，不是内存大小
//   - Stats 快照中的各计数相互独立读取，不构成一致性切面
package xmemo
