package xip6

import (
	"fmt"
	"iter"
	"math/big"
)

// boundKind 标记切片边界的三种指定方式。
type boundKind uint8

const (
	boundDefault boundKind = iota // 未指定，使用网络默认值
	boundOffset                   // 相对基地址的整数偏移
	boundAddr                     // 绝对地址
)

// Bound 是切片的一端：未指定（零值）、相对基地址的偏移或绝对地址。
// 零值显式表达"未提供"，不需要哨兵对象。
type Bound struct {
	kind boundKind
	off  int64
	addr Addr
}

// OffsetBound 返回相对网络基地址偏移 off 的边界。off 可以为负。
func OffsetBound(off int64) Bound {
	return Bound{kind: boundOffset, off: off}
}

// AddrBound 返回绝对地址边界。
func AddrBound(a Addr) Bound {
	return Bound{kind: boundAddr, addr: a}
}

// resolve 把边界折算为绝对整数值；未指定时返回 def 的副本。
func (b Bound) resolve(base, def *big.Int) *big.Int {
	switch b.kind {
	case boundOffset:
		return new(big.Int).Add(base, big.NewInt(b.off))
	case boundAddr:
		return b.addr.BigInt()
	default:
		return new(big.Int).Set(def)
	}
}

// Slice 是网络成员地址的一个惰性切片：起止边界加步长。
// 不可变；通过 [Slice.Addrs] 可多次独立遍历。
type Slice struct {
	start *big.Int // 首个候选值（负步长时已换向）
	stop  *big.Int // 行进方向上的开区间终点
	step  *big.Int
}

// Slice 构造网络成员地址的切片。
//
// start、stop、step 三个分量互相独立：
//   - start 默认网络基地址
//   - stop 默认基地址 + host_count（开区间终点）
//   - step 默认用 1，不可为 0（返回 [ErrZeroStep]）
//
// 负步长反向遍历：内部把 (start, stop) 换向为 (stop-1, start-1)，
// 仍按重复加 step 行进，用行进方向上的比较判断终止，
// 访问与正步长相同的概念窗口、顺序相反。
//
// 边界折算出的绝对值必须落在 [0, 2^128]（stop 是开区间终点，
// 允许等于 2^128），否则返回 [ErrOutOfRange]。
// 边界不要求落在网络内部，越网切片由调用方自己负责。
func (n Network) Slice(start, stop Bound, step int64) (Slice, error) {
	if step == 0 {
		return Slice{}, ErrZeroStep
	}

	base := n.base.BigInt()
	lo := start.resolve(base, base)
	hi := stop.resolve(base, new(big.Int).Add(base, n.HostCount()))

	limit := new(big.Int).Lsh(big.NewInt(1), 128)
	if lo.Sign() < 0 || lo.Cmp(limit) > 0 {
		return Slice{}, fmt.Errorf("%w: slice start %s", ErrOutOfRange, lo)
	}
	if hi.Sign() < 0 || hi.Cmp(limit) > 0 {
		return Slice{}, fmt.Errorf("%w: slice stop %s", ErrOutOfRange, hi)
	}

	if step < 0 {
		one := big.NewInt(1)
		lo, hi = new(big.Int).Sub(hi, one), new(big.Int).Sub(lo, one)
	}
	return Slice{start: lo, stop: hi, step: big.NewInt(step)}, nil
}

// Addrs 返回遍历切片成员的迭代器。
// 每次调用派生独立的新游标，同一 Slice 可多次并行遍历；
// 单个迭代过程自身不是并发安全的。
func (s Slice) Addrs() iter.Seq[Addr] {
	return walk(s.start, s.stop, s.step)
}

// walk 返回从 start 按 step 行进、到 stop（开区间，按行进方向比较）
// 为止的地址迭代器。游标用 big.Int 运算，±1 换向越过 128 位边界
// 也不会回绕。
func walk(start, stop, step *big.Int) iter.Seq[Addr] {
	return func(yield func(Addr) bool) {
		if start == nil || stop == nil || step == nil {
			return // 零值 Slice
		}
		asc := step.Sign() > 0
		cur := new(big.Int).Set(start)
		for {
			if asc {
				if cur.Cmp(stop) >= 0 {
					return
				}
			} else if cur.Cmp(stop) <= 0 {
				return
			}
			v, ok := uint128FromBig(cur)
			if !ok {
				return // 行进越出 128 位空间
			}
			if !yield(Addr{v}) {
				return
			}
			cur.Add(cur, step)
		}
	}
}
