package xip6

import (
	"testing"
)

// =============================================================================
// 解析/格式化往返模糊测试
// =============================================================================

func FuzzParseFormatRoundTrip(f *testing.F) {
	f.Add("::")
	f.Add("::1")
	f.Add("1::")
	f.Add("2001:db8::8:800:200c:417a")
	f.Add("1:2:3:4:5:6:7:8")
	f.Add("a::b::c")
	f.Add("abcde::")
	f.Add("")
	f.Add(":::")
	f.Add("ffff:ffff:ffff:ffff:ffff:ffff:ffff:ffff")

	f.Fuzz(func(t *testing.T, s string) {
		addr, err := Parse(s)
		if err != nil {
			return
		}
		// 规范短格式必须能原样往返
		canonical := addr.String()
		back, err := Parse(canonical)
		if err != nil {
			t.Fatalf("Parse(String(%q)) failed: %v (canonical %q)", s, err, canonical)
		}
		if back != addr {
			t.Errorf("round-trip mismatch: %q -> %q -> %s", s, canonical, back)
		}

		// 四种模式组合都必须往返到同一个值
		for _, o := range []FormatOptions{
			{Compress, Trim}, {Compress, Pad}, {Expand, Trim}, {Expand, Pad},
		} {
			text := addr.Format(o)
			again, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse(Format(%q, %+v)) failed: %v", s, o, err)
			}
			if again != addr {
				t.Errorf("mode %+v round-trip mismatch: %q -> %q", o, s, text)
			}
			// 同模式二次格式化必须逐字节一致
			if second := again.Format(o); second != text {
				t.Errorf("mode %+v not idempotent: %q then %q", o, text, second)
			}
		}
	})
}

func FuzzStringMatchesNetip(f *testing.F) {
	f.Add("::")
	f.Add("::1")
	f.Add("2001:db8::1")
	f.Add("1:0:2:3:4:5:6:7")
	f.Add("ff02::1:ff00:0")

	f.Fuzz(func(t *testing.T, s string) {
		addr, err := Parse(s)
		if err != nil {
			return
		}
		nip := addr.Netip()
		// netip 对 IPv4-mapped 区段输出内嵌点分十进制，跳过
		if nip.Is4In6() {
			return
		}
		if addr.String() != nip.String() {
			t.Errorf("canonical form diverges from netip for %q: %q vs %q",
				s, addr.String(), nip.String())
		}
	})
}

// =============================================================================
// big.Int 往返模糊测试
// =============================================================================

func FuzzBigIntRoundTrip(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(0), uint64(1))
	f.Add(^uint64(0), ^uint64(0))
	f.Add(uint64(0x20010db800000000), uint64(0x417a))

	f.Fuzz(func(t *testing.T, hi, lo uint64) {
		addr := Addr{uint128{hi, lo}}
		back, err := FromBigInt(addr.BigInt())
		if err != nil {
			t.Fatalf("FromBigInt(BigInt) failed for %016x%016x: %v", hi, lo, err)
		}
		if back != addr {
			t.Errorf("big.Int round-trip mismatch: %016x%016x -> %s", hi, lo, back)
		}
	})
}
