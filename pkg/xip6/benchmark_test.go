package xip6

import (
	"net/netip"
	"testing"
)

var benchInputs = []struct {
	name string
	s    string
}{
	{"full", "2001:0db8:85a3:0000:0000:8a2e:0370:7334"},
	{"compressed", "2001:db8::8:800:200c:417a"},
	{"loopback", "::1"},
	{"zero", "::"},
}

func BenchmarkParse(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			for b.Loop() {
				if _, err := Parse(in.s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkParse_Netip(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			for b.Loop() {
				if _, err := netip.ParseAddr(in.s); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkFormat(b *testing.B) {
	addr := MustParse("2001:db8::8:800:200c:417a")
	modes := []struct {
		name string
		opts FormatOptions
	}{
		{"short", FormatOptions{Compress, Trim}},
		{"long", FormatOptions{Expand, Pad}},
	}
	for _, m := range modes {
		b.Run(m.name, func(b *testing.B) {
			for b.Loop() {
				_ = addr.Format(m.opts)
			}
		})
	}
}

func BenchmarkNetworkContains(b *testing.B) {
	net := MustParseNetwork("2001:db8::/32")
	addr := MustParse("2001:db8:1234::1")
	for b.Loop() {
		if !net.Contains(addr) {
			b.Fatal("expected containment")
		}
	}
}

func BenchmarkNetworkAddrs(b *testing.B) {
	net := MustParseNetwork("2001:db8::/120")
	for b.Loop() {
		n := 0
		for range net.Addrs() {
			n++
		}
		if n != 256 {
			b.Fatalf("got %d addrs", n)
		}
	}
}
