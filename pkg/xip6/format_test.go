package xip6

import (
	"errors"
	"testing"
)

func TestAddrFormat(t *testing.T) {
	tests := []struct {
		name  string
		addr  string
		opts  FormatOptions
		want  string
	}{
		// "::" 的四种模式组合
		{"zero_short", "::", FormatOptions{Compress, Trim}, "::"},
		{"zero_long", "::", FormatOptions{Expand, Pad}, "0000:0000:0000:0000:0000:0000:0000:0000"},
		{"zero_pad_compress", "::", FormatOptions{Compress, Pad}, "::"},
		{"zero_trim_expand", "::", FormatOptions{Expand, Trim}, "0:0:0:0:0:0:0:0"},

		// "1::" 的补位轴
		{"one_pad_compress", "1::", FormatOptions{Compress, Pad}, "0001::"},
		{"one_trim_compress", "1::", FormatOptions{Compress, Trim}, "1::"},
		{"one_long", "1::", FormatOptions{Expand, Pad}, "0001:0000:0000:0000:0000:0000:0000:0000"},

		// 零段选择
		{"leftmost_longest", "1:0:0:2:0:0:0:3", FormatOptions{}, "1:0:0:2::3"},
		{"tie_keeps_leftmost", "1:0:0:2:3:0:0:4", FormatOptions{}, "1::2:3:0:0:4"},
		{"single_zero_not_elided", "1:0:2:3:4:5:6:7", FormatOptions{}, "1:0:2:3:4:5:6:7"},
		{"no_zero_run", "1:2:3:4:5:6:7:8", FormatOptions{}, "1:2:3:4:5:6:7:8"},
		{"run_at_head", "0:0:1:2:3:4:5:6", FormatOptions{}, "::1:2:3:4:5:6"},
		{"run_at_tail", "1:2:3:4:5:6:0:0", FormatOptions{}, "1:2:3:4:5:6::"},

		// 小写输出
		{"lowercase", "ABCD:EF01:2345:6789:ABCD:EF01:2345:6789", FormatOptions{},
			"abcd:ef01:2345:6789:abcd:ef01:2345:6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MustParse(tt.addr).Format(tt.opts)
			if got != tt.want {
				t.Errorf("Format(%q, %+v) = %q, want %q", tt.addr, tt.opts, got, tt.want)
			}
		})
	}
}

func TestFormatIdempotence(t *testing.T) {
	modes := []FormatOptions{
		{Compress, Trim},
		{Compress, Pad},
		{Expand, Trim},
		{Expand, Pad},
	}
	addrs := []string{"::", "1::", "2001:db8::8:800:200c:417a", "1:2:3:4:5:6:7:8"}
	for _, s := range addrs {
		for _, o := range modes {
			once := MustParse(s).Format(o)
			twice := MustParse(once).Format(o)
			if once != twice {
				t.Errorf("format not idempotent for %q %+v: %q then %q", s, o, once, twice)
			}
		}
	}
}

func TestParseFormatFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   string
		want    FormatOptions
		wantErr error
	}{
		{"empty_default", "", FormatOptions{Compress, Trim}, nil},
		{"short", "s", FormatOptions{Compress, Trim}, nil},
		{"long", "l", FormatOptions{Expand, Pad}, nil},
		{"pad_compress", "cp", FormatOptions{Compress, Pad}, nil},
		{"trim_expand", "et", FormatOptions{Expand, Trim}, nil},

		// 同轴冲突，后者生效
		{"last_wins_compression", "ce", FormatOptions{Expand, Trim}, nil},
		{"last_wins_padding", "pt", FormatOptions{Compress, Trim}, nil},
		{"long_then_trim", "lt", FormatOptions{Expand, Trim}, nil},
		{"short_then_pad", "sp", FormatOptions{Compress, Pad}, nil},

		{"unknown_flag", "x", FormatOptions{}, ErrBadFormatFlag},
		{"unknown_after_valid", "sx", FormatOptions{}, ErrBadFormatFlag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormatFlags(tt.flags)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("ParseFormatFlags(%q) error = %v, want %v", tt.flags, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormatFlags(%q) unexpected error: %v", tt.flags, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormatFlags(%q) = %+v, want %+v", tt.flags, got, tt.want)
			}
		})
	}
}

func TestFormatFlags(t *testing.T) {
	addr := MustParse("1::")
	got, err := addr.FormatFlags("cp")
	if err != nil {
		t.Fatalf("FormatFlags(\"cp\") error: %v", err)
	}
	if got != "0001::" {
		t.Errorf("FormatFlags(\"cp\") = %q, want %q", got, "0001::")
	}

	if _, err := addr.FormatFlags("q"); !errors.Is(err, ErrBadFormatFlag) {
		t.Errorf("FormatFlags(\"q\") error = %v, want ErrBadFormatFlag", err)
	}
}

func TestRoundTripCanonical(t *testing.T) {
	// 规范短格式字符串解析后再格式化必须原样返回
	canonical := []string{
		"::",
		"::1",
		"1::",
		"2001:db8::8:800:200c:417a",
		"1:2:3:4:5:6:7:8",
		"fe80::1",
		"ff02::1:ff00:0",
		"1:0:2:3:4:5:6:7",
	}
	for _, s := range canonical {
		got := MustParse(s).String()
		if got != s {
			t.Errorf("round-trip: %q -> %q", s, got)
		}
	}
}
