package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCmdFmt(t *testing.T) {
	tests := []struct {
		name  string
		flags string
		args  []string
		want  string
	}{
		{"canonical", "s", []string{"2001:0DB8::0001"}, "2001:db8::1\n"},
		{"long", "l", []string{"::1"}, "0000:0000:0000:0000:0000:0000:0000:0001\n"},
		{"expand only", "e", []string{"::1"}, "0:0:0:0:0:0:0:1\n"},
		{"pad only", "p", []string{"1::2"}, "0001::0002\n"},
		{"multiple args", "s", []string{"::1", "::2"}, "::1\n::2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := cmdFmt(&buf, tt.flags, tt.args); err != nil {
				t.Fatalf("cmdFmt failed: %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("no args", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdFmt(&buf, "s", nil)
		var usageErr *usageError
		if !errors.As(err, &usageErr) {
			t.Fatalf("expected *usageError, got %T: %v", err, err)
		}
	})

	t.Run("bad flag", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdFmt(&buf, "x", []string{"::1"})
		var usageErr *usageError
		if !errors.As(err, &usageErr) {
			t.Fatalf("expected *usageError, got %T: %v", err, err)
		}
	})

	t.Run("bad address", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdFmt(&buf, "s", []string{"not-an-address"})
		if err == nil {
			t.Fatal("expected error")
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			t.Errorf("parse failure should not be usageError: %v", err)
		}
	})
}

func TestCmdNetContains(t *testing.T) {
	t.Run("contained", func(t *testing.T) {
		var buf bytes.Buffer
		if err := cmdNetContains(&buf, "2001:db8::/32", "2001:db8::1"); err != nil {
			t.Fatalf("cmdNetContains failed: %v", err)
		}
		if got := buf.String(); got != "true\n" {
			t.Errorf("output = %q, want %q", got, "true\n")
		}
	})

	t.Run("not contained", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdNetContains(&buf, "2001:db8::/32", "2001:db9::1")
		var exitErr *exitError
		if !errors.As(err, &exitErr) || exitErr.code != 1 {
			t.Fatalf("expected exitError{1}, got %T: %v", err, err)
		}
		if got := buf.String(); got != "false\n" {
			t.Errorf("output = %q, want %q", got, "false\n")
		}
	})

	t.Run("bad cidr", func(t *testing.T) {
		var buf bytes.Buffer
		if err := cmdNetContains(&buf, "2001:db8::1", "::1"); err == nil {
			t.Fatal("expected error for cidr without prefix")
		}
	})
}

func TestCmdNetList(t *testing.T) {
	ctx := context.Background()

	t.Run("whole small network", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdNetList(ctx, &buf, "s", "2001:db8::/126", listBounds{step: 1, limit: defaultListLimit})
		if err != nil {
			t.Fatalf("cmdNetList failed: %v", err)
		}
		want := "2001:db8::\n2001:db8::1\n2001:db8::2\n2001:db8::3\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("limit truncates", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdNetList(ctx, &buf, "s", "2001:db8::/64", listBounds{step: 1, limit: 3})
		if err != nil {
			t.Fatalf("cmdNetList failed: %v", err)
		}
		if got := len(strings.Split(strings.TrimSpace(buf.String()), "\n")); got != 3 {
			t.Errorf("line count = %d, want 3", got)
		}
	})

	t.Run("stepped window", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdNetList(ctx, &buf, "s", "2001:db8::/120", listBounds{
			start: 0, hasStart: true,
			stop: 16, hasStop: true,
			step: 8, limit: defaultListLimit,
		})
		if err != nil {
			t.Fatalf("cmdNetList failed: %v", err)
		}
		want := "2001:db8::\n2001:db8::8\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("negative step", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdNetList(ctx, &buf, "s", "2001:db8::/126", listBounds{step: -1, limit: 2})
		if err != nil {
			t.Fatalf("cmdNetList failed: %v", err)
		}
		want := "2001:db8::3\n2001:db8::2\n"
		if got := buf.String(); got != want {
			t.Errorf("output = %q, want %q", got, want)
		}
	})

	t.Run("zero step is usage error", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdNetList(ctx, &buf, "s", "2001:db8::/126", listBounds{step: 0, limit: 1})
		var usageErr *usageError
		if !errors.As(err, &usageErr) {
			t.Fatalf("expected *usageError, got %T: %v", err, err)
		}
	})

	t.Run("negative limit is usage error", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdNetList(ctx, &buf, "s", "2001:db8::/126", listBounds{step: 1, limit: -1})
		var usageErr *usageError
		if !errors.As(err, &usageErr) {
			t.Fatalf("expected *usageError, got %T: %v", err, err)
		}
	})

	t.Run("canceled context stops enumeration", func(t *testing.T) {
		canceled, cancel := context.WithCancel(context.Background())
		cancel()
		var buf bytes.Buffer
		err := cmdNetList(canceled, &buf, "s", "2001:db8::/64", listBounds{step: 1, limit: 0})
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})
}

const testPlanYAML = `
format: "l"
networks:
  - name: backbone
    cidr: "2001:db8::/32"
  - name: lab
    cidr: "2001:db8:ffff::/48"
`

func writePlan(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	if err := os.WriteFile(path, []byte(testPlanYAML), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	return path
}

func TestCmdPlanShow(t *testing.T) {
	var buf bytes.Buffer
	if err := cmdPlanShow(&buf, writePlan(t)); err != nil {
		t.Fatalf("cmdPlanShow failed: %v", err)
	}
	want := "backbone\t2001:0db8:0000:0000:0000:0000:0000:0000/32\n" +
		"lab\t2001:0db8:ffff:0000:0000:0000:0000:0000/48\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestCmdPlanCovers(t *testing.T) {
	path := writePlan(t)

	t.Run("nested owners", func(t *testing.T) {
		var buf bytes.Buffer
		if err := cmdPlanCovers(&buf, path, "2001:db8:ffff::1"); err != nil {
			t.Fatalf("cmdPlanCovers failed: %v", err)
		}
		if got := buf.String(); got != "backbone\nlab\n" {
			t.Errorf("output = %q, want %q", got, "backbone\nlab\n")
		}
	})

	t.Run("no owner", func(t *testing.T) {
		var buf bytes.Buffer
		err := cmdPlanCovers(&buf, path, "fe80::1")
		var exitErr *exitError
		if !errors.As(err, &exitErr) || exitErr.code != 1 {
			t.Fatalf("expected exitError{1}, got %T: %v", err, err)
		}
		if got := buf.String(); got != "none\n" {
			t.Errorf("output = %q, want %q", got, "none\n")
		}
	})
}

func TestUsageErrorType(t *testing.T) {
	err := &usageError{msg: "test error"}
	if err.Error() != "test error" {
		t.Errorf("usageError.Error() = %q, want %q", err.Error(), "test error")
	}
	var target *usageError
	if !errors.As(error(err), &target) {
		t.Error("errors.As failed for *usageError")
	}
}

func TestIsCLIUsageError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"unknown flag", errors.New("flag provided but not defined: -bogus"), true},
		{"unknown command", errors.New("No help topic for 'bogus'"), true},
		{"plain error", errors.New("something else"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCLIUsageError(tt.err); got != tt.want {
				t.Errorf("isCLIUsageError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{"fmt ok", []string{"v6ctl", "fmt", "::1"}, 0},
		{"fmt bad addr", []string{"v6ctl", "fmt", "zz::zz::zz"}, 1},
		{"fmt bad flag", []string{"v6ctl", "-f", "x", "fmt", "::1"}, 2},
		{"contains true", []string{"v6ctl", "net", "contains", "2001:db8::/32", "2001:db8::1"}, 0},
		{"contains false", []string{"v6ctl", "net", "contains", "2001:db8::/32", "::1"}, 1},
		{"contains missing arg", []string{"v6ctl", "net", "contains", "2001:db8::/32"}, 2},
		{"list zero step", []string{"v6ctl", "net", "list", "2001:db8::/126", "--step", "0"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// run 会向 Root().Writer (os.Stdout) 输出，仅验证退出码
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
