package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/v6kit/pkg/xip6"
	"github.com/omeyang/v6kit/pkg/xmemo"
	"github.com/omeyang/v6kit/pkg/xplan"
)

// defaultListLimit 是 net list 默认输出的地址条数上限。
// IPv6 网络动辄 2^64 个地址，无上限枚举几乎都是误操作。
const defaultListLimit = 256

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，main 统一映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

func usageErrorf(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// isCLIUsageError 识别 urfave/cli 框架自身产生的参数错误。
// 框架对未知 flag / 未知命令返回普通 error，只能按消息特征识别。
func isCLIUsageError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{
		"flag provided but not defined",
		"No help topic for",
		"unknown command",
		"invalid value",
	} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
// net list 枚举大网络时可能长时间输出，用户可通过再次 Ctrl+C 强制退出。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()

		<-sigCh
		signal.Stop(sigCh)
		os.Exit(130)
	}()
}

// parseCache 是进程级解析缓存。
// fmt / net 命令的批量参数里同一写法往往重复出现。
var parseCache = func() *xmemo.Cache {
	c, err := xmemo.New(xmemo.Config{})
	if err != nil {
		panic(err)
	}
	return c
}()

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createFmtCommand(),
		createNetCommand(),
		createPlanCommand(),
	}
}

// createFmtCommand 创建 fmt 子命令。
func createFmtCommand() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "按指定格式重排地址写法",
		ArgsUsage: "<addr>...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdFmt(cmd.Root().Writer, cmd.String("format"), cmd.Args().Slice())
		},
	}
}

// createNetCommand 创建 net 子命令组。
func createNetCommand() *cli.Command {
	return &cli.Command{
		Name:  "net",
		Usage: "网络包含判断与地址枚举",
		Commands: []*cli.Command{
			{
				Name:      "contains",
				Usage:     "判断地址是否属于网络",
				ArgsUsage: "<cidr> <addr>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					args := cmd.Args().Slice()
					if len(args) != 2 {
						return usageErrorf("net contains 需要 <cidr> <addr> 两个参数，收到 %d 个", len(args))
					}
					return cmdNetContains(cmd.Root().Writer, args[0], args[1])
				},
			},
			{
				Name:      "list",
				Usage:     "枚举网络内的地址",
				ArgsUsage: "<cidr>",
				Flags: []cli.Flag{
					&cli.Int64Flag{Name: "start", Usage: "起始偏移（可为负，相对网络基址）"},
					&cli.Int64Flag{Name: "stop", Usage: "终止偏移（不含；默认网络末尾之后）"},
					&cli.Int64Flag{Name: "step", Usage: "步长（可为负，不可为 0）", Value: 1},
					&cli.IntFlag{Name: "limit", Usage: "输出条数上限（0 表示不限）", Value: defaultListLimit},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					args := cmd.Args().Slice()
					if len(args) != 1 {
						return usageErrorf("net list 需要一个 <cidr> 参数，收到 %d 个", len(args))
					}
					return cmdNetList(ctx, cmd.Root().Writer, cmd.String("format"), args[0], listBounds{
						start:    cmd.Int64("start"),
						hasStart: cmd.IsSet("start"),
						stop:     cmd.Int64("stop"),
						hasStop:  cmd.IsSet("stop"),
						step:     cmd.Int64("step"),
						limit:    cmd.Int("limit"),
					})
				},
			},
		},
	}
}

// createPlanCommand 创建 plan 子命令组。
func createPlanCommand() *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "编址规划文件查询",
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "展示规划文件中的命名网络",
				ArgsUsage: "<file>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					args := cmd.Args().Slice()
					if len(args) != 1 {
						return usageErrorf("plan show 需要一个 <file> 参数，收到 %d 个", len(args))
					}
					return cmdPlanShow(cmd.Root().Writer, args[0])
				},
			},
			{
				Name:      "covers",
				Usage:     "查询地址在规划中的归属",
				ArgsUsage: "<file> <addr>",
				Action: func(_ context.Context, cmd *cli.Command) error {
					args := cmd.Args().Slice()
					if len(args) != 2 {
						return usageErrorf("plan covers 需要 <file> <addr> 两个参数，收到 %d 个", len(args))
					}
					return cmdPlanCovers(cmd.Root().Writer, args[0], args[1])
				},
			},
		},
	}
}

// cmdFmt 按格式标志重排每个地址的写法，每行一个。
func cmdFmt(w io.Writer, flags string, args []string) error {
	if len(args) == 0 {
		return usageErrorf("fmt 至少需要一个 <addr> 参数")
	}
	opts, err := xip6.ParseFormatFlags(flags)
	if err != nil {
		return usageErrorf("无效格式标志 %q: %v", flags, err)
	}

	for _, s := range args {
		addr, err := parseCache.ParseAddr(s)
		if err != nil {
			return fmt.Errorf("解析 %q 失败: %w", s, err)
		}
		fmt.Fprintln(w, addr.Format(opts))
	}
	return nil
}

// cmdNetContains 输出 true/false；不包含时以退出码 1 结束。
func cmdNetContains(w io.Writer, cidrArg, addrArg string) error {
	net, err := parseCache.ParseNetwork(cidrArg)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", cidrArg, err)
	}
	addr, err := parseCache.ParseAddr(addrArg)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", addrArg, err)
	}

	if !net.Contains(addr) {
		fmt.Fprintln(w, "false")
		return &exitError{code: 1}
	}
	fmt.Fprintln(w, "true")
	return nil
}

// listBounds 是 net list 的切片参数。
type listBounds struct {
	start    int64
	hasStart bool
	stop     int64
	hasStop  bool
	step     int64
	limit    int
}

// cmdNetList 枚举网络内的地址，每行一个。
func cmdNetList(ctx context.Context, w io.Writer, flags, cidrArg string, b listBounds) error {
	opts, err := xip6.ParseFormatFlags(flags)
	if err != nil {
		return usageErrorf("无效格式标志 %q: %v", flags, err)
	}
	if b.limit < 0 {
		return usageErrorf("--limit 不能为负: %d", b.limit)
	}

	net, err := parseCache.ParseNetwork(cidrArg)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", cidrArg, err)
	}

	start, stop := xip6.Bound{}, xip6.Bound{}
	if b.hasStart {
		start = xip6.OffsetBound(b.start)
	}
	if b.hasStop {
		stop = xip6.OffsetBound(b.stop)
	}

	sl, err := net.Slice(start, stop, b.step)
	if err != nil {
		if errors.Is(err, xip6.ErrZeroStep) {
			return usageErrorf("--step 不能为 0")
		}
		return err
	}

	n := 0
	for addr := range sl.Addrs() {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		fmt.Fprintln(w, addr.Format(opts))
		n++
		if b.limit > 0 && n >= b.limit {
			break
		}
	}
	return nil
}

// cmdPlanShow 按文件顺序输出 "name cidr"，CIDR 用规划声明的格式。
func cmdPlanShow(w io.Writer, path string) error {
	p, err := xplan.Load(path)
	if err != nil {
		return err
	}

	opts := p.Options()
	for _, name := range p.Names() {
		net, err := p.Network(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", name, net.Format(opts))
	}
	return nil
}

// cmdPlanCovers 输出包含地址的网络名；无归属时输出 none 并以退出码 1 结束。
func cmdPlanCovers(w io.Writer, path, addrArg string) error {
	p, err := xplan.Load(path)
	if err != nil {
		return err
	}
	addr, err := parseCache.ParseAddr(addrArg)
	if err != nil {
		return fmt.Errorf("解析 %q 失败: %w", addrArg, err)
	}

	owners := p.Owners(addr)
	if len(owners) == 0 {
		fmt.Fprintln(w, "none")
		return &exitError{code: 1}
	}
	for _, name := range owners {
		fmt.Fprintln(w, name)
	}
	return nil
}
