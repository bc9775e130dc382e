// v6ctl 是 IPv6 地址与网络的命令行工具。
//
// 用法:
//
//	v6ctl [全局选项] <命令> [命令参数]
//
// 全局选项:
//
//	-f, --format   输出格式标志 (默认: "s")
//	               s=短格式 l=长格式 c=压缩 e=展开 p=补位 t=去前导零
//
// 命令:
//
//	fmt <addr>...                 按指定格式重排地址写法
//	net contains <cidr> <addr>    判断地址是否属于网络
//	net list <cidr>               枚举网络内的地址
//	plan show <file>              展示规划文件中的命名网络
//	plan covers <file> <addr>     查询地址在规划中的归属
//
// 退出码:
//
//	0: 命令执行成功（contains/covers 命令: 结果为真）
//	1: 命令执行失败（contains/covers 命令: 结果为假）
//	2: 参数错误（无效格式标志、缺少必需参数、未知命令等）
//
// 示例:
//
//	v6ctl fmt 2001:0DB8::0001                     # -> 2001:db8::1
//	v6ctl -f l fmt ::1                            # 长格式输出
//	v6ctl net contains 2001:db8::/32 2001:db8::1  # true, 退出码 0
//	v6ctl net list 2001:db8::/120 --step 16
//	v6ctl net list 2001:db8::/64 --start 256 --limit 4
//	v6ctl plan show plan.yaml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run(os.Args))
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "v6ctl",
		Usage:   "IPv6 地址与网络命令行工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "输出格式标志 (s/l/c/e/p/t)",
				Value:   "s",
			},
		},
		Commands:       createCommands(),
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run(args []string) int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
