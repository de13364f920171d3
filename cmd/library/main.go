// Command library 单用户图书目录管理
//
//	library serve                 启动表单页面和JSON接口
//	library book add|list|...     在命令行中直接操作目录
//
// @title           图书管理系统 API
// @version         1.0
// @description     单用户图书目录管理：新增、查看、搜索、修改、删除，数据保存在CSV文件中
// @host            localhost:8080
// @BasePath        /
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/xiebiao/library/pkg/errors"
	"github.com/xiebiao/library/pkg/notice"
)

// rootOptions 全局参数
type rootOptions struct {
	configPath string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "library",
		Short:         "图书管理系统",
		Long:          "单用户图书目录管理，数据保存在一个CSV文件中（默认library_books.csv）",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "配置文件路径（默认查找./config/config.yaml）")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newBookCommand(opts))
	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		// 业务错误只显示提示信息，配置等启动错误原样输出
		if apperrors.IsAppError(err) {
			printNotice(os.Stderr, notice.FromError(err))
		} else {
			fmt.Fprintln(os.Stderr, "❌", err)
		}
		os.Exit(1)
	}
}
