package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	appbook "github.com/xiebiao/library/internal/application/book"
	"github.com/xiebiao/library/pkg/notice"
)

func newBookCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "book",
		Short: "在命令行中管理图书目录",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(
		newAddCommand(opts),
		newListCommand(opts),
		newSearchCommand(opts),
		newFindCommand(opts),
		newUpdateCommand(opts),
		newDeleteCommand(opts),
		newExportCommand(opts),
	)
	return cmd
}

// withApp 为子命令组装依赖，结束时释放资源
func withApp(opts *rootOptions, run func(cmd *cobra.Command, args []string, app *App) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		app, cleanup, err := bootstrap(cmd.Context(), opts.configPath)
		if err != nil {
			return err
		}
		defer cleanup()

		return run(cmd, args, app)
	}
}

func newAddCommand(opts *rootOptions) *cobra.Command {
	var req appbook.AddBookRequest

	cmd := &cobra.Command{
		Use:   "add ID",
		Short: "新增图书（默认可借）",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *App) error {
			req.ID = args[0]
			result, err := app.AddBook.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			printNotice(cmd.OutOrStdout(), result.Notice)
			return nil
		}),
	}
	cmd.Flags().StringVar(&req.Title, "title", "", "书名")
	cmd.Flags().StringVar(&req.Author, "author", "", "作者")
	cmd.Flags().StringVar(&req.Genre, "genre", "", "类别")
	return cmd
}

func newListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "查看全部图书",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *App) error {
			result, err := app.ListBooks.Execute(cmd.Context())
			if err != nil {
				return err
			}
			printNotice(cmd.OutOrStdout(), result.Notice)
			return printBooks(cmd.OutOrStdout(), result.Books)
		}),
	}
}

func newSearchCommand(opts *rootOptions) *cobra.Command {
	var field string

	cmd := &cobra.Command{
		Use:   "search [TERM]",
		Short: "按书名或作者搜索（不区分大小写，关键词为空时匹配全部）",
		Args:  cobra.MaximumNArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *App) error {
			req := appbook.SearchBooksRequest{Field: field}
			if len(args) == 1 {
				req.Term = args[0]
			}

			result, err := app.SearchBooks.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			printNotice(cmd.OutOrStdout(), result.Notice)
			return printBooks(cmd.OutOrStdout(), result.Books)
		}),
	}
	cmd.Flags().StringVarP(&field, "field", "f", "Title", "搜索字段：Title | Author")
	return cmd
}

func newFindCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "find ID",
		Short: "按编号查看图书",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *App) error {
			result, err := app.FindBook.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printBooks(cmd.OutOrStdout(), []appbook.BookItem{*result})
		}),
	}
}

// newUpdateCommand 修改图书
// 与表单页面一样分两步：先查出当前值，再用命令行上指定的字段覆盖后提交
func newUpdateCommand(opts *rootOptions) *cobra.Command {
	var title, author, genre, available string

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "修改图书（未指定的字段保持不变）",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *App) error {
			current, err := app.FindBook.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			req := appbook.UpdateBookRequest{
				ID:        current.ID,
				Title:     current.Title,
				Author:    current.Author,
				Genre:     current.Genre,
				Available: current.Available,
			}
			flags := cmd.Flags()
			if flags.Changed("title") {
				req.Title = title
			}
			if flags.Changed("author") {
				req.Author = author
			}
			if flags.Changed("genre") {
				req.Genre = genre
			}
			if flags.Changed("available") {
				req.Available = available
			}

			result, err := app.UpdateBook.Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			printNotice(cmd.OutOrStdout(), result.Notice)
			return printBooks(cmd.OutOrStdout(), []appbook.BookItem{result.Book})
		}),
	}
	cmd.Flags().StringVar(&title, "title", "", "书名")
	cmd.Flags().StringVar(&author, "author", "", "作者")
	cmd.Flags().StringVar(&genre, "genre", "", "类别")
	cmd.Flags().StringVar(&available, "available", "", "借阅状态：Yes | No")
	return cmd
}

func newDeleteCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "删除图书",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *App) error {
			n, err := app.DeleteBook.Execute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printNotice(cmd.OutOrStdout(), n)
			return nil
		}),
	}
}

func newExportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "以CSV格式输出全部图书",
		Args:  cobra.NoArgs,
		RunE: withApp(opts, func(cmd *cobra.Command, args []string, app *App) error {
			return app.ExportBooks.Execute(cmd.Context(), cmd.OutOrStdout())
		}),
	}
}

// =========================================
// 输出
// =========================================

func printNotice(w io.Writer, n notice.Notice) {
	if n.IsZero() {
		return
	}
	fmt.Fprintf(w, "[%s] %s\n", n.Level, n.Message)
}

// printBooks 表格输出，列顺序与数据文件一致
func printBooks(w io.Writer, books []appbook.BookItem) error {
	if len(books) == 0 {
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BOOK ID\tTITLE\tAUTHOR\tGENRE\tAVAILABLE")
	for _, b := range books {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.Title, b.Author, b.Genre, b.Available)
	}
	return tw.Flush()
}
