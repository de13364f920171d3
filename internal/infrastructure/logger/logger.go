package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

// New 根据配置创建结构化日志
// 设计说明：
// 1. console格式使用tint输出带颜色的文本，只有输出到终端时才启用颜色
// 2. json格式使用slog自带的JSONHandler，便于日志采集
// 3. 输出到文件时返回的cleanup负责关闭文件
func New(cfg *config.Config) (*slog.Logger, func(), error) {
	level, err := parseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		file    *os.File
		cleanup = func() {}
	)
	switch cfg.Log.Output {
	case "", "stderr":
		file = os.Stderr
	case "stdout":
		file = os.Stdout
	default:
		file, err = os.OpenFile(cfg.Log.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("打开日志文件失败: %w", err)
		}
		cleanup = func() { _ = file.Close() }
	}

	color := cfg.Log.Format != "json" && isatty.IsTerminal(file.Fd())
	var w io.Writer = file
	if color {
		w = colorable.NewColorable(file)
	}

	return slog.New(NewHandler(w, cfg.Log.Format, level, color)), cleanup, nil
}

// NewHandler 创建slog处理器
func NewHandler(w io.Writer, format string, level slog.Leveler, color bool) slog.Handler {
	if format == "json" {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
		NoColor:    !color,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// 空字符串属性不输出（如列表操作没有book_id）
			if a.Value.Kind() == slog.KindString && a.Value.String() == "" && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	})
}

// parseLevel 解析日志级别，空值为info
func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("无效的日志级别: %s", s)
	}
	return level, nil
}

// Discard 丢弃所有输出的日志（测试用）
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

// Since 返回从start开始的耗时（微秒精度），用于日志属性
func Since(start time.Time) time.Duration {
	return time.Since(start).Round(time.Microsecond)
}
