package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/xiebiao/library/internal/infrastructure/logger"
	"github.com/xiebiao/library/pkg/metrics"
	"github.com/xiebiao/library/pkg/tracing"
)

const (
	// RequestIDHeader 请求ID响应头
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey 请求ID在gin.Context中的键
	RequestIDKey = "request_id"

	slowRequestThreshold = 3 * time.Second
)

// Logger 请求日志中间件
// 1. 生成请求ID（客户端已带X-Request-ID时沿用）
// 2. 记录方法、路径、状态码、耗时、客户端IP
// 3. 启用Tracing中间件时附带trace_id和span_id
// 4. handler通过c.Error()登记的内部错误在这里统一输出
func Logger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()
		latency := logger.Since(start)

		attrs := []any{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
		}
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			attrs = append(attrs, "trace_id", traceID, "span_id", tracing.ExtractSpanID(c.Request.Context()))
		}

		switch {
		case c.Writer.Status() >= 500:
			log.Error("请求失败", append(attrs, "err", c.Errors.String())...)
		case len(c.Errors) > 0:
			log.Warn("请求返回业务错误", append(attrs, "err", c.Errors.String())...)
		case latency > slowRequestThreshold:
			log.Warn("慢请求", attrs...)
		default:
			log.Info("请求完成", attrs...)
		}
	}
}

// Metrics HTTP指标中间件
// path使用路由模板（如/api/v1/books/:id），避免编号进入标签导致基数膨胀
// 调用前需要先metrics.InitMetrics()
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.IncGauge(metrics.HTTPRequestsInProgress)
		defer metrics.DecGauge(metrics.HTTPRequestsInProgress)

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.IncCounterVec(metrics.HTTPRequestsTotal, map[string]string{
			"method": c.Request.Method,
			"path":   path,
			"status": strconv.Itoa(c.Writer.Status()),
		})
		metrics.ObserveHistogramVec(metrics.HTTPRequestDuration, map[string]string{
			"method": c.Request.Method,
			"path":   path,
		}, time.Since(start).Seconds())
	}
}
