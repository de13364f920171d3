// Package metrics 提供基于Prometheus的指标收集
//
// # 指标类型
//
//   - Counter（计数器）：只增不减，如HTTP请求总数、目录操作次数
//   - Gauge（仪表盘）：可增可减，如正在处理的请求数、目录中的图书数量
//   - Histogram（直方图）：观测值分布，如请求耗时、存储文件读写耗时
//
// # 使用示例
//
//	// 1. 程序启动时初始化
//	metrics.InitMetrics()
//
//	// 2. 在gin中暴露/metrics端点
//	r.GET("/metrics", gin.WrapH(metrics.Handler()))
//
//	// 3. 在业务代码中记录指标
//	metrics.RecordCatalogOperation("add", "success")
//
// # 命名规范
//
//  1. Counter以`_total`结尾
//  2. Histogram以单位结尾（`_seconds`）
//  3. 标签只使用有限取值（operation、result、method），不要用图书编号做标签
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// once 防止重复注册
	once sync.Once

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（路由模板，如/api/v1/books/:id）、status（200/404）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// CatalogOperationsTotal 目录操作总数（Counter）
	// 标签：operation（add/list/search/find/update/delete）、result（success/info/error）
	CatalogOperationsTotal *prometheus.CounterVec

	// CatalogBooks 最近一次加载时目录中的图书数量（Gauge）
	CatalogBooks prometheus.Gauge

	// 存储指标

	// StoreOperationDuration 存储文件读写耗时（Histogram）
	// 标签：operation（load/save/initialize）
	StoreOperationDuration *prometheus.HistogramVec

	// StoreErrorsTotal 存储文件读写失败次数（Counter）
	StoreErrorsTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 程序启动时调用，重复调用是安全的
func InitMetrics() {
	once.Do(func() {
		HTTPRequestsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "HTTP请求总数",
			},
			[]string{"method", "path", "status"},
		)

		HTTPRequestDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP请求耗时（秒）",
				// 桶设置：1ms、10ms、100ms、500ms、1s、5s
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5},
			},
			[]string{"method", "path"},
		)

		HTTPRequestsInProgress = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_progress",
				Help: "正在处理的HTTP请求数",
			},
		)

		CatalogOperationsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "library_catalog_operations_total",
				Help: "图书目录操作总数",
			},
			[]string{"operation", "result"},
		)

		CatalogBooks = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "library_catalog_books",
				Help: "最近一次加载时目录中的图书数量",
			},
		)

		StoreOperationDuration = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "library_store_operation_duration_seconds",
				Help: "图书数据文件读写耗时（秒）",
				// 整表读写，小目录通常在毫秒级
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
			},
			[]string{"operation"},
		)

		StoreErrorsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "library_store_errors_total",
				Help: "图书数据文件读写失败次数",
			},
			[]string{"operation"},
		)
	})
}

// Handler 返回/metrics端点的HTTP处理器
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordCatalogOperation 记录一次目录操作
// 未初始化时直接忽略（单元测试中不强制初始化指标）
func RecordCatalogOperation(operation, result string) {
	if CatalogOperationsTotal == nil {
		return
	}
	CatalogOperationsTotal.With(prometheus.Labels{"operation": operation, "result": result}).Inc()
}

// SetCatalogBooks 记录目录中的图书数量
func SetCatalogBooks(n int) {
	if CatalogBooks == nil {
		return
	}
	CatalogBooks.Set(float64(n))
}

// ObserveStoreOperation 记录一次存储读写
func ObserveStoreOperation(operation string, seconds float64, err error) {
	if StoreOperationDuration == nil {
		return
	}
	StoreOperationDuration.With(prometheus.Labels{"operation": operation}).Observe(seconds)
	if err != nil {
		StoreErrorsTotal.With(prometheus.Labels{"operation": operation}).Inc()
	}
}

// IncCounterVec 递增CounterVec（带标签）
func IncCounterVec(counter *prometheus.CounterVec, labels map[string]string) {
	counter.With(labels).Inc()
}

// IncGauge 递增Gauge
func IncGauge(gauge prometheus.Gauge) {
	gauge.Inc()
}

// DecGauge 递减Gauge
func DecGauge(gauge prometheus.Gauge) {
	gauge.Dec()
}

// ObserveHistogramVec 记录HistogramVec观测值（带标签）
func ObserveHistogramVec(histogram *prometheus.HistogramVec, labels map[string]string, value float64) {
	histogram.With(labels).Observe(value)
}
