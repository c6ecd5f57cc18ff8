// Package metrics 提供基于Prometheus的指标收集
//
// 指标命名规范：
// - Counter以_total结尾（http_requests_total）
// - Histogram以单位结尾（http_request_duration_seconds）
// - Gauge使用现在时态（http_requests_in_progress）
//
// 使用方式：
//  1. main中调用metrics.Init()注册指标
//  2. HTTP中间件记录请求指标
//  3. /metrics端点由promhttp.Handler()暴露，供Prometheus抓取
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/books）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// SearchQueriesTotal 搜索请求总数（Counter）
	// 标签：scope（book/author/publisher/category/comment/global）
	SearchQueriesTotal *prometheus.CounterVec

	// SearchDuration 搜索耗时（Histogram）
	SearchDuration prometheus.Histogram

	// SoftDeletesTotal 软删除操作总数（Counter）
	// 标签：entity、op（delete/restore）
	SoftDeletesTotal *prometheus.CounterVec

	// PartitionRejectsTotal 因created_at超出分区范围被拒绝的写入总数（Counter）
	PartitionRejectsTotal prometheus.Counter
)

// Init 注册所有指标（幂等）
func Init() {
	if initialized {
		return
	}
	initialized = true

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	SearchQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_queries_total",
			Help: "全文搜索请求总数",
		},
		[]string{"scope"},
	)

	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_duration_seconds",
			Help:    "全文搜索耗时分布",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
	)

	SoftDeletesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soft_deletes_total",
			Help: "软删除/恢复操作总数",
		},
		[]string{"entity", "op"},
	)

	PartitionRejectsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "partition_rejects_total",
			Help: "created_at超出分区年份范围被拒绝的写入总数",
		},
	)
}
