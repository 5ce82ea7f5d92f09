// Package metrics registers the Prometheus collectors for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ProductsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_products_created_total",
		Help: "Total number of products created",
	})

	ProductsDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_products_deleted_total",
		Help: "Total number of products deleted",
	})

	StockMovementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_stock_movements_total",
		Help: "Total number of stock movements recorded",
	}, []string{"type"})

	InsufficientStockTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_insufficient_stock_rejections_total",
		Help: "Total number of OUT movements rejected for insufficient stock",
	})

	OrdersProcessedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventory_orders_processed_total",
		Help: "Total number of marketplace orders processed",
	}, []string{"platform"})

	ExportsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventory_exports_total",
		Help: "Total number of spreadsheet exports generated",
	})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
)
