package repo

// Shared execution helpers. Each borrows one pooled connection for the
// duration of the call and hands it back on every path: GORM's Scan closes the
// underlying *sql.Rows, and scalar reads go through *sql.Row, which releases
// on Scan.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// queryDur records query latency in seconds by operation name.
	queryDur = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "insights_query_duration_seconds",
			Help:    "Duration of analytics queries in seconds.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30},
		},
		[]string{"op"},
	)

	// queryErrs counts failed queries by operation name.
	queryErrs = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "insights_query_errors_total",
			Help: "Total number of failed analytics queries.",
		},
		[]string{"op"},
	)
)

func init() {
	prometheus.MustRegister(queryDur, queryErrs)
}

// observe records the outcome of op and wraps err with the operation name.
func observe(op string, start time.Time, err error) error {
	d := time.Since(start)
	queryDur.WithLabelValues(op).Observe(d.Seconds())
	if err != nil {
		queryErrs.WithLabelValues(op).Inc()
		return fmt.Errorf("%s: %w", op, err)
	}
	log.Debug().Str("op", op).Dur("took", d).Msg("query")
	return nil
}

// selectRows runs a read query and scans every row into a T. The result is
// never nil, so empty tables serialize as [].
func selectRows[T any](ctx context.Context, db *gorm.DB, op, query string, args ...any) ([]T, error) {
	start := time.Now()
	out := []T{}
	err := db.WithContext(ctx).Raw(query, args...).Scan(&out).Error
	if err != nil {
		return nil, observe(op, start, err)
	}
	return out, observe(op, start, nil)
}

// selectOne runs a query expected to return exactly one row and scans it
// into a T.
func selectOne[T any](ctx context.Context, db *gorm.DB, op, query string, args ...any) (T, error) {
	var out T
	start := time.Now()
	err := db.WithContext(ctx).Raw(query, args...).Scan(&out).Error
	return out, observe(op, start, err)
}

// scalar runs a single-value aggregate and coalesces NULL (e.g. SUM over no
// rows) to the zero value of T. It is the one place NULL aggregates are
// normalized.
func scalar[T any](ctx context.Context, db *gorm.DB, op, query string, args ...any) (T, error) {
	start := time.Now()
	var v sql.Null[T]
	tx := db.WithContext(ctx).Raw(query, args...)
	row := tx.Row()
	err := tx.Error
	if err == nil && row != nil {
		err = row.Scan(&v)
	}
	if err != nil {
		var zero T
		return zero, observe(op, start, err)
	}
	return coalesce(v), observe(op, start, nil)
}

// coalesce returns the value of n, or T's zero value when n is NULL.
func coalesce[T any](n sql.Null[T]) T {
	if !n.Valid {
		var zero T
		return zero
	}
	return n.V
}
