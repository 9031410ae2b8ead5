// Package metrics defines all custom Prometheus metrics for the DVD
// catalogue API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register themselves with the default
// registry via promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dvd_catalog"

// ── Cache metrics ─────────────────────────────────────────────────────────────

// CacheHitsTotal counts catalogue reads served from the cache without
// touching the store.
var CacheHitsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total number of catalogue lookups served from the cache.",
	},
)

// CacheMissesTotal counts catalogue reads that fell through to the store.
var CacheMissesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Total number of catalogue lookups that missed the cache.",
	},
)

// CacheErrorsTotal counts cache operations that failed. Cache errors are
// non-fatal (the request proceeds against the store), so a rising rate is
// the only signal of a degraded Redis.
// Label:
//   - op: "get", "put", "remove", or "decode"
var CacheErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_errors_total",
		Help:      "Total number of failed cache operations, by operation.",
	},
	[]string{"op"},
)

// ── Catalogue metrics ─────────────────────────────────────────────────────────

// DvdsCreatedTotal counts newly created catalogue items.
// Label:
//   - genre: the item's genre (e.g. "SCIENCE_FICTION")
var DvdsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dvds_created_total",
		Help:      "Total number of catalogue items created, by genre.",
	},
	[]string{"genre"},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)
