// Package metrics defines the custom Prometheus metrics for the AgriSmart
// marketplace API. It is the single source of truth for metric names, labels,
// and help strings; HTTP-level metrics come from the echoprometheus
// middleware wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agrismart"

// RegistrationsTotal counts successfully created accounts.
// Label:
//   - role: "farmer" or "buyer"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user accounts created, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts that reached credential resolution.
// Label:
//   - result: "success", "not_found", or "bad_password"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// ListingsCreatedTotal counts newly published produce listings.
// Label:
//   - unit: "kg", "bag", or "crate"
var ListingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "listings_created_total",
		Help:      "Total number of produce listings created, by unit.",
	},
	[]string{"unit"},
)

// PriceCacheTotal counts price board cache lookups.
// Label:
//   - result: "hit" or "miss"
var PriceCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_cache_total",
		Help:      "Total number of price board cache lookups, by result (hit/miss).",
	},
	[]string{"result"},
)
