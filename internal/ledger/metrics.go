package ledger

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// txnTotal counts transaction outcomes by operation and final status
	txnTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ftwallet",
			Subsystem: "ledger",
			Name:      "transactions_total",
			Help:      "Total number of ledger transactions by final status",
		},
		[]string{"operation", "status"},
	)
)
