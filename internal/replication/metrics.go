package replication

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// replicationFailures counts backup-first steps that aborted the write
	replicationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ftwallet",
			Subsystem: "replication",
			Name:      "failures_total",
			Help:      "Replication steps that aborted a write, by operation and reason",
		},
		[]string{"operation", "reason"},
	)

	// failoverModeGauge is 1 while the primary writes without the backup
	failoverModeGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "ftwallet",
			Subsystem: "replication",
			Name:      "failover_mode",
			Help:      "1 when failover mode is active, 0 otherwise",
		},
	)

	// healthProbeTotal counts peer health probes by result
	healthProbeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ftwallet",
			Subsystem: "replication",
			Name:      "health_probes_total",
			Help:      "Peer health probes by result",
		},
		[]string{"result"},
	)
)
