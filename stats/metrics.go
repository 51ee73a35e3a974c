package stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	packetsSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dstorm_packets_sent_total",
		Help: "Total number of DHCP discovers reported as sent.",
	})

	packetRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dstorm_packets_rate",
		Help: "Packets per second over the last stats interval.",
	})

	packetAverageRate = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "dstorm_packets_average_rate",
		Help: "Packets per second since the reporter started.",
	})
)
