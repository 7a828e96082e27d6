package lexoffice

import (
	"github.com/prometheus/client_golang/prometheus"
)

var pushedOrders = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "lexoffice_pushed_orders_total",
		Help: "Orders pushed to the Lexoffice API by result.",
	},
	[]string{"status"},
)

func init() {
	prometheus.MustRegister(pushedOrders)
}
