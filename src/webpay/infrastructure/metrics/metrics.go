package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// TransaccionesTotal cuenta las transacciones WebPay por estado final.
var TransaccionesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "webpay_transacciones_total",
		Help: "Transacciones WebPay procesadas, etiquetadas por estado",
	},
	[]string{"estado"},
)
