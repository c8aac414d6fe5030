package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "espuma"

	calculationsTotal = "calculations_total"

	// Labels
	formulationLabel = "formulation"
	outcomeLabel     = "outcome"
)

var calculationsTotalMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      calculationsTotal,
		Help:      "number of calculations by formulation and outcome",
	},
	[]string{formulationLabel, outcomeLabel},
)

// IncreaseCalculationsTotalMetric counts one evaluated calculation.
// outcome is one of formulation.Outcome's values.
func IncreaseCalculationsTotalMetric(formulation, outcome string) {
	calculationsTotalMetric.With(prometheus.Labels{
		formulationLabel: formulation,
		outcomeLabel:     outcome,
	}).Inc()
}

func init() {
	prometheus.MustRegister(calculationsTotalMetric)
}
