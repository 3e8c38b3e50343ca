package reconciler

import (
	"github.com/makerlabs/print-billing/eventio"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	outcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "print_billing_reconcile_outcomes_total",
		Help: "Terminal outcomes of reconciliation passes, by outcome.",
	}, []string{"outcome"})

	chargesPostedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "print_billing_charges_posted_total",
		Help: "Charge lines successfully posted to the billing API.",
	})

	chargesPostedAmount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "print_billing_charges_posted_amount",
		Help: "Cumulative amount of posted charge lines.",
	})
)

func recordOutcome(outcome eventio.Outcome) {
	outcomesTotal.WithLabelValues(string(outcome)).Inc()
}

func recordCharge(amount float64) {
	chargesPostedTotal.Inc()
	chargesPostedAmount.Add(amount)
}
