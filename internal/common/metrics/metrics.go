// Package metrics registers the Prometheus collectors for the lending flow.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

type LoanPrometheusMetrics struct {
	loanOriginations      *prometheus.CounterVec
	originatedAmount      prometheus.Counter
	installmentsPaid      prometheus.Counter
	loansCompleted        prometheus.Counter
	settlementRejections  *prometheus.CounterVec
}

func NewLoanPrometheusMetrics(reg prometheus.Registerer) *LoanPrometheusMetrics {
	mtc := &LoanPrometheusMetrics{
		loanOriginations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_originations_total",
				Help: "Number of originated loans by installment count",
			},
			[]string{"number_of_installments"},
		),
		originatedAmount: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "loan_originated_amount_total",
				Help: "Sum of originated loan principal",
			},
		),
		installmentsPaid: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "loan_installments_paid_total",
				Help: "Number of installments settled by payments",
			},
		),
		loansCompleted: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "loans_completed_total",
				Help: "Number of loans fully repaid",
			},
		),
		settlementRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "loan_settlement_rejections_total",
				Help: "Number of rejected settlement attempts by reason",
			},
			[]string{"reason"},
		),
	}

	reg.MustRegister(
		mtc.loanOriginations,
		mtc.originatedAmount,
		mtc.installmentsPaid,
		mtc.loansCompleted,
		mtc.settlementRejections,
	)

	return mtc
}

func (m *LoanPrometheusMetrics) RecordOrigination(numberOfInstallments string, amount decimal.Decimal) {
	if m == nil {
		return
	}

	principal, _ := amount.Float64()
	m.loanOriginations.WithLabelValues(numberOfInstallments).Inc()
	m.originatedAmount.Add(principal)
}

func (m *LoanPrometheusMetrics) RecordSettlement(installmentsPaid int, completed bool) {
	if m == nil {
		return
	}

	m.installmentsPaid.Add(float64(installmentsPaid))
	if completed {
		m.loansCompleted.Inc()
	}
}

func (m *LoanPrometheusMetrics) RecordRejection(reason string) {
	if m == nil {
		return
	}

	m.settlementRejections.WithLabelValues(reason).Inc()
}
