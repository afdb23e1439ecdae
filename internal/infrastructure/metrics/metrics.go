package metrics

import (
	"net/http"

	"resident_service/internal/domain/entities"
	"resident_service/internal/usecase/interfaces"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	Advisories     *prometheus.CounterVec
	OrdersUpserted *prometheus.CounterVec
	OrdersDeleted  prometheus.Counter
	Sessions       prometheus.Gauge
	SignIns        prometheus.Counter
}

var (
	_ interfaces.IAdvisoryObserver = (*Registry)(nil)
	_ interfaces.IWorkflowObserver = (*Registry)(nil)
)

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	advisories := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resident_advisory_events_total",
		Help: "Advisory requests and results by kind and outcome.",
	}, []string{"kind", "outcome"})
	upserted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "resident_orders_upserted_total",
		Help: "Orders written to session stores.",
	}, []string{"op"})
	deleted := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "resident_orders_deleted_total",
		Help: "Orders cancelled.",
	})
	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "resident_sessions_open",
		Help: "Resident sessions currently open.",
	})
	signIns := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "resident_sign_ins_total",
		Help: "Successful sign-ins.",
	})

	r.MustRegister(advisories, upserted, deleted, sessions, signIns)
	return &Registry{
		reg:            r,
		Advisories:     advisories,
		OrdersUpserted: upserted,
		OrdersDeleted:  deleted,
		Sessions:       sessions,
		SignIns:        signIns,
	}
}

func (r *Registry) ObserveAdvisory(kind entities.AdvisoryKind, outcome entities.AdvisoryOutcome) {
	r.Advisories.WithLabelValues(string(kind), string(outcome)).Inc()
}

func (r *Registry) OrderUpserted(inserted bool) {
	op := "update"
	if inserted {
		op = "insert"
	}
	r.OrdersUpserted.WithLabelValues(op).Inc()
}

func (r *Registry) OrderDeleted() { r.OrdersDeleted.Inc() }

func (r *Registry) SessionOpened() {
	r.Sessions.Inc()
	r.SignIns.Inc()
}

func (r *Registry) SessionClosed() { r.Sessions.Dec() }

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
