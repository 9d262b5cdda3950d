package service

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the catalog counters the service records.
type Metrics struct {
	ingested prometheus.Counter
	removed  prometheus.Counter
}

// NewMetrics registers the catalog metrics on reg. activeSessions, when
// non-nil, is exported as a gauge alongside them.
func NewMetrics(reg prometheus.Registerer, activeSessions func() float64) (*Metrics, error) {
	m := &Metrics{
		ingested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_documents_ingested_total",
			Help: "Total number of documents admitted into catalogs.",
		}),
		removed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "catalog_documents_removed_total",
			Help: "Total number of documents removed from catalogs.",
		}),
	}

	if err := reg.Register(m.ingested); err != nil {
		return nil, err
	}
	if err := reg.Register(m.removed); err != nil {
		return nil, err
	}

	if activeSessions != nil {
		gauge := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "catalog_sessions_active",
			Help: "Catalogs currently held in memory.",
		}, activeSessions)
		if err := reg.Register(gauge); err != nil {
			return nil, err
		}
	}

	return m, nil
}
