package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/markov/chain"
)

// Namespace prefixes every metric name.
const Namespace = "markov"

// ErrRegister indicates the collectors could not be registered.
var ErrRegister = errors.New("metrics: register collectors")

// Collector holds the chain metrics of one model.
type Collector struct {
	states       prometheus.Counter
	transitions  prometheus.Counter
	observations prometheus.Counter
	visits       prometheus.Counter
	walks        *prometheus.CounterVec
	walkLength   prometheus.Histogram
}

// New creates the collectors and registers them on reg under a constant
// model label.
func New(reg prometheus.Registerer, model string) (*Collector, error) {
	c := &Collector{
		states: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "states_total",
			Help:      "Distinct states registered.",
		}),
		transitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "transitions_total",
			Help:      "Distinct (from, to) pairs recorded.",
		}),
		observations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "observations_total",
			Help:      "Transition observations recorded, duplicates included.",
		}),
		visits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "visits_total",
			Help:      "States printed by generated walks.",
		}),
		walks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "walks_total",
			Help:      "Generated walks by stop reason.",
		}, []string{"reason"}),
		walkLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "walk_length",
			Help:      "Number of states per generated walk.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}

	wrapped := prometheus.WrapRegistererWith(prometheus.Labels{"model": model}, reg)
	for _, col := range []prometheus.Collector{
		c.states, c.transitions, c.observations, c.visits, c.walks, c.walkLength,
	} {
		if err := wrapped.Register(col); err != nil {
			return nil, fmt.Errorf("%w: model %q: %v", ErrRegister, model, err)
		}
	}

	return c, nil
}

// Hooks returns chain callbacks that update c.
func (c *Collector) Hooks() chain.Hooks {
	return chain.Hooks{
		OnAdd: func(chain.Ref) { c.states.Inc() },
		OnRecord: func(_, _ chain.Ref, count int) {
			c.observations.Inc()
			if count == 1 {
				c.transitions.Inc()
			}
		},
		OnVisit: func(chain.Ref, int) { c.visits.Inc() },
		OnStop: func(reason chain.StopReason, length int) {
			c.walks.WithLabelValues(reason.String()).Inc()
			c.walkLength.Observe(float64(length))
		},
	}
}
