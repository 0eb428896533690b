// Package metrics exposes editor counters to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Recorder counts editor activity. A nil *Recorder is valid and records
// nothing, so callers never need to check whether metrics are enabled.
type Recorder struct {
	events   *prometheus.CounterVec
	actions  *prometheus.CounterVec
	messages *prometheus.CounterVec
	commits  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// New creates a recorder and registers its collectors with reg
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		events: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gosketch_input_events_total",
				Help: "Input events dispatched, by active mode and whether a binding consumed them",
			},
			[]string{"mode", "consumed"},
		),
		actions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gosketch_actions_total",
				Help: "Resolved key and mouse actions",
			},
			[]string{"action"},
		),
		messages: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gosketch_stack_messages_total",
				Help: "Mode stack messages applied, by operation and outcome",
			},
			[]string{"op", "result"},
		),
		commits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gosketch_commits_total",
				Help: "Entities committed by tool modes",
			},
			[]string{"kind"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gosketch_commit_failures_total",
				Help: "Tool commits rejected by the entity store",
			},
			[]string{"kind"},
		),
	}
	for _, c := range []prometheus.Collector{r.events, r.actions, r.messages, r.commits, r.failures} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Event counts one dispatched input event
func (r *Recorder) Event(mode string, consumed bool) {
	if r == nil {
		return
	}
	label := "false"
	if consumed {
		label = "true"
	}
	r.events.WithLabelValues(mode, label).Inc()
}

// Action counts one resolved action
func (r *Recorder) Action(action string) {
	if r == nil {
		return
	}
	r.actions.WithLabelValues(action).Inc()
}

// Message counts one stack message; err is the outcome of applying it
func (r *Recorder) Message(op string, err error) {
	if r == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "rejected"
	}
	r.messages.WithLabelValues(op, result).Inc()
}

// Commit counts one committed entity of the given kind
func (r *Recorder) Commit(kind string) {
	if r == nil {
		return
	}
	r.commits.WithLabelValues(kind).Inc()
}

// Failure counts one rejected commit
func (r *Recorder) Failure(kind string) {
	if r == nil {
		return
	}
	r.failures.WithLabelValues(kind).Inc()
}
