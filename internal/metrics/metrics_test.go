package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderCounts(t *testing.T) {
	r, err := New(prometheus.NewRegistry())
	require.NoError(t, err)

	r.Event("Line", true)
	r.Event("Line", true)
	r.Event("Base", false)
	r.Action("Place")
	r.Message("push", nil)
	r.Message("pop", errors.New("cannot pop base mode"))
	r.Commit("line")
	r.Failure("circle")

	assert.Equal(t, 2.0, testutil.ToFloat64(r.events.WithLabelValues("Line", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.events.WithLabelValues("Base", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.actions.WithLabelValues("Place")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.messages.WithLabelValues("push", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.messages.WithLabelValues("pop", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.commits.WithLabelValues("line")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.failures.WithLabelValues("circle")))
}

func TestDoubleRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := New(reg)
	require.NoError(t, err)

	_, err = New(reg)
	assert.Error(t, err)
}

func TestNilRecorder(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Event("Base", true)
		r.Action("Pan")
		r.Message("push", nil)
		r.Commit("point")
		r.Failure("arc")
	})
}
