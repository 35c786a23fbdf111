package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_RegistersAll(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterScheduleEntriesAdded.Add(3)
	m.CounterProgramsGenerated.WithLabelValues("month").Inc()
	m.CounterProgramsGenerated.WithLabelValues("rotation").Add(2)
	m.CounterCascadeFailures.WithLabelValues("delete").Inc()
	m.GaugeLifeSignal.Set(1)

	assert.Equal(t, float64(3), testutil.ToFloat64(m.CounterScheduleEntriesAdded))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterProgramsGenerated.WithLabelValues("rotation")))

	families, err := reg.Gather()
	require.NoError(t, err)

	byName := map[string]*dto.MetricFamily{}
	for _, mf := range families {
		byName[mf.GetName()] = mf
	}

	programs, ok := byName["eragrok_test_server_programs_generated"]
	require.True(t, ok)
	assert.Equal(t, dto.MetricType_COUNTER, programs.GetType())
	assert.Len(t, programs.GetMetric(), 2)

	lifeSignal, ok := byName["eragrok_test_server_life_signal"]
	require.True(t, ok)
	require.Len(t, lifeSignal.GetMetric(), 1)
	assert.Equal(t, float64(1), lifeSignal.GetMetric()[0].GetGauge().GetValue())

	_, ok = byName["eragrok_test_server_history_cascade_failures"]
	assert.True(t, ok)
}

func TestNewTestManager_Isolated(t *testing.T) {
	// separate registries, no duplicate registration panics
	m1 := NewTestManager()
	m2 := NewTestManager()
	m1.CounterHandleRequestPanic.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(m1.CounterHandleRequestPanic))
	assert.Equal(t, float64(0), testutil.ToFloat64(m2.CounterHandleRequestPanic))
}

func TestSetupPrometheus(t *testing.T) {
	reg := SetupPrometheus()
	m := NewManager("eragrok", "main", reg)
	m.GaugeRequests.Inc()

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["go_goroutines"])
	assert.True(t, names["eragrok_main_current_requests"])
}
