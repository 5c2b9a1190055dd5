package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			matched := true
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					matched = false
				}
			}
			if matched {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestCollectors(t *testing.T) {
	Init()
	Init()

	before := counterValue(t, metricPrefix+"request_transitions_total", map[string]string{"state": "recycled"})
	IncTransition("recycled")
	IncTransition("recycled")
	assert.Equal(t, before+2, counterValue(t, metricPrefix+"request_transitions_total", map[string]string{"state": "recycled"}))

	rejected := counterValue(t, metricPrefix+"point_admissions_total", map[string]string{"result": ResultRejected})
	kg := counterValue(t, metricPrefix+"point_admitted_kg_total", nil)
	ObserveAdmission(true, 2.5)
	ObserveAdmission(false, 100)
	assert.Equal(t, rejected+1, counterValue(t, metricPrefix+"point_admissions_total", map[string]string{"result": ResultRejected}))
	assert.Equal(t, kg+2.5, counterValue(t, metricPrefix+"point_admitted_kg_total", nil))

	failed := counterValue(t, metricPrefix+"report_generate_total", map[string]string{"result": resultError})
	ObserveReport(errors.New("boom"), time.Millisecond)
	assert.Equal(t, failed+1, counterValue(t, metricPrefix+"report_generate_total", map[string]string{"result": resultError}))

	IncPayment("")
	assert.Equal(t, 1.0, counterValue(t, metricPrefix+"treatment_payments_total", map[string]string{"status": "unknown"}))
}
