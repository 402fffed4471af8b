package telemetry_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/svcgraph/partitioner/internal/telemetry"
)

func TestNewLogger_FallsBackOnBadLevel(t *testing.T) {
	logger := telemetry.NewLogger("not-a-level", "json")
	assert.Equal(t, "info", logger.GetLevel().String())
}

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := telemetry.NewMetrics(reg)
	assert.NotNil(t, m.PartitionDuration)
	assert.NotNil(t, m.PartitionTotal)

	families, err := reg.Gather()
	assert.NoError(t, err)
	assert.Len(t, families, 0) // no observations recorded yet
}
