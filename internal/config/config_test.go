package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcgraph/partitioner/internal/config"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(1), cfg.Bounds.Delay)
	assert.Equal(t, int64(100), cfg.Bounds.Unit)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestValidate_RejectsBadLogFormat(t *testing.T) {
	cfg := config.Config{Bounds: config.Bounds{Delay: 1, Unit: 100}, Log: config.Log{Format: "xml"}}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNonPositiveUnit(t *testing.T) {
	cfg := config.Config{Bounds: config.Bounds{Delay: 1, Unit: 0}, Log: config.Log{Format: "json"}}
	assert.Error(t, cfg.Validate())
}
