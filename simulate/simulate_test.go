package simulate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svcgraph/partitioner/examples"
	"github.com/svcgraph/partitioner/simulate"
)

func TestRun_EveryNodeFinishes(t *testing.T) {
	g := examples.DaytimeService()
	report, err := simulate.Run(context.Background(), g, simulate.Options{Workers: 4, Scale: 0.001})
	require.NoError(t, err)
	assert.Len(t, report.Finish, g.Len())
	assert.Greater(t, report.Makespan.Nanoseconds(), int64(0))
}

func TestRun_CanceledBeforeCompletion(t *testing.T) {
	g := examples.DaytimeService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := simulate.Run(ctx, g, simulate.Options{Workers: 1, Scale: 1})
	assert.ErrorIs(t, err, simulate.ErrCanceled)
}
