package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd(t *testing.T) {
	cmd := versionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "svcpart")
}

func TestGenerateCmdWritesYAML(t *testing.T) {
	cmd := generateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--nodes", "5", "--seed", "3"})
	require.NoError(t, cmd.Execute())
	assert.True(t, strings.Contains(out.String(), "nodes:"))
	assert.True(t, strings.Contains(out.String(), "edges:"))
}

func TestPartitionCmdOnBuiltinExample(t *testing.T) {
	cmd := partitionCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{
		"--example", "daytime",
		"--algo", "btp",
		"--memory", "3072",
		"--cores", "3",
		"--latency", "3400",
		"--delay", "80",
	})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "partitioning:")
}

func TestSimulateCmdOnBuiltinExample(t *testing.T) {
	cmd := simulateCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--example", "daytime", "--scale", "0.001", "--timeout", "5s"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "makespan:")
}
