package main

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/san-kum/boltjoint/internal/fastener"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseParamRange(t *testing.T) {
	name, values, err := parseParamRange("grip_length=2:4:5")
	require.NoError(t, err)
	assert.Equal(t, "grip_length", name)
	assert.Equal(t, []float64{2, 2.5, 3, 3.5, 4}, values)

	_, values, err = parseParamRange("load_max=1000:2000:1")
	require.NoError(t, err)
	assert.Equal(t, []float64{1000}, values)

	for _, bad := range []string{"grip_length", "grip_length=1:2", "grip_length=a:2:3", "grip_length=1:2:0", "diameter=1:2:3"} {
		_, _, err := parseParamRange(bad)
		assert.Error(t, err, bad)
	}
}

func TestPrintJointConstant(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJointConstant(&buf, 0.3125, 3, 30e6, 30e6))

	jc, err := fastener.JointConstant(0.3125, 3, 30e6, 30e6)
	require.NoError(t, err)
	assert.InDelta(t, 0.0906, jc, 1e-3)

	out := buf.String()
	assert.Contains(t, out, "j = d/l = 0.1042, r = Em/Eb = 1.0000")
	assert.Contains(t, out, "bracket j1 = 0.1, j2 = 0.1")
	assert.Contains(t, out, fmt.Sprintf("joint constant: %.5f", jc))

	assert.Error(t, printJointConstant(&buf, 0.3125, 0, 30e6, 30e6))
}

func TestCaseFlags_ConfigAndPresetExclusive(t *testing.T) {
	t.Cleanup(func() { configFile, preset = "", "" })

	cmd := &cobra.Command{
		Use:  "eval",
		RunE: func(*cobra.Command, []string) error { return nil },
	}
	addCaseFlags(cmd)
	cmd.SetArgs([]string{"--preset", "norton_15_3", "--config", "joint.yaml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SilenceUsage = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}
