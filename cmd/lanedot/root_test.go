package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-lanedot/hwy"
	"github.com/ajroetker/go-lanedot/hwy/contrib/dot"
	"github.com/ajroetker/go-lanedot/internal/config"
)

// execute runs the root command with args in a scratch directory and
// returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	var out, errOut bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestNewRootCmd_HasExpectedSubcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, sub := range root.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"bench", "info", "dot"})
}

func TestNewRootCmd_HasPersistentFlags(t *testing.T) {
	root := NewRootCmd()
	for _, name := range []string{"config", "bench-size", "bench-runs", "log-level", "log-format"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing --%s", name)
	}
}

func TestBenchCmd_HasNoLocalFlags(t *testing.T) {
	root := NewRootCmd()
	benchCmd, _, err := root.Find([]string{"bench"})
	require.NoError(t, err)
	assert.False(t, benchCmd.LocalNonPersistentFlags().HasFlags())
}

func TestSetupLogger(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, setupLogger(config.LogConfig{Level: "debug", Format: "json"}, &buf))
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("k", "v").Debug("hello")
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "v", entry["k"])

	require.NoError(t, setupLogger(config.LogConfig{Level: "info", Format: "text"}, &buf))
	assert.Error(t, setupLogger(config.LogConfig{Level: "not-a-level"}, &buf))
}

func TestRoot_InvalidLogConfigFails(t *testing.T) {
	_, err := execute(t, "info", "--log-level=loud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, config.ErrInvalid))
}

func TestRoot_BenchSettingsOnlyCheckedByBench(t *testing.T) {
	t.Setenv("LANEDOT_BENCH_FORMAT", "xml")

	_, err := execute(t, "info", "--bench-runs=0")
	require.NoError(t, err)

	out, err := execute(t, "dot", "--bench-size=3", "--left", "1,2,3,4,5,6,7,8", "--right", "1,1,1,1,1,1,1,1", "--algorithm", "scalar")
	require.NoError(t, err)
	assert.Equal(t, "scalar-lanes: 36\n", out)

	_, err = execute(t, "bench")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestInfoCmd(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "Lane target: "+hwy.LaneTarget)
	assert.Contains(t, out, "Dispatch name: "+hwy.CurrentName())
}

func TestPrintInfo_FeatureSections(t *testing.T) {
	var buf bytes.Buffer
	printInfo(&buf, "amd64")
	assert.Contains(t, buf.String(), "=== golang.org/x/sys/cpu.X86 ===")
	assert.Contains(t, buf.String(), "HasAVX2:")

	buf.Reset()
	printInfo(&buf, "arm64")
	assert.Contains(t, buf.String(), "=== golang.org/x/sys/cpu.ARM64 ===")

	buf.Reset()
	printInfo(&buf, "riscv64")
	assert.NotContains(t, buf.String(), "===")
}

func TestDotCmd_AllAlgorithms(t *testing.T) {
	out, err := execute(t, "dot", "--left", "1,2,3,4,5,6,7,8", "--right", "8,7,6,5,4,3,2,1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(dot.Algorithms()))
	for i, a := range dot.Algorithms() {
		assert.Equal(t, a.String()+": 120", lines[i])
	}
}

func TestDotCmd_SingleAlgorithm(t *testing.T) {
	out, err := execute(t, "dot", "--left", "1,2,3,4,5,6,7,8", "--right", "1,1,1,1,1,1,1,1", "--algorithm", "accumulate")
	require.NoError(t, err)
	assert.Equal(t, "accumulate-lanes: 36\n", out)
}

func TestDotCmd_Errors(t *testing.T) {
	_, err := execute(t, "dot", "--left", "1,2,3,4,5,6,7,8", "--right", "1,2,3,4,5,6,7,8", "--algorithm", "fastest")
	assert.ErrorIs(t, err, dot.ErrUnknownAlgorithm)

	_, err = execute(t, "dot",
		"--left", "1,2,3,4,5,6,7,8,1,2,3,4,5,6,7,8",
		"--right", "1,2,3,4,5,6,7,8")
	assert.ErrorIs(t, err, dot.ErrLengthMismatch)

	if hwy.LaneWidth > 1 {
		_, err = execute(t, "dot", "--left", "1,2,3", "--right", "3,2,1")
		assert.ErrorIs(t, err, ErrBadOperands)
		assert.ErrorIs(t, err, dot.ErrNotLaneMultiple)
	}
}

func TestBenchCmd_JSON(t *testing.T) {
	out, err := execute(t, "bench", "--bench-size=64", "--bench-runs=2", "--bench-format=json", "--bench-algorithms=scalar,mulreduce")
	require.NoError(t, err)

	var got struct {
		RunID      string `json:"run_id"`
		Size       int    `json:"size"`
		LaneWidth  int    `json:"lane_width"`
		Algorithms []struct {
			Name string `json:"name"`
			Runs []struct {
				Cold bool `json:"cold"`
			} `json:"runs"`
		} `json:"algorithms"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.NotEmpty(t, got.RunID)
	assert.Equal(t, 64, got.Size)
	assert.Equal(t, hwy.LaneWidth, got.LaneWidth)
	require.Len(t, got.Algorithms, 2)
	assert.Equal(t, "scalar-lanes", got.Algorithms[0].Name)
	assert.Equal(t, "mulreduce-lanes", got.Algorithms[1].Name)
	require.Len(t, got.Algorithms[0].Runs, 2)
	assert.True(t, got.Algorithms[0].Runs[0].Cold)
	assert.False(t, got.Algorithms[0].Runs[1].Cold)
}

func TestBenchCmd_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bench:\n  size: 32\n  runs: 1\n  format: yaml\n"), 0o644))

	out, err := execute(t, "--config", path, "bench")
	require.NoError(t, err)
	assert.Contains(t, out, "size: 32")
}

func TestBenchCmd_InvalidSettings(t *testing.T) {
	_, err := execute(t, "bench", "--bench-runs=0")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = execute(t, "bench", "--bench-format=xml")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
