package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/vaibhaw-/healthgen/internal/healthgen/config"
	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
	"github.com/vaibhaw-/healthgen/internal/healthgen/normalize"
	"github.com/vaibhaw-/healthgen/internal/healthgen/synth"
)

func TestMain(m *testing.M) {
	logger.SetLogger(zap.NewNop().Sugar())
	os.Exit(m.Run())
}

func defaultConfig(t *testing.T) *config.Config {
	t.Helper()
	require.NoError(t, config.Load(viper.New()))
	return config.Get()
}

func TestBuildOptions_DefaultsMatchSynth(t *testing.T) {
	gc := defaultConfig(t).Generate
	opts, err := buildOptions(gc)
	require.NoError(t, err)
	assert.Equal(t, synth.DefaultOptions(), opts)
}

func TestBuildOptions_BadWindow(t *testing.T) {
	gc := defaultConfig(t).Generate
	gc.Windows.Encounter = config.WindowCfg{Start: "2024-12-31", End: "2023-01-01"}
	_, err := buildOptions(gc)
	assert.ErrorContains(t, err, "encounter window")
}

func TestBuildOptions_Catalog(t *testing.T) {
	gc := defaultConfig(t).Generate

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("blood_types: [\"O+\"]\n"), 0644))
	gc.CatalogFile = path
	opts, err := buildOptions(gc)
	require.NoError(t, err)
	assert.Equal(t, []string{"O+"}, opts.Catalog.BloodTypes)
	assert.Equal(t, synth.DefaultCatalog().Specializations, opts.Catalog.Specializations)

	gc.CatalogFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = buildOptions(gc)
	assert.ErrorContains(t, err, "open catalog")
}

func TestRunGenerate_FileAndStdout(t *testing.T) {
	gc := defaultConfig(t).Generate
	gc.Counts = config.CountsCfg{Departments: 3, Doctors: 4, Patients: 5, Encounters: 6}

	gc.Output = filepath.Join(t.TempDir(), "bulk.sql")
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	require.NoError(t, runGenerate(cmd, gc))

	written, err := os.ReadFile(gc.Output)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(written), "-- ====="))
	assert.Contains(t, out.String(), "Saved to "+gc.Output)
	assert.Contains(t, out.String(), "Generated ")

	gc.Output = "-"
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	require.NoError(t, runGenerate(cmd, gc))
	assert.Equal(t, string(written), stdout.String(), "same seed gives the same script")
}

func TestBuildOrchestrator(t *testing.T) {
	nc := defaultConfig(t).Normalize
	cmd := &cobra.Command{}

	o, err := buildOrchestrator(nc, cmd)
	require.NoError(t, err)
	assert.Equal(t, "healthcare_system", o.Settings.SourceDatabase)
	assert.Equal(t, "denormalized_patient_encounters", o.Settings.SourceTable)
	assert.Equal(t, "healthcare_system_model_db", o.Settings.TargetDatabase)
	assert.Equal(t, 10*time.Second, o.Settings.ProbeTimeout)
	assert.Equal(t, 120*time.Second, o.Settings.ExecTimeout)
	_, isCLI := o.Verifier.(*normalize.MySQLCLI)
	assert.True(t, isCLI)

	nc.VerifyMode = "native"
	o, err = buildOrchestrator(nc, cmd)
	require.NoError(t, err)
	_, isNative := o.Verifier.(*normalize.NativeProber)
	assert.True(t, isNative)

	nc.VerifyMode = "carrier-pigeon"
	_, err = buildOrchestrator(nc, cmd)
	assert.ErrorContains(t, err, "unsupported verify mode")

	nc.VerifyMode = "client"
	nc.SourceTable = "denormalized_patient_encounters; DROP TABLE patients"
	_, err = buildOrchestrator(nc, cmd)
	assert.ErrorContains(t, err, "invalid source_table")
}

func TestVersionCmd(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	versionCmd.Run(versionCmd, nil)
	assert.Equal(t, "healthgen "+Version+"\n", out.String())
}
