package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	require.NoError(t, Load(v))

	cfg := Get()
	assert.Equal(t, "0.1", cfg.Version)
	assert.Equal(t, int64(42), cfg.Generate.Seed)
	assert.Equal(t, "healthcare_bulk_data.sql", cfg.Generate.Output)
	assert.Equal(t, "healthcare_system", cfg.Generate.Database)
	assert.Equal(t, CountsCfg{Departments: 10, Doctors: 50, Patients: 200, Encounters: 500}, cfg.Generate.Counts)
	assert.InDelta(t, 0.10, cfg.Generate.MedicationNullRate, 1e-9)
	assert.Equal(t, "2023-01-01", cfg.Generate.Windows.Encounter.Start)
	assert.Equal(t, "2025-12-31", cfg.Generate.Windows.FollowUp.End)

	assert.Equal(t, "denormalized_patient_encounters", cfg.Normalize.SourceTable)
	assert.Equal(t, "healthcare_system_model_db", cfg.Normalize.TargetDatabase)
	assert.Equal(t, 10*time.Second, cfg.Normalize.ProbeTimeout)
	assert.Equal(t, 120*time.Second, cfg.Normalize.ExecTimeout)
	assert.Equal(t, "client", cfg.Normalize.VerifyMode)
	assert.Equal(t, "mysql", cfg.Normalize.Driver)

	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_FullConfig(t *testing.T) {
	v := viper.New()
	v.Set("generate.seed", 7)
	v.Set("generate.output", "-")
	v.Set("generate.counts.doctors", 5)
	v.Set("generate.counts.encounters", 12)
	v.Set("generate.medication_null_rate", 0.5)
	v.Set("generate.catalog_file", "./catalog.yaml")
	v.Set("generate.windows.birth.start", "1950-06-01")
	v.Set("normalize.client_paths", []string{"/opt/mysql/bin/mysql"})
	v.Set("normalize.probe_timeout", "3s")
	v.Set("normalize.exec_timeout", "5m")
	v.Set("normalize.verify_mode", "native")
	v.Set("normalize.driver", "postgres")
	v.Set("normalize.port", 5433)
	v.Set("normalize.run_log", "./run.jsonl")
	v.Set("logging.level", "debug")
	v.Set("logging.development", true)

	require.NoError(t, Load(v))
	cfg := Get()

	assert.Equal(t, int64(7), cfg.Generate.Seed)
	assert.Equal(t, "-", cfg.Generate.Output)
	assert.Equal(t, 5, cfg.Generate.Counts.Doctors)
	assert.Equal(t, 200, cfg.Generate.Counts.Patients, "unset counts keep defaults")
	assert.Equal(t, 12, cfg.Generate.Counts.Encounters)
	assert.InDelta(t, 0.5, cfg.Generate.MedicationNullRate, 1e-9)
	assert.Equal(t, "./catalog.yaml", cfg.Generate.CatalogFile)
	assert.Equal(t, "1950-06-01", cfg.Generate.Windows.Birth.Start)
	assert.Equal(t, "2010-12-31", cfg.Generate.Windows.Birth.End)

	assert.Equal(t, []string{"/opt/mysql/bin/mysql"}, cfg.Normalize.ClientPaths)
	assert.Equal(t, 3*time.Second, cfg.Normalize.ProbeTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Normalize.ExecTimeout)
	assert.Equal(t, "native", cfg.Normalize.VerifyMode)
	assert.Equal(t, "postgres", cfg.Normalize.Driver)
	assert.Equal(t, 5433, cfg.Normalize.Port)
	assert.Equal(t, "./run.jsonl", cfg.Normalize.RunLog)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestLoad_InvalidConfig(t *testing.T) {
	v := viper.New()
	v.Set("generate.counts.doctors", "fifty")

	assert.Error(t, Load(v))
}

func TestGet_Singleton(t *testing.T) {
	cfg = nil

	c1 := Get()
	require.NotNil(t, c1)
	assert.Equal(t, "", c1.Version)

	c2 := Get()
	assert.Same(t, c1, c2)
}

func TestParseDate(t *testing.T) {
	want := time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, in := range []string{"2023-03-15", "03/15/2023", "2023-03-15T10:20:00Z", "March 15, 2023"} {
		got, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseDate("not a date")
	assert.Error(t, err)
}

func TestWindowCfg_Parse(t *testing.T) {
	start, end, err := WindowCfg{Start: "2023-01-01", End: "2024-12-31"}.Parse()
	require.NoError(t, err)
	assert.Equal(t, 2023, start.Year())
	assert.Equal(t, time.December, end.Month())

	_, _, err = WindowCfg{Start: "2024-01-01", End: "2023-01-01"}.Parse()
	assert.ErrorContains(t, err, "precedes")

	_, _, err = WindowCfg{Start: "", End: "2023-01-01"}.Parse()
	assert.ErrorContains(t, err, "window start")
}
