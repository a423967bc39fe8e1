package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type LoggingCfg struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// CountsCfg sets how many rows each generated table gets.
// Departments are not generated; the count bounds doctor and encounter references.
type CountsCfg struct {
	Departments int `mapstructure:"departments"`
	Doctors     int `mapstructure:"doctors"`
	Patients    int `mapstructure:"patients"`
	Encounters  int `mapstructure:"encounters"`
}

type WindowsCfg struct {
	Hire         WindowCfg `mapstructure:"hire"`
	Birth        WindowCfg `mapstructure:"birth"`
	Registration WindowCfg `mapstructure:"registration"`
	Encounter    WindowCfg `mapstructure:"encounter"`
	FollowUp     WindowCfg `mapstructure:"follow_up"`
}

type GenerateCfg struct {
	Seed               int64      `mapstructure:"seed"`
	Output             string     `mapstructure:"output"`
	Database           string     `mapstructure:"database"`
	Counts             CountsCfg  `mapstructure:"counts"`
	MedicationNullRate float64    `mapstructure:"medication_null_rate"`
	CatalogFile        string     `mapstructure:"catalog_file"`
	Windows            WindowsCfg `mapstructure:"windows"`
}

type NormalizeCfg struct {
	ClientPaths    []string      `mapstructure:"client_paths"`
	SourceDatabase string        `mapstructure:"source_database"`
	SourceTable    string        `mapstructure:"source_table"`
	TargetDatabase string        `mapstructure:"target_database"`
	Script         string        `mapstructure:"script"`
	ProbeTimeout   time.Duration `mapstructure:"probe_timeout"`
	ExecTimeout    time.Duration `mapstructure:"exec_timeout"`
	VerifyMode     string        `mapstructure:"verify_mode"`
	Driver         string        `mapstructure:"driver"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	RunLog         string        `mapstructure:"run_log"`
}

type Config struct {
	Version   string       `mapstructure:"version"`
	Generate  GenerateCfg  `mapstructure:"generate"`
	Normalize NormalizeCfg `mapstructure:"normalize"`
	Logging   LoggingCfg   `mapstructure:"logging"`
}

var cfg *Config

func setDefaults(v *viper.Viper) {
	v.SetDefault("version", "0.1")

	v.SetDefault("generate.seed", 42)
	v.SetDefault("generate.output", "healthcare_bulk_data.sql")
	v.SetDefault("generate.database", "healthcare_system")
	v.SetDefault("generate.counts.departments", 10)
	v.SetDefault("generate.counts.doctors", 50)
	v.SetDefault("generate.counts.patients", 200)
	v.SetDefault("generate.counts.encounters", 500)
	v.SetDefault("generate.medication_null_rate", 0.10)
	v.SetDefault("generate.windows.hire.start", "2010-01-01")
	v.SetDefault("generate.windows.hire.end", "2023-12-31")
	v.SetDefault("generate.windows.birth.start", "1940-01-01")
	v.SetDefault("generate.windows.birth.end", "2010-12-31")
	v.SetDefault("generate.windows.registration.start", "2018-01-01")
	v.SetDefault("generate.windows.registration.end", "2024-12-31")
	v.SetDefault("generate.windows.encounter.start", "2023-01-01")
	v.SetDefault("generate.windows.encounter.end", "2024-12-31")
	v.SetDefault("generate.windows.follow_up.start", "2025-01-01")
	v.SetDefault("generate.windows.follow_up.end", "2025-12-31")

	v.SetDefault("normalize.source_database", "healthcare_system")
	v.SetDefault("normalize.source_table", "denormalized_patient_encounters")
	v.SetDefault("normalize.target_database", "healthcare_system_model_db")
	v.SetDefault("normalize.script", "normalize_healthcare.sql")
	v.SetDefault("normalize.probe_timeout", "10s")
	v.SetDefault("normalize.exec_timeout", "120s")
	v.SetDefault("normalize.verify_mode", "client")
	v.SetDefault("normalize.driver", "mysql")
	v.SetDefault("normalize.host", "127.0.0.1")

	v.SetDefault("logging.level", "info")
}

// Load populates global config from a viper instance
func Load(v *viper.Viper) error {
	setDefaults(v)

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}
	cfg = &c
	return nil
}

func Get() *Config {
	if cfg == nil {
		cfg = &Config{}
	}
	return cfg
}
