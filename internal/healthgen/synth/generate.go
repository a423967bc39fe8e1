// Package synth builds a reproducible fake healthcare dataset and renders it
// as a MySQL load script.
//
// Generation is split into phases that share one explicitly passed Source.
// Phases always run in the same order (doctors, patients, medications,
// encounters; diagnoses draw nothing), so a given seed always yields the
// same rows and byte-identical script text.
package synth

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
)

// Dataset is the full in-memory result of one generation run.
type Dataset struct {
	Options     Options
	Doctors     []Doctor
	Patients    []Patient
	Diagnoses   []Diagnosis
	Medications []Medication
	Encounters  []Encounter
}

// Generate validates opts and runs every phase against a fresh Source.
func Generate(opts Options) (*Dataset, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	log := logger.L()
	log.Infow("generation start", "seed", opts.Seed, "database", opts.Database)

	src := NewSource(opts.Seed)
	ds := &Dataset{Options: opts}
	ds.Doctors = genDoctors(src, opts)
	ds.Patients = genPatients(src, opts)
	ds.Diagnoses = buildDiagnoses(opts.Catalog)
	ds.Medications = genMedications(src, opts.Catalog)
	ds.Encounters = genEncounters(src, opts, ds.Doctors, len(ds.Diagnoses), len(ds.Medications))

	log.Infow("generation complete",
		"doctors", len(ds.Doctors),
		"patients", len(ds.Patients),
		"diagnoses", len(ds.Diagnoses),
		"medications", len(ds.Medications),
		"encounters", len(ds.Encounters))
	return ds, nil
}

// TotalRecords counts every generated row, reference lists included.
func (ds *Dataset) TotalRecords() int {
	return len(ds.Doctors) + len(ds.Patients) + len(ds.Diagnoses) + len(ds.Medications) + len(ds.Encounters)
}

// SQL renders the load script: header, cleanup, one INSERT per table in
// dependency order, the reporting-table rebuild, then row-count checks.
func (ds *Dataset) SQL() string {
	var b strings.Builder

	b.WriteString(rule)
	b.WriteString("-- Healthcare System - BULK FAKE DATA GENERATION\n")
	b.WriteString(rule)
	fmt.Fprintf(&b, "-- Seed: %d\n", ds.Options.Seed)
	fmt.Fprintf(&b, "-- Doctors: %d\n", len(ds.Doctors))
	fmt.Fprintf(&b, "-- Patients: %d\n", len(ds.Patients))
	fmt.Fprintf(&b, "-- Diagnoses: %d\n", len(ds.Diagnoses))
	fmt.Fprintf(&b, "-- Medications: %d\n", len(ds.Medications))
	fmt.Fprintf(&b, "-- Encounters: %d\n", len(ds.Encounters))
	fmt.Fprintf(&b, "-- Total Records: %d\n", ds.TotalRecords())
	b.WriteString(rule)
	b.WriteByte('\n')
	fmt.Fprintf(&b, "USE %s;\n\n", ds.Options.Database)

	banner(&b, "DATA CLEANUP - Remove existing data to prevent duplicates")
	b.WriteString(resetSQL())
	b.WriteByte('\n')

	sections := []struct {
		title string
		in    *Insert
	}{
		{"INSERT DOCTORS", doctorsInsert(ds.Doctors)},
		{"INSERT PATIENTS", patientsInsert(ds.Patients)},
		{"INSERT DIAGNOSES", diagnosesInsert(ds.Diagnoses)},
		{"INSERT MEDICATIONS", medicationsInsert(ds.Medications)},
		{"INSERT ENCOUNTERS", encountersInsert(ds.Encounters)},
	}
	for _, s := range sections {
		banner(&b, fmt.Sprintf("%s (%d records)", s.title, s.in.Len()))
		b.WriteString(s.in.Render())
		b.WriteByte('\n')
	}

	banner(&b, "POPULATE DENORMALIZED TABLE")
	b.WriteString(denormalizeSQL())
	b.WriteByte('\n')

	banner(&b, "VERIFICATION QUERIES")
	b.WriteString(verificationSQL())
	return b.String()
}

// WriteTo writes the whole script in a single call.
func (ds *Dataset) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, ds.SQL())
	return int64(n), err
}

// Digest returns the hex SHA-256 of the rendered script, for comparing runs.
func Digest(script string) string {
	sum := sha256.Sum256([]byte(script))
	return hex.EncodeToString(sum[:])
}
