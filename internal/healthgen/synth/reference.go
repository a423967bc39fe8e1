package synth

import (
	"fmt"

	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
)

var diagnosisColumns = []string{
	"icd_code", "diagnosis_name", "diagnosis_category", "severity_level", "description", "is_chronic",
}

var medicationColumns = []string{
	"medication_name", "generic_name", "ndc_code", "dosage_strength",
	"dosage_form", "route_of_administration", "common_side_effects", "contraindications",
	"manufacturer", "is_available",
}

// buildDiagnoses copies the curated list verbatim; it draws nothing from the source.
func buildDiagnoses(c Catalog) []Diagnosis {
	out := make([]Diagnosis, len(c.Diagnoses))
	for i, spec := range c.Diagnoses {
		out[i] = Diagnosis{ID: i + 1, DiagnosisSpec: spec}
	}
	return out
}

func genMedications(src *Source, c Catalog) []Medication {
	logger.L().Infow("generating medications", "count", len(c.Medications))

	out := make([]Medication, len(c.Medications))
	for i, spec := range c.Medications {
		out[i] = Medication{
			ID:                i + 1,
			MedicationSpec:    spec,
			NDC:               fmt.Sprintf("%d-%d-%d", src.Intn(1000, 9999), src.Intn(1000, 9999), src.Intn(10, 99)),
			SideEffects:       src.Sentence(6),
			Contraindications: src.Sentence(5),
			Manufacturer:      src.Pick(c.Manufacturers),
		}
	}
	return out
}

func diagnosesInsert(diagnoses []Diagnosis) *Insert {
	in := NewInsert("diagnoses", diagnosisColumns...)
	for _, d := range diagnoses {
		in.Add(Str(d.ICDCode), Str(d.Name), Str(d.Category), Str(d.Severity), Str(d.Description()), Bool(d.Chronic))
	}
	return in
}

func medicationsInsert(meds []Medication) *Insert {
	in := NewInsert("medications", medicationColumns...)
	for _, m := range meds {
		in.Add(
			Str(m.Name), Str(m.GenericName), Str(m.NDC), Str(m.Strength),
			Str(m.Form), Str(m.Route), Str(m.SideEffects), Str(m.Contraindications),
			Str(m.Manufacturer), Bool(true),
		)
	}
	return in
}
