package synth

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DiagnosisSpec is one curated ICD-10 reference row.
type DiagnosisSpec struct {
	ICDCode  string `yaml:"icd_code"`
	Name     string `yaml:"name"`
	Category string `yaml:"category"`
	Severity string `yaml:"severity"`
	Chronic  bool   `yaml:"chronic"`
}

// MedicationSpec is one curated medication reference row.
type MedicationSpec struct {
	Name        string `yaml:"name"`
	GenericName string `yaml:"generic_name"`
	Strength    string `yaml:"strength"`
	Form        string `yaml:"form"`
	Route       string `yaml:"route"`
}

// Catalog holds every fixed list the generator draws from.
type Catalog struct {
	Specializations    []string         `yaml:"specializations"`
	BloodTypes         []string         `yaml:"blood_types"`
	InsuranceProviders []string         `yaml:"insurance_providers"`
	EncounterTypes     []string         `yaml:"encounter_types"`
	BillingStatuses    []string         `yaml:"billing_statuses"`
	Frequencies        []string         `yaml:"frequencies"`
	Manufacturers      []string         `yaml:"manufacturers"`
	Diagnoses          []DiagnosisSpec  `yaml:"diagnoses"`
	Medications        []MedicationSpec `yaml:"medications"`
}

var (
	encounterDurations = []int{15, 20, 30, 45, 60, 90, 120}
	clockMinutes       = []int{0, 15, 30, 45}
	prescribedQuantity = []int{14, 30, 60, 90}
	prescriptionDays   = []int{7, 14, 30, 90}
)

// DefaultCatalog returns a fresh copy of the built-in reference lists.
func DefaultCatalog() Catalog {
	return Catalog{
		Specializations: []string{
			"Cardiology", "Neurology", "Orthopedics", "Pediatrics", "Oncology",
			"Emergency Medicine", "Psychiatry", "General Surgery", "Dermatology",
			"Gastroenterology", "Endocrinology", "Pulmonology", "Nephrology",
			"Urology", "Obstetrics", "Ophthalmology", "ENT", "Radiology",
		},
		BloodTypes: []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"},
		InsuranceProviders: []string{
			"Blue Cross", "Aetna", "United Health", "Cigna", "Humana",
			"Medicare", "Medicaid", "Kaiser Permanente",
		},
		EncounterTypes: []string{
			"Routine Checkup", "Consultation", "Emergency Admission", "Follow-up Visit",
			"Physical Examination", "Surgical Procedure", "Diagnostic Test",
			"Vaccination", "Psychiatric Evaluation", "Post-Operative Checkup",
		},
		BillingStatuses: []string{"Paid", "Pending", "Insurance Processing", "Outstanding"},
		Frequencies:     []string{"Once daily", "Twice daily", "Three times daily", "As needed"},
		Manufacturers:   []string{"Pfizer", "Novartis", "Merck", "GSK", "Sanofi", "AstraZeneca", "Teva", "Cipla"},
		Diagnoses: []DiagnosisSpec{
			{"I10", "Essential Hypertension", "Cardiovascular", "Moderate", true},
			{"E11", "Type 2 Diabetes Mellitus", "Endocrine", "High", true},
			{"J44.9", "COPD", "Respiratory", "High", true},
			{"F32.9", "Major Depressive Disorder", "Psychiatric", "Moderate", true},
			{"M79.3", "Myalgia and Myositis", "Musculoskeletal", "Low", false},
			{"N18.3", "Chronic Kidney Disease Stage 3", "Renal", "Moderate", true},
			{"K21.9", "GERD", "Gastrointestinal", "Moderate", true},
			{"C34.9", "Malignant Neoplasm of Lung", "Oncology", "Critical", true},
			{"I21.9", "Acute Myocardial Infarction", "Cardiovascular", "Critical", false},
			{"J06.9", "Upper Respiratory Infection", "Respiratory", "Low", false},
			{"M17.9", "Osteoarthritis of Knee", "Musculoskeletal", "Moderate", true},
			{"E78.5", "Hyperlipidemia", "Endocrine", "Moderate", true},
			{"F41.9", "Anxiety Disorder", "Psychiatric", "Moderate", true},
			{"K76.0", "Fatty Liver", "Hepatic", "Moderate", true},
			{"N39.0", "Urinary Tract Infection", "Urological", "Low", false},
			{"L30.9", "Dermatitis", "Dermatological", "Low", false},
			{"H52.4", "Presbyopia", "Ophthalmological", "Low", false},
			{"M54.5", "Low Back Pain", "Musculoskeletal", "Moderate", false},
			{"R51", "Headache", "Neurological", "Low", false},
			{"B34.9", "Viral Infection", "Infectious", "Low", false},
		},
		Medications: []MedicationSpec{
			{"Lisinopril", "Lisinopril", "10mg", "Tablet", "Oral"},
			{"Metformin", "Metformin HCl", "500mg", "Tablet", "Oral"},
			{"Atorvastatin", "Atorvastatin", "20mg", "Tablet", "Oral"},
			{"Omeprazole", "Omeprazole", "20mg", "Capsule", "Oral"},
			{"Sertraline", "Sertraline HCl", "50mg", "Tablet", "Oral"},
			{"Metoprolol", "Metoprolol Tartrate", "50mg", "Tablet", "Oral"},
			{"Amoxicillin", "Amoxicillin", "500mg", "Capsule", "Oral"},
			{"Ibuprofen", "Ibuprofen", "200mg", "Tablet", "Oral"},
			{"Ciprofloxacin", "Ciprofloxacin", "500mg", "Tablet", "Oral"},
			{"Insulin Glargine", "Insulin Glargine", "100 units/mL", "Injectable", "Subcutaneous"},
			{"Losartan", "Losartan Potassium", "50mg", "Tablet", "Oral"},
			{"Amlodipine", "Amlodipine Besylate", "5mg", "Tablet", "Oral"},
			{"Levothyroxine", "Levothyroxine Sodium", "100mcg", "Tablet", "Oral"},
			{"Albuterol", "Albuterol Sulfate", "90mcg", "Inhaler", "Inhalation"},
			{"Gabapentin", "Gabapentin", "300mg", "Capsule", "Oral"},
			{"Hydrochlorothiazide", "Hydrochlorothiazide", "25mg", "Tablet", "Oral"},
			{"Prednisone", "Prednisone", "20mg", "Tablet", "Oral"},
			{"Warfarin", "Warfarin Sodium", "5mg", "Tablet", "Oral"},
			{"Clopidogrel", "Clopidogrel", "75mg", "Tablet", "Oral"},
			{"Furosemide", "Furosemide", "40mg", "Tablet", "Oral"},
			{"Aspirin", "Acetylsalicylic Acid", "81mg", "Tablet", "Oral"},
			{"Pantoprazole", "Pantoprazole", "40mg", "Tablet", "Oral"},
			{"Simvastatin", "Simvastatin", "40mg", "Tablet", "Oral"},
			{"Alprazolam", "Alprazolam", "0.5mg", "Tablet", "Oral"},
			{"Tramadol", "Tramadol HCl", "50mg", "Tablet", "Oral"},
			{"Cephalexin", "Cephalexin", "500mg", "Capsule", "Oral"},
			{"Fluoxetine", "Fluoxetine HCl", "20mg", "Capsule", "Oral"},
			{"Montelukast", "Montelukast Sodium", "10mg", "Tablet", "Oral"},
			{"Tamsulosin", "Tamsulosin HCl", "0.4mg", "Capsule", "Oral"},
			{"Ranitidine", "Ranitidine HCl", "150mg", "Tablet", "Oral"},
		},
	}
}

// LoadCatalog reads a YAML catalog. Lists present in the document replace the
// built-in ones; absent lists keep their defaults. Unknown keys are rejected.
func LoadCatalog(r io.Reader) (Catalog, error) {
	c := DefaultCatalog()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Catalog{}, fmt.Errorf("decode catalog YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Catalog{}, err
	}
	return c, nil
}

// Validate rejects catalogs the generator could not draw from.
func (c Catalog) Validate() error {
	lists := []struct {
		name string
		n    int
	}{
		{"specializations", len(c.Specializations)},
		{"blood_types", len(c.BloodTypes)},
		{"insurance_providers", len(c.InsuranceProviders)},
		{"encounter_types", len(c.EncounterTypes)},
		{"billing_statuses", len(c.BillingStatuses)},
		{"frequencies", len(c.Frequencies)},
		{"manufacturers", len(c.Manufacturers)},
		{"diagnoses", len(c.Diagnoses)},
		{"medications", len(c.Medications)},
	}
	for _, l := range lists {
		if l.n == 0 {
			return fmt.Errorf("catalog %s must not be empty", l.name)
		}
	}
	for i, d := range c.Diagnoses {
		if d.ICDCode == "" || d.Name == "" {
			return fmt.Errorf("catalog diagnosis %d missing icd_code or name", i)
		}
	}
	for i, m := range c.Medications {
		if m.Name == "" {
			return fmt.Errorf("catalog medication %d missing name", i)
		}
	}
	return nil
}
