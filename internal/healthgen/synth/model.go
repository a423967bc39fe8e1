package synth

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Doctor rows reference a pre-existing department by id.
type Doctor struct {
	ID              int
	FirstName       string
	LastName        string
	License         string
	Specialization  string
	DepartmentID    int
	Phone           string
	Email           string
	HireDate        time.Time
	YearsExperience int
}

// DisplayName is the audit name written into encounter created_by columns.
func (d Doctor) DisplayName() string {
	return "Dr. " + d.LastName
}

type Patient struct {
	ID                int
	FirstName         string
	LastName          string
	DateOfBirth       time.Time
	Gender            string
	BloodType         string
	Phone             string
	Email             string
	Street            string
	City              string
	State             string
	PostalCode        string
	Country           string
	InsuranceProvider string
	PolicyNumber      string
	EmergencyName     string
	EmergencyPhone    string
	RegistrationDate  time.Time
}

type Diagnosis struct {
	ID int
	DiagnosisSpec
}

func (d Diagnosis) Description() string {
	return fmt.Sprintf("%s - %s condition with %s severity", d.Name, d.Category, strings.ToLower(d.Severity))
}

type Medication struct {
	ID int
	MedicationSpec
	NDC               string
	SideEffects       string
	Contraindications string
	Manufacturer      string
}

// Prescription groups the medication-dependent encounter columns so they are
// either all present or all NULL.
type Prescription struct {
	MedicationID int
	Quantity     int
	Frequency    string
	DurationDays int
}

type Encounter struct {
	ID              int
	PatientID       int
	DoctorID        int
	DepartmentID    int
	DiagnosisID     int
	Prescription    *Prescription
	Date            time.Time
	Hour, Minute    int
	Type            string
	DurationMinutes int
	ChiefComplaint  string
	Temperature     float64
	Systolic        int
	Diastolic       int
	HeartRate       int
	RespiratoryRate int
	ClinicalNotes   string
	TreatmentPlan   string
	// FollowUp is nil exactly when no follow-up is required.
	FollowUp       *time.Time
	BillingAmount  float64
	BillingStatus  string
	CreatedBy      string
	LastModifiedBy string
}

func (e Encounter) FollowUpRequired() bool { return e.FollowUp != nil }

func (e Encounter) BloodPressure() string {
	return fmt.Sprintf("%d/%d", e.Systolic, e.Diastolic)
}

// emailLocal builds "first.last" lowercased with anything but letters and digits dropped.
func emailLocal(first, last string) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return unicode.ToLower(r)
			}
			return -1
		}, s)
	}
	return clean(first) + "." + clean(last)
}

// policyNumber prefixes a 9-digit number with the first three letters of the payer, uppercased.
func policyNumber(provider string, n int) string {
	prefix := []rune(strings.ToUpper(provider))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s%09d", string(prefix), n)
}
