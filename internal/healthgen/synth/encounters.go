package synth

import (
	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
)

var encounterColumns = []string{
	"fk_patient_id", "fk_doctor_id", "fk_department_id",
	"fk_diagnosis_id", "fk_medication_id", "encounter_date", "encounter_time", "encounter_type",
	"encounter_duration_minutes", "chief_complaint", "vital_signs_temperature",
	"vital_signs_blood_pressure", "vital_signs_heart_rate", "vital_signs_respiratory_rate",
	"clinical_notes", "treatment_plan", "prescribed_quantity", "prescribed_frequency",
	"prescription_duration_days", "follow_up_date", "follow_up_required",
	"billingBillable_amount", "billing_status", "created_by", "last_modified_by",
}

// genEncounters draws every foreign key from the ranges produced by the earlier
// phases, so all references resolve once the script is loaded.
func genEncounters(src *Source, opts Options, doctors []Doctor, nDiagnoses, nMedications int) []Encounter {
	log := logger.L()
	log.Infow("generating encounters", "count", opts.Counts.Encounters)

	c := opts.Catalog
	w := opts.Windows
	out := make([]Encounter, 0, opts.Counts.Encounters)
	withMeds := 0
	for i := 1; i <= opts.Counts.Encounters; i++ {
		e := Encounter{ID: i}
		e.PatientID = src.Intn(1, opts.Counts.Patients)
		e.DoctorID = src.Intn(1, len(doctors))
		e.DepartmentID = src.Intn(1, opts.Counts.Departments)
		e.DiagnosisID = src.Intn(1, nDiagnoses)
		medicationID := 0
		if !src.Chance(opts.MedicationNullRate) {
			medicationID = src.Intn(1, nMedications)
		}

		e.Date = src.DateBetween(w.Encounter.Start, w.Encounter.End)
		e.Hour = src.Intn(8, 18)
		e.Minute = src.PickInt(clockMinutes)
		e.Type = src.Pick(c.EncounterTypes)
		e.DurationMinutes = src.PickInt(encounterDurations)
		e.ChiefComplaint = src.Sentence(8)

		e.Temperature = float64(src.Intn(970, 995)) / 10
		e.Systolic = src.Intn(110, 160)
		e.Diastolic = src.Intn(60, 100)
		e.HeartRate = src.Intn(60, 100)
		e.RespiratoryRate = src.Intn(12, 20)

		e.ClinicalNotes = src.Paragraph(2)
		e.TreatmentPlan = src.Paragraph(2)

		if medicationID != 0 {
			e.Prescription = &Prescription{
				MedicationID: medicationID,
				Quantity:     src.PickInt(prescribedQuantity),
				Frequency:    src.Pick(c.Frequencies),
				DurationDays: src.PickInt(prescriptionDays),
			}
			withMeds++
		}

		if src.Bool() {
			fu := src.DateBetween(w.FollowUp.Start, w.FollowUp.End)
			e.FollowUp = &fu
		}

		e.BillingAmount = src.Price(150, 5000)
		e.BillingStatus = src.Pick(c.BillingStatuses)

		attending := doctors[e.DoctorID-1].DisplayName()
		e.CreatedBy = attending
		e.LastModifiedBy = attending

		out = append(out, e)
	}

	log.Debugw("encounters generated", "with_medication", withMeds, "without_medication", len(out)-withMeds)
	return out
}

func encountersInsert(encounters []Encounter) *Insert {
	in := NewInsert("encounters", encounterColumns...)
	for _, e := range encounters {
		med, qty, freq, days := Null(), Null(), Null(), Null()
		if p := e.Prescription; p != nil {
			med, qty, freq, days = Int(p.MedicationID), Int(p.Quantity), Str(p.Frequency), Int(p.DurationDays)
		}
		in.Add(
			Int(e.PatientID), Int(e.DoctorID), Int(e.DepartmentID),
			Int(e.DiagnosisID), med, Date(e.Date), Clock(e.Hour, e.Minute, 0), Str(e.Type),
			Int(e.DurationMinutes), Str(e.ChiefComplaint), Float(e.Temperature, 1),
			Str(e.BloodPressure()), Int(e.HeartRate), Int(e.RespiratoryRate),
			Str(e.ClinicalNotes), Str(e.TreatmentPlan), qty, freq,
			days, OptDate(e.FollowUp), Bool(e.FollowUpRequired()),
			Float(e.BillingAmount, 2), Str(e.BillingStatus), Str(e.CreatedBy), Str(e.LastModifiedBy),
		)
	}
	return in
}
