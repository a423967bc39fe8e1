package synth

import (
	"fmt"
	"strings"
)

// DenormalizedTable is the flat reporting table rebuilt from encounters on every load.
const DenormalizedTable = "denormalized_patient_encounters"

// resetOrder lists tables truncated before a load: the derived table first,
// then encounters, then the generated dimensions. departments is never touched.
var resetOrder = []string{
	DenormalizedTable,
	"encounters",
	"doctors",
	"patients",
	"diagnoses",
	"medications",
}

// projection maps each reporting column to its source expression.
var projection = []struct{ col, expr string }{
	{"fk_patient_id", "e.fk_patient_id"},
	{"fk_doctor_id", "e.fk_doctor_id"},
	{"fk_department_id", "e.fk_department_id"},
	{"fk_diagnosis_id", "e.fk_diagnosis_id"},
	{"fk_medication_id", "e.fk_medication_id"},
	{"patient_first_name", "p.first_name"},
	{"patient_last_name", "p.last_name"},
	{"patient_date_of_birth", "p.date_of_birth"},
	{"patient_age", "YEAR(CURDATE()) - YEAR(p.date_of_birth) - (DATE_FORMAT(CURDATE(), '%m%d') < DATE_FORMAT(p.date_of_birth, '%m%d'))"},
	{"patient_gender", "p.gender"},
	{"patient_blood_type", "p.blood_type"},
	{"patient_phone", "p.phone_number"},
	{"patient_email", "p.email"},
	{"patient_street_address", "p.street_address"},
	{"patient_city", "p.city"},
	{"patient_state", "p.state_province"},
	{"patient_postal_code", "p.postal_code"},
	{"patient_country", "p.country"},
	{"patient_insurance_provider", "p.insurance_provider"},
	{"patient_insurance_policy_number", "p.insurance_policy_number"},
	{"patient_emergency_contact_name", "p.emergency_contact_name"},
	{"patient_emergency_contact_phone", "p.emergency_contact_phone"},
	{"patient_registration_date", "p.registration_date"},
	{"doctor_first_name", "d.first_name"},
	{"doctor_last_name", "d.last_name"},
	{"doctor_license_number", "d.license_number"},
	{"doctor_specialization", "d.specialization"},
	{"doctor_phone", "d.phone_number"},
	{"doctor_email", "d.email"},
	{"doctor_hire_date", "d.hire_date"},
	{"doctor_years_experience", "d.years_of_experience"},
	{"department_name", "dp.department_name"},
	{"department_code", "dp.department_code"},
	{"department_floor", "dp.floor_number"},
	{"department_phone", "dp.phone_number"},
	{"department_head", "dp.head_physician"},
	{"diagnosis_icd_code", "di.icd_code"},
	{"diagnosis_name", "di.diagnosis_name"},
	{"diagnosis_category", "di.diagnosis_category"},
	{"diagnosis_severity", "di.severity_level"},
	{"diagnosis_description", "di.description"},
	{"is_chronic_diagnosis", "di.is_chronic"},
	{"medication_name", "m.medication_name"},
	{"medication_generic_name", "m.generic_name"},
	{"medication_dosage_strength", "m.dosage_strength"},
	{"medication_dosage_form", "m.dosage_form"},
	{"medication_route", "m.route_of_administration"},
	{"medication_side_effects", "m.common_side_effects"},
	{"medication_contraindications", "m.contraindications"},
	{"medication_manufacturer", "m.manufacturer"},
	{"encounter_date", "e.encounter_date"},
	{"encounter_time", "e.encounter_time"},
	{"encounter_type", "e.encounter_type"},
	{"encounter_duration_minutes", "e.encounter_duration_minutes"},
	{"chief_complaint", "e.chief_complaint"},
	{"vital_signs_temperature", "e.vital_signs_temperature"},
	{"vital_signs_blood_pressure", "e.vital_signs_blood_pressure"},
	{"vital_signs_heart_rate", "e.vital_signs_heart_rate"},
	{"vital_signs_respiratory_rate", "e.vital_signs_respiratory_rate"},
	{"clinical_notes", "e.clinical_notes"},
	{"treatment_plan", "e.treatment_plan"},
	{"prescribed_quantity", "e.prescribed_quantity"},
	{"prescribed_frequency", "e.prescribed_frequency"},
	{"prescription_duration_days", "e.prescription_duration_days"},
	{"follow_up_date", "e.follow_up_date"},
	{"follow_up_required", "e.follow_up_required"},
	{"billingBillable_amount", "e.billingBillable_amount"},
	{"billing_status", "e.billing_status"},
	{"created_by", "e.created_by"},
	{"last_modified_by", "e.last_modified_by"},
}

var joins = []struct{ table, alias, fk, pk string }{
	{"patients", "p", "fk_patient_id", "patient_id"},
	{"doctors", "d", "fk_doctor_id", "doctor_id"},
	{"departments", "dp", "fk_department_id", "department_id"},
	{"diagnoses", "di", "fk_diagnosis_id", "diagnosis_id"},
	{"medications", "m", "fk_medication_id", "medication_id"},
}

// requiredKeys are the encounter columns a reporting row cannot exist without.
var requiredKeys = []string{"fk_patient_id", "fk_doctor_id", "fk_department_id"}

func resetSQL() string {
	var b strings.Builder
	b.WriteString("SET FOREIGN_KEY_CHECKS = 0;\n\n")
	for _, t := range resetOrder {
		fmt.Fprintf(&b, "TRUNCATE TABLE %s;\n", t)
	}
	b.WriteString("\n-- departments is kept as-is\n\n")
	b.WriteString("SET FOREIGN_KEY_CHECKS = 1;\n")
	return b.String()
}

// denormalizeSQL renders the INSERT ... SELECT that rebuilds the reporting table.
func denormalizeSQL() string {
	cols := make([]string, len(projection))
	exprs := make([]string, len(projection))
	for i, p := range projection {
		cols[i] = p.col
		exprs[i] = p.expr
	}

	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (\n    %s\n)\n", DenormalizedTable, strings.Join(cols, ",\n    "))
	fmt.Fprintf(&b, "SELECT\n    %s\n", strings.Join(exprs, ",\n    "))
	b.WriteString("FROM encounters e\n")
	for _, j := range joins {
		fmt.Fprintf(&b, "    LEFT JOIN %s %s ON e.%s = %s.%s\n", j.table, j.alias, j.fk, j.alias, j.pk)
	}
	for i, k := range requiredKeys {
		if i == 0 {
			fmt.Fprintf(&b, "WHERE e.%s IS NOT NULL", k)
			continue
		}
		fmt.Fprintf(&b, "\n  AND e.%s IS NOT NULL", k)
	}
	b.WriteString(";\n")
	return b.String()
}

// verificationSQL counts rows in every table the load wrote.
func verificationSQL() string {
	tables := []string{"doctors", "patients", "diagnoses", "medications", "encounters", DenormalizedTable}
	var b strings.Builder
	for i, t := range tables {
		if i == 0 {
			fmt.Fprintf(&b, "SELECT '%s' AS table_name, COUNT(*) AS row_count FROM %s\n", t, t)
			continue
		}
		fmt.Fprintf(&b, "UNION ALL SELECT '%s', COUNT(*) FROM %s", t, t)
		if i < len(tables)-1 {
			b.WriteByte('\n')
		}
	}
	b.WriteString(";\n")
	return b.String()
}
