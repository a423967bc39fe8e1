package synth

import (
	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
)

var patientColumns = []string{
	"first_name", "last_name", "date_of_birth", "gender", "blood_type",
	"phone_number", "email", "street_address", "city", "state_province", "postal_code", "country",
	"insurance_provider", "insurance_policy_number", "emergency_contact_name",
	"emergency_contact_phone", "registration_date", "is_active",
}

var genders = []string{"M", "F"}

func genPatients(src *Source, opts Options) []Patient {
	log := logger.L()
	log.Infow("generating patients", "count", opts.Counts.Patients)

	w := opts.Windows
	patients := make([]Patient, 0, opts.Counts.Patients)
	for i := 1; i <= opts.Counts.Patients; i++ {
		p := Patient{ID: i}
		p.FirstName = src.FirstName()
		p.LastName = src.LastName()
		p.DateOfBirth = src.DateBetween(w.Birth.Start, w.Birth.End)
		p.Gender = src.Pick(genders)
		p.BloodType = src.Pick(opts.Catalog.BloodTypes)
		p.Phone = src.Phone()
		p.Email = emailLocal(p.FirstName, p.LastName) + "@email.com"
		p.Street = src.Street()
		p.City = src.City()
		p.State = src.State()
		p.PostalCode = src.Zip()
		p.Country = "USA"
		p.InsuranceProvider = src.Pick(opts.Catalog.InsuranceProviders)
		p.PolicyNumber = policyNumber(p.InsuranceProvider, src.Intn(100000000, 999999999))
		p.EmergencyName = src.FullName()
		p.EmergencyPhone = src.Phone()
		p.RegistrationDate = src.DateBetween(w.Registration.Start, w.Registration.End)
		patients = append(patients, p)
	}
	return patients
}

func patientsInsert(patients []Patient) *Insert {
	in := NewInsert("patients", patientColumns...)
	for _, p := range patients {
		in.Add(
			Str(p.FirstName), Str(p.LastName), Date(p.DateOfBirth), Str(p.Gender), Str(p.BloodType),
			Str(p.Phone), Str(p.Email), Str(p.Street), Str(p.City), Str(p.State), Str(p.PostalCode), Str(p.Country),
			Str(p.InsuranceProvider), Str(p.PolicyNumber), Str(p.EmergencyName),
			Str(p.EmergencyPhone), Date(p.RegistrationDate), Bool(true),
		)
	}
	return in
}
