package synth

import (
	"fmt"

	"github.com/vaibhaw-/healthgen/internal/healthgen/logger"
)

var doctorColumns = []string{
	"first_name", "last_name", "license_number", "specialization",
	"fk_department_id", "phone_number", "email", "hire_date", "years_of_experience", "is_available",
}

// genDoctors draws doctors 1..n. License numbers follow the row id, so they are unique by construction.
func genDoctors(src *Source, opts Options) []Doctor {
	log := logger.L()
	log.Infow("generating doctors", "count", opts.Counts.Doctors)

	doctors := make([]Doctor, 0, opts.Counts.Doctors)
	for i := 1; i <= opts.Counts.Doctors; i++ {
		first := src.FirstName()
		last := src.LastName()
		d := Doctor{
			ID:             i,
			FirstName:      first,
			LastName:       last,
			License:        fmt.Sprintf("MD%06d", i),
			Specialization: src.Pick(opts.Catalog.Specializations),
			DepartmentID:   src.Intn(1, opts.Counts.Departments),
			Phone:          src.Phone(),
			Email:          emailLocal(first, last) + "@hospital.com",
		}
		d.HireDate = src.DateBetween(opts.Windows.Hire.Start, opts.Windows.Hire.End)
		d.YearsExperience = src.Intn(5, 30)
		doctors = append(doctors, d)
	}

	if len(doctors) > 0 {
		log.Debugw("doctors generated", "first_license", doctors[0].License, "last_license", doctors[len(doctors)-1].License)
	}
	return doctors
}

func doctorsInsert(doctors []Doctor) *Insert {
	in := NewInsert("doctors", doctorColumns...)
	for _, d := range doctors {
		in.Add(
			Str(d.FirstName), Str(d.LastName), Str(d.License), Str(d.Specialization),
			Int(d.DepartmentID), Str(d.Phone), Str(d.Email), Date(d.HireDate),
			Int(d.YearsExperience), Bool(true),
		)
	}
	return in
}
