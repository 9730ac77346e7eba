package clinic

import "time"

type MedicalRecord struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id" validate:"ref"`
	Date         time.Time `json:"date" validate:"required"` // fecha calendario, medianoche UTC
	Diagnosis    string    `json:"diagnosis" validate:"notblank"`
	Treatment    string    `json:"treatment"`
	Medications  string    `json:"medications"`
	Notes        string    `json:"notes"`
	Veterinarian string    `json:"veterinarian"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Pet *Pet `json:"pet,omitempty" validate:"-"`
}

func (m MedicalRecord) Validate() FieldErrors { return validateStruct(m) }

func (m MedicalRecord) Valid() bool { return m.Validate().Empty() }

func (m *MedicalRecord) Apply(in Input) FieldErrors {
	var errs FieldErrors

	if in.Has("pet_id") {
		m.PetID = in.String("pet_id")
	}
	if in.Has("date") {
		raw := in.String("date")
		if raw == "" {
			m.Date = time.Time{}
		} else if d, ok := ParseDate(raw); ok {
			m.Date = d
		} else {
			errs.Add("date", "is not a valid date")
		}
	}
	if in.Has("diagnosis") {
		m.Diagnosis = in.String("diagnosis")
	}
	if in.Has("treatment") {
		m.Treatment = in.String("treatment")
	}
	if in.Has("medications") {
		m.Medications = in.String("medications")
	}
	if in.Has("notes") {
		m.Notes = in.String("notes")
	}
	if in.Has("veterinarian") {
		m.Veterinarian = in.String("veterinarian")
	}
	return errs
}

func (m MedicalRecord) Client() *Client {
	if m.Pet == nil {
		return nil
	}
	return m.Pet.Client
}

func (m MedicalRecord) Bare() MedicalRecord {
	m.Pet = nil
	return m
}
