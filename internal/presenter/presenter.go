// Package presenter arma las respuestas JSON (con campos de display) a partir de las entidades.
package presenter

import (
	"time"

	"vet-clinic/internal/domain/clinic"
)

type ClientView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Pets []PetView `json:"pets,omitempty"`
}

type PetView struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	Name      string    `json:"name"`
	Species   string    `json:"species"`
	Breed     string    `json:"breed"`
	Age       *int      `json:"age"`
	AgeLabel  string    `json:"age_label"`
	Weight    *float64  `json:"weight"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client         *ClientView         `json:"client,omitempty"`
	Appointments   []AppointmentView   `json:"appointments,omitempty"`
	MedicalRecords []MedicalRecordView `json:"medical_records,omitempty"`
}

type AppointmentView struct {
	ID              string    `json:"id"`
	PetID           string    `json:"pet_id"`
	DateTime        time.Time `json:"date_time"`
	DateTimeDisplay string    `json:"date_time_display"`
	Reason          string    `json:"reason"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	StatusCategory  string    `json:"status_category"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Pet *PetView `json:"pet,omitempty"`
}

type MedicalRecordView struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id"`
	Date         string    `json:"date"` // YYYY-MM-DD
	DateDisplay  string    `json:"date_display"`
	Diagnosis    string    `json:"diagnosis"`
	Treatment    string    `json:"treatment"`
	Medications  string    `json:"medications"`
	Notes        string    `json:"notes"`
	Veterinarian string    `json:"veterinarian"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Pet *PetView `json:"pet,omitempty"`
}

// DeleteView es la respuesta de un DELETE (conteo de la cascada).
type DeleteView struct {
	Deleted clinic.DeleteResult `json:"deleted"`
}

// Presenter formatea fechas con la zona horaria de la clínica.
type Presenter struct {
	loc *time.Location
}

func New(loc *time.Location) Presenter {
	if loc == nil {
		loc = time.UTC
	}
	return Presenter{loc: loc}
}

func (p Presenter) Client(c clinic.Client) ClientView {
	v := ClientView{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, pet := range c.Pets {
		v.Pets = append(v.Pets, p.Pet(pet))
	}
	return v
}

func (p Presenter) Pet(pet clinic.Pet) PetView {
	v := PetView{
		ID:        pet.ID,
		ClientID:  pet.ClientID,
		Name:      pet.Name,
		Species:   pet.Species,
		Breed:     pet.Breed,
		Age:       pet.Age,
		AgeLabel:  pet.AgeLabel(),
		Weight:    pet.Weight,
		Color:     pet.Color,
		CreatedAt: pet.CreatedAt,
		UpdatedAt: pet.UpdatedAt,
	}
	if pet.Client != nil {
		cv := p.Client(*pet.Client)
		v.Client = &cv
	}
	for _, a := range pet.Appointments {
		v.Appointments = append(v.Appointments, p.Appointment(a))
	}
	for _, m := range pet.MedicalRecords {
		v.MedicalRecords = append(v.MedicalRecords, p.MedicalRecord(m))
	}
	return v
}

func (p Presenter) Appointment(a clinic.Appointment) AppointmentView {
	v := AppointmentView{
		ID:              a.ID,
		PetID:           a.PetID,
		DateTime:        a.DateTime.In(p.loc),
		DateTimeDisplay: clinic.FormatDateTime(a.DateTime.In(p.loc)),
		Reason:          a.Reason,
		Notes:           a.Notes,
		Status:          a.Status,
		StatusCategory:  a.StatusCategory(),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.DateTime.IsZero() {
		v.DateTimeDisplay = clinic.NotAvailable
	}
	if a.Pet != nil {
		pv := p.Pet(*a.Pet)
		v.Pet = &pv
	}
	return v
}

func (p Presenter) MedicalRecord(m clinic.MedicalRecord) MedicalRecordView {
	v := MedicalRecordView{
		ID:           m.ID,
		PetID:        m.PetID,
		DateDisplay:  clinic.FormatDate(m.Date),
		Diagnosis:    m.Diagnosis,
		Treatment:    m.Treatment,
		Medications:  m.Medications,
		Notes:        m.Notes,
		Veterinarian: m.Veterinarian,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if !m.Date.IsZero() {
		v.Date = m.Date.Format(clinic.DateLayout)
	}
	if m.Pet != nil {
		pv := p.Pet(*m.Pet)
		v.Pet = &pv
	}
	return v
}

func (p Presenter) Clients(in []clinic.Client) []ClientView {
	out := make([]ClientView, 0, len(in))
	for _, c := range in {
		out = append(out, p.Client(c))
	}
	return out
}

func (p Presenter) Pets(in []clinic.Pet) []PetView {
	out := make([]PetView, 0, len(in))
	for _, pet := range in {
		out = append(out, p.Pet(pet))
	}
	return out
}

func (p Presenter) Appointments(in []clinic.Appointment) []AppointmentView {
	out := make([]AppointmentView, 0, len(in))
	for _, a := range in {
		out = append(out, p.Appointment(a))
	}
	return out
}

func (p Presenter) MedicalRecords(in []clinic.MedicalRecord) []MedicalRecordView {
	out := make([]MedicalRecordView, 0, len(in))
	for _, m := range in {
		out = append(out, p.MedicalRecord(m))
	}
	return out
}
