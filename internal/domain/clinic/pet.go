package clinic

import (
	"strconv"
	"time"
)

type Pet struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id" validate:"ref"`
	Name      string    `json:"name" validate:"notblank"`
	Species   string    `json:"species" validate:"notblank"`
	Breed     string    `json:"breed"`
	Age       *int      `json:"age" validate:"omitempty,gte=0,lte=2147483647"` // nil = desconocida (no es 0); tope = INTEGER de postgres
	Weight    *float64  `json:"weight" validate:"omitempty,gt=0"`              // kg
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Client         *Client         `json:"client,omitempty" validate:"-"`
	Appointments   []Appointment   `json:"appointments,omitempty" validate:"-"`
	MedicalRecords []MedicalRecord `json:"medical_records,omitempty" validate:"-"`
}

func (p Pet) Validate() FieldErrors { return validateStruct(p) }

func (p Pet) Valid() bool { return p.Validate().Empty() }

func (p *Pet) Apply(in Input) FieldErrors {
	var errs FieldErrors

	if in.Has("client_id") {
		p.ClientID = in.String("client_id")
	}
	if in.Has("name") {
		p.Name = in.String("name")
	}
	if in.Has("species") {
		p.Species = in.String("species")
	}
	if in.Has("breed") {
		p.Breed = in.String("breed")
	}
	if in.Has("color") {
		p.Color = in.String("color")
	}
	if in.Has("age") {
		age, ok := in.Int("age")
		if !ok {
			errs.Add("age", "must be a whole number")
		} else {
			p.Age = age
		}
	}
	if in.Has("weight") {
		w, ok := in.Float("weight")
		if !ok {
			errs.Add("weight", "is not a number")
		} else {
			p.Weight = w
		}
	}
	return errs
}

// AgeLabel: nil => unknown, 0 => newborn, 1 => "1 year", n => "n years".
func (p Pet) AgeLabel() string {
	return AgeLabel(p.Age)
}

func AgeLabel(age *int) string {
	switch {
	case age == nil:
		return "unknown"
	case *age == 0:
		return "newborn"
	case *age == 1:
		return "1 year"
	default:
		return strconv.Itoa(*age) + " years"
	}
}

// Bare copia la mascota sin relaciones; age y weight no quedan compartidos.
func (p Pet) Bare() Pet {
	p.Client = nil
	p.Appointments = nil
	p.MedicalRecords = nil
	if p.Age != nil {
		age := *p.Age
		p.Age = &age
	}
	if p.Weight != nil {
		w := *p.Weight
		p.Weight = &w
	}
	return p
}
