package clinic

import "time"

const (
	StatusScheduled = "scheduled"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Appointment struct {
	ID        string    `json:"id"`
	PetID     string    `json:"pet_id" validate:"ref"`
	DateTime  time.Time `json:"date_time" validate:"required"`
	Reason    string    `json:"reason" validate:"notblank"`
	Notes     string    `json:"notes"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Pet *Pet `json:"pet,omitempty" validate:"-"`
}

func (a Appointment) Validate() FieldErrors { return validateStruct(a) }

func (a Appointment) Valid() bool { return a.Validate().Empty() }

// Apply acepta "date_time" (RFC3339) o el par "date" + "time" (hora opcional).
// Con solo una de las dos partes se combina con lo que ya tenía la cita.
// Las fechas pasadas se aceptan.
func (a *Appointment) Apply(in Input, loc *time.Location) FieldErrors {
	var errs FieldErrors
	if loc == nil {
		loc = time.UTC
	}

	if in.Has("pet_id") {
		a.PetID = in.String("pet_id")
	}
	if in.Has("reason") {
		a.Reason = in.String("reason")
	}
	if in.Has("notes") {
		a.Notes = in.String("notes")
	}
	if in.Has("status") {
		a.Status = in.String("status")
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}

	switch {
	case in.Has("date_time"):
		raw := in.String("date_time")
		if raw == "" {
			a.DateTime = time.Time{}
			break
		}
		t, ok := ParseInstant(raw, loc)
		if !ok {
			errs.Add("date_time", "is not a valid date and time")
			break
		}
		a.DateTime = t
	case in.Has("date") || in.Has("time"):
		date, clock := "", ""
		if !a.DateTime.IsZero() {
			local := a.DateTime.In(loc)
			date, clock = local.Format(DateLayout), local.Format(ClockLayout)
		}
		if in.Has("date") {
			date = in.String("date")
		}
		if in.Has("time") {
			clock = in.String("time")
		}
		if date == "" {
			a.DateTime = time.Time{}
			break
		}
		t, ok := ParseDateTime(date, clock, loc)
		if !ok {
			errs.Add("date_time", "is not a valid date and time")
			break
		}
		a.DateTime = t
	}

	return errs
}

// Client se deriva a través de la mascota (nil si no se cargaron relaciones).
func (a Appointment) Client() *Client {
	if a.Pet == nil {
		return nil
	}
	return a.Pet.Client
}

func (a Appointment) StatusCategory() string {
	return StatusCategory(a.Status)
}

// StatusCategory mapea estado a categoría visual.
func StatusCategory(status string) string {
	switch status {
	case StatusScheduled:
		return "primary"
	case StatusCompleted:
		return "success"
	case StatusCancelled:
		return "danger"
	default:
		return "secondary"
	}
}

func (a Appointment) Bare() Appointment {
	a.Pet = nil
	return a
}
