package clinic

import "time"

// Client es el dueño de las mascotas (raíz del grafo).
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"notblank"`
	Email     string    `json:"email" validate:"clientemail"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Solo se completa en lecturas "with relations".
	Pets []Pet `json:"pets,omitempty" validate:"-"`
}

func (c Client) Validate() FieldErrors { return validateStruct(c) }

func (c Client) Valid() bool { return c.Validate().Empty() }

// Apply copia las claves presentes en in. Client no tiene campos coercibles.
func (c *Client) Apply(in Input) FieldErrors {
	if in.Has("name") {
		c.Name = in.String("name")
	}
	if in.Has("email") {
		c.Email = in.String("email")
	}
	if in.Has("phone") {
		c.Phone = in.String("phone")
	}
	if in.Has("address") {
		c.Address = in.String("address")
	}
	return nil
}

// Appointments se deriva a través de las mascotas cargadas.
func (c Client) Appointments() []Appointment {
	var out []Appointment
	for _, p := range c.Pets {
		out = append(out, p.Appointments...)
	}
	return out
}

// MedicalRecords se deriva a través de las mascotas cargadas.
func (c Client) MedicalRecords() []MedicalRecord {
	var out []MedicalRecord
	for _, p := range c.Pets {
		out = append(out, p.MedicalRecords...)
	}
	return out
}

// Bare devuelve una copia sin relaciones (lo que se persiste).
func (c Client) Bare() Client {
	c.Pets = nil
	return c
}
