package postgres

import (
	"database/sql"
	"fmt"

	"vet-clinic/internal/domain/clinic"
)

const (
	clientCols = `c.id, c.name, c.email, c.phone, c.address, c.created_at, c.updated_at`
	petCols    = `p.id, p.client_id, p.name, p.species, p.breed, p.age, p.weight, p.color, p.created_at, p.updated_at`
	apptCols   = `a.id, a.pet_id, a.date_time, a.reason, a.notes, a.status, a.created_at, a.updated_at`
	recordCols = `m.id, m.pet_id, m.date, m.diagnosis, m.treatment, m.medications, m.notes, m.veterinarian, m.created_at, m.updated_at`
)

type scanner interface {
	Scan(dest ...any) error
}

type clientRow struct {
	c clinic.Client
}

func (r *clientRow) dest() []any {
	return []any{&r.c.ID, &r.c.Name, &r.c.Email, &r.c.Phone, &r.c.Address, &r.c.CreatedAt, &r.c.UpdatedAt}
}

func (r *clientRow) client() clinic.Client {
	c := r.c
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return c
}

type petRow struct {
	p      clinic.Pet
	age    sql.NullInt64
	weight sql.NullFloat64
}

func (r *petRow) dest() []any {
	return []any{
		&r.p.ID, &r.p.ClientID, &r.p.Name, &r.p.Species, &r.p.Breed,
		&r.age, &r.weight, &r.p.Color, &r.p.CreatedAt, &r.p.UpdatedAt,
	}
}

func (r *petRow) pet() clinic.Pet {
	p := r.p
	if r.age.Valid {
		v := int(r.age.Int64)
		p.Age = &v
	}
	if r.weight.Valid {
		v := r.weight.Float64
		p.Weight = &v
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p
}

type apptRow struct {
	a clinic.Appointment
}

func (r *apptRow) dest() []any {
	return []any{&r.a.ID, &r.a.PetID, &r.a.DateTime, &r.a.Reason, &r.a.Notes, &r.a.Status, &r.a.CreatedAt, &r.a.UpdatedAt}
}

func (r *apptRow) appointment() clinic.Appointment {
	a := r.a
	a.DateTime = a.DateTime.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return a
}

type recordRow struct {
	m clinic.MedicalRecord
}

func (r *recordRow) dest() []any {
	return []any{
		&r.m.ID, &r.m.PetID, &r.m.Date, &r.m.Diagnosis, &r.m.Treatment,
		&r.m.Medications, &r.m.Notes, &r.m.Veterinarian, &r.m.CreatedAt, &r.m.UpdatedAt,
	}
}

func (r *recordRow) record() clinic.MedicalRecord {
	m := r.m
	m.Date = m.Date.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	return m
}

// orderBy arma el ORDER BY sólo con columnas de la lista segura.
func orderBy(alias string, o clinic.Order, safe []string, def clinic.Order) string {
	o = clinic.ParseOrder(o.String(), safe, def)
	nulls := "NULLS FIRST"
	if o.Desc {
		nulls = "NULLS LAST"
	}
	return fmt.Sprintf("ORDER BY %[1]s.%[2]s %[3]s %[4]s, %[1]s.id ASC", alias, o.Column, o.Direction(), nulls)
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
