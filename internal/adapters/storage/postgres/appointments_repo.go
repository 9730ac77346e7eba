package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/clinic"
)

const apptJoin = `
	FROM appointments a
	JOIN pets p ON p.id = a.pet_id
	JOIN clients c ON c.id = p.client_id
`

type AppointmentsRepo struct {
	db *sql.DB
}

func NewAppointmentsRepo(db *sql.DB) *AppointmentsRepo {
	return &AppointmentsRepo{db: db}
}

func (r *AppointmentsRepo) Create(ctx context.Context, a clinic.Appointment) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO appointments (
			id, pet_id, date_time,
			reason, notes, status,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
	`,
		a.ID,
		a.PetID,
		a.DateTime,
		a.Reason,
		a.Notes,
		a.Status,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return mapError(err)
}

func (r *AppointmentsRepo) Update(ctx context.Context, a clinic.Appointment) error {
	id, ok := parseID(a.ID)
	if !ok {
		return clinic.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE appointments
		SET
			pet_id = $2,
			date_time = $3,
			reason = $4,
			notes = $5,
			status = $6,
			updated_at = $7
		WHERE id = $1
	`,
		id,
		a.PetID,
		a.DateTime,
		a.Reason,
		a.Notes,
		a.Status,
		a.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if affected(res) == 0 {
		return clinic.ErrNotFound
	}
	return nil
}

func (r *AppointmentsRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return clinic.DeleteResult{}, err
	}
	n := affected(res)
	if n == 0 {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}
	return clinic.DeleteResult{Appointments: n}, nil
}

func (r *AppointmentsRepo) GetByID(ctx context.Context, id string) (clinic.Appointment, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.Appointment{}, clinic.ErrNotFound
	}
	return one(ctx, r.db, scanAppointment, `SELECT `+apptCols+` FROM appointments a WHERE a.id = $1`, id)
}

func (r *AppointmentsRepo) GetWithRelations(ctx context.Context, id string) (clinic.Appointment, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.Appointment{}, clinic.ErrNotFound
	}
	return one(ctx, r.db, scanAppointmentFull,
		`SELECT `+apptCols+`, `+petCols+`, `+clientCols+apptJoin+`WHERE a.id = $1`, id)
}

func (r *AppointmentsRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Appointment, error) {
	sortBy := orderBy("a", order, clinic.AppointmentOrderColumns, clinic.DefaultAppointmentOrder)
	if !withRelations {
		return many(ctx, r.db, scanAppointment, `SELECT `+apptCols+` FROM appointments a `+sortBy)
	}
	return many(ctx, r.db, scanAppointmentFull, `SELECT `+apptCols+`, `+petCols+`, `+clientCols+apptJoin+sortBy)
}

func (r *AppointmentsRepo) ListRecent(ctx context.Context, n int) ([]clinic.Appointment, error) {
	if n <= 0 {
		return []clinic.Appointment{}, nil
	}
	sortBy := orderBy("a", clinic.DefaultAppointmentOrder, clinic.AppointmentOrderColumns, clinic.DefaultAppointmentOrder)
	return many(ctx, r.db, scanAppointmentFull,
		`SELECT `+apptCols+`, `+petCols+`, `+clientCols+apptJoin+sortBy+` LIMIT $1`, n)
}

func (r *AppointmentsRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "appointments")
}
