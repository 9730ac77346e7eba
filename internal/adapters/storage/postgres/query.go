package postgres

import (
	"context"
	"database/sql"
	"errors"

	"vet-clinic/internal/domain/clinic"
)

// collect recorre rows aplicando scan; siempre devuelve un slice no nil.
func collect[T any](rows *sql.Rows, scan func(scanner) (T, error)) ([]T, error) {
	defer rows.Close()

	out := make([]T, 0)
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func scanClient(s scanner) (clinic.Client, error) {
	var r clientRow
	if err := s.Scan(r.dest()...); err != nil {
		return clinic.Client{}, err
	}
	return r.client(), nil
}

func scanPet(s scanner) (clinic.Pet, error) {
	var r petRow
	if err := s.Scan(r.dest()...); err != nil {
		return clinic.Pet{}, err
	}
	return r.pet(), nil
}

// scanPetClient: petCols seguido de clientCols.
func scanPetClient(s scanner) (clinic.Pet, error) {
	var pr petRow
	var cr clientRow
	if err := s.Scan(append(pr.dest(), cr.dest()...)...); err != nil {
		return clinic.Pet{}, err
	}
	p := pr.pet()
	c := cr.client()
	p.Client = &c
	return p, nil
}

func scanAppointment(s scanner) (clinic.Appointment, error) {
	var r apptRow
	if err := s.Scan(r.dest()...); err != nil {
		return clinic.Appointment{}, err
	}
	return r.appointment(), nil
}

// scanAppointmentFull: apptCols, petCols, clientCols.
func scanAppointmentFull(s scanner) (clinic.Appointment, error) {
	var ar apptRow
	var pr petRow
	var cr clientRow
	dest := append(ar.dest(), pr.dest()...)
	if err := s.Scan(append(dest, cr.dest()...)...); err != nil {
		return clinic.Appointment{}, err
	}
	a := ar.appointment()
	p := pr.pet()
	c := cr.client()
	p.Client = &c
	a.Pet = &p
	return a, nil
}

func scanRecord(s scanner) (clinic.MedicalRecord, error) {
	var r recordRow
	if err := s.Scan(r.dest()...); err != nil {
		return clinic.MedicalRecord{}, err
	}
	return r.record(), nil
}

// scanRecordFull: recordCols, petCols, clientCols.
func scanRecordFull(s scanner) (clinic.MedicalRecord, error) {
	var mr recordRow
	var pr petRow
	var cr clientRow
	dest := append(mr.dest(), pr.dest()...)
	if err := s.Scan(append(dest, cr.dest()...)...); err != nil {
		return clinic.MedicalRecord{}, err
	}
	m := mr.record()
	p := pr.pet()
	c := cr.client()
	p.Client = &c
	m.Pet = &p
	return m, nil
}

// one ejecuta una query de una sola fila; sin filas es ErrNotFound.
func one[T any](ctx context.Context, q querier, scan func(scanner) (T, error), query string, args ...any) (T, error) {
	v, err := scan(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		var zero T
		return zero, clinic.ErrNotFound
	}
	return v, err
}

func many[T any](ctx context.Context, q querier, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scan)
}

func exists(ctx context.Context, q querier, query string, id string) (bool, error) {
	var ok bool
	if err := q.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func count(ctx context.Context, q querier, table string) (int, error) {
	var n int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func affected(res sql.Result) int {
	n, _ := res.RowsAffected()
	return int(n)
}

// Relaciones de una mascota: citas y historiales en su orden por defecto.
func loadPetChildren(ctx context.Context, q querier, p *clinic.Pet) error {
	appts, err := many(ctx, q, scanAppointment, `
		SELECT `+apptCols+`
		FROM appointments a
		WHERE a.pet_id = $1
		`+orderBy("a", clinic.DefaultAppointmentOrder, clinic.AppointmentOrderColumns, clinic.DefaultAppointmentOrder),
		p.ID)
	if err != nil {
		return err
	}

	records, err := many(ctx, q, scanRecord, `
		SELECT `+recordCols+`
		FROM medical_records m
		WHERE m.pet_id = $1
		`+orderBy("m", clinic.DefaultMedicalRecordOrder, clinic.MedicalRecordOrderColumns, clinic.DefaultMedicalRecordOrder),
		p.ID)
	if err != nil {
		return err
	}

	p.Appointments = appts
	p.MedicalRecords = records
	return nil
}

// deletePetChildren borra citas e historiales de las mascotas que matchea where.
func deletePetChildren(ctx context.Context, tx *sql.Tx, where string, id string, res *clinic.DeleteResult) error {
	r, err := tx.ExecContext(ctx, `DELETE FROM appointments WHERE pet_id IN (SELECT id FROM pets WHERE `+where+`)`, id)
	if err != nil {
		return err
	}
	res.Appointments += affected(r)

	r, err = tx.ExecContext(ctx, `DELETE FROM medical_records WHERE pet_id IN (SELECT id FROM pets WHERE `+where+`)`, id)
	if err != nil {
		return err
	}
	res.MedicalRecords += affected(r)
	return nil
}
