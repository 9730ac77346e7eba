package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/clinic"
)

const recordJoin = `
	FROM medical_records m
	JOIN pets p ON p.id = m.pet_id
	JOIN clients c ON c.id = p.client_id
`

type MedicalRecordsRepo struct {
	db *sql.DB
}

func NewMedicalRecordsRepo(db *sql.DB) *MedicalRecordsRepo {
	return &MedicalRecordsRepo{db: db}
}

func (r *MedicalRecordsRepo) Create(ctx context.Context, m clinic.MedicalRecord) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medical_records (
			id, pet_id, date,
			diagnosis, treatment, medications,
			notes, veterinarian,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		m.ID,
		m.PetID,
		m.Date,
		m.Diagnosis,
		m.Treatment,
		m.Medications,
		m.Notes,
		m.Veterinarian,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return mapError(err)
}

func (r *MedicalRecordsRepo) Update(ctx context.Context, m clinic.MedicalRecord) error {
	id, ok := parseID(m.ID)
	if !ok {
		return clinic.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE medical_records
		SET
			pet_id = $2,
			date = $3,
			diagnosis = $4,
			treatment = $5,
			medications = $6,
			notes = $7,
			veterinarian = $8,
			updated_at = $9
		WHERE id = $1
	`,
		id,
		m.PetID,
		m.Date,
		m.Diagnosis,
		m.Treatment,
		m.Medications,
		m.Notes,
		m.Veterinarian,
		m.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if affected(res) == 0 {
		return clinic.ErrNotFound
	}
	return nil
}

func (r *MedicalRecordsRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM medical_records WHERE id = $1`, id)
	if err != nil {
		return clinic.DeleteResult{}, err
	}
	n := affected(res)
	if n == 0 {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}
	return clinic.DeleteResult{MedicalRecords: n}, nil
}

func (r *MedicalRecordsRepo) GetByID(ctx context.Context, id string) (clinic.MedicalRecord, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.MedicalRecord{}, clinic.ErrNotFound
	}
	return one(ctx, r.db, scanRecord, `SELECT `+recordCols+` FROM medical_records m WHERE m.id = $1`, id)
}

func (r *MedicalRecordsRepo) GetWithRelations(ctx context.Context, id string) (clinic.MedicalRecord, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.MedicalRecord{}, clinic.ErrNotFound
	}
	return one(ctx, r.db, scanRecordFull,
		`SELECT `+recordCols+`, `+petCols+`, `+clientCols+recordJoin+`WHERE m.id = $1`, id)
}

func (r *MedicalRecordsRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.MedicalRecord, error) {
	sortBy := orderBy("m", order, clinic.MedicalRecordOrderColumns, clinic.DefaultMedicalRecordOrder)
	if !withRelations {
		return many(ctx, r.db, scanRecord, `SELECT `+recordCols+` FROM medical_records m `+sortBy)
	}
	return many(ctx, r.db, scanRecordFull, `SELECT `+recordCols+`, `+petCols+`, `+clientCols+recordJoin+sortBy)
}

func (r *MedicalRecordsRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "medical_records")
}
