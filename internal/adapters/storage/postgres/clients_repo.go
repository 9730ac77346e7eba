package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/clinic"
)

type ClientsRepo struct {
	db *sql.DB
}

func NewClientsRepo(db *sql.DB) *ClientsRepo {
	return &ClientsRepo{db: db}
}

func (r *ClientsRepo) Create(ctx context.Context, c clinic.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (
			id, name, email, phone, address,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`,
		c.ID,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return mapError(err)
}

func (r *ClientsRepo) Update(ctx context.Context, c clinic.Client) error {
	id, ok := parseID(c.ID)
	if !ok {
		return clinic.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET
			name = $2,
			email = $3,
			phone = $4,
			address = $5,
			updated_at = $6
		WHERE id = $1
	`,
		id,
		c.Name,
		c.Email,
		c.Phone,
		c.Address,
		c.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if affected(res) == 0 {
		return clinic.ErrNotFound
	}
	return nil
}

// Delete borra en cascada dentro de una transacción para poder contar cada nivel.
func (r *ClientsRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}

	var res clinic.DeleteResult
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		var locked string
		if err := tx.QueryRowContext(ctx, `SELECT id FROM clients WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
			if err == sql.ErrNoRows {
				return clinic.ErrNotFound
			}
			return err
		}

		if err := deletePetChildren(ctx, tx, "client_id = $1", id, &res); err != nil {
			return err
		}

		pr, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE client_id = $1`, id)
		if err != nil {
			return err
		}
		res.Pets = affected(pr)

		cr, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
		if err != nil {
			return err
		}
		res.Clients = affected(cr)
		return nil
	})
	if err != nil {
		return clinic.DeleteResult{}, err
	}
	return res, nil
}

func (r *ClientsRepo) GetByID(ctx context.Context, id string) (clinic.Client, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.Client{}, clinic.ErrNotFound
	}
	return one(ctx, r.db, scanClient, `SELECT `+clientCols+` FROM clients c WHERE c.id = $1`, id)
}

func (r *ClientsRepo) GetWithRelations(ctx context.Context, id string) (clinic.Client, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.Client{}, clinic.ErrNotFound
	}

	var c clinic.Client
	err := withTx(ctx, r.db, snapshot, func(tx *sql.Tx) error {
		var err error
		c, err = one(ctx, tx, scanClient, `SELECT `+clientCols+` FROM clients c WHERE c.id = $1`, id)
		if err != nil {
			return err
		}
		return loadClientPets(ctx, tx, &c)
	})
	if err != nil {
		return clinic.Client{}, err
	}
	return c, nil
}

func loadClientPets(ctx context.Context, q querier, c *clinic.Client) error {
	pets, err := many(ctx, q, scanPet, `
		SELECT `+petCols+`
		FROM pets p
		WHERE p.client_id = $1
		`+orderBy("p", clinic.DefaultPetOrder, clinic.PetOrderColumns, clinic.DefaultPetOrder),
		c.ID)
	if err != nil {
		return err
	}
	for i := range pets {
		if err := loadPetChildren(ctx, q, &pets[i]); err != nil {
			return err
		}
	}
	c.Pets = pets
	return nil
}

func (r *ClientsRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Client, error) {
	query := `SELECT ` + clientCols + ` FROM clients c ` +
		orderBy("c", order, clinic.ClientOrderColumns, clinic.DefaultClientOrder)

	if !withRelations {
		return many(ctx, r.db, scanClient, query)
	}

	var out []clinic.Client
	err := withTx(ctx, r.db, snapshot, func(tx *sql.Tx) error {
		var err error
		out, err = many(ctx, tx, scanClient, query)
		if err != nil {
			return err
		}
		for i := range out {
			if err := loadClientPets(ctx, tx, &out[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientsRepo) ListAppointments(ctx context.Context, clientID string) ([]clinic.Appointment, error) {
	id, ok := parseID(clientID)
	if !ok {
		return nil, clinic.ErrNotFound
	}

	var out []clinic.Appointment
	err := withTx(ctx, r.db, snapshot, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, id)
		if err != nil {
			return err
		}
		if !found {
			return clinic.ErrNotFound
		}

		out, err = many(ctx, tx, scanAppointmentFull, `
			SELECT `+apptCols+`, `+petCols+`, `+clientCols+`
			FROM appointments a
			JOIN pets p ON p.id = a.pet_id
			JOIN clients c ON c.id = p.client_id
			WHERE c.id = $1
			`+orderBy("a", clinic.DefaultAppointmentOrder, clinic.AppointmentOrderColumns, clinic.DefaultAppointmentOrder),
			id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientsRepo) ListMedicalRecords(ctx context.Context, clientID string) ([]clinic.MedicalRecord, error) {
	id, ok := parseID(clientID)
	if !ok {
		return nil, clinic.ErrNotFound
	}

	var out []clinic.MedicalRecord
	err := withTx(ctx, r.db, snapshot, func(tx *sql.Tx) error {
		found, err := exists(ctx, tx, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, id)
		if err != nil {
			return err
		}
		if !found {
			return clinic.ErrNotFound
		}

		out, err = many(ctx, tx, scanRecordFull, `
			SELECT `+recordCols+`, `+petCols+`, `+clientCols+`
			FROM medical_records m
			JOIN pets p ON p.id = m.pet_id
			JOIN clients c ON c.id = p.client_id
			WHERE c.id = $1
			`+orderBy("m", clinic.DefaultMedicalRecordOrder, clinic.MedicalRecordOrderColumns, clinic.DefaultMedicalRecordOrder),
			id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ClientsRepo) Exists(ctx context.Context, id string) (bool, error) {
	id, ok := parseID(id)
	if !ok {
		return false, nil
	}
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1)`, id)
}

func (r *ClientsRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "clients")
}
