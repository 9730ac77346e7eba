package postgres

import (
	"context"
	"database/sql"

	"vet-clinic/internal/domain/clinic"
)

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p clinic.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (
			id, client_id,
			name, species, breed,
			age, weight, color,
			created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		p.ID,
		p.ClientID,
		p.Name,
		p.Species,
		p.Breed,
		nullInt(p.Age),
		nullFloat(p.Weight),
		p.Color,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return mapError(err)
}

func (r *PetsRepo) Update(ctx context.Context, p clinic.Pet) error {
	id, ok := parseID(p.ID)
	if !ok {
		return clinic.ErrNotFound
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET
			client_id = $2,
			name = $3,
			species = $4,
			breed = $5,
			age = $6,
			weight = $7,
			color = $8,
			updated_at = $9
		WHERE id = $1
	`,
		id,
		p.ClientID,
		p.Name,
		p.Species,
		p.Breed,
		nullInt(p.Age),
		nullFloat(p.Weight),
		p.Color,
		p.UpdatedAt,
	)
	if err != nil {
		return mapError(err)
	}
	if affected(res) == 0 {
		return clinic.ErrNotFound
	}
	return nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (clinic.DeleteResult, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.DeleteResult{}, clinic.ErrNotFound
	}

	var res clinic.DeleteResult
	err := withTx(ctx, r.db, nil, func(tx *sql.Tx) error {
		var locked string
		if err := tx.QueryRowContext(ctx, `SELECT id FROM pets WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
			if err == sql.ErrNoRows {
				return clinic.ErrNotFound
			}
			return err
		}

		if err := deletePetChildren(ctx, tx, "id = $1", id, &res); err != nil {
			return err
		}

		pr, err := tx.ExecContext(ctx, `DELETE FROM pets WHERE id = $1`, id)
		if err != nil {
			return err
		}
		res.Pets = affected(pr)
		return nil
	})
	if err != nil {
		return clinic.DeleteResult{}, err
	}
	return res, nil
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (clinic.Pet, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.Pet{}, clinic.ErrNotFound
	}
	return one(ctx, r.db, scanPet, `SELECT `+petCols+` FROM pets p WHERE p.id = $1`, id)
}

func (r *PetsRepo) GetWithRelations(ctx context.Context, id string) (clinic.Pet, error) {
	id, ok := parseID(id)
	if !ok {
		return clinic.Pet{}, clinic.ErrNotFound
	}

	var p clinic.Pet
	err := withTx(ctx, r.db, snapshot, func(tx *sql.Tx) error {
		var err error
		p, err = one(ctx, tx, scanPetClient, `
			SELECT `+petCols+`, `+clientCols+`
			FROM pets p
			JOIN clients c ON c.id = p.client_id
			WHERE p.id = $1
		`, id)
		if err != nil {
			return err
		}
		return loadPetChildren(ctx, tx, &p)
	})
	if err != nil {
		return clinic.Pet{}, err
	}
	return p, nil
}

func (r *PetsRepo) List(ctx context.Context, order clinic.Order, withRelations bool) ([]clinic.Pet, error) {
	sortBy := orderBy("p", order, clinic.PetOrderColumns, clinic.DefaultPetOrder)
	if !withRelations {
		return many(ctx, r.db, scanPet, `SELECT `+petCols+` FROM pets p `+sortBy)
	}
	return many(ctx, r.db, scanPetClient, `
		SELECT `+petCols+`, `+clientCols+`
		FROM pets p
		JOIN clients c ON c.id = p.client_id
		`+sortBy)
}

func (r *PetsRepo) Exists(ctx context.Context, id string) (bool, error) {
	id, ok := parseID(id)
	if !ok {
		return false, nil
	}
	return exists(ctx, r.db, `SELECT EXISTS (SELECT 1 FROM pets WHERE id = $1)`, id)
}

func (r *PetsRepo) Count(ctx context.Context) (int, error) {
	return count(ctx, r.db, "pets")
}
