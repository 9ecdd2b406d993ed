package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/petpalhq/petpal/internal/pet/domain"
	"github.com/petpalhq/petpal/internal/pet/store"
)

type petsRepo struct {
	db *sql.DB
}

func (r *petsRepo) CreatePet(ctx context.Context, p domain.Pet) (domain.Pet, error) {
	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (id, owner_id, name, species, breed, age, weight, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.OwnerID, p.Name, p.Species, p.Breed, p.Age, p.Weight, p.Color,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano))
	if err != nil {
		return domain.Pet{}, err
	}

	p.CreatedAt = now
	p.UpdatedAt = now
	return p, nil
}

func (r *petsRepo) GetPet(ctx context.Context, id, ownerID string) (domain.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, owner_id, name, species, breed, age, weight, color, created_at, updated_at
		FROM pets
		WHERE id = ? AND owner_id = ?`, id, ownerID)

	p, err := scanPet(row)
	if err != nil {
		return domain.Pet{}, mapNotFound(err)
	}
	return p, nil
}

func (r *petsRepo) ListPetsByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, name, species, breed, age, weight, color, created_at, updated_at
		FROM pets
		WHERE owner_id = ?
		ORDER BY created_at ASC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pets := make([]domain.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		pets = append(pets, p)
	}
	return pets, rows.Err()
}

func (r *petsRepo) UpdatePet(ctx context.Context, p domain.Pet) (domain.Pet, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx, `
		UPDATE pets
		SET name = ?, species = ?, breed = ?, age = ?, weight = ?, color = ?, updated_at = ?
		WHERE id = ? AND owner_id = ?`,
		p.Name, p.Species, p.Breed, p.Age, p.Weight, p.Color,
		now.Format(time.RFC3339Nano), p.ID, p.OwnerID)
	if err != nil {
		return domain.Pet{}, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Pet{}, err
	}
	if affected == 0 {
		return domain.Pet{}, store.ErrNotFound
	}

	p.UpdatedAt = now
	return p, nil
}

func (r *petsRepo) DeletePet(ctx context.Context, id, ownerID string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM pets
		WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (domain.Pet, error) {
	var p domain.Pet
	var createdAt, updatedAt string

	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Species, &p.Breed,
		&p.Age, &p.Weight, &p.Color, &createdAt, &updatedAt)
	if err != nil {
		return domain.Pet{}, err
	}

	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return p, nil
}
