package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/guttosm/herdpulse/internal/domain/models"
	pq "github.com/lib/pq"
)

// LivestockRepository defines the contract for animal record access.
type LivestockRepository interface {
	FindByOwner(ctx context.Context, ownerID string) ([]models.Animal, error)
	InsertAnimals(ctx context.Context, animals []models.Animal) error
}

type livestockRepository struct {
	db *sql.DB
}

func NewLivestockRepository(db *sql.DB) LivestockRepository {
	return &livestockRepository{db: db}
}

// FindByOwner returns every animal owned by ownerID, ordered by id.
func (r *livestockRepository) FindByOwner(ctx context.Context, ownerID string) ([]models.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, owner_id, name, COALESCE(health_status, ''), last_checkup, vaccinations
		FROM animals
		WHERE owner_id = $1
		ORDER BY id
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	animals := make([]models.Animal, 0)
	for rows.Next() {
		var (
			a            models.Animal
			status       string
			lastCheckup  sql.NullTime
			vaccinations []byte
		)
		if err := rows.Scan(&a.ID, &a.OwnerID, &a.Name, &status, &lastCheckup, &vaccinations); err != nil {
			return nil, err
		}
		a.HealthStatus = models.HealthStatus(status)
		if lastCheckup.Valid {
			t := lastCheckup.Time
			a.LastCheckup = &t
		}
		if len(vaccinations) > 0 {
			if err := json.Unmarshal(vaccinations, &a.Vaccinations); err != nil {
				return nil, fmt.Errorf("animal %s: decode vaccinations: %w", a.ID, err)
			}
		}
		animals = append(animals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return animals, nil
}

// InsertAnimals bulk loads animals in a single transaction using COPY.
func (r *livestockRepository) InsertAnimals(ctx context.Context, animals []models.Animal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"animals",
		"id",
		"owner_id",
		"name",
		"health_status",
		"last_checkup",
		"vaccinations",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, a := range animals {
		vacc, err := marshalJSONArray(a.Vaccinations)
		if err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return fmt.Errorf("animal %s: encode vaccinations: %w", a.ID, err)
		}
		if _, err := stmt.ExecContext(ctx,
			a.ID,
			a.OwnerID,
			a.Name,
			toNullString(string(a.HealthStatus)),
			toNullTime(a.LastCheckup),
			vacc,
		); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
