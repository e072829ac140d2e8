package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
)

const unitNotFound = "unidade não encontrada"

type unitRepository struct {
	BaseRepository
}

func NewUnitRepository(db *sqlx.DB) repository.UnitRepository {
	return &unitRepository{NewBaseRepository(db)}
}

func (r *unitRepository) Create(ctx context.Context, unit *model.Unit) error {
	err := r.GetDB().QueryRowxContext(ctx, `
		INSERT INTO unidades (nome, tipo_unidade, endereco, telefone)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, unit.Name, unit.Type, unit.Address, unit.Phone).Scan(&unit.ID)
	return translateError(err, unitNotFound, "")
}

func (r *unitRepository) Get(ctx context.Context, id int64) (*model.Unit, error) {
	var unit model.Unit
	err := r.GetDB().GetContext(ctx, &unit, `SELECT * FROM unidades WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err, unitNotFound, "")
	}
	return &unit, nil
}

func (r *unitRepository) List(ctx context.Context) ([]*model.Unit, error) {
	var units []*model.Unit
	err := r.GetDB().SelectContext(ctx, &units, `SELECT * FROM unidades ORDER BY id`)
	if err != nil {
		return nil, translateError(err, unitNotFound, "")
	}
	return units, nil
}

func (r *unitRepository) Update(ctx context.Context, unit *model.Unit) error {
	result, err := r.GetDB().ExecContext(ctx, `
		UPDATE unidades
		SET nome = $1, tipo_unidade = $2, endereco = $3, telefone = $4
		WHERE id = $5
	`, unit.Name, unit.Type, unit.Address, unit.Phone, unit.ID)
	if err != nil {
		return translateError(err, unitNotFound, "")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return translateError(errNoRows(), unitNotFound, "")
	}
	return nil
}

// Delete removes a unit. Professionals reference units with ON DELETE
// RESTRICT, so the store rejects deletion of a referenced unit; the service
// layer pre-checks to give a friendly message.
func (r *unitRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.GetDB().ExecContext(ctx, `DELETE FROM unidades WHERE id = $1`, id)
	if err != nil {
		return translateError(err, unitNotFound, "")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return translateError(errNoRows(), unitNotFound, "")
	}
	return nil
}

func (r *unitRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.GetDB().GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM unidades WHERE id = $1)`, id)
	if err != nil {
		return false, translateError(err, unitNotFound, "")
	}
	return exists, nil
}

func (r *unitRepository) HasProfessionals(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.GetDB().GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM profissionais WHERE unidade_id = $1)`, id)
	if err != nil {
		return false, translateError(err, unitNotFound, "")
	}
	return exists, nil
}
