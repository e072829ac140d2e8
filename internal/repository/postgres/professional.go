package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
)

const professionalNotFound = "profissional não encontrado"

type professionalRepository struct {
	BaseRepository
}

func NewProfessionalRepository(db *sqlx.DB) repository.ProfessionalRepository {
	return &professionalRepository{NewBaseRepository(db)}
}

type professionalViewRow struct {
	ID                  int64  `db:"id"`
	UserID              int64  `db:"usuario_id"`
	FullName            string `db:"nome_completo"`
	Email               string `db:"email"`
	CPF                 string `db:"cpf"`
	CouncilRegistration string `db:"registro_conselho"`
	CouncilType         string `db:"tipo_conselho"`
	Specialty           string `db:"especialidade"`
	UnitID              int64  `db:"unidade_id"`
}

func (row *professionalViewRow) toView() *model.ProfessionalView {
	return &model.ProfessionalView{
		ID:                  row.ID,
		UserID:              row.UserID,
		FullName:            row.FullName,
		Email:               row.Email,
		CPF:                 row.CPF,
		CouncilRegistration: row.CouncilRegistration,
		CouncilType:         row.CouncilType,
		Specialty:           row.Specialty,
		UnitID:              row.UnitID,
	}
}

const professionalViewQuery = `
	SELECT p.id, p.usuario_id, u.nome_completo, u.email, p.cpf,
	       p.registro_conselho, p.tipo_conselho, p.especialidade, p.unidade_id
	FROM profissionais p
	JOIN usuarios u ON u.id = p.usuario_id
`

func (r *professionalRepository) CreateWithUser(ctx context.Context, user *model.User, professional *model.Professional) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.QueryRowxContext(ctx, `
			INSERT INTO usuarios (nome_completo, email, senha_hash, tipo)
			VALUES ($1, $2, $3, $4)
			RETURNING id, criado_em, atualizado_em
		`, user.FullName, user.Email, user.PasswordHash, user.Type).
			Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
		if err != nil {
			return translateError(err, userNotFound, "e-mail já cadastrado")
		}

		professional.UserID = user.ID
		err = tx.QueryRowxContext(ctx, `
			INSERT INTO profissionais (usuario_id, cpf, registro_conselho, tipo_conselho, especialidade, unidade_id)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`, professional.UserID, professional.CPF, professional.CouncilRegistration,
			professional.CouncilType, professional.Specialty, professional.UnitID).
			Scan(&professional.ID)
		return translateError(err, professionalNotFound, "CPF já cadastrado")
	})
}

func (r *professionalRepository) Get(ctx context.Context, id int64) (*model.Professional, error) {
	var professional model.Professional
	err := r.GetDB().GetContext(ctx, &professional, `SELECT * FROM profissionais WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err, professionalNotFound, "")
	}
	return &professional, nil
}

func (r *professionalRepository) GetView(ctx context.Context, id int64) (*model.ProfessionalView, error) {
	var row professionalViewRow
	err := r.GetDB().GetContext(ctx, &row, professionalViewQuery+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, translateError(err, professionalNotFound, "")
	}
	return row.toView(), nil
}

func (r *professionalRepository) ListViews(ctx context.Context) ([]*model.ProfessionalView, error) {
	var rows []professionalViewRow
	err := r.GetDB().SelectContext(ctx, &rows, professionalViewQuery+` ORDER BY p.id`)
	if err != nil {
		return nil, translateError(err, professionalNotFound, "")
	}

	views := make([]*model.ProfessionalView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].toView())
	}
	return views, nil
}

func (r *professionalRepository) Update(ctx context.Context, professional *model.Professional) error {
	result, err := r.GetDB().ExecContext(ctx, `
		UPDATE profissionais
		SET registro_conselho = $1, tipo_conselho = $2, especialidade = $3, unidade_id = $4
		WHERE id = $5
	`, professional.CouncilRegistration, professional.CouncilType,
		professional.Specialty, professional.UnitID, professional.ID)
	if err != nil {
		return translateError(err, professionalNotFound, "CPF já cadastrado")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return translateError(errNoRows(), professionalNotFound, "")
	}
	return nil
}

// Delete removes the profile together with its backing user, the inverse of
// the composite create.
func (r *professionalRepository) Delete(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		var userID int64
		err := tx.QueryRowxContext(ctx,
			`DELETE FROM profissionais WHERE id = $1 RETURNING usuario_id`, id).Scan(&userID)
		if err != nil {
			return translateError(err, professionalNotFound, "")
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, userID)
		return translateError(err, userNotFound, "")
	})
}

func (r *professionalRepository) CPFExists(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	err := r.GetDB().GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM profissionais WHERE cpf = $1)`, cpf)
	if err != nil {
		return false, translateError(err, professionalNotFound, "")
	}
	return exists, nil
}

func (r *professionalRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.GetDB().GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM profissionais WHERE id = $1)`, id)
	if err != nil {
		return false, translateError(err, professionalNotFound, "")
	}
	return exists, nil
}
