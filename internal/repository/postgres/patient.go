package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
)

const patientNotFound = "paciente não encontrado"

type patientRepository struct {
	BaseRepository
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{NewBaseRepository(db)}
}

// patientViewRow is the join of pacientes with its backing usuario.
type patientViewRow struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"usuario_id"`
	FullName         string    `db:"nome_completo"`
	Email            string    `db:"email"`
	CPF              string    `db:"cpf"`
	BirthDate        time.Time `db:"data_nascimento"`
	Phone            string    `db:"telefone"`
	Address          string    `db:"endereco"`
	HealthPlan       *string   `db:"plano_saude"`
	MembershipNumber *string   `db:"numero_carteirinha"`
}

func (row *patientViewRow) toView() *model.PatientView {
	return &model.PatientView{
		ID:               row.ID,
		UserID:           row.UserID,
		FullName:         row.FullName,
		Email:            row.Email,
		CPF:              row.CPF,
		BirthDate:        row.BirthDate.Format(model.DateLayout),
		Phone:            row.Phone,
		Address:          row.Address,
		HealthPlan:       row.HealthPlan,
		MembershipNumber: row.MembershipNumber,
	}
}

const patientViewQuery = `
	SELECT p.id, p.usuario_id, u.nome_completo, u.email, p.cpf,
	       p.data_nascimento, p.telefone, p.endereco, p.plano_saude, p.numero_carteirinha
	FROM pacientes p
	JOIN usuarios u ON u.id = p.usuario_id
`

func (r *patientRepository) CreateWithUser(ctx context.Context, user *model.User, patient *model.Patient) error {
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

		patient.UserID = user.ID
		err = tx.QueryRowxContext(ctx, `
			INSERT INTO pacientes (usuario_id, cpf, data_nascimento, telefone, endereco, plano_saude, numero_carteirinha)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, patient.UserID, patient.CPF, patient.BirthDate, patient.Phone,
			patient.Address, patient.HealthPlan, patient.MembershipNumber).
			Scan(&patient.ID)
		return translateError(err, patientNotFound, "CPF já cadastrado")
	})
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	var patient model.Patient
	err := r.GetDB().GetContext(ctx, &patient, `SELECT * FROM pacientes WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err, patientNotFound, "")
	}
	return &patient, nil
}

func (r *patientRepository) GetView(ctx context.Context, id int64) (*model.PatientView, error) {
	var row patientViewRow
	err := r.GetDB().GetContext(ctx, &row, patientViewQuery+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, translateError(err, patientNotFound, "")
	}
	return row.toView(), nil
}

func (r *patientRepository) ListViews(ctx context.Context) ([]*model.PatientView, error) {
	var rows []patientViewRow
	err := r.GetDB().SelectContext(ctx, &rows, patientViewQuery+` ORDER BY p.id`)
	if err != nil {
		return nil, translateError(err, patientNotFound, "")
	}

	views := make([]*model.PatientView, 0, len(rows))
	for i := range rows {
		views = append(views, rows[i].toView())
	}
	return views, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	result, err := r.GetDB().ExecContext(ctx, `
		UPDATE pacientes
		SET telefone = $1, endereco = $2, plano_saude = $3, numero_carteirinha = $4
		WHERE id = $5
	`, patient.Phone, patient.Address, patient.HealthPlan, patient.MembershipNumber, patient.ID)
	if err != nil {
		return translateError(err, patientNotFound, "CPF já cadastrado")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return translateError(errNoRows(), patientNotFound, "")
	}
	return nil
}

// Delete removes the profile together with its backing user, the inverse of
// the composite create.
func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		var userID int64
		err := tx.QueryRowxContext(ctx,
			`DELETE FROM pacientes WHERE id = $1 RETURNING usuario_id`, id).Scan(&userID)
		if err != nil {
			return translateError(err, patientNotFound, "")
		}

		_, err = tx.ExecContext(ctx, `DELETE FROM usuarios WHERE id = $1`, userID)
		return translateError(err, userNotFound, "")
	})
}

func (r *patientRepository) CPFExists(ctx context.Context, cpf string) (bool, error) {
	var exists bool
	err := r.GetDB().GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM pacientes WHERE cpf = $1)`, cpf)
	if err != nil {
		return false, translateError(err, patientNotFound, "")
	}
	return exists, nil
}

func (r *patientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.GetDB().GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM pacientes WHERE id = $1)`, id)
	if err != nil {
		return false, translateError(err, patientNotFound, "")
	}
	return exists, nil
}
