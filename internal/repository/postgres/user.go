package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
)

const userNotFound = "usuário não encontrado"

type userRepository struct {
	BaseRepository
}

func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &userRepository{NewBaseRepository(db)}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO usuarios (nome_completo, email, senha_hash, tipo)
		VALUES ($1, $2, $3, $4)
		RETURNING id, criado_em, atualizado_em
	`
	err := r.GetDB().QueryRowxContext(ctx, query,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.Type,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return translateError(err, userNotFound, "e-mail já cadastrado")
}

func (r *userRepository) Get(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	err := r.GetDB().GetContext(ctx, &user, `SELECT * FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err, userNotFound, "")
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.GetDB().GetContext(ctx, &user, `SELECT * FROM usuarios WHERE email = $1`, email)
	if err != nil {
		return nil, translateError(err, userNotFound, "")
	}
	return &user, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.GetDB().GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)`, email)
	if err != nil {
		return false, translateError(err, userNotFound, "")
	}
	return exists, nil
}
