package pgrepo

import (
	"context"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/pkg/uow"
)

type AdminRepository struct {
	db uow.DBTX
}

func NewAdminRepository(db uow.DBTX) *AdminRepository {
	return &AdminRepository{db: db}
}

// CreateAdmin создает администратора. В случае конфликта юзернейма возвращает ошибку domain.ErrDuplicateKey.
func (a *AdminRepository) CreateAdmin(ctx context.Context, admin domain.Admin) (*domain.Admin, error) {
	row := a.db.QueryRow(ctx, `
		INSERT INTO admins (username, encrypted_password)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at, username, encrypted_password`,
		admin.Username, admin.Password,
	)

	var created domain.Admin
	err := row.Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt, &created.Username, &created.Password)
	if err != nil {
		return nil, convertErr(err, "creating admin")
	}
	return &created, nil
}

// FindAdminByUsername ищет администратора по юзернейму. Возвращает ошибку domain.ErrRecordNotFound
// если запись не найдена.
func (a *AdminRepository) FindAdminByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	row := a.db.QueryRow(ctx, `
		SELECT id, created_at, updated_at, username, encrypted_password
		FROM admins WHERE username = $1`, username)

	var admin domain.Admin
	err := row.Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt, &admin.Username, &admin.Password)
	if err != nil {
		return nil, convertErr(err, "finding admin by username %s", username)
	}
	return &admin, nil
}
