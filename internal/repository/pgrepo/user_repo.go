package pgrepo

import (
	"context"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/pkg/uow"
)

const userColumns = `id, created_at, updated_at, name, email, encrypted_password,
date_of_birth, phone_number, profile_image`

type UserRepository struct {
	db uow.DBTX
}

func NewUserRepository(db uow.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser создает юзера в базе данных. В случае конфликта email возвращает ошибку domain.ErrDuplicateKey,
// во всех других случаях - domain.ErrUnknown.
func (u *UserRepository) CreateUser(ctx context.Context, user domain.User) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `
		INSERT INTO users (name, email, encrypted_password, date_of_birth, phone_number, profile_image)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		user.Name, user.Email, user.Password, user.DateOfBirth, user.PhoneNumber, user.ProfileImage,
	)
	created, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "creating user")
	}
	return created, nil
}

// FindUserByEmail ищет юзера по email. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by email %s", email)
	}
	return user, nil
}

// FindUserByID ищет юзера по id. Возвращает ошибку domain.ErrRecordNotFound если запись не найдена.
func (u *UserRepository) FindUserByID(ctx context.Context, id int64) (*domain.User, error) {
	row := u.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		return nil, convertErr(err, "finding user by id %d", id)
	}
	return user, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.DateOfBirth,
		&user.PhoneNumber,
		&user.ProfileImage,
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &user, nil
}
