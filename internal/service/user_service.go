package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/internal/service/tokens"
	"github.com/mkravtsov/canteen-api/pkg/uow"
)

const JWTTokenExpire = 1 * time.Hour

type UserService struct {
	uow            uow.UOW
	userRepo       domain.UserRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewUserService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*UserService, error) {
	userRepo, userRepoErr := uow.GetRepositoryAs[domain.UserRepository](u, uow.RepositoryName(domain.UserRepoName))
	if userRepoErr != nil {
		return nil, userRepoErr
	}
	return &UserService{
		uow:            u,
		userRepo:       userRepo,
		psswd:          hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterUserArgs struct {
	Name         string
	Email        string
	Password     string
	DateOfBirth  time.Time
	PhoneNumber  string
	ProfileImage string
}

// Register создает юзера в базе данных. Проверка занятости email и вставка выполняются
// в одной транзакции: если email найден на проверке, вернется domain.ErrDuplicateKey;
// если уникальный индекс сработал уже на вставке (гонка), ошибка считается сбоем персистентности
// и вернется как domain.ErrUnknown. После успешного создания генерирует jwt token.
// Возвращает 3 значения: созданный юзер, токен и ошибку.
func (s *UserService) Register(ctx context.Context, args RegisterUserArgs) (*domain.User, string, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, "", fmt.Errorf("registering user: %s", hashErr.Error())
	}
	var user *domain.User
	var token string
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		userRepo, userRepoErr := uow.GetAs[domain.UserRepository](tx, uow.RepositoryName(domain.UserRepoName))
		if userRepoErr != nil {
			return userRepoErr //nolint:wrapcheck
		}

		_, findErr := userRepo.FindUserByEmail(c, args.Email)
		if findErr == nil {
			return fmt.Errorf("email %s is taken: %w", args.Email, domain.ErrDuplicateKey)
		}
		if !errors.Is(findErr, domain.ErrRecordNotFound) {
			return findErr //nolint:wrapcheck
		}

		var userErr error
		user, userErr = userRepo.CreateUser(c, domain.User{
			Name:         args.Name,
			Email:        args.Email,
			Password:     password,
			DateOfBirth:  args.DateOfBirth,
			PhoneNumber:  args.PhoneNumber,
			ProfileImage: args.ProfileImage,
		})
		if userErr != nil {
			if errors.Is(userErr, domain.ErrDuplicateKey) {
				return fmt.Errorf("email uniqueness race: %w", domain.ErrUnknown)
			}
			return userErr //nolint:wrapcheck
		}

		var tokenErr error
		token, tokenErr = tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
		if tokenErr != nil {
			return tokenErr //nolint:wrapcheck
		}
		return nil
	})

	if txErr != nil {
		return nil, "", fmt.Errorf("registering user: %w", txErr)
	}
	return user, token, nil
}

type LoginUserArgs struct {
	Email    string
	Password string
}

// Login аутентифицирует юзера по паре email/пароль. Возвращает domain.ErrRecordNotFound при
// неизвестном email и domain.ErrPasswordMissMatch при неверном пароле; обе ошибки транспортный
// слой показывает одинаковым сообщением.
func (s *UserService) Login(ctx context.Context, args LoginUserArgs) (*domain.User, string, error) {
	user, findErr := s.userRepo.FindUserByEmail(ctx, args.Email)
	if findErr != nil {
		return nil, "", fmt.Errorf("logging in user: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, user.Password) {
		return nil, "", fmt.Errorf("logging in user: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(user.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in user: %s", tokenErr.Error())
	}
	return user, token, nil
}

// FindByID возвращает юзера по id или domain.ErrRecordNotFound.
func (s *UserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding user by id: %w", err)
	}
	return user, nil
}
