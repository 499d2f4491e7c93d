package service

import (
	"context"
	"fmt"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/internal/service/tokens"
	"github.com/mkravtsov/canteen-api/pkg/uow"
)

type AdminService struct {
	uow            uow.UOW
	adminRepo      domain.AdminRepository
	psswd          PasswordHasher
	jwtTokenSecret []byte
}

func NewAdminService(u uow.UOW, jwtTokenSecret []byte, hasher PasswordHasher) (*AdminService, error) {
	adminRepo, adminRepoErr := uow.GetRepositoryAs[domain.AdminRepository](u, uow.RepositoryName(domain.AdminRepoName))
	if adminRepoErr != nil {
		return nil, adminRepoErr
	}
	return &AdminService{
		uow:            u,
		adminRepo:      adminRepo,
		psswd:          hasher,
		jwtTokenSecret: jwtTokenSecret,
	}, nil
}

type RegisterAdminArgs struct {
	Username string
	Password string
}

// Register создает администратора. Помимо присутствия полей никакой валидации нет,
// конфликт юзернейма вернется как domain.ErrDuplicateKey.
func (s *AdminService) Register(ctx context.Context, args RegisterAdminArgs) (*domain.Admin, error) {
	password, hashErr := s.psswd.HashPassword(args.Password)
	if hashErr != nil {
		return nil, fmt.Errorf("registering admin: %s", hashErr.Error())
	}

	var admin *domain.Admin
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		adminRepo, adminRepoErr := uow.GetAs[domain.AdminRepository](tx, uow.RepositoryName(domain.AdminRepoName))
		if adminRepoErr != nil {
			return adminRepoErr //nolint:wrapcheck
		}

		var adminErr error
		admin, adminErr = adminRepo.CreateAdmin(c, domain.Admin{
			Username: args.Username,
			Password: password,
		})
		return adminErr //nolint:wrapcheck
	})

	if txErr != nil {
		return nil, fmt.Errorf("registering admin: %w", txErr)
	}
	return admin, nil
}

type LoginAdminArgs struct {
	Username string
	Password string
}

// Login аутентифицирует администратора по паре юзернейм/пароль.
func (s *AdminService) Login(ctx context.Context, args LoginAdminArgs) (*domain.Admin, string, error) {
	admin, findErr := s.adminRepo.FindAdminByUsername(ctx, args.Username)
	if findErr != nil {
		return nil, "", fmt.Errorf("logging in admin: %w", findErr)
	}

	if !s.psswd.ComparePassword(args.Password, admin.Password) {
		return nil, "", fmt.Errorf("logging in admin: %w", domain.ErrPasswordMissMatch)
	}

	token, tokenErr := tokens.GenerateUserJWT(admin.ID, JWTTokenExpire, s.jwtTokenSecret)
	if tokenErr != nil {
		return nil, "", fmt.Errorf("logging in admin: %s", tokenErr.Error())
	}
	return admin, token, nil
}
