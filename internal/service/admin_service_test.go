package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"

	"github.com/mkravtsov/canteen-api/internal/domain"
	repomocks "github.com/mkravtsov/canteen-api/internal/domain/mocks"
	"github.com/mkravtsov/canteen-api/internal/service/mocks"
	"github.com/mkravtsov/canteen-api/internal/service/tokens"
	"github.com/mkravtsov/canteen-api/pkg/uow"
	uowmocks "github.com/mkravtsov/canteen-api/pkg/uow/mocks"
)

type AdminServiceTestSuite struct {
	suite.Suite
	mockUOW       *uowmocks.MockUOW
	mockTX        *uowmocks.MockTX
	mockAdminRepo *repomocks.MockAdminRepository
	mockPsswd     *mocks.MockPasswordHasher
	jwtSecret     []byte
	adminService  *AdminService
}

func TestAdminServiceSuite(t *testing.T) {
	suite.Run(t, new(AdminServiceTestSuite))
}

func (s *AdminServiceTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(mockCtrl)
	s.mockAdminRepo = repomocks.NewMockAdminRepository(mockCtrl)
	s.mockPsswd = mocks.NewMockPasswordHasher(mockCtrl)
	s.mockTX = uowmocks.NewMockTX(mockCtrl)

	s.jwtSecret = []byte("secret")

	// Мок получения репозитория из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.AdminRepoName)).
		Return(s.mockAdminRepo, nil).AnyTimes()

	// Инициализация сервиса.
	adminService, servErr := NewAdminService(s.mockUOW, s.jwtSecret, s.mockPsswd)
	s.Require().NoError(servErr)
	s.adminService = adminService
}

func (s *AdminServiceTestSuite) TestRegister() {
	argsOk := RegisterAdminArgs{
		Username: "validAdmin",
		Password: "<PASSWORD>",
	}
	argsDuplicateUsername := RegisterAdminArgs{
		Username: "duplicateAdmin",
		Password: "<PASSWORD>",
	}

	validHashedPassword := "hashedPassword"

	createdAdmin := domain.Admin{
		ID:        1,
		Username:  argsOk.Username,
		Password:  validHashedPassword,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	// Мок транзакции uow.
	s.mockTX.EXPECT().Get(uow.RepositoryName(domain.AdminRepoName)).
		Return(s.mockAdminRepo, nil).MinTimes(1)

	// Мок хеширования пароля.
	s.mockPsswd.EXPECT().HashPassword(gomock.Any()).Return(validHashedPassword, nil).Times(2)

	// Мок репозитория.
	s.mockAdminRepo.EXPECT().
		CreateAdmin(gomock.Any(), gomock.Eq(domain.Admin{
			Username: argsOk.Username,
			Password: validHashedPassword,
		})).
		Return(&createdAdmin, nil)

	s.mockAdminRepo.EXPECT().
		CreateAdmin(gomock.Any(), gomock.Eq(domain.Admin{
			Username: argsDuplicateUsername.Username,
			Password: validHashedPassword,
		})).
		Return(nil, domain.ErrDuplicateKey)

	// Мок uow.
	s.mockUOW.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			return fn(ctx, s.mockTX)
		}).AnyTimes()

	cases := []struct {
		name      string
		args      RegisterAdminArgs
		wantErr   error
		wantAdmin *domain.Admin
	}{
		{name: "ok", args: argsOk, wantAdmin: &createdAdmin},
		{name: "duplicate username", args: argsDuplicateUsername, wantErr: domain.ErrDuplicateKey},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			admin, err := s.adminService.Register(s.T().Context(), t.args)

			s.Require().ErrorIs(err, t.wantErr)
			s.Equal(t.wantAdmin, admin)
		})
	}
}

func (s *AdminServiceTestSuite) TestLogin() {
	savedAdminUsername := "admin"

	argsOk := LoginAdminArgs{
		Username: savedAdminUsername,
		Password: "<PASSWORD>",
	}
	argsWrongUsername := LoginAdminArgs{
		Username: "wrong",
		Password: "<PASSWORD>",
	}
	argsWrongPass := LoginAdminArgs{
		Username: savedAdminUsername,
		Password: "wrong pass",
	}

	validHashPassword := "hash ok"

	savedAdmin := domain.Admin{
		ID:        1,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Username:  savedAdminUsername,
		Password:  validHashPassword,
	}

	// Мок для сравнения пароля.
	s.mockPsswd.EXPECT().ComparePassword(argsOk.Password, validHashPassword).Return(true)
	s.mockPsswd.EXPECT().ComparePassword(argsWrongPass.Password, validHashPassword).Return(false)

	// Мок репозитория.
	s.mockAdminRepo.EXPECT().
		FindAdminByUsername(gomock.Any(), savedAdminUsername).
		Return(&savedAdmin, nil).Times(2)

	s.mockAdminRepo.EXPECT().
		FindAdminByUsername(gomock.Any(), argsWrongUsername.Username).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name    string
		args    LoginAdminArgs
		wantErr error
	}{
		{name: "ok", args: argsOk},
		{name: "wrong username", args: argsWrongUsername, wantErr: domain.ErrRecordNotFound},
		{name: "wrong password", args: argsWrongPass, wantErr: domain.ErrPasswordMissMatch},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			admin, tokenStr, err := s.adminService.Login(s.T().Context(), t.args)
			s.Require().ErrorIs(err, t.wantErr)

			if t.wantErr == nil {
				s.NotNil(admin)
				s.Require().NotEmpty(tokenStr)

				token, tokenErr := tokens.ValidateUserJWT(tokenStr, s.jwtSecret)
				s.Require().NoError(tokenErr)
				s.Equal(token.Claims.(*tokens.UserClaims).ID, savedAdmin.ID) //nolint:errcheck
			}
		})
	}
}
