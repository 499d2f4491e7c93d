package service

import (
	"fmt"

	"github.com/mkravtsov/canteen-api/internal/service/psswd"
	"github.com/mkravtsov/canteen-api/pkg/uow"
)

type AppServices struct {
	UserService  *UserService
	AdminService *AdminService
	OrderService *OrderService
}

func Factory(unitOfWork uow.UOW, jwtSecret []byte) (*AppServices, error) {
	var hasher psswd.PasswordHash

	userService, userServiceErr := NewUserService(unitOfWork, jwtSecret, hasher)
	if userServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", userServiceErr.Error())
	}

	adminService, adminServiceErr := NewAdminService(unitOfWork, jwtSecret, hasher)
	if adminServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", adminServiceErr.Error())
	}

	orderService, orderServiceErr := NewOrderService(unitOfWork)
	if orderServiceErr != nil {
		return nil, fmt.Errorf("service factory: %s", orderServiceErr.Error())
	}

	return &AppServices{
		UserService:  userService,
		AdminService: adminService,
		OrderService: orderService,
	}, nil
}
