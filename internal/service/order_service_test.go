package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/mkravtsov/canteen-api/internal/domain"
	repomocks "github.com/mkravtsov/canteen-api/internal/domain/mocks"
	"github.com/mkravtsov/canteen-api/pkg/uow"
	uowmocks "github.com/mkravtsov/canteen-api/pkg/uow/mocks"
)

type OrderServiceTestSuite struct {
	suite.Suite
	mockCtrl        *gomock.Controller
	mockUOW         *uowmocks.MockUOW
	mockCashierRepo *repomocks.MockCashierOrderRepository
	mockCartRepo    *repomocks.MockCartOrderRepository
	orderService    *OrderService
}

func TestOrderServiceSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}

func (s *OrderServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockCashierRepo = repomocks.NewMockCashierOrderRepository(s.mockCtrl)
	s.mockCartRepo = repomocks.NewMockCartOrderRepository(s.mockCtrl)

	// Мок получения репозиториев из uow. Выполняется в инициализации сервиса.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.CashierOrderRepoName)).
		Return(s.mockCashierRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(domain.CartOrderRepoName)).
		Return(s.mockCartRepo, nil).AnyTimes()

	// Инициализация сервиса.
	orderService, servErr := NewOrderService(s.mockUOW)
	s.Require().NoError(servErr)
	s.orderService = orderService
}

func (s *OrderServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *OrderServiceTestSuite) TestCreatePayment() {
	order := domain.CashierOrder{
		OrderNo:         101,
		CustomerPhone:   "+79990001122",
		ProductID:       7,
		ProductName:     "Paneer Roll",
		ProductCategory: "snacks",
		Amount:          decimal.NewFromInt(120),
		Date:            time.Date(2026, time.August, 29, 0, 0, 0, 0, time.UTC),
		PaymentBy:       1,
		PaymentFor:      2,
	}
	created := order
	created.ID = 1
	created.CreatedAt = time.Now()

	s.mockCashierRepo.EXPECT().
		CreateCashierOrder(gomock.Any(), gomock.Eq(order)).
		Return(&created, nil)

	got, err := s.orderService.CreatePayment(s.T().Context(), order)
	s.Require().NoError(err)
	s.Equal(&created, got)
}

func (s *OrderServiceTestSuite) TestAllPayments() {
	orders := []domain.CashierOrder{
		{ID: 1, OrderNo: 101, Amount: decimal.NewFromInt(120)},
		{ID: 2, OrderNo: 102, Amount: decimal.NewFromInt(80)},
	}

	repoErr := errors.New("boom")

	gomock.InOrder(
		s.mockCashierRepo.EXPECT().GetAll(gomock.Any()).Return(orders, nil),
		s.mockCashierRepo.EXPECT().GetAll(gomock.Any()).Return([]domain.CashierOrder{}, nil),
		s.mockCashierRepo.EXPECT().GetAll(gomock.Any()).Return(nil, repoErr),
	)

	got, err := s.orderService.AllPayments(s.T().Context())
	s.Require().NoError(err)
	s.Equal(orders, got)

	// Пустой результат ошибкой не считается.
	got, err = s.orderService.AllPayments(s.T().Context())
	s.Require().NoError(err)
	s.Empty(got)

	_, err = s.orderService.AllPayments(s.T().Context())
	s.Require().ErrorIs(err, repoErr)
}

func (s *OrderServiceTestSuite) TestPaymentsByPhone() {
	phone := "+79990001122"
	orders := []domain.CashierOrder{
		{ID: 1, OrderNo: 101, CustomerPhone: phone, Amount: decimal.NewFromInt(120)},
	}

	s.mockCashierRepo.EXPECT().
		GetByCustomerPhone(gomock.Any(), phone).
		Return(orders, nil)
	s.mockCashierRepo.EXPECT().
		GetByCustomerPhone(gomock.Any(), "+70000000000").
		Return([]domain.CashierOrder{}, nil)

	got, err := s.orderService.PaymentsByPhone(s.T().Context(), phone)
	s.Require().NoError(err)
	s.Equal(orders, got)

	got, err = s.orderService.PaymentsByPhone(s.T().Context(), "+70000000000")
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *OrderServiceTestSuite) TestCreateCartOrder() {
	items := []domain.CartItem{
		{ID: "dosa-1", Name: "Masala Dosa", Price: decimal.NewFromInt(90), Quantity: 2},
		{ID: "tea-4", Name: "Tea", Price: decimal.NewFromInt(15), Quantity: 1},
	}
	total := decimal.NewFromInt(195)

	created := domain.CartOrder{
		ID:        1,
		CreatedAt: time.Now(),
		Items:     items,
		Total:     total,
	}

	s.mockCartRepo.EXPECT().
		CreateCartOrder(gomock.Any(), gomock.Eq(domain.CartOrder{Items: items, Total: total})).
		Return(&created, nil)

	got, err := s.orderService.CreateCartOrder(s.T().Context(), items, total)
	s.Require().NoError(err)
	s.Equal(&created, got)
}
