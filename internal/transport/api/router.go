package api

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mkravtsov/canteen-api/internal/filestore"
	"github.com/mkravtsov/canteen-api/internal/logger"
	"github.com/mkravtsov/canteen-api/internal/transport/api/middlewares"
)

const (
	DefaultServiceTimeout = 3 * time.Second

	// лимит попыток логина на один адрес в скользящем окне.
	LoginAttemptLimit  = 5
	LoginAttemptWindow = 15 * time.Minute
)

const (
	RegisterRoute       = "/register"
	LoginRoute          = "/login"
	AdminRegisterRoute  = "/admin/register"
	AdminLoginRoute     = "/admin/login"
	AddPaymentRoute     = "/addpayment"
	OrdersRoute         = "/orders"
	ParticularDataRoute = "/getparticulardata"
	CartOrdersRoute     = "/api/orders"
	UserDetailsRoute    = "/user-details/:userId"
	UploadsRoute        = "/uploads"
)

type RouterArgs struct {
	Logger       *logrus.Logger
	UserService  UserServicer
	AdminService AdminServicer
	OrderService OrderServicer
	Uploads      *filestore.DiskStore
	JWTSecretKey []byte
	// LoginLimiter можно подменить в тестах; по умолчанию LoginAttemptLimit/LoginAttemptWindow.
	LoginLimiter *middlewares.LoginLimiter
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("router: %s", err.Error())
	}

	l := args.Logger
	if l == nil {
		l = logger.NewNull()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.Logger(l))
	r.Use(middlewares.Errors(l))

	limiter := args.LoginLimiter
	if limiter == nil {
		limiter = middlewares.NewLoginLimiter(LoginAttemptLimit, LoginAttemptWindow)
	}

	authHandler := NewAuthHandler(args.UserService, args.Uploads)
	adminHandler := NewAdminHandler(args.AdminService)
	ordersHandler := NewOrdersHandler(args.OrderService)

	r.POST(RegisterRoute, authHandler.Register)
	r.POST(LoginRoute, limiter.Middleware(), authHandler.Login)

	// лимитер общий для юзеров и админов, как и счетчик попыток по адресу.
	r.POST(AdminRegisterRoute, adminHandler.Register)
	r.POST(AdminLoginRoute, limiter.Middleware(), adminHandler.Login)

	r.POST(AddPaymentRoute, ordersHandler.AddPayment)
	r.GET(OrdersRoute, ordersHandler.Index)
	r.POST(ParticularDataRoute, ordersHandler.ByPhone)
	r.POST(CartOrdersRoute, ordersHandler.CreateCartOrder)

	r.GET(UserDetailsRoute, middlewares.AuthRequired(args.JWTSecretKey), authHandler.UserDetails)

	if args.Uploads != nil {
		r.Static(UploadsRoute, args.Uploads.Dir())
	}

	return r, nil
}
