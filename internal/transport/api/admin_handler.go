package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/internal/service"
)

type AdminHandler struct {
	adminService AdminServicer
}

func NewAdminHandler(adminService AdminServicer) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

type AdminParams struct {
	Username string `binding:"required" json:"username"`
	Password string `binding:"required" json:"password"`
}

// Register POST AdminRegisterRoute. Кроме присутствия полей ничего не проверяется,
// любой сбой персистентности (включая занятый юзернейм) отдается как 500.
func (h *AdminHandler) Register(c *gin.Context) {
	var params AdminParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(valErrs)})
			return
		}
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	admin, createErr := h.adminService.Register(ctx, service.RegisterAdminArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if createErr != nil {
		_ = c.Error(createErr).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Admin registered successfully",
		"admin": gin.H{
			"id":       admin.ID,
			"username": admin.Username,
		},
	})
}

// Login POST AdminLoginRoute.
func (h *AdminHandler) Login(c *gin.Context) {
	var params AdminParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, token, err := h.adminService.Login(ctx, service.LoginAdminArgs{
		Username: params.Username,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password"})
			return
		}
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged in"})
}
