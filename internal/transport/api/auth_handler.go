package api

import (
	"context"
	"errors"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/mkravtsov/canteen-api/internal/domain"
	"github.com/mkravtsov/canteen-api/internal/filestore"
	"github.com/mkravtsov/canteen-api/internal/service"
)

const dateOfBirthLayout = "2006-01-02"

type AuthHandler struct {
	userService UserServicer
	uploads     *filestore.DiskStore
}

func NewAuthHandler(userService UserServicer, uploads *filestore.DiskStore) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		uploads:     uploads,
	}
}

type UserRegisterParams struct {
	Name        string `binding:"required"                      form:"name"`
	Email       string `binding:"required,email"                form:"email"`
	Password    string `binding:"required,min=6"                form:"password"`
	DateOfBirth string `binding:"required,datetime=2006-01-02"  form:"dateOfBirth"`
	PhoneNumber string `binding:"required,phone"                form:"phoneNumber"`
}

type UserResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	DateOfBirth  string    `json:"dateOfBirth"`
	PhoneNumber  string    `json:"phoneNumber"`
	ProfileImage string    `json:"profileImage,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

func newUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		DateOfBirth:  user.DateOfBirth.Format(dateOfBirthLayout),
		PhoneNumber:  user.PhoneNumber,
		ProfileImage: user.ProfileImage,
		CreatedAt:    user.CreatedAt,
	}
}

// Register POST RegisterRoute. Регистрирует пользователя по multipart-форме
// с необязательной картинкой профиля.
func (h *AuthHandler) Register(c *gin.Context) {
	var params UserRegisterParams
	if bindErr := c.ShouldBind(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": fieldErrors(valErrs)})
			return
		}
		_ = c.Error(bindErr).SetType(gin.ErrorTypeBind)
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// DateOfBirth уже прошла через datetime-валидатор, ошибка тут невозможна.
	dateOfBirth, _ := time.Parse(dateOfBirthLayout, params.DateOfBirth)

	profileImage, imgErr := h.storeProfileImage(c)
	if imgErr != nil {
		_ = c.Error(imgErr).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, jwtToken, createErr := h.userService.Register(ctx, service.RegisterUserArgs{
		Name:         params.Name,
		Email:        params.Email,
		Password:     params.Password,
		DateOfBirth:  dateOfBirth,
		PhoneNumber:  params.PhoneNumber,
		ProfileImage: profileImage,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"errors": []FieldError{
				{Field: "email", Message: "Email already in use"},
			}})
			return
		}
		_ = c.Error(createErr).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	c.Header("Authorization", "Bearer "+jwtToken)
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    newUserResponse(user),
	})
}

// storeProfileImage сохраняет необязательный файл profileImage и возвращает путь,
// под которым его отдает статика.
func (h *AuthHandler) storeProfileImage(c *gin.Context) (string, error) {
	fileHeader, fileErr := c.FormFile("profileImage")
	if fileErr != nil {
		// файл не обязателен
		if errors.Is(fileErr, http.ErrMissingFile) || errors.Is(fileErr, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fileErr //nolint:wrapcheck
	}

	src, openErr := fileHeader.Open()
	if openErr != nil {
		return "", openErr //nolint:wrapcheck
	}
	defer src.Close() //nolint:errcheck

	name, saveErr := h.uploads.Save(src, fileHeader.Filename)
	if saveErr != nil {
		return "", saveErr //nolint:wrapcheck
	}
	return path.Join(UploadsRoute, name), nil
}

type UserLoginParams struct {
	Email    string `binding:"required,email" json:"email"`
	Password string `binding:"required"       json:"password"`
}

// Login POST LoginRoute. Аутентификация по паре email/пароль. Неизвестный email и неверный
// пароль намеренно неразличимы в ответе.
func (h *AuthHandler) Login(c *gin.Context) {
	var params UserLoginParams
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

	user, token, err := h.userService.Login(ctx, service.LoginUserArgs{
		Email:    params.Email,
		Password: params.Password,
	})
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully logged in",
		"user": gin.H{
			"name":  user.Name,
			"email": user.Email,
			"id":    user.ID,
		},
	})
}

// UserDetails GET UserDetailsRoute. Возвращает юзера по id. Дайджест пароля наружу не отдается.
func (h *AuthHandler) UserDetails(c *gin.Context) {
	userID, parseErr := strconv.ParseInt(c.Param("userId"), 10, 64)
	if parseErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	ctx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	user, err := h.userService.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"success": false, "error": true, "message": "User not found"})
			return
		}
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"success": false, "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"error":   false,
		"user":    newUserResponse(user),
	})
}
