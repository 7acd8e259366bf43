// controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"hotelops-backend/models"
	"hotelops-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type registerPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

func signToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func userView(user *models.User) gin.H {
	return gin.H{"id": user.ID, "email": user.Email}
}

func (a *AuthController) Register(c *gin.Context) {
	var payload registerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if email == "" || !strings.Contains(email, "@") {
		utils.JSONError(c, http.StatusBadRequest, "valid email required")
		return
	}
	if len(payload.Password) < 6 {
		utils.JSONError(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	}

	var existing models.User
	if err := a.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.JSONError(c, http.StatusConflict, "email already registered")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check account")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{Email: email, Password: string(hash)}
	if err := a.DB.Create(&user).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create account")
		return
	}

	token, err := signToken(&user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, gin.H{"token": token, "user": userView(&user)})
}

func (a *AuthController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(payload.Email))
	var user models.User
	if err := a.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(payload.Password)) != nil {
		utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := signToken(&user)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to generate token")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token, "user": userView(&user)})
}

// Me returns the authenticated account; behind AuthMiddleware.
func (a *AuthController) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var user models.User
	if err := a.DB.First(&user, userID).Error; err != nil {
		utils.JSONError(c, http.StatusNotFound, "account not found")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, userView(&user))
}
