package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/gullyscore/gully/config"
	"github.com/gullyscore/gully/pkg/responses"
	"github.com/gullyscore/gully/pkg/token"
)

// AuthController handles register/login requests.
type AuthController struct {
	repo      AuthRepository
	appConfig *config.Config
}

func NewAuthController(repo AuthRepository, appConfig *config.Config) *AuthController {
	return &AuthController{repo: repo, appConfig: appConfig}
}

func hashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), 14)
	return string(bytes), err
}

func checkPassword(hash, pass string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)) == nil
}

// Register creates a new scorer account.
// @Summary Register a scorer account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "account details"
// @Success 201 {object} User
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	for _, identifier := range []string{req.Email, req.Username} {
		existing, err := ac.repo.GetUserByIdentifier(identifier)
		if err != nil {
			responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to check existing users: "+err.Error())
			return
		}
		if existing != nil {
			responses.ErrorResponse(c, http.StatusConflict, "A user with that email or username already exists")
			return
		}
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
	}
	if err := ac.repo.CreateUser(&user); err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusCreated, gin.H{
		"message": "Account created successfully",
		"user":    user,
	})
}

// Login verifies credentials and issues a JWT.
// @Summary Log in with email/username and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "credentials"
// @Success 200 {object} map[string]interface{}
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responses.ValidationErrorResponse(c, err)
		return
	}

	user, err := ac.repo.GetUserByIdentifier(req.LoginIdentifier)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to look up user: "+err.Error())
		return
	}
	if user == nil || !checkPassword(user.Password, req.Password) {
		responses.ErrorResponse(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	expiry := time.Duration(ac.appConfig.JWT.ExpiryMinutes) * time.Minute
	jwt, err := token.GenerateJWT(user.ID, user.Username, ac.appConfig.JWT.Secret, expiry)
	if err != nil {
		responses.ErrorResponse(c, http.StatusInternalServerError, "Failed to issue token: "+err.Error())
		return
	}

	responses.SuccessResponse(c, http.StatusOK, gin.H{
		"message": "Logged in successfully",
		"token":   jwt,
		"user":    user,
	})
}
