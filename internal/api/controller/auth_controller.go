package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helix90/list-handler/internal/api/models"
	"github.com/helix90/list-handler/internal/api/response"
	"github.com/helix90/list-handler/internal/api/service"
	"github.com/helix90/list-handler/internal/auth"
)

// AuthController handles registration, login and logout requests.
type AuthController struct {
	authService service.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles the user registration endpoint.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user, err := ac.authService.Register(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, user.PublicView())
}

// Login handles the login endpoint. Credentials arrive as form fields in
// the OAuth2 password-flow style.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	accessToken, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, models.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	})
}

// Logout revokes the presented token. The token stays on the denylist
// until it would have expired naturally.
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.authService.Logout(c.Request.Context(), auth.Claims(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, gin.H{"message": "Successfully logged out"})
}
