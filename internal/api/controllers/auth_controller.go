package controllers

import (
	"net/http"

	"ezyvoyage/internal/models/request_models"
	"ezyvoyage/internal/services"
	"ezyvoyage/pkg/middleware"
	"ezyvoyage/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	accountService services.AccountServiceInterface
	oauthService   services.OAuthServiceInterface
}

func NewAuthController(accountService services.AccountServiceInterface, oauthService services.OAuthServiceInterface) *AuthController {
	return &AuthController{
		accountService: accountService,
		oauthService:   oauthService,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Account registration payload"
// @Router /api/auth/register [post]
func (a *AuthController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   res.Token,
		"user":    res.User,
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Router /api/auth/login [post]
func (a *AuthController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (a *AuthController) Logout(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "No token, authorization denied")
		return
	}
	if err := a.accountService.Logout(c.Request.Context(), claims); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (a *AuthController) Countries(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, gin.H{"countries": services.Countries})
}

// GoogleLogin redirects to the Google consent screen.
func (a *AuthController) GoogleLogin(c *gin.Context) {
	if !a.oauthService.Enabled() {
		utils.RespondError(c, http.StatusServiceUnavailable, "Google sign-in is not configured")
		return
	}
	url, err := a.oauthService.AuthURL(c.Request.Context())
	if err != nil {
		utils.Logger(c).Error("google auth url", zap.Error(err))
		c.Redirect(http.StatusFound, a.oauthService.ErrorRedirect())
		return
	}
	c.Redirect(http.StatusFound, url)
}

func (a *AuthController) GoogleCallback(c *gin.Context) {
	if !a.oauthService.Enabled() {
		utils.RespondError(c, http.StatusServiceUnavailable, "Google sign-in is not configured")
		return
	}
	token, err := a.oauthService.Callback(c.Request.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		utils.Logger(c).Warn("google callback failed", zap.Error(err))
		c.Redirect(http.StatusFound, a.oauthService.ErrorRedirect())
		return
	}
	c.Redirect(http.StatusFound, a.oauthService.SuccessRedirect(token))
}
