package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"openfare/internal/application/auth/usecases"
	"openfare/internal/shared/config"
	"openfare/internal/shared/logger"
	"openfare/internal/shared/utils"
)

type AuthHandler struct {
	signUpUseCase      *usecases.SignUpUseCase
	signInUseCase      *usecases.SignInUseCase
	verifyTokenUseCase *usecases.VerifyTokenUseCase
	logger             logger.Interface
	cookieConfig       config.CookieConfig
}

func NewAuthHandler(
	signUpUC *usecases.SignUpUseCase,
	signInUC *usecases.SignInUseCase,
	verifyTokenUC *usecases.VerifyTokenUseCase,
	logger logger.Interface,
	cookieConfig config.CookieConfig,
) *AuthHandler {
	return &AuthHandler{
		signUpUseCase:      signUpUC,
		signInUseCase:      signInUC,
		verifyTokenUseCase: verifyTokenUC,
		logger:             logger,
		cookieConfig:       cookieConfig,
	}
}

type SignUpRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.SignUpCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.signUpUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("signup failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "account created", gin.H{
		"user": toUserResponse(result.User),
	})
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	cmd := usecases.SignInCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	result, err := h.signInUseCase.Execute(c.Request.Context(), cmd)
	if err != nil {
		h.logger.Warnw("signin failed", "email", req.Email)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetAuthCookie(c, h.cookieConfig, result.Token, int(result.ExpiresIn))

	utils.SuccessResponse(c, http.StatusOK, "signed in", gin.H{
		"user":       toUserResponse(result.User),
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
	})
}

// Verify re-validates the caller's token and returns the current account.
func (h *AuthHandler) Verify(c *gin.Context) {
	token := utils.GetTokenFromCookie(c, utils.AuthTokenCookie)
	if token == "" {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			token = parts[1]
		}
	}
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
		return
	}

	result, err := h.verifyTokenUseCase.Execute(c.Request.Context(), usecases.VerifyTokenCommand{Token: token})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "token valid", gin.H{
		"user": toUserResponse(result.User),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAuthCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "signed out", nil)
}
