package v1

import (
	"errors"
	"net/http"
	"strings"

	"blogr/api/v1/request"
	"blogr/internal/metrics"
	"blogr/service"

	"github.com/gin-gonic/gin"
)

// AuthAPI exposes HTTP handlers for registration/login/logout flows.
// AuthAPI 聚合了所有与用户鉴权相关的 HTTP Handler。
type AuthAPI struct {
	service *service.AuthService
}

// NewAuthAPI wires the service layer into the HTTP handlers.
func NewAuthAPI(s *service.AuthService) *AuthAPI {
	return &AuthAPI{service: s}
}

// Register handles new account creation.
func (a *AuthAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncRegister("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := a.service.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			metrics.IncRegister("duplicate")
			c.JSON(http.StatusBadRequest, gin.H{"error": "user already exists"})
			return
		}
		metrics.IncRegister("internal_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.IncRegister("success")
	c.JSON(http.StatusCreated, gin.H{"message": "registered"})
}

// Login validates user credentials and returns a session token.
// The unknown-user and bad-password messages stay distinct on purpose.
func (a *AuthAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.IncLogin("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := a.service.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUnknownUser) || errors.Is(err, service.ErrBadPassword) {
			metrics.IncLogin("unauthorized")
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		metrics.IncLogin("internal_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	metrics.IncLogin("success")
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout blacklists the presented session token.
func (a *AuthAPI) Logout(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		metrics.IncLogout("bad_request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing token"})
		return
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if err := a.service.Logout(token); err != nil {
		metrics.IncLogout("internal_error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	metrics.IncLogout("success")
	c.JSON(http.StatusOK, gin.H{"message": "logout success"})
}
