package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/oksasatya/go-car-rental/internal/application"
	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
	"github.com/oksasatya/go-car-rental/pkg/response"
	"github.com/oksasatya/go-car-rental/pkg/validation"
)

type AuthHandler struct {
	Svc     *app.AuthService
	Cookies *helpers.SessionCookie
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *app.AuthService, cookies *helpers.SessionCookie, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Cookies: cookies, Logger: logger}
}

// Presence and strength are checked by the service so the messages stay the
// ones users see on the signup form.
type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name" binding:"max=100"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPayload struct {
	User *entity.SessionUser `json:"user"`
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Signup(c.Request.Context(), app.SignupInput{Email: req.Email, Password: req.Password, Name: req.Name})
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.Set(c, res.Token)
	response.Success(c, http.StatusCreated, userPayload{User: res.User}, "Account created successfully", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	h.Cookies.Set(c, res.Token)
	response.Success(c, http.StatusOK, userPayload{User: res.User}, "Login successful", nil)
}

// Logout POST /api/auth/logout. Succeeds with or without a session.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success[any](c, http.StatusOK, nil, "Logged out successfully", nil)
}

// Me GET /api/auth/me. Always 200; user is null without a valid session.
func (h *AuthHandler) Me(c *gin.Context) {
	payload := userPayload{}
	if token, ok := h.Cookies.Get(c); ok {
		if u, err := h.Svc.Session(c.Request.Context(), token); err == nil {
			payload.User = u
		}
	}
	response.Success(c, http.StatusOK, payload, "session", nil)
}
