package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/task-tracker/internal/model"
	"github.com/iliyamo/task-tracker/internal/queue"
	"github.com/iliyamo/task-tracker/internal/repository"
	"github.com/iliyamo/task-tracker/internal/utils"
	"github.com/iliyamo/task-tracker/internal/validate"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Users      UserStore
	Codec      *utils.TokenCodec
	BcryptCost int
	Events     EventSink
}

func NewAuthHandler(users UserStore, codec *utils.TokenCodec, bcryptCost int, events EventSink) *AuthHandler {
	return &AuthHandler{Users: users, Codec: codec, BcryptCost: bcryptCost, Events: events}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register creates a user and returns a bearer token immediately.
// Validation short-circuits on the first failing check; see validate.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "All fields (name, email, password) are required",
			"error":   validate.CodeMissingFields,
		})
	}
	if v := validate.Registration(req.Name, req.Email, req.Password); v != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v.Message, "error": v.Code})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := h.Users.GetByEmail(ctx, email); err == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "User with this email already exists",
			"error":   "USER_EXISTS",
		})
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		log.Printf("register: lookup failed: %v", err)
		return registerServerError(c)
	}

	hash, err := utils.HashPassword(req.Password, h.BcryptCost)
	if err != nil {
		log.Printf("register: hash failed: %v", err)
		return registerServerError(c)
	}

	u := &model.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hash,
	}
	if err := h.Users.Create(ctx, u); err != nil {
		// The store's unique index catches the existence-check/insert race;
		// the loser gets a conflict, not a 500.
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{
				"message": "User with this email already exists",
				"error":   "DUPLICATE_EMAIL",
			})
		}
		log.Printf("register: create failed: %v", err)
		return registerServerError(c)
	}

	token, err := h.Codec.Issue(u.ID)
	if err != nil {
		log.Printf("register: issue token failed: %v", err)
		return registerServerError(c)
	}

	h.Events.emit(ctx, queue.ActivityEvent{
		Type:       queue.EventUserRegistered,
		UserID:     u.ID,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    u,
		"token":   token,
	})
}

// Login verifies credentials and returns a fresh bearer token. An unknown
// email and a wrong password produce byte-identical responses so accounts
// cannot be enumerated.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "Email and password are required",
			"error":   validate.CodeMissingCredentials,
		})
	}
	if v := validate.Credentials(req.Email, req.Password); v != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": v.Message, "error": v.Code})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return invalidCredentials(c)
		}
		log.Printf("login: lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Internal server error",
			"error":   "SERVER_ERROR",
		})
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return invalidCredentials(c)
	}

	token, err := h.Codec.Issue(u.ID)
	if err != nil {
		log.Printf("login: issue token failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Internal server error",
			"error":   "SERVER_ERROR",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"token":   token,
		"user":    u,
	})
}

// Me resolves the verified token subject back to its user record. A token
// that validates but whose subject is gone yields 404, distinct from the
// guard's invalid-token 401.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := callerID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"message": "Invalid or expired token",
			"error":   "INVALID_TOKEN",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"message": "User not found",
				"error":   "USER_NOT_FOUND",
			})
		}
		log.Printf("me: lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Internal server error",
			"error":   "SERVER_ERROR",
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": u})
}

func invalidCredentials(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{
		"message": "Invalid email or password",
		"error":   "INVALID_CREDENTIALS",
	})
}

func registerServerError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, echo.Map{
		"message": "Internal server error during registration",
		"error":   "SERVER_ERROR",
	})
}
