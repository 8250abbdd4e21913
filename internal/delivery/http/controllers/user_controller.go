package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"festivalhub/internal/delivery/http/helpers"
	"festivalhub/internal/domain"
)

type UserController struct {
	Logger *slog.Logger
	Users  domain.UserService
}

func NewUserController(logger *slog.Logger, users domain.UserService) *UserController {
	return &UserController{Logger: logger, Users: users}
}

// RegisterRequest is the request body for POST /users/register.
type RegisterRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Role     string `json:"role"`
}

// Validate implements helpers.Validator.
func (r RegisterRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(r.Fullname) == "" {
		errs = append(errs, "fullname is required")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = append(errs, "email is required")
	}
	if r.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// RegisterResponse is the success body for POST /users/register.
type RegisterResponse struct {
	Message string `json:"message"`
	UID     string `json:"uid"`
	Token   string `json:"token"`
}

// Register godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param body body controllers.RegisterRequest true "Registration fields"
// @Success 201 {object} controllers.RegisterResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /users/register [post]
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	uid, token, err := c.Users.Register(r.Context(), domain.RegisterParams{
		Fullname: req.Fullname,
		Email:    req.Email,
		Password: req.Password,
		Age:      req.Age,
		Gender:   req.Gender,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid registration details")
		case errors.Is(err, domain.ErrDuplicateEmail):
			helpers.WriteJSONError(w, http.StatusBadRequest, "Email already in use")
		default:
			c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to register user")
		}
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully",
		UID:     uid,
		Token:   token,
	})
}

// GetProfile godoc
// @Summary Get a user profile
// @Description Returns the user profile including the titles of events the user currently has an RSVP for.
// @Tags users
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /users/profile/{uid} [get]
func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid := r.PathValue("uid")

	user, err := c.Users.GetProfile(r.Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch user profile")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}
