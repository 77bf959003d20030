package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/bds22000-prog/kyclean/internal/auth"
	"github.com/bds22000-prog/kyclean/internal/models"
	"github.com/bds22000-prog/kyclean/internal/repository"
)

type AuthHandler struct {
	Employees    *repository.EmployeeRepository
	Tokens       *repository.RefreshTokenRepository
	TokenManager *auth.TokenManager
}

// NewAuthHandler создает обработчик авторизации.
func NewAuthHandler(employees *repository.EmployeeRepository, tokens *repository.RefreshTokenRepository, manager *auth.TokenManager) *AuthHandler {
	return &AuthHandler{
		Employees:    employees,
		Tokens:       tokens,
		TokenManager: manager,
	}
}

type LoginRequest struct {
	EmpNo    string `json:"emp_no" validate:"required,max=20"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=4,max=72"`
}

type AuthEmployee struct {
	ID           string          `json:"id"`
	EmpNo        string          `json:"emp_no"`
	Name         string          `json:"name"`
	NameCyr      string          `json:"name_cyr,omitempty"`
	Role         models.UserRole `json:"role"`
	Department   string          `json:"department,omitempty"`
	Company      string          `json:"company,omitempty"`
	AllowedMenus []string        `json:"allowed_menus,omitempty"`
}

type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	Employee     AuthEmployee `json:"employee"`
}

type EmployeeResponse struct {
	Employee AuthEmployee `json:"employee"`
}

// Login выполняет вход по табельному номеру и выдает токены.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	empNo := strings.TrimSpace(req.EmpNo)
	password := strings.TrimSpace(req.Password)

	employee, err := h.Employees.GetByEmpNo(empNo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c)
		}
		return serverError(c)
	}

	if !employee.Active() {
		return unauthorized(c)
	}

	if err = auth.ComparePassword(employee.PasswordHash, password); err != nil {
		return unauthorized(c)
	}

	response, err := h.issueTokens(employee)
	if err != nil {
		return serverError(c)
	}

	return c.JSON(http.StatusOK, response)
}

// Refresh обновляет токены по refresh-токену с ротацией.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	claims, err := h.TokenManager.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return unauthorized(c)
	}

	refreshID, err := uuid.Parse(claims.ID)
	if err != nil {
		return unauthorized(c)
	}

	storedToken, err := h.Tokens.GetByID(refreshID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c)
		}
		return serverError(c)
	}

	if storedToken.RevokedAt != nil || time.Now().After(storedToken.ExpiresAt) {
		return unauthorized(c)
	}

	if storedToken.EmployeeID != claims.Subject {
		return unauthorized(c)
	}

	if !auth.CompareTokenHash(storedToken.TokenHash, req.RefreshToken) {
		return unauthorized(c)
	}

	employee, err := h.Employees.Get(claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c)
		}
		return serverError(c)
	}

	newRefreshID := uuid.New()
	tokenPair, err := h.TokenManager.NewTokenPair(employee.ID, newRefreshID)
	if err != nil {
		return serverError(c)
	}

	newToken := repository.RefreshToken{
		ID:         newRefreshID,
		EmployeeID: employee.ID,
		TokenHash:  auth.HashToken(tokenPair.RefreshToken),
		ExpiresAt:  tokenPair.RefreshExpiresAt,
	}

	if err := h.Tokens.Rotate(storedToken.ID, newToken); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c)
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, AuthResponse{
		AccessToken:  tokenPair.AccessToken,
		RefreshToken: tokenPair.RefreshToken,
		Employee:     toAuthEmployee(employee),
	})
}

// Logout отзывает refresh-токен.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req LogoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	claims, err := h.TokenManager.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return unauthorized(c)
	}

	refreshID, err := uuid.Parse(claims.ID)
	if err != nil {
		return unauthorized(c)
	}

	if err := h.Tokens.Revoke(refreshID, nil); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.NoContent(http.StatusNoContent)
		}
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

// Me возвращает данные текущего сотрудника.
func (h *AuthHandler) Me(c echo.Context) error {
	employeeID, ok := auth.EmployeeIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	employee, err := h.Employees.Get(employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound(c, "employee not found")
		}
		return serverError(c)
	}

	return c.JSON(http.StatusOK, EmployeeResponse{Employee: toAuthEmployee(employee)})
}

// ChangePassword меняет пароль текущего сотрудника.
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	employeeID, ok := auth.EmployeeIDFromContext(c)
	if !ok {
		return unauthorized(c)
	}

	var req ChangePasswordRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "validation failed")
	}

	employee, err := h.Employees.Get(employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return unauthorized(c)
		}
		return serverError(c)
	}

	if err := auth.ComparePassword(employee.PasswordHash, strings.TrimSpace(req.CurrentPassword)); err != nil {
		return unauthorized(c)
	}

	hash, err := auth.HashPassword(strings.TrimSpace(req.NewPassword))
	if err != nil {
		return serverError(c)
	}

	if err := h.Employees.UpdatePassword(employeeID, hash); err != nil {
		return serverError(c)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) issueTokens(employee models.Employee) (AuthResponse, error) {
	refreshID := uuid.New()
	pair, err := h.TokenManager.NewTokenPair(employee.ID, refreshID)
	if err != nil {
		return AuthResponse{}, err
	}

	refreshToken := repository.RefreshToken{
		ID:         refreshID,
		EmployeeID: employee.ID,
		TokenHash:  auth.HashToken(pair.RefreshToken),
		ExpiresAt:  pair.RefreshExpiresAt,
	}

	if err := h.Tokens.Create(refreshToken); err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		Employee:     toAuthEmployee(employee),
	}, nil
}

func toAuthEmployee(employee models.Employee) AuthEmployee {
	return AuthEmployee{
		ID:           employee.ID,
		EmpNo:        employee.EmpNo,
		Name:         employee.Name,
		NameCyr:      employee.NameCyr,
		Role:         employee.Role,
		Department:   employee.Department,
		Company:      employee.Company,
		AllowedMenus: employee.AllowedMenus,
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, map[string]string{"error": message})
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
}

func conflict(c echo.Context, message string) error {
	return c.JSON(http.StatusConflict, map[string]string{"error": message})
}

func notFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, map[string]string{"error": message})
}

func serverError(c echo.Context) error {
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
}
