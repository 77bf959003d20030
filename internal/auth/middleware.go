package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bds22000-prog/kyclean/internal/models"
)

const ContextEmployeeIDKey = "employee_id"

// EmployeeLookup отдает сотрудника по идентификатору из токена.
type EmployeeLookup func(id string) (models.Employee, error)

// JWTMiddleware проверяет access-токен и сохраняет employee_id в контексте.
func JWTMiddleware(manager *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			tokenString := strings.TrimSpace(parts[1])
			if tokenString == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := manager.ParseAccessToken(tokenString)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if strings.TrimSpace(claims.Subject) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}

			c.Set(ContextEmployeeIDKey, claims.Subject)
			return next(c)
		}
	}
}

// RoleMiddleware пускает дальше только сотрудников с одной из ролей.
// Роль читается из реестра при каждом запросе, а не из токена: смена
// роли действует сразу, без переиздания токенов.
func RoleMiddleware(lookup EmployeeLookup, roles ...models.UserRole) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			employeeID, ok := EmployeeIDFromContext(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}

			employee, err := lookup(employeeID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unknown employee")
			}

			for _, role := range roles {
				if employee.Role == role {
					return next(c)
				}
			}

			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

// EmployeeIDFromContext извлекает идентификатор сотрудника из контекста.
func EmployeeIDFromContext(c echo.Context) (string, bool) {
	value := c.Get(ContextEmployeeIDKey)
	employeeID, ok := value.(string)
	return employeeID, ok
}
