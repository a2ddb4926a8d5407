package middleware

import (
	"log/slog"
	"net/http"
	"time"

	deliverycontext "gaspass/internal/delivery/context"
	"gaspass/internal/domain/entity"
	"gaspass/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuditMiddleware appends one trail entry per mutating authenticated request,
// after the response status is known. It must be used AFTER the Authenticate
// middleware so actor claims are available.
type AuditMiddleware struct {
	auditUC usecase.AuditUsecase
	logger  *slog.Logger
}

// NewAuditMiddleware creates a new audit middleware
func NewAuditMiddleware(auditUC usecase.AuditUsecase, logger *slog.Logger) *AuditMiddleware {
	return &AuditMiddleware{
		auditUC: auditUC,
		logger:  logger,
	}
}

// Handle records mutating requests. Reads pass through untouched.
func (m *AuditMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		method := c.Request().Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			return err
		}

		entry := &entity.AuditEntry{
			OccurredAt: time.Now(),
			Method:     method,
			Path:       c.Request().URL.Path,
			StatusCode: c.Response().Status,
			IPAddress:  c.RealIP(),
		}
		if claims := deliverycontext.GetClaims(c.Request().Context()); claims != nil {
			actorID := claims.UserID
			entry.ActorID = &actorID
			entry.ActorName = claims.Username
		}

		m.auditUC.Record(c.Request().Context(), entry)

		return err
	}
}
