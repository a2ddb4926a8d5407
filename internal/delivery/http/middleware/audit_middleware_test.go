package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "gaspass/internal/delivery/context"
	"gaspass/internal/domain/entity"
	"gaspass/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingAuditUsecase struct {
	entries []*entity.AuditEntry
}

func (r *recordingAuditUsecase) Record(_ context.Context, entry *entity.AuditEntry) {
	r.entries = append(r.entries, entry)
}

func (r *recordingAuditUsecase) Recent(context.Context, int) ([]*entity.AuditEntry, error) {
	return r.entries, nil
}

func newAuditTestContext(method, path string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func TestAuditMiddleware_SkipsReads(t *testing.T) {
	uc := &recordingAuditUsecase{}
	m := NewAuditMiddleware(uc, slog.New(slog.DiscardHandler))

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		c := newAuditTestContext(method, "/api/users")
		require.NoError(t, m.Handle(okHandler)(c))
	}
	assert.Empty(t, uc.entries)
}

func TestAuditMiddleware_RecordsMutationWithActor(t *testing.T) {
	uc := &recordingAuditUsecase{}
	m := NewAuditMiddleware(uc, slog.New(slog.DiscardHandler))

	actorID := uuid.New()
	c := newAuditTestContext(http.MethodDelete, "/api/products/42")
	req := c.Request()
	c.SetRequest(req.WithContext(deliverycontext.WithClaims(req.Context(), &service.Claims{
		UserID:   actorID,
		Username: "root",
	})))

	require.NoError(t, m.Handle(okHandler)(c))

	require.Len(t, uc.entries, 1)
	entry := uc.entries[0]
	assert.Equal(t, http.MethodDelete, entry.Method)
	assert.Equal(t, "/api/products/42", entry.Path)
	assert.Equal(t, http.StatusOK, entry.StatusCode)
	require.NotNil(t, entry.ActorID)
	assert.Equal(t, actorID, *entry.ActorID)
	assert.Equal(t, "root", entry.ActorName)
	assert.False(t, entry.OccurredAt.IsZero())
}

func TestAuditMiddleware_RecordsEvenWhenHandlerFails(t *testing.T) {
	uc := &recordingAuditUsecase{}
	m := NewAuditMiddleware(uc, slog.New(slog.DiscardHandler))

	c := newAuditTestContext(http.MethodPost, "/api/blogs")
	handlerErr := echo.NewHTTPError(http.StatusBadRequest, "bad input")

	err := m.Handle(func(echo.Context) error { return handlerErr })(c)
	assert.Equal(t, handlerErr, err)
	assert.Len(t, uc.entries, 1)
}
