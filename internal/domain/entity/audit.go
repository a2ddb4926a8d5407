package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is one recorded administrative action. Entries are written by the
// audit middleware after the response is committed and are never updated.
type AuditEntry struct {
	ID         uuid.UUID  `json:"id"`
	OccurredAt time.Time  `json:"occurred_at"`
	ActorID    *uuid.UUID `json:"actor_id,omitempty"`
	ActorName  string     `json:"actor_name,omitempty"`
	Method     string     `json:"method"`
	Path       string     `json:"path"`
	StatusCode int        `json:"status_code"`
	IPAddress  string     `json:"ip_address,omitempty"`
}
