package entity

import (
	"time"

	"github.com/google/uuid"
)

// SiteVisit records one anonymous page hit, used for the traffic chart.
type SiteVisit struct {
	ID        uuid.UUID
	IPAddress string
	VisitedAt time.Time
}

// VisitBucket is one day of aggregated visit counts.
type VisitBucket struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// SiteTotals are the headline counters of the dashboard landing page.
type SiteTotals struct {
	Users    int64 `json:"users"`
	Products int64 `json:"products"`
	Blogs    int64 `json:"blogs"`
}
