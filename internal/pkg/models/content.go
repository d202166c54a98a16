package models

import (
	"time"

	"github.com/google/uuid"
)

// ContentKind tags which collection a moderated item came from
type ContentKind string

const (
	ContentKindBusiness    ContentKind = "business"
	ContentKindEvent       ContentKind = "event"
	ContentKindJob         ContentKind = "job"
	ContentKindMarketplace ContentKind = "marketplace_item"
)

// ContentKinds lists all moderated collections
var ContentKinds = []ContentKind{
	ContentKindBusiness,
	ContentKindEvent,
	ContentKindJob,
	ContentKindMarketplace,
}

// ModerationStatus is the moderation state shared by all content kinds
type ModerationStatus string

const (
	ModerationStatusPending  ModerationStatus = "pending"
	ModerationStatusApproved ModerationStatus = "approved"
	ModerationStatusRejected ModerationStatus = "rejected"
)

// PendingContent is the common moderation shape of a submitted item
type PendingContent struct {
	ID          uuid.UUID        `json:"id" db:"id"`
	Kind        ContentKind      `json:"kind" db:"-"`
	Title       string           `json:"title" db:"title"`
	CreatedBy   uuid.UUID        `json:"created_by" db:"created_by"`
	Status      ModerationStatus `json:"status" db:"status"`
	CreatedDate time.Time        `json:"created_date" db:"created_date"`
}
