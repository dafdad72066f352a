package audit

import (
	"context"
	"time"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and routing.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance.
	// Examples: account creation/deletion, credential changes.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers events relevant to security monitoring.
	// Examples: password reset requests, constraint violations on credentials.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine activity useful for debugging.
	// Examples: preference toggles, profile edits.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory
	Timestamp time.Time
	AccountID string
	Email     string
	Domain    string
	Action    string
	Reason    string
	RequestID string
	// ActorID tracks who performed the action when different from the account,
	// e.g. an administrator provisioning an invitation.
	ActorID string
}

type AuditEvent string

const (
	EventAccountCreated         AuditEvent = "account_created"
	EventAccountInvited         AuditEvent = "account_invited"
	EventAccountActivated       AuditEvent = "account_activated"
	EventAccountDeleted         AuditEvent = "account_deleted"
	EventPasswordResetRequested AuditEvent = "password_reset_requested"
	EventPasswordResetCompleted AuditEvent = "password_reset_completed"
	EventPasswordChanged        AuditEvent = "password_changed"
	EventProfileUpdated         AuditEvent = "profile_updated"
	EventPreferencesUpdated     AuditEvent = "preferences_updated"
	EventRssPublicationToggled  AuditEvent = "rss_publication_toggled"
	EventDigestSubscriptionSet  AuditEvent = "digest_subscription_set"
	EventConstraintViolated     AuditEvent = "constraint_violated"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventAccountCreated:         CategoryCompliance,
	EventAccountInvited:         CategoryCompliance,
	EventAccountDeleted:         CategoryCompliance,
	EventPasswordResetCompleted: CategoryCompliance,
	EventPasswordChanged:        CategoryCompliance,

	EventPasswordResetRequested: CategorySecurity,
	EventAccountActivated:       CategorySecurity,
	EventConstraintViolated:     CategorySecurity,

	EventProfileUpdated:        CategoryOperations,
	EventPreferencesUpdated:    CategoryOperations,
	EventRssPublicationToggled: CategoryOperations,
	EventDigestSubscriptionSet: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Store persists audit events.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByAccount(ctx context.Context, accountID string) ([]Event, error)
}
