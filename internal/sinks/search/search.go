// Package search keeps the account search index in step with the account
// store. Documents are keyed by account id, so an index after a remove
// replaces rather than duplicates.
package search

import (
	"time"

	"roster/internal/account/models"
)

// Op is the index operation a document carries.
type Op string

const (
	OpIndex  Op = "index"
	OpRemove Op = "remove"
)

// Document is the searchable projection of an account.
type Document struct {
	Op        Op        `json:"op"`
	AccountID string    `json:"account_id"`
	Email     string    `json:"email,omitempty"`
	Username  string    `json:"username,omitempty"`
	Domain    string    `json:"domain,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	JobTitle  string    `json:"job_title,omitempty"`
	Phone     string    `json:"phone_number,omitempty"`
	Activated bool      `json:"activated"`
	IndexedAt time.Time `json:"indexed_at"`
}

func NewDocument(op Op, a *models.Account, now time.Time) Document {
	doc := Document{Op: op, AccountID: a.ID, IndexedAt: now}
	if op == OpRemove {
		return doc
	}
	doc.Email = a.Email
	doc.Username = a.Username
	doc.Domain = a.Domain
	doc.FirstName = a.FirstName
	doc.LastName = a.LastName
	doc.JobTitle = a.JobTitle
	doc.Phone = a.PhoneNumber
	doc.Activated = a.Activated
	return doc
}
