// Package digest stores digest memberships partitioned by kind, day of week
// and tenant domain.
package digest

import (
	"sort"

	"roster/internal/account/models"
)

// Subscription is one (kind, day, domain, username) membership.
type Subscription struct {
	Kind     models.DigestKind
	Day      string
	Domain   string
	Username string
}

func key(kind models.DigestKind, day, domain string) string {
	return "digest:" + string(kind) + ":" + day + ":" + domain
}

func sorted(members []string) []string {
	sort.Strings(members)
	return members
}
