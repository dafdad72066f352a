// Package relationship answers "who are this account's friends, followers
// and blocked accounts". Each kind is a separate Lookup.
package relationship

// Kind names a relationship set.
type Kind string

const (
	Friends   Kind = "friends"
	Followers Kind = "followers"
	Blocked   Kind = "blocked"
)

func key(kind Kind, email string) string {
	return string(kind) + ":" + email
}
