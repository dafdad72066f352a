package models

import (
	"fmt"
	"strconv"
	"time"
)

// DigestKind selects the weekly or daily digest.
type DigestKind string

const (
	DigestWeekly DigestKind = "weekly"
	DigestDaily  DigestKind = "daily"
)

func (k DigestKind) Valid() bool {
	return k == DigestWeekly || k == DigestDaily
}

func ParseDigestKind(s string) (DigestKind, error) {
	k := DigestKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown digest kind %q", s)
	}
	return k, nil
}

// DigestDay is the partition key for a digest membership: "1" for Sunday
// through "7" for Saturday. The day a subscription is toggled is the day its
// digest is delivered.
func DigestDay(t time.Time) string {
	return strconv.Itoa(int(t.Weekday()) + 1)
}
