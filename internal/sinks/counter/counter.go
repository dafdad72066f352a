package counter

import "roster/internal/account/models"

// Counter hash fields.
const (
	FieldStatuses        = "statuses"
	FieldFriends         = "friends"
	FieldFollowers       = "followers"
	FieldAttachmentBytes = "attachment_bytes"
)

func toCounters(fields map[string]int64) models.Counters {
	return models.Counters{
		Statuses:        fields[FieldStatuses],
		Friends:         fields[FieldFriends],
		Followers:       fields[FieldFollowers],
		AttachmentBytes: fields[FieldAttachmentBytes],
	}
}
