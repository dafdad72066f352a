package models

// TenantQuota is the per-domain configuration row. It is provisioned out of
// band; this service only reads it.
type TenantQuota struct {
	Domain            string `json:"domain"`
	SubscriptionLevel string `json:"subscription_level"`
	// StorageSize is a count of megabytes stored as text. It may be malformed.
	StorageSize   string `json:"storage_size"`
	AdminUsername string `json:"admin_username"`
}

// Tier is a subscription tier.
type Tier string

const (
	TierBasic     Tier = "basic"
	TierPremium   Tier = "premium"
	TierUnlimited Tier = "unlimited"
)

// Quota is a TenantQuota resolved against the process quota options.
type Quota struct {
	Domain        string `json:"domain"`
	Tier          Tier   `json:"tier"`
	Bytes         int64  `json:"bytes"`
	AdminUsername string `json:"admin_username"`
}

// IsAdmin reports whether username administers this tenant.
func (q *Quota) IsAdmin(username string) bool {
	return q != nil && q.AdminUsername != "" && q.AdminUsername == username
}
