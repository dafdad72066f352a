package quota

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"roster/internal/tenant/models"
)

const (
	KeyBasicSize      = "storage.basic.max.size"
	KeyPremiumSize    = "storage.premium.max.size"
	KeyUnlimitedSize  = "storage.unlimited.max.size"
	KeyBasicLevel     = "subscription.level.basic"
	KeyPremiumLevel   = "subscription.level.premium"
	KeyUnlimitedLevel = "subscription.level.unlimited"

	bytesPerMB = 1_000_000
)

var requiredKeys = []string{
	KeyBasicSize,
	KeyPremiumSize,
	KeyUnlimitedSize,
	KeyBasicLevel,
	KeyPremiumLevel,
	KeyUnlimitedLevel,
}

// Options are the tier codes and default sizes loaded once at startup.
// Sizes are megabytes.
type Options struct {
	BasicSizeMB     int64
	PremiumSizeMB   int64
	UnlimitedSizeMB int64
	BasicLevel      string
	PremiumLevel    string
	UnlimitedLevel  string
}

// Load validates the raw option map. Every key must be present and every size
// must be a positive megabyte count that fits in int64 bytes; anything else is
// a deployment error.
func Load(raw map[string]string) (Options, error) {
	var missing []string
	for _, key := range requiredKeys {
		if strings.TrimSpace(raw[key]) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return Options{}, fmt.Errorf("quota options missing: %s", strings.Join(missing, ", "))
	}

	var (
		opts Options
		err  error
	)
	if opts.BasicSizeMB, err = parseSize(raw, KeyBasicSize); err != nil {
		return Options{}, err
	}
	if opts.PremiumSizeMB, err = parseSize(raw, KeyPremiumSize); err != nil {
		return Options{}, err
	}
	if opts.UnlimitedSizeMB, err = parseSize(raw, KeyUnlimitedSize); err != nil {
		return Options{}, err
	}
	opts.BasicLevel = strings.TrimSpace(raw[KeyBasicLevel])
	opts.PremiumLevel = strings.TrimSpace(raw[KeyPremiumLevel])
	opts.UnlimitedLevel = strings.TrimSpace(raw[KeyUnlimitedLevel])

	if opts.BasicLevel == opts.PremiumLevel || opts.BasicLevel == opts.UnlimitedLevel || opts.PremiumLevel == opts.UnlimitedLevel {
		return Options{}, fmt.Errorf("quota subscription level codes must be distinct")
	}
	return opts, nil
}

func parseSize(raw map[string]string, key string) (int64, error) {
	mb, err := strconv.ParseInt(strings.TrimSpace(raw[key]), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("quota option %s: %w", key, err)
	}
	if mb <= 0 || mb > math.MaxInt64/bytesPerMB {
		return 0, fmt.Errorf("quota option %s: %d MB out of range", key, mb)
	}
	return mb, nil
}

// BaselineBytes is the basic tier size in bytes.
func (o Options) BaselineBytes() int64 {
	return o.BasicSizeMB * bytesPerMB
}

// TierFor maps a subscription level code to its tier and default size in MB.
// Unknown codes are treated as basic.
func (o Options) TierFor(level string) (models.Tier, int64) {
	switch strings.TrimSpace(level) {
	case o.PremiumLevel:
		return models.TierPremium, o.PremiumSizeMB
	case o.UnlimitedLevel:
		return models.TierUnlimited, o.UnlimitedSizeMB
	default:
		return models.TierBasic, o.BasicSizeMB
	}
}
