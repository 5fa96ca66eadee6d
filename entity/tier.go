package entity

type Tier string

const (
	TierBronze   Tier = "Bronze"
	TierSilver   Tier = "Silver"
	TierGold     Tier = "Gold"
	TierPlatinum Tier = "Platinum"
)

// Cumulative point thresholds, inclusive lower bounds.
const (
	BronzeThreshold   = 0
	SilverThreshold   = 500
	GoldThreshold     = 1500
	PlatinumThreshold = 3000
)

// TierFor returns the highest tier whose threshold is <= points.
func TierFor(points int) Tier {
	switch {
	case points >= PlatinumThreshold:
		return TierPlatinum
	case points >= GoldThreshold:
		return TierGold
	case points >= SilverThreshold:
		return TierSilver
	default:
		return TierBronze
	}
}

// NextTierThreshold returns the threshold of the tier above the current one.
// Saturates at the Platinum threshold.
func NextTierThreshold(points int) int {
	switch TierFor(points) {
	case TierBronze:
		return SilverThreshold
	case TierSilver:
		return GoldThreshold
	case TierGold:
		return PlatinumThreshold
	default:
		return PlatinumThreshold
	}
}

// PointsToNextTier returns how many more points reach the next tier,
// or 0 once Platinum.
func PointsToNextTier(points int) int {
	if TierFor(points) == TierPlatinum {
		return 0
	}
	return NextTierThreshold(points) - points
}

// TierBenefits lists the perks shown on the rewards page per tier.
var TierBenefits = map[Tier][]string{
	TierBronze:   {"Earn 10 pts per ₹100", "Birthday reward"},
	TierSilver:   {"Earn 12 pts per ₹100", "Birthday reward", "Free delivery on orders over ₹500"},
	TierGold:     {"Earn 15 pts per ₹100", "Birthday reward", "Free delivery", "Priority support"},
	TierPlatinum: {"Earn 20 pts per ₹100", "Birthday reward", "Free delivery", "Priority support", "Exclusive menu access"},
}
