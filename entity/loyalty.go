package entity

type TransactionType string

const (
	TxOrder      TransactionType = "order"
	TxReview     TransactionType = "review"
	TxRedemption TransactionType = "redemption"
	TxReferral   TransactionType = "referral"
)

// LoyaltyTransaction is one signed entry in the point ledger.
// Positive points are earns, negative are redemption spends.
type LoyaltyTransaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Points      int             `json:"points"`
	Description string          `json:"description"`
	Date        string          `json:"date"`
}

type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralCompleted ReferralStatus = "completed"
)

type Referral struct {
	ID            string         `json:"id"`
	ReferredEmail string         `json:"referredEmail"`
	Status        ReferralStatus `json:"status"`
	Date          string         `json:"date"`
}

// Reward is one redeemable entry in the rewards catalog.
type Reward struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Points      int    `json:"points"`
	Description string `json:"description"`
}
