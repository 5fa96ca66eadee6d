package services

import (
	"strings"
	"sync"
	"time"

	"github.com/lucsky/cuid"
	"github.com/sirupsen/logrus"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/repository"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/utils"
)

// Durable store keys, kept from the original site.
const (
	keyPoints       = "loyaltyPoints"
	keyTransactions = "loyaltyTransactions"
	keyReferralCode = "referralCode"
	keyReferrals    = "referrals"
	keyAppliedCode  = "appliedReferralCode"
)

const (
	// ReferrerBonus goes to the referrer when a referred friend first orders.
	ReferrerBonus = 100
	// ReferredBonus goes to a new account that applies someone's code.
	ReferredBonus = 50
	// ReviewBonus is awarded for every submitted review.
	ReviewBonus = 25

	maxTransactions = 50
)

// LoyaltyService is the single authoritative point ledger: balance, capped
// transaction history, tier, and referral bookkeeping. The balance is
// persisted on its own, so trimming old transactions never loses accuracy.
type LoyaltyService struct {
	store repository.Store

	mu           sync.Mutex
	points       int
	transactions []entity.LoyaltyTransaction
	referralCode string
	referrals    []entity.Referral
	appliedCode  string
}

// NewLoyaltyService rehydrates the ledger from the store. Missing or
// unreadable entries fall back to empty defaults; the referral code is
// generated once on first run and persisted immediately.
func NewLoyaltyService(store repository.Store) *LoyaltyService {
	s := &LoyaltyService{store: store}
	store.Get(keyPoints, &s.points)
	store.Get(keyTransactions, &s.transactions)
	store.Get(keyReferrals, &s.referrals)
	store.Get(keyAppliedCode, &s.appliedCode)

	if !store.Get(keyReferralCode, &s.referralCode) || s.referralCode == "" {
		s.referralCode = utils.GenerateReferralCode()
		s.persist(keyReferralCode, s.referralCode)
	}
	return s
}

func (s *LoyaltyService) persist(key string, value any) {
	if err := s.store.Put(key, value); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("loyalty: persist failed")
	}
}

func (s *LoyaltyService) appendLocked(tx entity.LoyaltyTransaction) {
	s.points += tx.Points
	s.transactions = append([]entity.LoyaltyTransaction{tx}, s.transactions...)
	if len(s.transactions) > maxTransactions {
		s.transactions = s.transactions[:maxTransactions]
	}
	s.persist(keyPoints, s.points)
	s.persist(keyTransactions, s.transactions)
}

// AddPoints records an earn of the given type. Non-positive amounts are
// ignored; callers pass trusted internal values.
func (s *LoyaltyService) AddPoints(amount int, typ entity.TransactionType, description string) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addPointsLocked(amount, typ, description)
}

func (s *LoyaltyService) addPointsLocked(amount int, typ entity.TransactionType, description string) {
	s.appendLocked(entity.LoyaltyTransaction{
		ID:          "txn_" + cuid.New(),
		Type:        typ,
		Points:      amount,
		Description: description,
		Date:        time.Now().Format(time.RFC3339),
	})
}

// RedeemPoints spends points. Fails with no state change when the balance
// does not cover the amount.
func (s *LoyaltyService) RedeemPoints(amount int, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if amount <= 0 || s.points < amount {
		return ErrInsufficientPoints
	}
	s.appendLocked(entity.LoyaltyTransaction{
		ID:          "txn_" + cuid.New(),
		Type:        entity.TxRedemption,
		Points:      -amount,
		Description: description,
		Date:        time.Now().Format(time.RFC3339),
	})
	return nil
}

// RedeemReward looks up the catalog entry and spends its point cost.
func (s *LoyaltyService) RedeemReward(rewardID int) (entity.Reward, error) {
	for _, r := range rewardCatalog {
		if r.ID == rewardID {
			if err := s.RedeemPoints(r.Points, "Redeemed: "+r.Name); err != nil {
				return entity.Reward{}, err
			}
			return r, nil
		}
	}
	return entity.Reward{}, ErrRewardNotFound
}

// ApplyReferralCode redeems a friend's code for the one-time welcome bonus.
// An account can never apply its own code, and can apply at most one code
// ever; both rejections leave the ledger untouched.
func (s *LoyaltyService) ApplyReferralCode(code, email string) error {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	s.mu.Lock()
	defer s.mu.Unlock()
	if normalized == s.referralCode {
		return ErrSelfReferral
	}
	if s.appliedCode != "" {
		return ErrReferralAlreadyApplied
	}
	s.appliedCode = normalized
	s.persist(keyAppliedCode, s.appliedCode)
	s.addPointsLocked(ReferredBonus, entity.TxReferral, "Welcome bonus from referral")
	return nil
}

// InviteFriend records a pending referral for this account's code.
func (s *LoyaltyService) InviteFriend(email string) (entity.Referral, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.referrals {
		if strings.EqualFold(r.ReferredEmail, email) {
			return entity.Referral{}, ErrAlreadyReferred
		}
	}
	ref := entity.Referral{
		ID:            "ref_" + cuid.New(),
		ReferredEmail: email,
		Status:        entity.ReferralPending,
		Date:          time.Now().Format(time.RFC3339),
	}
	s.referrals = append(s.referrals, ref)
	s.persist(keyReferrals, s.referrals)
	return ref, nil
}

// CompleteReferral flips a pending referral to completed and pays the
// referrer bonus. Completing requires knowing that the referred friend placed
// a first order, which only a real backend can observe; nothing routes here
// in this deployment, it exists for that integration and for tests.
func (s *LoyaltyService) CompleteReferral(email string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.referrals {
		if r.Status == entity.ReferralPending && strings.EqualFold(r.ReferredEmail, email) {
			s.referrals[i].Status = entity.ReferralCompleted
			s.persist(keyReferrals, s.referrals)
			s.addPointsLocked(ReferrerBonus, entity.TxReferral, "Referral bonus: "+email+" placed first order")
			return
		}
	}
}

// Snapshot is the read model for the rewards page.
type Snapshot struct {
	Points              int                         `json:"points"`
	Tier                entity.Tier                 `json:"tier"`
	PointsToNextTier    int                         `json:"pointsToNextTier"`
	NextTierThreshold   int                         `json:"nextTierThreshold"`
	ReferralCode        string                      `json:"referralCode"`
	AppliedReferralCode string                      `json:"appliedReferralCode,omitempty"`
	Referrals           []entity.Referral           `json:"referrals"`
	Transactions        []entity.LoyaltyTransaction `json:"transactions"`
}

func (s *LoyaltyService) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	txs := make([]entity.LoyaltyTransaction, len(s.transactions))
	copy(txs, s.transactions)
	refs := make([]entity.Referral, len(s.referrals))
	copy(refs, s.referrals)
	return Snapshot{
		Points:              s.points,
		Tier:                entity.TierFor(s.points),
		PointsToNextTier:    entity.PointsToNextTier(s.points),
		NextTierThreshold:   entity.NextTierThreshold(s.points),
		ReferralCode:        s.referralCode,
		AppliedReferralCode: s.appliedCode,
		Referrals:           refs,
		Transactions:        txs,
	}
}

// Points returns the current balance.
func (s *LoyaltyService) Points() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.points
}

// ReferralCode returns this account's stable code.
func (s *LoyaltyService) ReferralCode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.referralCode
}

// rewardCatalog mirrors the rewards page.
var rewardCatalog = []entity.Reward{
	{ID: 1, Name: "Free Samosa", Points: 100, Description: "Crispy vegetable samosa"},
	{ID: 2, Name: "Free Lassi", Points: 150, Description: "Sweet or salted lassi"},
	{ID: 3, Name: "₹100 Off Order", Points: 300, Description: "On orders above ₹500"},
	{ID: 4, Name: "Free Dessert", Points: 250, Description: "Choice of gulab jamun or kheer"},
	{ID: 5, Name: "₹250 Off Order", Points: 600, Description: "On orders above ₹1000"},
	{ID: 6, Name: "Free Main Course", Points: 800, Description: "Any main course up to ₹400"},
}

// Rewards returns the redeemable catalog.
func (s *LoyaltyService) Rewards() []entity.Reward {
	out := make([]entity.Reward, len(rewardCatalog))
	copy(out, rewardCatalog)
	return out
}
