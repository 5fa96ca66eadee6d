package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/entity"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/pkg/resp"
	"github.com/yashtrivedi1234/rinku-hotel-taste-of-home/services"
)

type RewardsController struct{ Svc *services.LoyaltyService }

func NewRewardsController(s *services.LoyaltyService) *RewardsController {
	return &RewardsController{Svc: s}
}

// GET /rewards
func (h *RewardsController) Get(c *gin.Context) {
	snap := h.Svc.Snapshot()
	resp.OK(c, gin.H{
		"account":      snap,
		"rewards":      h.Svc.Rewards(),
		"tierBenefits": entity.TierBenefits[snap.Tier],
	})
}

// POST /rewards/redeem
func (h *RewardsController) Redeem(c *gin.Context) {
	var body struct {
		RewardID int `json:"rewardId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	reward, err := h.Svc.RedeemReward(body.RewardID)
	if err != nil {
		if errors.Is(err, services.ErrRewardNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.Conflict(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"reward": reward, "points": h.Svc.Points()})
}

// POST /rewards/referral
func (h *RewardsController) ApplyReferral(c *gin.Context) {
	var body struct {
		Code  string `json:"code" binding:"required"`
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.ApplyReferralCode(body.Code, body.Email); err != nil {
		resp.Conflict(c, err.Error())
		return
	}
	resp.OK(c, gin.H{"points": h.Svc.Points()})
}

// POST /rewards/referrals
func (h *RewardsController) Invite(c *gin.Context) {
	var body struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	ref, err := h.Svc.InviteFriend(body.Email)
	if err != nil {
		resp.Conflict(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"referral": ref})
}
