package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RewardCreditor начисляет награду и возвращает её размер.
type RewardCreditor interface {
	Credit(ctx context.Context, userID int64, network string) (int64, error)
}

// RewardHandler обслуживает колбэк рекламных сетей.
type RewardHandler struct {
	rewards RewardCreditor
	log     *logrus.Entry
}

// NewRewardHandler создаёт handler начисления наград.
func NewRewardHandler(rewards RewardCreditor, log *logrus.Entry) *RewardHandler {
	return &RewardHandler{rewards: rewards, log: log}
}

// Reward обрабатывает GET /reward?uid=<int>&network=<string>.
// Тела ответов — часть wire-контракта с рекламными сетями.
func (h *RewardHandler) Reward(c *gin.Context) {
	uid, err := strconv.ParseInt(c.Query("uid"), 10, 64)
	if err != nil {
		c.String(http.StatusBadRequest, "missing uid")
		return
	}

	network := c.DefaultQuery("network", "unknown")

	amount, err := h.rewards.Credit(c.Request.Context(), uid, network)
	if err != nil {
		h.log.WithError(err).WithFields(logrus.Fields{
			"uid":     uid,
			"network": network,
		}).Error("reward credit failed")
		c.String(http.StatusInternalServerError, "error")
		return
	}

	h.log.WithFields(logrus.Fields{
		"uid":     uid,
		"network": network,
		"coins":   amount,
	}).Info("reward credited")

	c.String(http.StatusOK, "ok")
}
