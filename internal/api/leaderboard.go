package api

import (
	"net/http"

	"github.com/TOPG-DEV/burntheworld/internal/service"
	"github.com/TOPG-DEV/burntheworld/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type leaderboardRoutes struct {
	ls  service.LeaderboardServiceI
	hub *Hub
}

func NewLeaderboardRoutes(handler *gin.RouterGroup, ls service.LeaderboardServiceI, hub *Hub) {
	r := &leaderboardRoutes{ls: ls, hub: hub}

	h := handler.Group("/leaderboard")
	{
		h.GET("/", r.GetLeaderboard)
		h.GET("/ws", r.handleWebSocket)
	}
}

func (r *leaderboardRoutes) GetLeaderboard(c *gin.Context) {
	log := logger.Logger()

	entries, err := r.ls.Leaderboard(c.Request.Context())
	if err != nil {
		log.Error("failed to get leaderboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get leaderboard"})
		return
	}

	out := make([]gin.H, len(entries))
	for i, e := range entries {
		out[i] = gin.H{
			"username":    e.Username,
			"wallet":      e.Wallet,
			"topgBalance": e.TopgBalance,
			"buyIn":       e.BuyIn,
			"referrals":   e.Referrals,
			"engagement":  e.Engagement,
			"powerScore":  e.PowerScore,
			"title":       e.Title,
			"numericRank": e.NumericRank,
		}
	}

	c.JSON(http.StatusOK, out)
}

func (r *leaderboardRoutes) handleWebSocket(c *gin.Context) {
	r.hub.Handle(c)
}
