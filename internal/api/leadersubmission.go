package api

import (
	"errors"
	"net/http"

	"github.com/TOPG-DEV/burntheworld/internal/middleware"
	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/service"
	"github.com/TOPG-DEV/burntheworld/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type leaderSubmissionRoutes struct {
	us service.UserServiceI
}

func NewLeaderSubmissionRoutes(handler *gin.RouterGroup, us service.UserServiceI, admin *middleware.Authorization) {
	r := &leaderSubmissionRoutes{us: us}

	h := handler.Group("/leader-submissions")
	{
		h.POST("/", r.Submit)
		h.GET("/", admin.AdminOnly(), r.List)
	}
}

type LeaderSubmissionRequest struct {
	Telegram string   `json:"telegram"`
	Wallet   string   `json:"wallet"`
	Answers  []string `json:"answers"`
}

func (r *leaderSubmissionRoutes) Submit(c *gin.Context) {
	log := logger.Logger()

	var req LeaderSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id, err := r.us.SubmitLeaderApplication(c.Request.Context(), &model.LeaderSubmission{
		Telegram: req.Telegram,
		Wallet:   req.Wallet,
		Answers:  req.Answers,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "telegram, wallet and at least three answers are required"})
			return
		}
		log.Error("failed to save leader submission", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "id": id})
}

func (r *leaderSubmissionRoutes) List(c *gin.Context) {
	log := logger.Logger()

	submissions, err := r.us.ListLeaderSubmissions(c.Request.Context())
	if err != nil {
		log.Error("failed to list leader submissions", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load leader submissions"})
		return
	}

	out := make([]gin.H, len(submissions))
	for i, s := range submissions {
		out[i] = gin.H{
			"id":        s.ID,
			"telegram":  s.Telegram,
			"wallet":    s.Wallet,
			"answers":   s.Answers,
			"timestamp": s.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, out)
}
