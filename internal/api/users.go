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

type userRoutes struct {
	us service.UserServiceI
}

func NewUserRoutes(handler *gin.RouterGroup, us service.UserServiceI, admin *middleware.Authorization) {
	r := &userRoutes{us: us}

	h := handler.Group("/entries")
	{
		h.POST("/", r.RegisterEntry)
		h.GET("/", admin.AdminOnly(), r.ListEntries)
		h.PATCH("/:wallet/engagement", admin.AdminOnly(), r.SetEngagement)
	}
}

type RegisterEntryRequest struct {
	Wallet     string `json:"wallet"`
	Telegram   string `json:"telegram"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	ReferredBy string `json:"referredBy"`
}

type RegisterEntryResponse struct {
	Wallet   string `json:"wallet"`
	Telegram string `json:"telegram"`
}

func (r *userRoutes) RegisterEntry(c *gin.Context) {
	log := logger.Logger()

	var req RegisterEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry := &model.UserEntry{
		Wallet:     req.Wallet,
		Telegram:   req.Telegram,
		Username:   req.Username,
		Name:       req.Name,
		Email:      req.Email,
		ReferredBy: req.ReferredBy,
	}

	saved, err := r.us.RegisterProfile(c.Request.Context(), entry)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "wallet and telegram are required"})
			return
		}
		log.Error("failed to register entry", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save entry"})
		return
	}

	c.JSON(http.StatusCreated, RegisterEntryResponse{
		Wallet:   saved.Wallet,
		Telegram: saved.Telegram,
	})
}

func (r *userRoutes) ListEntries(c *gin.Context) {
	log := logger.Logger()

	entries, err := r.us.ListEntries(c.Request.Context())
	if err != nil {
		log.Error("failed to list entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list entries"})
		return
	}

	out := make([]gin.H, len(entries))
	for i, e := range entries {
		out[i] = gin.H{
			"wallet":             e.Wallet,
			"telegram":           e.Telegram,
			"username":           e.Username,
			"name":               e.Name,
			"email":              e.Email,
			"referredBy":         e.ReferredBy,
			"referralCount":      e.ReferralCount,
			"telegramEngagement": e.TelegramEngagement,
			"rank":               e.Rank,
			"verified":           e.Verified,
			"createdAt":          e.CreatedAt,
			"updatedAt":          e.UpdatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"submissions": out})
}

type SetEngagementRequest struct {
	Engagement float64 `json:"engagement"`
}

func (r *userRoutes) SetEngagement(c *gin.Context) {
	log := logger.Logger()

	wallet := c.Param("wallet")

	var req SetEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	err := r.us.SetEngagement(c.Request.Context(), wallet, req.Engagement)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "engagement must be non-negative"})
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no entry for the provided wallet"})
		default:
			log.Error("failed to set engagement", zap.Error(err), zap.String("wallet", wallet))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to set engagement"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"wallet":             wallet,
		"telegramEngagement": req.Engagement,
	})
}
