package api

import (
	"errors"
	"net/http"

	"github.com/TOPG-DEV/burntheworld/internal/middleware"
	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/repository"
	"github.com/TOPG-DEV/burntheworld/internal/service"
	"github.com/TOPG-DEV/burntheworld/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type presaleRoutes struct {
	ps service.PresaleServiceI
}

func NewPresaleRoutes(handler *gin.RouterGroup, ps service.PresaleServiceI, admin *middleware.Authorization) {
	r := &presaleRoutes{ps: ps}

	handler.POST("/presale", r.RecordEntry)
	handler.GET("/presale", admin.AdminOnly(), r.ListEntries)
}

type PresaleEntryRequest struct {
	Wallet string  `json:"wallet"`
	Amount float64 `json:"amount"`
	Tx     string  `json:"tx"`
	Tier   string  `json:"tier"`
}

func (r *presaleRoutes) RecordEntry(c *gin.Context) {
	log := logger.Logger()

	var req PresaleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	entry := &model.PresaleEntry{
		Wallet: req.Wallet,
		Amount: req.Amount,
		Tx:     req.Tx,
		Tier:   req.Tier,
	}

	err := r.ps.RecordEntry(c.Request.Context(), entry)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing fields"})
		case errors.Is(err, repository.ErrDuplicateTx):
			c.JSON(http.StatusConflict, gin.H{"error": "transaction already recorded"})
		default:
			log.Error("failed to record presale entry", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (r *presaleRoutes) ListEntries(c *gin.Context) {
	log := logger.Logger()

	entries, err := r.ps.ListPresaleEntries(c.Request.Context(), c.Query("wallet"))
	if err != nil {
		log.Error("failed to list presale entries", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	out := make([]gin.H, len(entries))
	for i, e := range entries {
		out[i] = gin.H{
			"wallet":    e.Wallet,
			"amount":    e.Amount,
			"tx":        e.Tx,
			"tier":      e.Tier,
			"createdAt": e.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, gin.H{"entries": out})
}
