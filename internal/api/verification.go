package api

import (
	"errors"
	"net/http"

	"github.com/TOPG-DEV/burntheworld/internal/model"
	"github.com/TOPG-DEV/burntheworld/internal/service"
	"github.com/TOPG-DEV/burntheworld/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type verificationRoutes struct {
	vs service.VerificationServiceI
}

func NewVerificationRoutes(handler *gin.RouterGroup, vs service.VerificationServiceI) {
	r := &verificationRoutes{vs: vs}

	handler.GET("/verify", r.Verify)
	handler.GET("/status", r.Status)
}

func (r *verificationRoutes) Verify(c *gin.Context) {
	log := logger.Logger()

	wallet := c.Query("wallet")
	if wallet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"verified": false, "reason": "No wallet provided."})
		return
	}

	result, err := r.vs.Verify(c.Request.Context(), wallet)
	if err != nil {
		if errors.Is(err, service.ErrUpstreamUnavailable) {
			c.JSON(http.StatusInternalServerError, verificationJSON(result))
			return
		}
		log.Error("verification failed", zap.Error(err), zap.String("wallet", wallet))
		c.JSON(http.StatusInternalServerError, gin.H{
			"verified": false,
			"reason":   "Verification failed. Try again later.",
		})
		return
	}

	c.JSON(http.StatusOK, verificationJSON(result))
}

func (r *verificationRoutes) Status(c *gin.Context) {
	log := logger.Logger()

	wallet := c.Query("wallet")
	if wallet == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing wallet"})
		return
	}

	result, err := r.vs.Status(c.Request.Context(), wallet)
	if err != nil {
		log.Error("status check failed", zap.Error(err), zap.String("wallet", wallet))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "status check failed"})
		return
	}

	if !result.Verified {
		c.JSON(http.StatusOK, gin.H{"verified": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{"verified": true, "rank": result.Rank})
}

func verificationJSON(result *model.VerificationResult) gin.H {
	if !result.Verified {
		return gin.H{
			"verified": false,
			"reason":   result.Reason,
		}
	}

	return gin.H{
		"verified":   true,
		"rank":       result.Rank,
		"wallet":     result.Wallet,
		"telegram":   result.Telegram,
		"topg":       result.Topg,
		"rounds":     result.Rounds,
		"referrals":  result.Referrals,
		"totalPaid":  result.TotalPaid,
		"engagement": result.Engagement,
		"message":    result.Message,
	}
}
