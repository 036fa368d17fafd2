package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"veridex/internal/checker"
	"veridex/internal/registry"
)

// askTimeout bounds one adjudication including all provider retries
const askTimeout = 2 * time.Minute

// askRequest is the body of POST /ask
type askRequest struct {
	Claim string `json:"claim" binding:"required"`
}

// handleHealth reports liveness
func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleAsk adjudicates one claim against the provider panel
func handleAsk(chk *checker.Checker) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req askRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid claim"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), askTimeout)
		defer cancel()

		result, err := chk.Check(ctx, req.Claim)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, result)
	}
}

// handleModels returns the current model configuration
func handleModels(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, reg.Load())
	}
}

// handleCredits returns the last credit snapshot; unknown when no
// refresh has run yet
func handleCredits(reg *registry.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, _ := reg.LoadCredits()
		c.JSON(http.StatusOK, status)
	}
}
