package storefront

import (
	"net/http"
	"strings"

	"lumiere/internal/session"

	"github.com/gin-gonic/gin"
)

// --------------------------------------------------
// Ask the chef for a recommendation
// --------------------------------------------------
// The session lock is not held during the call. Each request takes a
// sequence number first, and its answer is only stored if no newer request
// started in the meantime.
func (h *Handler) Recommend(c *gin.Context) {
	var req struct {
		Prompt string `json:"prompt"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	var seq uint64
	if !h.withSession(c, func(s *session.Session) error {
		seq = s.View.BeginRecommendation(prompt)
		return nil
	}) {
		return
	}

	text := h.recommender.Recommend(c.Request.Context(), prompt, h.catalog.Projection())

	applied := false
	if !h.withSession(c, func(s *session.Session) error {
		applied = s.View.CompleteRecommendation(seq, text)
		return nil
	}) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seq":     seq,
		"text":    text,
		"applied": applied,
	})
}
