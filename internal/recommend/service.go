package recommend

import (
	"context"
	"io"
	"strings"
	"time"

	"lumiere/internal/llm"

	"github.com/sirupsen/logrus"
)

// Fallback is returned whenever the text service cannot answer.
const Fallback = "Our Chef recommends the Herb-Crusted Lamb Rack, a timeless classic."

// Service turns a customer's mood into a dish suggestion. It never fails:
// every error path ends in Fallback.
type Service struct {
	client     llm.Client
	restaurant string
	log        logrus.FieldLogger
}

// NewService accepts a nil client, in which case every call returns Fallback.
func NewService(client llm.Client, restaurant string, log logrus.FieldLogger) *Service {
	if log == nil {
		l := logrus.New()
		l.Out = io.Discard
		log = l
	}
	return &Service{client: client, restaurant: restaurant, log: log}
}

// Recommend makes exactly one request: no retries, no streaming.
// projection is the price-free menu from menu.Catalog.Projection.
func (s *Service) Recommend(ctx context.Context, prompt string, projection []string) string {
	if s.client == nil {
		s.log.Warn("recommendation requested with no llm client configured")
		return Fallback
	}

	start := time.Now()
	text, err := s.client.Generate(ctx, llm.BuildRecommendationPrompt(s.restaurant, projection, prompt))
	if err != nil {
		s.log.WithError(err).WithField("latency", time.Since(start)).Warn("recommendation failed, using fallback")
		return Fallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return Fallback
	}

	s.log.WithField("latency", time.Since(start)).Debug("recommendation served")
	return text
}
