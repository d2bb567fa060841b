package recommend

import (
	"context"
	"strings"
	"sync"
	"testing"

	"lumiere/internal/menu"

	"github.com/pkg/errors"
)

type stubClient struct {
	mu      sync.Mutex
	reply   string
	err     error
	prompts []string
}

func (s *stubClient) Generate(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts = append(s.prompts, prompt)
	return s.reply, s.err
}

func TestRecommendReturnsResponse(t *testing.T) {
	stub := &stubClient{reply: "  May I suggest the Wild Mushroom Risotto.  "}
	svc := NewService(stub, "Lumière", nil)

	got := svc.Recommend(context.Background(), "something vegetarian", menu.Default().Projection())
	if got != "May I suggest the Wild Mushroom Risotto." {
		t.Fatalf("unexpected recommendation %q", got)
	}

	if len(stub.prompts) != 1 {
		t.Fatalf("expected exactly one request, got %d", len(stub.prompts))
	}
	p := stub.prompts[0]
	if !strings.Contains(p, "Wild Mushroom Risotto (Vegetarian,Rich)") || !strings.Contains(p, "something vegetarian") {
		t.Errorf("prompt missing menu or customer text:\n%s", p)
	}
	if strings.Contains(p, "$") || strings.Contains(p, "34") {
		t.Errorf("prompt should not carry prices:\n%s", p)
	}
}

func TestRecommendFallsBack(t *testing.T) {
	tests := []struct {
		name   string
		client *stubClient
	}{
		{"transport error", &stubClient{err: errors.New("connection refused")}},
		{"timeout", &stubClient{err: context.DeadlineExceeded}},
		{"blank response", &stubClient{reply: "   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(tt.client, "Lumière", nil)
			got := svc.Recommend(context.Background(), "anything", menu.Default().Projection())
			if got != Fallback {
				t.Fatalf("expected fallback, got %q", got)
			}
			if len(tt.client.prompts) != 1 {
				t.Fatalf("expected one attempt, got %d", len(tt.client.prompts))
			}
		})
	}
}

func TestRecommendWithoutClient(t *testing.T) {
	svc := NewService(nil, "Lumière", nil)
	if got := svc.Recommend(context.Background(), "anything", nil); got != Fallback {
		t.Fatalf("expected fallback, got %q", got)
	}
}
