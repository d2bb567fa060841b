package llm

import (
	"encoding/json"
	"strings"
)

// BuildRecommendationPrompt asks for one or two dishes from the menu
// projection that suit what the customer said.
func BuildRecommendationPrompt(restaurant string, menu []string, customer string) string {
	if menu == nil {
		menu = []string{}
	}

	var list strings.Builder
	enc := json.NewEncoder(&list)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(menu)

	return `You are a world-class Maitre D' at a high-end restaurant called ` + restaurant + `.
The menu is: ` + strings.TrimSpace(list.String()) + `.

The customer says: "` + strings.TrimSpace(customer) + `".

Recommend 1-2 specific dishes from the menu that match their request. Be brief, elegant, and appetizing. Do not list prices.`
}
