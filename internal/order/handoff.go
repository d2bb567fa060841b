package order

import "strings"

// DefaultHandoffBaseURL is the WhatsApp click-to-chat host.
const DefaultHandoffBaseURL = "https://wa.me"

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent escapes s exactly like ECMAScript encodeURIComponent:
// letters, digits and - _ . ! ~ * ' ( ) are kept, every other UTF-8 byte
// becomes %XX. Spaces become %20, never '+'.
func EncodeURIComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if keepUnescaped(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

func keepUnescaped(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// BuildHandoffURL points at {baseURL}/{destination}?text={message}.
// The destination is a phone number with country code; a leading '+' and
// any spaces are dropped.
func BuildHandoffURL(message, destination, baseURL string) string {
	if baseURL == "" {
		baseURL = DefaultHandoffBaseURL
	}
	destination = strings.TrimPrefix(strings.ReplaceAll(destination, " ", ""), "+")

	return strings.TrimRight(baseURL, "/") + "/" + destination + "?text=" + EncodeURIComponent(message)
}

// Handoff is a formatted order and the link that delivers it.
type Handoff struct {
	Message string `json:"message"`
	URL     string `json:"handoffUrl"`
}

// Destination describes where handoff links go.
type Destination struct {
	BaseURL    string
	Number     string
	Restaurant string
}

// Checkout formats the cart and builds its handoff link.
func Checkout(lines Lines, customer Customer, t Type, dest Destination) (*Handoff, error) {
	msg, err := Format(lines.Lines(), lines.Total(), customer, t, dest.Restaurant)
	if err != nil {
		return nil, err
	}
	return &Handoff{
		Message: msg,
		URL:     BuildHandoffURL(msg, dest.Number, dest.BaseURL),
	}, nil
}
