package catalogue

import (
	"net/url"
	"strings"
)

// ChatLinker builds the pre-filled chat deep link attached to a variant row.
type ChatLinker struct {
	BaseURL  string
	Phone    string
	Greeting string
}

// DefaultChat targets the catalogue owner's number.
var DefaultChat = ChatLinker{
	BaseURL:  "https://wa.me",
	Phone:    "917986297302",
	Greeting: "Hi, I’m interested in this tool:",
}

// Message returns the plain-text enquiry for one variant.
func (c ChatLinker) Message(itemName string, v Row) string {
	var b strings.Builder
	b.WriteString(c.greeting())
	b.WriteString("\nItem: " + itemName)
	b.WriteString("\nVariant Code: " + v.VariantCode)
	b.WriteString("\nDescription: " + v.Description)
	b.WriteString("\nPrice: " + v.PricePerUnit)
	return b.String()
}

// Link returns <base>/<phone>?text=<percent-encoded message>.
func (c ChatLinker) Link(itemName string, v Row) string {
	base := c.BaseURL
	if base == "" {
		base = DefaultChat.BaseURL
	}
	phone := c.Phone
	if phone == "" {
		phone = DefaultChat.Phone
	}
	return strings.TrimRight(base, "/") + "/" + phone + "?text=" + encodeComponent(c.Message(itemName, v))
}

func (c ChatLinker) greeting() string {
	if c.Greeting == "" {
		return DefaultChat.Greeting
	}
	return c.Greeting
}

// encodeComponent percent-encodes s for use inside a query value. Spaces
// become %20 rather than '+'.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
