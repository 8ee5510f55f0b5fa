// Package whatsapp builds the deep links the storefront uses to hand an
// order off to WhatsApp. It only formats a message from cart contents
// and totals; nothing here performs network I/O.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shadow1264/freshbite-delivery/internal/domain"
)

const baseURL = "https://wa.me/"

// ItemLink is the "order this one item" shortcut shown on menu cards.
func ItemLink(number, itemName string) string {
	message := fmt.Sprintf("I want to order %s.", itemName)
	return baseURL + number + "?text=" + url.QueryEscape(message)
}

// CheckoutLink serializes the whole cart into a confirmation request.
func CheckoutLink(number string, lines []domain.CartLine, total float64) string {
	var b strings.Builder
	b.WriteString("Hi! I'd like to place an order:\n\n")
	for _, line := range lines {
		fmt.Fprintf(&b, "%dx %s (Tk %.2f)\n", line.Quantity, line.Name, line.Extension())
	}
	fmt.Fprintf(&b, "\nTotal: Tk %.2f\n\nPlease confirm my order.", total)

	return baseURL + number + "?text=" + url.QueryEscape(b.String())
}
