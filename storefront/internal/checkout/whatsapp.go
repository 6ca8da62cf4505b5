package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"sahasra-foods/storefront/internal/cart"

	"github.com/skip2/go-qrcode"
)

// WhatsAppMessage is the order summary the customer can forward to the shop.
func WhatsAppMessage(orderRef string, p cart.OrderPayload) string {
	var items strings.Builder
	for _, item := range p.Items {
		fmt.Fprintf(&items, "%s (Qty: %d) - ₹%s\n", item.Name, item.Quantity, item.Total().String())
	}

	return fmt.Sprintf("New Order Received!\n\nOrder Ref: %s\nCustomer: %s\nPhone: %s\n\nITEMS:\n%s\n"+
		"Cart Total: ₹%s\nDelivery: ₹%s\nGrand Total: ₹%s\n\nPlease check the order sheet for full details.",
		orderRef, p.CustomerName, p.CustomerPhone, items.String(),
		p.CartTotal.String(), p.DeliveryCharges.String(), p.GrandTotal.String())
}

// WhatsAppLink builds a wa.me click-to-chat URL with the message prefilled.
func WhatsAppLink(number, message string) string {
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + strings.TrimPrefix(number, "+") + "?text=" + text
}

type QRGenerator interface {
	Generate(link string) ([]byte, error)
}

type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Generate(link string) ([]byte, error) {
	return qrcode.Encode(link, qrcode.Medium, 256)
}
