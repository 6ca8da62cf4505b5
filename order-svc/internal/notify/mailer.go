// Package notify emails the operator about accepted orders.
package notify

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"

	"sahasra-foods/config"
	"sahasra-foods/order-svc/internal/domain"
)

const (
	senderName = "Sahasra Home-Foods Order System"
	rule       = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
)

var ErrInvalidRecipient = errors.New("invalid operator email address")

// SendFunc matches smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Mailer struct {
	cfg       config.SMTP
	recipient string
	send      SendFunc
}

func NewMailer(cfg config.SMTP, recipient string) *Mailer {
	return &Mailer{cfg: cfg, recipient: recipient, send: smtp.SendMail}
}

// WithSender replaces the SMTP transport.
func (m *Mailer) WithSender(send SendFunc) *Mailer {
	m.send = send
	return m
}

func (m *Mailer) Recipient() string {
	return m.recipient
}

func (m *Mailer) NotifyOrder(ctx context.Context, record domain.OrderRecord) error {
	if !strings.Contains(m.recipient, "@") || !strings.Contains(m.recipient, ".") {
		return ErrInvalidRecipient
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject, body := FormatOrderEmail(record)
	msg := buildMessage(m.cfg.From, m.recipient, subject, body)

	var auth smtp.Auth
	if m.cfg.User != "" {
		auth = smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	}
	addr := net.JoinHostPort(m.cfg.Host, m.cfg.Port)
	if err := m.send(addr, auth, m.cfg.From, []string{m.recipient}, msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", m.recipient, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n", mime.QEncoding.Encode("utf-8", senderName), from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n\r\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	return []byte(b.String())
}

// FormatOrderEmail renders the subject and plain-text body sent for an order.
func FormatOrderEmail(r domain.OrderRecord) (string, string) {
	subject := fmt.Sprintf("🛒 New Cart Order: %s - Sahasra Home-Foods", r.OrderRef)

	items := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, fmt.Sprintf("• %s\n  Quantity: %d\n  Price: ₹%s each\n  Subtotal: ₹%s",
			item.Name, item.Quantity, item.Price.String(), item.Total().String()))
	}

	email := r.CustomerEmail
	if email == "" {
		email = "Not provided"
	}
	instructions := r.SpecialInstructions
	if instructions == "" {
		instructions = "None"
	}

	var b strings.Builder
	b.WriteString("🍰 NEW ORDER RECEIVED - Sahasra Home-Foods\n\n")
	section(&b, "ORDER DETAILS")
	fmt.Fprintf(&b, "Order Reference: %s\n", r.OrderRef)
	fmt.Fprintf(&b, "Date & Time: %s %s\n", r.OrderDate, r.OrderTime)
	fmt.Fprintf(&b, "Total Items: %d\n\n", r.ItemCount)
	section(&b, "CUSTOMER INFORMATION")
	fmt.Fprintf(&b, "Name: %s\nPhone: %s\nEmail: %s\nAddress: %s\n\n", r.CustomerName, r.CustomerPhone, email, r.CustomerAddress)
	section(&b, "ITEMS ORDERED")
	b.WriteString(strings.Join(items, "\n\n"))
	b.WriteString("\n\n")
	section(&b, "PRICING BREAKDOWN")
	fmt.Fprintf(&b, "Cart Total: ₹%s\nDelivery Charges: ₹%s\n%s\nGRAND TOTAL: ₹%s\n\n",
		r.CartTotal.String(), r.DeliveryCharges.String(), rule, r.GrandTotal.String())
	section(&b, "SPECIAL INSTRUCTIONS")
	b.WriteString(instructions + "\n\n")
	section(&b, "ACTION REQUIRED")
	b.WriteString("✅ Contact customer to confirm order\n")
	b.WriteString("✅ Prepare items for delivery\n")
	b.WriteString("✅ Arrange delivery/pickup\n")
	b.WriteString("✅ Update order status in the order sheet\n\n")
	b.WriteString("Best regards,\n" + senderName + "\n")

	return subject, b.String()
}

func section(b *strings.Builder, title string) {
	b.WriteString(title + ":\n" + rule + "\n")
}
