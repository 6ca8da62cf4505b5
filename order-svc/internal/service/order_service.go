package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sahasra-foods/config"
	"sahasra-foods/order-svc/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	DefaultRefPrefix = "SAH"
	defaultListLimit = 50
	maxListLimit     = 500

	// maxRefAttempts bounds how many references are tried when the sheet
	// already holds the issued one.
	maxRefAttempts = 3
)

type Options struct {
	DeliveryCharge decimal.Decimal
	Location       *time.Location
	RefPrefix      string
	Now            func() time.Time
}

func DefaultOptions() Options {
	return Options{
		DeliveryCharge: decimal.NewFromInt(config.DeliveryChargeRupees),
		Location:       time.UTC,
		RefPrefix:      DefaultRefPrefix,
		Now:            time.Now,
	}
}

type OrderService struct {
	sheet     OrderSheet
	refs      OrderRefIssuer
	guard     SubmissionGuard
	notifier  Notifier
	publisher OrderPublisher
	opts      Options
}

// NewOrderService wires the gateway. guard, notifier and publisher may be nil.
func NewOrderService(sheet OrderSheet, refs OrderRefIssuer, guard SubmissionGuard, notifier Notifier, publisher OrderPublisher, opts Options) *OrderService {
	defaults := DefaultOptions()
	if opts.DeliveryCharge.IsZero() {
		opts.DeliveryCharge = defaults.DeliveryCharge
	}
	if opts.Location == nil {
		opts.Location = defaults.Location
	}
	if opts.RefPrefix == "" {
		opts.RefPrefix = defaults.RefPrefix
	}
	if opts.Now == nil {
		opts.Now = defaults.Now
	}
	return &OrderService{
		sheet:     sheet,
		refs:      refs,
		guard:     guard,
		notifier:  notifier,
		publisher: publisher,
		opts:      opts,
	}
}

// Submit records one order and returns its server-assigned reference.
// Notification and event publishing run after the row is written and never
// fail the submission.
func (s *OrderService) Submit(ctx context.Context, raw []byte) (string, error) {
	payload, err := domain.ParsePayload(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}
	if err := validatePayload(payload); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedRequest, err)
	}

	if existing := s.previousSubmission(ctx, payload.SubmissionID); existing != "" {
		slog.InfoContext(ctx, "duplicate submission, returning original reference",
			"submission_id", payload.SubmissionID, "order_ref", existing)
		return existing, nil
	}

	receivedAt := s.opts.Now().In(s.opts.Location)
	record := s.buildRecord(payload, receivedAt)
	if err := s.appendOrder(ctx, &record, receivedAt); err != nil {
		slog.ErrorContext(ctx, "order append failed", "order_ref", record.OrderRef, "error", err)
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	slog.InfoContext(ctx, "order recorded",
		"order_ref", record.OrderRef, "client_ref", payload.OrderRef,
		"items", record.ItemCount, "grand_total", record.GrandTotal.String())

	if s.guard != nil && payload.SubmissionID != "" {
		if err := s.guard.Remember(ctx, payload.SubmissionID, record.OrderRef); err != nil {
			slog.WarnContext(ctx, "failed to remember submission", "submission_id", payload.SubmissionID, "error", err)
		}
	}

	s.notify(ctx, record, raw)
	s.publish(ctx, record)

	return record.OrderRef, nil
}

func (s *OrderService) List(ctx context.Context, limit int) ([]domain.OrderRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.sheet.ListOrders(ctx, limit)
}

func (s *OrderService) Get(ctx context.Context, orderRef string) (*domain.OrderRecord, error) {
	return s.sheet.GetOrder(ctx, orderRef)
}

func validatePayload(p domain.OrderPayload) error {
	if len(p.Items) == 0 {
		return errors.New("order has no items")
	}
	for i, item := range p.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("item %d has no name", i)
		}
		if item.Quantity < 1 {
			return fmt.Errorf("item %q has quantity %d", item.Name, item.Quantity)
		}
		if item.Price.IsNegative() {
			return fmt.Errorf("item %q has a negative price", item.Name)
		}
	}
	var missing []string
	if p.CustomerName == "" {
		missing = append(missing, "customerName")
	}
	if p.CustomerPhone == "" {
		missing = append(missing, "customerPhone")
	}
	if p.CustomerAddress == "" {
		missing = append(missing, "customerAddress")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s", strings.Join(missing, ", "))
	}
	return nil
}

func (s *OrderService) previousSubmission(ctx context.Context, submissionID string) string {
	if s.guard == nil || submissionID == "" {
		return ""
	}
	ref, err := s.guard.Lookup(ctx, submissionID)
	if err != nil {
		slog.WarnContext(ctx, "submission lookup failed", "submission_id", submissionID, "error", err)
		return ""
	}
	return ref
}

// appendOrder writes the record under a fresh reference. A reference the
// sheet already holds means the daily sequence was reset, so the next
// attempts use random references instead.
func (s *OrderService) appendOrder(ctx context.Context, record *domain.OrderRecord, receivedAt time.Time) error {
	record.OrderRef = s.issueRef(ctx, receivedAt)
	for attempt := 1; ; attempt++ {
		err := s.sheet.AppendOrder(ctx, record)
		if !errors.Is(err, domain.ErrDuplicateOrderRef) || attempt == maxRefAttempts {
			return err
		}
		taken := record.OrderRef
		record.OrderRef = s.randomRef(receivedAt)
		slog.WarnContext(ctx, "order reference already recorded, reissuing",
			"taken", taken, "order_ref", record.OrderRef, "attempt", attempt)
	}
}

func (s *OrderService) issueRef(ctx context.Context, day time.Time) string {
	ref, err := s.refs.NextOrderRef(ctx, day)
	if err == nil {
		return ref
	}
	fallback := s.randomRef(day)
	slog.WarnContext(ctx, "order sequence unavailable, using random reference", "order_ref", fallback, "error", err)
	return fallback
}

func (s *OrderService) randomRef(day time.Time) string {
	return fmt.Sprintf("%s-%s-%s", s.opts.RefPrefix, day.Format("060102"),
		strings.ToUpper(uuid.NewString()[:8]))
}

// buildRecord derives the sheet row. Totals come from the items; the
// client's figures are compared and otherwise ignored.
func (s *OrderService) buildRecord(p domain.OrderPayload, receivedAt time.Time) domain.OrderRecord {
	cartTotal := decimal.Zero
	for _, item := range p.Items {
		cartTotal = cartTotal.Add(item.Total())
	}
	delivery := s.opts.DeliveryCharge
	grandTotal := cartTotal.Add(delivery)

	if p.GrandTotal.Valid && !p.GrandTotal.Decimal.Equal(grandTotal) {
		slog.Warn("client grand total differs from computed total",
			"client_ref", p.OrderRef, "client", p.GrandTotal.Decimal.String(), "computed", grandTotal.String())
	}

	orderDay := receivedAt
	if ts, err := time.Parse(time.RFC3339Nano, p.Timestamp); err == nil {
		orderDay = ts.In(s.opts.Location)
	}

	return domain.OrderRecord{
		OrderDate:           orderDay.Format("2006-01-02"),
		ClientRef:           p.OrderRef,
		CustomerName:        p.CustomerName,
		CustomerPhone:       p.CustomerPhone,
		CustomerEmail:       p.CustomerEmail,
		CustomerAddress:     p.CustomerAddress,
		ItemsOrdered:        domain.ItemsSummary(p.Items),
		ItemCount:           p.ItemCount(),
		CartTotal:           cartTotal,
		DeliveryCharges:     delivery,
		GrandTotal:          grandTotal,
		SpecialInstructions: p.SpecialInstructions,
		Status:              normalizeStatus(p.Status),
		OrderTime:           receivedAt.Format("15:04:05"),
		ReceivedAt:          receivedAt,
		Items:               p.Items,
	}
}

func normalizeStatus(status string) string {
	if strings.EqualFold(strings.TrimSpace(status), domain.StatusTest) {
		return domain.StatusTest
	}
	return domain.StatusPending
}

func (s *OrderService) notify(ctx context.Context, record domain.OrderRecord, raw []byte) {
	if s.notifier == nil {
		return
	}
	err := s.notifier.NotifyOrder(ctx, record)
	if err == nil {
		return
	}
	err = fmt.Errorf("%w: %v", ErrNotification, err)
	slog.ErrorContext(ctx, "order notification failed", "order_ref", record.OrderRef, "error", err)

	entry := domain.ErrorLogEntry{
		Timestamp: s.opts.Now(),
		ErrorType: "Email Error",
		Message:   err.Error(),
		OrderData: string(raw),
		Recipient: s.notifier.Recipient(),
	}
	if logErr := s.sheet.AppendErrorLog(ctx, entry); logErr != nil {
		slog.ErrorContext(ctx, "failed to write error log", "order_ref", record.OrderRef, "error", logErr)
	}
}

func (s *OrderService) publish(ctx context.Context, record domain.OrderRecord) {
	if s.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		ID:         uuid.NewString(),
		Type:       domain.EventOrderPlaced,
		OrderRef:   record.OrderRef,
		OrderDate:  record.OrderDate,
		Items:      record.Items,
		ItemCount:  record.ItemCount,
		GrandTotal: record.GrandTotal,
		Status:     record.Status,
		Timestamp:  record.ReceivedAt,
	}
	if err := s.publisher.PublishOrder(ctx, event); err != nil {
		slog.WarnContext(ctx, "order event publish failed", "order_ref", record.OrderRef, "error", err)
	}
}
