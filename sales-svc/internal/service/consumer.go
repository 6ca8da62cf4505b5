package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"sahasra-foods/sales-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type Consumer struct {
	Reader   MessageReader
	Store    StoreInterface
	Location *time.Location
}

func NewConsumer(reader MessageReader, store StoreInterface, loc *time.Location) *Consumer {
	if loc == nil {
		loc = time.UTC
	}
	return &Consumer{
		Reader:   reader,
		Store:    store,
		Location: loc,
	}
}

// Start reads order events until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	slog.Info("sales consumer started")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				slog.Info("sales consumer stopped")
				return
			}
			slog.Error("error reading message", "error", err)
			time.Sleep(time.Second)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			slog.Warn("error unmarshaling order event", "offset", message.Offset, "error", err)
			continue
		}

		c.ProcessOrder(ctx, event)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderPlaced {
		return
	}
	if event.Status == domain.StatusTest {
		slog.Debug("skipping test order", "order_ref", event.OrderRef)
		return
	}

	date := c.orderDay(event)
	recorded, err := c.Store.RecordOrder(ctx, date, event)
	if err != nil {
		slog.Error("error recording order sales", "order_ref", event.OrderRef, "error", err)
		return
	}
	if !recorded {
		slog.Info("order already counted", "order_ref", event.OrderRef)
		return
	}
	slog.Info("order sales recorded", "order_ref", event.OrderRef, "date", date, "items", event.ItemCount)
}

// orderDay is the order sheet's Order Date, so the Redis boards and the
// Postgres fallback agree on which day an order belongs to. Events without
// one are bucketed by receipt time.
func (c *Consumer) orderDay(event domain.OrderEvent) string {
	if _, err := time.Parse("2006-01-02", event.OrderDate); err == nil {
		return event.OrderDate
	}
	return event.Timestamp.In(c.Location).Format("2006-01-02")
}
