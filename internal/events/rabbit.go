package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/kalyanram2201/KrishiSathi/internal/order"
)

func DialRabbit(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}
	return conn, nil
}

// RabbitPlacer submits orders by publishing an OrderPlaced event to the
// events exchange. It is the production implementation of order.Placer;
// local development uses order.SimulatedPlacer instead.
type RabbitPlacer struct {
	ch *amqp.Channel
}

func NewRabbitPlacer(conn *amqp.Connection) (*RabbitPlacer, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	if err := declareEventsExchange(ch); err != nil {
		return nil, fmt.Errorf("declare exchange %s: %w", EventsExchange, err)
	}
	return &RabbitPlacer{ch: ch}, nil
}

func (p *RabbitPlacer) Close() error {
	return p.ch.Close()
}

func (p *RabbitPlacer) PlaceOrder(ctx context.Context, o *order.Order) error {
	body, err := json.Marshal(NewOrderPlaced(o))
	if err != nil {
		return fmt.Errorf("marshal OrderPlaced: %w", err)
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		OrderPlacedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			CorrelationId: uuid.NewString(),
			MessageId:     o.ID,
			Timestamp:     o.PlacedAt,
			Body:          body,
		},
	)
}
