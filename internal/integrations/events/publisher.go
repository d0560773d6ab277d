package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

const headerEventType = "event-type"

// Publisher публикует события бронирований в Kafka.
// Ключ сообщения - ID бронирования, поэтому события одного бронирования
// попадают в одну партицию и сохраняют порядок.
type Publisher struct {
	writer MessageWriter
	log    Logger

	mu     sync.RWMutex
	closed bool
}

// NewPublisher создает издателя с асинхронным kafka.Writer.
// Ошибки доставки логируются в Completion и не влияют на вызывающего.
func NewPublisher(brokers []string, topic string, batchTimeout time.Duration, log Logger) *Publisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: batchTimeout,
		Async:        true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				log.Error("events: failed to deliver %d message(s) to topic=%s: %v", len(messages), topic, err)
			}
		},
	}

	return newPublisher(writer, log)
}

func newPublisher(writer MessageWriter, log Logger) *Publisher {
	return &Publisher{
		writer: writer,
		log:    log,
	}
}

// Publish сериализует событие и отправляет его в Kafka
func (p *Publisher) Publish(ctx context.Context, event Event) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPublisherClosed
	}

	msg, err := toMessage(event)
	if err != nil {
		return err
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: type=%s booking_id=%d: %v", ErrPublish, event.Type, event.BookingID, err)
	}

	return nil
}

// Close сбрасывает буфер и закрывает writer
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	return p.writer.Close()
}

func toMessage(event Event) (kafka.Message, error) {
	value, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("%w: %v", ErrEncode, err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.BookingID, 10)),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: headerEventType, Value: []byte(event.Type)},
		},
	}, nil
}

// NopPublisher используется, когда публикация событий выключена
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
