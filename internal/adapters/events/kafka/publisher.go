// Package kafka streams fulfilled demands to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/bnema/nextlevel-elevator/internal/domain"
	"github.com/bnema/nextlevel-elevator/internal/ports"
	"github.com/segmentio/kafka-go"
)

const (
	DefaultTopic        = "elevator.history"
	defaultWriteTimeout = 10 * time.Second
	publisherQueueSize  = 256
)

type Config struct {
	Enabled      bool
	Brokers      []string
	Topic        string
	WriteTimeout time.Duration
}

type kafkaMessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type kafkaWriteCloser interface {
	Close() error
}

// Event is the payload published for every history entry.
type Event struct {
	ElevatorID int64 `json:"elevator_id"`
	Level      int   `json:"level"`
	WeekDay    int   `json:"week_day"`
	Hour       int   `json:"hour"`
	Minute     int   `json:"minute"`
	Second     int   `json:"second"`
}

type publishRequest struct {
	key        []byte
	value      []byte
	elevatorID int64
	level      int
}

// Publisher delivers history entries asynchronously. Publish only enqueues;
// one goroutine drains the queue until Close.
type Publisher struct {
	cfg     Config
	log     *slog.Logger
	writer  kafkaMessageWriter
	closer  kafkaWriteCloser
	enabled bool

	queue     chan publishRequest
	mu        sync.RWMutex
	closed    bool
	wg        sync.WaitGroup
	closeOnce sync.Once
}

var _ ports.HistoryPublisher = (*Publisher)(nil)

var (
	errPublisherNilLogger = errors.New("publisher requires a logger")
	errPublisherNilWriter = errors.New("publisher requires a writer")
	errPublisherClosed    = errors.New("history publisher closed")
	errPublisherQueueFull = errors.New("history publisher queue is full")
)

func NewPublisher(cfg Config, log *slog.Logger) (*Publisher, error) {
	if log == nil {
		return nil, errPublisherNilLogger
	}
	if !cfg.Enabled {
		log.Info("history_publisher_disabled")
		return &Publisher{cfg: cfg, log: log}, nil
	}
	if strings.TrimSpace(cfg.Topic) == "" {
		return nil, errors.New("kafka topic must not be empty")
	}
	if len(cfg.Brokers) == 0 {
		return nil, errors.New("at least one kafka broker is required")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		RequiredAcks:           kafka.RequireOne,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}

	return newPublisherWithWriter(cfg, log, writer, writer)
}

func newPublisherWithWriter(cfg Config, log *slog.Logger, writer kafkaMessageWriter, closer kafkaWriteCloser) (*Publisher, error) {
	if log == nil {
		return nil, errPublisherNilLogger
	}
	if writer == nil {
		return nil, errPublisherNilWriter
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = defaultWriteTimeout
	}

	p := &Publisher{
		cfg:     cfg,
		log:     log.With(slog.String("component", "history_publisher")),
		writer:  writer,
		closer:  closer,
		enabled: true,
		queue:   make(chan publishRequest, publisherQueueSize),
	}

	p.wg.Add(1)
	go p.run()
	p.log.Info("history_publisher_started", slog.String("topic", cfg.Topic))

	return p, nil
}

// Publish queues entry for delivery. It never waits on the broker.
func (p *Publisher) Publish(ctx context.Context, entry domain.HistoryEntry) error {
	if !p.enabled {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(Event{
		ElevatorID: int64(entry.ElevatorID),
		Level:      entry.Level,
		WeekDay:    entry.WeekDay,
		Hour:       entry.Hour,
		Minute:     entry.Minute,
		Second:     entry.Second,
	})
	if err != nil {
		return fmt.Errorf("encode history event: %w", err)
	}

	req := publishRequest{
		key:        []byte(strconv.FormatInt(int64(entry.ElevatorID), 10)),
		value:      value,
		elevatorID: int64(entry.ElevatorID),
		level:      entry.Level,
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return errPublisherClosed
	}

	select {
	case p.queue <- req:
		return nil
	default:
		p.log.Warn("history_publish_dropped",
			slog.Int64("elevator_id", req.elevatorID),
			slog.Int("floor", req.level),
			slog.Int("queue_size", publisherQueueSize),
		)
		return errPublisherQueueFull
	}
}

// Close stops accepting entries, delivers what is queued and closes the writer.
func (p *Publisher) Close() error {
	if !p.enabled {
		return nil
	}

	var closeErr error
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		close(p.queue)
		p.mu.Unlock()

		p.wg.Wait()

		if p.closer != nil {
			if err := p.closer.Close(); err != nil {
				p.log.Error("history_publisher_close_err", slog.Any("err", err))
				closeErr = fmt.Errorf("close kafka writer: %w", err)
			}
		}
		p.log.Info("history_publisher_stopped")
	})

	return closeErr
}

func (p *Publisher) run() {
	defer p.wg.Done()

	for req := range p.queue {
		p.deliver(req)
	}
}

func (p *Publisher) deliver(req publishRequest) {
	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.WriteTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: req.key, Value: req.value}); err != nil {
		p.log.Error("history_publish_err",
			slog.Any("err", err),
			slog.Int64("elevator_id", req.elevatorID),
			slog.Int("floor", req.level),
		)
		return
	}

	p.log.Debug("history_publish_success",
		slog.Int64("elevator_id", req.elevatorID),
		slog.Int("floor", req.level),
	)
}
