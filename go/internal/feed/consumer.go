package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/dynasty-contracts/go/internal/events"
)

type ConsumerConfig struct {
	URL           string
	StreamName    string
	ConsumerName  string
	SubjectFilter string
	MaxDeliver    int
	AckWait       time.Duration
	MaxAckPending int
	// InactiveThreshold removes the consumer once no feed instance has pulled
	// from it for this long.
	InactiveThreshold time.Duration
	MaxReconnects     int
	ReconnectWait     time.Duration
}

func DefaultConsumerConfig() ConsumerConfig {
	return ConsumerConfig{
		URL:               nats.DefaultURL,
		StreamName:        "CONTRACT_EVENTS",
		ConsumerName:      "contract-feed",
		SubjectFilter:     "contract.events.>",
		MaxDeliver:        5,
		AckWait:           30 * time.Second,
		MaxAckPending:     100,
		InactiveThreshold: time.Hour,
		MaxReconnects:     -1,
		ReconnectWait:     2 * time.Second,
	}
}

// JetStreamConfig returns the JetStream consumer the feed pulls from. Only new
// events are delivered; clients fetch current state over the contract API.
func (c ConsumerConfig) JetStreamConfig() jetstream.ConsumerConfig {
	return jetstream.ConsumerConfig{
		Name:              c.ConsumerName,
		Durable:           c.ConsumerName,
		Description:       "Contract feed websocket consumer",
		FilterSubject:     c.SubjectFilter,
		DeliverPolicy:     jetstream.DeliverNewPolicy,
		AckPolicy:         jetstream.AckExplicitPolicy,
		MaxDeliver:        c.MaxDeliver,
		AckWait:           c.AckWait,
		MaxAckPending:     c.MaxAckPending,
		InactiveThreshold: c.InactiveThreshold,
		ReplayPolicy:      jetstream.ReplayInstantPolicy,
	}
}

// Broadcaster receives decoded events. ConnectionManager implements it.
type Broadcaster interface {
	BroadcastToLeague(leagueID uuid.UUID, event *events.Envelope)
}

// message is the part of jetstream.Msg the consumer uses
type message interface {
	Data() []byte
	Subject() string
	Ack() error
	Term() error
}

var errMalformed = errors.New("malformed event")

var knownEventTypes = map[string]bool{
	events.EventTypeSeasonTurnoverCompleted: true,
	events.EventTypeContractSigned:          true,
	events.EventTypeContractCut:             true,
	events.EventTypeContractExtended:        true,
	events.EventTypeFranchiseTagApplied:     true,
}

// EventConsumer pulls contract events from JetStream and hands them to a
// Broadcaster.
type EventConsumer struct {
	broadcaster Broadcaster
	nc          *nats.Conn
	consumer    jetstream.Consumer
	config      ConsumerConfig
}

func NewEventConsumer(ctx context.Context, broadcaster Broadcaster, config ConsumerConfig) (*EventConsumer, error) {
	nc, err := nats.Connect(config.URL,
		nats.MaxReconnects(config.MaxReconnects),
		nats.ReconnectWait(config.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	stream, err := js.Stream(ctx, config.StreamName)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("get stream %s: %w", config.StreamName, err)
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, config.JetStreamConfig())
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create consumer: %w", err)
	}
	log.Info().
		Str("consumer", config.ConsumerName).
		Str("stream", config.StreamName).
		Msg("JetStream consumer ready")

	return &EventConsumer{
		broadcaster: broadcaster,
		nc:          nc,
		consumer:    consumer,
		config:      config,
	}, nil
}

// Start consumes until ctx is cancelled.
func (ec *EventConsumer) Start(ctx context.Context) error {
	log.Info().
		Str("consumer", ec.config.ConsumerName).
		Str("stream", ec.config.StreamName).
		Msg("starting JetStream event consumer")

	consumeCtx, err := ec.consumer.Consume(func(msg jetstream.Msg) {
		ec.handle(msg)
	})
	if err != nil {
		return fmt.Errorf("start consumer: %w", err)
	}
	defer consumeCtx.Stop()

	<-ctx.Done()
	log.Info().Msg("event consumer shutting down")
	return nil
}

// handle acks delivered events and terminates ones that can never be decoded.
func (ec *EventConsumer) handle(msg message) {
	if err := ec.processMessage(msg); err != nil {
		log.Error().Err(err).Str("subject", msg.Subject()).Msg("dropping event")
		if termErr := msg.Term(); termErr != nil {
			log.Error().Err(termErr).Msg("failed to terminate message")
		}
		return
	}
	if err := msg.Ack(); err != nil {
		log.Error().Err(err).Msg("failed to ack message")
	}
}

func (ec *EventConsumer) processMessage(msg message) error {
	envelope, leagueID, err := DecodeEnvelope(msg.Data())
	if err != nil {
		return err
	}

	ec.broadcaster.BroadcastToLeague(leagueID, envelope)

	log.Debug().
		Str("event_id", envelope.EventID).
		Str("league_id", envelope.LeagueID).
		Str("event_type", envelope.EventType).
		Msg("event forwarded to websocket clients")
	return nil
}

// DecodeEnvelope parses a published event and checks it is one the feed
// forwards.
func DecodeEnvelope(data []byte) (*events.Envelope, uuid.UUID, error) {
	var envelope events.Envelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: %v", errMalformed, err)
	}
	if !knownEventTypes[envelope.EventType] {
		return nil, uuid.Nil, fmt.Errorf("%w: unknown event type %q", errMalformed, envelope.EventType)
	}
	leagueID, err := uuid.Parse(envelope.LeagueID)
	if err != nil {
		return nil, uuid.Nil, fmt.Errorf("%w: league id: %v", errMalformed, err)
	}
	return &envelope, leagueID, nil
}

func (ec *EventConsumer) Stop() {
	log.Info().Msg("stopping event consumer")
	if ec.nc != nil {
		ec.nc.Close()
	}
}

// Connected reports whether the NATS connection is up.
func (ec *EventConsumer) Connected() bool {
	return ec.nc != nil && ec.nc.IsConnected()
}
