package outbox

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// NotifyChannel is the channel the contract_outbox insert trigger notifies.
const NotifyChannel = "contract_outbox"

type ListenerConfig struct {
	DatabaseURL      string        // Postgres DSN for LISTEN/NOTIFY
	NotifyChannel    string        // Channel name to LISTEN on
	FallbackInterval time.Duration // How often to poll for missed events
	MaxRetries       int
	RetryDelay       time.Duration
	PingInterval     time.Duration
	BatchSize        int32 // Max events to fetch per batch
}

func DefaultListenerConfig() ListenerConfig {
	return ListenerConfig{
		NotifyChannel:    NotifyChannel,
		FallbackInterval: 30 * time.Second,
		MaxRetries:       5,
		RetryDelay:       200 * time.Millisecond,
		PingInterval:     90 * time.Second,
		BatchSize:        100,
	}
}

// notificationSource is the part of *pq.Listener the relay uses.
type notificationSource interface {
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// Listener relays outbox rows to a Publisher. It reacts to NOTIFY on insert
// and polls for anything missed while it was disconnected.
type Listener struct {
	queries   Querier
	source    notificationSource
	publisher Publisher
	cfg       ListenerConfig

	published atomic.Uint64
	lastEvent atomic.Int64
}

func NewListener(queries Querier, publisher Publisher, cfg ListenerConfig) (*Listener, error) {
	l := pq.NewListener(
		cfg.DatabaseURL,
		10*time.Second,
		time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				log.Error().Err(err).Msg("listener event")
			}
		},
	)
	if err := l.Listen(cfg.NotifyChannel); err != nil {
		return nil, fmt.Errorf("failed to listen to channel: %w", err)
	}

	log.Info().
		Str("channel", cfg.NotifyChannel).
		Msg("listening for notifications")

	return newListener(queries, publisher, cfg, l), nil
}

func newListener(queries Querier, publisher Publisher, cfg ListenerConfig, source notificationSource) *Listener {
	return &Listener{
		queries:   queries,
		source:    source,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (l *Listener) Start(ctx context.Context) error {
	log.Info().
		Str("channel", l.cfg.NotifyChannel).
		Dur("ping_interval", l.cfg.PingInterval).
		Dur("fallback_interval", l.cfg.FallbackInterval).
		Msg("listener started")

	// drain anything written while the relay was down
	if err := l.processUnsent(ctx); err != nil {
		log.Error().Err(err).Msg("failed to process unsent events")
	}

	pingTicker := time.NewTicker(l.cfg.PingInterval)
	fallbackTicker := time.NewTicker(l.cfg.FallbackInterval)
	defer pingTicker.Stop()
	defer fallbackTicker.Stop()

	notify := l.source.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("listener shutting down")
			return l.Stop()
		case note := <-notify:
			if note == nil {
				// connection was re-established; NOTIFYs may have been lost
				if err := l.processUnsent(ctx); err != nil {
					log.Error().Err(err).Msg("failed to process unsent events")
				}
				continue
			}
			if err := l.handleNotification(ctx, note.Extra); err != nil {
				log.Error().Err(err).Msg("failed to handle notification")
			}
		case <-fallbackTicker.C:
			if err := l.processUnsent(ctx); err != nil {
				log.Error().Err(err).Msg("failed to process unsent events")
			}
		case <-pingTicker.C:
			if err := l.source.Ping(); err != nil {
				log.Error().Err(err).Msg("failed to ping listener")
			}
		}
	}
}

func (l *Listener) Stop() error {
	return l.source.Close()
}

// Stats reports how many events were published and when the last one went
// out.
func (l *Listener) Stats() (uint64, time.Time) {
	last := l.lastEvent.Load()
	if last == 0 {
		return l.published.Load(), time.Time{}
	}
	return l.published.Load(), time.Unix(0, last)
}

// handleNotification publishes the outbox row whose ID is the NOTIFY
// payload. A row already sent by the fallback poll is skipped.
func (l *Listener) handleNotification(ctx context.Context, extra string) error {
	id, err := uuid.Parse(extra)
	if err != nil {
		return fmt.Errorf("invalid event ID in notification: %w", err)
	}

	row, err := l.queries.FetchOutboxByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug().Str("event_id", id.String()).Msg("outbox event already sent")
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to fetch outbox event: %w", err)
	}

	return l.relay(ctx, Event{
		ID:        row.ID,
		LeagueID:  row.LeagueID,
		EventType: row.EventType,
		Payload:   row.Payload,
		CreatedAt: row.CreatedAt,
	})
}

// processUnsent publishes up to BatchSize unsent events, oldest first.
func (l *Listener) processUnsent(ctx context.Context) error {
	unsent, err := l.queries.FetchUnsentOutbox(ctx, l.cfg.BatchSize)
	if err != nil {
		return fmt.Errorf("failed to fetch unsent outbox events: %w", err)
	}

	for _, row := range unsent {
		err := l.relay(ctx, Event{
			ID:        row.ID,
			LeagueID:  row.LeagueID,
			EventType: row.EventType,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		})
		if err != nil {
			log.Error().Err(err).Str("event_id", row.ID.String()).Msg("failed to relay event")
			continue
		}
	}
	return nil
}

// relay publishes an event and marks it sent. An event that was published
// but not marked goes out again on the next poll; the publisher's message ID
// lets the stream drop the duplicate.
func (l *Listener) relay(ctx context.Context, event Event) error {
	if err := l.publishWithRetry(ctx, event); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	if err := l.queries.MarkOutboxSent(ctx, event.ID); err != nil {
		return fmt.Errorf("failed to mark outbox event %s as sent: %w", event.ID, err)
	}

	l.published.Add(1)
	l.lastEvent.Store(time.Now().UnixNano())
	log.Info().
		Str("event_id", event.ID.String()).
		Str("event_type", event.EventType).
		Str("league_id", event.LeagueID.String()).
		Msg("published and marked event as sent")
	return nil
}

// publishWithRetry attempts to publish an outbox event with a given retry delay and max retries.
func (l *Listener) publishWithRetry(ctx context.Context, event Event) error {
	var lastErr error

	for attempt := 0; attempt <= l.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := l.cfg.RetryDelay * time.Duration(attempt)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
		}

		if err := l.publisher.Publish(ctx, event); err != nil {
			lastErr = err
			log.Error().
				Err(err).
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("failed to publish, retrying")
			continue
		}

		if attempt > 0 {
			log.Info().
				Int("attempt", attempt+1).
				Str("event_id", event.ID.String()).
				Msg("publish succeeded after retry")
		}
		return nil
	}

	return fmt.Errorf("publish failed after %d attempts: %w", l.cfg.MaxRetries+1, lastErr)
}
