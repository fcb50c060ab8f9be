// Package listener provides a Postgres LISTEN/NOTIFY consumer that reloads
// the served dataset after the ingest CLI seeds new season records. It holds
// a dedicated pgx connection (not from the pool) listening on the
// `season_records_changed` channel.
package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Channel is the notification channel seeders publish on.
const Channel = "season_records_changed"

const (
	reconnectBackoff = 5 * time.Second
	maxReconnect     = 30 * time.Second
)

// ChangeEvent is the JSON payload of pg_notify('season_records_changed', ...).
type ChangeEvent struct {
	Seasons   int   `json:"seasons"`
	Records   int   `json:"records"`
	Timestamp int64 `json:"ts"`
}

// ReloadFunc is called once per received event.
type ReloadFunc func(ctx context.Context) error

// Execer is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Notify publishes a change event. Listeners receive it once the
// surrounding transaction, if any, commits.
func Notify(ctx context.Context, ex Execer, event ChangeEvent) error {
	if event.Timestamp == 0 {
		event.Timestamp = time.Now().Unix()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode change event: %w", err)
	}
	if _, err := ex.Exec(ctx, "SELECT pg_notify($1, $2)", Channel, string(payload)); err != nil {
		return fmt.Errorf("notify %s: %w", Channel, err)
	}
	return nil
}

// ParseEvent decodes a notification payload.
func ParseEvent(payload string) (ChangeEvent, error) {
	var event ChangeEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return ChangeEvent{}, fmt.Errorf("decode change event: %w", err)
	}
	return event, nil
}

// Start opens a dedicated connection and listens on Channel. It reconnects
// automatically on connection loss. Blocks until ctx is cancelled. Intended
// to be called with `go`.
func Start(ctx context.Context, dbURL string, reload ReloadFunc, logger *slog.Logger) {
	backoff := reconnectBackoff

	for {
		err := listenLoop(ctx, dbURL, reload, logger)
		if ctx.Err() != nil {
			logger.Info("Dataset listener stopped (context cancelled)")
			return
		}

		logger.Error("Dataset listener disconnected, reconnecting...",
			"error", err, "backoff", backoff)

		select {
		case <-time.After(backoff):
			backoff = min(backoff*2, maxReconnect)
		case <-ctx.Done():
			return
		}
	}
}

// listenLoop runs a single listen session. Returns when the connection drops
// or the context is cancelled.
func listenLoop(ctx context.Context, dbURL string, reload ReloadFunc, logger *slog.Logger) error {
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+Channel); err != nil {
		return fmt.Errorf("LISTEN %s: %w", Channel, err)
	}
	logger.Info("Dataset listener connected", "channel", Channel)

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return fmt.Errorf("wait for notification: %w", err)
		}
		handle(ctx, notification.Payload, reload, logger)
	}
}

// handle runs one reload per event, synchronously.
func handle(ctx context.Context, payload string, reload ReloadFunc, logger *slog.Logger) {
	event, err := ParseEvent(payload)
	if err != nil {
		logger.Warn("Failed to parse change event", "payload", payload, "error", err)
		return
	}

	logger.Info("Season records changed",
		"seasons", event.Seasons,
		"records", event.Records,
		"at", time.Unix(event.Timestamp, 0).UTC().Format(time.RFC3339))

	if err := reload(ctx); err != nil {
		logger.Warn("Reload after change event failed", "error", err)
	}
}
