// Package events publishes generation lifecycle events to NATS so that
// downstream consumers (indexers, notifiers) can react to completed
// README generations. Publishing is optional; a nil Publisher is a no-op.
package events

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"

	"git.home.luguber.info/inful/readmegen/internal/config"
	"git.home.luguber.info/inful/readmegen/internal/logfields"
)

// GenerationCompleted is emitted after each generation request finishes,
// whether the README came from the model or the fallback synthesizer.
type GenerationCompleted struct {
	RequestID       string    `json:"request_id"`
	RepoURL         string    `json:"repo_url"`
	RepoName        string    `json:"repo_name"`
	UsedFallback    bool      `json:"used_fallback"`
	ModelUsed       string    `json:"model_used"`
	PrimaryLanguage string    `json:"primary_language"`
	FilesAnalyzed   int       `json:"files_analyzed"`
	DurationMS      int64     `json:"duration_ms"`
	Timestamp       time.Time `json:"timestamp"`
}

// Publisher sends events to a NATS subject. The zero value and nil
// receivers are safe and drop events silently.
type Publisher struct {
	conn    *nats.Conn
	subject string
}

// NewPublisher connects to NATS per the events config. Returns nil (and no
// error) when events are disabled.
func NewPublisher(cfg config.EventsConfig) (*Publisher, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	conn, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	slog.Info("Event publisher connected", "url", cfg.NATSURL, "subject", cfg.Subject)
	return &Publisher{conn: conn, subject: cfg.Subject}, nil
}

// PublishGenerationCompleted publishes the event. Failures are logged and
// swallowed; event delivery never fails a generation request.
func (p *Publisher) PublishGenerationCompleted(event GenerationCompleted) {
	if p == nil || p.conn == nil {
		return
	}
	event.Timestamp = time.Now()
	data, err := json.Marshal(event)
	if err != nil {
		slog.Warn("Failed to marshal generation event", logfields.Error(err))
		return
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		slog.Warn("Failed to publish generation event",
			logfields.RepoURL(event.RepoURL),
			logfields.Error(err))
		return
	}
	slog.Debug("Published generation event",
		logfields.RepoURL(event.RepoURL),
		slog.Bool("used_fallback", event.UsedFallback))
}

// Close drains the NATS connection. Safe on nil.
func (p *Publisher) Close() {
	if p == nil || p.conn == nil {
		return
	}
	p.conn.Close()
}
