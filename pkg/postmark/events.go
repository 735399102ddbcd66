package postmark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// DefaultEventSubject is the NATS subject send events go to when none is set.
const DefaultEventSubject = "postmark.email.sent"

const eventConnectTimeout = 5 * time.Second

// Publisher is the subset of *nats.Conn used to emit events.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// SendEvent is published once per message accepted by a send endpoint.
type SendEvent struct {
	Path        string    `json:"path"         yaml:"path"`
	MessageID   string    `json:"message_id"   yaml:"message_id"`
	To          string    `json:"to"           yaml:"to"`
	SubmittedAt time.Time `json:"submitted_at" yaml:"submitted_at"`
	ErrorCode   int       `json:"error_code"   yaml:"error_code"`
	Message     string    `json:"message"      yaml:"message"`
	PublishedAt time.Time `json:"published_at" yaml:"published_at"`
}

// EventPublisher turns successful send responses into SendEvents on a NATS
// subject. Publish failures are logged and never fail the API call.
type EventPublisher struct {
	publisher Publisher
	subject   string
	logger    Logger
	conn      *nats.Conn
}

// NewEventPublisher wraps an existing publisher. logger may be nil.
func NewEventPublisher(publisher Publisher, subject string, logger Logger) (*EventPublisher, error) {
	if subject == "" {
		return nil, ErrSubjectRequired
	}

	return &EventPublisher{
		publisher: publisher,
		subject:   subject,
		logger:    logger,
	}, nil
}

// ConnectEventPublisher dials the NATS server at url and returns a publisher
// owning the connection. Close releases it.
func ConnectEventPublisher(url, subject string, logger Logger, opts ...nats.Option) (*EventPublisher, error) {
	if url == "" {
		return nil, ErrNATSURLRequired
	}

	if subject == "" {
		return nil, ErrSubjectRequired
	}

	opts = append([]nats.Option{
		nats.Name("postmark-client"),
		nats.Timeout(eventConnectTimeout),
	}, opts...)

	conn, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS: %w", err)
	}

	return &EventPublisher{
		publisher: conn,
		subject:   subject,
		logger:    logger,
		conn:      conn,
	}, nil
}

// Subject returns the subject events are published to.
func (p *EventPublisher) Subject() string {
	return p.subject
}

// Install adds the publisher to chain as a response interceptor.
func (p *EventPublisher) Install(chain *InterceptorChain) {
	chain.AddResponseInterceptor(p.Interceptor())
}

// Interceptor returns the response interceptor that publishes events.
func (p *EventPublisher) Interceptor() ResponseInterceptor {
	return func(ctx context.Context, req *Request, resp *Response) error {
		if req.Method != http.MethodPost || !strings.HasPrefix(req.Path, "/email") {
			return nil
		}

		if resp.Error != nil || resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil
		}

		results, err := decodeSendResponses(resp.Body)
		if err != nil {
			p.warn("Failed to decode send response for event", map[string]interface{}{
				"path":  req.Path,
				"error": err.Error(),
			})

			return nil
		}

		for _, result := range results {
			p.publish(req.Path, result)
		}

		return nil
	}
}

func (p *EventPublisher) publish(path string, result SendResponse) {
	event := SendEvent{
		Path:        path,
		MessageID:   result.MessageID,
		To:          result.To,
		SubmittedAt: result.SubmittedAt,
		ErrorCode:   result.ErrorCode,
		Message:     result.Message,
		PublishedAt: time.Now().UTC(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		p.warn("Failed to encode send event", map[string]interface{}{"error": err.Error()})

		return
	}

	err = p.publisher.Publish(p.subject, data)
	if err != nil {
		p.warn("Failed to publish send event", map[string]interface{}{
			"subject":    p.subject,
			"message_id": result.MessageID,
			"error":      err.Error(),
		})

		return
	}

	if p.logger != nil {
		p.logger.Debug("Published send event", map[string]interface{}{
			"subject":    p.subject,
			"message_id": result.MessageID,
		})
	}
}

func (p *EventPublisher) warn(msg string, fields map[string]interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, fields)
	}
}

// Close drains and closes the connection opened by ConnectEventPublisher.
// It is a no-op for publishers built with NewEventPublisher.
func (p *EventPublisher) Close() error {
	if p.conn == nil {
		return nil
	}

	err := p.conn.Drain()
	if err != nil {
		p.conn.Close()

		return fmt.Errorf("draining NATS connection: %w", err)
	}

	return nil
}

// decodeSendResponses accepts both the single-message and batch shapes.
func decodeSendResponses(body []byte) ([]SendResponse, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var results []SendResponse

		err := json.Unmarshal(trimmed, &results)
		if err != nil {
			return nil, fmt.Errorf("decoding batch response: %w", err)
		}

		return results, nil
	}

	var result SendResponse

	err := json.Unmarshal(trimmed, &result)
	if err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return []SendResponse{result}, nil
}
