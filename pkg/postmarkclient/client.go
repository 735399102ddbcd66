// Package postmarkclient provides the main entry point for creating Postmark API clients
package postmarkclient

import (
	"fmt"

	"github.com/fivetwenty-io/postmark-client/internal/client"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// NewServerClient creates a client for the endpoints authenticated with a
// server token. An empty token fails before any request is made.
func NewServerClient(token string, opts ...postmark.Option) (postmark.ServerClient, error) {
	return NewServerClientWithConfig(token, postmark.NewConfig(opts...))
}

// NewServerClientWithConfig creates a server client from a prepared Config.
func NewServerClientWithConfig(token string, config *postmark.Config) (postmark.ServerClient, error) {
	serverClient, err := client.NewServerClient(token, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create server client: %w", err)
	}

	return serverClient, nil
}

// NewAccountClient creates a client for the endpoints authenticated with an
// account token. An empty token fails before any request is made.
func NewAccountClient(token string, opts ...postmark.Option) (postmark.AccountClient, error) {
	return NewAccountClientWithConfig(token, postmark.NewConfig(opts...))
}

// NewAccountClientWithConfig creates an account client from a prepared Config.
func NewAccountClientWithConfig(token string, config *postmark.Config) (postmark.AccountClient, error) {
	accountClient, err := client.NewAccountClient(token, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create account client: %w", err)
	}

	return accountClient, nil
}

// NewServerClientWithEvents creates a server client that publishes a
// postmark.SendEvent to subject on the NATS server at natsURL for every
// accepted message. An empty natsURL is rejected before any connection is
// attempted. The caller closes the returned publisher when done.
func NewServerClientWithEvents(token, natsURL, subject string, opts ...postmark.Option) (postmark.ServerClient, *postmark.EventPublisher, error) {
	config := postmark.NewConfig(opts...)

	if subject == "" {
		subject = postmark.DefaultEventSubject
	}

	events, err := postmark.ConnectEventPublisher(natsURL, subject, config.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create event publisher: %w", err)
	}

	if config.Interceptors == nil {
		config.Interceptors = postmark.NewInterceptorChain()
	}

	events.Install(config.Interceptors)

	serverClient, err := NewServerClientWithConfig(token, config)
	if err != nil {
		_ = events.Close()

		return nil, nil, err
	}

	return serverClient, events, nil
}
