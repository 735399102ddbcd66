// Package postmarkclient provides the primary entry point for constructing
// Postmark API clients that implement the postmark.ServerClient and
// postmark.AccountClient interfaces.
//
// Postmark authenticates with static tokens. A server token reaches the
// sending, bounce, template, message, statistics, trigger, webhook, stream and
// suppression endpoints of one server. An account token reaches servers,
// domains, sender signatures, cross-server template operations and data
// removals.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/postmark-client/pkg/postmark"
//	  "github.com/fivetwenty-io/postmark-client/pkg/postmarkclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := postmarkclient.NewServerClient("server-token")
//	  if err != nil { log.Fatal(err) }
//
//	  resp, err := cli.Email().Send(ctx, &postmark.Message{
//	    From:     "sender@example.com",
//	    To:       "receiver@example.com",
//	    Subject:  "Hello",
//	    TextBody: "Hello from Postmark",
//	  })
//	  if err != nil { log.Fatal(err) }
//	  log.Println(resp.MessageID)
//
//	  // The same call without blocking the caller:
//	  future := postmark.Async(ctx, func(ctx context.Context) (*postmark.Bounces, error) {
//	    return cli.Bounces().List(ctx, nil)
//	  }, func(err error, bounces *postmark.Bounces) {
//	    // err is non-nil and bounces is nil on failure
//	  })
//	  _, _ = future.Await(ctx)
//	}
//
// # Options
//
// Options are live: cli.Options() returns the record the client reads on
// every request, so changing RequestHost, UseTLS or Timeout affects the next
// call.
//
// # Send events
//
// NewServerClientWithEvents connects to NATS and publishes one event per
// accepted message to the given subject.
package postmarkclient
