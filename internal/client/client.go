package client

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/fivetwenty-io/postmark-client/internal/http"
	"github.com/fivetwenty-io/postmark-client/pkg/postmark"
)

// base holds the transport shared by the resource clients of one token.
type base struct {
	httpClient *http.Client
}

// Options implements postmark.BaseClient.Options.
func (b *base) Options() *postmark.Options {
	return b.httpClient.Options()
}

// ClientVersion implements postmark.BaseClient.ClientVersion.
func (b *base) ClientVersion() string {
	return b.httpClient.UserAgent()
}

// SetClientVersion implements postmark.BaseClient.SetClientVersion.
func (b *base) SetClientVersion(version string) {
	b.httpClient.SetUserAgent(version)
}

// ServerClient implements postmark.ServerClient.
type ServerClient struct {
	base

	email               *EmailClient
	bounces             *BouncesClient
	templates           *TemplatesClient
	server              *ServerInfoClient
	messages            *MessagesClient
	stats               *StatsClient
	inboundRuleTriggers *InboundRuleTriggersClient
	webhooks            *WebhooksClient
	messageStreams      *MessageStreamsClient
	suppressions        *SuppressionsClient
}

// NewServerClient creates a client authenticated with a server token.
func NewServerClient(token string, config *postmark.Config) (*ServerClient, error) {
	httpClient, err := newHTTPClient(postmark.ServerTokenHeader, token, config)
	if err != nil {
		return nil, err
	}

	return &ServerClient{
		base:                base{httpClient: httpClient},
		email:               NewEmailClient(httpClient),
		bounces:             NewBouncesClient(httpClient),
		templates:           NewTemplatesClient(httpClient),
		server:              NewServerInfoClient(httpClient),
		messages:            NewMessagesClient(httpClient),
		stats:               NewStatsClient(httpClient),
		inboundRuleTriggers: NewInboundRuleTriggersClient(httpClient),
		webhooks:            NewWebhooksClient(httpClient),
		messageStreams:      NewMessageStreamsClient(httpClient),
		suppressions:        NewSuppressionsClient(httpClient),
	}, nil
}

// Email implements postmark.ServerClient.Email.
func (c *ServerClient) Email() postmark.EmailClient {
	return c.email
}

// Bounces implements postmark.ServerClient.Bounces.
func (c *ServerClient) Bounces() postmark.BouncesClient {
	return c.bounces
}

// Templates implements postmark.ServerClient.Templates.
func (c *ServerClient) Templates() postmark.TemplatesClient {
	return c.templates
}

// Server implements postmark.ServerClient.Server.
func (c *ServerClient) Server() postmark.ServerInfoClient {
	return c.server
}

// Messages implements postmark.ServerClient.Messages.
func (c *ServerClient) Messages() postmark.MessagesClient {
	return c.messages
}

// Stats implements postmark.ServerClient.Stats.
func (c *ServerClient) Stats() postmark.StatsClient {
	return c.stats
}

// InboundRuleTriggers implements postmark.ServerClient.InboundRuleTriggers.
func (c *ServerClient) InboundRuleTriggers() postmark.InboundRuleTriggersClient {
	return c.inboundRuleTriggers
}

// Webhooks implements postmark.ServerClient.Webhooks.
func (c *ServerClient) Webhooks() postmark.WebhooksClient {
	return c.webhooks
}

// MessageStreams implements postmark.ServerClient.MessageStreams.
func (c *ServerClient) MessageStreams() postmark.MessageStreamsClient {
	return c.messageStreams
}

// Suppressions implements postmark.ServerClient.Suppressions.
func (c *ServerClient) Suppressions() postmark.SuppressionsClient {
	return c.suppressions
}

// AccountClient implements postmark.AccountClient.
type AccountClient struct {
	base

	servers          *ServersClient
	domains          *DomainsClient
	senderSignatures *SenderSignaturesClient
	templates        *TemplatePushClient
	dataRemovals     *DataRemovalsClient
}

// NewAccountClient creates a client authenticated with an account token.
func NewAccountClient(token string, config *postmark.Config) (*AccountClient, error) {
	httpClient, err := newHTTPClient(postmark.AccountTokenHeader, token, config)
	if err != nil {
		return nil, err
	}

	return &AccountClient{
		base:             base{httpClient: httpClient},
		servers:          NewServersClient(httpClient),
		domains:          NewDomainsClient(httpClient),
		senderSignatures: NewSenderSignaturesClient(httpClient),
		templates:        NewTemplatePushClient(httpClient),
		dataRemovals:     NewDataRemovalsClient(httpClient),
	}, nil
}

// Servers implements postmark.AccountClient.Servers.
func (c *AccountClient) Servers() postmark.ServersClient {
	return c.servers
}

// Domains implements postmark.AccountClient.Domains.
func (c *AccountClient) Domains() postmark.DomainsClient {
	return c.domains
}

// SenderSignatures implements postmark.AccountClient.SenderSignatures.
func (c *AccountClient) SenderSignatures() postmark.SenderSignaturesClient {
	return c.senderSignatures
}

// Templates implements postmark.AccountClient.Templates.
func (c *AccountClient) Templates() postmark.AccountTemplatesClient {
	return c.templates
}

// DataRemovals implements postmark.AccountClient.DataRemovals.
func (c *AccountClient) DataRemovals() postmark.DataRemovalsClient {
	return c.dataRemovals
}

// newHTTPClient validates the token and builds the transport from config.
func newHTTPClient(tokenHeader, token string, config *postmark.Config) (*http.Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, postmark.ErrTokenRequired
	}

	if config == nil {
		config = postmark.NewConfig()
	}

	if config.Options == nil {
		config.Options = postmark.DefaultOptions()
	}

	if config.Options.RequestHost == "" {
		return nil, postmark.ErrRequestHostMissing
	}

	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.ClientVersion != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.ClientVersion))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return http.NewClient(tokenHeader, token, config.Options, httpOpts...), nil
}

// pageable is implemented by every filter embedding postmark.Pagination.
type pageable interface {
	Paging() *postmark.Pagination
}

// pagedQuery encodes a copy of filter with count and offset defaulted. The
// caller's filter is not modified.
func pagedQuery[F any, PF interface {
	*F
	pageable
}](filter *F) url.Values {
	var filterCopy F
	if filter != nil {
		filterCopy = *filter
	}

	page := PF(&filterCopy).Paging()
	*page = page.WithDefaults()

	return postmark.EncodeQuery(&filterCopy)
}

// decodeJSON unmarshals a response body into T. A body that does not decode
// is reported as a transport error so callers see the same *postmark.Error
// shape as for failed requests.
func decodeJSON[T any](resp *http.Response, what string) (*T, error) {
	var out T

	err := json.Unmarshal(resp.Body, &out)
	if err != nil {
		return nil, postmark.NewTransportError(fmt.Errorf("parsing %s: %w", what, err))
	}

	return &out, nil
}

// idPath joins a collection path and a numeric identifier.
func idPath(collection string, id int64) string {
	return collection + "/" + strconv.FormatInt(id, 10)
}

// namePath joins a collection path and an escaped string identifier.
func namePath(collection, name string) string {
	return collection + "/" + url.PathEscape(name)
}

// loggerAdapter adapts postmark.Logger to http.Logger.
type loggerAdapter struct {
	logger postmark.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

var (
	_ postmark.ServerClient  = (*ServerClient)(nil)
	_ postmark.AccountClient = (*AccountClient)(nil)
)
