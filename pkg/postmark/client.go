package postmark

import "context"

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// BaseClient is implemented by every client. Options returns the live record:
// changes to it are used by the next request.
type BaseClient interface {
	Options() *Options
	ClientVersion() string
	SetClientVersion(version string)
}

// ServerClient exposes the endpoints authenticated with a server token.
type ServerClient interface {
	BaseClient

	Email() EmailClient
	Bounces() BouncesClient
	Templates() TemplatesClient
	Server() ServerInfoClient
	Messages() MessagesClient
	Stats() StatsClient
	InboundRuleTriggers() InboundRuleTriggersClient
	Webhooks() WebhooksClient
	MessageStreams() MessageStreamsClient
	Suppressions() SuppressionsClient
}

// AccountClient exposes the endpoints authenticated with an account token.
type AccountClient interface {
	BaseClient

	Servers() ServersClient
	Domains() DomainsClient
	SenderSignatures() SenderSignaturesClient
	Templates() AccountTemplatesClient
	DataRemovals() DataRemovalsClient
}

// EmailClient sends mail.
type EmailClient interface {
	Send(ctx context.Context, message *Message) (*SendResponse, error)
	SendBatch(ctx context.Context, messages []Message) ([]SendResponse, error)
	SendWithTemplate(ctx context.Context, message *TemplatedMessage) (*SendResponse, error)
	SendBatchWithTemplates(ctx context.Context, messages []TemplatedMessage) ([]SendResponse, error)
}

// BouncesClient defines operations for bounces.
type BouncesClient interface {
	List(ctx context.Context, filter *BounceFilter) (*Bounces, error)
	Get(ctx context.Context, id int64) (*Bounce, error)
	Dump(ctx context.Context, id int64) (*BounceDump, error)
	Activate(ctx context.Context, id int64) (*BounceActivation, error)
	DeliveryStatistics(ctx context.Context) (*DeliveryStatistics, error)
}

// TemplatesClient defines operations for the templates of a server. Templates
// are addressed by numeric ID or alias.
type TemplatesClient interface {
	List(ctx context.Context, filter *TemplateFilter) (*Templates, error)
	Get(ctx context.Context, idOrAlias string) (*Template, error)
	Create(ctx context.Context, request *TemplateRequest) (*TemplateReference, error)
	Edit(ctx context.Context, idOrAlias string, request *TemplateRequest) (*TemplateReference, error)
	Delete(ctx context.Context, idOrAlias string) (*DefaultResponse, error)
	Validate(ctx context.Context, request *TemplateValidationRequest) (*TemplateValidation, error)
}

// ServerInfoClient reads and edits the server the token belongs to.
type ServerInfoClient interface {
	Get(ctx context.Context) (*Server, error)
	Edit(ctx context.Context, request *ServerRequest) (*Server, error)
}

// MessagesClient defines operations for sent and received messages.
type MessagesClient interface {
	ListOutbound(ctx context.Context, filter *OutboundMessageFilter) (*OutboundMessages, error)
	GetOutbound(ctx context.Context, messageID string) (*OutboundMessageDetails, error)
	OutboundDump(ctx context.Context, messageID string) (*MessageDump, error)
	ListInbound(ctx context.Context, filter *InboundMessageFilter) (*InboundMessages, error)
	GetInbound(ctx context.Context, messageID string) (*InboundMessageDetails, error)
	BypassInbound(ctx context.Context, messageID string) (*DefaultResponse, error)
	RetryInbound(ctx context.Context, messageID string) (*DefaultResponse, error)
	ListOpens(ctx context.Context, filter *TrackingFilter) (*Opens, error)
	OpensForMessage(ctx context.Context, messageID string, filter *Pagination) (*Opens, error)
	ListClicks(ctx context.Context, filter *TrackingFilter) (*Clicks, error)
	ClicksForMessage(ctx context.Context, messageID string, filter *Pagination) (*Clicks, error)
}

// StatsClient reads outbound statistics.
type StatsClient interface {
	OutboundOverview(ctx context.Context, filter *StatisticsFilter) (*OutboundOverview, error)
	SentCounts(ctx context.Context, filter *StatisticsFilter) (*SentCounts, error)
	BounceCounts(ctx context.Context, filter *StatisticsFilter) (*BounceCounts, error)
	SpamComplaints(ctx context.Context, filter *StatisticsFilter) (*SpamComplaints, error)
	TrackedEmailCounts(ctx context.Context, filter *StatisticsFilter) (*TrackedEmailCounts, error)
	OpenCounts(ctx context.Context, filter *StatisticsFilter) (*OpenCounts, error)
	OpenPlatformUsage(ctx context.Context, filter *StatisticsFilter) (*PlatformUsage, error)
	OpenClientUsage(ctx context.Context, filter *StatisticsFilter) (DynamicStats, error)
	OpenReadTimes(ctx context.Context, filter *StatisticsFilter) (DynamicStats, error)
	ClickCounts(ctx context.Context, filter *StatisticsFilter) (*ClickCounts, error)
	ClickBrowserUsage(ctx context.Context, filter *StatisticsFilter) (DynamicStats, error)
	ClickPlatformUsage(ctx context.Context, filter *StatisticsFilter) (*PlatformUsage, error)
	ClickLocation(ctx context.Context, filter *StatisticsFilter) (*ClickLocation, error)
}

// InboundRuleTriggersClient defines operations for inbound blocking rules.
type InboundRuleTriggersClient interface {
	List(ctx context.Context, filter *InboundRuleFilter) (*InboundRuleTriggers, error)
	Create(ctx context.Context, rule string) (*InboundRuleTrigger, error)
	Delete(ctx context.Context, id int) (*DefaultResponse, error)
}

// WebhooksClient defines operations for webhooks.
type WebhooksClient interface {
	List(ctx context.Context, filter *WebhookFilter) (*Webhooks, error)
	Get(ctx context.Context, id int) (*Webhook, error)
	Create(ctx context.Context, request *WebhookRequest) (*Webhook, error)
	Edit(ctx context.Context, id int, request *WebhookRequest) (*Webhook, error)
	Delete(ctx context.Context, id int) (*DefaultResponse, error)
}

// MessageStreamsClient defines operations for message streams.
type MessageStreamsClient interface {
	List(ctx context.Context, filter *MessageStreamFilter) (*MessageStreams, error)
	Get(ctx context.Context, streamID string) (*MessageStream, error)
	Create(ctx context.Context, request *CreateMessageStreamRequest) (*MessageStream, error)
	Edit(ctx context.Context, streamID string, request *EditMessageStreamRequest) (*MessageStream, error)
	Archive(ctx context.Context, streamID string) (*MessageStreamArchive, error)
	Unarchive(ctx context.Context, streamID string) (*MessageStream, error)
}

// SuppressionsClient defines operations for the suppression list of a stream.
type SuppressionsClient interface {
	List(ctx context.Context, streamID string, filter *SuppressionFilter) (*Suppressions, error)
	Create(ctx context.Context, streamID string, request *SuppressionRequest) (*SuppressionResults, error)
	Delete(ctx context.Context, streamID string, request *SuppressionRequest) (*SuppressionResults, error)
}

// ServersClient defines account-level operations for servers.
type ServersClient interface {
	List(ctx context.Context, filter *ServerFilter) (*Servers, error)
	Get(ctx context.Context, id int) (*Server, error)
	Create(ctx context.Context, request *ServerRequest) (*Server, error)
	Edit(ctx context.Context, id int, request *ServerRequest) (*Server, error)
	Delete(ctx context.Context, id int) (*DefaultResponse, error)
}

// DomainsClient defines operations for sending domains.
type DomainsClient interface {
	List(ctx context.Context, filter *DomainFilter) (*Domains, error)
	Get(ctx context.Context, id int) (*DomainDetails, error)
	Create(ctx context.Context, request *DomainRequest) (*DomainDetails, error)
	Edit(ctx context.Context, id int, request *DomainRequest) (*DomainDetails, error)
	Delete(ctx context.Context, id int) (*DefaultResponse, error)
	VerifyDKIM(ctx context.Context, id int) (*DomainDetails, error)
	VerifyReturnPath(ctx context.Context, id int) (*DomainDetails, error)
	RotateDKIM(ctx context.Context, id int) (*DomainDetails, error)
}

// SenderSignaturesClient defines operations for sender signatures.
type SenderSignaturesClient interface {
	List(ctx context.Context, filter *SenderSignatureFilter) (*SenderSignatures, error)
	Get(ctx context.Context, id int) (*SenderSignatureDetails, error)
	Create(ctx context.Context, request *SenderSignatureRequest) (*SenderSignatureDetails, error)
	Edit(ctx context.Context, id int, request *SenderSignatureRequest) (*SenderSignatureDetails, error)
	Delete(ctx context.Context, id int) (*DefaultResponse, error)
	ResendConfirmation(ctx context.Context, id int) (*DefaultResponse, error)
}

// AccountTemplatesClient copies templates between servers.
type AccountTemplatesClient interface {
	Push(ctx context.Context, request *TemplatePushRequest) (*TemplatePushResult, error)
}

// DataRemovalsClient requests and tracks removal of recipient data.
type DataRemovalsClient interface {
	Request(ctx context.Context, request *DataRemovalRequest) (*DataRemovalStatus, error)
	Get(ctx context.Context, id int) (*DataRemovalStatus, error)
	// PollUntilComplete waits until the removal leaves the Pending state.
	PollUntilComplete(ctx context.Context, id int) (*DataRemovalStatus, error)
}
