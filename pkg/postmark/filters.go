package postmark

import (
	"net/url"

	"github.com/google/go-querystring/query"
)

// Pagination defaults.
const (
	DefaultCount  = 100
	DefaultOffset = 0
	MaxBatchSize  = 500
)

// Pagination is the count/offset shape shared by listing endpoints.
type Pagination struct {
	Count  int `url:"count"`
	Offset int `url:"offset"`
}

// WithDefaults fills missing fields: a non-positive Count becomes
// DefaultCount and a negative Offset becomes DefaultOffset. Fields that are
// already set are kept.
func (p Pagination) WithDefaults() Pagination {
	if p.Count <= 0 {
		p.Count = DefaultCount
	}

	if p.Offset < 0 {
		p.Offset = DefaultOffset
	}

	return p
}

// Paging exposes the pagination of any filter embedding Pagination.
func (p *Pagination) Paging() *Pagination {
	return p
}

// BounceFilter narrows Bounces().List.
type BounceFilter struct {
	Pagination

	Type          string `url:"type,omitempty"`
	Inactive      *bool  `url:"inactive,omitempty"`
	EmailFilter   string `url:"emailFilter,omitempty"`
	Tag           string `url:"tag,omitempty"`
	MessageID     string `url:"messageID,omitempty"`
	FromDate      string `url:"fromdate,omitempty"`
	ToDate        string `url:"todate,omitempty"`
	MessageStream string `url:"messagestream,omitempty"`
}

// TemplateFilter narrows Templates().List.
type TemplateFilter struct {
	Pagination

	TemplateType   string `url:"TemplateType,omitempty"`
	LayoutTemplate string `url:"LayoutTemplate,omitempty"`
}

// OutboundMessageFilter narrows Messages().ListOutbound.
type OutboundMessageFilter struct {
	Pagination

	Recipient     string `url:"recipient,omitempty"`
	FromEmail     string `url:"fromemail,omitempty"`
	Tag           string `url:"tag,omitempty"`
	Status        string `url:"status,omitempty"`
	Subject       string `url:"subject,omitempty"`
	FromDate      string `url:"fromdate,omitempty"`
	ToDate        string `url:"todate,omitempty"`
	MessageStream string `url:"messagestream,omitempty"`
}

// InboundMessageFilter narrows Messages().ListInbound.
type InboundMessageFilter struct {
	Pagination

	Recipient   string `url:"recipient,omitempty"`
	FromEmail   string `url:"fromemail,omitempty"`
	Tag         string `url:"tag,omitempty"`
	Subject     string `url:"subject,omitempty"`
	MailboxHash string `url:"mailboxhash,omitempty"`
	Status      string `url:"status,omitempty"`
	FromDate    string `url:"fromdate,omitempty"`
	ToDate      string `url:"todate,omitempty"`
}

// TrackingFilter narrows the open and click listings.
type TrackingFilter struct {
	Pagination

	Recipient     string `url:"recipient,omitempty"`
	Tag           string `url:"tag,omitempty"`
	ClientName    string `url:"client_name,omitempty"`
	ClientCompany string `url:"client_company,omitempty"`
	ClientFamily  string `url:"client_family,omitempty"`
	OSName        string `url:"os_name,omitempty"`
	OSFamily      string `url:"os_family,omitempty"`
	OSCompany     string `url:"os_company,omitempty"`
	Platform      string `url:"platform,omitempty"`
	Country       string `url:"country,omitempty"`
	Region        string `url:"region,omitempty"`
	City          string `url:"city,omitempty"`
	MessageStream string `url:"messagestream,omitempty"`
}

// StatisticsFilter narrows the Stats() endpoints. Statistics are not paginated.
type StatisticsFilter struct {
	Tag           string `url:"tag,omitempty"`
	FromDate      string `url:"fromdate,omitempty"`
	ToDate        string `url:"todate,omitempty"`
	MessageStream string `url:"messagestream,omitempty"`
}

// InboundRuleFilter narrows InboundRuleTriggers().List.
type InboundRuleFilter struct {
	Pagination
}

// WebhookFilter narrows Webhooks().List.
type WebhookFilter struct {
	MessageStream string `url:"MessageStream,omitempty"`
}

// MessageStreamFilter narrows MessageStreams().List.
type MessageStreamFilter struct {
	MessageStreamType      string `url:"MessageStreamType,omitempty"`
	IncludeArchivedStreams bool   `url:"IncludeArchivedStreams,omitempty"`
}

// SuppressionFilter narrows Suppressions().List.
type SuppressionFilter struct {
	SuppressionReason string `url:"SuppressionReason,omitempty"`
	Origin            string `url:"Origin,omitempty"`
	FromDate          string `url:"fromdate,omitempty"`
	ToDate            string `url:"todate,omitempty"`
	EmailAddress      string `url:"EmailAddress,omitempty"`
}

// ServerFilter narrows Servers().List.
type ServerFilter struct {
	Pagination

	Name string `url:"name,omitempty"`
}

// DomainFilter narrows Domains().List.
type DomainFilter struct {
	Pagination
}

// SenderSignatureFilter narrows SenderSignatures().List.
type SenderSignatureFilter struct {
	Pagination
}

// EncodeQuery turns a filter struct (or pointer to one) into query values
// using its `url` tags. Embedded structs are flattened. A nil filter, or
// anything that is not a struct, yields empty values.
func EncodeQuery(filter interface{}) url.Values {
	values, err := query.Values(filter)
	if err != nil || values == nil {
		return url.Values{}
	}

	return values
}
