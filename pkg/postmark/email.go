package postmark

import "time"

// Attachment is a base64-encoded file attached to a message.
type Attachment struct {
	Name        string `json:"Name"                yaml:"Name"`
	Content     string `json:"Content"             yaml:"Content"`
	ContentType string `json:"ContentType"         yaml:"ContentType"`
	ContentID   string `json:"ContentID,omitempty" yaml:"ContentID,omitempty"`
}

// Message is a single outbound email.
type Message struct {
	From          string              `json:"From"                    yaml:"From"`
	To            string              `json:"To"                      yaml:"To"`
	Cc            string              `json:"Cc,omitempty"            yaml:"Cc,omitempty"`
	Bcc           string              `json:"Bcc,omitempty"           yaml:"Bcc,omitempty"`
	Subject       string              `json:"Subject,omitempty"       yaml:"Subject,omitempty"`
	Tag           string              `json:"Tag,omitempty"           yaml:"Tag,omitempty"`
	HTMLBody      string              `json:"HtmlBody,omitempty"      yaml:"HtmlBody,omitempty"`
	TextBody      string              `json:"TextBody,omitempty"      yaml:"TextBody,omitempty"`
	ReplyTo       string              `json:"ReplyTo,omitempty"       yaml:"ReplyTo,omitempty"`
	Headers       []Header            `json:"Headers,omitempty"       yaml:"Headers,omitempty"`
	TrackOpens    *bool               `json:"TrackOpens,omitempty"    yaml:"TrackOpens,omitempty"`
	TrackLinks    LinkTrackingOptions `json:"TrackLinks,omitempty"    yaml:"TrackLinks,omitempty"`
	Attachments   []Attachment        `json:"Attachments,omitempty"   yaml:"Attachments,omitempty"`
	Metadata      map[string]string   `json:"Metadata,omitempty"      yaml:"Metadata,omitempty"`
	MessageStream string              `json:"MessageStream,omitempty" yaml:"MessageStream,omitempty"`
}

// TemplatedMessage is an outbound email rendered from a stored template,
// addressed either by TemplateID or TemplateAlias.
type TemplatedMessage struct {
	TemplateID    int                    `json:"TemplateId,omitempty"    yaml:"TemplateId,omitempty"`
	TemplateAlias string                 `json:"TemplateAlias,omitempty" yaml:"TemplateAlias,omitempty"`
	TemplateModel map[string]interface{} `json:"TemplateModel"           yaml:"TemplateModel"`
	InlineCSS     *bool                  `json:"InlineCss,omitempty"     yaml:"InlineCss,omitempty"`
	From          string                 `json:"From"                    yaml:"From"`
	To            string                 `json:"To"                      yaml:"To"`
	Cc            string                 `json:"Cc,omitempty"            yaml:"Cc,omitempty"`
	Bcc           string                 `json:"Bcc,omitempty"           yaml:"Bcc,omitempty"`
	Tag           string                 `json:"Tag,omitempty"           yaml:"Tag,omitempty"`
	ReplyTo       string                 `json:"ReplyTo,omitempty"       yaml:"ReplyTo,omitempty"`
	Headers       []Header               `json:"Headers,omitempty"       yaml:"Headers,omitempty"`
	TrackOpens    *bool                  `json:"TrackOpens,omitempty"    yaml:"TrackOpens,omitempty"`
	TrackLinks    LinkTrackingOptions    `json:"TrackLinks,omitempty"    yaml:"TrackLinks,omitempty"`
	Attachments   []Attachment           `json:"Attachments,omitempty"   yaml:"Attachments,omitempty"`
	Metadata      map[string]string      `json:"Metadata,omitempty"      yaml:"Metadata,omitempty"`
	MessageStream string                 `json:"MessageStream,omitempty" yaml:"MessageStream,omitempty"`
}

// TemplatedBatchRequest wraps templated messages for /email/batchWithTemplates.
type TemplatedBatchRequest struct {
	Messages []TemplatedMessage `json:"Messages" yaml:"Messages"`
}

// SendResponse is the per-message result of a send.
type SendResponse struct {
	To          string    `json:"To"          yaml:"To"`
	SubmittedAt time.Time `json:"SubmittedAt" yaml:"SubmittedAt"`
	MessageID   string    `json:"MessageID"   yaml:"MessageID"`
	ErrorCode   int       `json:"ErrorCode"   yaml:"ErrorCode"`
	Message     string    `json:"Message"     yaml:"Message"`
}
