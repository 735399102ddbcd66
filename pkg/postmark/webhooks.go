package postmark

// HTTPAuth holds basic auth credentials sent with webhook calls.
type HTTPAuth struct {
	Username string `json:"Username" yaml:"Username"`
	Password string `json:"Password" yaml:"Password"`
}

// WebhookTrigger toggles one event type.
type WebhookTrigger struct {
	Enabled bool `json:"Enabled" yaml:"Enabled"`
}

// OpenWebhookTrigger toggles open events.
type OpenWebhookTrigger struct {
	Enabled           bool `json:"Enabled"           yaml:"Enabled"`
	PostFirstOpenOnly bool `json:"PostFirstOpenOnly" yaml:"PostFirstOpenOnly"`
}

// ContentWebhookTrigger toggles an event type that can carry message content.
type ContentWebhookTrigger struct {
	Enabled        bool `json:"Enabled"        yaml:"Enabled"`
	IncludeContent bool `json:"IncludeContent" yaml:"IncludeContent"`
}

// WebhookTriggers selects which events a webhook receives.
type WebhookTriggers struct {
	Open               *OpenWebhookTrigger    `json:"Open,omitempty"               yaml:"Open,omitempty"`
	Click              *WebhookTrigger        `json:"Click,omitempty"              yaml:"Click,omitempty"`
	Delivery           *WebhookTrigger        `json:"Delivery,omitempty"           yaml:"Delivery,omitempty"`
	Bounce             *ContentWebhookTrigger `json:"Bounce,omitempty"             yaml:"Bounce,omitempty"`
	SpamComplaint      *ContentWebhookTrigger `json:"SpamComplaint,omitempty"      yaml:"SpamComplaint,omitempty"`
	SubscriptionChange *WebhookTrigger        `json:"SubscriptionChange,omitempty" yaml:"SubscriptionChange,omitempty"`
}

// Webhook is a configured webhook of a server.
type Webhook struct {
	ID            int              `json:"ID"                 yaml:"ID"`
	URL           string           `json:"Url"                yaml:"Url"`
	MessageStream string           `json:"MessageStream"      yaml:"MessageStream"`
	HTTPAuth      *HTTPAuth        `json:"HttpAuth,omitempty" yaml:"HttpAuth,omitempty"`
	HTTPHeaders   []Header         `json:"HttpHeaders"        yaml:"HttpHeaders"`
	Triggers      *WebhookTriggers `json:"Triggers"           yaml:"Triggers"`
}

// Webhooks lists the webhooks of a server.
type Webhooks struct {
	Webhooks []Webhook `json:"Webhooks" yaml:"Webhooks"`
}

// WebhookRequest creates or edits a webhook. Empty fields are left out.
type WebhookRequest struct {
	URL           string           `json:"Url,omitempty"           yaml:"Url,omitempty"`
	MessageStream string           `json:"MessageStream,omitempty" yaml:"MessageStream,omitempty"`
	HTTPAuth      *HTTPAuth        `json:"HttpAuth,omitempty"      yaml:"HttpAuth,omitempty"`
	HTTPHeaders   []Header         `json:"HttpHeaders,omitempty"   yaml:"HttpHeaders,omitempty"`
	Triggers      *WebhookTriggers `json:"Triggers,omitempty"      yaml:"Triggers,omitempty"`
}
