package postmark

// Server is a mail-sending server of an account.
type Server struct {
	ID                         int      `json:"ID"                         yaml:"ID"`
	Name                       string   `json:"Name"                       yaml:"Name"`
	APITokens                  []string `json:"ApiTokens"                  yaml:"ApiTokens"`
	ServerLink                 string   `json:"ServerLink"                 yaml:"ServerLink"`
	Color                      string   `json:"Color"                      yaml:"Color"`
	SMTPAPIActivated           bool     `json:"SmtpApiActivated"           yaml:"SmtpApiActivated"`
	RawEmailEnabled            bool     `json:"RawEmailEnabled"            yaml:"RawEmailEnabled"`
	DeliveryType               string   `json:"DeliveryType"               yaml:"DeliveryType"`
	InboundAddress             string   `json:"InboundAddress"             yaml:"InboundAddress"`
	InboundHookURL             string   `json:"InboundHookUrl"             yaml:"InboundHookUrl"`
	BounceHookURL              string   `json:"BounceHookUrl"              yaml:"BounceHookUrl"`
	OpenHookURL                string   `json:"OpenHookUrl"                yaml:"OpenHookUrl"`
	DeliveryHookURL            string   `json:"DeliveryHookUrl"            yaml:"DeliveryHookUrl"`
	ClickHookURL               string   `json:"ClickHookUrl"               yaml:"ClickHookUrl"`
	PostFirstOpenOnly          bool     `json:"PostFirstOpenOnly"          yaml:"PostFirstOpenOnly"`
	InboundDomain              string   `json:"InboundDomain"              yaml:"InboundDomain"`
	InboundHash                string   `json:"InboundHash"                yaml:"InboundHash"`
	InboundSpamThreshold       int      `json:"InboundSpamThreshold"       yaml:"InboundSpamThreshold"`
	TrackOpens                 bool     `json:"TrackOpens"                 yaml:"TrackOpens"`
	TrackLinks                 string   `json:"TrackLinks"                 yaml:"TrackLinks"`
	IncludeBounceContentInHook bool     `json:"IncludeBounceContentInHook" yaml:"IncludeBounceContentInHook"`
	EnableSMTPAPIErrorHooks    bool     `json:"EnableSmtpApiErrorHooks"    yaml:"EnableSmtpApiErrorHooks"`
}

// Servers is a page of servers.
type Servers struct {
	TotalCount int      `json:"TotalCount" yaml:"TotalCount"`
	Servers    []Server `json:"Servers"    yaml:"Servers"`
}

// ServerRequest creates or edits a server. Nil and empty fields are left out.
type ServerRequest struct {
	Name                       string              `json:"Name,omitempty"                       yaml:"Name,omitempty"`
	Color                      string              `json:"Color,omitempty"                      yaml:"Color,omitempty"`
	SMTPAPIActivated           *bool               `json:"SmtpApiActivated,omitempty"           yaml:"SmtpApiActivated,omitempty"`
	RawEmailEnabled            *bool               `json:"RawEmailEnabled,omitempty"            yaml:"RawEmailEnabled,omitempty"`
	DeliveryType               string              `json:"DeliveryType,omitempty"               yaml:"DeliveryType,omitempty"`
	InboundHookURL             string              `json:"InboundHookUrl,omitempty"             yaml:"InboundHookUrl,omitempty"`
	BounceHookURL              string              `json:"BounceHookUrl,omitempty"              yaml:"BounceHookUrl,omitempty"`
	OpenHookURL                string              `json:"OpenHookUrl,omitempty"                yaml:"OpenHookUrl,omitempty"`
	DeliveryHookURL            string              `json:"DeliveryHookUrl,omitempty"            yaml:"DeliveryHookUrl,omitempty"`
	ClickHookURL               string              `json:"ClickHookUrl,omitempty"               yaml:"ClickHookUrl,omitempty"`
	PostFirstOpenOnly          *bool               `json:"PostFirstOpenOnly,omitempty"          yaml:"PostFirstOpenOnly,omitempty"`
	InboundDomain              string              `json:"InboundDomain,omitempty"              yaml:"InboundDomain,omitempty"`
	InboundSpamThreshold       *int                `json:"InboundSpamThreshold,omitempty"       yaml:"InboundSpamThreshold,omitempty"`
	TrackOpens                 *bool               `json:"TrackOpens,omitempty"                 yaml:"TrackOpens,omitempty"`
	TrackLinks                 LinkTrackingOptions `json:"TrackLinks,omitempty"                 yaml:"TrackLinks,omitempty"`
	IncludeBounceContentInHook *bool               `json:"IncludeBounceContentInHook,omitempty" yaml:"IncludeBounceContentInHook,omitempty"`
	EnableSMTPAPIErrorHooks    *bool               `json:"EnableSmtpApiErrorHooks,omitempty"    yaml:"EnableSmtpApiErrorHooks,omitempty"`
}
