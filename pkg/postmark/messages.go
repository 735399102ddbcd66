package postmark

import "time"

// Recipient is a named address on an inbound or outbound message.
type Recipient struct {
	Email       string `json:"Email"       yaml:"Email"`
	Name        string `json:"Name"        yaml:"Name"`
	MailboxHash string `json:"MailboxHash" yaml:"MailboxHash"`
}

// OutboundMessage is a sent message as it appears in a search.
type OutboundMessage struct {
	Tag           string            `json:"Tag"           yaml:"Tag"`
	MessageID     string            `json:"MessageID"     yaml:"MessageID"`
	MessageStream string            `json:"MessageStream" yaml:"MessageStream"`
	To            []Recipient       `json:"To"            yaml:"To"`
	Cc            []Recipient       `json:"Cc"            yaml:"Cc"`
	Bcc           []Recipient       `json:"Bcc"           yaml:"Bcc"`
	Recipients    []string          `json:"Recipients"    yaml:"Recipients"`
	ReceivedAt    time.Time         `json:"ReceivedAt"    yaml:"ReceivedAt"`
	From          string            `json:"From"          yaml:"From"`
	Subject       string            `json:"Subject"       yaml:"Subject"`
	Attachments   []Attachment      `json:"Attachments"   yaml:"Attachments"`
	Status        string            `json:"Status"        yaml:"Status"`
	TrackOpens    bool              `json:"TrackOpens"    yaml:"TrackOpens"`
	TrackLinks    string            `json:"TrackLinks"    yaml:"TrackLinks"`
	Metadata      map[string]string `json:"Metadata"      yaml:"Metadata"`
	Sandboxed     bool              `json:"Sandboxed"     yaml:"Sandboxed"`
}

// OutboundMessages is a page of outbound messages.
type OutboundMessages struct {
	TotalCount int               `json:"TotalCount" yaml:"TotalCount"`
	Messages   []OutboundMessage `json:"Messages"   yaml:"Messages"`
}

// MessageEvent is one delivery event in a message's history.
type MessageEvent struct {
	Recipient  string                 `json:"Recipient"  yaml:"Recipient"`
	Type       string                 `json:"Type"       yaml:"Type"`
	ReceivedAt time.Time              `json:"ReceivedAt" yaml:"ReceivedAt"`
	Details    map[string]interface{} `json:"Details"    yaml:"Details"`
}

// OutboundMessageDetails is an outbound message with bodies and history.
type OutboundMessageDetails struct {
	OutboundMessage `yaml:",inline"`

	TextBody      string         `json:"TextBody"      yaml:"TextBody"`
	HTMLBody      string         `json:"HtmlBody"      yaml:"HtmlBody"`
	Body          string         `json:"Body"          yaml:"Body"`
	MessageEvents []MessageEvent `json:"MessageEvents" yaml:"MessageEvents"`
}

// MessageDump holds the raw source of a message.
type MessageDump struct {
	Body string `json:"Body" yaml:"Body"`
}

// InboundMessage is a received message as it appears in a search.
type InboundMessage struct {
	From              string       `json:"From"          yaml:"From"`
	FromName          string       `json:"FromName"      yaml:"FromName"`
	FromFull          Recipient    `json:"FromFull"      yaml:"FromFull"`
	To                string       `json:"To"            yaml:"To"`
	ToFull            []Recipient  `json:"ToFull"        yaml:"ToFull"`
	Cc                string       `json:"Cc"            yaml:"Cc"`
	CcFull            []Recipient  `json:"CcFull"        yaml:"CcFull"`
	ReplyTo           string       `json:"ReplyTo"       yaml:"ReplyTo"`
	OriginalRecipient string       `json:"OriginalRecipient" yaml:"OriginalRecipient"`
	Subject           string       `json:"Subject"       yaml:"Subject"`
	Date              string       `json:"Date"          yaml:"Date"`
	MailboxHash       string       `json:"MailboxHash"   yaml:"MailboxHash"`
	Tag               string       `json:"Tag"           yaml:"Tag"`
	MessageID         string       `json:"MessageID"     yaml:"MessageID"`
	Status            string       `json:"Status"        yaml:"Status"`
	Attachments       []Attachment `json:"Attachments"   yaml:"Attachments"`
}

// InboundMessages is a page of inbound messages.
type InboundMessages struct {
	TotalCount      int              `json:"TotalCount"      yaml:"TotalCount"`
	InboundMessages []InboundMessage `json:"InboundMessages" yaml:"InboundMessages"`
}

// InboundMessageDetails is an inbound message with bodies and processing history.
type InboundMessageDetails struct {
	InboundMessage `yaml:",inline"`

	TextBody       string                   `json:"TextBody"       yaml:"TextBody"`
	HTMLBody       string                   `json:"HtmlBody"       yaml:"HtmlBody"`
	RawEmail       string                   `json:"RawEmail"       yaml:"RawEmail"`
	Headers        []Header                 `json:"Headers"        yaml:"Headers"`
	BlockedReason  string                   `json:"BlockedReason"  yaml:"BlockedReason"`
	MessageStream  string                   `json:"MessageStream"  yaml:"MessageStream"`
	ProcessingInfo []map[string]interface{} `json:"ProcessingInfo" yaml:"ProcessingInfo"`
}

// ClientInfo describes the mail client or browser behind an event.
type ClientInfo struct {
	Name    string `json:"Name"    yaml:"Name"`
	Company string `json:"Company" yaml:"Company"`
	Family  string `json:"Family"  yaml:"Family"`
}

// GeoInfo locates an open or click.
type GeoInfo struct {
	CountryISOCode string `json:"CountryISOCode" yaml:"CountryISOCode"`
	Country        string `json:"Country"        yaml:"Country"`
	RegionISOCode  string `json:"RegionISOCode"  yaml:"RegionISOCode"`
	Region         string `json:"Region"         yaml:"Region"`
	City           string `json:"City"           yaml:"City"`
	Zip            string `json:"Zip"            yaml:"Zip"`
	Coords         string `json:"Coords"         yaml:"Coords"`
	IP             string `json:"IP"             yaml:"IP"`
}

// OpenEvent is a single tracked open.
type OpenEvent struct {
	RecordType    string     `json:"RecordType"    yaml:"RecordType"`
	FirstOpen     bool       `json:"FirstOpen"     yaml:"FirstOpen"`
	Client        ClientInfo `json:"Client"        yaml:"Client"`
	OS            ClientInfo `json:"OS"            yaml:"OS"`
	Platform      string     `json:"Platform"      yaml:"Platform"`
	UserAgent     string     `json:"UserAgent"     yaml:"UserAgent"`
	ReadSeconds   int        `json:"ReadSeconds"   yaml:"ReadSeconds"`
	Geo           GeoInfo    `json:"Geo"           yaml:"Geo"`
	MessageID     string     `json:"MessageID"     yaml:"MessageID"`
	MessageStream string     `json:"MessageStream" yaml:"MessageStream"`
	ReceivedAt    time.Time  `json:"ReceivedAt"    yaml:"ReceivedAt"`
	Tag           string     `json:"Tag"           yaml:"Tag"`
	Recipient     string     `json:"Recipient"     yaml:"Recipient"`
}

// Opens is a page of open events.
type Opens struct {
	TotalCount int         `json:"TotalCount" yaml:"TotalCount"`
	Opens      []OpenEvent `json:"Opens"      yaml:"Opens"`
}

// ClickEvent is a single tracked link click.
type ClickEvent struct {
	RecordType    string     `json:"RecordType"    yaml:"RecordType"`
	ClickLocation string     `json:"ClickLocation" yaml:"ClickLocation"`
	Client        ClientInfo `json:"Client"        yaml:"Client"`
	OS            ClientInfo `json:"OS"            yaml:"OS"`
	Platform      string     `json:"Platform"      yaml:"Platform"`
	UserAgent     string     `json:"UserAgent"     yaml:"UserAgent"`
	OriginalLink  string     `json:"OriginalLink"  yaml:"OriginalLink"`
	Geo           GeoInfo    `json:"Geo"           yaml:"Geo"`
	MessageID     string     `json:"MessageID"     yaml:"MessageID"`
	MessageStream string     `json:"MessageStream" yaml:"MessageStream"`
	ReceivedAt    time.Time  `json:"ReceivedAt"    yaml:"ReceivedAt"`
	Tag           string     `json:"Tag"           yaml:"Tag"`
	Recipient     string     `json:"Recipient"     yaml:"Recipient"`
}

// Clicks is a page of click events.
type Clicks struct {
	TotalCount int          `json:"TotalCount" yaml:"TotalCount"`
	Clicks     []ClickEvent `json:"Clicks"     yaml:"Clicks"`
}
