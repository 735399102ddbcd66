package postmark

// DefaultResponse is returned by endpoints that only acknowledge a request.
type DefaultResponse struct {
	ErrorCode int    `json:"ErrorCode" yaml:"ErrorCode"`
	Message   string `json:"Message"   yaml:"Message"`
}

// Header is a single custom header on a message or webhook.
type Header struct {
	Name  string `json:"Name"  yaml:"Name"`
	Value string `json:"Value" yaml:"Value"`
}

// LinkTrackingOptions selects which message parts get link tracking.
type LinkTrackingOptions string

// Link tracking modes.
const (
	LinkTrackingNone        LinkTrackingOptions = "None"
	LinkTrackingHTMLAndText LinkTrackingOptions = "HtmlAndText"
	LinkTrackingHTMLOnly    LinkTrackingOptions = "HtmlOnly"
	LinkTrackingTextOnly    LinkTrackingOptions = "TextOnly"
)

// Message streams that exist on every server.
const (
	StreamOutbound  = "outbound"
	StreamBroadcast = "broadcast"
	StreamInbound   = "inbound"
)

// Bool returns a pointer to b, for optional fields.
func Bool(b bool) *bool {
	return &b
}
