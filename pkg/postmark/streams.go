package postmark

import "time"

// Message stream types.
const (
	StreamTypeTransactional = "Transactional"
	StreamTypeBroadcasts    = "Broadcasts"
	StreamTypeInbound       = "Inbound"
)

// SubscriptionManagementConfiguration controls unsubscribe handling of a stream.
type SubscriptionManagementConfiguration struct {
	UnsubscribeHandlingType string `json:"UnsubscribeHandlingType" yaml:"UnsubscribeHandlingType"`
}

// MessageStream is a stream of a server.
type MessageStream struct {
	ID                                  string                              `json:"ID"                                  yaml:"ID"`
	ServerID                            int                                 `json:"ServerID"                            yaml:"ServerID"`
	Name                                string                              `json:"Name"                                yaml:"Name"`
	Description                         string                              `json:"Description"                         yaml:"Description"`
	MessageStreamType                   string                              `json:"MessageStreamType"                   yaml:"MessageStreamType"`
	CreatedAt                           time.Time                           `json:"CreatedAt"                           yaml:"CreatedAt"`
	UpdatedAt                           *time.Time                          `json:"UpdatedAt"                           yaml:"UpdatedAt"`
	ArchivedAt                          *time.Time                          `json:"ArchivedAt"                          yaml:"ArchivedAt"`
	ExpectedPurgeDate                   *time.Time                          `json:"ExpectedPurgeDate"                   yaml:"ExpectedPurgeDate"`
	SubscriptionManagementConfiguration SubscriptionManagementConfiguration `json:"SubscriptionManagementConfiguration" yaml:"SubscriptionManagementConfiguration"`
}

// MessageStreams lists the streams of a server.
type MessageStreams struct {
	TotalCount     int             `json:"TotalCount"     yaml:"TotalCount"`
	MessageStreams []MessageStream `json:"MessageStreams" yaml:"MessageStreams"`
}

// CreateMessageStreamRequest creates a stream.
type CreateMessageStreamRequest struct {
	ID                                  string                               `json:"ID"                                            yaml:"ID"`
	Name                                string                               `json:"Name"                                          yaml:"Name"`
	Description                         string                               `json:"Description,omitempty"                         yaml:"Description,omitempty"`
	MessageStreamType                   string                               `json:"MessageStreamType"                             yaml:"MessageStreamType"`
	SubscriptionManagementConfiguration *SubscriptionManagementConfiguration `json:"SubscriptionManagementConfiguration,omitempty" yaml:"SubscriptionManagementConfiguration,omitempty"`
}

// EditMessageStreamRequest edits a stream.
type EditMessageStreamRequest struct {
	Name                                string                               `json:"Name,omitempty"                                yaml:"Name,omitempty"`
	Description                         string                               `json:"Description,omitempty"                         yaml:"Description,omitempty"`
	SubscriptionManagementConfiguration *SubscriptionManagementConfiguration `json:"SubscriptionManagementConfiguration,omitempty" yaml:"SubscriptionManagementConfiguration,omitempty"`
}

// MessageStreamArchive is the response of archiving a stream.
type MessageStreamArchive struct {
	ID                string    `json:"ID"                yaml:"ID"`
	ServerID          int       `json:"ServerID"          yaml:"ServerID"`
	ExpectedPurgeDate time.Time `json:"ExpectedPurgeDate" yaml:"ExpectedPurgeDate"`
}
