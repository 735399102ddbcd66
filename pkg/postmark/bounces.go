package postmark

import "time"

// Bounce represents a single bounce record.
type Bounce struct {
	ID            int64     `json:"ID"            yaml:"ID"`
	Type          string    `json:"Type"          yaml:"Type"`
	TypeCode      int       `json:"TypeCode"      yaml:"TypeCode"`
	Name          string    `json:"Name"          yaml:"Name"`
	Tag           string    `json:"Tag"           yaml:"Tag"`
	MessageID     string    `json:"MessageID"     yaml:"MessageID"`
	ServerID      int       `json:"ServerID"      yaml:"ServerID"`
	MessageStream string    `json:"MessageStream" yaml:"MessageStream"`
	Description   string    `json:"Description"   yaml:"Description"`
	Details       string    `json:"Details"       yaml:"Details"`
	Email         string    `json:"Email"         yaml:"Email"`
	From          string    `json:"From"          yaml:"From"`
	BouncedAt     time.Time `json:"BouncedAt"     yaml:"BouncedAt"`
	DumpAvailable bool      `json:"DumpAvailable" yaml:"DumpAvailable"`
	Inactive      bool      `json:"Inactive"      yaml:"Inactive"`
	CanActivate   bool      `json:"CanActivate"   yaml:"CanActivate"`
	Subject       string    `json:"Subject"       yaml:"Subject"`
	Content       string    `json:"Content"       yaml:"Content"`
}

// Bounces is a page of bounces.
type Bounces struct {
	TotalCount int      `json:"TotalCount" yaml:"TotalCount"`
	Bounces    []Bounce `json:"Bounces"    yaml:"Bounces"`
}

// BounceDump holds the raw SMTP source of a bounce.
type BounceDump struct {
	Body string `json:"Body" yaml:"Body"`
}

// BounceActivation is the result of reactivating a bounced address.
type BounceActivation struct {
	Message string `json:"Message" yaml:"Message"`
	Bounce  Bounce `json:"Bounce"  yaml:"Bounce"`
}

// BounceTypeCount is one row of the delivery statistics.
type BounceTypeCount struct {
	Name  string `json:"Name"           yaml:"Name"`
	Count int    `json:"Count"          yaml:"Count"`
	Type  string `json:"Type,omitempty" yaml:"Type,omitempty"`
}

// DeliveryStatistics summarises bounces by type.
type DeliveryStatistics struct {
	InactiveMails int               `json:"InactiveMails" yaml:"InactiveMails"`
	Bounces       []BounceTypeCount `json:"Bounces"       yaml:"Bounces"`
}
