package postmark

import "time"

// Suppression is an address that will not receive mail on a stream.
type Suppression struct {
	EmailAddress      string    `json:"EmailAddress"      yaml:"EmailAddress"`
	SuppressionReason string    `json:"SuppressionReason" yaml:"SuppressionReason"`
	Origin            string    `json:"Origin"            yaml:"Origin"`
	CreatedAt         time.Time `json:"CreatedAt"         yaml:"CreatedAt"`
}

// Suppressions lists the suppressions of a stream.
type Suppressions struct {
	Suppressions []Suppression `json:"Suppressions" yaml:"Suppressions"`
}

// SuppressionEntry names one address in a create or delete request.
type SuppressionEntry struct {
	EmailAddress string `json:"EmailAddress" yaml:"EmailAddress"`
}

// SuppressionRequest adds or removes suppressions.
type SuppressionRequest struct {
	Suppressions []SuppressionEntry `json:"Suppressions" yaml:"Suppressions"`
}

// SuppressionResult is the outcome for one address.
type SuppressionResult struct {
	EmailAddress string `json:"EmailAddress" yaml:"EmailAddress"`
	Status       string `json:"Status"       yaml:"Status"`
	Message      string `json:"Message"      yaml:"Message"`
}

// SuppressionResults is the response of a create or delete request.
type SuppressionResults struct {
	Suppressions []SuppressionResult `json:"Suppressions" yaml:"Suppressions"`
}
