package postmark

// SenderSignature is a confirmed or pending sender address.
type SenderSignature struct {
	ID                  int    `json:"ID"                  yaml:"ID"`
	Domain              string `json:"Domain"              yaml:"Domain"`
	EmailAddress        string `json:"EmailAddress"        yaml:"EmailAddress"`
	ReplyToEmailAddress string `json:"ReplyToEmailAddress" yaml:"ReplyToEmailAddress"`
	Name                string `json:"Name"                yaml:"Name"`
	Confirmed           bool   `json:"Confirmed"           yaml:"Confirmed"`
}

// SenderSignatures is a page of sender signatures.
type SenderSignatures struct {
	TotalCount       int               `json:"TotalCount"       yaml:"TotalCount"`
	SenderSignatures []SenderSignature `json:"SenderSignatures" yaml:"SenderSignatures"`
}

// SenderSignatureDetails is a sender signature with its DNS settings.
type SenderSignatureDetails struct {
	SenderSignature `yaml:",inline"`
	DNSSettings     `yaml:",inline"`

	SPFVerified              bool   `json:"SPFVerified"              yaml:"SPFVerified"`
	DKIMVerified             bool   `json:"DKIMVerified"             yaml:"DKIMVerified"`
	WeakDKIM                 bool   `json:"WeakDKIM"                 yaml:"WeakDKIM"`
	ReturnPathDomainVerified bool   `json:"ReturnPathDomainVerified" yaml:"ReturnPathDomainVerified"`
	ConfirmationPersonalNote string `json:"ConfirmationPersonalNote" yaml:"ConfirmationPersonalNote"`
}

// SenderSignatureRequest creates or edits a sender signature.
type SenderSignatureRequest struct {
	FromEmail                string `json:"FromEmail,omitempty"                yaml:"FromEmail,omitempty"`
	Name                     string `json:"Name,omitempty"                     yaml:"Name,omitempty"`
	ReplyToEmail             string `json:"ReplyToEmail,omitempty"             yaml:"ReplyToEmail,omitempty"`
	ReturnPathDomain         string `json:"ReturnPathDomain,omitempty"         yaml:"ReturnPathDomain,omitempty"`
	ConfirmationPersonalNote string `json:"ConfirmationPersonalNote,omitempty" yaml:"ConfirmationPersonalNote,omitempty"`
}

// DataRemovalRequest asks for all data about an address to be removed.
type DataRemovalRequest struct {
	RequestedBy         string `json:"RequestedBy"         yaml:"RequestedBy"`
	RequestedFor        string `json:"RequestedFor"        yaml:"RequestedFor"`
	NotifyWhenCompleted bool   `json:"NotifyWhenCompleted" yaml:"NotifyWhenCompleted"`
}

// DataRemovalStatus reports the progress of a data removal request.
type DataRemovalStatus struct {
	ID     int    `json:"ID"     yaml:"ID"`
	Status string `json:"Status" yaml:"Status"`
}
