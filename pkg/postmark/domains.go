package postmark

// Domain is a sending domain as it appears in a listing.
type Domain struct {
	ID                       int    `json:"ID"                       yaml:"ID"`
	Name                     string `json:"Name"                     yaml:"Name"`
	SPFVerified              bool   `json:"SPFVerified"              yaml:"SPFVerified"`
	DKIMVerified             bool   `json:"DKIMVerified"             yaml:"DKIMVerified"`
	WeakDKIM                 bool   `json:"WeakDKIM"                 yaml:"WeakDKIM"`
	ReturnPathDomainVerified bool   `json:"ReturnPathDomainVerified" yaml:"ReturnPathDomainVerified"`
}

// Domains is a page of domains.
type Domains struct {
	TotalCount int      `json:"TotalCount" yaml:"TotalCount"`
	Domains    []Domain `json:"Domains"    yaml:"Domains"`
}

// DNSSettings holds the DNS records of a domain or sender signature.
type DNSSettings struct {
	SPFHost                       string `json:"SPFHost"                       yaml:"SPFHost"`
	SPFTextValue                  string `json:"SPFTextValue"                  yaml:"SPFTextValue"`
	DKIMHost                      string `json:"DKIMHost"                      yaml:"DKIMHost"`
	DKIMTextValue                 string `json:"DKIMTextValue"                 yaml:"DKIMTextValue"`
	DKIMPendingHost               string `json:"DKIMPendingHost"               yaml:"DKIMPendingHost"`
	DKIMPendingTextValue          string `json:"DKIMPendingTextValue"          yaml:"DKIMPendingTextValue"`
	DKIMRevokedHost               string `json:"DKIMRevokedHost"               yaml:"DKIMRevokedHost"`
	DKIMRevokedTextValue          string `json:"DKIMRevokedTextValue"          yaml:"DKIMRevokedTextValue"`
	SafeToRemoveRevokedKeyFromDNS bool   `json:"SafeToRemoveRevokedKeyFromDNS" yaml:"SafeToRemoveRevokedKeyFromDNS"`
	DKIMUpdateStatus              string `json:"DKIMUpdateStatus"              yaml:"DKIMUpdateStatus"`
	ReturnPathDomain              string `json:"ReturnPathDomain"              yaml:"ReturnPathDomain"`
	ReturnPathDomainCNAMEValue    string `json:"ReturnPathDomainCNAMEValue"    yaml:"ReturnPathDomainCNAMEValue"`
}

// DomainDetails is a domain with its DNS settings.
type DomainDetails struct {
	Domain      `yaml:",inline"`
	DNSSettings `yaml:",inline"`
}

// DomainRequest creates or edits a domain.
type DomainRequest struct {
	Name             string `json:"Name,omitempty"             yaml:"Name,omitempty"`
	ReturnPathDomain string `json:"ReturnPathDomain,omitempty" yaml:"ReturnPathDomain,omitempty"`
}
