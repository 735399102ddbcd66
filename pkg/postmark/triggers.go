package postmark

// InboundRuleTrigger blocks inbound mail from an address or domain.
type InboundRuleTrigger struct {
	ID   int    `json:"ID"   yaml:"ID"`
	Rule string `json:"Rule" yaml:"Rule"`
}

// InboundRuleTriggers is a page of inbound rules.
type InboundRuleTriggers struct {
	TotalCount   int                  `json:"TotalCount"   yaml:"TotalCount"`
	InboundRules []InboundRuleTrigger `json:"InboundRules" yaml:"InboundRules"`
}

// InboundRuleTriggerRequest creates an inbound rule.
type InboundRuleTriggerRequest struct {
	Rule string `json:"Rule" yaml:"Rule"`
}
