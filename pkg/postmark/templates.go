package postmark

// Template types.
const (
	TemplateTypeStandard = "Standard"
	TemplateTypeLayout   = "Layout"
)

// Template is a stored template with its content.
type Template struct {
	TemplateID         int    `json:"TemplateId"               yaml:"TemplateId"`
	Name               string `json:"Name"                     yaml:"Name"`
	Subject            string `json:"Subject"                  yaml:"Subject"`
	HTMLBody           string `json:"HtmlBody"                 yaml:"HtmlBody"`
	TextBody           string `json:"TextBody"                 yaml:"TextBody"`
	AssociatedServerID int    `json:"AssociatedServerId"       yaml:"AssociatedServerId"`
	Active             bool   `json:"Active"                   yaml:"Active"`
	Alias              string `json:"Alias,omitempty"          yaml:"Alias,omitempty"`
	TemplateType       string `json:"TemplateType"             yaml:"TemplateType"`
	LayoutTemplate     string `json:"LayoutTemplate,omitempty" yaml:"LayoutTemplate,omitempty"`
}

// TemplateSummary is a template as it appears in a listing.
type TemplateSummary struct {
	TemplateID     int    `json:"TemplateId"               yaml:"TemplateId"`
	Name           string `json:"Name"                     yaml:"Name"`
	Active         bool   `json:"Active"                   yaml:"Active"`
	Alias          string `json:"Alias,omitempty"          yaml:"Alias,omitempty"`
	TemplateType   string `json:"TemplateType"             yaml:"TemplateType"`
	LayoutTemplate string `json:"LayoutTemplate,omitempty" yaml:"LayoutTemplate,omitempty"`
}

// Templates is a page of templates.
type Templates struct {
	TotalCount int               `json:"TotalCount" yaml:"TotalCount"`
	Templates  []TemplateSummary `json:"Templates"  yaml:"Templates"`
}

// TemplateRequest creates or edits a template. Empty fields are left out.
type TemplateRequest struct {
	Name           string `json:"Name,omitempty"           yaml:"Name,omitempty"`
	Subject        string `json:"Subject,omitempty"        yaml:"Subject,omitempty"`
	HTMLBody       string `json:"HtmlBody,omitempty"       yaml:"HtmlBody,omitempty"`
	TextBody       string `json:"TextBody,omitempty"       yaml:"TextBody,omitempty"`
	Alias          string `json:"Alias,omitempty"          yaml:"Alias,omitempty"`
	TemplateType   string `json:"TemplateType,omitempty"   yaml:"TemplateType,omitempty"`
	LayoutTemplate string `json:"LayoutTemplate,omitempty" yaml:"LayoutTemplate,omitempty"`
}

// TemplateReference identifies a created or edited template.
type TemplateReference struct {
	TemplateID   int    `json:"TemplateId"      yaml:"TemplateId"`
	Name         string `json:"Name"            yaml:"Name"`
	Active       bool   `json:"Active"          yaml:"Active"`
	Alias        string `json:"Alias,omitempty" yaml:"Alias,omitempty"`
	TemplateType string `json:"TemplateType"    yaml:"TemplateType"`
}

// TemplateValidationRequest renders template content without storing it.
type TemplateValidationRequest struct {
	Subject                    string                 `json:"Subject,omitempty"                    yaml:"Subject,omitempty"`
	HTMLBody                   string                 `json:"HtmlBody,omitempty"                   yaml:"HtmlBody,omitempty"`
	TextBody                   string                 `json:"TextBody,omitempty"                   yaml:"TextBody,omitempty"`
	TestRenderModel            map[string]interface{} `json:"TestRenderModel,omitempty"            yaml:"TestRenderModel,omitempty"`
	InlineCSSForHTMLTestRender *bool                  `json:"InlineCssForHtmlTestRender,omitempty" yaml:"InlineCssForHtmlTestRender,omitempty"`
	TemplateType               string                 `json:"TemplateType,omitempty"               yaml:"TemplateType,omitempty"`
	LayoutTemplate             string                 `json:"LayoutTemplate,omitempty"             yaml:"LayoutTemplate,omitempty"`
}

// TemplateValidationError locates a problem in template content.
type TemplateValidationError struct {
	Message           string `json:"Message"           yaml:"Message"`
	Line              int    `json:"Line"              yaml:"Line"`
	CharacterPosition int    `json:"CharacterPosition" yaml:"CharacterPosition"`
}

// TemplateValidationResult is the outcome for one template part.
type TemplateValidationResult struct {
	ContentIsValid   bool                      `json:"ContentIsValid"   yaml:"ContentIsValid"`
	ValidationErrors []TemplateValidationError `json:"ValidationErrors" yaml:"ValidationErrors"`
	RenderedContent  string                    `json:"RenderedContent"  yaml:"RenderedContent"`
}

// TemplateValidation is the response of Templates().Validate.
type TemplateValidation struct {
	AllContentIsValid      bool                     `json:"AllContentIsValid"      yaml:"AllContentIsValid"`
	HTMLBody               TemplateValidationResult `json:"HtmlBody"               yaml:"HtmlBody"`
	TextBody               TemplateValidationResult `json:"TextBody"               yaml:"TextBody"`
	Subject                TemplateValidationResult `json:"Subject"                yaml:"Subject"`
	SuggestedTemplateModel map[string]interface{}   `json:"SuggestedTemplateModel" yaml:"SuggestedTemplateModel"`
}

// TemplatePushRequest copies templates between two servers of an account.
type TemplatePushRequest struct {
	SourceServerID      int  `json:"SourceServerID"      yaml:"SourceServerID"`
	DestinationServerID int  `json:"DestinationServerID" yaml:"DestinationServerID"`
	PerformChanges      bool `json:"PerformChanges"      yaml:"PerformChanges"`
}

// TemplatePushAction describes what a push did, or would do, to one template.
type TemplatePushAction struct {
	Action       string `json:"Action"       yaml:"Action"`
	TemplateID   int    `json:"TemplateId"   yaml:"TemplateId"`
	Alias        string `json:"Alias"        yaml:"Alias"`
	Name         string `json:"Name"         yaml:"Name"`
	TemplateType string `json:"TemplateType" yaml:"TemplateType"`
}

// TemplatePushResult is the response of an account template push.
type TemplatePushResult struct {
	TotalCount int                  `json:"TotalCount" yaml:"TotalCount"`
	Templates  []TemplatePushAction `json:"Templates"  yaml:"Templates"`
}
