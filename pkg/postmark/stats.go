package postmark

// OutboundOverview summarises outbound activity for a period.
type OutboundOverview struct {
	Sent                  int     `json:"Sent"                  yaml:"Sent"`
	Bounced               int     `json:"Bounced"               yaml:"Bounced"`
	SMTPAPIErrors         int     `json:"SMTPApiErrors"         yaml:"SMTPApiErrors"`
	BounceRate            float64 `json:"BounceRate"            yaml:"BounceRate"`
	SpamComplaints        int     `json:"SpamComplaints"        yaml:"SpamComplaints"`
	SpamComplaintsRate    float64 `json:"SpamComplaintsRate"    yaml:"SpamComplaintsRate"`
	Opens                 int     `json:"Opens"                 yaml:"Opens"`
	UniqueOpens           int     `json:"UniqueOpens"           yaml:"UniqueOpens"`
	Tracked               int     `json:"Tracked"               yaml:"Tracked"`
	WithClientRecorded    int     `json:"WithClientRecorded"    yaml:"WithClientRecorded"`
	WithPlatformRecorded  int     `json:"WithPlatformRecorded"  yaml:"WithPlatformRecorded"`
	WithReadTimeRecorded  int     `json:"WithReadTimeRecorded"  yaml:"WithReadTimeRecorded"`
	TotalClicks           int     `json:"TotalClicks"           yaml:"TotalClicks"`
	UniqueLinksClicked    int     `json:"UniqueLinksClicked"    yaml:"UniqueLinksClicked"`
	TotalTrackedLinksSent int     `json:"TotalTrackedLinksSent" yaml:"TotalTrackedLinksSent"`
	WithLinkTracking      int     `json:"WithLinkTracking"      yaml:"WithLinkTracking"`
	WithOpenTracking      int     `json:"WithOpenTracking"      yaml:"WithOpenTracking"`
}

// SentCountDay is one day of SentCounts.
type SentCountDay struct {
	Date string `json:"Date" yaml:"Date"`
	Sent int    `json:"Sent" yaml:"Sent"`
}

// SentCounts is the number of sent messages per day.
type SentCounts struct {
	Days []SentCountDay `json:"Days" yaml:"Days"`
	Sent int            `json:"Sent" yaml:"Sent"`
}

// BounceCountDay is one day of BounceCounts.
type BounceCountDay struct {
	Date         string `json:"Date"         yaml:"Date"`
	HardBounce   int    `json:"HardBounce"   yaml:"HardBounce"`
	SoftBounce   int    `json:"SoftBounce"   yaml:"SoftBounce"`
	SMTPAPIError int    `json:"SMTPApiError" yaml:"SMTPApiError"`
	Transient    int    `json:"Transient"    yaml:"Transient"`
}

// BounceCounts is the number of bounces per day, by kind.
type BounceCounts struct {
	Days         []BounceCountDay `json:"Days"         yaml:"Days"`
	HardBounce   int              `json:"HardBounce"   yaml:"HardBounce"`
	SoftBounce   int              `json:"SoftBounce"   yaml:"SoftBounce"`
	SMTPAPIError int              `json:"SMTPApiError" yaml:"SMTPApiError"`
	Transient    int              `json:"Transient"    yaml:"Transient"`
}

// SpamComplaintDay is one day of SpamComplaints.
type SpamComplaintDay struct {
	Date          string `json:"Date"          yaml:"Date"`
	SpamComplaint int    `json:"SpamComplaint" yaml:"SpamComplaint"`
}

// SpamComplaints is the number of spam complaints per day.
type SpamComplaints struct {
	Days          []SpamComplaintDay `json:"Days"          yaml:"Days"`
	SpamComplaint int                `json:"SpamComplaint" yaml:"SpamComplaint"`
}

// TrackedEmailDay is one day of TrackedEmailCounts.
type TrackedEmailDay struct {
	Date    string `json:"Date"    yaml:"Date"`
	Tracked int    `json:"Tracked" yaml:"Tracked"`
}

// TrackedEmailCounts is the number of emails sent with open tracking per day.
type TrackedEmailCounts struct {
	Days    []TrackedEmailDay `json:"Days"    yaml:"Days"`
	Tracked int               `json:"Tracked" yaml:"Tracked"`
}

// OpenCountDay is one day of OpenCounts.
type OpenCountDay struct {
	Date   string `json:"Date"   yaml:"Date"`
	Opens  int    `json:"Opens"  yaml:"Opens"`
	Unique int    `json:"Unique" yaml:"Unique"`
}

// OpenCounts is the number of opens per day.
type OpenCounts struct {
	Days   []OpenCountDay `json:"Days"   yaml:"Days"`
	Opens  int            `json:"Opens"  yaml:"Opens"`
	Unique int            `json:"Unique" yaml:"Unique"`
}

// PlatformUsageDay is one day of PlatformUsage.
type PlatformUsageDay struct {
	Date    string `json:"Date"    yaml:"Date"`
	Desktop int    `json:"Desktop" yaml:"Desktop"`
	Mobile  int    `json:"Mobile"  yaml:"Mobile"`
	Unknown int    `json:"Unknown" yaml:"Unknown"`
	WebMail int    `json:"WebMail" yaml:"WebMail"`
}

// PlatformUsage breaks opens or clicks down by platform.
type PlatformUsage struct {
	Days    []PlatformUsageDay `json:"Days"    yaml:"Days"`
	Desktop int                `json:"Desktop" yaml:"Desktop"`
	Mobile  int                `json:"Mobile"  yaml:"Mobile"`
	Unknown int                `json:"Unknown" yaml:"Unknown"`
	WebMail int                `json:"WebMail" yaml:"WebMail"`
}

// ClickCountDay is one day of ClickCounts.
type ClickCountDay struct {
	Date   string `json:"Date"   yaml:"Date"`
	Clicks int    `json:"Clicks" yaml:"Clicks"`
	Unique int    `json:"Unique" yaml:"Unique"`
}

// ClickCounts is the number of link clicks per day.
type ClickCounts struct {
	Days   []ClickCountDay `json:"Days"   yaml:"Days"`
	Clicks int             `json:"Clicks" yaml:"Clicks"`
	Unique int             `json:"Unique" yaml:"Unique"`
}

// ClickLocationDay is one day of ClickLocation.
type ClickLocationDay struct {
	Date string `json:"Date" yaml:"Date"`
	HTML int    `json:"HTML" yaml:"HTML"`
	Text int    `json:"Text" yaml:"Text"`
}

// ClickLocation splits clicks between HTML and text parts.
type ClickLocation struct {
	Days []ClickLocationDay `json:"Days" yaml:"Days"`
	HTML int                `json:"HTML" yaml:"HTML"`
	Text int                `json:"Text" yaml:"Text"`
}

// DynamicStats holds statistics whose keys depend on the data, such as mail
// client names, browser names or read-time buckets. "Days" holds the daily
// breakdown; every other key is a total.
type DynamicStats map[string]interface{}

// Days returns the daily breakdown, if present.
func (s DynamicStats) Days() []map[string]interface{} {
	raw, ok := s["Days"].([]interface{})
	if !ok {
		return nil
	}

	days := make([]map[string]interface{}, 0, len(raw))

	for _, entry := range raw {
		if day, ok := entry.(map[string]interface{}); ok {
			days = append(days, day)
		}
	}

	return days
}

// Totals returns every key except "Days".
func (s DynamicStats) Totals() map[string]interface{} {
	totals := make(map[string]interface{}, len(s))

	for key, value := range s {
		if key != "Days" {
			totals[key] = value
		}
	}

	return totals
}
