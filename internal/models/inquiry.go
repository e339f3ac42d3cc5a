package models

// Section names the area of the static site a visitor should be sent to next.
type Section string

const (
	SectionContact    Section = "contact"
	SectionCalculator Section = "calculator"
	SectionHow        Section = "how"
	SectionSolution   Section = "solution"
)

// Label is the text shown on the secondary call-to-action for the section.
func (s Section) Label() string {
	switch s {
	case SectionSolution:
		return "See Solutions"
	case SectionCalculator:
		return "See Calculator"
	case SectionHow:
		return "See How We Work"
	default:
		return "See Details"
	}
}

// Anchor is the in-page link target for the section.
func (s Section) Anchor() string {
	return "#" + string(s)
}

type Action struct {
	Text string `json:"text"`
	Link string `json:"link"`
}

type CTA struct {
	Primary   Action `json:"primary"`
	Secondary Action `json:"secondary"`
}

// NewCTA builds the call-to-action pair for a resolved section. The primary
// action always points at the free assessment form.
func NewCTA(section Section) CTA {
	return CTA{
		Primary: Action{
			Text: "Get the Free Assessment",
			Link: "#contact",
		},
		Secondary: Action{
			Text: section.Label(),
			Link: section.Anchor(),
		},
	}
}

type InquiryRequest struct {
	Query string `json:"query" form:"query"`
}

type InquiryResponse struct {
	Success  bool    `json:"success"`
	Response string  `json:"response"`
	Section  Section `json:"section"`
	CTA      CTA     `json:"cta"`
	Fallback bool    `json:"fallback,omitempty"`
}
