package classifier

import "github.com/cecoladevelopment/site-backend/internal/models"

// GeneratedText classifies model output. Generated answers mostly describe
// the offered service, so the assessment pitch is checked first.
var GeneratedText = Table{
	Name: "generated-text",
	Rules: []Rule{
		{Keywords: []string{"audit", "assessment", "free"}, Section: models.SectionContact},
		{Keywords: []string{"cost", "waste", "saving", "license"}, Section: models.SectionCalculator},
		{Keywords: []string{"training", "adoption", "team"}, Section: models.SectionHow},
		{Keywords: []string{"workflow", "sop", "process"}, Section: models.SectionSolution},
		{Keywords: []string{"procore", "implement", "platform"}, Section: models.SectionSolution},
		{Keywords: []string{"dashboard", "report", "data"}, Section: models.SectionSolution},
	},
	Default: Rule{Section: models.SectionSolution},
}

// Canned answers used when no text could be generated.
const (
	ResponseLicenseWaste = "Sounds like you're overpaying for software. Our audit typically finds $50K-$500K in annual waste. We'll identify every license you're paying for and show you exactly what to cut. Most contractors save 30-40% immediately."

	ResponseImplementation = "We specialize in Procore implementation and optimization. Our team is Procore-certified and has set up systems for contractors of all sizes—from $10M to $500M+ revenue. We'll configure it correctly, train your teams, and ensure adoption."

	ResponseAdoption = "Tool resistance is common when systems aren't set up for how construction teams actually work. We create role-specific training for PMs, PEs, Supers, and field crews—plus follow-up at 30/60/90 days. Our adoption rates typically hit 90%+ within 90 days."

	ResponseProcess = "Process issues create major waste and errors. We'll map your current workflows, identify where information gets lost, create SOPs that work in the real world, and train both office and field teams. Most see 70% reduction in rework."

	ResponseDashboards = "Real-time visibility is critical for staying on budget. We can set up job cost dashboards, WIP reports, and KPIs that show exactly where you stand on every project. Get alerts when costs start trending over budget."

	ResponseGeneric = "Let's figure out exactly what you need. Our free 2-week assessment will identify your biggest opportunities to save money and improve efficiency—no obligation, just actionable insights."
)

// RawQuery classifies the visitor's own words. Queries describe symptoms,
// so cost complaints are checked first and unmatched text goes to contact.
var RawQuery = Table{
	Name: "raw-query",
	Rules: []Rule{
		{
			Keywords: []string{"cost", "expensive", "waste", "subscription", "license"},
			Section:  models.SectionCalculator,
			Response: ResponseLicenseWaste,
		},
		{
			Keywords: []string{"procore", "implement", "setup", "buildingconnected"},
			Section:  models.SectionSolution,
			Response: ResponseImplementation,
		},
		{
			Keywords: []string{"training", "adoption", "won't use", "resistance", "team"},
			Section:  models.SectionHow,
			Response: ResponseAdoption,
		},
		{
			Keywords: []string{"workflow", "process", "sop", "handoff", "estimate", "bid"},
			Section:  models.SectionSolution,
			Response: ResponseProcess,
		},
		{
			Keywords: []string{"dashboard", "report", "data", "job cost", "wip"},
			Section:  models.SectionSolution,
			Response: ResponseDashboards,
		},
	},
	Default: Rule{Section: models.SectionContact, Response: ResponseGeneric},
}
