package domain

import "time"

// MoSCoW priority labels. PriorityMatrix entries never use anything else.
const (
	PriorityMust   = "Must"
	PriorityShould = "Should"
	PriorityCould  = "Could"
	PriorityWont   = "Won't"
)

// MoSCoWCategories is the rotation order used when a requirement line
// carries no priority keyword of its own.
var MoSCoWCategories = []string{PriorityMust, PriorityShould, PriorityCould, PriorityWont}

// Document is an uploaded reference file with its extracted text.
// Documents are immutable once saved and referenced from projects by id.
type Document struct {
	ID          string            `json:"id"`
	Filename    string            `json:"filename"`
	ContentType string            `json:"content_type"`
	Text        string            `json:"text"`
	Metadata    map[string]string `json:"metadata"`
}

// GapAnalysis lists what the generated BRD still leaves open.
// Both slices are always non-nil, possibly empty.
type GapAnalysis struct {
	MissingInformation  []string `json:"missing_information"`
	ClarifyingQuestions []string `json:"clarifying_questions"`
}

// StakeholderSummaries holds the three audience-specific digests of a BRD.
type StakeholderSummaries struct {
	Executives    string `json:"executives"`
	TechnicalTeam string `json:"technical_team"`
	NonTechnical  string `json:"non_technical"`
}

// PriorityEntry pairs a requirement line with its MoSCoW label.
type PriorityEntry struct {
	Requirement string `json:"requirement"`
	Priority    string `json:"priority"`
}

// Version is an immutable snapshot of one BRD generation run.
type Version struct {
	ID                   string               `json:"id"`
	CreatedAt            time.Time            `json:"created_at"`
	BRDMarkdown          string               `json:"brd_markdown"`
	MermaidDiagram       string               `json:"mermaid_diagram"`
	GapAnalysis          GapAnalysis          `json:"gap_analysis"`
	StakeholderSummaries StakeholderSummaries `json:"stakeholder_summaries"`
	PriorityMatrix       []PriorityEntry      `json:"priority_matrix"`
}

// Intake carries the analyst-supplied project fields, both at creation
// time and as the prompt context for generation.
type Intake struct {
	Name            string `json:"name"`
	Industry        string `json:"industry"`
	BusinessProblem string `json:"business_problem"`
	Goals           string `json:"goals"`
	Stakeholders    string `json:"stakeholders"`
	Timelines       string `json:"timelines"`
}

// Project owns an append-only version history. Versions[0] is the most
// recent; older versions follow. Versions are never edited or removed.
type Project struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Industry        string    `json:"industry"`
	BusinessProblem string    `json:"business_problem"`
	Goals           string    `json:"goals"`
	Stakeholders    string    `json:"stakeholders"`
	Timelines       string    `json:"timelines"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	DocumentIDs     []string  `json:"document_ids"`
	Versions        []Version `json:"versions"`
}

// Intake returns the project's prompt-facing fields.
func (p *Project) Intake() Intake {
	return Intake{
		Name:            p.Name,
		Industry:        p.Industry,
		BusinessProblem: p.BusinessProblem,
		Goals:           p.Goals,
		Stakeholders:    p.Stakeholders,
		Timelines:       p.Timelines,
	}
}

// AddVersion prepends a version and touches the update timestamp.
func (p *Project) AddVersion(v Version) {
	p.Versions = append([]Version{v}, p.Versions...)
	p.UpdatedAt = v.CreatedAt
}

// AddDocument attaches a document id if it is not already attached.
func (p *Project) AddDocument(documentID string) {
	for _, id := range p.DocumentIDs {
		if id == documentID {
			return
		}
	}
	p.DocumentIDs = append(p.DocumentIDs, documentID)
}

// Version looks up a version by id.
func (p *Project) Version(versionID string) (*Version, bool) {
	for i := range p.Versions {
		if p.Versions[i].ID == versionID {
			return &p.Versions[i], true
		}
	}
	return nil, false
}

// LatestVersion returns the most recent version, if any.
func (p *Project) LatestVersion() (*Version, bool) {
	if len(p.Versions) == 0 {
		return nil, false
	}
	return &p.Versions[0], true
}
