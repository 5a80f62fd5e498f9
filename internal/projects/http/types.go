package http

// Request payloads for the project endpoints. Responses reuse the
// domain types directly; their json tags are the wire format.

type createProjectReq struct {
	Name            string `json:"name"`
	Industry        string `json:"industry"`
	BusinessProblem string `json:"business_problem"`
	Goals           string `json:"goals"`
	Stakeholders    string `json:"stakeholders"`
	Timelines       string `json:"timelines"`
}

type generateReq struct {
	DocumentIDs []string `json:"document_ids"`
	// Refresh is accepted for wire compatibility; every generate call
	// already produces a fresh version.
	Refresh bool `json:"refresh"`
}

type exportReq struct {
	VersionID    string `json:"version_id"`
	ExportFormat string `json:"export_format"`
}

type jiraPushReq struct {
	ProjectID string `json:"project_id"`
}

// documentMetadata is the upload response item: the stored record with
// a preview instead of the full extracted text.
type documentMetadata struct {
	ID          string            `json:"id"`
	Filename    string            `json:"filename"`
	ContentType string            `json:"content_type"`
	TextPreview string            `json:"text_preview"`
	Metadata    map[string]string `json:"metadata"`
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) > 500 {
		runes = runes[:500]
	}
	return string(runes)
}
