// Package export renders a version's BRD markdown into downloadable
// office formats. Nothing is cached: every call re-renders.
package export

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/brd-studio/brd-backend/internal/projects/domain"
	"github.com/brd-studio/brd-backend/internal/projects/repository"
)

const (
	FormatDocx = "docx"
	FormatPDF  = "pdf"

	contentTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	contentTypePDF  = "application/pdf"
)

// Artifact is one rendered export.
type Artifact struct {
	Data        []byte
	ContentType string
	Filename    string
}

// Render converts BRD markdown into the requested format.
func Render(brdMarkdown, format string) ([]byte, string, error) {
	switch format {
	case FormatDocx:
		data, err := renderDocx(brdMarkdown)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", domain.ErrRender, err)
		}
		return data, contentTypeDocx, nil
	case FormatPDF:
		data, err := renderPDF(brdMarkdown)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %v", domain.ErrRender, err)
		}
		return data, contentTypePDF, nil
	default:
		return nil, "", fmt.Errorf("%w: unsupported export format %q", domain.ErrValidation, format)
	}
}

// Service is the export orchestrator: version lookup plus rendering.
type Service struct {
	projects repository.ProjectRepository
}

// NewService creates an export service.
func NewService(projects repository.ProjectRepository) *Service {
	return &Service{projects: projects}
}

// Export renders one version of a project. An empty versionID selects
// the latest version; an unknown explicit id is a NotFound even when
// other versions exist.
func (s *Service) Export(ctx context.Context, projectID, versionID, format string) (*Artifact, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	var version *domain.Version
	if versionID != "" {
		v, ok := project.Version(versionID)
		if !ok {
			return nil, fmt.Errorf("version %s: %w", versionID, domain.ErrVersionNotFound)
		}
		version = v
	} else {
		v, ok := project.LatestVersion()
		if !ok {
			return nil, domain.ErrNoVersions
		}
		version = v
	}

	data, contentType, err := Render(version.BRDMarkdown, format)
	if err != nil {
		return nil, err
	}

	log.Printf("[info] operation=export project_id=%s version_id=%s format=%s bytes=%d",
		project.ID, version.ID, format, len(data))
	return &Artifact{
		Data:        data,
		ContentType: contentType,
		Filename:    fmt.Sprintf("%s_BRD.%s", strings.ReplaceAll(project.Name, " ", "_"), format),
	}, nil
}
