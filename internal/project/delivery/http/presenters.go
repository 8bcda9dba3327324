package http

import (
	"time"

	"taskflow/internal/project"
)

// --- Request DTOs ---

type createReq struct {
	Name  string `json:"name"  binding:"required,min=1,max=255"`
	Color string `json:"color" binding:"max=32"`
}

func (r createReq) toInput() project.CreateProjectInput {
	return project.CreateProjectInput{
		Name:  r.Name,
		Color: r.Color,
	}
}

// --- Response DTOs ---

type projectResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

func newProjectResp(p project.Project) projectResp {
	return projectResp{
		ID:        p.ID,
		Name:      p.Name,
		Color:     p.Color,
		CreatedAt: p.CreatedAt,
	}
}

type createResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newCreateResp(out project.CreateProjectOutput) createResp {
	return createResp{Project: newProjectResp(out.Project)}
}

type listResp struct {
	Projects []projectResp `json:"projects"`
	Total    int           `json:"total"`
}

func (h *handler) newListResp(out project.ListProjectsOutput) listResp {
	projects := make([]projectResp, len(out.Projects))
	for i, p := range out.Projects {
		projects[i] = newProjectResp(p)
	}
	return listResp{Projects: projects, Total: len(projects)}
}

type detailResp struct {
	Project projectResp `json:"project"`
}

func (h *handler) newDetailResp(out project.DetailProjectOutput) detailResp {
	return detailResp{Project: newProjectResp(out.Project)}
}
