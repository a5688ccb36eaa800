// aykutspohr | 2026
// dto.go

package portfolio

// ListProjectsParams collects the recognized query filters.
type ListProjectsParams struct {
	Category   string `json:"category"`
	Technology string `json:"technology"`
	Search     string `json:"search"`
	Featured   bool   `json:"featured"`
	Recent     bool   `json:"recent"`
}

type ProjectListResponse struct {
	Projects []Project `json:"projects"`
	Total    int       `json:"total"`
}

type CategoryInfo struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
	Count int      `json:"count"`
}

type CategoryListResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

type TechnologyListResponse struct {
	Technologies []string `json:"technologies"`
}
