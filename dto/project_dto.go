package dto

// ProjectImageInput represents one gallery image supplied with a project
type ProjectImageInput struct {
	URL   string `json:"url" binding:"required"`
	Alt   string `json:"alt"`
	Order *int   `json:"order"`
}

// CreateProjectRequest represents the request payload for creating a project
type CreateProjectRequest struct {
	Slug         string              `json:"slug" binding:"required"`
	Title        string              `json:"title" binding:"required"`
	Category     string              `json:"category"`
	Description  string              `json:"description"`
	ShortDesc    string              `json:"shortDesc"`
	Thumbnail    string              `json:"thumbnail"`
	VideoURL     string              `json:"videoUrl"`
	DemoURL      string              `json:"demoUrl"`
	GithubURL    string              `json:"githubUrl"`
	Year         int                 `json:"year"`
	Duration     string              `json:"duration"`
	Problem      string              `json:"problem"`
	Solution     string              `json:"solution"`
	Process      string              `json:"process"`
	Learnings    string              `json:"learnings"`
	Technologies []string            `json:"technologies"`
	Tags         []string            `json:"tags"`
	Featured     bool                `json:"featured"`
	Published    bool                `json:"published"`
	Visible      *bool               `json:"visible"`
	Order        *int                `json:"order"`
	Images       []ProjectImageInput `json:"images"`
}

// UpdateProjectRequest represents a partial update of a project.
// Absent fields are left unchanged, never nulled.
type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Category     *string   `json:"category"`
	Description  *string   `json:"description"`
	ShortDesc    *string   `json:"shortDesc"`
	Thumbnail    *string   `json:"thumbnail"`
	VideoURL     *string   `json:"videoUrl"`
	DemoURL      *string   `json:"demoUrl"`
	GithubURL    *string   `json:"githubUrl"`
	Year         *int      `json:"year"`
	Duration     *string   `json:"duration"`
	Problem      *string   `json:"problem"`
	Solution     *string   `json:"solution"`
	Process      *string   `json:"process"`
	Learnings    *string   `json:"learnings"`
	Technologies *[]string `json:"technologies"`
	Tags         *[]string `json:"tags"`
	Featured     *bool     `json:"featured"`
	Published    *bool     `json:"published"`
	Visible      *bool     `json:"visible"`
	Order        *int      `json:"order"`
}

// PublicProjectFilter narrows the public project feed
type PublicProjectFilter struct {
	Category string
	Featured *bool
}
