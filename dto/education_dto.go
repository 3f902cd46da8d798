package dto

// CreateEducationRequest represents the request payload for creating an
// education entry. Dates arrive as strings and are parsed server-side.
type CreateEducationRequest struct {
	School       string   `json:"school" binding:"required"`
	Degree       string   `json:"degree" binding:"required"`
	Field        string   `json:"field"`
	StartDate    string   `json:"startDate" binding:"required"`
	EndDate      string   `json:"endDate"`
	Current      bool     `json:"current"`
	GPA          string   `json:"gpa"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Achievements []string `json:"achievements"`
	Visible      *bool    `json:"visible"`
	Order        *int     `json:"order"`
}

// UpdateEducationRequest represents a partial update of an education entry
type UpdateEducationRequest struct {
	School       *string   `json:"school"`
	Degree       *string   `json:"degree"`
	Field        *string   `json:"field"`
	StartDate    *string   `json:"startDate"`
	EndDate      *string   `json:"endDate"`
	Current      *bool     `json:"current"`
	GPA          *string   `json:"gpa"`
	Description  *string   `json:"description"`
	Location     *string   `json:"location"`
	Achievements *[]string `json:"achievements"`
	Visible      *bool     `json:"visible"`
	Order        *int      `json:"order"`
}
