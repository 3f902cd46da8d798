package dto

// CreateExperienceRequest represents the request payload for creating a
// work experience entry. Dates arrive as strings and are parsed server-side.
type CreateExperienceRequest struct {
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Visible     *bool  `json:"visible"`
	Order       *int   `json:"order"`
}

// UpdateExperienceRequest represents a partial update of an experience entry
type UpdateExperienceRequest struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Current     *bool   `json:"current"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Type        *string `json:"type"`
	Visible     *bool   `json:"visible"`
	Order       *int    `json:"order"`
}
