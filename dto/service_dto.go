package dto

// CreateServiceRequest represents the request payload for creating a service offering
type CreateServiceRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Icon        string   `json:"icon"`
	Features    []string `json:"features"`
	Visible     *bool    `json:"visible"`
	Order       *int     `json:"order"`
}

// UpdateServiceRequest represents a partial update of a service offering
type UpdateServiceRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Icon        *string   `json:"icon"`
	Features    *[]string `json:"features"`
	Visible     *bool     `json:"visible"`
	Order       *int      `json:"order"`
}
