package dto

// CreateSkillRequest represents the request payload for creating a skill
type CreateSkillRequest struct {
	Category string `json:"category" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Level    int    `json:"level"`
	Icon     string `json:"icon"`
	Visible  *bool  `json:"visible"`
	Order    *int   `json:"order"`
}

// UpdateSkillRequest represents a partial update of a skill
type UpdateSkillRequest struct {
	Category *string `json:"category"`
	Name     *string `json:"name"`
	Level    *int    `json:"level"`
	Icon     *string `json:"icon"`
	Visible  *bool   `json:"visible"`
	Order    *int    `json:"order"`
}
