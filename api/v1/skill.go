package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/dto"
	"portfolio-backend/services"
	"portfolio-backend/utils"
)

var skillService = services.NewSkillService()

// ListSkills lists all skills for the admin view
func ListSkills(c *gin.Context) {
	skills, err := skillService.ListAdmin(c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": skills})
}

// CreateSkill creates a skill
func CreateSkill(c *gin.Context) {
	var req dto.CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "category and name are required"})
		return
	}

	skill, err := skillService.Create(req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": skill})
}

// GetSkill retrieves a skill by ID
func GetSkill(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	skill, err := skillService.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": skill})
}

// UpdateSkill partially updates a skill
func UpdateSkill(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid request body"})
		return
	}

	skill, err := skillService.Update(id, req, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": skill})
}

// DeleteSkill deletes a skill
func DeleteSkill(c *gin.Context) {
	id, ok := requireParam(c, "id")
	if !ok {
		return
	}

	if err := skillService.Delete(id, currentUserID(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Skill deleted"})
}

// BulkDeleteSkills deletes a set of skills in one operation
func BulkDeleteSkills(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "ids are required"})
		return
	}

	count, err := skillService.BulkDelete(req.IDs, currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.BulkDeleteResponse{Message: "Skills deleted", Count: count})
}

// PublicSkills lists visible skills
func PublicSkills(c *gin.Context) {
	data, err := utils.GetCached("public:skills", func() (interface{}, error) {
		return skillService.ListPublic()
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "data": data})
}
