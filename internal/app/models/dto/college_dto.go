package dto

import (
	"strings"

	"github.com/yigit/registrar/internal/app/models"
)

// CollegeRequest is the body of college create and update requests.
type CollegeRequest struct {
	CollegeCode string `json:"collegeCode" binding:"required,max=10" example:"CCS"`
	CollegeName string `json:"collegeName" binding:"required,max=100" example:"College of Computer Studies"`
}

// ToModel converts the request into a trimmed College.
func (r CollegeRequest) ToModel() *models.College {
	return &models.College{
		CollegeCode: strings.TrimSpace(r.CollegeCode),
		CollegeName: strings.TrimSpace(r.CollegeName),
	}
}
