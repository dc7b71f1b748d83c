package echoapi

import (
	"github.com/go-playground/validator/v10"

	"eduquest/core"
	"eduquest/core/nav"
	"eduquest/core/school"
)

type LoginRequest struct {
	Role     string `json:"role" validate:"required,oneof=ADMIN TEACHER"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate(validate *validator.Validate) error {
	r.Role = core.CleanString(r.Role)
	// keep the submitted case: the admin pair matches exactly, and the
	// teacher lookup ignores case on its own
	r.Email = core.CleanString(r.Email)
	return validate.Struct(r)
}

type LoginResponse struct {
	Token    string          `json:"token"`
	User     school.Identity `json:"user"`
	Redirect string          `json:"redirect"`
}

type SuccessResponse struct {
	Success string `json:"success"`
}

type ViewResponse struct {
	Path string   `json:"path"`
	View nav.View `json:"view"`
}

type InsightResponse struct {
	Insight string `json:"insight"`
}

// StudentRow decorates a student with its resolved class label for listings.
type StudentRow struct {
	school.Student
	ClassName string `json:"class_name"`
}

// ClassRow decorates a class with its resolved teacher label for listings.
type ClassRow struct {
	school.Class
	TeacherName string `json:"teacher_name"`
}

type DraftCommentRequest struct {
	StudentID string `json:"student_id" validate:"required"`
	Grade     int    `json:"grade" validate:"required,min=1,max=5"`
}

func (r *DraftCommentRequest) Validate(validate *validator.Validate) error {
	r.StudentID = core.CleanString(r.StudentID)
	return validate.Struct(r)
}

type DraftCommentResponse struct {
	Comment string `json:"comment"`
}

type PortalResponse struct {
	User    school.Identity `json:"user"`
	Subject string          `json:"subject"`
	Today   string          `json:"today"`
	Classes []school.Class  `json:"classes"`
	Roster  []StudentRow    `json:"roster"`
}
