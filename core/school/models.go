package school

import (
	"time"

	"github.com/go-playground/validator/v10"

	"eduquest/core"
)

// Roles
const (
	RoleAdmin   = "ADMIN"
	RoleTeacher = "TEACHER"
	RolePublic  = "PUBLIC"
)

// Teacher account statuses
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Display placeholders for dangling foreign keys.
const (
	UnassignedClass = "Unassigned"
	NoTeacher       = "None"
)

// Subjects is the fixed catalogue a teacher may be assigned to.
var Subjects = []string{
	"Mathematics",
	"Science",
	"Physics",
	"Chemistry",
	"Biology",
	"History",
	"Geography",
	"English Literature",
	"Computer Science",
	"Arts",
	"Physical Education",
}

type Teacher struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	Subject   string    `json:"subject"`
	Password  string    `json:"-"` // plaintext mock credential, kept for login parity
	CreatedAt time.Time `json:"created_at"` // UTC
	UpdatedAt time.Time `json:"updated_at"` // UTC
}

func (t *Teacher) IsActive() bool { return t.Status == StatusActive }

type Student struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ClassID    string    `json:"class_id"` // weak reference, may dangle
	RollNumber string    `json:"roll_number"`
	CreatedAt  time.Time `json:"created_at"` // UTC
	UpdatedAt  time.Time `json:"updated_at"` // UTC
}

type Class struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	TeacherID  string    `json:"teacher_id"` // weak reference, may dangle
	GradeLevel string    `json:"grade_level"`
	CreatedAt  time.Time `json:"created_at"` // UTC
	UpdatedAt  time.Time `json:"updated_at"` // UTC
}

// Grade is a wire-only record: the grading portal acknowledges submissions
// without persisting them.
type Grade struct {
	StudentID string `json:"student_id" validate:"required"`
	Subject   string `json:"subject"`
	Value     int    `json:"value" validate:"required,min=1,max=5"`
	Date      string `json:"date"`
	Comment   string `json:"comment"`
}

// Identity is the authenticated account attached to a session. The admin
// identity comes from static config; teacher identities come from the store.
type Identity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Status  string `json:"status,omitempty"`
	Subject string `json:"subject,omitempty"`
}

func (t Teacher) Identity() Identity {
	return Identity{
		ID:      t.ID,
		Name:    t.Name,
		Email:   t.Email,
		Role:    t.Role,
		Status:  t.Status,
		Subject: t.Subject,
	}
}

// NewTeacher contains information needed to create a new Teacher.
type NewTeacher struct {
	Name     string `json:"name" validate:"required"`
	Subject  string `json:"subject" validate:"required,subject"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (nt *NewTeacher) Validate(validate *validator.Validate) error {
	nt.Name = core.CleanString(nt.Name)
	nt.Subject = core.CleanString(nt.Subject)
	nt.Email = core.CleanString(nt.Email, true /* lower */)
	return validate.Struct(nt)
}

// UpdateTeacher defines what information may be provided to modify an
// existing Teacher. Blank fields retain the stored values; a blank password
// keeps the current one.
type UpdateTeacher struct {
	Name     string `json:"name"`
	Subject  string `json:"subject" validate:"omitempty,subject"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
	Status   string `json:"status" validate:"omitempty,entstatus"`
}

func (ut *UpdateTeacher) Validate(validate *validator.Validate) error {
	ut.Name = core.CleanString(ut.Name)
	ut.Subject = core.CleanString(ut.Subject)
	ut.Email = core.CleanString(ut.Email, true /* lower */)
	ut.Status = core.CleanString(ut.Status)
	return validate.Struct(ut)
}

// NewStudent contains information needed to create a new Student.
type NewStudent struct {
	Name       string `json:"name" validate:"required"`
	RollNumber string `json:"roll_number" validate:"required"`
	ClassID    string `json:"class_id"`
}

func (ns *NewStudent) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.RollNumber = core.CleanString(ns.RollNumber)
	ns.ClassID = core.CleanString(ns.ClassID)
	return validate.Struct(ns)
}

// UpdateStudent defines what information may be provided to modify an
// existing Student. A nil ClassID keeps the current assignment; a pointer to
// the empty string unassigns it.
type UpdateStudent struct {
	Name       string  `json:"name"`
	RollNumber string  `json:"roll_number"`
	ClassID    *string `json:"class_id"`
}

func (us *UpdateStudent) Validate(validate *validator.Validate) error {
	us.Name = core.CleanString(us.Name)
	us.RollNumber = core.CleanString(us.RollNumber)
	if us.ClassID != nil {
		cleaned := core.CleanString(*us.ClassID)
		us.ClassID = &cleaned
	}
	return validate.Struct(us)
}

// NewClass contains information needed to create a new Class.
type NewClass struct {
	Name       string `json:"name" validate:"required"`
	GradeLevel string `json:"grade_level" validate:"required"`
	TeacherID  string `json:"teacher_id"`
}

func (nc *NewClass) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.GradeLevel = core.CleanString(nc.GradeLevel)
	nc.TeacherID = core.CleanString(nc.TeacherID)
	return validate.Struct(nc)
}

// UpdateClass defines what information may be provided to modify an existing
// Class. A nil TeacherID keeps the current assignment.
type UpdateClass struct {
	Name       string  `json:"name"`
	GradeLevel string  `json:"grade_level"`
	TeacherID  *string `json:"teacher_id"`
}

func (uc *UpdateClass) Validate(validate *validator.Validate) error {
	uc.Name = core.CleanString(uc.Name)
	uc.GradeLevel = core.CleanString(uc.GradeLevel)
	if uc.TeacherID != nil {
		cleaned := core.CleanString(*uc.TeacherID)
		uc.TeacherID = &cleaned
	}
	return validate.Struct(uc)
}
