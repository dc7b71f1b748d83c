package school

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"eduquest/core"
)

var (
	// ErrNotFound is returned by repositories when a record id does not exist.
	ErrNotFound = errors.New("record not found")
)

type (
	TeacherRepository interface {
		CreateTeacher(t Teacher) (Teacher, error)
		// QueryAllTeachers returns teachers in insertion order.
		QueryAllTeachers() ([]Teacher, error)
		GetTeacherByID(id string) (Teacher, error)
		// GetTeacherByEmail matches case-insensitively.
		GetTeacherByEmail(email string) (Teacher, error)
		// UpdateTeacher merges set (non-blank) fields into the stored record.
		UpdateTeacher(t Teacher) (Teacher, error)
		DeleteTeacherByID(id string) error
	}

	StudentRepository interface {
		CreateStudent(s Student) (Student, error)
		QueryAllStudents() ([]Student, error)
		GetStudentByID(id string) (Student, error)
		// UpdateStudent merges set fields; classID replaces the class
		// assignment when non-nil.
		UpdateStudent(s Student, classID *string) (Student, error)
		DeleteStudentByID(id string) error
	}

	ClassRepository interface {
		CreateClass(c Class) (Class, error)
		QueryAllClasses() ([]Class, error)
		GetClassByID(id string) (Class, error)
		UpdateClass(c Class, teacherID *string) (Class, error)
		DeleteClassByID(id string) error
	}

	// Service funnels every entity-store mutation through named commands.
	Service struct {
		teachers TeacherRepository
		students StudentRepository
		classes  ClassRepository
	}
)

func NewService(teachers TeacherRepository, students StudentRepository, classes ClassRepository) *Service {
	return &Service{
		teachers: teachers,
		students: students,
		classes:  classes,
	}
}

// newID mints a collision-free random record id.
func newID() string { return uuid.New().String() }

// Teachers

func (svc *Service) CreateTeacher(nt NewTeacher) (Teacher, error) {
	now := time.Now().UTC()
	t := Teacher{
		ID:        newID(),
		Name:      nt.Name,
		Email:     nt.Email,
		Role:      RoleTeacher,
		Status:    StatusActive,
		Subject:   nt.Subject,
		Password:  nt.Password,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return svc.teachers.CreateTeacher(t)
}

func (svc *Service) Teachers() ([]Teacher, error) {
	return svc.teachers.QueryAllTeachers()
}

func (svc *Service) GetTeacherByID(id string) (Teacher, error) {
	return svc.teachers.GetTeacherByID(id)
}

func (svc *Service) GetTeacherByEmail(email string) (Teacher, error) {
	return svc.teachers.GetTeacherByEmail(core.CleanString(email, true /* lower */))
}

// UpdateTeacher merges the set fields of `ut` into the stored record.
// A missing id is a no-op.
func (svc *Service) UpdateTeacher(id string, ut UpdateTeacher) (Teacher, error) {
	t := Teacher{
		ID:        id,
		Name:      ut.Name,
		Email:     ut.Email,
		Subject:   ut.Subject,
		Password:  ut.Password,
		Status:    ut.Status,
		UpdatedAt: time.Now().UTC(),
	}
	updated, err := svc.teachers.UpdateTeacher(t)
	if errors.Is(err, ErrNotFound) {
		return Teacher{}, nil
	}
	return updated, err
}

// DeleteTeacher removes the record. A missing id is a no-op; classes keep
// their (now dangling) teacher reference.
func (svc *Service) DeleteTeacher(id string) error {
	if err := svc.teachers.DeleteTeacherByID(id); !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// Students

func (svc *Service) CreateStudent(ns NewStudent) (Student, error) {
	now := time.Now().UTC()
	s := Student{
		ID:         newID(),
		Name:       ns.Name,
		ClassID:    ns.ClassID,
		RollNumber: ns.RollNumber,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return svc.students.CreateStudent(s)
}

func (svc *Service) Students() ([]Student, error) {
	return svc.students.QueryAllStudents()
}

func (svc *Service) GetStudentByID(id string) (Student, error) {
	return svc.students.GetStudentByID(id)
}

func (svc *Service) UpdateStudent(id string, us UpdateStudent) (Student, error) {
	s := Student{
		ID:         id,
		Name:       us.Name,
		RollNumber: us.RollNumber,
		UpdatedAt:  time.Now().UTC(),
	}
	updated, err := svc.students.UpdateStudent(s, us.ClassID)
	if errors.Is(err, ErrNotFound) {
		return Student{}, nil
	}
	return updated, err
}

func (svc *Service) DeleteStudent(id string) error {
	if err := svc.students.DeleteStudentByID(id); !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// Classes

func (svc *Service) CreateClass(nc NewClass) (Class, error) {
	now := time.Now().UTC()
	c := Class{
		ID:         newID(),
		Name:       nc.Name,
		TeacherID:  nc.TeacherID,
		GradeLevel: nc.GradeLevel,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return svc.classes.CreateClass(c)
}

func (svc *Service) Classes() ([]Class, error) {
	return svc.classes.QueryAllClasses()
}

func (svc *Service) GetClassByID(id string) (Class, error) {
	return svc.classes.GetClassByID(id)
}

func (svc *Service) UpdateClass(id string, uc UpdateClass) (Class, error) {
	c := Class{
		ID:         id,
		Name:       uc.Name,
		GradeLevel: uc.GradeLevel,
		UpdatedAt:  time.Now().UTC(),
	}
	updated, err := svc.classes.UpdateClass(c, uc.TeacherID)
	if errors.Is(err, ErrNotFound) {
		return Class{}, nil
	}
	return updated, err
}

// DeleteClass removes the record. Students assigned to it keep their (now
// dangling) class reference and resolve to the Unassigned placeholder.
func (svc *Service) DeleteClass(id string) error {
	if err := svc.classes.DeleteClassByID(id); !errors.Is(err, ErrNotFound) {
		return err
	}
	return nil
}

// Display resolvers
//
// Foreign keys are weak references: a dangling or empty id resolves to a
// placeholder label, never an error.

func (svc *Service) ResolveClassName(classID string) string {
	if classID == "" {
		return UnassignedClass
	}
	c, err := svc.classes.GetClassByID(classID)
	if err != nil {
		return UnassignedClass
	}
	return c.Name
}

func (svc *Service) ResolveTeacherName(teacherID string) string {
	if teacherID == "" {
		return NoTeacher
	}
	t, err := svc.teachers.GetTeacherByID(teacherID)
	if err != nil {
		return NoTeacher
	}
	return t.Name
}

// Overview

type PerformancePoint struct {
	Name    string  `json:"name"`
	Average float64 `json:"average"`
}

// PerformanceSeries is the fixed per-grade average series shown on the
// admin overview and fed to the stats insight call.
var PerformanceSeries = []PerformancePoint{
	{Name: "Grade 9", Average: 4.2},
	{Name: "Grade 10", Average: 3.8},
	{Name: "Grade 11", Average: 4.5},
	{Name: "Grade 12", Average: 4.1},
}

type OverviewStats struct {
	TotalTeachers int                `json:"total_teachers"`
	TotalStudents int                `json:"total_students"`
	TotalClasses  int                `json:"total_classes"`
	AvgAttendance string             `json:"avg_attendance"`
	Performance   []PerformancePoint `json:"performance"`
}

func (svc *Service) Overview() (OverviewStats, error) {
	teachers, err := svc.teachers.QueryAllTeachers()
	if err != nil {
		return OverviewStats{}, err
	}
	students, err := svc.students.QueryAllStudents()
	if err != nil {
		return OverviewStats{}, err
	}
	classes, err := svc.classes.QueryAllClasses()
	if err != nil {
		return OverviewStats{}, err
	}
	return OverviewStats{
		TotalTeachers: len(teachers),
		TotalStudents: len(students),
		TotalClasses:  len(classes),
		AvgAttendance: "94.2%",
		Performance:   PerformanceSeries,
	}, nil
}
