// Package inmemdb keeps the entity collections in process memory. Nothing
// is ever written to disk; the whole store resets with the process.
package inmemdb

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"eduquest/core/school"
)

type (
	DB struct {
		teacher *teacherTable
		student *studentTable
		class   *classTable
	}

	// each table keeps a map for lookups plus the insertion order of ids,
	// so listings come back in the order records were created.
	teacherTable struct {
		sync.RWMutex
		table map[string]*school.Teacher
		order []string
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*school.Student
		order []string
	}

	classTable struct {
		sync.RWMutex
		table map[string]*school.Class
		order []string
	}
)

func Open() (*DB, error) {
	db := &DB{
		teacher: &teacherTable{table: make(map[string]*school.Teacher)},
		student: &studentTable{table: make(map[string]*school.Student)},
		class:   &classTable{table: make(map[string]*school.Class)},
	}
	db.seed()
	return db, nil
}

// seed loads the fixed sample records every session starts with.
func (db *DB) seed() {
	now := time.Now().UTC()

	teacher := func(name, email, password, subject, status string) string {
		id := uuid.New().String()
		db.teacher.table[id] = &school.Teacher{
			ID:        id,
			Name:      name,
			Email:     email,
			Role:      school.RoleTeacher,
			Status:    status,
			Subject:   subject,
			Password:  password,
			CreatedAt: now,
			UpdatedAt: now,
		}
		db.teacher.order = append(db.teacher.order, id)
		return id
	}

	class := func(name, gradeLevel, teacherID string) string {
		id := uuid.New().String()
		db.class.table[id] = &school.Class{
			ID:         id,
			Name:       name,
			TeacherID:  teacherID,
			GradeLevel: gradeLevel,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		db.class.order = append(db.class.order, id)
		return id
	}

	student := func(name, rollNumber, classID string) {
		id := uuid.New().String()
		db.student.table[id] = &school.Student{
			ID:         id,
			Name:       name,
			ClassID:    classID,
			RollNumber: rollNumber,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		db.student.order = append(db.student.order, id)
	}

	john := teacher("John Smith", "john.smith@gmail.com", "123", "Mathematics", school.StatusActive)
	sarah := teacher("Sarah Wilson", "sarah.w@gmail.com", "456", "Physics", school.StatusActive)
	teacher("Michael Brown", "m.brown@gmail.com", "789", "History", school.StatusInactive)

	c10a := class("10-A", "10", john)
	c11b := class("11-B", "11", sarah)

	student("Alice Thompson", "101", c10a)
	student("Bob Richards", "102", c10a)
	student("Charlie Davis", "201", c11b)
}
