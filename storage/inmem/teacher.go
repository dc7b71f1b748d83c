package inmemdb

import (
	"strings"

	"eduquest/core/school"
)

type teacherRepository struct {
	db *teacherTable
}

func NewTeacherRepository(db *DB) school.TeacherRepository {
	return &teacherRepository{db: db.teacher}
}

func (repo *teacherRepository) query() []school.Teacher {
	teachers := make([]school.Teacher, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		teachers = append(teachers, *repo.db.table[id])
	}
	return teachers
}

func (repo *teacherRepository) CreateTeacher(t school.Teacher) (school.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[t.ID] = &t
	repo.db.order = append(repo.db.order, t.ID)
	return t, nil
}

func (repo *teacherRepository) QueryAllTeachers() ([]school.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *teacherRepository) GetTeacherByID(id string) (school.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if t, ok := repo.db.table[id]; ok {
		return *t, nil
	}
	return school.Teacher{}, school.ErrNotFound
}

func (repo *teacherRepository) GetTeacherByEmail(email string) (school.Teacher, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	for _, t := range repo.query() {
		if strings.EqualFold(t.Email, email) {
			return t, nil
		}
	}
	return school.Teacher{}, school.ErrNotFound
}

func (repo *teacherRepository) UpdateTeacher(t school.Teacher) (school.Teacher, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	orig, ok := repo.db.table[t.ID]
	if !ok {
		return school.Teacher{}, school.ErrNotFound
	}
	if t.Name != "" {
		orig.Name = t.Name
	}
	if t.Email != "" {
		orig.Email = t.Email
	}
	if t.Subject != "" {
		orig.Subject = t.Subject
	}
	if t.Password != "" {
		orig.Password = t.Password
	}
	if t.Status != "" {
		orig.Status = t.Status
	}
	orig.UpdatedAt = t.UpdatedAt

	repo.db.table[t.ID] = orig
	return *orig, nil
}

func (repo *teacherRepository) DeleteTeacherByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return school.ErrNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}

func removeID(order []string, id string) []string {
	for i, oid := range order {
		if oid == id {
			return append(order[:i], order[i+1:]...)
		}
	}
	return order
}
