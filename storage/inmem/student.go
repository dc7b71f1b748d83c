package inmemdb

import "eduquest/core/school"

type studentRepository struct {
	db *studentTable
}

func NewStudentRepository(db *DB) school.StudentRepository {
	return &studentRepository{db: db.student}
}

func (repo *studentRepository) query() []school.Student {
	students := make([]school.Student, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		students = append(students, *repo.db.table[id])
	}
	return students
}

func (repo *studentRepository) CreateStudent(s school.Student) (school.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[s.ID] = &s
	repo.db.order = append(repo.db.order, s.ID)
	return s, nil
}

func (repo *studentRepository) QueryAllStudents() ([]school.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *studentRepository) GetStudentByID(id string) (school.Student, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if s, ok := repo.db.table[id]; ok {
		return *s, nil
	}
	return school.Student{}, school.ErrNotFound
}

func (repo *studentRepository) UpdateStudent(s school.Student, classID *string) (school.Student, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	orig, ok := repo.db.table[s.ID]
	if !ok {
		return school.Student{}, school.ErrNotFound
	}
	if s.Name != "" {
		orig.Name = s.Name
	}
	if s.RollNumber != "" {
		orig.RollNumber = s.RollNumber
	}
	if classID != nil {
		orig.ClassID = *classID
	}
	orig.UpdatedAt = s.UpdatedAt

	repo.db.table[s.ID] = orig
	return *orig, nil
}

func (repo *studentRepository) DeleteStudentByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return school.ErrNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}
