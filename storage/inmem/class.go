package inmemdb

import "eduquest/core/school"

type classRepository struct {
	db *classTable
}

func NewClassRepository(db *DB) school.ClassRepository {
	return &classRepository{db: db.class}
}

func (repo *classRepository) query() []school.Class {
	classes := make([]school.Class, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		classes = append(classes, *repo.db.table[id])
	}
	return classes
}

func (repo *classRepository) CreateClass(c school.Class) (school.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	repo.db.table[c.ID] = &c
	repo.db.order = append(repo.db.order, c.ID)
	return c, nil
}

func (repo *classRepository) QueryAllClasses() ([]school.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.query(), nil
}

func (repo *classRepository) GetClassByID(id string) (school.Class, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if c, ok := repo.db.table[id]; ok {
		return *c, nil
	}
	return school.Class{}, school.ErrNotFound
}

func (repo *classRepository) UpdateClass(c school.Class, teacherID *string) (school.Class, error) {
	repo.db.Lock()
	defer repo.db.Unlock()

	// only save set fields
	orig, ok := repo.db.table[c.ID]
	if !ok {
		return school.Class{}, school.ErrNotFound
	}
	if c.Name != "" {
		orig.Name = c.Name
	}
	if c.GradeLevel != "" {
		orig.GradeLevel = c.GradeLevel
	}
	if teacherID != nil {
		orig.TeacherID = *teacherID
	}
	orig.UpdatedAt = c.UpdatedAt

	repo.db.table[c.ID] = orig
	return *orig, nil
}

func (repo *classRepository) DeleteClassByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return school.ErrNotFound
	}
	delete(repo.db.table, id)
	repo.db.order = removeID(repo.db.order, id)
	return nil
}
