package school_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eduquest/core/school"
	inmemdb "eduquest/storage/inmem"
)

func newService(t *testing.T) *school.Service {
	db, err := inmemdb.Open()
	require.NoError(t, err)
	return school.NewService(
		inmemdb.NewTeacherRepository(db),
		inmemdb.NewStudentRepository(db),
		inmemdb.NewClassRepository(db),
	)
}

func TestService_Teachers(t *testing.T) {
	svc := newService(t)

	t.Run("create defaults role and status", func(t *testing.T) {
		created, err := svc.CreateTeacher(school.NewTeacher{
			Name:     "Emma Watson",
			Subject:  "Chemistry",
			Email:    "emma.w@test.cd",
			Password: "pwd",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, school.RoleTeacher, created.Role)
		assert.Equal(t, school.StatusActive, created.Status)
		assert.False(t, created.CreatedAt.IsZero())

		all, err := svc.Teachers()
		require.NoError(t, err)
		require.Len(t, all, 4)
		assert.Equal(t, created.ID, all[3].ID)

		got, err := svc.GetTeacherByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Emma Watson", got.Name)
	})

	t.Run("lookup by email normalizes case", func(t *testing.T) {
		teacher, err := svc.GetTeacherByEmail("  Emma.W@Test.CD ")
		require.NoError(t, err)
		assert.Equal(t, "Emma Watson", teacher.Name)
	})

	t.Run("update merges submitted fields", func(t *testing.T) {
		orig, err := svc.GetTeacherByEmail("emma.w@test.cd")
		require.NoError(t, err)

		updated, err := svc.UpdateTeacher(orig.ID, school.UpdateTeacher{Status: school.StatusInactive})
		require.NoError(t, err)
		assert.Equal(t, school.StatusInactive, updated.Status)
		assert.Equal(t, orig.Name, updated.Name)
		assert.Equal(t, orig.Subject, updated.Subject)
	})

	t.Run("update of unknown id is a no-op", func(t *testing.T) {
		updated, err := svc.UpdateTeacher("ghost", school.UpdateTeacher{Name: "Nobody"})
		require.NoError(t, err)
		assert.Empty(t, updated.ID)

		all, err := svc.Teachers()
		require.NoError(t, err)
		assert.Len(t, all, 4)
	})

	t.Run("delete shrinks the collection", func(t *testing.T) {
		teacher, err := svc.GetTeacherByEmail("emma.w@test.cd")
		require.NoError(t, err)

		require.NoError(t, svc.DeleteTeacher(teacher.ID))
		all, err := svc.Teachers()
		require.NoError(t, err)
		assert.Len(t, all, 3)

		// repeating is a silent no-op
		require.NoError(t, svc.DeleteTeacher(teacher.ID))
	})
}

func TestService_Students(t *testing.T) {
	svc := newService(t)

	classes, err := svc.Classes()
	require.NoError(t, err)
	c10a := classes[0]

	created, err := svc.CreateStudent(school.NewStudent{Name: "Dana Miles", RollNumber: "103", ClassID: c10a.ID})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, c10a.ID, created.ClassID)

	all, err := svc.Students()
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, created.ID, all[3].ID)

	t.Run("nil class keeps assignment", func(t *testing.T) {
		updated, err := svc.UpdateStudent(created.ID, school.UpdateStudent{Name: "Dana M"})
		require.NoError(t, err)
		assert.Equal(t, "Dana M", updated.Name)
		assert.Equal(t, c10a.ID, updated.ClassID)
	})

	t.Run("empty class pointer unassigns", func(t *testing.T) {
		empty := ""
		updated, err := svc.UpdateStudent(created.ID, school.UpdateStudent{ClassID: &empty})
		require.NoError(t, err)
		assert.Empty(t, updated.ClassID)
		assert.Equal(t, school.UnassignedClass, svc.ResolveClassName(updated.ClassID))
	})

	t.Run("delete and missing-id no-ops", func(t *testing.T) {
		require.NoError(t, svc.DeleteStudent(created.ID))
		all, err := svc.Students()
		require.NoError(t, err)
		assert.Len(t, all, 3)

		require.NoError(t, svc.DeleteStudent("ghost"))
		_, err = svc.UpdateStudent("ghost", school.UpdateStudent{Name: "Nobody"})
		require.NoError(t, err)
	})
}

func TestService_Classes(t *testing.T) {
	svc := newService(t)

	teachers, err := svc.Teachers()
	require.NoError(t, err)
	john := teachers[0]

	created, err := svc.CreateClass(school.NewClass{Name: "12-C", GradeLevel: "12", TeacherID: john.ID})
	require.NoError(t, err)
	assert.Equal(t, john.ID, created.TeacherID)

	all, err := svc.Classes()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, created.ID, all[2].ID)

	t.Run("reassign teacher", func(t *testing.T) {
		sarah := teachers[1].ID
		updated, err := svc.UpdateClass(created.ID, school.UpdateClass{TeacherID: &sarah})
		require.NoError(t, err)
		assert.Equal(t, sarah, updated.TeacherID)
		assert.Equal(t, "12-C", updated.Name)
	})

	t.Run("delete and missing-id no-ops", func(t *testing.T) {
		require.NoError(t, svc.DeleteClass(created.ID))
		all, err := svc.Classes()
		require.NoError(t, err)
		assert.Len(t, all, 2)

		require.NoError(t, svc.DeleteClass(created.ID))
		_, err = svc.UpdateClass("ghost", school.UpdateClass{Name: "None"})
		require.NoError(t, err)
	})
}

func TestService_Resolvers(t *testing.T) {
	svc := newService(t)

	teachers, err := svc.Teachers()
	require.NoError(t, err)
	classes, err := svc.Classes()
	require.NoError(t, err)

	assert.Equal(t, "10-A", svc.ResolveClassName(classes[0].ID))
	assert.Equal(t, "John Smith", svc.ResolveTeacherName(teachers[0].ID))

	// blank and dangling references resolve to placeholders, never errors
	assert.Equal(t, school.UnassignedClass, svc.ResolveClassName(""))
	assert.Equal(t, school.UnassignedClass, svc.ResolveClassName("ghost"))
	assert.Equal(t, school.NoTeacher, svc.ResolveTeacherName(""))
	assert.Equal(t, school.NoTeacher, svc.ResolveTeacherName("ghost"))

	t.Run("deleting the referent leaves a placeholder", func(t *testing.T) {
		require.NoError(t, svc.DeleteTeacher(teachers[0].ID))
		assert.Equal(t, school.NoTeacher, svc.ResolveTeacherName(teachers[0].ID))

		require.NoError(t, svc.DeleteClass(classes[0].ID))
		assert.Equal(t, school.UnassignedClass, svc.ResolveClassName(classes[0].ID))
	})
}

func TestService_Overview(t *testing.T) {
	svc := newService(t)

	stats, err := svc.Overview()
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalTeachers)
	assert.Equal(t, 3, stats.TotalStudents)
	assert.Equal(t, 2, stats.TotalClasses)
	assert.Equal(t, "94.2%", stats.AvgAttendance)
	require.Len(t, stats.Performance, 4)
	assert.Equal(t, school.PerformancePoint{Name: "Grade 9", Average: 4.2}, stats.Performance[0])
	assert.Equal(t, school.PerformancePoint{Name: "Grade 12", Average: 4.1}, stats.Performance[3])

	require.NoError(t, svc.DeleteStudent("ghost")) // no-op does not skew counts
	stats, err = svc.Overview()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalStudents)
}
