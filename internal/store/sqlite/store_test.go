package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shrimpsizemoose/lussekatt/internal/models"
	"github.com/shrimpsizemoose/lussekatt/internal/store"
)

// setupTestDB creates an in-memory SQLite database with the real migrations
// applied through the dialect translator.
func setupTestDB(t *testing.T) *SQLiteStore {
	t.Helper()

	s, err := NewSQLiteStore(":memory:")
	require.NoError(t, err, "Failed to create store")

	err = s.ApplyMigrations("../../../migrations")
	require.NoError(t, err, "Failed to apply migrations")

	t.Cleanup(func() {
		require.NoError(t, s.Close(), "Failed to close database")
	})

	return s
}

func newCourse(code string) *models.Course {
	return &models.Course{Code: code, Name: "Course " + code, Credits: 5}
}

func newUser(email, studentID string) *models.User {
	return &models.User{Name: "Test User", Email: email, Age: 20, StudentID: studentID}
}

func TestCreateCourseAssignsIncreasingIDs(t *testing.T) {
	s := setupTestDB(t)

	first := newCourse("CS101")
	require.NoError(t, s.CreateCourse(first))

	second := newCourse("CS102")
	require.NoError(t, s.CreateCourse(second))

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
}

func TestCreateCourseDuplicateCode(t *testing.T) {
	s := setupTestDB(t)

	original := newCourse("CS101")
	original.Name = "Original"
	require.NoError(t, s.CreateCourse(original))

	dup := newCourse("CS101")
	dup.Name = "Impostor"
	err := s.CreateCourse(dup)
	require.ErrorIs(t, err, store.ErrConflict)

	// the failed insert must not have touched the existing row
	got, err := s.GetCourseByID(original.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Original", got.Name)

	courses, err := s.ListCourses(10, 0)
	require.NoError(t, err)
	assert.Len(t, courses, 1)
}

func TestListCoursesLimitOffset(t *testing.T) {
	s := setupTestDB(t)

	for _, code := range []string{"CS101", "CS102", "CS103"} {
		require.NoError(t, s.CreateCourse(newCourse(code)))
	}

	t.Run("first page", func(t *testing.T) {
		courses, err := s.ListCourses(2, 0)
		require.NoError(t, err)
		require.Len(t, courses, 2)
		assert.Equal(t, int64(1), courses[0].ID)
		assert.Equal(t, int64(2), courses[1].ID)
	})

	t.Run("second page", func(t *testing.T) {
		courses, err := s.ListCourses(2, 2)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, int64(3), courses[0].ID)
	})

	t.Run("offset beyond rows", func(t *testing.T) {
		courses, err := s.ListCourses(10, 100)
		require.NoError(t, err)
		assert.Empty(t, courses)
		assert.NotNil(t, courses)
	})
}

func TestGetCourseMissing(t *testing.T) {
	s := setupTestDB(t)

	course, err := s.GetCourseByID(999)
	require.NoError(t, err)
	assert.Nil(t, course)
}

func TestUpdateCourseConflictLeavesRowIntact(t *testing.T) {
	s := setupTestDB(t)

	first := newCourse("CS101")
	require.NoError(t, s.CreateCourse(first))
	second := newCourse("CS102")
	require.NoError(t, s.CreateCourse(second))

	second.Code = "CS101"
	err := s.UpdateCourse(second)
	require.ErrorIs(t, err, store.ErrConflict)

	got, err := s.GetCourseByID(second.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "CS102", got.Code)
}

func TestDeleteCourse(t *testing.T) {
	s := setupTestDB(t)

	course := newCourse("CS101")
	require.NoError(t, s.CreateCourse(course))

	deleted, err := s.DeleteCourse(course.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteCourse(course.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	got, err := s.GetCourseByID(course.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserUniqueEmailAndStudentID(t *testing.T) {
	s := setupTestDB(t)

	require.NoError(t, s.CreateUser(newUser("a@example.com", "S1")))

	t.Run("duplicate email", func(t *testing.T) {
		err := s.CreateUser(newUser("a@example.com", "S2"))
		require.ErrorIs(t, err, store.ErrConflict)
	})

	t.Run("duplicate student id", func(t *testing.T) {
		err := s.CreateUser(newUser("b@example.com", "S1"))
		require.ErrorIs(t, err, store.ErrConflict)
	})

	users, err := s.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestProjectWithOwner(t *testing.T) {
	s := setupTestDB(t)

	user := newUser("a@example.com", "S1")
	require.NoError(t, s.CreateUser(user))

	project := &models.Project{Name: "P", Description: "d", OwnerID: user.ID}
	require.NoError(t, s.CreateProject(project))

	got, err := s.GetProjectWithOwner(project.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, project.ID, got.ID)
	require.NotNil(t, got.Owner)
	assert.Equal(t, user.ID, got.Owner.ID)
	assert.Equal(t, user.Email, got.Owner.Email)

	// orphaned project: owner comes back nil, not an error
	_, err = s.DeleteUser(user.ID)
	require.NoError(t, err)

	got, err = s.GetProjectWithOwner(project.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Owner)
	assert.Equal(t, user.ID, got.OwnerID)
}

func TestGetProjectWithOwnerMissing(t *testing.T) {
	s := setupTestDB(t)

	got, err := s.GetProjectWithOwner(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListProjectsByOwner(t *testing.T) {
	s := setupTestDB(t)

	alice := newUser("alice@example.com", "S1")
	require.NoError(t, s.CreateUser(alice))
	bob := newUser("bob@example.com", "S2")
	require.NoError(t, s.CreateUser(bob))

	for _, name := range []string{"P1", "P2"} {
		p := &models.Project{Name: name, Description: "d", OwnerID: alice.ID}
		require.NoError(t, s.CreateProject(p))
	}

	t.Run("owner with projects", func(t *testing.T) {
		projects, err := s.ListProjectsByOwner(alice.ID)
		require.NoError(t, err)
		require.Len(t, projects, 2)
		assert.Equal(t, "P1", projects[0].Name)
		assert.Equal(t, "P2", projects[1].Name)
	})

	t.Run("owner without projects", func(t *testing.T) {
		projects, err := s.ListProjectsByOwner(bob.ID)
		require.NoError(t, err)
		assert.Empty(t, projects)
		assert.NotNil(t, projects)
	})

	t.Run("unknown owner", func(t *testing.T) {
		projects, err := s.ListProjectsByOwner(999)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})
}

func TestUpdateUserFields(t *testing.T) {
	s := setupTestDB(t)

	user := newUser("a@example.com", "S1")
	require.NoError(t, s.CreateUser(user))

	user.Name = "Renamed"
	user.Age = 31
	require.NoError(t, s.UpdateUser(user))

	got, err := s.GetUserByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, 31, got.Age)
	assert.Equal(t, "S1", got.StudentID)
}
