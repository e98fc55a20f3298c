package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/shrimpsizemoose/lussekatt/internal/models"
)

type RegistryStore interface {
	Close() error
	ApplyMigrations(dir string) error

	CreateCourse(course *models.Course) error
	GetCourseByID(id int64) (*models.Course, error)
	ListCourses(limit, offset int) ([]models.Course, error)
	UpdateCourse(course *models.Course) error
	DeleteCourse(id int64) (bool, error)

	CreateUser(user *models.User) error
	GetUserByID(id int64) (*models.User, error)
	ListUsers() ([]models.User, error)
	UpdateUser(user *models.User) error
	DeleteUser(id int64) (bool, error)

	CreateProject(project *models.Project) error
	GetProjectByID(id int64) (*models.Project, error)
	GetProjectWithOwner(id int64) (*models.ProjectWithOwner, error)
	ListProjects() ([]models.Project, error)
	ListProjectsByOwner(ownerID int64) ([]models.Project, error)
	UpdateProject(project *models.Project) error
	DeleteProject(id int64) (bool, error)
}

// BaseStore provides common functionality for different DB implementations.
// Queries are written with ? placeholders and run through Converter, which
// rewrites them for the target dialect.
type BaseStore struct {
	DB        *sqlx.DB
	Converter func(string) string
}

func (s *BaseStore) Close() error {
	if s.DB != nil {
		return s.DB.Close()
	}
	return nil
}

// ApplyMigrations applies SQL migrations from a directory, translating dialect if needed
func (s *BaseStore) ApplyMigrations(dir string, translateSQL func(string) string) error {
	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, file := range files {
		if !strings.HasSuffix(file.Name(), ".sql") {
			continue
		}

		content, err := os.ReadFile(fmt.Sprintf("%s/%s", dir, file.Name()))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file.Name(), err)
		}

		sql := string(content)
		if translateSQL != nil {
			sql = translateSQL(sql)
		}

		if _, err := s.DB.Exec(sql); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", file.Name(), err)
		}
	}

	return nil
}

func (s *BaseStore) CreateCourse(course *models.Course) error {
	query := s.Converter(`
		INSERT INTO courses (code, name, credits)
		VALUES (?, ?, ?)
		RETURNING id
	`)

	err := s.DB.QueryRow(query, course.Code, course.Name, course.Credits).Scan(&course.ID)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

func (s *BaseStore) GetCourseByID(id int64) (*models.Course, error) {
	var course models.Course
	query := s.Converter(`
		SELECT id, code, name, credits
		FROM courses
		WHERE id = ?
	`)

	err := s.DB.Get(&course, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course: %w", err)
	}
	return &course, nil
}

func (s *BaseStore) ListCourses(limit, offset int) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	query := s.Converter(`
		SELECT id, code, name, credits
		FROM courses
		ORDER BY id ASC
		LIMIT ? OFFSET ?
	`)

	if err := s.DB.Select(&courses, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	return courses, nil
}

func (s *BaseStore) UpdateCourse(course *models.Course) error {
	query := s.Converter(`
		UPDATE courses
		SET code = ?, name = ?, credits = ?
		WHERE id = ?
	`)

	_, err := s.DB.Exec(query, course.Code, course.Name, course.Credits, course.ID)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to update course: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteCourse(id int64) (bool, error) {
	query := s.Converter(`DELETE FROM courses WHERE id = ?`)

	res, err := s.DB.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete course: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete course: %w", err)
	}
	return affected > 0, nil
}

func (s *BaseStore) CreateUser(user *models.User) error {
	query := s.Converter(`
		INSERT INTO users (name, email, age, student_id)
		VALUES (?, ?, ?, ?)
		RETURNING id
	`)

	err := s.DB.QueryRow(query, user.Name, user.Email, user.Age, user.StudentID).Scan(&user.ID)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *BaseStore) GetUserByID(id int64) (*models.User, error) {
	var user models.User
	query := s.Converter(`
		SELECT id, name, email, age, student_id
		FROM users
		WHERE id = ?
	`)

	err := s.DB.Get(&user, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *BaseStore) ListUsers() ([]models.User, error) {
	users := make([]models.User, 0)
	err := s.DB.Select(&users, `
		SELECT id, name, email, age, student_id
		FROM users
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *BaseStore) UpdateUser(user *models.User) error {
	query := s.Converter(`
		UPDATE users
		SET name = ?, email = ?, age = ?, student_id = ?
		WHERE id = ?
	`)

	_, err := s.DB.Exec(query, user.Name, user.Email, user.Age, user.StudentID, user.ID)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteUser(id int64) (bool, error) {
	query := s.Converter(`DELETE FROM users WHERE id = ?`)

	res, err := s.DB.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}
	return affected > 0, nil
}

func (s *BaseStore) CreateProject(project *models.Project) error {
	query := s.Converter(`
		INSERT INTO projects (name, description, owner_id)
		VALUES (?, ?, ?)
		RETURNING id
	`)

	err := s.DB.QueryRow(query, project.Name, project.Description, project.OwnerID).Scan(&project.ID)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

func (s *BaseStore) GetProjectByID(id int64) (*models.Project, error) {
	var project models.Project
	query := s.Converter(`
		SELECT id, name, description, owner_id
		FROM projects
		WHERE id = ?
	`)

	err := s.DB.Get(&project, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &project, nil
}

// projectOwnerRow flattens the project/owner join; the owner columns are
// nullable because owner_id may dangle after a user delete.
type projectOwnerRow struct {
	models.Project
	OwnerPK        *int64  `db:"owner_pk"`
	OwnerName      *string `db:"owner_name"`
	OwnerEmail     *string `db:"owner_email"`
	OwnerAge       *int    `db:"owner_age"`
	OwnerStudentID *string `db:"owner_student_id"`
}

func (s *BaseStore) GetProjectWithOwner(id int64) (*models.ProjectWithOwner, error) {
	var row projectOwnerRow
	query := s.Converter(`
		SELECT
			p.id, p.name, p.description, p.owner_id,
			u.id AS owner_pk,
			u.name AS owner_name,
			u.email AS owner_email,
			u.age AS owner_age,
			u.student_id AS owner_student_id
		FROM projects p
		LEFT JOIN users u ON u.id = p.owner_id
		WHERE p.id = ?
	`)

	err := s.DB.Get(&row, query, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project with owner: %w", err)
	}

	result := &models.ProjectWithOwner{Project: row.Project}
	if row.OwnerPK != nil {
		result.Owner = &models.User{
			ID:        *row.OwnerPK,
			Name:      *row.OwnerName,
			Email:     *row.OwnerEmail,
			Age:       *row.OwnerAge,
			StudentID: *row.OwnerStudentID,
		}
	}
	return result, nil
}

func (s *BaseStore) ListProjects() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	err := s.DB.Select(&projects, `
		SELECT id, name, description, owner_id
		FROM projects
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

func (s *BaseStore) ListProjectsByOwner(ownerID int64) ([]models.Project, error) {
	projects := make([]models.Project, 0)
	query := s.Converter(`
		SELECT id, name, description, owner_id
		FROM projects
		WHERE owner_id = ?
		ORDER BY id ASC
	`)

	if err := s.DB.Select(&projects, query, ownerID); err != nil {
		return nil, fmt.Errorf("failed to list projects by owner: %w", err)
	}
	return projects, nil
}

func (s *BaseStore) UpdateProject(project *models.Project) error {
	query := s.Converter(`
		UPDATE projects
		SET name = ?, description = ?, owner_id = ?
		WHERE id = ?
	`)

	_, err := s.DB.Exec(query, project.Name, project.Description, project.OwnerID, project.ID)
	if err != nil {
		if isConstraintViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("failed to update project: %w", err)
	}
	return nil
}

func (s *BaseStore) DeleteProject(id int64) (bool, error) {
	query := s.Converter(`DELETE FROM projects WHERE id = ?`)

	res, err := s.DB.Exec(query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete project: %w", err)
	}
	return affected > 0, nil
}
