package models

import (
	"github.com/go-playground/validator/v10"
)

type User struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Age       int    `db:"age" json:"age"`
	StudentID string `db:"student_id" json:"student_id"`
}

type UserUpsert struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Age       *int   `json:"age" validate:"required"`
	StudentID string `json:"student_id" validate:"required"`
}

type UserPatch struct {
	Name      *string `json:"name"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Age       *int    `json:"age"`
	StudentID *string `json:"student_id"`
}

func (p *UserUpsert) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *UserPatch) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *UserUpsert) Apply(u *User) {
	u.Name = p.Name
	u.Email = p.Email
	u.Age = *p.Age
	u.StudentID = p.StudentID
}

func (p *UserPatch) Apply(u *User) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Age != nil {
		u.Age = *p.Age
	}
	if p.StudentID != nil {
		u.StudentID = *p.StudentID
	}
}
