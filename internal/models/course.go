package models

import (
	"github.com/go-playground/validator/v10"
)

type Course struct {
	ID      int64  `db:"id" json:"id"`
	Code    string `db:"code" json:"code"`
	Name    string `db:"name" json:"name"`
	Credits int    `db:"credits" json:"credits"`
}

// CourseUpsert is the payload for POST and PUT: every mutable field must be
// present. Credits is a pointer so an explicit 0 still passes "required".
type CourseUpsert struct {
	Code    string `json:"code" validate:"required"`
	Name    string `json:"name" validate:"required"`
	Credits *int   `json:"credits" validate:"required"`
}

// CoursePatch carries only the fields present in a PATCH body. A nil field
// was not supplied and keeps its prior value.
type CoursePatch struct {
	Code    *string `json:"code"`
	Name    *string `json:"name"`
	Credits *int    `json:"credits"`
}

func (p *CourseUpsert) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *CourseUpsert) Apply(c *Course) {
	c.Code = p.Code
	c.Name = p.Name
	c.Credits = *p.Credits
}

func (p *CoursePatch) Apply(c *Course) {
	if p.Code != nil {
		c.Code = *p.Code
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Credits != nil {
		c.Credits = *p.Credits
	}
}
