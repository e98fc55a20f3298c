package models

import (
	"github.com/go-playground/validator/v10"
)

type Project struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	OwnerID     int64  `db:"owner_id" json:"owner_id"`
}

// ProjectWithOwner is the single-project read shape: the project row plus its
// owner embedded. Owner is nil when the owning user no longer exists.
type ProjectWithOwner struct {
	Project
	Owner *User `json:"owner"`
}

type ProjectCreate struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	OwnerID     *int64 `json:"owner_id" validate:"required"`
}

// ProjectCreateForUser is the nested-create payload: the owner comes from the
// URL path, never from the body.
type ProjectCreateForUser struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type ProjectUpsert struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	OwnerID     *int64 `json:"owner_id" validate:"required"`
}

type ProjectPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	OwnerID     *int64  `json:"owner_id"`
}

func (p *ProjectCreate) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *ProjectCreateForUser) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *ProjectUpsert) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

func (p *ProjectUpsert) Apply(pr *Project) {
	pr.Name = p.Name
	pr.Description = p.Description
	pr.OwnerID = *p.OwnerID
}

func (p *ProjectPatch) Apply(pr *Project) {
	if p.Name != nil {
		pr.Name = *p.Name
	}
	if p.Description != nil {
		pr.Description = *p.Description
	}
	if p.OwnerID != nil {
		pr.OwnerID = *p.OwnerID
	}
}
