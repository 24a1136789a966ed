package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Pokemon represents a single entry of the catalog
type Pokemon struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	No        int       `gorm:"type:integer;uniqueIndex;not null" json:"no"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// BeforeCreate assigns the identifier and normalizes the name
func (p *Pokemon) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Name = NormalizeName(p.Name)
	return nil
}

// NormalizeName is applied to every name before it is stored or looked up
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// IsValidID reports whether term is a syntactically valid store identifier
func IsValidID(term string) bool {
	return uuid.Validate(term) == nil
}
