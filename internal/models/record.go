package models

import (
	"time"

	"gorm.io/datatypes"
)

// Raw records mirror the backend tables. Every optional column is nullable,
// JSON columns are left undecoded until the catalog mapper reads them.

type CategoryRecord struct {
	ID          int64   `gorm:"primaryKey" json:"id"`
	Name        *string `json:"name"`
	Slug        *string `gorm:"index" json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
}

func (CategoryRecord) TableName() string { return "product_categories" }

type ProductRecord struct {
	ID             int64           `gorm:"primaryKey" json:"id"`
	Name           *string         `json:"name"`
	CategoryID     *int64          `json:"category_id"`
	Category       *CategoryRecord `gorm:"foreignKey:CategoryID" json:"category"`
	Price          *string         `json:"price"`
	Rating         *float64        `gorm:"type:numeric" json:"rating"`
	Image          *string         `json:"image"`
	Gallery        datatypes.JSON  `gorm:"type:jsonb" json:"gallery"`
	Description    *string         `json:"description"`
	Features       datatypes.JSON  `gorm:"type:jsonb" json:"features"`
	Specifications datatypes.JSON  `gorm:"type:jsonb" json:"specifications"`
	Popular        *bool           `json:"popular"`
	InStock        *bool           `json:"in_stock"`
	Manufacturer   *string         `json:"manufacturer"`
	Warranty       *string         `json:"warranty"`
	Documents      datatypes.JSON  `gorm:"type:jsonb" json:"documents"`
	Videos         datatypes.JSON  `gorm:"type:jsonb" json:"videos"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (ProductRecord) TableName() string { return "products" }

type ProjectImageRecord struct {
	ID        int64   `gorm:"primaryKey" json:"id"`
	ProjectID int64   `gorm:"index" json:"project_id"`
	URL       *string `gorm:"column:image_url" json:"image_url"`
	Alt       *string `gorm:"column:alt_text" json:"alt_text"`
	Caption   *string `json:"caption"`
	SortOrder *int    `json:"sort_order"`
}

func (ProjectImageRecord) TableName() string { return "project_images" }

type ProjectRecord struct {
	ID              int64                `gorm:"primaryKey" json:"id"`
	Slug            *string              `gorm:"uniqueIndex" json:"slug"`
	Title           *string              `json:"title"`
	Description     *string              `json:"description"`
	LongDescription *string              `json:"long_description"`
	Location        *string              `json:"location"`
	Year            *string              `json:"year"`
	Status          *string              `json:"status"`
	Category        *string              `json:"category"`
	Tags            datatypes.JSON       `gorm:"type:jsonb" json:"tags"`
	HeroImage       *string              `json:"hero_image"`
	Images          []ProjectImageRecord `gorm:"foreignKey:ProjectID" json:"images"`
	Videos          datatypes.JSON       `gorm:"type:jsonb" json:"videos"`
	Specifications  datatypes.JSON       `gorm:"type:jsonb" json:"specifications"`
	Timeline        datatypes.JSON       `gorm:"type:jsonb" json:"timeline"`
	Client          *string              `json:"client"`
	Budget          *string              `json:"budget"`
	Area            *string              `json:"area"`
	TeamMembers     *string              `json:"team_members"`
	Challenges      datatypes.JSON       `gorm:"type:jsonb" json:"challenges"`
	Solutions       datatypes.JSON       `gorm:"type:jsonb" json:"solutions"`
	Results         datatypes.JSON       `gorm:"type:jsonb" json:"results"`
	Testimonial     datatypes.JSON       `gorm:"type:jsonb" json:"testimonial"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

func (ProjectRecord) TableName() string { return "projects" }
