package models

type ProjectStatus string

const (
	StatusCompleted  ProjectStatus = "Completed"
	StatusInProgress ProjectStatus = "In Progress"
	StatusOngoing    ProjectStatus = "Ongoing"
	StatusPlanning   ProjectStatus = "Planning"
)

type ProjectCategory string

const (
	CategoryConstruction   ProjectCategory = "construction"
	CategoryInstallation   ProjectCategory = "installation"
	CategoryMaintenance    ProjectCategory = "maintenance"
	CategoryInfrastructure ProjectCategory = "infrastructure"
)

type ImageKind string

const (
	ImageHero    ImageKind = "hero"
	ImageGallery ImageKind = "gallery"
)

type ProjectImage struct {
	URL     string    `json:"url"`
	Alt     string    `json:"alt"`
	Caption string    `json:"caption,omitempty"`
	Type    ImageKind `json:"type"`
}

type TimelineEntry struct {
	Phase       string `json:"phase" mapstructure:"phase"`
	Date        string `json:"date" mapstructure:"date"`
	Description string `json:"description" mapstructure:"description"`
	Status      string `json:"status,omitempty" mapstructure:"status"`
}

type Testimonial struct {
	Quote    string `json:"quote" mapstructure:"quote"`
	Author   string `json:"author" mapstructure:"author"`
	Position string `json:"position" mapstructure:"position"`
	Company  string `json:"company,omitempty" mapstructure:"company"`
}

type Project struct {
	ID              string            `json:"id"`
	Slug            string            `json:"slug"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Location        string            `json:"location"`
	Year            string            `json:"year"`
	Status          ProjectStatus     `json:"status"`
	Category        ProjectCategory   `json:"category"`
	Tags            []string          `json:"tags"`
	Images          []ProjectImage    `json:"images"`
	Videos          []Video           `json:"videos"`
	Specifications  map[string]string `json:"specifications"`
	Timeline        []TimelineEntry   `json:"timeline"`
	LongDescription string            `json:"longDescription,omitempty"`
	Client          string            `json:"client,omitempty"`
	Budget          string            `json:"budget,omitempty"`
	Area            string            `json:"area,omitempty"`
	TeamMembers     int               `json:"teamMembers,omitempty"`
	Challenges      []string          `json:"challenges"`
	Solutions       []string          `json:"solutions"`
	Results         []string          `json:"results"`
	Testimonial     *Testimonial      `json:"testimonial,omitempty"`
}
