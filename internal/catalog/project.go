package catalog

import (
	"strconv"

	"petro-catalog-api/internal/models"
	"petro-catalog-api/pkg/utils"
)

var knownStatuses = map[models.ProjectStatus]bool{
	models.StatusCompleted:  true,
	models.StatusInProgress: true,
	models.StatusOngoing:    true,
	models.StatusPlanning:   true,
}

var knownCategories = map[models.ProjectCategory]bool{
	models.CategoryConstruction:   true,
	models.CategoryInstallation:   true,
	models.CategoryMaintenance:    true,
	models.CategoryInfrastructure: true,
}

// ParseStatus resolves a stored status. Unknown values become Completed.
func ParseStatus(s string) models.ProjectStatus {
	if st := models.ProjectStatus(s); knownStatuses[st] {
		return st
	}
	return models.StatusCompleted
}

// ParseProjectCategory resolves a stored category. Unknown values become construction.
func ParseProjectCategory(s string) models.ProjectCategory {
	if c := models.ProjectCategory(s); knownCategories[c] {
		return c
	}
	return models.CategoryConstruction
}

// IsProjectStatus reports whether s is one of the known project statuses.
func IsProjectStatus(s string) bool { return knownStatuses[models.ProjectStatus(s)] }

// IsProjectCategory reports whether s is one of the known project categories.
func IsProjectCategory(s string) bool { return knownCategories[models.ProjectCategory(s)] }

func MapProject(raw models.ProjectRecord) models.Project {
	title := utils.StringOr(raw.Title, "")

	var teamMembers any
	if raw.TeamMembers != nil {
		teamMembers = *raw.TeamMembers
	}

	return models.Project{
		ID:              strconv.FormatInt(raw.ID, 10),
		Slug:            utils.StringOr(raw.Slug, ""),
		Title:           title,
		Description:     utils.StringOr(raw.Description, ""),
		Location:        utils.StringOr(raw.Location, ""),
		Year:            utils.StringOr(raw.Year, ""),
		Status:          ParseStatus(utils.StringOr(raw.Status, "")),
		Category:        ParseProjectCategory(utils.StringOr(raw.Category, "")),
		Tags:            utils.StringList(raw.Tags),
		Images:          mapProjectImages(raw, title),
		Videos:          utils.ObjectList[models.Video](raw.Videos),
		Specifications:  utils.StringMap(raw.Specifications),
		Timeline:        utils.ObjectList[models.TimelineEntry](raw.Timeline),
		LongDescription: utils.StringOr(raw.LongDescription, ""),
		Client:          utils.StringOr(raw.Client, ""),
		Budget:          utils.StringOr(raw.Budget, ""),
		Area:            utils.StringOr(raw.Area, ""),
		TeamMembers:     utils.ParseInt(teamMembers),
		Challenges:      utils.StringList(raw.Challenges),
		Solutions:       utils.StringList(raw.Solutions),
		Results:         utils.StringList(raw.Results),
		Testimonial:     utils.Object[models.Testimonial](raw.Testimonial),
	}
}

func MapProjects(raws []models.ProjectRecord) []models.Project {
	projects := make([]models.Project, 0, len(raws))
	for _, raw := range raws {
		projects = append(projects, MapProject(raw))
	}
	return projects
}

// mapProjectImages puts the hero image first, followed by gallery rows in
// the order they were stored. Nothing is deduplicated.
func mapProjectImages(raw models.ProjectRecord, title string) []models.ProjectImage {
	images := make([]models.ProjectImage, 0, len(raw.Images)+1)
	if hero := utils.StringOr(raw.HeroImage, ""); hero != "" {
		images = append(images, models.ProjectImage{
			URL:  hero,
			Alt:  title,
			Type: models.ImageHero,
		})
	}
	for _, img := range raw.Images {
		images = append(images, models.ProjectImage{
			URL:     utils.StringOr(img.URL, ""),
			Alt:     utils.StringOr(img.Alt, title),
			Caption: utils.StringOr(img.Caption, ""),
			Type:    models.ImageGallery,
		})
	}
	return images
}
