package data

import "github.com/Abdullah-819/786Times/internal/models"

// Sections is the catalogue offered on the section selection screen.
var Sections = []models.Section{
	{ID: "BCS_E", Title: "Computer Science", Code: models.SectionBCS},
	{ID: "BCS_F", Title: "Computer Science", Code: models.SectionBCSAlt},
	{ID: "BSE_B", Title: "Software Engineering", Code: models.SectionBSE},
}
