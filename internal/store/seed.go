package store

import (
	"time"

	"github.com/existflow/mergeflow/internal/model"
)

// Seed is the dataset a fresh or reset store starts from
type Seed struct {
	Editors  []model.Editor
	Projects []model.Project
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 17, 0, 0, 0, time.UTC)
}

func dayPtr(year int, month time.Month, d int) *time.Time {
	return model.TimePtr(day(year, month, d))
}

// DefaultSeed returns the demo roster and projects
func DefaultSeed() Seed {
	ed := model.StringPtr
	return Seed{
		Editors: []model.Editor{
			{ID: "ED-001", Name: "Maya Lindqvist", Rating: model.MinRating},
			{ID: "ED-002", Name: "Tomás Ferreira", Rating: model.MinRating},
			{ID: "ED-003", Name: "Priya Raman", Rating: model.MinRating},
			{ID: "ED-004", Name: "Jonah Okafor", Rating: model.MinRating},
		},
		Projects: []model.Project{
			{
				ID: "PROJ-001", Name: "Harbor Wedding Album", Status: model.StatusDone,
				EditorID: ed("ED-001"), Category: model.CategoryWedding,
				Deadline: day(2024, time.November, 15), CreationDate: day(2024, time.October, 28),
				AssignDate: dayPtr(2024, time.October, 30), CompletionDate: dayPtr(2024, time.November, 13),
				PicturesEdited: 320, Notes: "Warm tones, skin retouch on portraits", CallerName: "Ruth",
				ImageHint: "wedding couple",
			},
			{
				ID: "PROJ-002", Name: "Northwind Annual Report", Status: model.StatusDone,
				EditorID: ed("ED-002"), Category: model.CategoryCorporate,
				Deadline: day(2024, time.December, 2), CreationDate: day(2024, time.November, 18),
				AssignDate: dayPtr(2024, time.November, 19), CompletionDate: dayPtr(2024, time.December, 5),
				PicturesEdited: 85, Notes: "Board headshots on grey", CallerName: "Ivan",
				ImageHint: "office team",
			},
			{
				ID: "PROJ-003", Name: "Lakeside Villa Listing", Status: model.StatusDone,
				EditorID: ed("ED-003"), Category: model.CategoryRealEstate,
				Deadline: day(2025, time.January, 10), CreationDate: day(2024, time.December, 30),
				AssignDate: dayPtr(2025, time.January, 2), CompletionDate: dayPtr(2025, time.January, 9),
				PicturesEdited: 46, Notes: "HDR merge, sky replacement", CallerName: "Ruth",
				ImageHint: "modern house",
			},
			{
				ID: "PROJ-004", Name: "Spring Sneaker Catalog", Status: model.StatusDone,
				EditorID: ed("ED-001"), Category: model.CategoryProduct,
				Deadline: day(2025, time.February, 14), CreationDate: day(2025, time.January, 27),
				AssignDate: dayPtr(2025, time.January, 28), CompletionDate: dayPtr(2025, time.February, 12),
				PicturesEdited: 140, Notes: "White background, consistent shadows", CallerName: "Ivan",
				ImageHint: "sneaker product",
			},
			{
				ID: "PROJ-005", Name: "Tech Summit Day Two", Status: model.StatusDone,
				EditorID: ed("ED-004"), Category: model.CategoryEvent,
				Deadline: day(2025, time.March, 3), CreationDate: day(2025, time.February, 20),
				AssignDate: dayPtr(2025, time.February, 21), CompletionDate: dayPtr(2025, time.March, 7),
				PicturesEdited: 210, Notes: "Stage shots first", CallerName: "Lena",
				ImageHint: "conference stage",
			},
			{
				ID: "PROJ-006", Name: "Okafor Family Portraits", Status: model.StatusInProgress,
				EditorID: ed("ED-002"), Category: model.CategoryPersonal,
				Deadline: day(2025, time.April, 18), CreationDate: day(2025, time.March, 30),
				AssignDate: dayPtr(2025, time.April, 1),
				Notes: "Client wants film look", CallerName: "Lena",
				ImageHint: "family portrait",
			},
			{
				ID: "PROJ-007", Name: "Riverside Engagement Shoot", Status: model.StatusAssigned,
				EditorID: ed("ED-003"), Category: model.CategoryWedding,
				Deadline: day(2025, time.May, 6), CreationDate: day(2025, time.April, 12),
				AssignDate: dayPtr(2025, time.April, 14),
				Notes: "Golden hour set", CallerName: "Ruth",
				ImageHint: "engaged couple",
			},
			{
				ID: "PROJ-008", Name: "Downtown Loft Staging", Status: model.StatusPending,
				EditorID: ed("ED-004"), Category: model.CategoryRealEstate,
				Deadline: day(2025, time.May, 20), CreationDate: day(2025, time.April, 25),
				AssignDate: dayPtr(2025, time.April, 28),
				Notes: "Waiting on furniture selection from client", CallerName: "Ivan",
				ImageHint: "loft interior",
			},
			{
				ID: "PROJ-009", Name: "Artisan Coffee Packshots", Status: model.StatusNew,
				Category: model.CategoryProduct,
				Deadline: day(2025, time.June, 9), CreationDate: day(2025, time.May, 15),
				Notes: "Twelve SKUs", CallerName: "Lena",
				ImageHint: "coffee bag",
			},
			{
				ID: "PROJ-010", Name: "Charity Gala Highlights", Status: model.StatusNew,
				Category: model.CategoryEvent,
				Deadline: day(2025, time.June, 21), CreationDate: day(2025, time.May, 30),
				Notes: "Sponsor wall shots mandatory", CallerName: "Ruth",
				ImageHint: "gala dinner",
			},
			{
				ID: "PROJ-011", Name: "Meridian Law Headshots", Status: model.StatusInProgress,
				EditorID: ed("ED-001"), Category: model.CategoryCorporate,
				Deadline: day(2025, time.July, 4), CreationDate: day(2025, time.June, 10),
				AssignDate: dayPtr(2025, time.June, 12),
				Notes: "Match previous partner portraits", CallerName: "Ivan",
				ImageHint: "business portrait",
			},
			{
				ID: "PROJ-012", Name: "Graduation Portrait Set", Status: model.StatusNew,
				Category: model.CategoryPersonal,
				Deadline: day(2025, time.July, 18), CreationDate: day(2025, time.June, 25),
				CallerName: "Lena",
				ImageHint: "graduation portrait",
			},
		},
	}
}
