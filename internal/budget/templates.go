package budget

import (
	"slices"

	"github.com/shopspring/decimal"
)

type Template struct {
	ID            string      `json:"id"`
	Name          string      `json:"name"`
	NameBn        string      `json:"nameBn"`
	Description   string      `json:"description"`
	DescriptionBn string      `json:"descriptionBn"`
	Items         []ItemInput `json:"defaultItems"`
}

func line(categoryID, subcategoryID, description string, estimated int64) ItemInput {
	return ItemInput{
		CategoryID:      categoryID,
		SubcategoryID:   subcategoryID,
		Description:     description,
		EstimatedAmount: decimal.NewFromInt(estimated),
	}
}

var templates = []Template{
	{
		ID:            "residential-1200",
		Name:          "Residential (1200 sqft)",
		NameBn:        "আবাসিক (১২০০ বর্গফুট)",
		Description:   "Standard 3-bedroom residential building",
		DescriptionBn: "স্ট্যান্ডার্ড ৩ বেডরুম আবাসিক ভবন",
		Items: []ItemInput{
			line("materials", "mat-cement", "Cement (400 bags)", 208000),
			line("materials", "mat-steel", "Steel Rods (3000 kg)", 285000),
			line("materials", "mat-bricks", "Bricks (25000 pcs)", 300000),
			line("materials", "mat-sand", "Sand & Aggregates", 150000),
			line("labor", "lab-mason", "Masonry Work", 180000),
			line("labor", "lab-helper", "Helper Labor", 80000),
			line("utilities", "utl-electricity", "Electrical Work", 120000),
			line("utilities", "utl-water", "Plumbing Work", 100000),
			line("materials", "mat-tiles", "Tiles & Flooring", 150000),
			line("materials", "mat-paint", "Painting Work", 80000),
		},
	},
	{
		ID:            "residential-2000",
		Name:          "Residential (2000 sqft)",
		NameBn:        "আবাসিক (২০০০ বর্গফুট)",
		Description:   "Large 4-bedroom residential building",
		DescriptionBn: "বড় ৪ বেডরুম আবাসিক ভবন",
		Items: []ItemInput{
			line("materials", "mat-cement", "Cement (700 bags)", 364000),
			line("materials", "mat-steel", "Steel Rods (5000 kg)", 475000),
			line("materials", "mat-bricks", "Bricks (40000 pcs)", 480000),
			line("materials", "mat-sand", "Sand & Aggregates", 250000),
			line("labor", "lab-mason", "Masonry Work", 300000),
			line("labor", "lab-helper", "Helper Labor", 150000),
			line("utilities", "utl-electricity", "Electrical Work", 200000),
			line("utilities", "utl-water", "Plumbing Work", 180000),
			line("materials", "mat-tiles", "Tiles & Flooring", 280000),
			line("materials", "mat-paint", "Painting Work", 150000),
		},
	},
	{
		ID:            "commercial-3000",
		Name:          "Commercial (3000 sqft)",
		NameBn:        "বাণিজ্যিক (৩০০০ বর্গফুট)",
		Description:   "Commercial office space",
		DescriptionBn: "বাণিজ্যিক অফিস স্পেস",
		Items: []ItemInput{
			line("materials", "mat-cement", "Cement (1000 bags)", 520000),
			line("materials", "mat-steel", "Steel Rods (8000 kg)", 760000),
			line("materials", "mat-bricks", "Bricks (60000 pcs)", 720000),
			line("materials", "mat-glass", "Glass & Aluminum", 400000),
			line("labor", "lab-mason", "Masonry Work", 450000),
			line("utilities", "utl-electricity", "Electrical Work", 350000),
			line("utilities", "utl-water", "Plumbing Work", 250000),
			line("materials", "mat-tiles", "Flooring", 450000),
			line("consulting", "prof-architect", "Architect Fees", 200000),
			line("permits", "perm-building", "Permits & Fees", 150000),
		},
	},
	{
		ID:            "renovation-standard",
		Name:          "Standard Renovation",
		NameBn:        "স্ট্যান্ডার্ড পুনর্নির্মাণ",
		Description:   "Basic renovation package",
		DescriptionBn: "বেসিক পুনর্নির্মাণ প্যাকেজ",
		Items: []ItemInput{
			line("materials", "mat-tiles", "Tile Replacement", 80000),
			line("labor", "lab-painter", "Painting Work", 50000),
			line("utilities", "utl-electricity", "Electrical Updates", 40000),
			line("utilities", "utl-water", "Plumbing Fixes", 30000),
			line("materials", "mat-paint", "Paint & Materials", 35000),
		},
	},
}

func Templates() []Template { return slices.Clone(templates) }

func TemplateByID(id string) (Template, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}
