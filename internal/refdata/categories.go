package refdata

import (
	"slices"

	"github.com/shopspring/decimal"
)

// CategoryKind tells expense categories from income categories.
type CategoryKind string

const (
	KindExpense CategoryKind = "expense"
	KindIncome  CategoryKind = "income"
)

type (
	ExpenseCategory struct {
		ID            string        `json:"id"`
		Name          string        `json:"name"`
		NameBn        string        `json:"nameBn"`
		Icon          string        `json:"icon"`
		Color         string        `json:"color"`
		Description   string        `json:"description"`
		Subcategories []SubCategory `json:"subcategories"`
	}

	SubCategory struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		NameBn      string `json:"nameBn"`
		Description string `json:"description,omitempty"`
	}

	// CategoryRef is the flat form returned by AllCategories.
	CategoryRef struct {
		ID     string       `json:"id"`
		Name   string       `json:"name"`
		NameBn string       `json:"nameBn"`
		Type   CategoryKind `json:"type"`
	}

	// QuickExpense is a one-tap preset for a common purchase.
	QuickExpense struct {
		CategoryID    string          `json:"categoryId"`
		SubcategoryID string          `json:"subcategoryId"`
		Description   string          `json:"description"`
		DescriptionBn string          `json:"descriptionBn"`
		DefaultAmount decimal.Decimal `json:"defaultAmount"`
	}
)

// ExpenseCategories returns the construction expense categories in display order.
func ExpenseCategories() []ExpenseCategory { return slices.Clone(expenseCategories) }

// IncomeCategories returns the income categories in display order.
func IncomeCategories() []ExpenseCategory { return slices.Clone(incomeCategories) }

// CategoryByID searches expense categories first, then income categories.
func CategoryByID(id string) (ExpenseCategory, bool) {
	for _, list := range [][]ExpenseCategory{expenseCategories, incomeCategories} {
		for _, c := range list {
			if c.ID == id {
				return c, true
			}
		}
	}
	return ExpenseCategory{}, false
}

func SubcategoryByID(categoryID, subcategoryID string) (SubCategory, bool) {
	c, ok := CategoryByID(categoryID)
	if !ok {
		return SubCategory{}, false
	}
	for _, s := range c.Subcategories {
		if s.ID == subcategoryID {
			return s, true
		}
	}
	return SubCategory{}, false
}

// AllCategories flattens expense then income categories.
func AllCategories() []CategoryRef {
	out := make([]CategoryRef, 0, len(expenseCategories)+len(incomeCategories))
	for _, c := range expenseCategories {
		out = append(out, CategoryRef{ID: c.ID, Name: c.Name, NameBn: c.NameBn, Type: KindExpense})
	}
	for _, c := range incomeCategories {
		out = append(out, CategoryRef{ID: c.ID, Name: c.Name, NameBn: c.NameBn, Type: KindIncome})
	}
	return out
}

// CategoryColors maps category ids to chart colors.
var CategoryColors = map[string]string{
	"materials":      "#006A4E",
	"labor":          "#F42A41",
	"equipment":      "#2196F3",
	"utilities":      "#FF9800",
	"permits":        "#9C27B0",
	"consulting":     "#00BCD4",
	"land":           "#795548",
	"office":         "#607D8B",
	"marketing":      "#E91E63",
	"taxes":          "#4CAF50",
	"miscellaneous":  "#9E9E9E",
	"project-income": "#006A4E",
	"service-income": "#2196F3",
	"other-income":   "#FF9800",
}

// CategoryColor returns a neutral grey for unknown ids.
func CategoryColor(id string) string {
	if c, ok := CategoryColors[id]; ok {
		return c
	}
	return "#9E9E9E"
}

func QuickExpenses() []QuickExpense { return slices.Clone(quickExpenses) }

var expenseCategories = []ExpenseCategory{
	{
		ID: "materials", Name: "Materials", NameBn: "নির্মাণ সামগ্রী", Icon: "package", Color: "#006A4E",
		Description: "Construction materials and supplies",
		Subcategories: []SubCategory{
			{ID: "mat-cement", Name: "Cement", NameBn: "সিমেন্ট"},
			{ID: "mat-steel", Name: "Steel & Rods", NameBn: "স্টিল ও রড"},
			{ID: "mat-bricks", Name: "Bricks & Blocks", NameBn: "ইট ও ব্লক"},
			{ID: "mat-sand", Name: "Sand & Aggregates", NameBn: "বালি ও পাথর"},
			{ID: "mat-wood", Name: "Wood & Timber", NameBn: "কাঠ ও টিম্বার"},
			{ID: "mat-tiles", Name: "Tiles & Flooring", NameBn: "টাইলস ও ফ্লোরিং"},
			{ID: "mat-paint", Name: "Paint & Chemicals", NameBn: "পেইন্ট ও রসায়ন"},
			{ID: "mat-electrical", Name: "Electrical Items", NameBn: "ইলেকট্রিক্যাল সামগ্রী"},
			{ID: "mat-plumbing", Name: "Plumbing Items", NameBn: "প্লাম্বিং সামগ্রী"},
			{ID: "mat-glass", Name: "Glass & Aluminum", NameBn: "কাঁচ ও অ্যালুমিনিয়াম"},
			{ID: "mat-hardware", Name: "Hardware", NameBn: "হার্ডওয়্যার"},
			{ID: "mat-other", Name: "Other Materials", NameBn: "অন্যান্য সামগ্রী"},
		},
	},
	{
		ID: "labor", Name: "Labor", NameBn: "শ্রমিক", Icon: "users", Color: "#F42A41",
		Description: "Worker wages and labor costs",
		Subcategories: []SubCategory{
			{ID: "lab-mason", Name: "Masonry", NameBn: "রাজমিস্ত্রি"},
			{ID: "lab-carpenter", Name: "Carpentry", NameBn: "কাঠমিস্ত্রি"},
			{ID: "lab-electrician", Name: "Electrical", NameBn: "ইলেকট্রিশিয়ান"},
			{ID: "lab-plumber", Name: "Plumbing", NameBn: "প্লাম্বার"},
			{ID: "lab-painter", Name: "Painting", NameBn: "পেইন্টার"},
			{ID: "lab-steel", Name: "Steel Work", NameBn: "স্টিল কাজ"},
			{ID: "lab-helper", Name: "Helpers", NameBn: "সহকারী শ্রমিক"},
			{ID: "lab-supervisor", Name: "Supervisor", NameBn: "সুপারভাইজার"},
			{ID: "lab-overtime", Name: "Overtime", NameBn: "অতিরিক্ত সময়"},
			{ID: "lab-other", Name: "Other Labor", NameBn: "অন্যান্য শ্রমিক"},
		},
	},
	{
		ID: "equipment", Name: "Equipment", NameBn: "যন্ত্রপাতি", Icon: "truck", Color: "#2196F3",
		Description: "Equipment rental and purchase",
		Subcategories: []SubCategory{
			{ID: "eqp-rental", Name: "Equipment Rental", NameBn: "যন্ত্রপাতি ভাড়া"},
			{ID: "eqp-purchase", Name: "Equipment Purchase", NameBn: "যন্ত্রপাতি ক্রয়"},
			{ID: "eqp-maintenance", Name: "Maintenance", NameBn: "রক্ষণাবেক্ষণ"},
			{ID: "eqp-fuel", Name: "Fuel", NameBn: "জ্বালানি"},
			{ID: "eqp-transport", Name: "Transportation", NameBn: "পরিবহন"},
			{ID: "eqp-other", Name: "Other Equipment", NameBn: "অন্যান্য যন্ত্রপাতি"},
		},
	},
	{
		ID: "utilities", Name: "Utilities", NameBn: "উপযোগিতা", Icon: "zap", Color: "#FF9800",
		Description: "Electricity, water, and other utilities",
		Subcategories: []SubCategory{
			{ID: "utl-electricity", Name: "Electricity", NameBn: "বিদ্যুৎ"},
			{ID: "utl-water", Name: "Water", NameBn: "পানি"},
			{ID: "utl-gas", Name: "Gas", NameBn: "গ্যাস"},
			{ID: "utl-generator", Name: "Generator Fuel", NameBn: "জেনারেটর জ্বালানি"},
			{ID: "utl-internet", Name: "Internet/Phone", NameBn: "ইন্টারনেট/ফোন"},
			{ID: "utl-other", Name: "Other Utilities", NameBn: "অন্যান্য উপযোগিতা"},
		},
	},
	{
		ID: "permits", Name: "Permits & Fees", NameBn: "অনুমতি ও ফি", Icon: "file-text", Color: "#9C27B0",
		Description: "Government permits and legal fees",
		Subcategories: []SubCategory{
			{ID: "perm-building", Name: "Building Permit", NameBn: "বিল্ডিং পারমিট"},
			{ID: "perm-environment", Name: "Environment Clearance", NameBn: "পরিবেশ অনুমতি"},
			{ID: "perm-fire", Name: "Fire Safety", NameBn: "ফায়ার সেফটি"},
			{ID: "perm-rajuk", Name: "RAJUK/Development", NameBn: "রাজউক/উন্নয়ন"},
			{ID: "perm-legal", Name: "Legal Fees", NameBn: "আইনি ফি"},
			{ID: "perm-survey", Name: "Survey Fees", NameBn: "জরিপ ফি"},
			{ID: "perm-other", Name: "Other Permits", NameBn: "অন্যান্য অনুমতি"},
		},
	},
	{
		ID: "consulting", Name: "Professional Services", NameBn: "পেশাদার সেবা", Icon: "briefcase", Color: "#00BCD4",
		Description: "Architect, engineer, and consultant fees",
		Subcategories: []SubCategory{
			{ID: "prof-architect", Name: "Architect", NameBn: "স্থপতি"},
			{ID: "prof-engineer", Name: "Structural Engineer", NameBn: "স্ট্রাকচারাল ইঞ্জিনিয়ার"},
			{ID: "prof-interior", Name: "Interior Designer", NameBn: "ইন্টেরিয়ার ডিজাইনার"},
			{ID: "prof-consultant", Name: "Consultant", NameBn: "পরামর্শক"},
			{ID: "prof-project", Name: "Project Manager", NameBn: "প্রজেক্ট ম্যানেজার"},
			{ID: "prof-accountant", Name: "Accountant", NameBn: "হিসাবরক্ষক"},
			{ID: "prof-other", Name: "Other Services", NameBn: "অন্যান্য সেবা"},
		},
	},
	{
		ID: "land", Name: "Land & Site", NameBn: "জমি ও স্থান", Icon: "map-pin", Color: "#795548",
		Description: "Land related expenses",
		Subcategories: []SubCategory{
			{ID: "land-purchase", Name: "Land Purchase", NameBn: "জমি ক্রয়"},
			{ID: "land-lease", Name: "Land Lease", NameBn: "জমি লিজ"},
			{ID: "land-clearing", Name: "Site Clearing", NameBn: "স্থান পরিষ্কার"},
			{ID: "land-leveling", Name: "Site Leveling", NameBn: "স্থান সমতলকরণ"},
			{ID: "land-fencing", Name: "Site Fencing", NameBn: "স্থান বেষ্টনী"},
			{ID: "land-security", Name: "Site Security", NameBn: "স্থান নিরাপত্তা"},
			{ID: "land-other", Name: "Other Land Expenses", NameBn: "অন্যান্য জমি ব্যয়"},
		},
	},
	{
		ID: "office", Name: "Office Expenses", NameBn: "দফতর ব্যয়", Icon: "home", Color: "#607D8B",
		Description: "Office and administrative expenses",
		Subcategories: []SubCategory{
			{ID: "off-rent", Name: "Office Rent", NameBn: "দফতর ভাড়া"},
			{ID: "off-stationery", Name: "Stationery", NameBn: "স্টেশনারি"},
			{ID: "off-printing", Name: "Printing", NameBn: "প্রিন্টিং"},
			{ID: "off-software", Name: "Software", NameBn: "সফটওয়্যার"},
			{ID: "off-insurance", Name: "Insurance", NameBn: "বীমা"},
			{ID: "off-salary", Name: "Staff Salary", NameBn: "কর্মচারী বেতন"},
			{ID: "off-other", Name: "Other Office", NameBn: "অন্যান্য দফতর ব্যয়"},
		},
	},
	{
		ID: "marketing", Name: "Marketing", NameBn: "বিপণন", Icon: "speaker", Color: "#E91E63",
		Description: "Marketing and advertising expenses",
		Subcategories: []SubCategory{
			{ID: "mkt-advertising", Name: "Advertising", NameBn: "বিজ্ঞাপন"},
			{ID: "mkt-brochure", Name: "Brochures/Signs", NameBn: "ব্রোশিয়ার/সাইনবোর্ড"},
			{ID: "mkt-website", Name: "Website", NameBn: "ওয়েবসাইট"},
			{ID: "mkt-events", Name: "Events/Exhibitions", NameBn: "অনুষ্ঠান/প্রদর্শনী"},
			{ID: "mkt-commission", Name: "Sales Commission", NameBn: "বিক্রয় কমিশন"},
			{ID: "mkt-other", Name: "Other Marketing", NameBn: "অন্যান্য বিপণন"},
		},
	},
	{
		ID: "taxes", Name: "Taxes & VAT", NameBn: "কর ও ভ্যাট", Icon: "percent", Color: "#4CAF50",
		Description: "Tax payments and VAT",
		Subcategories: []SubCategory{
			{ID: "tax-vat", Name: "VAT", NameBn: "ভ্যাট"},
			{ID: "tax-income", Name: "Income Tax", NameBn: "আয়কর"},
			{ID: "tax-advance", Name: "Advance Tax", NameBn: "অগ্রিম কর"},
			{ID: "tax-ait", Name: "AIT", NameBn: "এআইটি"},
			{ID: "tax-registration", Name: "Trade License", NameBn: "ট্রেড লাইসেন্স"},
			{ID: "tax-other", Name: "Other Taxes", NameBn: "অন্যান্য কর"},
		},
	},
	{
		ID: "miscellaneous", Name: "Miscellaneous", NameBn: "বিবিধ", Icon: "more-horizontal", Color: "#9E9E9E",
		Description: "Other expenses",
		Subcategories: []SubCategory{
			{ID: "misc-gifts", Name: "Gifts/Entertainment", NameBn: "উপহার/বিনোদন"},
			{ID: "misc-donation", Name: "Donations", NameBn: "দান"},
			{ID: "misc-penalty", Name: "Penalties", NameBn: "জরিমানা"},
			{ID: "misc-bank", Name: "Bank Charges", NameBn: "ব্যাংক চার্জ"},
			{ID: "misc-other", Name: "Other Expenses", NameBn: "অন্যান্য ব্যয়"},
		},
	},
}

var incomeCategories = []ExpenseCategory{
	{
		ID: "project-income", Name: "Project Income", NameBn: "প্রকল্প আয়", Icon: "home", Color: "#006A4E",
		Description: "Income from construction projects",
		Subcategories: []SubCategory{
			{ID: "inc-residential", Name: "Residential", NameBn: "আবাসিক"},
			{ID: "inc-commercial", Name: "Commercial", NameBn: "বাণিজ্যিক"},
			{ID: "inc-industrial", Name: "Industrial", NameBn: "শিল্প"},
			{ID: "inc-renovation", Name: "Renovation", NameBn: "পুনর্নির্মাণ"},
			{ID: "inc-maintenance", Name: "Maintenance", NameBn: "রক্ষণাবেক্ষণ"},
		},
	},
	{
		ID: "service-income", Name: "Service Income", NameBn: "সেবা আয়", Icon: "tool", Color: "#2196F3",
		Description: "Income from services",
		Subcategories: []SubCategory{
			{ID: "inc-consulting", Name: "Consulting", NameBn: "পরামর্শ"},
			{ID: "inc-design", Name: "Design Services", NameBn: "ডিজাইন সেবা"},
			{ID: "inc-supervision", Name: "Supervision", NameBn: "তদারকি"},
			{ID: "inc-rental", Name: "Equipment Rental", NameBn: "যন্ত্রপাতি ভাড়া"},
		},
	},
	{
		ID: "other-income", Name: "Other Income", NameBn: "অন্যান্য আয়", Icon: "plus-circle", Color: "#FF9800",
		Description: "Other sources of income",
		Subcategories: []SubCategory{
			{ID: "inc-interest", Name: "Interest Income", NameBn: "সুদ আয়"},
			{ID: "inc-dividend", Name: "Dividend", NameBn: "লভ্যাংশ"},
			{ID: "inc-sale", Name: "Asset Sale", NameBn: "সম্পদ বিক্রয়"},
			{ID: "inc-refund", Name: "Refunds", NameBn: "ফেরত"},
			{ID: "inc-other", Name: "Miscellaneous", NameBn: "বিবিধ"},
		},
	},
}

var quickExpenses = []QuickExpense{
	{CategoryID: "materials", SubcategoryID: "mat-cement", Description: "Cement Purchase", DescriptionBn: "সিমেন্ট ক্রয়", DefaultAmount: decimal.NewFromInt(5200)},
	{CategoryID: "materials", SubcategoryID: "mat-steel", Description: "Steel Rods", DescriptionBn: "স্টিল রড", DefaultAmount: decimal.NewFromInt(9500)},
	{CategoryID: "materials", SubcategoryID: "mat-bricks", Description: "Bricks", DescriptionBn: "ইট", DefaultAmount: decimal.NewFromInt(1200)},
	{CategoryID: "labor", SubcategoryID: "lab-mason", Description: "Mason Wages", DescriptionBn: "রাজমিস্ত্রির মজুরি", DefaultAmount: decimal.NewFromInt(1200)},
	{CategoryID: "labor", SubcategoryID: "lab-helper", Description: "Helper Wages", DescriptionBn: "সহকারীর মজুরি", DefaultAmount: decimal.NewFromInt(700)},
	{CategoryID: "utilities", SubcategoryID: "utl-electricity", Description: "Electricity Bill", DescriptionBn: "বিদ্যুৎ বিল", DefaultAmount: decimal.NewFromInt(5000)},
	{CategoryID: "utilities", SubcategoryID: "utl-water", Description: "Water Bill", DescriptionBn: "পানির বিল", DefaultAmount: decimal.NewFromInt(1500)},
	{CategoryID: "equipment", SubcategoryID: "eqp-rental", Description: "Equipment Rental", DescriptionBn: "যন্ত্রপাতি ভাড়া", DefaultAmount: decimal.NewFromInt(5000)},
	{CategoryID: "equipment", SubcategoryID: "eqp-transport", Description: "Transportation", DescriptionBn: "পরিবহন", DefaultAmount: decimal.NewFromInt(3000)},
	{CategoryID: "taxes", SubcategoryID: "tax-vat", Description: "VAT Payment", DescriptionBn: "ভ্যাট পরিশোধ", DefaultAmount: decimal.NewFromInt(15000)},
}
