package refdata

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// PriceListUpdated is the date the price list was last reviewed.
	PriceListUpdated = "2025-02-01"

	PriceListDisclaimer = "এই মূল্যতালিকা শুধুমাত্র একটি অনুমানিক নির্দেশিকা। প্রকৃত মূল্য অবস্থান, বাজার পরিস্থিতি এবং সরবরাহকারীর উপর নির্ভর করে পরিবর্তিত হতে পারে।"
)

type (
	// PriceItem is a market price in BDT per unit.
	PriceItem struct {
		ID          string          `json:"id"`
		Name        string          `json:"name"`
		NameBn      string          `json:"nameBn"`
		Unit        string          `json:"unit"`
		UnitBn      string          `json:"unitBn"`
		Price       decimal.Decimal `json:"price"`
		Category    string          `json:"category"`
		Description string          `json:"description,omitempty"`
	}

	PriceCategory struct {
		ID     string      `json:"id"`
		Name   string      `json:"name"`
		NameBn string      `json:"nameBn"`
		Icon   string      `json:"icon"`
		Items  []PriceItem `json:"items"`
	}

	CostLine struct {
		ItemID   string          `json:"itemId"`
		Quantity decimal.Decimal `json:"quantity"`
	}

	CostDetail struct {
		Item     PriceItem       `json:"item"`
		Quantity decimal.Decimal `json:"quantity"`
		Cost     decimal.Decimal `json:"cost"`
	}

	CostEstimate struct {
		Subtotal decimal.Decimal `json:"subtotal"`
		VAT      decimal.Decimal `json:"vat"`
		Total    decimal.Decimal `json:"total"`
		Details  []CostDetail    `json:"details"`
	}
)

// AllPriceCategories returns material categories followed by labor rates.
func AllPriceCategories() []PriceCategory {
	return slices.Concat(materialPrices, laborRates)
}

func MaterialPriceCategories() []PriceCategory { return slices.Clone(materialPrices) }

func LaborRateCategories() []PriceCategory { return slices.Clone(laborRates) }

func PriceCategoryByID(id string) (PriceCategory, bool) {
	for _, c := range AllPriceCategories() {
		if c.ID == id {
			return c, true
		}
	}
	return PriceCategory{}, false
}

func PriceItemByID(itemID string) (PriceItem, bool) {
	for _, c := range AllPriceCategories() {
		for _, item := range c.Items {
			if item.ID == itemID {
				return item, true
			}
		}
	}
	return PriceItem{}, false
}

// SearchPriceItems matches the English name and category case-insensitively
// and the Bengali name verbatim.
func SearchPriceItems(query string) []PriceItem {
	lower := strings.ToLower(query)
	var results []PriceItem
	for _, c := range AllPriceCategories() {
		for _, item := range c.Items {
			if strings.Contains(strings.ToLower(item.Name), lower) ||
				strings.Contains(item.NameBn, query) ||
				strings.Contains(strings.ToLower(item.Category), lower) {
				results = append(results, item)
			}
		}
	}
	return results
}

// MaterialCost prices the lines at list price plus standard VAT.
// Unknown item ids are skipped.
func MaterialCost(lines []CostLine) CostEstimate {
	est := CostEstimate{Subtotal: decimal.Zero, Details: []CostDetail{}}
	for _, l := range lines {
		item, ok := PriceItemByID(l.ItemID)
		if !ok {
			continue
		}
		cost := item.Price.Mul(l.Quantity)
		est.Subtotal = est.Subtotal.Add(cost)
		est.Details = append(est.Details, CostDetail{Item: item, Quantity: l.Quantity, Cost: cost})
	}
	est.VAT = est.Subtotal.Mul(VATStandard).Div(decimal.NewFromInt(100))
	est.Total = est.Subtotal.Add(est.VAT)
	return est
}

var materialPrices = []PriceCategory{
	{
		ID: "cement", Name: "Cement", NameBn: "সিমেন্ট", Icon: "package",
		Items: []PriceItem{
			{ID: "cement-1", Name: "Ordinary Portland Cement (OPC)", NameBn: "অর্ডিনারি পোর্টল্যান্ড সিমেন্ট", Unit: "bag", UnitBn: "ব্যাগ", Price: decimal.NewFromInt(520), Category: "cement", Description: "50 kg bag"},
			{ID: "cement-2", Name: "Portland Composite Cement (PCC)", NameBn: "পোর্টল্যান্ড কম্পোজিট সিমেন্ট", Unit: "bag", UnitBn: "ব্যাগ", Price: decimal.NewFromInt(480), Category: "cement", Description: "50 kg bag"},
			{ID: "cement-3", Name: "White Cement", NameBn: "সাদা সিমেন্ট", Unit: "bag", UnitBn: "ব্যাগ", Price: decimal.NewFromInt(1200), Category: "cement", Description: "25 kg bag"},
		},
	},
	{
		ID: "steel", Name: "Steel & Rod", NameBn: "স্টিল ও রড", Icon: "activity",
		Items: []PriceItem{
			{ID: "steel-1", Name: "60 Grade MS Rod (10mm)", NameBn: "৬০ গ্রেড এমএস রড (১০মিমি)", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(95), Category: "steel"},
			{ID: "steel-2", Name: "60 Grade MS Rod (12mm)", NameBn: "৬০ গ্রেড এমএস রড (১২মিমি)", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(95), Category: "steel"},
			{ID: "steel-3", Name: "60 Grade MS Rod (16mm)", NameBn: "৬০ গ্রেড এমএস রড (১৬মিমি)", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(95), Category: "steel"},
			{ID: "steel-4", Name: "60 Grade MS Rod (20mm)", NameBn: "৬০ গ্রেড এমএস রড (২০মিমি)", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(95), Category: "steel"},
			{ID: "steel-5", Name: "40 Grade MS Rod", NameBn: "৪০ গ্রেড এমএস রড", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(88), Category: "steel"},
			{ID: "steel-6", Name: "Structural Steel", NameBn: "স্ট্রাকচারাল স্টিল", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(110), Category: "steel"},
		},
	},
	{
		ID: "bricks", Name: "Bricks & Blocks", NameBn: "ইট ও ব্লক", Icon: "grid",
		Items: []PriceItem{
			{ID: "brick-1", Name: "First Class Bricks (Pakki)", NameBn: "পাকা ইট (প্রথম শ্রেণী)", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(12), Category: "bricks"},
			{ID: "brick-2", Name: "Second Class Bricks", NameBn: "দ্বিতীয় শ্রেণীর ইট", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(9), Category: "bricks"},
			{ID: "brick-3", Name: "Concrete Blocks", NameBn: "কংক্রিট ব্লক", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(45), Category: "bricks"},
			{ID: "brick-4", Name: "Hollow Blocks", NameBn: "হোলো ব্লক", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(55), Category: "bricks"},
			{ID: "brick-5", Name: "Ceramic Bricks", NameBn: "সিরামিক ইট", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(18), Category: "bricks"},
		},
	},
	{
		ID: "sand", Name: "Sand & Aggregates", NameBn: "বালি ও পাথর", Icon: "layers",
		Items: []PriceItem{
			{ID: "sand-1", Name: "Mawa Sand (River)", NameBn: "মাওয়া বালি (নদী)", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(45), Category: "sand"},
			{ID: "sand-2", Name: "Sylhet Sand", NameBn: "সিলেটের বালি", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(55), Category: "sand"},
			{ID: "sand-3", Name: "Stone Chips (1/2\")", NameBn: "পাথরের চিপস (১/২\")", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(85), Category: "sand"},
			{ID: "sand-4", Name: "Stone Chips (3/4\")", NameBn: "পাথরের চিপস (৩/৪\")", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(90), Category: "sand"},
			{ID: "sand-5", Name: "Stone Dust", NameBn: "পাথরের গুঁড়া", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(40), Category: "sand"},
			{ID: "sand-6", Name: "Brick Chips", NameBn: "ইটের চিপস", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(35), Category: "sand"},
		},
	},
	{
		ID: "wood", Name: "Wood & Timber", NameBn: "কাঠ ও টিম্বার", Icon: "box",
		Items: []PriceItem{
			{ID: "wood-1", Name: "Teak Wood (Segun)", NameBn: "সেগুন কাঠ", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(2500), Category: "wood"},
			{ID: "wood-2", Name: "Chittagong Wood", NameBn: "চট্টগ্রামের কাঠ", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(1800), Category: "wood"},
			{ID: "wood-3", Name: "Garjan Wood", NameBn: "গর্জন কাঠ", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(2200), Category: "wood"},
			{ID: "wood-4", Name: "Plywood (18mm)", NameBn: "প্লাইউড (১৮মিমি)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(120), Category: "wood"},
			{ID: "wood-5", Name: "MDF Board", NameBn: "এমডিএফ বোর্ড", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(80), Category: "wood"},
		},
	},
	{
		ID: "tiles", Name: "Tiles & Flooring", NameBn: "টাইলস ও ফ্লোরিং", Icon: "layout",
		Items: []PriceItem{
			{ID: "tile-1", Name: "Ceramic Wall Tiles", NameBn: "সিরামিক ওয়াল টাইলস", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(35), Category: "tiles"},
			{ID: "tile-2", Name: "Ceramic Floor Tiles", NameBn: "সিরামিক ফ্লোর টাইলস", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(45), Category: "tiles"},
			{ID: "tile-3", Name: "Porcelain Tiles", NameBn: "পরসেলিন টাইলস", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(85), Category: "tiles"},
			{ID: "tile-4", Name: "Vitrified Tiles", NameBn: "ভিট্রিফাইড টাইলস", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(120), Category: "tiles"},
			{ID: "tile-5", Name: "Marble Tiles", NameBn: "মার্বেল টাইলস", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(250), Category: "tiles"},
			{ID: "tile-6", Name: "Granite Tiles", NameBn: "গ্রানাইট টাইলস", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(350), Category: "tiles"},
		},
	},
	{
		ID: "paint", Name: "Paint & Chemicals", NameBn: "পেইন্ট ও রসায়ন", Icon: "droplet",
		Items: []PriceItem{
			{ID: "paint-1", Name: "Plastic Paint (per liter)", NameBn: "প্লাস্টিক পেইন্ট (প্রতি লিটার)", Unit: "liter", UnitBn: "লিটার", Price: decimal.NewFromInt(280), Category: "paint"},
			{ID: "paint-2", Name: "Enamel Paint", NameBn: "ইনামেল পেইন্ট", Unit: "liter", UnitBn: "লিটার", Price: decimal.NewFromInt(450), Category: "paint"},
			{ID: "paint-3", Name: "Distemper", NameBn: "ডিস্টেম্পার", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(150), Category: "paint"},
			{ID: "paint-4", Name: "Primer", NameBn: "প্রাইমার", Unit: "liter", UnitBn: "লিটার", Price: decimal.NewFromInt(320), Category: "paint"},
			{ID: "paint-5", Name: "Wall Putty", NameBn: "ওয়াল পুটি", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(45), Category: "paint"},
			{ID: "paint-6", Name: "Waterproofing Chemical", NameBn: "ওয়াটারপ্রুফিং কেমিক্যাল", Unit: "liter", UnitBn: "লিটার", Price: decimal.NewFromInt(380), Category: "paint"},
		},
	},
	{
		ID: "electrical", Name: "Electrical Items", NameBn: "ইলেকট্রিক্যাল সামগ্রী", Icon: "zap",
		Items: []PriceItem{
			{ID: "elec-1", Name: "2.5mm Wire (BRB)", NameBn: "২.৫মিমি তার (বিআরবি)", Unit: "meter", UnitBn: "মিটার", Price: decimal.NewFromInt(35), Category: "electrical"},
			{ID: "elec-2", Name: "4mm Wire (BRB)", NameBn: "৪মিমি তার (বিআরবি)", Unit: "meter", UnitBn: "মিটার", Price: decimal.NewFromInt(55), Category: "electrical"},
			{ID: "elec-3", Name: "6mm Wire (BRB)", NameBn: "৬মিমি তার (বিআরবি)", Unit: "meter", UnitBn: "মিটার", Price: decimal.NewFromInt(85), Category: "electrical"},
			{ID: "elec-4", Name: "Switch Board (5-pin)", NameBn: "সুইচ বোর্ড (৫-পিন)", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(120), Category: "electrical"},
			{ID: "elec-5", Name: "LED Bulb (12W)", NameBn: "এলইডি বাল্ব (১২ওয়াট)", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(180), Category: "electrical"},
			{ID: "elec-6", Name: "Ceiling Fan", NameBn: "সিলিং ফ্যান", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(2500), Category: "electrical"},
			{ID: "elec-7", Name: "Circuit Breaker (32A)", NameBn: "সার্কিট ব্রেকার (৩২এ)", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(450), Category: "electrical"},
		},
	},
	{
		ID: "plumbing", Name: "Plumbing Items", NameBn: "প্লাম্বিং সামগ্রী", Icon: "anchor",
		Items: []PriceItem{
			{ID: "plumb-1", Name: "uPVC Pipe (1\")", NameBn: "ইউপিভিসি পাইপ (১\")", Unit: "meter", UnitBn: "মিটার", Price: decimal.NewFromInt(85), Category: "plumbing"},
			{ID: "plumb-2", Name: "uPVC Pipe (2\")", NameBn: "ইউপিভিসি পাইপ (২\")", Unit: "meter", UnitBn: "মিটার", Price: decimal.NewFromInt(150), Category: "plumbing"},
			{ID: "plumb-3", Name: "GI Pipe (1\")", NameBn: "জিআই পাইপ (১\")", Unit: "meter", UnitBn: "মিটার", Price: decimal.NewFromInt(450), Category: "plumbing"},
			{ID: "plumb-4", Name: "Water Tap", NameBn: "ওয়াটার ট্যাপ", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(350), Category: "plumbing"},
			{ID: "plumb-5", Name: "Wash Basin", NameBn: "ওয়াশ বেসিন", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(2500), Category: "plumbing"},
			{ID: "plumb-6", Name: "Commode", NameBn: "কমোড", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(5500), Category: "plumbing"},
			{ID: "plumb-7", Name: "Water Tank (1000L)", NameBn: "ওয়াটার ট্যাংক (১০০০লি)", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(8500), Category: "plumbing"},
		},
	},
	{
		ID: "glass", Name: "Glass & Aluminum", NameBn: "কাঁচ ও অ্যালুমিনিয়াম", Icon: "square",
		Items: []PriceItem{
			{ID: "glass-1", Name: "Clear Glass (5mm)", NameBn: "স্বচ্ছ কাঁচ (৫মিমি)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(85), Category: "glass"},
			{ID: "glass-2", Name: "Tinted Glass (5mm)", NameBn: "টিনটেড কাঁচ (৫মিমি)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(120), Category: "glass"},
			{ID: "glass-3", Name: "Reflective Glass", NameBn: "রিফ্লেক্টিভ কাঁচ", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(250), Category: "glass"},
			{ID: "glass-4", Name: "Aluminum Section", NameBn: "অ্যালুমিনিয়াম সেকশন", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(320), Category: "glass"},
			{ID: "glass-5", Name: "Aluminum Window Frame", NameBn: "অ্যালুমিনিয়াম উইন্ডো ফ্রেম", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(450), Category: "glass"},
		},
	},
}

var laborRates = []PriceCategory{
	{
		ID: "masonry", Name: "Masonry Work", NameBn: "রাজমিস্ত্রির কাজ", Icon: "hard-hat",
		Items: []PriceItem{
			{ID: "mason-1", Name: "Master Mason (Rajmistri)", NameBn: "মাস্টার রাজমিস্ত্রি", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(1200), Category: "masonry"},
			{ID: "mason-2", Name: "Helper (Noukar)", NameBn: "সহকারী (নৌকর)", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(700), Category: "masonry"},
			{ID: "mason-3", Name: "Brick Work (per sqft)", NameBn: "ইটের কাজ (প্রতি বর্গফুট)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(45), Category: "masonry"},
			{ID: "mason-4", Name: "Plaster Work (per sqft)", NameBn: "প্লাস্টার কাজ (প্রতি বর্গফুট)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(35), Category: "masonry"},
			{ID: "mason-5", Name: "Tile Fitting (per sqft)", NameBn: "টাইলস বসানো (প্রতি বর্গফুট)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(40), Category: "masonry"},
		},
	},
	{
		ID: "carpentry", Name: "Carpentry Work", NameBn: "কাঠমিস্ত্রির কাজ", Icon: "tool",
		Items: []PriceItem{
			{ID: "carp-1", Name: "Master Carpenter", NameBn: "মাস্টার কাঠমিস্ত্রি", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(1100), Category: "carpentry"},
			{ID: "carp-2", Name: "Helper", NameBn: "সহকারী", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(650), Category: "carpentry"},
			{ID: "carp-3", Name: "Door Frame (per cft)", NameBn: "দরজার ফ্রেম (প্রতি ঘনফুট)", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(350), Category: "carpentry"},
			{ID: "carp-4", Name: "Window Frame (per cft)", NameBn: "জানালার ফ্রেম (প্রতি ঘনফুট)", Unit: "cft", UnitBn: "ঘনফুট", Price: decimal.NewFromInt(320), Category: "carpentry"},
			{ID: "carp-5", Name: "False Ceiling (per sqft)", NameBn: "ফলস সিলিং (প্রতি বর্গফুট)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(85), Category: "carpentry"},
		},
	},
	{
		ID: "electrical-labor", Name: "Electrical Work", NameBn: "ইলেকট্রিক্যাল কাজ", Icon: "zap",
		Items: []PriceItem{
			{ID: "elec-lab-1", Name: "Electrician (Master)", NameBn: "ইলেকট্রিশিয়ান (মাস্টার)", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(1000), Category: "electrical-labor"},
			{ID: "elec-lab-2", Name: "Electrician (Helper)", NameBn: "ইলেকট্রিশিয়ান (সহকারী)", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(600), Category: "electrical-labor"},
			{ID: "elec-lab-3", Name: "Wiring (per point)", NameBn: "ওয়্যারিং (প্রতি পয়েন্ট)", Unit: "point", UnitBn: "পয়েন্ট", Price: decimal.NewFromInt(350), Category: "electrical-labor"},
			{ID: "elec-lab-4", Name: "Fan Installation", NameBn: "ফ্যান ইনস্টলেশন", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(250), Category: "electrical-labor"},
			{ID: "elec-lab-5", Name: "Light Fitting", NameBn: "লাইট ফিটিং", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(150), Category: "electrical-labor"},
		},
	},
	{
		ID: "plumbing-labor", Name: "Plumbing Work", NameBn: "প্লাম্বিং কাজ", Icon: "anchor",
		Items: []PriceItem{
			{ID: "plumb-lab-1", Name: "Plumber (Master)", NameBn: "প্লাম্বার (মাস্টার)", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(1100), Category: "plumbing-labor"},
			{ID: "plumb-lab-2", Name: "Plumber (Helper)", NameBn: "প্লাম্বার (সহকারী)", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(650), Category: "plumbing-labor"},
			{ID: "plumb-lab-3", Name: "Water Line (per point)", NameBn: "ওয়াটার লাইন (প্রতি পয়েন্ট)", Unit: "point", UnitBn: "পয়েন্ট", Price: decimal.NewFromInt(450), Category: "plumbing-labor"},
			{ID: "plumb-lab-4", Name: "Sanitary Installation", NameBn: "স্যানিটারি ইনস্টলেশন", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(800), Category: "plumbing-labor"},
			{ID: "plumb-lab-5", Name: "Overhead Tank Setup", NameBn: "ওভারহেড ট্যাংক সেটআপ", Unit: "piece", UnitBn: "পিস", Price: decimal.NewFromInt(2500), Category: "plumbing-labor"},
		},
	},
	{
		ID: "painting", Name: "Painting Work", NameBn: "রং করার কাজ", Icon: "droplet",
		Items: []PriceItem{
			{ID: "paint-lab-1", Name: "Painter (Master)", NameBn: "পেইন্টার (মাস্টার)", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(900), Category: "painting"},
			{ID: "paint-lab-2", Name: "Painter (Helper)", NameBn: "পেইন্টার (সহকারী)", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(550), Category: "painting"},
			{ID: "paint-lab-3", Name: "Wall Painting (per sqft)", NameBn: "দেওয়াল রং (প্রতি বর্গফুট)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(18), Category: "painting"},
			{ID: "paint-lab-4", Name: "Wood Polishing (per sqft)", NameBn: "কাঠ পালিশ (প্রতি বর্গফুট)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(45), Category: "painting"},
			{ID: "paint-lab-5", Name: "Putty Work (per sqft)", NameBn: "পুটি কাজ (প্রতি বর্গফুট)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(12), Category: "painting"},
		},
	},
	{
		ID: "steel-work", Name: "Steel Work", NameBn: "স্টিলের কাজ", Icon: "activity",
		Items: []PriceItem{
			{ID: "steel-lab-1", Name: "Steel Fitter (Rod Mistri)", NameBn: "স্টিল ফিটার (রড মিস্ত্রি)", Unit: "day", UnitBn: "দিন", Price: decimal.NewFromInt(1000), Category: "steel-work"},
			{ID: "steel-lab-2", Name: "Steel Binding (per kg)", NameBn: "স্টিল বাঁধাই (প্রতি কেজি)", Unit: "kg", UnitBn: "কেজি", Price: decimal.NewFromInt(8), Category: "steel-work"},
			{ID: "steel-lab-3", Name: "Shuttering (per sqft)", NameBn: "শাটারিং (প্রতি বর্গফুট)", Unit: "sqft", UnitBn: "বর্গফুট", Price: decimal.NewFromInt(35), Category: "steel-work"},
		},
	},
}

