package refdata

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCategoryTables(t *testing.T) {
	if n := len(ExpenseCategories()); n != 11 {
		t.Fatalf("expected 11 expense categories, got %d", n)
	}
	if n := len(IncomeCategories()); n != 3 {
		t.Fatalf("expected 3 income categories, got %d", n)
	}
	all := AllCategories()
	if len(all) != 14 || all[0].Type != KindExpense || all[13].Type != KindIncome {
		t.Fatalf("unexpected flat list %+v", all)
	}
	for _, c := range all {
		if _, ok := CategoryColors[c.ID]; !ok {
			t.Fatalf("category %s has no color", c.ID)
		}
	}
	if len(QuickExpenses()) != 10 {
		t.Fatalf("expected 10 quick expenses")
	}
}

func TestCategoryLookup(t *testing.T) {
	c, ok := CategoryByID("labor")
	if !ok || c.NameBn != "শ্রমিক" {
		t.Fatalf("unexpected labor category %+v", c)
	}
	if _, ok := CategoryByID("service-income"); !ok {
		t.Fatalf("income categories should be searchable")
	}
	s, ok := SubcategoryByID("materials", "mat-cement")
	if !ok || s.Name != "Cement" {
		t.Fatalf("unexpected subcategory %+v", s)
	}
	if _, ok := SubcategoryByID("labor", "mat-cement"); ok {
		t.Fatalf("subcategory must belong to the category")
	}
	if CategoryColor("nope") != "#9E9E9E" {
		t.Fatalf("unknown category should be grey")
	}
}

func TestPriceList(t *testing.T) {
	if n := len(MaterialPriceCategories()); n != 10 {
		t.Fatalf("expected 10 material categories, got %d", n)
	}
	if n := len(LaborRateCategories()); n != 6 {
		t.Fatalf("expected 6 labor categories, got %d", n)
	}
	item, ok := PriceItemByID("cement-1")
	if !ok || !item.Price.Equal(decimal.NewFromInt(520)) {
		t.Fatalf("unexpected cement-1 %+v", item)
	}
	if _, ok := PriceCategoryByID("masonry"); !ok {
		t.Fatalf("labor categories should be searchable")
	}
	if _, ok := PriceItemByID("nope"); ok {
		t.Fatalf("unexpected item")
	}
}

func TestSearchPriceItems(t *testing.T) {
	cases := []struct {
		q    string
		min  int
		want string
	}{
		{"CEMENT", 3, "cement-1"},
		{"সিমেন্ট", 1, "cement-1"},
		{"steel", 6, "steel-1"},
		{"zzz-nothing", 0, ""},
	}
	for _, tc := range cases {
		got := SearchPriceItems(tc.q)
		if len(got) < tc.min {
			t.Fatalf("%q expected at least %d results, got %d", tc.q, tc.min, len(got))
		}
		if tc.want == "" {
			if len(got) != 0 {
				t.Fatalf("%q expected no results", tc.q)
			}
			continue
		}
		found := false
		for _, it := range got {
			if it.ID == tc.want {
				found = true
			}
		}
		if !found {
			t.Fatalf("%q expected %s among results", tc.q, tc.want)
		}
	}
}

func TestMaterialCost(t *testing.T) {
	est := MaterialCost([]CostLine{
		{ItemID: "cement-1", Quantity: decimal.NewFromInt(100)},
		{ItemID: "brick-1", Quantity: decimal.NewFromInt(1000)},
		{ItemID: "missing", Quantity: decimal.NewFromInt(5)},
	})
	// 100*520 + 1000*12
	if !est.Subtotal.Equal(decimal.NewFromInt(64000)) {
		t.Fatalf("expected subtotal 64000, got %s", est.Subtotal)
	}
	if !est.VAT.Equal(decimal.NewFromInt(9600)) || !est.Total.Equal(decimal.NewFromInt(73600)) {
		t.Fatalf("unexpected vat/total %s/%s", est.VAT, est.Total)
	}
	if len(est.Details) != 2 {
		t.Fatalf("unknown items should be skipped, got %d details", len(est.Details))
	}
}

func TestCurrency(t *testing.T) {
	if c := CurrencyByCode("XYZ"); c.Code != "BDT" {
		t.Fatalf("unknown code should fall back to BDT, got %s", c.Code)
	}
	if n := len(AllCurrencies()); n != 10 {
		t.Fatalf("expected 10 currencies, got %d", n)
	}
	cases := []struct {
		amount   string
		from, to string
		want     string
	}{
		{"1000", "BDT", "USD", "8.3"},
		{"1000", "BDT", "INR", "750"},
		{"100", "USD", "USD", "100"},
		{"83", "USD", "BDT", "10000"},
		{"1000", "BDT", "XYZ", "1000"},
	}
	for _, tc := range cases {
		got := ConvertCurrency(decimal.RequireFromString(tc.amount), tc.from, tc.to)
		if !got.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("%s %s->%s expected %s, got %s", tc.amount, tc.from, tc.to, tc.want, got)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		amount string
		code   string
		plain  string
		spaced string
	}{
		{"5200", "BDT", "৳5,200", "৳ 5,200"},
		{"1234567.891", "USD", "$1,234,567.89", "$ 1,234,567.89"},
		{"-1500", "BDT", "-৳1,500", "-৳ 1,500"},
		{"999", "XYZ", "৳999", "৳ 999"},
	}
	for _, tc := range cases {
		d := decimal.RequireFromString(tc.amount)
		if got := FormatCurrency(d, tc.code); got != tc.plain {
			t.Fatalf("%s %s expected %q, got %q", tc.amount, tc.code, tc.plain, got)
		}
		if got := FormatCurrencySymbol(d, tc.code); got != tc.spaced {
			t.Fatalf("%s %s expected %q, got %q", tc.amount, tc.code, tc.spaced, got)
		}
	}
}

func TestTaxTables(t *testing.T) {
	slabs := IncomeTaxSlabs()
	if len(slabs) != 6 || slabs[5].Max.Valid {
		t.Fatalf("expected six slabs with an open top, got %+v", slabs)
	}
	exempt := VATCategories()[3]
	if exempt.ID != "exempt" || exempt.Rate.Valid {
		t.Fatalf("exempt category should have no rate")
	}
	if r, ok := MaterialVATRate("bricks"); !ok || !r.Equal(VATReduced) {
		t.Fatalf("bricks should be reduced rate")
	}
	if _, ok := MaterialVATRate("gold"); ok {
		t.Fatalf("unexpected rate for gold")
	}
}
