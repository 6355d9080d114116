package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"petro-catalog-api/internal/models"
)

func boolPtr(b bool) *bool { return &b }

func floatPtr(f float64) *float64 { return &f }

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

type item struct {
	id, name, description, categoryName, categorySlug, manufacturer string
	features                                                      []string
	rating                                                        float64
	popular, inStock                                              bool
}

func (i item) product() models.Product {
	return models.Product{
		ID:           i.id,
		Name:         i.name,
		Description:  i.description,
		Features:     i.features,
		Category:     models.Category{Name: i.categoryName, Slug: i.categorySlug},
		Rating:       i.rating,
		Popular:      i.popular,
		InStock:      i.inStock,
		Manufacturer: i.manufacturer,
	}
}

func fixture() []models.Product {
	items := []item{
		{"1", "Fuel Dispenser A", "Dual hose retail dispenser", "Dispensers", "dispensers", "Tokheim", []string{"EMV", "Dual display"}, 4.0, true, true},
		{"2", "Tank B", "Underground storage tank", "Storage", "storage", "Acme", []string{}, 4.5, false, false},
		{"3", "Submersible Pump", "High flow turbine pump", "Pumps", "pumps", "Franklin", []string{"Variable speed"}, 3.5, true, true},
		{"4", "Dispenser Nozzle", "Automatic shut-off nozzle", "Dispensers", "dispensers", "Tokheim", []string{"Vapor recovery"}, 4.5, false, true},
		{"5", "ATG Console", "Automatic tank gauge", "Monitoring", "monitoring", "Unknown", []string{"Leak detection", "EMV-ready reporting"}, 0, false, false},
	}
	products := make([]models.Product, len(items))
	for i, it := range items {
		products[i] = it.product()
	}
	return products
}

func TestSearch_TextQueryMatchesFeatureCaseInsensitively(t *testing.T) {
	products := []models.Product{
		{Name: "Fuel Dispenser A", Features: []string{"EMV"}, Category: models.Category{Name: "Dispensers"}},
		{Name: "Tank B", Features: []string{}, Category: models.Category{Name: "Storage"}},
	}

	got := Search(products, "emv", models.ProductFilter{}, models.SortNone)
	assert.Equal(t, []string{"Fuel Dispenser A"}, names(got))
}

func TestSearch_TextQueryFields(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"empty query matches all", "", []string{"Fuel Dispenser A", "Tank B", "Submersible Pump", "Dispenser Nozzle", "ATG Console"}},
		{"name", "NOZZLE", []string{"Dispenser Nozzle"}},
		{"description", "underground", []string{"Tank B"}},
		{"feature", "leak", []string{"ATG Console"}},
		{"category name", "pumps", []string{"Submersible Pump"}},
		{"several fields", "dispenser", []string{"Fuel Dispenser A", "Dispenser Nozzle"}},
		{"no match", "compressor", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(fixture(), tt.query, models.ProductFilter{}, models.SortNone)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestSearch_QueryIsNotTrimmedOrTokenized(t *testing.T) {
	got := Search(fixture(), "tank gauge", models.ProductFilter{}, models.SortNone)
	assert.Equal(t, []string{"ATG Console"}, names(got))

	got = Search(fixture(), "gauge tank", models.ProductFilter{}, models.SortNone)
	assert.Empty(t, got)
}

func TestSearch_Filters(t *testing.T) {
	tests := []struct {
		name    string
		filters models.ProductFilter
		want    []string
	}{
		{"category", models.ProductFilter{Category: "dispensers"}, []string{"Fuel Dispenser A", "Dispenser Nozzle"}},
		{"category is exact", models.ProductFilter{Category: "Dispensers"}, []string{}},
		{"rating threshold inclusive", models.ProductFilter{Rating: floatPtr(4.5)}, []string{"Tank B", "Dispenser Nozzle"}},
		{"manufacturer", models.ProductFilter{Manufacturer: "Tokheim"}, []string{"Fuel Dispenser A", "Dispenser Nozzle"}},
		{"manufacturer is exact", models.ProductFilter{Manufacturer: "tokheim"}, []string{}},
		{"in stock true", models.ProductFilter{InStock: boolPtr(true)}, []string{"Fuel Dispenser A", "Submersible Pump", "Dispenser Nozzle"}},
		{"in stock false", models.ProductFilter{InStock: boolPtr(false)}, []string{"Tank B", "ATG Console"}},
		{"stock unset", models.ProductFilter{}, []string{"Fuel Dispenser A", "Tank B", "Submersible Pump", "Dispenser Nozzle", "ATG Console"}},
		{"NaN rating is no constraint", models.ProductFilter{Rating: floatPtr(math.NaN())}, []string{"Fuel Dispenser A", "Tank B", "Submersible Pump", "Dispenser Nozzle", "ATG Console"}},
		{"combined", models.ProductFilter{Category: "dispensers", InStock: boolPtr(true), Rating: floatPtr(4.2)}, []string{"Dispenser Nozzle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Search(fixture(), "", tt.filters, models.SortNone)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

// Combined filtering must equal the intersection of each criterion applied alone.
func TestSearch_FilterConjunction(t *testing.T) {
	products := fixture()
	queries := []string{"", "dispenser", "emv"}
	filterSets := []models.ProductFilter{
		{},
		{Category: "dispensers"},
		{Category: "dispensers", Manufacturer: "Tokheim"},
		{InStock: boolPtr(true), Rating: floatPtr(4)},
		{InStock: boolPtr(false), Manufacturer: "Unknown"},
		{Category: "storage", InStock: boolPtr(false), Rating: floatPtr(4.5), Manufacturer: "Acme"},
	}

	for _, q := range queries {
		for _, f := range filterSets {
			single := [][]models.Product{
				Search(products, q, models.ProductFilter{}, models.SortNone),
				Search(products, "", models.ProductFilter{Category: f.Category}, models.SortNone),
				Search(products, "", models.ProductFilter{Rating: f.Rating}, models.SortNone),
				Search(products, "", models.ProductFilter{InStock: f.InStock}, models.SortNone),
				Search(products, "", models.ProductFilter{Manufacturer: f.Manufacturer}, models.SortNone),
			}

			want := make([]string, 0)
			for _, p := range products {
				inAll := true
				for _, set := range single {
					if !containsID(set, p.ID) {
						inAll = false
						break
					}
				}
				if inAll {
					want = append(want, p.Name)
				}
			}

			got := Search(products, q, f, models.SortNone)
			assert.Equal(t, want, names(got), "query %q filters %+v", q, f)
		}
	}
}

func containsID(products []models.Product, id string) bool {
	for _, p := range products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func TestSearch_SortByName(t *testing.T) {
	products := []models.Product{
		{Name: "dispenser"}, {Name: "Émulsion tank"}, {Name: "Alpha pump"}, {Name: "beta valve"}, {Name: "Zeta hose"},
	}

	got := Search(products, "", models.ProductFilter{}, models.SortName)
	assert.Equal(t, []string{"Alpha pump", "beta valve", "dispenser", "Émulsion tank", "Zeta hose"}, names(got))

	c := collate.New(language.English)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, c.CompareString(got[i-1].Name, got[i].Name), 0)
	}
}

func TestSearch_SortByRatingIsStableDescending(t *testing.T) {
	got := Search(fixture(), "", models.ProductFilter{}, models.SortRating)
	assert.Equal(t, []string{"Tank B", "Dispenser Nozzle", "Fuel Dispenser A", "Submersible Pump", "ATG Console"}, names(got))

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].Rating, got[i].Rating)
	}
}

func TestSearch_SortByPopular(t *testing.T) {
	products := []models.Product{
		{Name: "X", Popular: true, Rating: 4.0},
		{Name: "Y", Popular: true, Rating: 4.5},
		{Name: "Z", Popular: false, Rating: 5.0},
	}
	got := Search(products, "", models.ProductFilter{}, models.SortPopular)
	assert.Equal(t, []string{"Y", "X", "Z"}, names(got))
}

func TestSearch_SortByPopularPartitions(t *testing.T) {
	got := Search(fixture(), "", models.ProductFilter{}, models.SortPopular)
	assert.Equal(t, []string{"Fuel Dispenser A", "Submersible Pump", "Tank B", "Dispenser Nozzle", "ATG Console"}, names(got))

	seenUnpopular := false
	for i, p := range got {
		if !p.Popular {
			seenUnpopular = true
		} else {
			assert.False(t, seenUnpopular, "popular product after an unpopular one")
		}
		if i > 0 && got[i-1].Popular == p.Popular {
			assert.GreaterOrEqual(t, got[i-1].Rating, p.Rating)
		}
	}
}

func TestSearch_UnknownSortKeepsOrder(t *testing.T) {
	for _, key := range []models.SortKey{models.SortNone, "price", "newest"} {
		got := Search(fixture(), "", models.ProductFilter{}, key)
		assert.Equal(t, names(fixture()), names(got), "sort key %q", key)
	}
}

func TestSearch_DoesNotMutateInput(t *testing.T) {
	input := fixture()
	snapshot := fixture()

	got := Search(input, "", models.ProductFilter{}, models.SortName)
	require.Len(t, got, len(input))
	assert.Equal(t, snapshot, input)

	got[0].Name = "changed"
	assert.Equal(t, snapshot, input)
}

func TestSearch_Idempotent(t *testing.T) {
	products := fixture()
	filters := models.ProductFilter{InStock: boolPtr(true)}

	first := Search(products, "dispenser", filters, models.SortPopular)
	second := Search(products, "dispenser", filters, models.SortPopular)
	assert.Equal(t, first, second)
}

func TestSearch_EmptyInput(t *testing.T) {
	got := Search(nil, "anything", models.ProductFilter{}, models.SortRating)
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, models.SortName, ParseSortKey("name"))
	assert.Equal(t, models.SortRating, ParseSortKey(" Rating "))
	assert.Equal(t, models.SortPopular, ParseSortKey("POPULAR"))
	assert.Equal(t, models.SortNone, ParseSortKey("price"))
	assert.Equal(t, models.SortNone, ParseSortKey(""))
}

func TestFilterProjects(t *testing.T) {
	projects := []models.Project{
		{Slug: "a", Category: models.CategoryConstruction, Status: models.StatusCompleted},
		{Slug: "b", Category: models.CategoryMaintenance, Status: models.StatusOngoing},
		{Slug: "c", Category: models.CategoryConstruction, Status: models.StatusPlanning},
	}

	slugs := func(ps []models.Project) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.Slug
		}
		return out
	}

	assert.Equal(t, []string{"a", "b", "c"}, slugs(FilterProjects(projects, "", "")))
	assert.Equal(t, []string{"a", "c"}, slugs(FilterProjects(projects, models.CategoryConstruction, "")))
	assert.Equal(t, []string{"c"}, slugs(FilterProjects(projects, models.CategoryConstruction, models.StatusPlanning)))
	assert.Empty(t, FilterProjects(projects, models.CategoryInfrastructure, ""))
}
