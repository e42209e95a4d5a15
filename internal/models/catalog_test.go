package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	if err := DefaultCatalog().Validate(); err != nil {
		t.Fatalf("DefaultCatalog().Validate() = %v, want nil", err)
	}
}

func TestValidateRejectsBrokenCatalogs(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Catalog)
	}{
		{"no fruits", func(c *Catalog) { c.Fruits = nil }},
		{"no recipes", func(c *Catalog) { c.Recipes = nil }},
		{"no customers", func(c *Catalog) { c.Customers = nil }},
		{"duplicate fruit", func(c *Catalog) { c.Fruits = append(c.Fruits, c.Fruits[0]) }},
		{"unknown fruit in recipe", func(c *Catalog) { c.Recipes[0].FruitIDs = []string{"durian"} }},
		{"too many fruits in recipe", func(c *Catalog) {
			c.Recipes[0].FruitIDs = []string{"apple", "orange", "grape", "banana"}
		}},
		{"zero time limit", func(c *Catalog) { c.Customers[0].BaseTimeLimitSeconds = 0 }},
		{"zero bonus", func(c *Catalog) { c.Customers[0].BonusMultiplier = 0 }},
		{"empty pool for hard", func(c *Catalog) {
			// Hard requires at least two fruits per recipe.
			var simple []Recipe
			for _, r := range c.Recipes {
				if r.Complexity() == 1 {
					simple = append(simple, r)
				}
			}
			c.Recipes = simple
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			catalog := DefaultCatalog()
			tc.mutate(catalog)
			if err := catalog.Validate(); err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestRecipesForAppliesDifficultyFilter(t *testing.T) {
	catalog := DefaultCatalog()

	for _, r := range catalog.RecipesFor(DifficultyEasy) {
		if r.Complexity() > 2 {
			t.Errorf("easy pool contains %q with %d fruits", r.ID, r.Complexity())
		}
	}
	for _, r := range catalog.RecipesFor(DifficultyHard) {
		if r.Complexity() < 2 {
			t.Errorf("hard pool contains %q with %d fruits", r.ID, r.Complexity())
		}
	}
	if got, want := len(catalog.RecipesFor(DifficultyMedium)), len(catalog.Recipes); got != want {
		t.Errorf("medium pool = %d recipes, want all %d", got, want)
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	data := `
fruits:
  - {id: apple, name: Apple}
  - {id: orange, name: Orange}
recipes:
  - {id: blend, name: Blend, fruit_ids: [apple, orange], base_points: 25}
customers:
  - {id: regular, name: Regular, bonus_multiplier: 1.0, base_time_limit_seconds: 20, base_penalty_points: 5}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog() error = %v", err)
	}
	if len(catalog.Recipes) != 1 || catalog.Recipes[0].BasePoints != 25 {
		t.Errorf("unexpected recipes: %+v", catalog.Recipes)
	}
}

func TestLoadCatalogRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	// No customers: must fail validation, not load.
	data := `
fruits:
  - {id: apple, name: Apple}
recipes:
  - {id: juice, name: Juice, fruit_ids: [apple], base_points: 10}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCatalog(path); err == nil {
		t.Error("LoadCatalog() = nil error for invalid catalog")
	}
}

func TestFruitLookup(t *testing.T) {
	catalog := DefaultCatalog()

	if _, ok := catalog.Fruit("apple"); !ok {
		t.Error("Fruit(\"apple\") not found")
	}
	if _, ok := catalog.Fruit("durian"); ok {
		t.Error("Fruit(\"durian\") = found, want missing")
	}
}
