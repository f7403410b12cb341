package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Category names an overlay or dataset.
type Category string

// Overlay and dataset categories.
const (
	CategoryClimate    Category = "climate"
	CategoryPopulation Category = "population"
	CategoryPlagues    Category = "plagues"
	CategoryReligions  Category = "religions"
	CategoryTechnology Category = "technology"
	CategoryTrade      Category = "trade"
	CategoryWars       Category = "wars"
	CategoryWonders    Category = "wonders"
	CategoryRulers     Category = "rulers"
)

// OverlayCategories lists the categories that produce draw commands, in draw order.
func OverlayCategories() []Category {
	return []Category{
		CategoryClimate,
		CategoryPopulation,
		CategoryTrade,
		CategoryReligions,
		CategoryTechnology,
		CategoryPlagues,
		CategoryWars,
		CategoryWonders,
	}
}

// DatasetCategories lists every category backed by a dataset file.
func DatasetCategories() []Category {
	return append(OverlayCategories(), CategoryRulers)
}

// ParseCategory parses a category name case-insensitively.
// "tech" is accepted for technology and "routes" for trade.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "tech":
		return CategoryTechnology, nil
	case "routes", "trade-routes":
		return CategoryTrade, nil
	}
	for _, c := range DatasetCategories() {
		if string(c) == name {
			return c, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownCategory, "parse category"), "category", s)
}

// ParseCategories parses a comma separated list, skipping empty items.
func ParseCategories(list string) ([]Category, error) {
	var out []Category
	for item := range strings.SplitSeq(list, ",") {
		if strings.TrimSpace(item) == "" {
			continue
		}
		c, err := ParseCategory(item)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}
