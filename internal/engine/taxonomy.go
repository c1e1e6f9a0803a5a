package engine

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
)

//go:embed taxonomy.json
var taxonomyJSON []byte

// Taxonomy holds the keyword reference data the engine matches against.
// Terms are stored lower-cased; matching is substring or whole-word
// depending on the category (see regional.go and skills.go).
type Taxonomy struct {
	Version    string   `json:"version"`
	Skills     []string `json:"skills"`
	Locations  []string `json:"locations"`
	Languages  []string `json:"languages"`
	Compliance []string `json:"compliance"`
	Provinces  []string `json:"provinces"`
}

// LoadTaxonomy parses taxonomy data from raw JSON.
func LoadTaxonomy(data []byte) (Taxonomy, error) {
	var t Taxonomy
	if err := json.Unmarshal(data, &t); err != nil {
		return Taxonomy{}, fmt.Errorf("parse taxonomy: %w", err)
	}
	if strings.TrimSpace(t.Version) == "" {
		return Taxonomy{}, fmt.Errorf("taxonomy version is required")
	}
	t.normalize()
	return t, nil
}

// DefaultTaxonomy returns the embedded South African market taxonomy.
func DefaultTaxonomy() Taxonomy {
	t, err := LoadTaxonomy(taxonomyJSON)
	if err != nil {
		// The embedded file ships with the binary; a parse failure is a build defect.
		panic(err)
	}
	return t
}

// regionalTerms returns the terms counted by the regional keyword check:
// locations, languages and compliance vocabulary.
func (t Taxonomy) regionalTerms() []string {
	out := make([]string, 0, len(t.Locations)+len(t.Languages)+len(t.Compliance))
	out = append(out, t.Locations...)
	out = append(out, t.Languages...)
	out = append(out, t.Compliance...)
	return out
}

func (t *Taxonomy) normalize() {
	t.Skills = lowerAll(t.Skills)
	t.Locations = lowerAll(t.Locations)
	t.Languages = lowerAll(t.Languages)
	t.Compliance = lowerAll(t.Compliance)
	t.Provinces = lowerAll(t.Provinces)
}

func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		trimmed := strings.ToLower(strings.TrimSpace(term))
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
