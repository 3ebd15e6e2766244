package bulk

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// DefaultQualificationRatings is the built-in auto-rate mapping from
// highest qualification to star rating.
var DefaultQualificationRatings = map[string]int{
	"Engineer":      5,
	"Graduate":      4,
	"Post Graduate": 5,
	"Diploma":       3,
	"Intermediate":  2,
}

type ratingRulesFile struct {
	QualificationRatings map[string]int `yaml:"qualification_ratings"`
}

// LoadQualificationRatings reads an auto-rate mapping override from a YAML
// document of the form:
//
//	qualification_ratings:
//	  Engineer: 5
//	  Graduate: 4
func LoadQualificationRatings(r io.Reader) (map[string]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading rating rules: %w", err)
	}
	var f ratingRulesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rating rules: %w", err)
	}
	if len(f.QualificationRatings) == 0 {
		return nil, fmt.Errorf("rating rules define no qualification_ratings")
	}
	for q, r := range f.QualificationRatings {
		if r < 0 || r > 5 {
			return nil, fmt.Errorf("rating for %q out of range: %d", q, r)
		}
	}
	return f.QualificationRatings, nil
}
