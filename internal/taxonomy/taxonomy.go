// Package taxonomy loads the embedded skill knowledge base and builds the
// lookup structures the extractor and matcher operate on: an alias index
// resolving surface forms to canonical skills, and a symmetric weighted
// graph of related skills.
package taxonomy

// RelatedSkill is one weighted edge in the semantic graph.
type RelatedSkill struct {
	Skill  string  `json:"skill"`
	Weight float64 `json:"weight"`
}

// Skill is one canonical skill record after indexing.
type Skill struct {
	Canonical    string
	Category     string
	Synonyms     []string
	IsDomainTerm bool
}

// entry is the raw shape of one nonTechnical record in the data file.
type entry struct {
	Category     string         `json:"category"`
	Synonyms     []string       `json:"synonyms"`
	Related      []RelatedSkill `json:"related,omitempty"`
	IsDomainTerm bool           `json:"isDomainTerm,omitempty"`
}

// data is the raw shape of the embedded taxonomy file.
type data struct {
	DefaultCategory     string                         `json:"defaultCategory"`
	TechnicalCategories map[string]string              `json:"technicalCategories"`
	Technical           map[string]map[string][]string `json:"technical"`
	TechnicalRelations  map[string][]RelatedSkill      `json:"technicalRelations"`
	NonTechnical        map[string]entry               `json:"nonTechnical"`
}
