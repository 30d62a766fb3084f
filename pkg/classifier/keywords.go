package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// KeywordSets contains the keyword lists for the three scored categories.
//
// CategoryGeneral has no list: it is the fallback when nothing matches.
// Sets can be loaded from a YAML file with LoadKeywordSets, e.g.:
//
//	personal:
//	  - família
//	  - amigo
//	professional:
//	  - trabalho
//	technical:
//	  - código
type KeywordSets struct {
	// Personal is the keyword list for CategoryPersonal.
	Personal []string `yaml:"personal"`

	// Professional is the keyword list for CategoryProfessional.
	Professional []string `yaml:"professional"`

	// Technical is the keyword list for CategoryTechnical.
	Technical []string `yaml:"technical"`
}

// DefaultKeywordSets returns the built-in keyword lists.
//
// The lists are Portuguese. Deployments with a different vocabulary can
// load their own lists with LoadKeywordSets.
func DefaultKeywordSets() *KeywordSets {
	return &KeywordSets{
		Personal: []string{
			"família", "amigo", "casa", "hobby",
			"sentimento", "pessoal", "vida", "relacionamento",
		},
		Professional: []string{
			"trabalho", "empresa", "projeto", "cliente",
			"reunião", "carreira", "negócio", "profissional",
		},
		Technical: []string{
			"código", "programa", "api", "servidor", "database",
			"algoritmo", "software", "bug", "feature",
		},
	}
}

// LoadKeywordSets loads keyword sets from a YAML file.
//
// Every category list is optional in the file; a missing list falls back to
// the corresponding default list, so a file can override just one category.
//
// Returns an error if the file cannot be read or is not valid YAML.
func LoadKeywordSets(path string) (*KeywordSets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: read keyword file: %w", err)
	}

	var sets KeywordSets
	if err := yaml.Unmarshal(data, &sets); err != nil {
		return nil, fmt.Errorf("classifier: parse keyword file: %w", err)
	}

	defaults := DefaultKeywordSets()
	if len(sets.Personal) == 0 {
		sets.Personal = defaults.Personal
	}
	if len(sets.Professional) == 0 {
		sets.Professional = defaults.Professional
	}
	if len(sets.Technical) == 0 {
		sets.Technical = defaults.Technical
	}

	return &sets, nil
}
