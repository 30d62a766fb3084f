// Package classifier assigns a category to free text using keyword-occurrence scoring.
//
// The classifier is deliberately simple: it lower-cases the input, counts how
// many keywords from each category's list occur as substrings, and picks the
// category with the highest count. Text matching no keyword at all is
// classified as CategoryGeneral.
//
// Classification is pure and deterministic: the same input always yields the
// same category, and classifying has no side effects.
package classifier

import "strings"

// Category is the classification label attached to every stored memory.
type Category string

const (
	// CategoryPersonal covers family, friends, feelings and personal life.
	CategoryPersonal Category = "personal"

	// CategoryProfessional covers work, business and career topics.
	CategoryProfessional Category = "professional"

	// CategoryTechnical covers code, software and infrastructure topics.
	CategoryTechnical Category = "technical"

	// CategoryGeneral is the fallback when no keyword list matches.
	CategoryGeneral Category = "general"
)

// scoredCategories is the fixed enumeration order used for tie-breaking.
// When two or more categories reach the same maximum positive score, the
// earliest entry wins: personal beats professional beats technical.
var scoredCategories = []Category{
	CategoryPersonal,
	CategoryProfessional,
	CategoryTechnical,
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryPersonal, CategoryProfessional, CategoryTechnical, CategoryGeneral:
		return true
	}
	return false
}

// Categories returns all valid categories in a fixed order.
//
// The returned slice is a copy and can be modified by the caller.
func Categories() []Category {
	return []Category{
		CategoryPersonal,
		CategoryProfessional,
		CategoryTechnical,
		CategoryGeneral,
	}
}

// Classifier scores text against per-category keyword lists.
//
// The zero value is not usable; create instances with New. A Classifier is
// immutable after creation and safe for concurrent use.
//
// Example:
//
//	c := classifier.New(nil) // default keyword sets
//	category := c.Classify("Reunião de trabalho com cliente sobre o projeto")
//	// category == classifier.CategoryProfessional
type Classifier struct {
	// keywords maps each scored category to its lowered keyword list.
	keywords map[Category][]string
}

// New creates a Classifier using the given keyword sets.
//
// If sets is nil, DefaultKeywordSets is used. Keywords are lowered once at
// construction time so that matching is case-insensitive.
func New(sets *KeywordSets) *Classifier {
	if sets == nil {
		sets = DefaultKeywordSets()
	}
	return &Classifier{
		keywords: map[Category][]string{
			CategoryPersonal:     lowerAll(sets.Personal),
			CategoryProfessional: lowerAll(sets.Professional),
			CategoryTechnical:    lowerAll(sets.Technical),
		},
	}
}

// Classify returns the category for the given text.
//
// Scoring counts, for each category, the number of keywords from its list
// that occur as a substring of the lowered text. Matching is not
// word-boundary-aware: a keyword inside another word still counts.
//
// The category with the strictly highest score wins. Ties on a positive score
// are resolved by a fixed enumeration order: personal, then professional,
// then technical. If all scores are zero, CategoryGeneral is returned.
func (c *Classifier) Classify(text string) Category {
	scores := c.Scores(text)

	best := CategoryGeneral
	bestScore := 0
	for _, category := range scoredCategories {
		if scores[category] > bestScore {
			best = category
			bestScore = scores[category]
		}
	}
	return best
}

// Scores returns the raw keyword-occurrence score per scored category.
//
// The map contains an entry for personal, professional and technical;
// CategoryGeneral is never scored. Useful for debugging classification
// decisions.
func (c *Classifier) Scores(text string) map[Category]int {
	lowered := strings.ToLower(text)

	scores := make(map[Category]int, len(scoredCategories))
	for _, category := range scoredCategories {
		count := 0
		for _, keyword := range c.keywords[category] {
			if strings.Contains(lowered, keyword) {
				count++
			}
		}
		scores[category] = count
	}
	return scores
}

// defaultClassifier backs the package-level Classify function.
var defaultClassifier = New(nil)

// Classify categorizes text using the default keyword sets.
//
// It is shorthand for classifier.New(nil).Classify(text).
func Classify(text string) Category {
	return defaultClassifier.Classify(text)
}

// lowerAll returns a copy of keywords with every entry lower-cased.
func lowerAll(keywords []string) []string {
	lowered := make([]string, len(keywords))
	for i, keyword := range keywords {
		lowered[i] = strings.ToLower(keyword)
	}
	return lowered
}
