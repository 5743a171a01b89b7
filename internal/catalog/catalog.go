package catalog

import "strings"

// Kind is one entry in the fallacy catalog
type Kind struct {
	ID    string `json:"id"`    // stable machine token, unique
	Label string `json:"label"` // display name
}

// Detail explains a fallacy for prompt context
type Detail struct {
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
}

// Catalog is the fixed, ordered set of detectable fallacy kinds plus
// reference definitions used as prompt context. Built once at startup,
// immutable afterwards. Model-produced ids that are not in the catalog are
// discarded, never added at runtime.
type Catalog struct {
	kinds   []Kind
	byID    map[string]Kind
	details map[string]Detail // keyed by label
}

// UnknownLabel is returned when an id cannot be resolved
const UnknownLabel = "Unknown Type"

// New builds a catalog from kinds and their label-keyed details
func New(kinds []Kind, details map[string]Detail) *Catalog {
	byID := make(map[string]Kind, len(kinds))
	for _, k := range kinds {
		byID[k.ID] = k
	}
	return &Catalog{
		kinds:   kinds,
		byID:    byID,
		details: details,
	}
}

// Kinds returns the detectable kinds in catalog order
func (c *Catalog) Kinds() []Kind {
	return c.kinds
}

// IDs returns the detectable kind ids in catalog order
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.kinds))
	for i, k := range c.kinds {
		ids[i] = k.ID
	}
	return ids
}

// Has reports whether id names a detectable kind
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// LabelFor resolves an id to its display label, or UnknownLabel
func (c *Catalog) LabelFor(id string) string {
	if k, ok := c.byID[id]; ok {
		return k.Label
	}
	return UnknownLabel
}

// DetailFor returns the definition and examples for an id.
// Falls back to an empty detail if the id or its label is not described.
func (c *Catalog) DetailFor(id string) Detail {
	k, ok := c.byID[id]
	if !ok {
		return Detail{}
	}
	// Details are keyed by the bare English label, so strip any
	// parenthesized translation suffix before lookup.
	label := k.Label
	if idx := strings.Index(label, " ("); idx > 0 {
		label = label[:idx]
	}
	return c.details[label]
}

// PromptReference renders every known definition (detectable kinds and the
// extended reference entries) as prompt context
func (c *Catalog) PromptReference() string {
	var b strings.Builder
	for _, label := range referenceOrder {
		d, ok := c.details[label]
		if !ok {
			continue
		}
		b.WriteString(label)
		b.WriteString(": ")
		b.WriteString(d.Definition)
		if len(d.Examples) > 0 {
			b.WriteString(" Examples: ")
			b.WriteString(strings.Join(d.Examples, " / "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
