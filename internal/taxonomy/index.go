package taxonomy

import (
	"sort"
	"strings"
)

// maxRelationPasses bounds the fixpoint loop that resolves pending
// relation declarations. Relations still unresolved after this many
// passes reference terms the taxonomy does not know and are dropped.
const maxRelationPasses = 32

const defaultEdgeWeight = 0.6

// Index is the queryable form of the taxonomy: canonical skill records,
// an alias lookup, and the symmetric related-skill graph.
type Index struct {
	skills  map[string]*Skill
	aliases map[string]string
	related map[string][]RelatedSkill

	sortedAliases    []string
	sortedCanonicals []string
}

type pendingRelation struct {
	source string
	target string
	weight float64
}

// buildIndex constructs the index deterministically: groups and skill keys
// are walked in lexicographic order, so alias collisions always resolve
// the same way (first writer wins) regardless of map iteration order.
func buildIndex(d *data) *Index {
	ix := &Index{
		skills:  make(map[string]*Skill),
		aliases: make(map[string]string),
		related: make(map[string][]RelatedSkill),
	}

	var pending []pendingRelation

	for _, group := range sortedKeys(d.Technical) {
		category, ok := d.TechnicalCategories[group]
		if !ok {
			category = d.DefaultCategory
		}
		skills := d.Technical[group]
		for _, name := range sortedKeys(skills) {
			ix.register(name, category, skills[name], false)
		}
	}

	for _, source := range sortedKeys(d.TechnicalRelations) {
		for _, rel := range d.TechnicalRelations[source] {
			pending = append(pending, pendingRelation{source: source, target: rel.Skill, weight: rel.Weight})
		}
	}

	for _, name := range sortedKeys(d.NonTechnical) {
		e := d.NonTechnical[name]
		category := e.Category
		if category == "" {
			category = d.DefaultCategory
		}
		ix.register(name, category, e.Synonyms, e.IsDomainTerm)
		for _, rel := range e.Related {
			pending = append(pending, pendingRelation{source: name, target: rel.Skill, weight: rel.Weight})
		}
	}

	ix.resolveRelations(pending)

	ix.sortedAliases = sortedKeys(ix.aliases)
	ix.sortedCanonicals = sortedKeys(ix.skills)
	return ix
}

// register adds a canonical skill record. When the canonical name is
// already taken (the same skill appears in more than one group) the new
// synonyms are merged into the existing record and its category and
// domain-term flag are left alone.
func (ix *Index) register(canonical, category string, synonyms []string, domainTerm bool) {
	rec, exists := ix.skills[canonical]
	if !exists {
		rec = &Skill{
			Canonical:    canonical,
			Category:     category,
			IsDomainTerm: domainTerm,
		}
		ix.skills[canonical] = rec
		ix.addAlias(canonical, canonical)
	}

	for _, syn := range synonyms {
		syn = strings.ToLower(strings.TrimSpace(syn))
		if syn == "" {
			continue
		}
		if !contains(rec.Synonyms, syn) {
			rec.Synonyms = append(rec.Synonyms, syn)
		}
		ix.addAlias(syn, canonical)
	}
}

// addAlias maps a surface form to its canonical skill. First writer wins:
// an alias claimed by an earlier skill is never reassigned.
func (ix *Index) addAlias(alias, canonical string) {
	alias = strings.ToLower(alias)
	if _, taken := ix.aliases[alias]; taken {
		return
	}
	ix.aliases[alias] = canonical
}

// resolveRelations runs the pending relation declarations to a fixpoint.
// A declaration resolves once both endpoints are known aliases; resolved
// edges are registered symmetrically. Declarations that never resolve are
// silently dropped after the pass cap.
func (ix *Index) resolveRelations(pending []pendingRelation) {
	for pass := 0; pass < maxRelationPasses && len(pending) > 0; pass++ {
		var unresolved []pendingRelation
		for _, rel := range pending {
			src, srcOK := ix.Resolve(rel.source)
			dst, dstOK := ix.Resolve(rel.target)
			if !srcOK || !dstOK {
				unresolved = append(unresolved, rel)
				continue
			}
			ix.addEdge(src, dst, normalizeWeight(rel.weight))
		}
		if len(unresolved) == len(pending) {
			return
		}
		pending = unresolved
	}
}

// addEdge registers a symmetric edge between two canonical skills.
// Self-edges are ignored and an existing edge keeps its original weight.
func (ix *Index) addEdge(a, b string, weight float64) {
	if a == b {
		return
	}
	ix.addDirectedEdge(a, b, weight)
	ix.addDirectedEdge(b, a, weight)
}

func (ix *Index) addDirectedEdge(from, to string, weight float64) {
	for _, rel := range ix.related[from] {
		if rel.Skill == to {
			return
		}
	}
	ix.related[from] = append(ix.related[from], RelatedSkill{Skill: to, Weight: weight})
}

// normalizeWeight applies the edge-weight policy: a missing weight means
// a moderate default, and everything is clamped to [0.1, 1.0].
func normalizeWeight(w float64) float64 {
	if w == 0 {
		w = defaultEdgeWeight
	}
	if w < 0.1 {
		return 0.1
	}
	if w > 1.0 {
		return 1.0
	}
	return w
}

// Resolve maps any known surface form (canonical name, synonym, display
// name) to its canonical skill. Matching is case-insensitive.
func (ix *Index) Resolve(term string) (string, bool) {
	canonical, ok := ix.aliases[strings.ToLower(strings.TrimSpace(term))]
	return canonical, ok
}

// Lookup returns the record for a canonical skill name.
func (ix *Index) Lookup(canonical string) (*Skill, bool) {
	rec, ok := ix.skills[canonical]
	return rec, ok
}

// Related returns the outgoing edges of a canonical skill. The returned
// slice is shared; callers must not mutate it.
func (ix *Index) Related(canonical string) []RelatedSkill {
	return ix.related[canonical]
}

// RelationWeight reports the edge weight between two canonical skills,
// if an edge exists.
func (ix *Index) RelationWeight(a, b string) (float64, bool) {
	for _, rel := range ix.related[a] {
		if rel.Skill == b {
			return rel.Weight, true
		}
	}
	return 0, false
}

// Aliases returns every known surface form in lexicographic order.
func (ix *Index) Aliases() []string {
	return ix.sortedAliases
}

// Canonicals returns every canonical skill name in lexicographic order.
func (ix *Index) Canonicals() []string {
	return ix.sortedCanonicals
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
