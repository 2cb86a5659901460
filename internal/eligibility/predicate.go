// internal/eligibility/predicate.go
package eligibility

// Predicate is a store-agnostic boolean filter expression over plan document
// fields. Map lowers it into the document store's native filter grammar
// (equality, $in set membership, $and/$or composition). An empty predicate
// lowers to an empty filter, which matches every document.
type Predicate interface {
	Map() map[string]interface{}
}

type eqPredicate struct {
	field string
	value interface{}
}

type inPredicate struct {
	field  string
	values []string
}

type orPredicate struct {
	clauses []Predicate
}

type andPredicate struct {
	equalities []Predicate
	groups     []Predicate
}

// Eq matches documents whose field equals value.
func Eq(field string, value interface{}) Predicate {
	return eqPredicate{field: field, value: value}
}

// In matches documents whose field value is (or contains) any of values.
func In(field string, values ...string) Predicate {
	return inPredicate{field: field, values: values}
}

// Or matches documents satisfying at least one clause.
func Or(clauses ...Predicate) Predicate {
	return orPredicate{clauses: clauses}
}

// Empty matches every document.
func Empty() Predicate {
	return andPredicate{}
}

func (p eqPredicate) Map() map[string]interface{} {
	return map[string]interface{}{p.field: p.value}
}

func (p inPredicate) Map() map[string]interface{} {
	return map[string]interface{}{
		p.field: map[string]interface{}{"$in": p.values},
	}
}

func (p orPredicate) Map() map[string]interface{} {
	clauses := make([]interface{}, 0, len(p.clauses))
	for _, c := range p.clauses {
		clauses = append(clauses, c.Map())
	}
	return map[string]interface{}{"$or": clauses}
}

// Map combines top-level equality constraints with the OR-group list. Two or
// more groups are conjoined under $and; a single group is merged into the
// filter directly, exactly mirroring the store's implicit-AND semantics for
// sibling keys.
func (p andPredicate) Map() map[string]interface{} {
	filter := map[string]interface{}{}
	for _, eq := range p.equalities {
		for k, v := range eq.Map() {
			filter[k] = v
		}
	}

	switch len(p.groups) {
	case 0:
	case 1:
		for k, v := range p.groups[0].Map() {
			filter[k] = v
		}
	default:
		combined := make([]interface{}, 0, len(p.groups))
		for _, g := range p.groups {
			combined = append(combined, g.Map())
		}
		filter["$and"] = combined
	}

	return filter
}
