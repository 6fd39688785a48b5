package analysis

import (
	"sort"
	"strings"

	"github.com/sjzar/mailstat/internal/model"
)

const unknownField = "unknown"

// Known data artifact in the corpus: a catch-all "e-mail"@enron.com row
// that is not a real person.
const (
	bogusName   = "e-mail"
	bogusDomain = "enron.com"
)

var addrQuoteStripper = strings.NewReplacer(`"`, "", `'`, "")

// Resolver deduplicates persons by canonical display name. The first raw
// id seen with a canonical name owns the unified identity for every later
// raw id carrying the same name, so rows must be folded in source order.
// The first-seen table lives only for one resolution pass.
type Resolver struct {
	firstSeen map[string]int64
}

func NewResolver() *Resolver {
	return &Resolver{firstSeen: make(map[string]int64)}
}

// Resolve maps one raw person row to its Person record. ok is false for
// rows that are filtered out: unknown name or mail domain, the bogus
// corpus artifact row, or a name that canonicalizes to nothing.
func (r *Resolver) Resolve(row model.ActorRow) (model.Person, bool) {
	name, domain := splitIdentity(row)
	if name == bogusName && domain == bogusDomain {
		return model.Person{}, false
	}
	if name == unknownField || domain == unknownField {
		return model.Person{}, false
	}

	canonical := CanonicalName(name)
	if canonical == "" {
		return model.Person{}, false
	}

	unified, seen := r.firstSeen[canonical]
	if !seen {
		unified = row.RawID
		r.firstSeen[canonical] = unified
	}
	return model.Person{RawID: row.RawID, UnifiedID: unified, CanonicalName: canonical}, true
}

// ResolveAll folds rows through a fresh Resolver and returns the surviving
// persons in ascending raw id order. The ordering is a presentation
// convenience for deterministic serialization.
func ResolveAll(rows []model.ActorRow) []model.Person {
	r := NewResolver()
	out := make([]model.Person, 0, len(rows))
	for _, row := range rows {
		if p, ok := r.Resolve(row); ok {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RawID < out[j].RawID })
	return out
}

// CanonicalName normalizes a display name for deduplication: uppercase,
// dots become spaces, doubled spaces collapse to one, surrounding space is
// trimmed. Applying it to an already canonical name is a no-op.
func CanonicalName(name string) string {
	s := strings.ToUpper(name)
	s = strings.ReplaceAll(s, ".", " ")
	for strings.Contains(s, "  ") {
		s = strings.ReplaceAll(s, "  ", " ")
	}
	return strings.TrimSpace(s)
}

// splitIdentity derives the raw display name and mail domain for one row.
// The display name wins when present and non-empty after stripping quotes;
// otherwise the address local part stands in for the name.
func splitIdentity(row model.ActorRow) (name, domain string) {
	local, domain := splitAddress(row.Email)
	name = local
	if row.DisplayName != nil {
		if stripped := strings.ReplaceAll(*row.DisplayName, `"`, ""); stripped != "" {
			name = stripped
		}
	}
	return name, domain
}

// splitAddress splits a mail address into local part and domain, stripping
// embedded quote characters first. A nil address yields unknown/unknown;
// an address without exactly one "@" keeps the whole stripped string as
// the local part with an unknown domain.
func splitAddress(addr *string) (local, domain string) {
	if addr == nil {
		return unknownField, unknownField
	}
	s := addrQuoteStripper.Replace(*addr)
	parts := strings.Split(s, "@")
	if len(parts) != 2 {
		return s, unknownField
	}
	return parts[0], parts[1]
}
