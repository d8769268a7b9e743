// Package category maps file extensions to the category folders they belong in.
package category

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"dirtidy/internal/config"
)

// Fallback is the category for extensions no configured category claims.
const Fallback = "Others"

// Resolver answers extension lookups against an ordered category list. The
// mapping is fixed after New; the case folder carries state, so a Resolver
// must not be used from several goroutines at once.
type Resolver struct {
	names  []string
	lookup map[string]string
	lower  cases.Caser
}

// New indexes categories in order. When an extension appears under more than
// one category, the earliest category keeps it.
func New(categories []config.Category) *Resolver {
	r := &Resolver{
		names:  make([]string, 0, len(categories)),
		lookup: make(map[string]string),
		lower:  cases.Lower(language.Und),
	}
	for _, cat := range categories {
		r.names = append(r.names, cat.Name)
		for _, ext := range cat.Extensions {
			key := r.lower.String(ext)
			if _, taken := r.lookup[key]; taken {
				continue
			}
			r.lookup[key] = cat.Name
		}
	}
	return r
}

// Resolve returns the category for ext, compared case-insensitively, or
// Fallback when nothing matches. The empty extension always resolves to
// Fallback.
func (r *Resolver) Resolve(ext string) string {
	if ext == "" {
		return Fallback
	}
	if name, ok := r.lookup[r.lower.String(ext)]; ok {
		return name
	}
	return Fallback
}

// Names lists the configured categories in order, without Fallback.
func (r *Resolver) Names() []string {
	return append([]string(nil), r.names...)
}
