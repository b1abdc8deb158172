// Package deprel parses dependency relation strings such as
// "libfoo >= 1.2" into name/relation/version triples, used by CLI-glue code
// to build a package's Provides/Requires lists from config or a flat file.
package deprel

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer/stateful"
)

// relation tags are read by the participle parser via reflection.
//
//nolint
type relation struct {
	Relation string `@( "=" "=" | "=" | ">" "=" | "<" "=" | ">" | "<" )`
	Version  string `@Number`
}

//nolint
type dependency struct {
	Name      string     `@Ident`
	Relations []relation `(@@ ( "," @@ )?)?`
}

// Relation is one parsed name/comparison/version triple. Relation and
// Version are empty for an unqualified dependency.
type Relation struct {
	Name     string
	Relation string
	Version  string
}

func lexer() *stateful.Definition {
	return stateful.MustSimple([]stateful.Rule{
		{Name: "Comment", Pattern: `(?:#|//)[^\n]*\n?`},
		{Name: "Ident", Pattern: `[a-zA-Z]\w*`},
		{Name: "Number", Pattern: `(\d+\.?)+`},
		{Name: "Punct", Pattern: `[-[!@#$%^&*()+_={}\|:;"'<,>.?/]|]`},
		{Name: "Whitespace", Pattern: `[ \t\n\r]+`},
	})
}

func newParser() *participle.Parser {
	return participle.MustBuild(
		&dependency{},
		participle.Lexer(lexer()),
		participle.Elide("Comment", "Whitespace"),
	)
}

// Parse parses one or more dependency relation strings, one per element,
// into their expanded (name, relation, version) form. A dependency with no
// comparison yields one Relation with empty Relation/Version; a dependency
// with a comma-separated pair of comparisons (e.g. ">=1.0,<2.0") yields one
// Relation per comparison, sharing Name.
func Parse(raw []string) ([]Relation, error) {
	parser := newParser()

	var out []Relation
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#") {
			continue
		}

		var parsed dependency
		if err := parser.ParseString("", line, &parsed); err != nil {
			return nil, fmt.Errorf("deprel: parsing %q: %w", line, err)
		}

		if len(parsed.Relations) == 0 {
			out = append(out, Relation{Name: parsed.Name})
			continue
		}
		for _, r := range parsed.Relations {
			out = append(out, Relation{Name: parsed.Name, Relation: r.Relation, Version: r.Version})
		}
	}
	return out, nil
}
