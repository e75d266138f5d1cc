// Package fixture loads a static dependency graph from a line-oriented
// text file, used in place of a live registry for deterministic runs.
//
// File format, one declaration per line:
//
//	# comment
//	A: B C
//	B: C,D
//	C:
//
// Blank lines and lines starting with # are ignored. Package names consist
// solely of uppercase Latin letters; dependencies are separated by
// whitespace and/or commas. Re-declaring a name overwrites its earlier
// dependency list. Parse errors carry the offending line number.
package fixture

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	apperrors "github.com/HIlight3R/package-manager/pkg/errors"
)

var nameRE = regexp.MustCompile(`^[A-Z]+$`)

// Repo is the dependency graph declared by a fixture file. It maps each
// package name to its direct dependencies in declaration order and is
// total: names mentioned only as dependencies have entries with no deps.
//
// Repo implements depgraph.Provider, so it can be handed straight to the
// graph builder.
type Repo map[string][]string

// Load reads and parses the fixture file at path.
func Load(path string) (Repo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "read fixture %s", path)
	}
	defer f.Close()

	repo := Repo{}
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		name, depsPart, ok := strings.Cut(line, ":")
		if !ok {
			return nil, parseError(path, lineno, "expected 'NAME: DEP1 DEP2 ...'")
		}

		name = strings.TrimSpace(name)
		if !nameRE.MatchString(name) {
			return nil, parseError(path, lineno, fmt.Sprintf("invalid package name %q: uppercase Latin letters expected", name))
		}

		var deps []string
		for _, dep := range splitDeps(depsPart) {
			if !nameRE.MatchString(dep) {
				return nil, parseError(path, lineno, fmt.Sprintf("invalid dependency name %q: uppercase Latin letters expected", dep))
			}
			deps = append(deps, dep)
		}
		repo[name] = deps
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFetch, err, "read fixture %s", path)
	}

	// Names mentioned only as dependencies become leaf entries, so the
	// graph is total over every name in the file.
	for _, deps := range repo {
		for _, dep := range deps {
			if _, ok := repo[dep]; !ok {
				repo[dep] = nil
			}
		}
	}

	return repo, nil
}

func splitDeps(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func parseError(path string, lineno int, msg string) error {
	return apperrors.New(apperrors.ErrCodeInvalidFixture, "%s:%d: %s", path, lineno, msg)
}

// Has reports whether name is declared or mentioned in the fixture.
func (r Repo) Has(name string) bool {
	_, ok := r[name]
	return ok
}

// Neighbors returns the direct dependencies of name in declaration order.
// Unknown names resolve to no dependencies.
func (r Repo) Neighbors(_ context.Context, name string) ([]string, error) {
	return r[name], nil
}
