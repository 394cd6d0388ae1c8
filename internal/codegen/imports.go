package codegen

import (
	"fmt"
	"path"
)

// importTable assigns a unique alias per import path and tracks which imports
// the rendered body actually referenced, so the header only declares those.
type importTable struct {
	byPath map[string]string
	count  map[string]int
	used   map[string]bool
	order  []string
}

func newImportTable() *importTable {
	return &importTable{
		byPath: make(map[string]string),
		count:  make(map[string]int),
		used:   make(map[string]bool),
	}
}

// register assigns an alias for the path. The base package name is preferred;
// collisions get a numeric suffix, mirroring how source files disambiguate.
func (t *importTable) register(importPath string) string {
	if importPath == "" {
		return ""
	}
	if alias, ok := t.byPath[importPath]; ok {
		return alias
	}
	alias := path.Base(importPath)
	if n := t.count[alias]; n > 0 {
		t.count[alias] = n + 1
		alias = fmt.Sprintf("%s%d", alias, n+1)
	} else {
		t.count[alias] = 1
	}
	t.byPath[importPath] = alias
	t.order = append(t.order, importPath)
	return alias
}

// use registers the path and marks it referenced by the generated body.
func (t *importTable) use(importPath string) string {
	alias := t.register(importPath)
	if importPath != "" {
		t.used[importPath] = true
	}
	return alias
}

// usedImports returns (path, alias) pairs in registration order, restricted
// to imports the body referenced.
func (t *importTable) usedImports() [][2]string {
	out := make([][2]string, 0, len(t.used))
	for _, p := range t.order {
		if t.used[p] {
			out = append(out, [2]string{p, t.byPath[p]})
		}
	}
	return out
}
