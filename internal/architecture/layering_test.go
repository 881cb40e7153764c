package architecture_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const modulesImport = "switchsprint/internal/modules/"

// moduleDeps lists the foreign modules each module may import. document is
// the shared store; everything else reaches another module through its
// domain, dto or port/in packages only.
var moduleDeps = map[string][]string{
	"document":  nil,
	"session":   {"document"},
	"timer":     {"document", "session"},
	"backup":    {"document"},
	"study":     {"document", "session"},
	"jobsearch": {"document"},
	"analytics": {"document", "backup"},
}

type sourceImport struct {
	file   string
	module string
	layer  string
	target string
}

func TestHexagonalLayerImports(t *testing.T) {
	t.Parallel()
	for _, imp := range moduleImports(t) {
		if violatesLayerRule(imp.module, imp.layer, imp.target) {
			t.Errorf("forbidden import in %s (%s): %s", imp.file, imp.layer, imp.target)
		}
	}
}

func TestModuleDependencies(t *testing.T) {
	t.Parallel()
	entries, err := os.ReadDir(filepath.Join("..", "modules"))
	if err != nil {
		t.Fatalf("read modules: %v", err)
	}
	for _, e := range entries {
		if _, ok := moduleDeps[e.Name()]; e.IsDir() && !ok {
			t.Errorf("module %s has no entry in moduleDeps", e.Name())
		}
	}

	seen := map[string]bool{}
	for _, imp := range moduleImports(t) {
		target := moduleName(strings.TrimPrefix(imp.target, "switchsprint/internal/"))
		if target == imp.module || seen[imp.module+">"+target] {
			continue
		}
		seen[imp.module+">"+target] = true
		if !contains(moduleDeps[imp.module], target) {
			t.Errorf("%s imports %s, allowed: %v", imp.file, imp.target, moduleDeps[imp.module])
		}
	}

	// document sits below every other module.
	for module, deps := range moduleDeps {
		if module != "document" && !contains(deps, "document") {
			t.Errorf("module %s does not list document", module)
		}
		if contains(moduleDeps["document"], module) {
			t.Errorf("document must not depend on %s", module)
		}
	}
}

func TestDependencyTableIsAcyclic(t *testing.T) {
	t.Parallel()
	const (
		unvisited = iota
		visiting
		done
	)
	state := map[string]int{}
	var visit func(module string, path []string)
	visit = func(module string, path []string) {
		switch state[module] {
		case visiting:
			t.Fatalf("dependency cycle: %s", strings.Join(append(path, module), " -> "))
		case done:
			return
		}
		state[module] = visiting
		for _, dep := range moduleDeps[module] {
			visit(dep, append(path, module))
		}
		state[module] = done
	}
	names := make([]string, 0, len(moduleDeps))
	for name := range moduleDeps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		visit(name, nil)
	}
}

func moduleImports(t *testing.T) []sourceImport {
	t.Helper()
	fset := token.NewFileSet()
	var out []sourceImport
	err := filepath.WalkDir(filepath.Join("..", "modules"), func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		slash := filepath.ToSlash(path)
		module := moduleName(slash)
		layer := detectLayer(slash)
		if module == "" || layer == "" {
			return nil
		}
		node, parseErr := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
		if parseErr != nil {
			return parseErr
		}
		for _, imp := range node.Imports {
			target := strings.Trim(imp.Path.Value, `"`)
			if strings.Contains(target, modulesImport) {
				out = append(out, sourceImport{file: slash, module: module, layer: layer, target: target})
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk modules: %v", err)
	}
	return out
}

func moduleName(path string) string {
	parts := strings.Split(path, "/")
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "modules" {
			return parts[i+1]
		}
	}
	return ""
}

func detectLayer(path string) string {
	for _, layer := range []string{"adapter/in", "adapter/out", "usecase", "service", "domain", "port/in", "port/out", "dto"} {
		if strings.Contains(path, "/"+layer+"/") {
			return layer
		}
	}
	return ""
}

func hasLayer(path, layer string) bool {
	return strings.Contains(path, "/"+layer+"/") || strings.HasSuffix(path, "/"+layer)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func violatesLayerRule(module, layer, importPath string) bool {
	if !strings.Contains(importPath, modulesImport+module+"/") {
		if hasLayer(importPath, "service") || hasLayer(importPath, "adapter/in") || hasLayer(importPath, "adapter/out") || hasLayer(importPath, "usecase") || hasLayer(importPath, "port/out") {
			return true
		}
		if hasLayer(importPath, "port/in") || hasLayer(importPath, "dto") {
			return false
		}
	}

	switch layer {
	case "adapter/in":
		return !hasLayer(importPath, "port/in") && !hasLayer(importPath, "dto")
	case "usecase":
		return hasLayer(importPath, "adapter/in") || hasLayer(importPath, "adapter/out")
	case "service":
		return hasLayer(importPath, "adapter/in") || hasLayer(importPath, "adapter/out") || hasLayer(importPath, "usecase")
	case "domain", "dto":
		return hasLayer(importPath, "adapter/in") || hasLayer(importPath, "adapter/out") || hasLayer(importPath, "usecase") || hasLayer(importPath, "service") || hasLayer(importPath, "port/in")
	default:
		return false
	}
}
