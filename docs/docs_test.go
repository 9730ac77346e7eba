package docs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"
)

var routerAnnotation = regexp.MustCompile(`^//\s*@Router\s+(\S+)\s+\[(\w+)\]`)

// annotatedRoutes junta los "@Router" de los handlers como "METHOD /path".
func annotatedRoutes(t *testing.T) map[string]bool {
	t.Helper()

	files, err := filepath.Glob(filepath.Join("..", "internal", "domain", "*", "handler.go"))
	if err != nil {
		t.Fatalf("glob handlers: %v", err)
	}
	if len(files) == 0 {
		t.Fatal("no handler files found")
	}

	out := map[string]bool{}
	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		for _, line := range strings.Split(string(b), "\n") {
			if m := routerAnnotation.FindStringSubmatch(strings.TrimSpace(line)); m != nil {
				out[strings.ToUpper(m[2])+" "+m[1]] = true
			}
		}
	}
	return out
}

func documentedRoutes(t *testing.T) map[string]bool {
	t.Helper()

	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc); err != nil {
		t.Fatalf("decode swagger doc: %v", err)
	}

	out := map[string]bool{}
	for path, ops := range doc.Paths {
		for method := range ops {
			out[strings.ToUpper(method)+" "+path] = true
		}
	}
	return out
}

func missing(want, have map[string]bool) []string {
	var out []string
	for k := range want {
		if !have[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

func TestHandlerAnnotationsMatchDoc(t *testing.T) {
	annotated := annotatedRoutes(t)
	documented := documentedRoutes(t)

	if m := missing(documented, annotated); len(m) > 0 {
		t.Errorf("documented but not annotated on any handler: %v", m)
	}
	if m := missing(annotated, documented); len(m) > 0 {
		t.Errorf("annotated but missing from docs.go: %v", m)
	}
}
