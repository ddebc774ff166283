package context

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/respectZ/exprimo/value"
)

func TestLoadYAMLAndJSONAgree(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "vars.yaml")
	jsonPath := filepath.Join(dir, "vars.json")

	yamlDoc := "name: Ada\nage: 36\nactive: true\ntags:\n  - admin\n  - user\nprofile:\n  level: 5\n"
	jsonDoc := `{"name":"Ada","age":36,"active":true,"tags":["admin","user"],"profile":{"level":5}}`

	if err := os.WriteFile(yamlPath, []byte(yamlDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(jsonPath, []byte(jsonDoc), 0o644); err != nil {
		t.Fatal(err)
	}

	yctx, err := LoadYAML(yamlPath)
	if err != nil {
		t.Fatalf("LoadYAML: %v", err)
	}
	jctx, err := LoadJSON(jsonPath)
	if err != nil {
		t.Fatalf("LoadJSON: %v", err)
	}

	for _, name := range []string{"name", "age", "active"} {
		yv, _ := mustVariable(t, yctx, name)
		jv, _ := mustVariable(t, jctx, name)
		if yv.String() != jv.String() {
			t.Errorf("%s: yaml=%v json=%v", name, yv, jv)
		}
	}

	yTags, _ := mustVariable(t, yctx, "tags")
	jTags, _ := mustVariable(t, jctx, "tags")
	yArr, ok1 := yTags.(value.Array)
	jArr, ok2 := jTags.(value.Array)
	if !ok1 || !ok2 || len(yArr) != len(jArr) {
		t.Fatalf("tags mismatch: %v vs %v", yTags, jTags)
	}
}

func mustVariable(t *testing.T, c *Context, name string) (value.Value, bool) {
	t.Helper()
	entry, ok := c.Lookup(name)
	if !ok {
		t.Fatalf("missing variable %q", name)
	}
	return entry.AsVariable()
}

func TestLoadYAMLMissingFile(t *testing.T) {
	if _, err := LoadYAML("/nonexistent/path.yaml"); err == nil {
		t.Fatalf("expected error")
	}
}
