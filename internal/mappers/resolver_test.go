package mappers

import "testing"

func TestResolveFieldPriority(t *testing.T) {
	record := map[string]any{
		"course_code": "SNAKE",
		"courseCode":  "CAMEL",
		"id":          "PLAIN",
	}

	// earliest listed key wins, regardless of what later keys hold
	v, ok := ResolveField(record, "courseCode", "course_code", "id")
	if !ok {
		t.Fatal("expected a match")
	}
	if v != "CAMEL" {
		t.Errorf("expected CAMEL, got %v", v)
	}

	v, ok = ResolveField(record, "course_code", "courseCode")
	if !ok || v != "SNAKE" {
		t.Errorf("expected SNAKE, got %v (ok=%v)", v, ok)
	}
}

func TestResolveFieldSkipsNull(t *testing.T) {
	record := map[string]any{
		"title": nil, // JSON null
		"name":  "Algebra",
	}
	v, ok := ResolveField(record, "title", "name")
	if !ok || v != "Algebra" {
		t.Errorf("null value should be skipped, got %v (ok=%v)", v, ok)
	}
}

func TestResolveFieldMalformedRecord(t *testing.T) {
	for _, raw := range []any{nil, "text", 42, []any{"x"}, true} {
		if v, ok := ResolveField(raw, "id"); ok {
			t.Errorf("non-object %v should resolve nothing, got %v", raw, v)
		}
	}
}

func TestResolveFieldAbsent(t *testing.T) {
	if _, ok := ResolveField(map[string]any{"a": 1}, "b", "c"); ok {
		t.Error("expected no match for absent keys")
	}
}
