package shape

import (
	"encoding/json"
	"reflect"
	"testing"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		t.Fatalf("bad fixture: %v", err)
	}
	return v
}

func courseIDs(n Normalized) []string {
	out := make([]string, 0, len(n.Courses))
	for i := range n.Courses {
		m, _ := n.Courses[i].(map[string]any)
		for _, k := range []string{"courseCode", "id"} {
			if v, ok := m[k]; ok {
				out = append(out, v.(string))
				break
			}
		}
	}
	return out
}

func TestNormalizeBareArrayWithStatus(t *testing.T) {
	raw := decode(t, `[{"courseCode":"A","enrollmentStatus":1},{"courseCode":"B","enrollmentStatus":0}]`)
	n := Normalize(raw)

	if n.Shape != ShapeCourseList {
		t.Errorf("shape = %s", n.Shape)
	}
	if got := courseIDs(n); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("courses = %v", got)
	}
	if !reflect.DeepEqual(n.EnrolledIDs, []string{"A"}) {
		t.Errorf("enrolledIds = %v", n.EnrolledIDs)
	}
}

func TestNormalizeCatalogWithMycourses(t *testing.T) {
	raw := decode(t, `{"data":{"allCourses":[{"courseCode":"A","enrollmentStatus":0}],"mycourses":[{"courseCode":"A"}]}}`)
	n := Normalize(raw)

	if n.Shape != ShapeCatalog {
		t.Errorf("shape = %s", n.Shape)
	}
	if got := courseIDs(n); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("courses = %v", got)
	}
	// mycourses wins even though A itself says enrollmentStatus 0
	if !reflect.DeepEqual(n.EnrolledIDs, []string{"A"}) {
		t.Errorf("enrolledIds = %v", n.EnrolledIDs)
	}
}

func TestNormalizeDataArrayWithOuterEnrolledIds(t *testing.T) {
	raw := decode(t, `{"data":[{"id":"X"}],"enrolledCourseIds":["X"]}`)
	n := Normalize(raw)

	if got := courseIDs(n); !reflect.DeepEqual(got, []string{"X"}) {
		t.Errorf("courses = %v", got)
	}
	if !reflect.DeepEqual(n.EnrolledIDs, []string{"X"}) {
		t.Errorf("enrolledIds = %v", n.EnrolledIDs)
	}
}

func TestNormalizeEmptyObject(t *testing.T) {
	n := Normalize(decode(t, `{}`))
	if n.Shape != ShapeCatalog {
		t.Errorf("shape = %s", n.Shape)
	}
	if len(n.Courses) != 0 || len(n.EnrolledIDs) != 0 {
		t.Errorf("want empty result, got courses=%d ids=%v", len(n.Courses), n.EnrolledIDs)
	}
	if n.Courses == nil || n.EnrolledIDs == nil {
		t.Error("slices must be non-nil")
	}
}

func TestNormalizeCourseListKeyPriority(t *testing.T) {
	raw := decode(t, `{"data":{"courses":[{"id":"low"}],"allCourses":[{"id":"high"}]}}`)
	n := Normalize(raw)
	if got := courseIDs(n); !reflect.DeepEqual(got, []string{"high"}) {
		t.Errorf("allCourses should win over courses, got %v", got)
	}
}

func TestNormalizeEnrolledFlagTruthy(t *testing.T) {
	raw := decode(t, `[{"courseCode":"A","enrolled":true},{"courseCode":"B"}]`)
	n := Normalize(raw)
	if !reflect.DeepEqual(n.EnrolledIDs, []string{"A"}) {
		t.Errorf("enrolledIds = %v", n.EnrolledIDs)
	}
}

func TestNormalizePredicateFallbackInCatalog(t *testing.T) {
	// no mycourses, no explicit id list: scan the course list itself
	raw := decode(t, `{"data":{"allCourses":[{"courseCode":"A","enrollmentStatus":2},{"courseCode":"B","enrollmentStatus":0}]}}`)
	n := Normalize(raw)
	if !reflect.DeepEqual(n.EnrolledIDs, []string{"A"}) {
		t.Errorf("enrolledIds = %v", n.EnrolledIDs)
	}
}

func TestNormalizeResultEnvelope(t *testing.T) {
	raw := decode(t, `{"result":[{"id":"R1"}]}`)
	n := Normalize(raw)
	if got := courseIDs(n); !reflect.DeepEqual(got, []string{"R1"}) {
		t.Errorf("courses = %v", got)
	}
}

func TestNormalizeScalarPayload(t *testing.T) {
	for _, fixture := range []string{`"just text"`, `42`, `null`, `{"data":"oops"}`} {
		n := Normalize(decode(t, fixture))
		if len(n.Courses) != 0 || len(n.EnrolledIDs) != 0 {
			t.Errorf("fixture %s: want empty, got %+v", fixture, n)
		}
	}
}

func TestNormalizeNumericEnrolledIDs(t *testing.T) {
	// id lists sometimes arrive as numbers; they are coerced to strings
	raw := decode(t, `{"data":[{"id":7}],"enrolledIds":[7]}`)
	n := Normalize(raw)
	if !reflect.DeepEqual(n.EnrolledIDs, []string{"7"}) {
		t.Errorf("enrolledIds = %v", n.EnrolledIDs)
	}
}
