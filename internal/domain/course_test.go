package domain

import "testing"

func TestCourseTabsFixed(t *testing.T) {
	tabs := CourseTabs()
	want := []string{"Curriculum", "Materials", "Announcements"}
	if len(tabs) != len(want) {
		t.Fatalf("tabs = %v", tabs)
	}
	for i := range want {
		if tabs[i] != want[i] {
			t.Errorf("tabs[%d] = %q, want %q", i, tabs[i], want[i])
		}
	}
}

func TestFallbackCoursesIsolated(t *testing.T) {
	a := FallbackCourses()
	if len(a) == 0 {
		t.Fatal("fallback catalog must not be empty")
	}

	a[0].Title = "mutated"
	a[0].Curriculum[0].Title = "mutated"

	b := FallbackCourses()
	if b[0].Title == "mutated" {
		t.Error("mutation leaked into later calls")
	}
	if b[0].Curriculum[0].Title == "mutated" {
		t.Error("curriculum mutation leaked into later calls")
	}
}

func TestFallbackCoursesWellFormed(t *testing.T) {
	for _, c := range FallbackCourses() {
		if c.ID == "" || c.Title == "" {
			t.Errorf("course %+v missing id/title", c)
		}
		if len(c.Tabs) != 3 {
			t.Errorf("course %s tabs = %v", c.ID, c.Tabs)
		}
		if len(c.Curriculum) == 0 {
			t.Errorf("course %s has empty curriculum", c.ID)
		}
		if c.OriginalPrice < c.Price {
			t.Errorf("course %s originalPrice %v < price %v", c.ID, c.OriginalPrice, c.Price)
		}
	}
}
