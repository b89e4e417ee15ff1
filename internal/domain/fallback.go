package domain

// FallbackCourses is the static marketing catalog shown when no live data is
// available: unidentified visitors, cold cache, or a failed backend fetch.
// Callers get a fresh copy; mutating the result never leaks into later calls.
func FallbackCourses() []CourseItem {
	out := make([]CourseItem, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	for i := range out {
		out[i].Tabs = CourseTabs()
		out[i].Curriculum = append([]CurriculumItem(nil), fallbackCatalog[i].Curriculum...)
	}
	return out
}

var fallbackCatalog = []CourseItem{
	{
		ID:            "demo-math-10",
		Title:         "Mathematics Foundation — Class 10",
		Description:   "Complete board-exam preparation with solved examples and weekly worksheets.",
		Instructor:    "Coursefeed Academy",
		Price:         499,
		OriginalPrice: 999,
		Rating:        4.6,
		Students:      1250,
		TotalLessons:  24,
		Duration:      "6 months",
		Category:      "Mathematics",
		CourseType:    "recorded",
		ClassName:     "10",
		Subject:       "Mathematics",
		Medium:        "English",
		Difficulty:    "Intermediate",
		Curriculum: []CurriculumItem{
			{ID: 1, Title: "Introduction", Duration: "10:00", Type: LessonVideo},
			{ID: 2, Title: "Real Numbers", Duration: "32:15", Type: LessonVideo, IsLocked: true},
			{ID: 3, Title: "Practice Worksheet 1", Duration: "20:00", Type: LessonWorksheet, IsLocked: true},
		},
	},
	{
		ID:            "demo-sci-10",
		Title:         "Science Crash Course — Class 10",
		Description:   "Physics, chemistry and biology essentials in one fast-paced live batch.",
		Instructor:    "Coursefeed Academy",
		Price:         699,
		OriginalPrice: 1499,
		Rating:        4.4,
		Students:      860,
		TotalLessons:  18,
		Duration:      "3 months",
		Category:      "Science",
		CourseType:    "live",
		ClassName:     "10",
		Subject:       "Science",
		Medium:        "English",
		Difficulty:    "Beginner",
		IsLive:        true,
		Curriculum: []CurriculumItem{
			{ID: 1, Title: "Introduction", Duration: "08:30", Type: LessonVideo},
			{ID: 2, Title: "Light: Reflection and Refraction", Duration: "41:00", Type: LessonVideo, IsLocked: true},
		},
	},
	{
		ID:            "demo-eng-talk",
		Title:         "Spoken English Starter",
		Description:   "Daily conversation practice for school students.",
		Instructor:    "Coursefeed Academy",
		Price:         299,
		OriginalPrice: 999,
		Rating:        4.8,
		Students:      2300,
		TotalLessons:  12,
		Duration:      "45 days",
		Category:      "Language",
		CourseType:    "recorded",
		Subject:       "English",
		Medium:        "English",
		Difficulty:    "Beginner",
		Curriculum: []CurriculumItem{
			{ID: 1, Title: "Introduction", Duration: "05:00", Type: LessonVideo},
		},
	},
}
