package mappers

import (
	"strconv"
	"strings"

	"coursefeed/internal/domain"
)

// Mapper converts raw backend course records into the canonical model.
type Mapper struct {
	// MediaBaseURL prefixes relative thumbnail paths ("/uploads/x.jpg").
	// Absolute URLs pass through untouched.
	MediaBaseURL string
}

// Course maps one raw backend record into a CourseItem. Total function: any
// input, including nil, arrays or primitives, yields a structurally valid
// item. idx is the record's position in the fetched set and feeds the id
// fallback (idx+1 — not unique across pages, acknowledged weak spot).
func (m Mapper) Course(raw any, idx int) domain.CourseItem {
	id := ""
	if v, ok := ResolveField(raw, courseIDKeys...); ok {
		id = String(v)
	}
	if id == "" {
		id = strconv.Itoa(idx + 1)
	}

	price := positive(resolveNumber(raw, priceKeys))
	original := positive(resolveNumber(raw, originalPriceKeys))
	if original == 0 {
		original = price
	}
	if original == 0 {
		original = 999
	}

	curriculum, _ := m.Curriculum(resolveAny(raw, curriculumKeys))

	return domain.CourseItem{
		ID:          id,
		Title:       resolveString(raw, titleKeys),
		Description: resolveString(raw, descriptionKeys),
		Thumbnail:   m.rewriteThumbnail(resolveString(raw, thumbnailKeys)),
		Instructor:  resolveString(raw, instructorKeys),

		Price:         price,
		OriginalPrice: original,
		Rating:        positive(resolveNumber(raw, ratingKeys)),
		Students:      int(positive(resolveNumber(raw, studentsKeys))),
		TotalLessons:  int(positive(resolveNumber(raw, totalLessonsKeys))),

		Duration:   resolveString(raw, durationKeys),
		Category:   resolveString(raw, categoryKeys),
		CourseType: resolveString(raw, courseTypeKeys),
		Board:      resolveString(raw, boardKeys),
		ClassName:  resolveString(raw, classKeys),
		Subject:    resolveString(raw, subjectKeys),
		Medium:     resolveString(raw, mediumKeys),
		Difficulty: resolveString(raw, difficultyKeys),

		IsLive: resolveTruthy(raw, isLiveKeys),

		Tabs:       domain.CourseTabs(),
		Curriculum: curriculum,
	}
}

// Courses maps a raw record list in order.
func (m Mapper) Courses(raws []any) []domain.CourseItem {
	out := make([]domain.CourseItem, 0, len(raws))
	for i, r := range raws {
		out = append(out, m.Course(r, i))
	}
	return out
}

// rewriteThumbnail absolutizes relative media paths against the configured
// media host. Idempotent: absolute URLs and empty strings pass through.
func (m Mapper) rewriteThumbnail(u string) string {
	if u == "" || !strings.HasPrefix(u, "/") {
		return u
	}
	return strings.TrimSuffix(m.MediaBaseURL, "/") + u
}

func resolveAny(raw any, keys []string) any {
	v, _ := ResolveField(raw, keys...)
	return v
}

func resolveString(raw any, keys []string) string {
	v, ok := ResolveField(raw, keys...)
	if !ok {
		return ""
	}
	return String(v)
}

func resolveNumber(raw any, keys []string) float64 {
	v, ok := ResolveField(raw, keys...)
	if !ok {
		return 0
	}
	return Number(v)
}

func resolveTruthy(raw any, keys []string) bool {
	v, ok := ResolveField(raw, keys...)
	return ok && Truthy(v)
}

func positive(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
