package mappers

import (
	"strings"

	"coursefeed/internal/domain"
)

// MaxCurriculumItems bounds the curriculum sequence per course. Anything
// beyond is dropped silently; the truncated flag is the only indication.
const MaxCurriculumItems = 20

// Curriculum maps a raw lesson list of unknown shape into a canonical,
// bounded sequence. The result is never empty: when the raw value is not a
// usable list, a single "Introduction" placeholder stands in, so callers can
// always render something.
func (m Mapper) Curriculum(raw any) (items []domain.CurriculumItem, truncated bool) {
	list, ok := raw.([]any)
	if !ok || len(list) == 0 {
		return []domain.CurriculumItem{placeholderLesson()}, false
	}

	if len(list) > MaxCurriculumItems {
		list = list[:MaxCurriculumItems]
		truncated = true
	}

	items = make([]domain.CurriculumItem, 0, len(list))
	for i, el := range list {
		items = append(items, mapLesson(el, i))
	}
	return items, truncated
}

func mapLesson(raw any, idx int) domain.CurriculumItem {
	id := 0
	if v, ok := ResolveField(raw, lessonIDKeys...); ok {
		id = Int(v)
	}
	if id == 0 {
		id = idx + 1
	}

	return domain.CurriculumItem{
		ID:          id,
		Title:       resolveString(raw, lessonTitleKeys),
		Duration:    resolveString(raw, lessonDurationKeys),
		Type:        lessonType(resolveString(raw, lessonTypeKeys)),
		IsCompleted: resolveTruthy(raw, lessonCompletedKeys),
		IsLocked:    resolveTruthy(raw, lessonLockedKeys),
	}
}

// lessonType is a loose binary classification: anything that smells like a
// worksheet ("worksheet", "work_sheet", "practice sheet") is one, the rest
// are videos.
func lessonType(raw string) domain.LessonType {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "worksheet" || strings.Contains(v, "sheet") {
		return domain.LessonWorksheet
	}
	return domain.LessonVideo
}

func placeholderLesson() domain.CurriculumItem {
	return domain.CurriculumItem{ID: 1, Title: "Introduction", Type: domain.LessonVideo}
}
