package mappers

// Known backend dialects per canonical field. The backend has shipped at
// least snake_case, camelCase and a couple of domain abbreviations over time;
// keeping the lists as data means a new dialect is one appended string, not a
// new code branch.
var (
	courseIDKeys    = []string{"courseCode", "course_code", "courseId", "course_id", "id", "_id"}
	titleKeys       = []string{"courseName", "course_name", "title", "name"}
	descriptionKeys = []string{"description", "courseDescription", "course_description", "details", "about"}
	thumbnailKeys   = []string{"thumbnail", "thumbnailUrl", "thumbnail_url", "image", "imageUrl", "image_url", "courseImage"}
	instructorKeys  = []string{"instructor", "instructorName", "instructor_name", "teacher", "teacherName", "faculty"}

	priceKeys         = []string{"price", "coursePrice", "course_price", "fee", "fees", "amount"}
	originalPriceKeys = []string{"originalPrice", "original_price", "mrp", "strikePrice", "listPrice"}
	ratingKeys        = []string{"rating", "avgRating", "averageRating", "stars"}
	studentsKeys      = []string{"students", "studentCount", "student_count", "enrolledCount", "totalStudents"}
	totalLessonsKeys  = []string{"totalLessons", "total_lessons", "lessonCount", "totalLectures", "lectures"}

	durationKeys   = []string{"duration", "courseDuration", "course_duration", "validity"}
	categoryKeys   = []string{"category", "courseCategory", "course_category", "stream"}
	courseTypeKeys = []string{"courseType", "course_type", "type"}
	boardKeys      = []string{"board", "boardName", "board_name"}
	classKeys      = []string{"classname", "className", "class_name", "class", "grade", "standard"}
	subjectKeys    = []string{"subject", "subjectName", "subject_name"}
	mediumKeys     = []string{"medium", "language", "lang"}
	difficultyKeys = []string{"difficulty", "difficultyLevel", "level"}
	isLiveKeys     = []string{"isLive", "is_live", "live"}

	curriculumKeys = []string{"curriculum", "chapters", "modules", "lessons", "syllabus"}

	lessonIDKeys        = []string{"id", "lessonId", "lesson_id", "chapterId", "sno"}
	lessonTitleKeys     = []string{"title", "name", "chapterName", "chapter_name", "lessonName", "topic"}
	lessonDurationKeys  = []string{"duration", "time", "length"}
	lessonTypeKeys      = []string{"type", "lessonType", "lesson_type", "contentType", "kind"}
	lessonCompletedKeys = []string{"isCompleted", "is_completed", "completed", "done"}
	lessonLockedKeys    = []string{"isLocked", "is_locked", "locked", "premium"}
)

// RawCourseID resolves a raw record's course id using the shared dialect
// list and coerces it to a string. ok=false when no id key is present.
// The shape layer uses this to collect enrolled ids before full mapping.
func RawCourseID(raw any) (string, bool) {
	v, ok := ResolveField(raw, courseIDKeys...)
	if !ok {
		return "", false
	}
	s := String(v)
	return s, s != ""
}
