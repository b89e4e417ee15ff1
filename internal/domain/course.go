package domain

// CourseItem is the canonical representation of a course inside this service.
// Every backend dialect maps into this model; view layers and exports consume
// only this shape.
type CourseItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Instructor  string `json:"instructor"`

	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice"`
	Rating        float64 `json:"rating"`
	Students      int     `json:"students"`
	TotalLessons  int     `json:"totalLessons"`

	Duration   string `json:"duration"`
	Category   string `json:"category"`
	CourseType string `json:"courseType"`
	Board      string `json:"board"`
	ClassName  string `json:"classname"`
	Subject    string `json:"subject"`
	Medium     string `json:"medium"`
	Difficulty string `json:"difficulty"`

	IsLive bool `json:"isLive"`

	Tabs       []string         `json:"tabs"`
	Curriculum []CurriculumItem `json:"curriculum"`
}

// LessonType is the binary lesson classification. Anything that is not a
// worksheet counts as a video.
type LessonType string

const (
	LessonVideo     LessonType = "video"
	LessonWorksheet LessonType = "worksheet"
)

// CurriculumItem is one lesson/worksheet unit within a course.
type CurriculumItem struct {
	ID          int        `json:"id"`
	Title       string     `json:"title"`
	Duration    string     `json:"duration"`
	Type        LessonType `json:"type"`
	IsCompleted bool       `json:"isCompleted"`
	IsLocked    bool       `json:"isLocked"`
}

// CourseTabs returns the fixed tab set every course carries.
// Never derived from backend data.
func CourseTabs() []string {
	return []string{"Curriculum", "Materials", "Announcements"}
}
