// Package shape detects which of the known backend response envelopes was
// received and extracts the raw course list plus the enrolled-course ids.
// The backend has no discriminant field, so detection is a fixed decision
// sequence over the structure itself.
package shape

import "coursefeed/internal/mappers"

// Shape tags the envelope variant that was detected.
type Shape int

const (
	// ShapeUnknown: payload was neither an array nor an object.
	ShapeUnknown Shape = iota
	// ShapeCourseList: payload was a bare course array.
	ShapeCourseList
	// ShapeCatalog: payload was an object carrying course/enrollment lists.
	ShapeCatalog
)

func (s Shape) String() string {
	switch s {
	case ShapeCourseList:
		return "course_list"
	case ShapeCatalog:
		return "catalog"
	default:
		return "unknown"
	}
}

// Normalized is the output of envelope detection: still raw, backend-shaped
// course records. Canonical mapping is a separate pass applied uniformly
// regardless of which shape fired.
type Normalized struct {
	Shape       Shape
	Courses     []any
	EnrolledIDs []string
}

var (
	envelopeKeys   = []string{"data", "result"}
	courseListKeys = []string{"allCourses", "courses", "courseList", "course_list", "list"}
	myCoursesKeys  = []string{"mycourses", "myCourses", "my_courses"}
	enrolledIDKeys = []string{"enrolledCourseIds", "enrolledIds", "enrolled_ids"}

	enrollStatusKeys = []string{"enrollmentStatus", "enrollment_status", "isEnrolled", "is_enrolled"}
	enrolledFlagKeys = []string{"enrolled", "purchased", "joined"}
)

// Normalize classifies a decoded JSON response and extracts raw courses and
// enrolled ids. Never errors: anything unrecognizable degrades to empty
// slices, not to a failure.
//
// Enrollment precedence, strongest first:
//  1. an explicit "mycourses" record list (ids taken from those records)
//  2. an explicit enrolled-id list, at the envelope or the payload level
//  3. a per-record predicate over the course list (enrollmentStatus > 0 or a
//     truthy enrolled flag)
func Normalize(raw any) Normalized {
	payload := raw
	if v, ok := mappers.ResolveField(raw, envelopeKeys...); ok {
		payload = v
	}

	// id lists may ride on the outer envelope even when the course list is
	// nested under data
	explicit, hasExplicit := explicitEnrolledIDs(raw, payload)

	switch p := payload.(type) {
	case []any:
		n := Normalized{Shape: ShapeCourseList, Courses: p}
		if hasExplicit {
			n.EnrolledIDs = explicit
		} else {
			n.EnrolledIDs = scanEnrolled(p)
		}
		return n

	case map[string]any:
		n := Normalized{Shape: ShapeCatalog, Courses: []any{}, EnrolledIDs: []string{}}
		if v, ok := mappers.ResolveField(p, courseListKeys...); ok {
			if list, ok := v.([]any); ok {
				n.Courses = list
			}
		}

		if v, ok := mappers.ResolveField(p, myCoursesKeys...); ok {
			if mine, ok := v.([]any); ok {
				n.EnrolledIDs = idsFromRecords(mine)
				return n
			}
		}
		if hasExplicit {
			n.EnrolledIDs = explicit
			return n
		}
		n.EnrolledIDs = scanEnrolled(n.Courses)
		return n
	}

	// neither array nor object after unwrapping; last resort is treating the
	// original response itself as the course list
	if list, ok := raw.([]any); ok {
		return Normalized{Shape: ShapeCourseList, Courses: list, EnrolledIDs: []string{}}
	}
	return Normalized{Shape: ShapeUnknown, Courses: []any{}, EnrolledIDs: []string{}}
}

// explicitEnrolledIDs looks for an already-flat id list at both the envelope
// and the unwrapped payload level. The values are ids as-is, no record
// mapping involved.
func explicitEnrolledIDs(raw, payload any) ([]string, bool) {
	for _, scope := range []any{raw, payload} {
		v, ok := mappers.ResolveField(scope, enrolledIDKeys...)
		if !ok {
			continue
		}
		list, ok := v.([]any)
		if !ok {
			continue
		}
		ids := make([]string, 0, len(list))
		for _, el := range list {
			if s := mappers.String(el); s != "" {
				ids = append(ids, s)
			}
		}
		return ids, true
	}
	return nil, false
}

// idsFromRecords extracts course ids from a record list (the mycourses case).
func idsFromRecords(records []any) []string {
	ids := make([]string, 0, len(records))
	for _, el := range records {
		if id, ok := mappers.RawCourseID(el); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// scanEnrolled collects ids of records that carry their own enrollment
// signal: a positive enrollment status number, or a truthy enrolled flag.
func scanEnrolled(records []any) []string {
	ids := make([]string, 0)
	for _, el := range records {
		if !recordEnrolled(el) {
			continue
		}
		if id, ok := mappers.RawCourseID(el); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func recordEnrolled(el any) bool {
	if v, ok := mappers.ResolveField(el, enrollStatusKeys...); ok && mappers.Number(v) > 0 {
		return true
	}
	if v, ok := mappers.ResolveField(el, enrolledFlagKeys...); ok && mappers.Truthy(v) {
		return true
	}
	return false
}
