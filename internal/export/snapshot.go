// Package export writes normalized catalog snapshots: brotli-compressed JSON
// suitable for archiving or shipping to partner systems over SFTP.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/andybalholm/brotli"

	"coursefeed/internal/domain"
)

// Snapshot is one exported catalog state.
type Snapshot struct {
	GeneratedAt time.Time           `json:"generatedAt"`
	StudentID   string              `json:"studentId,omitempty"`
	Courses     []domain.CourseItem `json:"courses"`
	EnrolledIDs []string            `json:"enrolledIds"`
}

// WriteSnapshot writes s as brotli-compressed JSON.
func WriteSnapshot(w io.Writer, s Snapshot) error {
	bw := brotli.NewWriter(w)
	if err := json.NewEncoder(bw).Encode(s); err != nil {
		return fmt.Errorf("snapshot encode: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("snapshot compress: %w", err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot produced by WriteSnapshot.
func ReadSnapshot(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(brotli.NewReader(r)).Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("snapshot decode: %w", err)
	}
	return s, nil
}
