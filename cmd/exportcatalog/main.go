// exportcatalog fetches the course page for one or more students, normalizes
// it, and writes brotli-compressed snapshots. Optionally uploads them over
// SFTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"coursefeed/internal/catalog"
	"coursefeed/internal/concurrency"
	"coursefeed/internal/config"
	"coursefeed/internal/export"
	"coursefeed/internal/httpx"
	"coursefeed/internal/mappers"
	"coursefeed/internal/providers/learnapi"
	"coursefeed/internal/sftpclient"
)

func main() {
	var (
		outDir     = flag.String("out", "snapshots", "output directory")
		students   = flag.String("students", "", "comma-separated student ids (falls back to LEARN_DEFAULT_STUDENT_ID)")
		uploadSFTP = flag.Bool("sftp", false, "upload generated snapshots via SFTP")
		workers    = flag.Int("workers", 4, "parallel fetches")
	)
	flag.Parse()

	start := time.Now()
	err := run(*outDir, *students, *uploadSFTP, *workers)
	log.Printf("Execution finished in %s", time.Since(start))
	if err != nil {
		log.Fatalf("Job failed: %v", err)
	}
}

func run(outDir, students string, uploadSFTP bool, workers int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	cfg := config.Load()

	ids := splitIDs(students)
	if len(ids) == 0 && cfg.DefaultStudentID != "" {
		ids = []string{cfg.DefaultStudentID}
	}
	if len(ids) == 0 {
		return fmt.Errorf("no student ids: pass -students or set LEARN_DEFAULT_STUDENT_ID")
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	client := learnapi.New(cfg.BackendBaseURL)
	client.Token = func() string { return cfg.AuthToken }
	// batch job: aquí sí reintentamos
	client.Policy = httpx.DefaultPolicy()

	mapper := mappers.Mapper{MediaBaseURL: cfg.MediaBaseURL}

	paths, errs := concurrency.ProcessParallel(ctx, ids, concurrency.ParallelOptions{MaxWorkers: workers},
		func(ctx context.Context, _ int, studentID string) (string, error) {
			raw, err := client.CoursePageData(ctx, studentID)
			if err != nil {
				return "", fmt.Errorf("student %s: %w", studentID, err)
			}
			page := catalog.BuildPage(raw, mapper)

			name := fmt.Sprintf("catalog-%s.json.br", studentID)
			p := filepath.Join(outDir, name)
			f, err := os.Create(p)
			if err != nil {
				return "", err
			}
			defer f.Close()

			snap := export.Snapshot{
				GeneratedAt: time.Now().UTC(),
				StudentID:   studentID,
				Courses:     page.Courses,
				EnrolledIDs: page.EnrolledIDs,
			}
			if err := export.WriteSnapshot(f, snap); err != nil {
				return "", fmt.Errorf("student %s: %w", studentID, err)
			}
			log.Printf("wrote %s (%d courses, %d enrolled)", p, len(page.Courses), len(page.EnrolledIDs))
			return p, nil
		})

	for _, err := range errs {
		log.Printf("WARN: %v", err)
	}
	if len(errs) == len(ids) {
		return fmt.Errorf("all %d fetches failed", len(ids))
	}

	if uploadSFTP {
		sftpCfg := sftpclient.Config{
			Host:      cfg.SFTPHost,
			Port:      cfg.SFTPPort,
			User:      cfg.SFTPUser,
			Pass:      cfg.SFTPPass,
			RemoteDir: cfg.SFTPRemoteDir,
		}
		for _, p := range paths {
			if p == "" {
				continue
			}
			f, err := os.Open(p)
			if err != nil {
				return err
			}
			err = sftpclient.Upload(ctx, sftpCfg, f, filepath.Base(p))
			f.Close()
			if err != nil {
				return err
			}
			log.Printf("uploaded %s", filepath.Base(p))
		}
	}

	return nil
}

func splitIDs(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
