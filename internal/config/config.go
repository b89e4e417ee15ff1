package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Server
	ListenAddr string

	// Learn backend
	BackendBaseURL string
	MediaBaseURL   string
	// ProxyBaseURL, when set, routes catalog fetches through the same-origin
	// proxy instead of the backend directly (mixed-content deployments).
	ProxyBaseURL     string
	DefaultStudentID string
	AuthToken        string

	// SFTP (snapshot uploads)
	SFTPHost      string
	SFTPPort      int
	SFTPUser      string
	SFTPPass      string
	SFTPRemoteDir string
}

func Load() Config {
	return Config{
		// Server
		ListenAddr: getenv("COURSEFEED_ADDR", ":8080"),

		// Learn backend
		BackendBaseURL:   getenv("LEARN_BACKEND_BASE_URL", "http://65.2.124.161:5000"),
		MediaBaseURL:     getenv("LEARN_MEDIA_BASE_URL", "http://65.2.124.161:5000"),
		ProxyBaseURL:     os.Getenv("LEARN_PROXY_BASE_URL"),
		DefaultStudentID: os.Getenv("LEARN_DEFAULT_STUDENT_ID"),
		AuthToken:        os.Getenv("LEARN_AUTH_TOKEN"),

		// SFTP
		SFTPHost:      os.Getenv("SFTP_HOST"),
		SFTPPort:      getenvInt("SFTP_PORT", 22),
		SFTPUser:      os.Getenv("SFTP_USER"),
		SFTPPass:      os.Getenv("SFTP_PASS"),
		SFTPRemoteDir: getenv("SFTP_REMOTE_DIR", "/"),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
