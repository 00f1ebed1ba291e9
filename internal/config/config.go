package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Report generation
	DataFile   string // input CSV, e.g. "sampleData.csv"
	ReportsDir string // where timestamped report files land

	// Archive
	Env    string // "dev" | "prod"
	DBPath string // e.g. "./data/access.db"

	// Report API
	HTTPAddr string

	// Archive retention
	ArchiveRetentionDays int // 0 = keep forever
	PruneIntervalHours   int // how often the pruner runs (default 6)
}

func FromEnv() Config {
	env := strings.ToLower(getenvDefault("ACCESS_ANALYZER_ENV", "dev"))
	if env != "dev" && env != "prod" {
		// fail-soft: treat unknown as dev
		env = "dev"
	}

	return Config{
		DataFile:   getenvDefault("ACCESS_ANALYZER_DATA_FILE", "sampleData.csv"),
		ReportsDir: getenvDefault("ACCESS_ANALYZER_REPORTS_DIR", "reports"),

		Env:    env,
		DBPath: getenvDefault("ACCESS_ANALYZER_DB_PATH", "./data/access.db"),

		HTTPAddr: getenvDefault("ACCESS_ANALYZER_HTTP_ADDR", ":8080"),

		ArchiveRetentionDays: getenvInt("ACCESS_ANALYZER_ARCHIVE_RETENTION_DAYS", 0),
		PruneIntervalHours:   getenvInt("ACCESS_ANALYZER_PRUNE_INTERVAL_HOURS", 6),
	}
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
