package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var DefaultEnvConfig *envConfig

type envConfig struct {
	// logger config
	LOG_FILE_PATH string
	LOG_LEVEL     string
	LOG_FORMAT    string
	// http config
	APP_PORT         string
	MAX_UPLOAD_BYTES int64
	// source parsing config
	SOURCE_SHEET_NAME       string
	ROSTER_PARSE_POLICY     string
	DEPARTMENT_PARSE_POLICY string
	SALARY_PARSE_POLICY     string
	LEAVE_PARSE_POLICY      string
	SALARY_MATCH_MODE       string
	// output config
	OUTPUT_QUOTE_FIELDS bool
	XLSX_LAYOUT_FILE    string
}

// LoadEnvConfig reads the optional .env files and populates DefaultEnvConfig.
// A missing .env file is not an error; the process environment and defaults apply.
func LoadEnvConfig(filenames ...string) error {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	DefaultEnvConfig = &envConfig{
		LOG_FILE_PATH:           getEnvString("LOG_FILE_PATH", ""),
		LOG_LEVEL:               getEnvString("LOG_LEVEL", "info"),
		LOG_FORMAT:              getEnvString("LOG_FORMAT", "json"),
		APP_PORT:                getEnvString("APP_PORT", "8080"),
		MAX_UPLOAD_BYTES:        int64(getEnvInt("MAX_UPLOAD_BYTES", 32<<20)),
		SOURCE_SHEET_NAME:       getEnvString("SOURCE_SHEET_NAME", ""),
		ROSTER_PARSE_POLICY:     getEnvString("ROSTER_PARSE_POLICY", "lenient"),
		DEPARTMENT_PARSE_POLICY: getEnvString("DEPARTMENT_PARSE_POLICY", "strict"),
		SALARY_PARSE_POLICY:     getEnvString("SALARY_PARSE_POLICY", "strict"),
		LEAVE_PARSE_POLICY:      getEnvString("LEAVE_PARSE_POLICY", "strict"),
		SALARY_MATCH_MODE:       getEnvString("SALARY_MATCH_MODE", "substring"),
		OUTPUT_QUOTE_FIELDS:     getEnvBool("OUTPUT_QUOTE_FIELDS", false),
		XLSX_LAYOUT_FILE:        getEnvString("XLSX_LAYOUT_FILE", ""),
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(strings.TrimSpace(val)); err == nil {
			return b
		}
	}
	return fallback
}
