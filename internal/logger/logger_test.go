package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel(" warn "))
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("chatty"))
}

func TestInitLogging_WritesConsoleAndFile(t *testing.T) {
	var console bytes.Buffer
	logFile := filepath.Join(t.TempDir(), "run.log")

	InitLogging(Options{Console: &console, FilePath: logFile, Level: "info"})

	ctx := WithLogger(context.Background(), map[string]interface{}{"source": "roster"})
	DebugLog(ctx, "hidden %d", 1)
	WarnLog(ctx, "dropped line %d", 3)
	ErrorLog(ctx, "load failed", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(console.String()), "\n")
	require.Len(t, lines, 2)

	var warn map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &warn))
	assert.Equal(t, "warn", warn["level"])
	assert.Equal(t, "dropped line 3", warn["message"])
	assert.Equal(t, "roster", warn["source"])

	var failure map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &failure))
	assert.Equal(t, "boom", failure["error"])

	fileContent, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Equal(t, console.String(), string(fileContent))
}
