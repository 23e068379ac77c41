package course2osm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile writes content to a new file inside test temporary directory
func writeFile(t *testing.T, name string, content string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fileName, []byte(content), 0644))
	return fileName
}

func float64Ptr(f float64) *float64 {
	return &f
}
