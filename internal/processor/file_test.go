package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "coordinates.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestReadFile(t *testing.T) {
	t.Run("full and partial lines", func(t *testing.T) {
		path := writeInput(t, `37.7749, -122.4194, San Francisco, 15012024, 20012024
# a comment, ignored
34.0522, -118.2437, Los Angeles
`)

		records, err := ReadFile(path, PolicyLegacy)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, Record{
			Lat:       37.7749,
			Lon:       -122.4194,
			Name:      "San Francisco",
			StartDate: "15012024",
			EndDate:   "20012024",
		}, records[0])

		assert.Equal(t, "Los Angeles", records[1].Name)
		assert.Equal(t, "unknown", records[1].StartDate)
		assert.Equal(t, "unknown", records[1].EndDate)
	})

	t.Run("blank lines and comments are not counted", func(t *testing.T) {
		path := writeInput(t, "\n   \n# only comments\n10, 20\n")

		records, err := ReadFile(path, PolicyLegacy)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Point 1", records[0].Name)
	})

	t.Run("short line is skipped, reading continues", func(t *testing.T) {
		path := writeInput(t, "42\n48.8566, 2.3522, Paris\n")

		records, err := ReadFile(path, PolicyLegacy)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Paris", records[0].Name)
	})

	t.Run("bad coordinates abort the whole read", func(t *testing.T) {
		path := writeInput(t, `48.8566, 2.3522, Paris
not_a_number, -122
51.5074, -0.1278, London
`)

		records, err := ReadFile(path, PolicyLegacy)
		require.Error(t, err)

		var lineErr *LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, 2, lineErr.Line)

		// records before the bad line are kept, the rest is not read
		require.Len(t, records, 1)
		assert.Equal(t, "Paris", records[0].Name)
	})

	t.Run("missing file", func(t *testing.T) {
		records, err := ReadFile(filepath.Join(t.TempDir(), "nope.txt"), PolicyLegacy)
		assert.ErrorIs(t, err, ErrNoSource)
		assert.Empty(t, records)
	})

	t.Run("skip policy keeps reading past bad coordinates", func(t *testing.T) {
		path := writeInput(t, "not_a_number, -122\n51.5074, -0.1278, London\n")

		records, err := ReadFile(path, PolicySkip)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "London", records[0].Name)
	})

	t.Run("abort policy stops on a short line", func(t *testing.T) {
		path := writeInput(t, "48.8566, 2.3522\n42\n51.5074, -0.1278\n")

		records, err := ReadFile(path, PolicyAbort)

		var lineErr *LineError
		require.ErrorAs(t, err, &lineErr)
		assert.Equal(t, 2, lineErr.Line)
		assert.Len(t, records, 1)
	})

	t.Run("fields are trimmed", func(t *testing.T) {
		path := writeInput(t, "  48.8566 ,  2.3522 ,  Paris , 15012024 , unknown \n")

		records, err := ReadFile(path, PolicyLegacy)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Paris", records[0].Name)
		assert.Equal(t, "15012024", records[0].StartDate)
		assert.Equal(t, "unknown", records[0].EndDate)
	})

	t.Run("empty middle fields get defaults", func(t *testing.T) {
		path := writeInput(t, "48.8566, 2.3522, , 15012024\n")

		records, err := ReadFile(path, PolicyLegacy)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "Point 1", records[0].Name)
		assert.Equal(t, "15012024", records[0].StartDate)
		assert.Equal(t, "unknown", records[0].EndDate)
	})
}
