// SPDX-License-Identifier: Apache-2.0

package archive_test

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netschema/yangkeys/internal/archive"
)

type zipEntry struct {
	name    string
	content string
}

// writeZip builds a zip archive with the given entries, in order, and
// returns its path.
func writeZip(t *testing.T, entries []zipEntry) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schemas.zip")
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for _, e := range entries {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
	return path
}

// ---------------------------------------------------------------------------
// IsSchemaMember
// ---------------------------------------------------------------------------

func TestIsSchemaMember(t *testing.T) {
	tests := []struct {
		name   string
		member string
		want   bool
	}{
		{name: "version and table name", member: "1.0.0-interfaces.yang", want: true},
		{name: "nested path", member: "release/2.1-vlans.yang", want: true},
		{name: "hyphen only in directory", member: "release-2/vlans.yang", want: false},
		{name: "version-only name", member: "1.0.0.yang", want: false},
		{name: "directory entry", member: "1.0.0-interfaces.yang/", want: false},
		{name: "wrong extension", member: "1.0.0-interfaces.txt", want: false},
		{name: "extension is case-sensitive", member: "1.0.0-interfaces.YANG", want: false},
		{name: "extension not at end", member: "1.0.0-interfaces.yang.bak", want: false},
		{name: "bare hyphen before extension", member: "-.yang", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, archive.IsSchemaMember(tt.member))
		})
	}
}

// ---------------------------------------------------------------------------
// Open / Select
// ---------------------------------------------------------------------------

func TestOpen_MissingArchive(t *testing.T) {
	_, err := archive.Open(filepath.Join(t.TempDir(), "nope.zip"))
	require.Error(t, err)

	var openErr *archive.OpenError
	require.ErrorAs(t, err, &openErr)
	assert.Contains(t, openErr.Error(), "nope.zip")
}

func TestOpen_NotAZipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.zip")
	require.NoError(t, os.WriteFile(path, []byte("this is not a zip archive"), 0o644))

	_, err := archive.Open(path)
	var openErr *archive.OpenError
	require.ErrorAs(t, err, &openErr)
}

func TestSelect_FiltersAndPreservesListingOrder(t *testing.T) {
	path := writeZip(t, []zipEntry{
		{name: "docs/", content: ""},
		{name: "2.0-vlans.yang", content: "list vlan { key \"id\"; }"},
		{name: "2.0.yang", content: "module base { }"},
		{name: "readme.txt", content: "not a schema"},
		{name: "vendor/1.1-routes.yang", content: "list route { key \"prefix\"; }"},
	})

	a, err := archive.Open(path)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, []string{"2.0-vlans.yang", "vendor/1.1-routes.yang"}, a.Select())
}

func TestSelect_NoMatches(t *testing.T) {
	path := writeZip(t, []zipEntry{
		{name: "2.0.yang", content: "module base { }"},
	})

	a, err := archive.Open(path)
	require.NoError(t, err)
	defer a.Close()

	assert.Empty(t, a.Select())
}

// ---------------------------------------------------------------------------
// ExtractTo / SampleSchema
// ---------------------------------------------------------------------------

func TestExtractTo(t *testing.T) {
	path := writeZip(t, []zipEntry{
		{name: "vendor/1.1-routes.yang", content: "list route { key \"prefix\"; }"},
	})

	a, err := archive.Open(path)
	require.NoError(t, err)
	defer a.Close()

	dest := t.TempDir()
	out, err := a.ExtractTo("vendor/1.1-routes.yang", dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "vendor", "1.1-routes.yang"), out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "list route { key \"prefix\"; }", string(data))
}

func TestExtractTo_UnknownMember(t *testing.T) {
	path := writeZip(t, []zipEntry{
		{name: "2.0-vlans.yang", content: "list vlan { key \"id\"; }"},
	})

	a, err := archive.Open(path)
	require.NoError(t, err)
	defer a.Close()

	_, err = a.ExtractTo("missing.yang", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no such member")
}

func TestExtractTo_RejectsEscapingNames(t *testing.T) {
	path := writeZip(t, []zipEntry{
		{name: "../1.0-evil.yang", content: "list evil { key \"id\"; }"},
	})

	a, err := archive.Open(path)
	require.NoError(t, err)
	defer a.Close()

	dest := t.TempDir()
	_, err = a.ExtractTo("../1.0-evil.yang", dest)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "escapes destination")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(dest), "1.0-evil.yang"))
}

func TestSampleSchema(t *testing.T) {
	path := writeZip(t, []zipEntry{
		{name: "notes.txt", content: "not a schema"},
		{name: "2.0.yang", content: "module base { contained }"},
		{name: "3.0.yang", content: "module later { }"},
	})

	a, err := archive.Open(path)
	require.NoError(t, err)
	defer a.Close()

	name, content, ok := a.SampleSchema(11)
	require.True(t, ok)
	assert.Equal(t, "2.0.yang", name)
	assert.Equal(t, "module base", string(content), "sample is capped at the limit")
}

func TestSampleSchema_NoSchemaMembers(t *testing.T) {
	path := writeZip(t, []zipEntry{
		{name: "notes.txt", content: "nothing here"},
	})

	a, err := archive.Open(path)
	require.NoError(t, err)
	defer a.Close()

	_, _, ok := a.SampleSchema(500)
	assert.False(t, ok)
}

func TestOpenError_Unwrap(t *testing.T) {
	_, err := archive.Open(filepath.Join(t.TempDir(), "nope.zip"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
