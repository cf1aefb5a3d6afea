// SPDX-License-Identifier: Apache-2.0

// Package archive selects candidate schema members from a zip archive.
// Members are chosen purely by naming convention: per-table schema files are
// named <version>-<table>.yang, while version-only members like 1.2.3.yang
// carry no table definitions and are skipped.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// SchemaExt is the extension a member must carry to be considered at all.
const SchemaExt = ".yang"

// OpenError reports that the archive itself could not be opened. It is the
// only fatal error class in the extraction pipeline; everything downstream
// is recovered per member.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("open archive %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Archive is an open zip archive of schema files.
type Archive struct {
	path  string
	zr    *zip.ReadCloser
	index map[string]*zip.File
}

// Open opens the zip archive at archivePath. A missing, unreadable, or
// malformed archive fails with *OpenError.
func Open(archivePath string) (*Archive, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, &OpenError{Path: archivePath, Err: err}
	}
	index := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		if _, ok := index[f.Name]; !ok {
			index[f.Name] = f
		}
	}
	return &Archive{path: archivePath, zr: zr, index: index}, nil
}

func (a *Archive) Close() error { return a.zr.Close() }

// IsSchemaMember reports whether an archive entry name qualifies as a
// per-table schema file: not a directory entry, base name ends in the schema
// extension (exact, case-sensitive) and contains at least one hyphen before
// it. Version-only names like "1.2.3.yang" do not qualify.
func IsSchemaMember(name string) bool {
	if strings.HasSuffix(name, "/") {
		return false
	}
	base := path.Base(name)
	if !strings.HasSuffix(base, SchemaExt) {
		return false
	}
	return strings.Contains(strings.TrimSuffix(base, SchemaExt), "-")
}

// Select returns the qualifying member names in archive listing order.
// Zero matches is not an error; the caller decides how loudly to complain.
func (a *Archive) Select() []string {
	var names []string
	for _, f := range a.zr.File {
		if IsSchemaMember(f.Name) {
			names = append(names, f.Name)
		}
	}
	return names
}

// ExtractTo materializes the named member under dest, preserving its
// archive-relative path, and returns the path it was written to. Member
// names that would escape dest are rejected.
func (a *Archive) ExtractTo(name, dest string) (string, error) {
	f, ok := a.index[name]
	if !ok {
		return "", fmt.Errorf("no such member: %s", name)
	}
	rel := filepath.FromSlash(name)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("member name escapes destination: %s", name)
	}
	target := filepath.Join(dest, rel)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("create member dir: %w", err)
	}
	rc, err := f.Open()
	if err != nil {
		return "", fmt.Errorf("open member %s: %w", name, err)
	}
	defer rc.Close()
	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", target, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return "", fmt.Errorf("extract member %s: %w", name, err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("extract member %s: %w", name, err)
	}
	return target, nil
}

// SampleSchema returns up to limit bytes of the first schema-extension
// member, qualifying or not. It backs the diagnostic shown when no members
// match the naming convention, and is strictly best-effort.
func (a *Archive) SampleSchema(limit int) (name string, content []byte, ok bool) {
	for _, f := range a.zr.File {
		if strings.HasSuffix(f.Name, "/") || !strings.HasSuffix(f.Name, SchemaExt) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		buf := make([]byte, limit)
		n, _ := io.ReadFull(rc, buf)
		rc.Close()
		return f.Name, buf[:n], true
	}
	return "", nil, false
}
