// SPDX-License-Identifier: Apache-2.0

// Package extract drives one end-to-end extraction run over a schema archive.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/netschema/yangkeys/internal/archive"
	"github.com/netschema/yangkeys/internal/yang"
)

// sampleLimit bounds the content excerpt logged when no members qualify.
const sampleLimit = 500

// Pipeline runs the two extraction stages over one archive: select members
// by naming convention, scan each for list declarations, and merge the
// per-member mappings into a single result with last-write-wins semantics.
type Pipeline struct {
	log *slog.Logger
}

// NewPipeline creates a Pipeline logging to logger, or slog.Default when nil.
func NewPipeline(logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{log: logger}
}

// RunResult is the output of a successful pipeline run.
type RunResult struct {
	// Mapping is the merged entity-to-key result.
	Mapping yang.Mapping
	// MemberCount is the number of members that matched the naming convention.
	MemberCount int
	// Entities holds the per-member entity count, keyed by member name.
	Entities map[string]int
	// Overwrites counts entity names redefined across members.
	Overwrites int
}

func (p *Pipeline) Run(ctx context.Context, archivePath string) (yang.Mapping, error) {
	result, err := p.RunWithMeta(ctx, archivePath)
	if err != nil {
		return nil, err
	}
	return result.Mapping, nil
}

// RunWithMeta runs the pipeline and reports per-member metadata alongside
// the merged mapping. Only an archive that cannot be opened at all is fatal;
// members that fail to extract or read are logged and skipped, so a
// degraded run still returns everything that was recovered.
func (p *Pipeline) RunWithMeta(ctx context.Context, archivePath string) (RunResult, error) {
	a, err := archive.Open(archivePath)
	if err != nil {
		return RunResult{}, err
	}
	defer a.Close()

	// Scratch area for materialized members, gone on every exit path.
	scratch, err := os.MkdirTemp("", "yangkeys-")
	if err != nil {
		return RunResult{}, fmt.Errorf("create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	names := a.Select()
	p.log.Info("selected schema members", "archive", archivePath, "members", len(names))
	if len(names) == 0 {
		p.log.Warn("no members matched the <version>-<name>.yang convention", "archive", archivePath)
		if name, sample, ok := a.SampleSchema(sampleLimit); ok {
			p.log.Info("sample schema member", "member", name, "content", decode(sample))
		}
	}

	result := RunResult{
		Mapping:     make(yang.Mapping),
		MemberCount: len(names),
		Entities:    make(map[string]int, len(names)),
	}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}
		mapping, err := p.extractMember(a, name, scratch)
		if err != nil {
			p.log.Error("skipping member", "member", name, "error", err)
			continue
		}
		result.Entities[name] = len(mapping)
		p.log.Info("extracted entities", "member", name, "entities", len(mapping))
		for _, entity := range result.Mapping.Merge(mapping) {
			result.Overwrites++
			p.log.Warn("entity redefined, keeping later declaration", "entity", entity, "member", name)
		}
	}
	p.log.Info("extraction complete", "archive", archivePath, "entities", len(result.Mapping))
	return result, nil
}

// extractMember materializes one member under scratch and scans it.
func (p *Pipeline) extractMember(a *archive.Archive, name, scratch string) (yang.Mapping, error) {
	memberPath, err := a.ExtractTo(name, scratch)
	if err != nil {
		return nil, err
	}
	p.log.Info("processing member", "member", name)
	data, err := os.ReadFile(memberPath)
	if err != nil {
		return nil, fmt.Errorf("read member %s: %w", name, err)
	}
	return yang.Extract(decode(data)), nil
}

// decode interprets member content as UTF-8, substituting the replacement
// character for undecodable bytes so extraction stays best-effort.
func decode(data []byte) string {
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
