// SPDX-License-Identifier: MIT

// Package pruner implements the pattern-database pruner kinds and their
// on-disk table codec. A Pruner is a capability-set over a puzzle
// state: it maps a minx.State to a small integer coordinate (and back),
// and it declares which of the 4 state facets (corner permutation,
// corner orientation, edge permutation, edge orientation) that
// coordinate depends on, so a solver can skip a pruner whose facet it
// has been told to ignore.
//
// Grounded on original_source/llminxsolver-rs/src/pruner.rs.
package pruner

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierrec/lz4/v4"

	"github.com/katalvlaran/llminxsolver/datadir"
	"github.com/katalvlaran/llminxsolver/minx"
)

// sizePrefixLen is the width of the little-endian uncompressed-length
// header written before the LZ4 payload, matching lz4_flex's
// compress_prepend_size/decompress_size_prepended framing in pruner.rs.
const sizePrefixLen = 4

// Metric is the move-counting convention a pruning table's distances
// were built under: Fifth-turn (a double turn costs 2) or Face-turn (a
// double turn costs 1). The two metrics never share a table file.
type Metric uint8

const (
	MetricFifth Metric = iota
	MetricFace
)

func (m Metric) suffix() string {
	if m == MetricFace {
		return "FACE"
	}
	return "FIFTH"
}

// Pruning-depth bounds: MinPruningDepth is the shallowest capped depth
// FindBestExistingTable looks for, MaxPruningDepth the top of the
// accepted range (tablebuilder.Build applies no depth cap of its own),
// DefaultPruningDepth what a caller gets if it doesn't ask for a
// specific depth.
const (
	MinPruningDepth     = 8
	MaxPruningDepth     = 18
	DefaultPruningDepth = 12
)

const compressedExtension = ".prn.lz4"

// Pruner is a pattern-database lookup: a coordinate function over a
// minx.State, an inverse (used by the table builder to enumerate every
// reachable state for a given coordinate), and the facet-usage flags a
// solver uses to drop pruners whose facet it ignores.
type Pruner interface {
	Name() string
	TablePath() string
	TableSize() int
	Coordinate(s *minx.State) int
	SetState(coordinate int, s *minx.State)

	UsesCornerPermutation() bool
	UsesEdgePermutation() bool
	UsesCornerOrientation() bool
	UsesEdgeOrientation() bool
}

// TableFile returns the on-disk path of p's uncompressed-depth table
// for metric, rooted at datadir's configured data directory if one has
// been set.
func TableFile(p Pruner, metric Metric) string {
	return datadir.Join(p.TablePath() + metric.suffix() + compressedExtension)
}

// TableFileWithDepth returns the on-disk path of p's depth-capped table
// for metric at depth, rooted at datadir's configured data directory if
// one has been set. Supplemented from spec.md's depth-cap filename
// convention (see SPEC_FULL.md §12); FindBestExistingTable locates the
// deepest such file. solver.Solver reads and writes only the uncapped
// TableFile and never looks for a capped one.
func TableFileWithDepth(p Pruner, metric Metric, depth int) string {
	filename := fmt.Sprintf("d%d_%s%s%s", depth, p.TablePath(), metric.suffix(), compressedExtension)
	return datadir.Join(filename)
}

// IsPrecomputed reports whether p's uncompressed-depth table for
// metric already exists on disk.
func IsPrecomputed(p Pruner, metric Metric) bool {
	_, err := os.Stat(TableFile(p, metric))
	return err == nil
}

// IsPrecomputedWithDepth reports whether p's depth-capped table for
// metric at depth already exists on disk.
func IsPrecomputedWithDepth(p Pruner, metric Metric, depth int) bool {
	_, err := os.Stat(TableFileWithDepth(p, metric, depth))
	return err == nil
}

// FindBestExistingTable scans depths from maxDepth down to
// MinPruningDepth and returns the path and depth of the deepest
// depth-capped table that exists on disk, or ("", 0, false) if none do.
func FindBestExistingTable(p Pruner, metric Metric, maxDepth int) (string, int, bool) {
	for depth := maxDepth; depth >= MinPruningDepth; depth-- {
		path := TableFileWithDepth(p, metric, depth)
		if _, err := os.Stat(path); err == nil {
			return path, depth, true
		}
	}
	return "", 0, false
}

// LoadTable reads and decompresses p's uncompressed-depth table for
// metric. It returns (nil, false) if the file doesn't exist or can't
// be read.
func LoadTable(p Pruner, metric Metric) ([]byte, bool) {
	return loadCompressedTable(TableFile(p, metric))
}

// LoadTableWithDepth reads and decompresses p's depth-capped table for
// metric at depth.
func LoadTableWithDepth(p Pruner, metric Metric, depth int) ([]byte, bool) {
	return loadCompressedTable(TableFileWithDepth(p, metric, depth))
}

func loadCompressedTable(path string) ([]byte, bool) {
	f, err := os.Open(path)
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var header [sizePrefixLen]byte
	if _, err := io.ReadFull(f, header[:]); err != nil {
		return nil, false
	}
	wantSize := binary.LittleEndian.Uint32(header[:])

	zr := lz4.NewReader(f)
	table, err := io.ReadAll(zr)
	if err != nil || uint32(len(table)) != wantSize {
		return nil, false
	}
	return table, true
}

// SaveTable compresses table as an LZ4 frame prefixed by its
// decompressed length and writes it to p's uncompressed-depth table
// file for metric, creating parent directories as needed. Write
// failures are swallowed, matching the original's best-effort save (a
// solver that can't persist a table simply rebuilds it next run).
func SaveTable(p Pruner, table []byte, metric Metric) {
	saveCompressedTable(TableFile(p, metric), table)
}

// SaveTableWithDepth is SaveTable for a depth-capped table file.
func SaveTableWithDepth(p Pruner, table []byte, metric Metric, depth int) {
	saveCompressedTable(TableFileWithDepth(p, metric, depth), table)
}

func saveCompressedTable(path string, table []byte) {
	if dir := filepath.Dir(path); dir != "" {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.Create(path)
	if err != nil {
		return
	}
	defer f.Close()

	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(table); err != nil {
		return
	}
	if err := zw.Close(); err != nil {
		return
	}

	var header [sizePrefixLen]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(table)))
	if _, err := f.Write(header[:]); err != nil {
		return
	}
	_, _ = f.Write(buf.Bytes())
}
