// Package llminxsolver is a Megaminx Last-Layer optimal solver: a
// bit-packed state representation, pattern-database pruners, an IDA*
// search engine, a scramble DSL, and a memory-adaptive multi-case
// batch driver.
//
// Subpackages:
//
//	minx/         — bit-packed Last Layer state, the 24 move operators, history
//	coordinate/   — Lehmer/separation/orientation coordinate encodings
//	pruner/       — pattern-database kinds, composite pruner, LZ4 disk codec
//	tablebuilder/ — BFS pruning-table construction via forward/backward sweep
//	searchmode/   — named move-set + pruner-bundle registry (RU, RUD, ...)
//	solver/       — IDA* search over the implicit move-operator graph
//	batch/        — multi-mode, multi-case parallel driver with memory budgeting
//	memoryconfig/ — budget/thread presets, TOML-backed configuration
//	datadir/      — process-wide pruning-table data directory
//	scramble/     — scramble DSL parser, generator, and equivalence handling
//	fingermetric/ — physical move-sequence difficulty scorer
//	validation/   — permutation/orientation/parity invariant checks
//
//	go get github.com/katalvlaran/llminxsolver
package llminxsolver
