package pruner_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/llminxsolver/datadir"
	"github.com/katalvlaran/llminxsolver/minx"
	"github.com/katalvlaran/llminxsolver/pruner"
)

func TestCornerOrientationPrunerRoundTrip(t *testing.T) {
	corners := []uint8{0, 1, 2, 3, 4}
	p := pruner.NewCornerOrientationPruner("coUC", "co_uc_", corners)

	require.Equal(t, 81, p.TableSize()) // 3^4
	require.True(t, p.UsesCornerOrientation())
	require.False(t, p.UsesEdgeOrientation())

	s := minx.New()
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	s.ApplyMove(minx.Move{Family: minx.FamilyU, Power: minx.Quarter})

	coord := p.Coordinate(s)
	require.GreaterOrEqual(t, coord, 0)
	require.Less(t, coord, p.TableSize())

	decoded := minx.New()
	p.SetState(coord, decoded)
	require.Equal(t, coord, p.Coordinate(decoded))
}

func TestCornerPermutationPrunerRoundTrip(t *testing.T) {
	corners := []uint8{0, 1, 2, 3, 4}
	p := pruner.NewCornerPermutationPruner("cpUC", "cp_uc_", corners)
	require.Equal(t, 60, p.TableSize()) // 5!/2
	require.True(t, p.UsesCornerPermutation())

	s := minx.New()
	s.ApplyMove(minx.Move{Family: minx.FamilyU, Power: minx.Quarter})
	coord := p.Coordinate(s)

	decoded := minx.New()
	p.SetState(coord, decoded)
	require.Equal(t, coord, p.Coordinate(decoded))
}

func TestSeparationPrunerRoundTrip(t *testing.T) {
	corners := []uint8{0, 1, 2, 3, 4}
	edges := []uint8{0, 1, 2, 3, 4}
	p := pruner.NewSeparationPruner("sepLL", "sep_ll_", corners, edges)

	s := minx.New()
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	s.ApplyMove(minx.Move{Family: minx.FamilyF, Power: minx.Inverse})

	coord := p.Coordinate(s)
	require.Less(t, coord, p.TableSize())

	decoded := minx.New()
	p.SetState(coord, decoded)
	require.Equal(t, coord, p.Coordinate(decoded))
}

func TestCompositePrunerCoversBothFacets(t *testing.T) {
	corners := []uint8{0, 1, 2, 3, 4}
	edges := []uint8{0, 1, 2, 3, 4}
	co := pruner.NewCornerOrientationPruner("coUC", "co_uc_", corners)
	eo := pruner.NewEdgeOrientationPruner("eoUE", "eo_ue_", edges)
	comp := pruner.NewCompositePruner("coEoUC", "coeo_uc_", co, eo)

	require.True(t, comp.UsesCornerOrientation())
	require.True(t, comp.UsesEdgeOrientation())
	require.Equal(t, co.TableSize()*eo.TableSize(), comp.TableSize())

	s := minx.New()
	s.ApplyMove(minx.Move{Family: minx.FamilyR, Power: minx.Quarter})
	coord := comp.Coordinate(s)

	decoded := minx.New()
	comp.SetState(coord, decoded)
	require.Equal(t, coord, comp.Coordinate(decoded))
}

func TestTableFileNaming(t *testing.T) {
	p := pruner.NewCornerOrientationPruner("coUC", "co_uc_", []uint8{0, 1, 2, 3, 4})

	require.Equal(t, "co_uc_FIFTH.prn.lz4", pruner.TableFile(p, pruner.MetricFifth))
	require.Equal(t, "co_uc_FACE.prn.lz4", pruner.TableFile(p, pruner.MetricFace))
	require.Equal(t, "d12_co_uc_FIFTH.prn.lz4", pruner.TableFileWithDepth(p, pruner.MetricFifth, 12))
}

func TestSaveAndLoadTableRoundTrip(t *testing.T) {
	// datadir is process-global and set-once; this is the only test in
	// the package that touches the filesystem, so it owns that setting.
	datadir.Set(t.TempDir())

	p := pruner.NewCornerOrientationPruner("coUC", "co_uc_", []uint8{0, 1, 2, 3, 4})
	table := make([]byte, p.TableSize())
	for i := range table {
		table[i] = byte(i % 7)
	}

	pruner.SaveTable(p, table, pruner.MetricFifth)

	loaded, ok := pruner.LoadTable(p, pruner.MetricFifth)
	require.True(t, ok)
	require.Equal(t, table, loaded)

	require.True(t, pruner.IsPrecomputed(p, pruner.MetricFifth))
}
