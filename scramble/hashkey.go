package scramble

import "github.com/gtank/blake2/blake2b"

// stateKey is a blake2b digest of a NormalizedState, used as the dedup
// map key everywhere the generator, equivalence handler, and adjust
// reducer need a "have we seen this state before" set — the Go
// analogue of the original's HashSet<NormalizedState>/
// HashMap<NormalizedState, _>, but keyed through a real hash primitive
// instead of relying on a derived struct Hash impl.
type stateKey [32]byte

func hashNormalizedState(n NormalizedState) stateKey {
	h, err := blake2b.NewDigest(nil, nil, nil, 32)
	if err != nil {
		panic(err) // fixed, valid parameters; NewDigest only errors on bad sizes
	}
	h.Write(n.CornerSignature[:])
	h.Write(n.EdgeSignature[:])
	h.Write(n.CornerOrientation[:])
	h.Write(n.EdgeOrientation[:])

	var key stateKey
	copy(key[:], h.Sum(nil))
	return key
}
