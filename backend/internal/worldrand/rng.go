// Package worldrand provides the simulation's single seeded random source.
//
// Every subsystem draws from one Rng per simulation run (spec.md §4.1,
// §5 "ordering guarantees"). It is grounded on the teacher's
// pkg/game.Random (a mutex-guarded wrapper around math/rand.Rand) but
// drops the time-seeded constructor entirely: simulation reproducibility
// requires that two runs given the same seed string consume randomness in
// the same order and get the same values, so there is no NewRandom() with
// no arguments here, only New(seed).
package worldrand

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"
	"sync"
)

// Rng is the simulation's deterministic pseudo-random source. Safe for
// concurrent use, though the simulation core never calls it concurrently
// (spec.md §5: single-threaded, cooperative, turn-driven).
type Rng struct {
	mu      sync.Mutex
	src     *rand.Rand
	seed    string
	uidSeq  uint64
	calls   uint64
}

// New creates a deterministic Rng from a seed string. The seed is reduced
// to an int64 via a stable FNV-1a hash so that identical seed strings
// always produce identical generator state, independent of host entropy
// or wall-clock time.
func New(seed string) *Rng {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	state := int64(h.Sum64())
	return &Rng{
		src:  rand.New(rand.NewSource(state)),
		seed: seed,
	}
}

// Derive produces a fresh, independently-seeded Rng from this one combined
// with a label. Subsystems must not call this implicitly — spec.md §4.1
// requires an explicit seed string derived from the run seed when a
// sub-RNG is genuinely needed (e.g. replaying a single subsystem in
// isolation for tests); normal simulation ticks always share one Rng.
func (r *Rng) Derive(label string) *Rng {
	return New(r.seed + "::" + label)
}

// Next returns a uniform real in [0, 1).
func (r *Rng) Next() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.src.Float64()
}

// Int returns a uniform integer in [0, n). Panics if n <= 0, matching
// math/rand.Intn's contract; callers must guard zero-length pools with PickIndex.
func (r *Rng) Int(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls++
	return r.src.Intn(n)
}

// Range returns a uniform integer in [lo, hi] inclusive.
func (r *Rng) Range(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Int(hi-lo+1)
}

// Dice rolls a single die with the given number of sides, returning a
// value in [1, sides].
func (r *Rng) Dice(sides int) int {
	if sides <= 0 {
		return 0
	}
	return r.Int(sides) + 1
}

// errEmptyPool is the sentinel returned by PickIndex on an empty pool.
var errEmptyPool = fmt.Errorf("worldrand: empty pool")

// EmptyPoolError returns the sentinel used by PickIndex/PickString when given an
// empty collection, so callers can match it with errors.Is.
func EmptyPoolError() error { return errEmptyPool }

// PickIndex returns a uniformly chosen index into [0, n). Returns
// (-1, EmptyPoolError()) when n == 0.
func (r *Rng) PickIndex(n int) (int, error) {
	if n == 0 {
		return -1, errEmptyPool
	}
	return r.Int(n), nil
}

// PickString returns a uniformly chosen element of items.
func (r *Rng) PickString(items []string) (string, error) {
	idx, err := r.PickIndex(len(items))
	if err != nil {
		return "", err
	}
	return items[idx], nil
}

// Chance reports whether a Bernoulli trial with probability p succeeds.
// p <= 0 always fails and p >= 1 always succeeds without consuming the
// generator, per spec.md §4.1 "0 and 1 short-circuited".
func (r *Rng) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Next() < p
}

// shuffleDraws returns the number of underlying generator draws
// rand.Rand.Shuffle(n, ...) consumes: Fisher-Yates performs n-1 swaps,
// each drawing exactly one index (math/rand's Shuffle implementation).
// Restore's replay loop advances by CallCount draws, so r.calls must
// count every draw Shuffle actually consumes from the source, not one
// per invocation — otherwise a restored Rng falls behind the live one
// by n-2 draws and every subsequent value diverges.
func shuffleDraws(n int) uint64 {
	if n <= 1 {
		return 0
	}
	return uint64(n - 1)
}

// ShuffleInts shuffles a copy of ints using Fisher-Yates and returns it.
func (r *Rng) ShuffleInts(items []int) []int {
	out := make([]int, len(items))
	copy(out, items)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	r.calls += shuffleDraws(len(out))
	return out
}

// ShuffleStrings shuffles a copy of a string slice using Fisher-Yates.
func (r *Rng) ShuffleStrings(items []string) []string {
	out := make([]string, len(items))
	copy(out, items)
	r.mu.Lock()
	defer r.mu.Unlock()
	r.src.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	r.calls += shuffleDraws(len(out))
	return out
}

// UID produces a monotonically-distinct, reproducible opaque id. Given two
// identical seeds and identical call sequences, the id sequence is
// identical (spec.md §4.1). Format is "<prefix>-<sequence><salt>" where
// salt is drawn from the shared generator so two different prefixes used
// at the same call index never collide.
func (r *Rng) UID(prefix string) string {
	r.mu.Lock()
	r.uidSeq++
	seq := r.uidSeq
	r.mu.Unlock()

	salt := r.Int(1 << 20)
	if prefix == "" {
		prefix = "id"
	}
	return prefix + "-" + strconv.FormatUint(seq, 36) + strconv.FormatInt(int64(salt), 36)
}

// CallCount reports how many generator draws have been consumed so far.
// Exposed for tests asserting consumption-order stability (spec.md
// invariant 10).
func (r *Rng) CallCount() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls
}

// State captures enough information to resume an Rng deterministically
// across a snapshot/restore cycle. math/rand.Rand does not expose its
// internal vector, so the simulation instead replays: it stores the seed
// and the number of draws consumed, and Restore fast-forwards by
// re-drawing (not reusing) that many Float64 calls. This keeps restore
// cheap relative to a long-running simulation's future, at the cost of an
// O(calls) replay on restore — acceptable since restore is a rare,
// out-of-band operation, never a per-tick one.
type State struct {
	Seed      string `json:"seed"`
	UIDSeq    uint64 `json:"uidSeq"`
	CallCount uint64 `json:"callCount"`
}

// Snapshot captures the Rng's resumable state.
func (r *Rng) Snapshot() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return State{Seed: r.seed, UIDSeq: r.uidSeq, CallCount: r.calls}
}

// Restore reconstructs an Rng from a previously captured State, replaying
// its consumed draws so that the next call picks up exactly where the
// captured generator left off.
func Restore(s State) *Rng {
	r := New(s.Seed)
	for i := uint64(0); i < s.CallCount; i++ {
		r.src.Float64()
	}
	r.calls = s.CallCount
	r.uidSeq = s.UIDSeq
	return r
}
