package engine_test

import (
	"math/rand/v2"
	"testing"

	"solitaire/internal/engine"
)

// candidateMoves lists every (src, dst) pair worth asking the validator
// about: one click per stack card, every slot, every button.
func candidateMoves(b *engine.Board) []engine.Move {
	var locs []*engine.Location
	for i, s := range b.Stacks {
		if len(s) == 0 {
			locs = append(locs, engine.StackAt(i, clickY(0)))
		}
		for j := range s {
			locs = append(locs, engine.StackAt(i, clickY(j)))
		}
	}
	for i := 0; i < engine.NumUtility; i++ {
		locs = append(locs, engine.UtilityAt(i))
	}
	for i := 0; i < engine.NumSuits; i++ {
		locs = append(locs, engine.FoundationAt(i))
	}

	var moves []engine.Move
	for _, s := range engine.AllSuits() {
		moves = append(moves, engine.Move{Dst: engine.Button(s)})
	}
	for _, src := range locs {
		for _, dst := range locs {
			moves = append(moves, engine.Move{Src: src, Dst: dst})
		}
	}
	return moves
}

func TestRandomPlayKeepsInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewPCG(seed, 99))
		b := engine.NewBoard(engine.SeededConfig(seed).Rand)

		for step := 0; step < 150; step++ {
			var legal []engine.ValidMove
			before := b.Clone()
			for _, m := range candidateMoves(b) {
				v, err := b.Validate(m)
				if err == nil {
					legal = append(legal, v)
				} else if !engine.IsRejection(err) {
					t.Fatalf("seed %d: unexpected error %v", seed, err)
				}
			}
			if !b.Equal(before) {
				t.Fatalf("seed %d step %d: Validate changed the board", seed, step)
			}
			if len(legal) == 0 {
				break
			}

			v := legal[rng.IntN(len(legal))]
			m := v.Move()
			var oldLen int
			if m.Dst.Kind == engine.LocationStack {
				oldLen = len(b.Stacks[m.Dst.Index])
			}

			b.Execute(v)

			if m.Dst.Kind == engine.LocationStack {
				dst := b.Stacks[m.Dst.Index]
				from := oldLen - 1
				if from < 0 {
					from = 0
				}
				if !engine.InOrder(dst[from:]) && oldLen > 0 {
					t.Fatalf("seed %d step %d: %s left stack %d out of order: %v", seed, step, m, m.Dst.Index, dst)
				}
				if oldLen == 0 && !engine.InOrder(dst) {
					t.Fatalf("seed %d step %d: moved run out of order: %v", seed, step, dst)
				}
			}

			b.Sweep()
			if _, ok := b.SweepStep(); ok {
				t.Fatalf("seed %d step %d: sweep did not reach fixpoint", seed, step)
			}
			if err := b.CheckInvariants(); err != nil {
				t.Fatalf("seed %d step %d after %s: %v", seed, step, m, err)
			}
		}
	}
}
