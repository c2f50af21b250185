package container

import (
	"testing"

	"github.com/libstappler/libstappler-core-sub003/internal/pool"
)

func TestForwardList(t *testing.T) {
	t.Run("PushPopOrder", func(t *testing.T) {
		p := pool.NewRoot()
		l := NewForwardList[int](p)
		l.PushFront(1)
		l.PushFront(2)
		l.PushFront(3)
		var got []int
		for {
			v, ok := l.PopFront()
			if !ok {
				break
			}
			got = append(got, v)
		}
		want := []int{3, 2, 1}
		if len(got) != len(want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, got)
			}
		}
	})

	t.Run("ExpandFrontBatchesNodes", func(t *testing.T) {
		p := pool.NewRoot()
		l := NewForwardList[int](p)
		l.ExpandFront(5, func(i int) int { return i })
		if l.Len() != 5 {
			t.Fatalf("expected 5 elements, got %d", l.Len())
		}
		var sum int
		l.Each(func(v int) { sum += v })
		if sum != 0+1+2+3+4 {
			t.Fatalf("expected sum 10, got %d", sum)
		}
	})

	t.Run("NodeStorageIsPoolOwned", func(t *testing.T) {
		p := pool.NewRoot()
		l := NewForwardList[int](p)

		l.ExpandFront(4, func(i int) int { return i })
		afterBatch := p.AllocatedBytes()
		if afterBatch == 0 {
			t.Fatalf("expected ExpandFront to charge the pool for the batch")
		}

		l.PushFront(99)
		if p.AllocatedBytes() == afterBatch {
			t.Fatalf("expected the freelist-miss push to allocate from the pool")
		}
	})

	t.Run("ShrinkToFitSurvivesDroppingALowerIndexedBatch", func(t *testing.T) {
		p := pool.NewRoot()
		l := NewForwardList[int](p)
		l.ExpandFront(4, func(i int) int { return i })
		for l.Len() > 0 {
			l.PopFront()
		}
		l.ExpandFront(4, func(i int) int { return 100 + i })

		// The first batch is now idle; shrinking drops it while the
		// second (holding the four live nodes) survives. A stale
		// positional batch index would corrupt the survivor's liveness
		// count on the next push/pop.
		l.ShrinkToFit()
		if l.Len() != 4 {
			t.Fatalf("expected 4 live elements, got %d", l.Len())
		}

		l.PushFront(1)
		l.PushFront(2)
		if l.Len() != 6 {
			t.Fatalf("expected 6 elements after pushing past the surviving batch, got %d", l.Len())
		}
		for l.Len() > 0 {
			l.PopFront()
		}
	})

	t.Run("IteratorWalksInOrder", func(t *testing.T) {
		p := pool.NewRoot()
		l := NewForwardList[string](p)
		l.PushFront("c")
		l.PushFront("b")
		l.PushFront("a")
		var got []string
		for it := l.Begin(); it.Valid(); it = it.Next() {
			got = append(got, it.Value())
		}
		if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
			t.Fatalf("unexpected iteration order: %v", got)
		}
	})
}

func TestBuffer(t *testing.T) {
	t.Run("StaysInlineBelowThreshold", func(t *testing.T) {
		p := pool.NewRoot()
		b := NewBuffer(p)
		b.Append([]byte("hello"))
		if b.IsLarge() {
			t.Fatalf("expected buffer to remain inline for short content")
		}
		if string(b.Bytes()) != "hello" {
			t.Fatalf("unexpected contents: %q", b.Bytes())
		}
	})

	t.Run("InlinePhaseIssuesNoPoolAllocation", func(t *testing.T) {
		p := pool.NewRoot()
		b := NewBuffer(p)
		for i := 0; i < smallBufBytes; i++ {
			b.Append([]byte{byte(i)})
		}
		if p.AllocatedBytes() != 0 {
			t.Fatalf("expected no pool allocation while inline, got %d bytes", p.AllocatedBytes())
		}

		// Crossing the inline capacity issues exactly one allocation.
		b.Append([]byte{0xff})
		first := p.AllocatedBytes()
		if first == 0 {
			t.Fatalf("expected a pool allocation on promotion")
		}
		b.Append([]byte{0xfe})
		if p.AllocatedBytes() != first {
			t.Fatalf("expected no further allocation within the promoted capacity")
		}
	})

	t.Run("PromotesToLargeAboveThreshold", func(t *testing.T) {
		p := pool.NewRoot()
		b := NewBuffer(p)
		long := make([]byte, smallBufBytes+10)
		for i := range long {
			long[i] = byte('a' + i%26)
		}
		b.Append(long)
		if !b.IsLarge() {
			t.Fatalf("expected buffer to promote to large representation")
		}
		if string(b.Bytes()) != string(long) {
			t.Fatalf("contents mismatch after promotion")
		}
	})

	t.Run("ClearDoesNotDemote", func(t *testing.T) {
		p := pool.NewRoot()
		b := NewBuffer(p)
		b.Append(make([]byte, smallBufBytes+10))
		b.Clear()
		if !b.IsLarge() {
			t.Fatalf("expected large representation to persist across Clear")
		}
		if b.Len() != 0 {
			t.Fatalf("expected length reset to 0, got %d", b.Len())
		}
	})

	t.Run("ExtractResetsToSmall", func(t *testing.T) {
		p := pool.NewRoot()
		b := NewBuffer(p)
		b.Append(make([]byte, smallBufBytes+10))
		out := b.Extract()
		if len(out) != smallBufBytes+10 {
			t.Fatalf("expected extracted copy of %d bytes, got %d", smallBufBytes+10, len(out))
		}
		if b.IsLarge() || b.Len() != 0 {
			t.Fatalf("expected empty small-representation buffer after Extract")
		}
	})
}

func TestFunctionAndCallback(t *testing.T) {
	t.Run("FunctionInvokesWrappedClosure", func(t *testing.T) {
		p := pool.NewRoot()
		called := false
		fn := NewFunction[func(int) int](p, func(n int) int {
			called = true
			return n * 2
		})
		if got := fn.Get()(21); got != 42 {
			t.Fatalf("expected 42, got %d", got)
		}
		if !called {
			t.Fatalf("expected wrapped closure to run")
		}
	})

	t.Run("CallbackInvokesWithoutAllocating", func(t *testing.T) {
		sum := 0
		cb := NewCallback[func(int)](func(n int) { sum += n })
		cb.Get()(10)
		cb.Get()(32)
		if sum != 42 {
			t.Fatalf("expected 42, got %d", sum)
		}
	})
}
