package sound

import (
	"testing"
)

func TestQueueTryPopEmpty(t *testing.T) {
	var q Queue

	if _, ok := q.TryPop(); ok {
		t.Fatalf("TryPop() ok = true, want false")
	}
}

func TestQueueTryPushFull(t *testing.T) {
	var q Queue

	for i := 0; i < queueSlots; i++ {
		if ok := q.TryPush(Kick); !ok {
			t.Fatalf("TryPush() ok = false at slot %d, want true", i)
		}
	}
	if ok := q.TryPush(Kick); ok {
		t.Fatalf("TryPush() ok = true when full, want false")
	}
	if got := q.Len(); got != queueSlots {
		t.Fatalf("Len() = %d, want %d", got, queueSlots)
	}
}

func TestQueueDrainPreservesOrder(t *testing.T) {
	var q Queue
	q.Play(Kick)
	q.Play(None)
	q.Play(Kick)

	var got []ID
	n := q.Drain(SinkFunc(func(id ID) { got = append(got, id) }))
	if n != 3 {
		t.Fatalf("Drain() = %d, want 3", n)
	}
	want := []ID{Kick, None, Kick}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Drain() order[%d] = %s, want %s", i, got[i], want[i])
		}
	}
	if q.Len() != 0 {
		t.Fatalf("Len() after drain = %d, want 0", q.Len())
	}
}

func TestKickSamples(t *testing.T) {
	s := Samples(Kick, 8000)
	if len(s) == 0 || len(s) >= 8000 {
		t.Fatalf("len(Samples) = %d, want a fraction of a second", len(s))
	}
	pcm := StereoPCM16(s)
	if len(pcm) != 4*len(s) {
		t.Fatalf("len(StereoPCM16) = %d, want %d", len(pcm), 4*len(s))
	}
	if Samples(None, 8000) != nil {
		t.Fatalf("Samples(None) != nil")
	}
}
