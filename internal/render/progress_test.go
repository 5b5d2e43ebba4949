package render

import "testing"

func TestProgress_Increment_DoesNotPanicAtZeroTotal(t *testing.T) {
	p := NewProgress(0)
	p.Increment()
	p.Done()
}

func TestProgress_Increment_TracksCompletedCount(t *testing.T) {
	p := NewProgress(10)
	for i := 0; i < 10; i++ {
		p.Increment()
	}
	if p.completed != 10 {
		t.Errorf("completed = %d, want 10", p.completed)
	}
}
