package markio

import (
	"bytes"
	"testing"
)

func TestPlaintextQueue(t *testing.T) {
	var q plaintextQueue
	if q.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", q.Len())
	}

	if !q.Push([]byte{1, 2, 3, 4, 5}) {
		t.Fatal("Push() = false, want true")
	}
	if q.Push([]byte{9}) {
		t.Error("空でないキューへの Push() が成功しました")
	}

	p := make([]byte, 2)
	if n := q.Pop(p); n != 2 || !bytes.Equal(p, []byte{1, 2}) {
		t.Errorf("Pop() = %d %v, want 2 [1 2]", n, p)
	}
	if q.Len() != 3 {
		t.Errorf("Len() = %d, want 3", q.Len())
	}

	p = make([]byte, 10)
	if n := q.Pop(p); n != 3 || !bytes.Equal(p[:n], []byte{3, 4, 5}) {
		t.Errorf("Pop() = %d %v, want 3 [3 4 5]", n, p[:n])
	}
	if n := q.Pop(p); n != 0 {
		t.Errorf("空のキューから Pop() = %d, want 0", n)
	}
}

func TestPlaintextQueue_Bounded(t *testing.T) {
	var q plaintextQueue
	if q.Push(make([]byte, 17)) {
		t.Error("1ブロックを超える Push() が成功しました")
	}
}

func TestPlaintextQueue_ResetAndCopy(t *testing.T) {
	var q plaintextQueue
	q.Push([]byte{7, 8, 9})
	saved := q

	q.Pop(make([]byte, 1))
	q.Reset()
	if q.Len() != 0 {
		t.Errorf("Reset() 後の Len() = %d, want 0", q.Len())
	}

	// コピーは影響を受けない
	p := make([]byte, 3)
	if n := saved.Pop(p); n != 3 || !bytes.Equal(p, []byte{7, 8, 9}) {
		t.Errorf("コピーからの Pop() = %d %v", n, p)
	}
}
