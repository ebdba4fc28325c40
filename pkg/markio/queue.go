package markio

import "github.com/shiroemons/go-rarmark/pkg/crypto"

// plaintextQueue は復号済みで未配送の平文を保持する1ブロック分の FIFO です。
// 容量が1ブロックなので、読み込み完了後の残量は常に 0〜15 バイトになります。
// 値としてコピーできます。
type plaintextQueue struct {
	buf  [crypto.BlockSize]byte
	head int
	size int
}

// Len はキュー内のバイト数を返します
func (q *plaintextQueue) Len() int {
	return q.size
}

// Pop は先頭から最大 len(p) バイトを取り出して p にコピーし、コピーしたバイト数を返します
func (q *plaintextQueue) Pop(p []byte) int {
	n := copy(p, q.buf[q.head:q.head+q.size])
	q.head += n
	q.size -= n
	if q.size == 0 {
		q.head = 0
	}
	return n
}

// Push は空のキューにブロックの残りを格納します。
// 格納できない場合は false を返します。
func (q *plaintextQueue) Push(p []byte) bool {
	if q.size != 0 || len(p) > len(q.buf) {
		return false
	}
	q.head = 0
	q.size = copy(q.buf[:], p)
	return true
}

// Reset はキューを空にします
func (q *plaintextQueue) Reset() {
	q.buf = [crypto.BlockSize]byte{}
	q.head = 0
	q.size = 0
}
