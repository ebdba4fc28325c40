// Package markio はパスワード保護されたアーカイブのヘッダ解析に使うバイナリリーダーを提供します。
//
// Reader はソルトが設定されると暗号文を透過的に復号し、
// Mark からの読み込みバイト数を数えます。数値などの型付きの値は
// ReadInt32 などの関数で Reader.ReadBytes の上に組み立てます。
//
// 基本的な使い方:
//
//	r, err := markio.NewReader(file, password)
//	if err != nil {
//	    return err
//	}
//	if err := r.SetSalt(salt); err != nil {
//	    return err
//	}
//	r.Mark()
//	size, err := markio.ReadUint16(r)
//	// r.Count() は Mark からの読み込みバイト数
//
// Reader は単一の goroutine から使うことを前提としています。
package markio

import (
	"errors"
	"fmt"
	"io"

	"github.com/shiroemons/go-rarmark/pkg/crypto"
)

// Reader は暗号化に対応し、読み込んだバイト数を数えるリーダーです
type Reader struct {
	src      io.ReadSeeker
	password string
	salt     []byte
	dec      *crypto.ChainDecrypter
	queue    plaintextQueue
	count    int64
}

// NewReader は新しい Reader を作成します。パスワードは必須です。
func NewReader(src io.ReadSeeker, password string) (*Reader, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: ソースが nil です", ErrInvalidState)
	}
	if password == "" {
		return nil, ErrEmptyPassword
	}
	return &Reader{
		src:      src,
		password: password,
	}, nil
}

// SetSalt はソルトを設定します。
// nil を渡すと暗号化を無効にします。8バイトのソルトを渡すと毎回鍵を導出し直し、
// 新しい復号器を作成します。どちらの場合もキュー内の平文は破棄されます。
func (r *Reader) SetSalt(salt []byte) error {
	if salt == nil {
		r.salt = nil
		r.dec = nil
		r.queue.Reset()
		return nil
	}
	if len(salt) != crypto.SaltSize {
		return fmt.Errorf("%w: %d バイト", ErrInvalidSalt, len(salt))
	}

	km := crypto.DeriveKey(r.password, salt)
	dec, err := crypto.NewChainDecrypter(km)
	if err != nil {
		return err
	}

	r.salt = append([]byte(nil), salt...)
	r.dec = dec
	r.queue.Reset()
	return nil
}

// Salt は設定されているソルトのコピーを返します
func (r *Reader) Salt() []byte {
	if r.salt == nil {
		return nil
	}
	return append([]byte(nil), r.salt...)
}

// Encrypted は暗号化モードかどうかを返します
func (r *Reader) Encrypted() bool {
	return r.salt != nil
}

// Mark は読み込みバイト数のカウンタを0に戻します
func (r *Reader) Mark() {
	r.count = 0
}

// Count は Mark 以降に読み込んだバイト数を返します
func (r *Reader) Count() int64 {
	return r.count
}

// Buffered はキュー内の未配送の平文バイト数を返します
func (r *Reader) Buffered() int {
	return r.queue.Len()
}

// ClearBuffer はキュー内の平文を破棄します。ソースの位置は変わりません。
func (r *Reader) ClearBuffer() {
	r.queue.Reset()
}

// SkipBuffered はソースの位置をキュー内の平文バイト数だけ進め、キューを空にします。
//
// TODO: キュー内の平文は既に読み込んだブロックの一部なので、この移動は次の暗号文ブロックの
// 途中に着地する。ヘッダ読み飛ばし側が暗号文のブロック境界を期待しているか確認する。
func (r *Reader) SkipBuffered() error {
	pos, err := r.position()
	if err != nil {
		return err
	}
	if _, err := r.src.Seek(pos+int64(r.queue.Len()), io.SeekStart); err != nil {
		return newReadError("SkipBuffered", pos, err)
	}
	r.queue.Reset()
	return nil
}

// ReadBytes はちょうど n バイトを読み込みます。
// 暗号化モードでは不足分を16バイト単位のブロックで復号し、余りはキューに残します。
// 失敗した場合はソースの位置、チェイン値、キュー、カウンタのいずれも変更しません。
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}

	var (
		b   []byte
		err error
	)
	if r.Encrypted() {
		b, err = r.readDecrypted(n)
	} else {
		b, err = r.readRaw(n)
	}
	if err != nil {
		return nil, err
	}

	r.count += int64(n)
	return b, nil
}

// ReadByte は1バイトを読み込みます
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.ReadBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) readRaw(n int) ([]byte, error) {
	b := make([]byte, n)
	if n == 0 {
		return b, nil
	}

	start, err := r.position()
	if err != nil {
		return nil, err
	}
	if _, err := io.ReadFull(r.src, b); err != nil {
		return nil, r.rollback("ReadBytes", start, err)
	}
	return b, nil
}

func (r *Reader) readDecrypted(n int) ([]byte, error) {
	if r.dec == nil {
		return nil, fmt.Errorf("%w: 鍵が導出されていません", ErrInvalidState)
	}

	savedQueue := r.queue
	out := make([]byte, n)
	off := r.queue.Pop(out)
	if off == n {
		return out, nil
	}

	start, err := r.position()
	if err != nil {
		r.queue = savedQueue
		return nil, err
	}
	savedDec := *r.dec

	var block [crypto.BlockSize]byte
	for off < n {
		if _, err := io.ReadFull(r.src, block[:]); err != nil {
			r.queue = savedQueue
			*r.dec = savedDec
			return nil, r.rollback("ReadBytes", start, err)
		}
		r.dec.DecryptBlock(block[:], block[:])

		c := copy(out[off:], block[:])
		off += c
		if c < len(block) {
			// 最後のブロックの残り。キューは直前の Pop で空になっている
			r.queue.Push(block[c:])
		}
	}
	return out, nil
}

func (r *Reader) position() (int64, error) {
	pos, err := r.src.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, newReadError("Seek", -1, err)
	}
	return pos, nil
}

// rollback はソースを start に戻し、読み込みエラーを返します
func (r *Reader) rollback(op string, start int64, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		err = fmt.Errorf("%w: %w", ErrEndOfInput, err)
	}
	if _, serr := r.src.Seek(start, io.SeekStart); serr != nil {
		err = errors.Join(err, serr)
	}
	return newReadError(op, start, err)
}
