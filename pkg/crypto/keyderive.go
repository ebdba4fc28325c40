// Package crypto はパスワード保護された旧形式アーカイブの復号に使う鍵導出とブロック復号を提供します。
//
// 主な機能:
//   - DeriveKey: パスワードとソルトから AES-128 の鍵と初期チェイン値を導出
//   - ChainDecrypter: 単一ブロックの AES 復号から CBC 相当の連鎖復号を組み立てる
//   - XORBytes: バイト列同士の XOR
package crypto

import (
	"crypto/sha1"
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

const (
	// KeySize は導出される鍵と初期チェイン値のバイト数
	KeySize = 16

	// SaltSize はソルトのバイト数
	SaltSize = 8

	// KDFRounds は鍵ストレッチのラウンド数 (既存アーカイブとの互換のため変更不可)
	KDFRounds = 1 << 18

	ivSamples  = KeySize
	sampleStep = KDFRounds / ivSamples
)

// KeyMaterial は導出された鍵と初期チェイン値
type KeyMaterial struct {
	Key [KeySize]byte
	IV  [KeySize]byte
}

// DeriveKey はパスワードとソルトから鍵と初期チェイン値を導出します。
// 同じ入力に対しては常に同じ結果を返します。
func DeriveKey(password string, salt []byte) KeyMaterial {
	raw := append(encodePassword(password), salt...)

	var km KeyMaterial
	h := sha1.New()
	var counter [3]byte
	for i := 0; i < KDFRounds; i++ {
		h.Write(raw)
		counter[0] = byte(i)
		counter[1] = byte(i >> 8)
		counter[2] = byte(i >> 16)
		h.Write(counter[:])

		// Sum は内部状態を変えないので、ここまでのストリーム全体のダイジェストになる
		if i%sampleStep == 0 {
			digest := h.Sum(nil)
			km.IV[i/sampleStep] = digest[19]
		}
	}

	digest := h.Sum(nil)
	for i := 0; i < KeySize/4; i++ {
		binary.LittleEndian.PutUint32(km.Key[i*4:], binary.BigEndian.Uint32(digest[i*4:]))
	}
	return km
}

// encodePassword はパスワードを UTF-16LE (BOMなし) に変換します。
// ASCII の範囲では各バイトの後ろに 0x00 を置いたものと一致します。
func encodePassword(password string) []byte {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	b, err := enc.Bytes([]byte(password))
	if err == nil {
		return b
	}

	// 変換できない場合は各バイトをそのまま16ビット化する
	b = make([]byte, 0, len(password)*2)
	for i := 0; i < len(password); i++ {
		b = append(b, password[i], 0)
	}
	return b
}
