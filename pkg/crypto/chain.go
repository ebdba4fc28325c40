package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// BlockSize は AES のブロックサイズ
const BlockSize = aes.BlockSize

// ChainDecrypter は連鎖なしの AES ブロック復号にチェイン値の XOR を加えて
// CBC と同じ結果を1ブロックずつ得る復号器です。
// 値としてコピーするとチェイン値のスナップショットになります。
type ChainDecrypter struct {
	block cipher.Block
	chain [BlockSize]byte
}

// NewChainDecrypter は鍵と初期チェイン値から復号器を作成します
func NewChainDecrypter(km KeyMaterial) (*ChainDecrypter, error) {
	block, err := aes.NewCipher(km.Key[:])
	if err != nil {
		return nil, fmt.Errorf("AES 暗号の初期化に失敗しました: %w", err)
	}
	return &ChainDecrypter{
		block: block,
		chain: km.IV,
	}, nil
}

// DecryptBlock は暗号文ブロック src を復号して dst に書き込みます。
// ブロックは暗号文の順番どおりに渡す必要があります。dst と src は同じでも構いません。
func (d *ChainDecrypter) DecryptBlock(dst, src []byte) {
	if len(src) < BlockSize || len(dst) < BlockSize {
		panic("crypto: input not full block")
	}

	var ct [BlockSize]byte
	copy(ct[:], src)

	d.block.Decrypt(dst, src)
	XORBytes(dst[:BlockSize], dst[:BlockSize], d.chain[:])
	d.chain = ct
}

// Chain は現在のチェイン値 (最後に処理した暗号文ブロック) を返します
func (d *ChainDecrypter) Chain() [BlockSize]byte {
	return d.chain
}
