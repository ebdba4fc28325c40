package markio

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// BytesReader はちょうど n バイトを読み込む機能です。*Reader が実装します。
type BytesReader interface {
	ReadBytes(n int) ([]byte, error)
}

// decimal のフラグ語のレイアウト
const (
	decimalSignMask  = 0x80000000
	decimalScaleMask = 0x00FF0000
	decimalMaxScale  = 28
)

func readFixed[T any](r BytesReader, size int, decode func([]byte) T) (T, error) {
	b, err := r.ReadBytes(size)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode(b), nil
}

// ReadBool は1バイトを読み込み、0以外なら true を返します
func ReadBool(r BytesReader) (bool, error) {
	return readFixed(r, 1, DecodeBool)
}

// ReadUint8 は1バイトを読み込みます
func ReadUint8(r BytesReader) (uint8, error) {
	return readFixed(r, 1, func(b []byte) uint8 { return b[0] })
}

// ReadInt8 は1バイトを符号付きで読み込みます
func ReadInt8(r BytesReader) (int8, error) {
	return readFixed(r, 1, func(b []byte) int8 { return int8(b[0]) })
}

// ReadUint16 はリトルエンディアンの uint16 を読み込みます
func ReadUint16(r BytesReader) (uint16, error) {
	return readFixed(r, 2, binary.LittleEndian.Uint16)
}

// ReadInt16 はリトルエンディアンの int16 を読み込みます
func ReadInt16(r BytesReader) (int16, error) {
	return readFixed(r, 2, func(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) })
}

// ReadUint32 はリトルエンディアンの uint32 を読み込みます
func ReadUint32(r BytesReader) (uint32, error) {
	return readFixed(r, 4, binary.LittleEndian.Uint32)
}

// ReadInt32 はリトルエンディアンの int32 を読み込みます
func ReadInt32(r BytesReader) (int32, error) {
	return readFixed(r, 4, func(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) })
}

// ReadUint64 はリトルエンディアンの uint64 を読み込みます
func ReadUint64(r BytesReader) (uint64, error) {
	return readFixed(r, 8, binary.LittleEndian.Uint64)
}

// ReadInt64 はリトルエンディアンの int64 を読み込みます
func ReadInt64(r BytesReader) (int64, error) {
	return readFixed(r, 8, func(b []byte) int64 { return int64(binary.LittleEndian.Uint64(b)) })
}

// ReadFloat32 は IEEE 754 単精度浮動小数点数を読み込みます
func ReadFloat32(r BytesReader) (float32, error) {
	return readFixed(r, 4, DecodeFloat32)
}

// ReadFloat64 は IEEE 754 倍精度浮動小数点数を読み込みます
func ReadFloat64(r BytesReader) (float64, error) {
	return readFixed(r, 8, DecodeFloat64)
}

// ReadDecimal は16バイトの128ビット decimal を読み込みます
func ReadDecimal(r BytesReader) (decimal.Decimal, error) {
	b, err := r.ReadBytes(16)
	if err != nil {
		return decimal.Zero, err
	}
	return DecodeDecimal(b)
}

// ReadChar は未対応です。文字のデコードは呼び出し側のパーサーで行います。
func ReadChar(r BytesReader) (rune, error) {
	return 0, fmt.Errorf("%w: ReadChar", ErrUnsupportedOperation)
}

// ReadChars は未対応です
func ReadChars(r BytesReader, n int) ([]rune, error) {
	return nil, fmt.Errorf("%w: ReadChars", ErrUnsupportedOperation)
}

// ReadString は未対応です
func ReadString(r BytesReader) (string, error) {
	return "", fmt.Errorf("%w: ReadString", ErrUnsupportedOperation)
}

// DecodeBool は先頭バイトが0以外なら true を返します
func DecodeBool(b []byte) bool {
	return b[0] != 0
}

// DecodeFloat32 はリトルエンディアンの4バイトを float32 に変換します
func DecodeFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}

// DecodeFloat64 はリトルエンディアンの8バイトを float64 に変換します
func DecodeFloat64(b []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(b))
}

// DecodeDecimal は lo, mid, hi, flags の4つのリトルエンディアン32ビット語を decimal に変換します。
// flags はビット16〜23がスケール (0〜28)、ビット31が符号で、それ以外のビットは0でなければなりません。
func DecodeDecimal(b []byte) (decimal.Decimal, error) {
	if len(b) < 16 {
		return decimal.Zero, fmt.Errorf("%w: %d バイト", ErrInvalidDecimal, len(b))
	}
	lo := binary.LittleEndian.Uint32(b[0:])
	mid := binary.LittleEndian.Uint32(b[4:])
	hi := binary.LittleEndian.Uint32(b[8:])
	flags := binary.LittleEndian.Uint32(b[12:])

	if flags&^(decimalSignMask|decimalScaleMask) != 0 {
		return decimal.Zero, fmt.Errorf("%w: flags=0x%08x", ErrInvalidDecimal, flags)
	}
	scale := (flags & decimalScaleMask) >> 16
	if scale > decimalMaxScale {
		return decimal.Zero, fmt.Errorf("%w: scale=%d", ErrInvalidDecimal, scale)
	}

	mag := new(big.Int).SetUint64(uint64(hi))
	mag.Lsh(mag, 64)
	mag.Or(mag, new(big.Int).SetUint64(uint64(mid)<<32|uint64(lo)))
	if flags&decimalSignMask != 0 {
		mag.Neg(mag)
	}
	return decimal.NewFromBigInt(mag, -int32(scale)), nil
}
