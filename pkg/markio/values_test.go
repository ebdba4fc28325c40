package markio

import (
	"bytes"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func newPlainReader(t *testing.T, data []byte) *Reader {
	t.Helper()
	r, err := NewReader(bytes.NewReader(data), testPassword)
	if err != nil {
		t.Fatalf("NewReader() error = %v", err)
	}
	return r
}

func TestReadIntegers(t *testing.T) {
	data := []byte{
		0x01,                   // bool
		0xFE,                   // int8 -2
		0x34, 0x12,             // uint16 0x1234
		0xFF, 0xFF,             // int16 -1
		0x78, 0x56, 0x34, 0x12, // uint32 0x12345678
		0xFE, 0xFF, 0xFF, 0xFF, // int32 -2
	}
	// uint64 0x0102030405060708 と int64 の最小値
	data = append(data, 0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01)
	data = append(data, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80)
	r := newPlainReader(t, data)

	if v, err := ReadBool(r); err != nil || !v {
		t.Errorf("ReadBool() = %v, %v", v, err)
	}
	if v, err := ReadInt8(r); err != nil || v != -2 {
		t.Errorf("ReadInt8() = %d, %v", v, err)
	}
	if v, err := ReadUint16(r); err != nil || v != 0x1234 {
		t.Errorf("ReadUint16() = 0x%X, %v", v, err)
	}
	if v, err := ReadInt16(r); err != nil || v != -1 {
		t.Errorf("ReadInt16() = %d, %v", v, err)
	}
	if v, err := ReadUint32(r); err != nil || v != 0x12345678 {
		t.Errorf("ReadUint32() = 0x%X, %v", v, err)
	}
	if v, err := ReadInt32(r); err != nil || v != -2 {
		t.Errorf("ReadInt32() = %d, %v", v, err)
	}
	if v, err := ReadUint64(r); err != nil || v != 0x0102030405060708 {
		t.Errorf("ReadUint64() = 0x%X, %v", v, err)
	}
	if v, err := ReadInt64(r); err != nil || v != -1<<63 {
		t.Errorf("ReadInt64() = %d, %v", v, err)
	}
	if r.Count() != int64(len(data)) {
		t.Errorf("Count() = %d, want %d", r.Count(), len(data))
	}
}

func TestReadBool(t *testing.T) {
	tests := []struct {
		name string
		b    byte
		want bool
	}{
		{name: "0は false", b: 0x00, want: false},
		{name: "1は true", b: 0x01, want: true},
		{name: "0以外は true", b: 0x80, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadBool(newPlainReader(t, []byte{tt.b}))
			if err != nil {
				t.Fatalf("ReadBool() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadBool() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadFloats(t *testing.T) {
	r := newPlainReader(t, []byte{
		0x00, 0x00, 0xC0, 0x3F,                         // 1.5
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02, 0xC0, // -2.25
	})

	if v, err := ReadFloat32(r); err != nil || v != 1.5 {
		t.Errorf("ReadFloat32() = %v, %v", v, err)
	}
	if v, err := ReadFloat64(r); err != nil || v != -2.25 {
		t.Errorf("ReadFloat64() = %v, %v", v, err)
	}
}

func decimalBytes(lo, mid, hi, flags uint32) []byte {
	b := make([]byte, 0, 16)
	for _, w := range []uint32{lo, mid, hi, flags} {
		b = append(b, byte(w), byte(w>>8), byte(w>>16), byte(w>>24))
	}
	return b
}

func TestDecodeDecimal(t *testing.T) {
	tests := []struct {
		name    string
		data    []byte
		want    string
		wantErr bool
	}{
		{name: "ゼロ", data: decimalBytes(0, 0, 0, 0), want: "0"},
		{name: "1.5", data: decimalBytes(15, 0, 0, 0x00010000), want: "1.5"},
		{name: "-123.456", data: decimalBytes(123456, 0, 0, 0x80030000), want: "-123.456"},
		{name: "2^64", data: decimalBytes(0, 0, 1, 0), want: "18446744073709551616"},
		{name: "最大値", data: decimalBytes(0xFFFFFFFF, 0xFFFFFFFF, 0xFFFFFFFF, 0), want: "79228162514264337593543950335"},
		{name: "予約ビットが立っている", data: decimalBytes(1, 0, 0, 0x00000001), wantErr: true},
		{name: "スケールが28を超える", data: decimalBytes(1, 0, 0, 0x001D0000), wantErr: true},
		{name: "長さ不足", data: make([]byte, 15), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeDecimal(tt.data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DecodeDecimal() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidDecimal) {
					t.Errorf("DecodeDecimal() error = %v, want ErrInvalidDecimal", err)
				}
				return
			}
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("DecodeDecimal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestReadDecimal(t *testing.T) {
	r := newPlainReader(t, decimalBytes(2500, 0, 0, 0x00020000))
	got, err := ReadDecimal(r)
	if err != nil {
		t.Fatalf("ReadDecimal() error = %v", err)
	}
	if !got.Equal(decimal.RequireFromString("25")) {
		t.Errorf("ReadDecimal() = %s, want 25", got)
	}
	if r.Count() != 16 {
		t.Errorf("Count() = %d, want 16", r.Count())
	}
}

func TestUnsupportedReads(t *testing.T) {
	r := newPlainReader(t, []byte("abcd"))

	if _, err := ReadChar(r); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("ReadChar() error = %v", err)
	}
	if _, err := ReadChars(r, 2); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("ReadChars() error = %v", err)
	}
	if _, err := ReadString(r); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("ReadString() error = %v", err)
	}
	if r.Count() != 0 {
		t.Errorf("未対応の操作でバイトが消費されました: Count() = %d", r.Count())
	}
}

func TestTypedReadsAtomicOnEOF(t *testing.T) {
	r := newPlainReader(t, []byte{0x01, 0x02, 0x03})

	if _, err := ReadUint32(r); !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("ReadUint32() error = %v, want ErrEndOfInput", err)
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d, want 0", r.Count())
	}
	if v, err := ReadUint16(r); err != nil || v != 0x0201 {
		t.Errorf("ReadUint16() = 0x%X, %v", v, err)
	}
}

func TestTypedReadsEncrypted(t *testing.T) {
	plain := make([]byte, 32)
	copy(plain, []byte{0x01, 0xEF, 0xBE, 0xAD, 0xDE})
	copy(plain[5:], decimalBytes(15, 0, 0, 0x00010000))
	r, _ := newEncryptedReader(t, encryptForTest(t, testPassword, testSalt, plain))

	if v, err := ReadBool(r); err != nil || !v {
		t.Errorf("ReadBool() = %v, %v", v, err)
	}
	if v, err := ReadUint32(r); err != nil || v != 0xDEADBEEF {
		t.Errorf("ReadUint32() = 0x%X, %v", v, err)
	}
	d, err := ReadDecimal(r)
	if err != nil || !d.Equal(decimal.RequireFromString("1.5")) {
		t.Errorf("ReadDecimal() = %s, %v", d, err)
	}
	if r.Count() != 21 || r.Buffered() != 11 {
		t.Errorf("Count() = %d, Buffered() = %d, want 21, 11", r.Count(), r.Buffered())
	}
}
