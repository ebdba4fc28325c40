package app

import (
	"fmt"
	"strings"

	"github.com/shiroemons/go-rarmark/pkg/markio"
)

type valueReader func(markio.BytesReader) (any, error)

func asAny[T any](read func(markio.BytesReader) (T, error)) valueReader {
	return func(r markio.BytesReader) (any, error) {
		v, err := read(r)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// valueReaders はレイアウトで指定できる型と読み込み関数の対応
var valueReaders = map[string]valueReader{
	"bool": asAny(markio.ReadBool),
	"i8":   asAny(markio.ReadInt8),
	"u8":   asAny(markio.ReadUint8),
	"i16":  asAny(markio.ReadInt16),
	"u16":  asAny(markio.ReadUint16),
	"i32":  asAny(markio.ReadInt32),
	"u32":  asAny(markio.ReadUint32),
	"i64":  asAny(markio.ReadInt64),
	"u64":  asAny(markio.ReadUint64),
	"f32":  asAny(markio.ReadFloat32),
	"f64":  asAny(markio.ReadFloat64),
	"dec":  asAny(markio.ReadDecimal),
	"str":  asAny(markio.ReadString),
}

// ParseLayout はカンマ区切りの型名を解析します
func ParseLayout(layout string) ([]string, error) {
	if strings.TrimSpace(layout) == "" {
		return nil, ErrEmptyLayout
	}

	parts := strings.Split(layout, ",")
	kinds := make([]string, 0, len(parts))
	for _, p := range parts {
		kind := strings.ToLower(strings.TrimSpace(p))
		if _, ok := valueReaders[kind]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, p)
		}
		kinds = append(kinds, kind)
	}
	return kinds, nil
}

func readValue(r markio.BytesReader, kind string) (any, error) {
	read, ok := valueReaders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return read(r)
}
