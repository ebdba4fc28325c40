// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/shiroemons/go-rarmark/internal/config"
	"github.com/shiroemons/go-rarmark/internal/fileutil"
	"github.com/shiroemons/go-rarmark/internal/interfaces"
	"github.com/shiroemons/go-rarmark/pkg/crypto"
	"github.com/shiroemons/go-rarmark/pkg/markio"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config *config.Config
	logger interfaces.Logger
	fs     interfaces.FileSystem
	out    io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Logger     interfaces.Logger
	Output     io.Writer
}

// DumpResult は dump の結果
type DumpResult struct {
	Data     []byte
	Count    int64 // Mark からの読み込みバイト数
	Buffered int   // 読み込み後にキューに残った平文のバイト数
}

// Field は decode で読み込んだ1つの値
type Field struct {
	Kind  string
	Value any
	Count int64 // この値を読み込んだ後のカウンタ
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	var logger interfaces.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		logger = config.NewDebugLogger(cfg.DebugMode)
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	return &App{
		config: cfg,
		logger: logger,
		fs:     fs,
		out:    out,
	}
}

// Dump は指定範囲を復号し、ファイルに保存するか16進ダンプを表示します
func (a *App) Dump(ctx context.Context) (*DumpResult, error) {
	r, f, err := a.openReader(ctx)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r.Mark()
	data := make([]byte, 0, a.config.Length)
	for remaining := a.config.Length; remaining > 0; {
		// コンテキストのキャンセルチェック
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		n := min(remaining, a.config.ChunkSize)
		b, err := r.ReadBytes(n)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadSpan, err)
		}
		data = append(data, b...)
		remaining -= n
		a.logger.Printf("%d バイト読み込みました (累計 %d バイト)\n", n, r.Count())
	}

	result := &DumpResult{
		Data:     data,
		Count:    r.Count(),
		Buffered: r.Buffered(),
	}

	if a.config.OutputPath != "" {
		if err := fileutil.SaveToFile(a.fs, a.config.OutputPath, data); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrSaveFile, err)
		}
		a.logger.Successf("%d バイトを %s に保存しました\n", len(data), a.config.OutputPath)
		return result, nil
	}

	fmt.Fprint(a.out, hex.Dump(data))
	return result, nil
}

// Decode はレイアウトに従って値を順に読み込み、表示します
func (a *App) Decode(ctx context.Context) ([]Field, error) {
	kinds, err := ParseLayout(a.config.Layout)
	if err != nil {
		return nil, err
	}

	r, f, err := a.openReader(ctx)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r.Mark()
	fields := make([]Field, 0, len(kinds))
	for _, kind := range kinds {
		// コンテキストのキャンセルチェック
		select {
		case <-ctx.Done():
			return fields, ctx.Err()
		default:
		}

		v, err := readValue(r, kind)
		if err != nil {
			return fields, fmt.Errorf("%w: %s: %w", ErrReadSpan, kind, err)
		}
		field := Field{Kind: kind, Value: v, Count: r.Count()}
		fields = append(fields, field)
		fmt.Fprintf(a.out, "%-4s %v\t(%d)\n", field.Kind, field.Value, field.Count)
	}
	return fields, nil
}

// Derive はパスワードとソルトから鍵と初期チェイン値を導出して表示します
func (a *App) Derive() (crypto.KeyMaterial, error) {
	salt, err := a.config.SaltBytes()
	if err != nil {
		return crypto.KeyMaterial{}, err
	}
	if salt == nil {
		return crypto.KeyMaterial{}, ErrSaltRequired
	}

	km := crypto.DeriveKey(a.config.Password, salt)
	fmt.Fprintf(a.out, "key: %x\niv:  %x\n", km.Key, km.IV)
	return km, nil
}

// openReader はソースを開き、オフセットへ移動してリーダーを作成します
func (a *App) openReader(ctx context.Context) (*markio.Reader, interfaces.File, error) {
	// コンテキストのキャンセルチェック
	select {
	case <-ctx.Done():
		return nil, nil, ctx.Err()
	default:
	}

	f, err := fileutil.OpenSource(a.fs, a.config.SourcePath)
	if err != nil {
		return nil, nil, err
	}

	if _, err := f.Seek(a.config.Offset, io.SeekStart); err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("%w: %d: %w", ErrSeekSource, a.config.Offset, err)
	}

	r, err := markio.NewReader(f, a.config.Password)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	salt, err := a.config.SaltBytes()
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	if salt == nil {
		a.logger.Warnf("ソルトが指定されていないため暗号化なしで読み込みます\n")
		return r, f, nil
	}

	a.logger.Printf("ソルト %x から鍵を導出しています...\n", salt)
	if err := r.SetSalt(salt); err != nil {
		f.Close()
		return nil, nil, err
	}
	return r, f, nil
}
