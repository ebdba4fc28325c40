// Package config は rarmark コマンドの設定管理を行います
package config

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shiroemons/go-rarmark/pkg/crypto"
)

const Version = "0.1.0"

// 設定キー (フラグ名と同じ)
const (
	KeyConfig   = "config"
	KeyPassword = "password"
	KeySalt     = "salt"
	KeyOffset   = "offset"
	KeyLength   = "length"
	KeyChunk    = "chunk"
	KeyOutput   = "output"
	KeyLayout   = "layout"
	KeyDebug    = "debug"
)

// EnvPrefix は環境変数のプレフィックス (例: RARMARK_PASSWORD)
const EnvPrefix = "RARMARK"

// DefaultChunkSize は dump で1回に要求するバイト数の既定値
const DefaultChunkSize = 4096

// Config はアプリケーションの設定を保持します
type Config struct {
	SourcePath string
	Password   string
	Salt       string // 16桁の16進数。空なら暗号化なし
	Offset     int64
	Length     int
	ChunkSize  int
	OutputPath string
	Layout     string
	DebugMode  bool
}

// RegisterPersistentFlags は全サブコマンド共通のフラグを登録します
func RegisterPersistentFlags(fs *pflag.FlagSet) {
	fs.String(KeyConfig, "", "path to a config file (yaml, toml or json)")
	fs.StringP(KeyPassword, "p", "", "archive password (or "+EnvPrefix+"_PASSWORD)")
	fs.StringP(KeySalt, "s", "", "8-byte salt as 16 hex digits; empty reads the source unencrypted")
	fs.BoolP(KeyDebug, "d", false, "enable debug output")
}

// RegisterReadFlags は読み込み範囲を指定するフラグを登録します
func RegisterReadFlags(fs *pflag.FlagSet) {
	fs.Int64(KeyOffset, 0, "absolute offset of the encrypted span in the source")
	fs.Int(KeyLength, 0, "number of plaintext bytes to read")
	fs.Int(KeyChunk, DefaultChunkSize, "bytes requested per read")
	fs.StringP(KeyOutput, "o", "", "write the decrypted bytes to this file instead of a hex dump")
	fs.String(KeyLayout, "", "comma separated value kinds (bool,i8,u8,i16,u16,i32,u32,i64,u64,f32,f64,dec)")
}

// NewViper はフラグ・環境変数・設定ファイルを束ねた viper を作成します
func NewViper(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyChunk, DefaultChunkSize)

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return nil, fmt.Errorf("フラグのバインドに失敗しました: %w", err)
		}
	}

	if path := v.GetString(KeyConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrReadConfig, path, err)
		}
	}
	return v, nil
}

// Load は viper から設定を読み込み、検証します
func Load(v *viper.Viper, sourcePath string) (*Config, error) {
	cfg := &Config{
		SourcePath: sourcePath,
		Password:   v.GetString(KeyPassword),
		Salt:       v.GetString(KeySalt),
		Offset:     v.GetInt64(KeyOffset),
		Length:     v.GetInt(KeyLength),
		ChunkSize:  v.GetInt(KeyChunk),
		OutputPath: v.GetString(KeyOutput),
		Layout:     v.GetString(KeyLayout),
		DebugMode:  v.GetBool(KeyDebug),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	if c.Password == "" {
		return ErrPasswordRequired
	}
	if _, err := c.SaltBytes(); err != nil {
		return err
	}
	if c.Offset < 0 {
		return fmt.Errorf("%w: offset=%d", ErrInvalidRange, c.Offset)
	}
	if c.Length < 0 {
		return fmt.Errorf("%w: length=%d", ErrInvalidRange, c.Length)
	}
	if c.ChunkSize <= 0 {
		return fmt.Errorf("%w: chunk=%d", ErrInvalidRange, c.ChunkSize)
	}
	return nil
}

// SaltBytes は16進数のソルトをバイト列に変換します。未指定なら nil を返します。
func (c *Config) SaltBytes() ([]byte, error) {
	if c.Salt == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(c.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSalt, err)
	}
	if len(b) != crypto.SaltSize {
		return nil, fmt.Errorf("%w: %d バイト", ErrInvalidSalt, len(b))
	}
	return b, nil
}

// DebugLogger はデバッグ出力を管理します
type DebugLogger struct {
	enabled bool
	out     io.Writer
	errOut  io.Writer
	warn    *color.Color
	success *color.Color
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{
		enabled: enabled,
		out:     os.Stdout,
		errOut:  os.Stderr,
		warn:    color.New(color.FgYellow),
		success: color.New(color.FgGreen),
	}
}

// SetOutput は出力先を変更します
func (d *DebugLogger) SetOutput(out, errOut io.Writer) {
	d.out = out
	d.errOut = errOut
}

// Printf はデバッグモードが有効な場合のみメッセージを表示します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Fprintf(d.out, format, a...)
	}
}

// Warnf は警告を標準エラーに黄色で表示します
func (d *DebugLogger) Warnf(format string, a ...any) {
	d.warn.Fprintf(d.errOut, format, a...)
}

// Successf は完了メッセージを緑色で表示します
func (d *DebugLogger) Successf(format string, a ...any) {
	d.success.Fprintf(d.out, format, a...)
}
