// Package interfaces は rarmark コマンドで使用するインターフェースを定義します
package interfaces

import "io"

// File は読み込みとシークができるファイル
type File interface {
	io.Reader
	io.Seeker
	io.Closer
}

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	Open(filename string) (File, error)
	WriteFile(filename string, data []byte, perm uint32) error
	MkdirAll(path string, perm uint32) error
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
	Warnf(format string, a ...any)
	Successf(format string, a ...any)
}
