// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"path/filepath"

	"github.com/shiroemons/go-rarmark/internal/interfaces"
)

// SaveToFile は出力先ディレクトリを作成してからファイルに保存します
func SaveToFile(fs interfaces.FileSystem, outputPath string, data []byte) error {
	if dir := filepath.Dir(outputPath); dir != "." {
		if err := fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
		}
	}

	if err := fs.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteContent, err)
	}
	return nil
}

// OpenSource はソースファイルを開きます。ファイルが存在しない場合は ErrSourceNotFound を返します。
func OpenSource(fs interfaces.FileSystem, path string) (interfaces.File, error) {
	if !fs.FileExists(path) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrOpenSource, path, err)
	}
	return f, nil
}
