// Package mocks はテスト用のモック実装を提供します
package mocks

import (
	"bytes"
	"errors"
	"strings"

	"github.com/shiroemons/go-rarmark/internal/interfaces"
)

// MockFileSystem はテスト用のファイルシステムモック
type MockFileSystem struct {
	Files     map[string][]byte
	Dirs      map[string]bool
	Error     error // すべての操作が返すエラー
	OpenError error // Open だけが返すエラー
	Opened    []*MockFile
}

// NewMockFileSystem は新しいMockFileSystemを作成します
func NewMockFileSystem() *MockFileSystem {
	return &MockFileSystem{
		Files: make(map[string][]byte),
		Dirs:  make(map[string]bool),
	}
}

// FileExists はファイルが存在するか確認します
func (fs *MockFileSystem) FileExists(filename string) bool {
	_, exists := fs.Files[filename]
	return exists
}

// Open はファイルを開きます
func (fs *MockFileSystem) Open(filename string) (interfaces.File, error) {
	if fs.Error != nil {
		return nil, fs.Error
	}
	if fs.OpenError != nil {
		return nil, fs.OpenError
	}
	data, exists := fs.Files[filename]
	if !exists {
		return nil, errors.New("file not found")
	}
	f := &MockFile{Reader: bytes.NewReader(data)}
	fs.Opened = append(fs.Opened, f)
	return f, nil
}

// WriteFile はファイルを書き込みます
func (fs *MockFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	if fs.Error != nil {
		return fs.Error
	}
	fs.Files[filename] = append([]byte(nil), data...)
	return nil
}

// MkdirAll はディレクトリを作成します
func (fs *MockFileSystem) MkdirAll(path string, perm uint32) error {
	if fs.Error != nil {
		return fs.Error
	}
	fs.Dirs[strings.TrimSuffix(path, "/")] = true
	return nil
}

// MockFile はメモリ上のファイル
type MockFile struct {
	*bytes.Reader
	Closed bool
}

// Close はファイルを閉じます
func (f *MockFile) Close() error {
	f.Closed = true
	return nil
}
