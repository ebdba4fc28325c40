package fileutil

import (
	"os"

	"github.com/absfs/absfs"

	"github.com/shiroemons/go-rarmark/internal/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

// Open はファイルを読み込み用に開きます
func (fs *OSFileSystem) Open(filename string) (interfaces.File, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// WriteFile はファイルを書き込みます
func (fs *OSFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	return os.WriteFile(filename, data, os.FileMode(perm))
}

// MkdirAll はディレクトリを作成します
func (fs *OSFileSystem) MkdirAll(path string, perm uint32) error {
	return os.MkdirAll(path, os.FileMode(perm))
}

// AbsFileSystem は absfs.FileSystem を interfaces.FileSystem として使うためのアダプタ
type AbsFileSystem struct {
	base absfs.FileSystem
}

// NewAbsFileSystem は新しいAbsFileSystemを作成します
func NewAbsFileSystem(base absfs.FileSystem) *AbsFileSystem {
	return &AbsFileSystem{base: base}
}

// FileExists はファイルが存在するか確認します
func (fs *AbsFileSystem) FileExists(filename string) bool {
	info, err := fs.base.Stat(filename)
	return err == nil && !info.IsDir()
}

// Open はファイルを読み込み用に開きます
func (fs *AbsFileSystem) Open(filename string) (interfaces.File, error) {
	f, err := fs.base.Open(filename)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// WriteFile はファイルを書き込みます
func (fs *AbsFileSystem) WriteFile(filename string, data []byte, perm uint32) error {
	f, err := fs.base.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, os.FileMode(perm))
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// MkdirAll はディレクトリを作成します
func (fs *AbsFileSystem) MkdirAll(path string, perm uint32) error {
	return fs.base.MkdirAll(path, os.FileMode(perm))
}
