package fileutil

import (
	"os"

	"github.com/shiroemons/go-actorlabel/internal/labels/interfaces"
)

// OSFileSystem は実際のOSファイルシステムを使用する実装
type OSFileSystem struct{}

// NewOSFileSystem は新しいOSFileSystemを作成します
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// FileExists はファイルが存在するか確認します
func (fs *OSFileSystem) FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}

// ReadFile はファイルを読み込みます
func (fs *OSFileSystem) ReadFile(filename string) ([]byte, error) {
	return os.ReadFile(filename)
}

// Stat はファイル情報を取得します
func (fs *OSFileSystem) Stat(name string) (interfaces.FileInfo, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	return &osFileInfo{info}, nil
}

// osFileInfo はos.FileInfoのラッパー
type osFileInfo struct {
	os.FileInfo
}

// Name はファイル名を返します
func (fi *osFileInfo) Name() string {
	return fi.FileInfo.Name()
}

// IsDir はディレクトリかどうかを返します
func (fi *osFileInfo) IsDir() bool {
	return fi.FileInfo.IsDir()
}
