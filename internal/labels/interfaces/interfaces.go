// Package interfaces はactorlabelコマンドで使用するインターフェースを定義します
package interfaces

import (
	"github.com/shiroemons/go-actorlabel/pkg/uasset"
)

// FileSystem はファイルシステム操作のインターフェース
type FileSystem interface {
	FileExists(filename string) bool
	ReadFile(filename string) ([]byte, error)
	Stat(name string) (FileInfo, error)
}

// FileInfo はファイル情報のインターフェース
type FileInfo interface {
	Name() string
	IsDir() bool
}

// Decoder は.uassetのバイト列からラベルを復号するインターフェース
type Decoder interface {
	Decode(data []byte) (uasset.Label, error)
}

// Walker は対象の.uassetファイルを列挙するインターフェース
type Walker interface {
	FindUAssets(root string) ([]string, error)
}

// Logger はログ出力のインターフェース
type Logger interface {
	Printf(format string, a ...any)
}
