// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// UAssetExt は対象ファイルの拡張子
const UAssetExt = ".uasset"

// IsUAssetFile はファイル名が.uassetファイルかどうかを判定します。
// 拡張子の大文字小文字は区別しません。
func IsUAssetFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), UAssetExt)
}

// UAssetWalker は.uassetファイルの再帰検索を行います
type UAssetWalker struct{}

// NewUAssetWalker は新しいUAssetWalkerを作成します
func NewUAssetWalker() *UAssetWalker {
	return &UAssetWalker{}
}

// FindUAssets はルート以下を再帰的に走査して.uassetファイルのパスを
// 返します。結果はWalkDirの走査順（辞書順）で安定しています。
func (w *UAssetWalker) FindUAssets(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if IsUAssetFile(d.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrWalkDirectory, root, err)
	}

	return files, nil
}
