package fileutil

import "errors"

var (
	// ErrWalkDirectory はディレクトリの走査に失敗した場合のエラー
	ErrWalkDirectory = errors.New("ディレクトリの走査に失敗しました")
)
