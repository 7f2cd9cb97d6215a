package app

import "errors"

var (
	// ErrNoPaths は対象パスが1つも指定されなかった場合のエラー
	ErrNoPaths = errors.New("対象のファイルまたはディレクトリを指定してください")

	// ErrNoTargets は処理できる対象が1つも無かった場合のエラー
	ErrNoTargets = errors.New("処理対象の.uassetファイルがありません")

	// ErrReadFile はファイルの読み込みに失敗した場合のエラー
	ErrReadFile = errors.New("ファイルの読み込みに失敗しました")
)
