package uasset

import "errors"

var (
	// ErrHeaderNotFound はネームマップのヘッダを特定できなかった場合のエラー
	ErrHeaderNotFound = errors.New("ネームマップのヘッダが見つかりません")

	// ErrTagNotFound はラベルのプロパティタグが見つからなかった場合のエラー
	ErrTagNotFound = errors.New("ラベルのプロパティタグが見つかりません")

	// ErrTruncatedString は文字列データがバッファ末尾で途切れている場合のエラー
	ErrTruncatedString = errors.New("文字列データがバッファ末尾で途切れています")

	// ErrInvalidEncoding は文字列を有効なテキストとして復号できなかった場合のエラー
	ErrInvalidEncoding = errors.New("文字列のエンコーディングが不正です")
)
