// Package models はactorlabelコマンドで使用するデータモデルを定義します
package models

import (
	"time"

	"github.com/shiroemons/go-actorlabel/pkg/uasset"
)

// Result は1ファイルの復号結果を表します
type Result struct {
	Path  string       // 対象ファイルのパス
	Label uasset.Label // 復号されたラベル（Errがnilの場合のみ有効）
	Err   error        // 読み込みまたは復号の失敗内容（ラベルなしを含む）
}

// Summary はバッチ処理の統計情報を表します
type Summary struct {
	Files   int           // 処理したファイル数
	Decoded int           // ラベルを抽出できたファイル数
	Elapsed time.Duration // 処理全体の所要時間
}
