// Package uasset はUnreal EngineのOne File Per Actor (OFPA) 形式の
// .uassetファイルからアクターラベルを抽出するためのパッケージです。
//
// OFPA形式のファイル名はコンテンツハッシュであり人間には判読できないため、
// エディタが付与したラベル（ActorLabel / FolderLabel）をファイル本体の
// バイト列から復元します。エンジン本体を起動せずにバージョン管理ツール等
// から差分を確認する用途を想定しています。
//
// 復号は4段階のヒューリスティックで行います:
//  1. ヘッダスキャン - バージョン差異に依存せずネームマップの位置を特定
//  2. ネームマップ走査 - ActorLabel/FolderLabel/StrProperty のインデックスを解決
//  3. タグ検索 - 16バイトのプロパティタグパターンを検索
//  4. 値抽出 - タグ直後の長さ付き文字列を復号
//
// 基本的な使い方:
//
//	data, err := os.ReadFile("KCBX0GWLTFQT9RJ8M1LY8.uasset")
//	if err != nil {
//	    // ...
//	}
//	label, err := uasset.Decode(data)
//	if err != nil {
//	    // ラベルを持たないアセットは通常の結果（ErrTagNotFound等）
//	}
//	fmt.Printf("[%s] %s\n", label.Kind, label.Text)
package uasset

import "encoding/binary"

// ヘッダ解析に使用する定数
const (
	// uassetMagic は.uassetファイルのマジックナンバー (C1 83 2A 9E)
	uassetMagic = 0x9E2A83C1

	// headerScanLimit はヘッダスキャンの上限バイト数
	headerScanLimit = 1024

	// maxNameLength はネームマップエントリの文字列長の上限
	maxNameLength = 256

	// maxNameCount はネームマップのエントリ数の上限
	maxNameCount = 100000

	// maxLabelLength はラベル文字列値の長さの上限
	maxLabelLength = 128

	// tagSize はプロパティタグパターンのバイト数
	tagSize = 16

	// valueWindowSize はタグ直後に値を探索する範囲のバイト数
	valueWindowSize = 150

	// minAssetSize は判定に必要な最小のファイルサイズ
	minAssetSize = 20
)

// LabelKind は抽出されたラベルの種別を表します
type LabelKind int

const (
	// KindActorLabel はアクターに付与されたラベル
	KindActorLabel LabelKind = iota

	// KindFolderLabel はワールドアウトライナ上のフォルダのラベル
	KindFolderLabel

	// KindLabel は一部のバージョンで使用される汎用のLabelプロパティ
	KindLabel
)

// String はラベル種別のプロパティ名を返します
func (k LabelKind) String() string {
	switch k {
	case KindActorLabel:
		return "ActorLabel"
	case KindFolderLabel:
		return "FolderLabel"
	case KindLabel:
		return "Label"
	default:
		return "Unknown"
	}
}

// Label は復号されたラベルを表します
type Label struct {
	Kind LabelKind
	Text string
}

// Decode は.uassetファイルのバイト列からラベルを抽出します。
// 入力のバイト列は変更されず、呼び出し間で状態は共有されません。
// ラベルを持たないアセット（アクター以外のアセット等）では
// ErrTagNotFoundを返しますが、これは異常ではなく通常の結果です。
func Decode(data []byte) (Label, error) {
	d := &decoder{data: data}
	return d.decode()
}

// decoder は1ファイル分の復号処理を保持します
type decoder struct {
	data []byte
}

// decode はヘッダスキャンから値抽出までを順に実行します。
// 各段階は次の段階の入力を生成するか、失敗してそこで終了します。
func (d *decoder) decode() (Label, error) {
	count, offset, err := d.findNameMap()
	if err != nil {
		return Label{}, err
	}

	idx := d.resolveNames(count, offset)

	tagOff, kind, err := d.findLabelTag(idx)
	if err != nil {
		return Label{}, err
	}

	text, err := d.extractString(tagOff + tagSize)
	if err != nil {
		return Label{}, err
	}

	return Label{Kind: kind, Text: text}, nil
}

// readInt32 は指定オフセットからリトルエンディアンのint32を読み取ります
func (d *decoder) readInt32(off int) int32 {
	return int32(binary.LittleEndian.Uint32(d.data[off:]))
}
