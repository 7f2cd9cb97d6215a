package uasset

import "bytes"

// 探索対象のトークン。ネームマップ上の長さプレフィックスには
// NUL終端の1バイトが含まれるため、比較は終端を除いて行う。
var (
	noneBytes        = []byte("None")
	actorLabelBytes  = []byte("ActorLabel")
	folderLabelBytes = []byte("FolderLabel")
	labelBytes       = []byte("Label")
	strPropertyBytes = []byte("StrProperty")
)

// nameIndices はネームマップから解決した既知トークンの位置インデックスを
// 保持します。未解決のトークンは-1です。
type nameIndices struct {
	actor  int // ActorLabel
	folder int // FolderLabel
	label  int // Label（汎用）
	str    int // StrProperty
}

// resolveNames はネームマップを先頭から走査し、既知トークンの位置
// インデックスを解決します。インデックスはエントリの内容に関係なく、
// 解析に成功したエントリごとに加算される0始まりの通し番号です。
//
// トークンが欠けていても失敗にはしません。フォルダのみのアセットに
// ActorLabelエントリが無いのは想定内であり、抽出の可否は呼び出し側が
// 判断します。
func (d *decoder) resolveNames(count, offset int) nameIndices {
	idx := nameIndices{actor: -1, folder: -1, label: -1, str: -1}
	size := len(d.data)
	pos := offset

	for i := 0; i < count && pos+4 <= size; i++ {
		l := int(d.readInt32(pos))
		pos += 4

		switch {
		case l > 0:
			end := pos + l
			if end > size {
				return idx
			}
			switch l {
			case len(actorLabelBytes) + 1:
				if idx.actor < 0 && bytes.Equal(d.data[pos:pos+len(actorLabelBytes)], actorLabelBytes) {
					idx.actor = i
				}
			case len(strPropertyBytes) + 1:
				// StrPropertyとFolderLabelは同じ長さ
				head := d.data[pos : pos+len(strPropertyBytes)]
				if idx.str < 0 && bytes.Equal(head, strPropertyBytes) {
					idx.str = i
				} else if idx.folder < 0 && bytes.Equal(head, folderLabelBytes) {
					idx.folder = i
				}
			case len(labelBytes) + 1:
				if idx.label < 0 && bytes.Equal(d.data[pos:pos+len(labelBytes)], labelBytes) {
					idx.label = i
				}
			}
			pos = end

			// ActorLabelとStrPropertyが揃えばこれ以上の走査は不要
			if idx.actor >= 0 && idx.str >= 0 {
				return idx
			}

		case l < 0:
			// ワイド文字列 (UTF-16LE): -l コード単位ぶんスキップ
			pos += (-l) << 1
		}

		// エントリ末尾のハッシュ（4バイト）をスキップする。旧形式には
		// ハッシュが無いため、次のint32が0または長さプレフィックスとして
		// あり得ない値の場合のみハッシュとみなす。
		if pos+4 <= size {
			nv := int(d.readInt32(pos))
			if nv == 0 || nv < -hashDiscriminant || nv > hashDiscriminant {
				pos += 4
			}
		}
	}

	return idx
}

// hashDiscriminant はハッシュと長さプレフィックスを区別する閾値。
// この範囲内の値は次エントリの長さプレフィックスとして扱う。
const hashDiscriminant = 512
