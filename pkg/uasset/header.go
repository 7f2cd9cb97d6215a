package uasset

import (
	"bytes"
	"encoding/binary"
)

// findNameMap はパッケージヘッダを走査してネームマップの位置を特定します。
//
// ヘッダのレイアウト（サマリブロックのフィールド構成）はエンジンの
// リリースごとに変化するため、バージョン別のオフセットテーブルには
// 依存しません。代わりに、長さ付き文字列として格納されるパッケージの
// フォルダ名（'/' 始まり、未設定なら "None"）を探し、その直後に続く
// パッケージフラグ・エントリ数・ネームマップオフセットの組が妥当な
// 値であることを確認します。走査は先頭1KBに限定されます。
//
// 戻り値はネームマップのエントリ数と先頭オフセットです。
func (d *decoder) findNameMap() (count, offset int, err error) {
	size := len(d.data)
	if size < minAssetSize || binary.LittleEndian.Uint32(d.data) != uassetMagic {
		return 0, 0, ErrHeaderNotFound
	}

	// 高速パス: フォルダ名は '/' で始まることが多いため、
	// 最初に現れる '/' の4バイト前を走査の起点にする
	start := minAssetSize
	searchEnd := size
	if searchEnd > headerScanLimit {
		searchEnd = headerScanLimit
	}
	if slash := bytes.IndexByte(d.data[minAssetSize:searchEnd], '/'); slash >= 0 {
		slashOff := minAssetSize + slash
		if slashOff >= minAssetSize+4 {
			if l := int(d.readInt32(slashOff - 4)); 0 < l && l < maxNameLength {
				start = slashOff - 4
			}
		}
	}

	headerLen := size
	if headerLen > headerScanLimit {
		headerLen = headerScanLimit
	}
	limit := headerLen - minAssetSize

	for off := start; off < limit; off++ {
		l := int(d.readInt32(off))
		if l <= 0 || l >= maxNameLength {
			continue
		}
		strEnd := off + 4 + l
		if strEnd > limit {
			break
		}

		c := d.data[off+4]
		if c != '/' && !(c == 'N' && bytes.Equal(d.data[off+4:off+8], noneBytes)) {
			continue
		}

		// 文字列の直後: パッケージフラグ(4) + エントリ数(4) + オフセット(4)
		base := strEnd
		if base+12 > headerLen {
			continue
		}
		nc := int(d.readInt32(base + 4))
		no := int(d.readInt32(base + 8))
		if 0 < nc && nc < maxNameCount && 0 < no && no < size {
			return nc, no, nil
		}
	}

	return 0, 0, ErrHeaderNotFound
}
