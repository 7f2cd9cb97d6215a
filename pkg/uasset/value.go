package uasset

// extractString はタグ直後の探索窓から長さ付き文字列の値を読み取ります。
//
// タグと値の間に入るメタデータ（サイズや配列インデックス等）の形は
// エンジンのバージョンごとに異なるため、固定オフセットではなく窓内を
// 1バイトずつ進めながら妥当な長さプレフィックスを探します。
// 正の長さは1バイト文字、負の長さはUTF-16LEのワイド文字を示します。
//
// 宣言された長さがバッファ末尾を超える候補があればErrTruncatedString、
// 範囲内だがテキストとして復号できない候補しか無ければ
// ErrInvalidEncodingを返します。
func (d *decoder) extractString(start int) (string, error) {
	size := len(d.data)
	end := start + valueWindowSize
	if end > size {
		end = size
	}

	var sawTruncated, sawInvalid bool

	for i := start; i < end-4; i++ {
		l := int(d.readInt32(i))

		switch {
		case 0 < l && l < maxLabelLength:
			payloadEnd := i + 4 + l
			if payloadEnd > size {
				sawTruncated = true
				continue
			}
			if payloadEnd > end {
				continue
			}
			if text, ok := decodeNarrow(d.data[i+4 : payloadEnd]); ok {
				return text, nil
			}
			sawInvalid = true

		case -maxLabelLength < l && l < 0:
			payloadEnd := i + 4 + (-l)*2
			if payloadEnd > size {
				sawTruncated = true
				continue
			}
			if payloadEnd > end {
				continue
			}
			if text, ok := decodeWide(d.data[i+4 : payloadEnd]); ok {
				return text, nil
			}
			sawInvalid = true
		}
	}

	switch {
	case sawTruncated:
		return "", ErrTruncatedString
	case sawInvalid:
		return "", ErrInvalidEncoding
	default:
		// タグは一致したが後続に文字列値が無い。偶然の一致として扱う。
		return "", ErrTagNotFound
	}
}

// decodeNarrow は1バイト文字の文字列値を検証つきで復号します。
// 宣言された長さにNUL終端が含まれる場合は除去します。
// 印字可能なASCIIのみをラベルとして受理します。
func decodeNarrow(b []byte) (string, bool) {
	if len(b) > 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	if len(b) == 0 {
		return "", false
	}
	for _, c := range b {
		if c <= 31 || c >= 127 {
			return "", false
		}
	}
	return string(b), true
}
