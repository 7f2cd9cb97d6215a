package uasset

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// wideEncoding はワイド文字列のエンコーディング（UTF-16LE、BOMなし）
var wideEncoding = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// decodeWide はUTF-16LEの文字列値を検証つきで復号します。
// 末尾のNUL終端は除去します。復号不能なコード単位（置換文字になる
// もの）や制御文字を含む場合はラベルではないと判断して拒否します。
func decodeWide(b []byte) (string, bool) {
	if len(b) == 0 || len(b)%2 != 0 {
		return "", false
	}

	decoded, err := wideEncoding.NewDecoder().Bytes(b)
	if err != nil {
		return "", false
	}

	s := strings.TrimSuffix(string(decoded), "\x00")
	if s == "" {
		return "", false
	}

	for _, r := range s {
		if r == utf8.RuneError || r < 0x20 {
			return "", false
		}
	}
	return s, true
}
