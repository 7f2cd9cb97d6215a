package uasset

import (
	"fmt"
	"regexp"
	"sort"
)

// ScanStrings はバッファ全体からUnreal Engineの名前らしき文字列を
// ヒューリスティックに列挙します。英数字とアンダースコアの連続を
// ASCIIとUTF-16LEの両方の形で探し、重複を除いた結果を返します。
//
// 結果は短いものから（アクター名は短いことが多い）、同じ長さは
// 辞書順に並びます。復号器がラベルを見つけられないアセットの
// 調査用であり、誤検出を含む可能性があります。
func ScanStrings(data []byte, minLen int) []string {
	if minLen < 1 {
		minLen = 1
	}

	asciiRe := regexp.MustCompile(fmt.Sprintf(`[A-Za-z0-9_]{%d,}`, minLen))
	wideRe := regexp.MustCompile(fmt.Sprintf(`(?:[A-Za-z0-9_]\x00){%d,}`, minLen))

	seen := make(map[string]bool)
	var results []string

	for _, m := range asciiRe.FindAll(data, -1) {
		s := string(m)
		if !seen[s] {
			seen[s] = true
			results = append(results, s)
		}
	}

	for _, m := range wideRe.FindAll(data, -1) {
		s, ok := decodeWide(m)
		if !ok {
			continue
		}
		if !seen[s] {
			seen[s] = true
			results = append(results, s)
		}
	}

	sort.Slice(results, func(i, j int) bool {
		if len(results[i]) != len(results[j]) {
			return len(results[i]) < len(results[j])
		}
		return results[i] < results[j]
	})

	return results
}
