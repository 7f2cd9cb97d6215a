package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shiroemons/go-actorlabel/pkg/uasset"
)

var (
	topCount  = flag.Int("n", 40, "number of strings to show")
	minLen    = flag.Int("m", 4, "minimum string length")
	maxLen    = flag.Int("M", 50, "maximum string length (longer strings are usually noise)")
	debugFlag = flag.Bool("d", false, "debug mode (show more info)")
)

// uassetscan は復号器がラベルを見つけられないアセットを調査するための
// 補助ツールです。ファイル全体から名前らしき文字列を列挙します。
func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("使用方法: uassetscan [オプション] <uassetファイル>")
		fmt.Println("オプション:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		os.Exit(1)
	}

	// デバッグモードの場合、ファイル情報を表示
	if *debugFlag {
		fmt.Printf("ファイル: %s\n", filename)
		fmt.Printf("サイズ: %d バイト\n", len(data))

		// ファイルの先頭数バイトを表示
		n := 16
		if len(data) < n {
			n = len(data)
		}
		fmt.Printf("ファイルヘッダ (hex): ")
		for i := 0; i < n; i++ {
			fmt.Printf("%02x ", data[i])
		}
		fmt.Println()
		fmt.Println()
	}

	fmt.Printf("--- スキャン対象: %s ---\n", filepath.Base(filename))

	found := uasset.ScanStrings(data, *minLen)
	fmt.Printf("%d 件の文字列を検出しました\n", len(found))
	fmt.Printf("--- 名前の候補（短い順、上位%d件） ---\n", *topCount)

	shown := 0
	for _, s := range found {
		if len(s) > *maxLen {
			continue
		}
		fmt.Println(s)
		shown++
		if shown >= *topCount {
			break
		}
	}
}
