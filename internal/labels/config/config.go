// Package config はactorlabelコマンドの設定管理を行います
package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
)

const Version = "0.1.0"

// Config はアプリケーションの設定を保持します
type Config struct {
	Paths       []string // 対象のファイルまたはディレクトリ
	ShowPath    bool
	ShowType    bool
	Workers     int
	DebugMode   bool
	ShowVersion bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します
func ParseFlags() *Config {
	config := &Config{}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] <path> [<path>...]\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  <path>")
		fmt.Fprintln(flag.CommandLine.Output(), "    \t.uasset file or directory to scan recursively")
		fmt.Fprintln(flag.CommandLine.Output(), "  --show-path")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow the absolute file path in output")
		fmt.Fprintln(flag.CommandLine.Output(), "  --show-type")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow the label type (e.g., [ActorLabel]) in output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -w int")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tnumber of worker threads for batch decoding (default: number of CPUs)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// 出力フォーマット
	flag.BoolVar(&config.ShowPath, "show-path", false, "show the absolute file path in output")
	flag.BoolVar(&config.ShowType, "show-type", false, "show the label type (e.g., [ActorLabel]) in output")

	// ワーカー数
	flag.IntVar(&config.Workers, "w", runtime.NumCPU(), "number of worker threads for batch decoding")

	// デバッグモード
	flag.BoolVar(&config.DebugMode, "debug", false, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", false, "enable debug output (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	config.Paths = flag.Args()

	return config
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("actorlabel version %s\n", Version)
		os.Exit(0)
	}
}

// DebugLogger はデバッグ出力を管理します。
// 標準出力はラベルの出力専用のため、デバッグ出力は標準エラーに書きます。
type DebugLogger struct {
	enabled bool
	out     io.Writer
}

// NewDebugLogger は新しいDebugLoggerを作成します
func NewDebugLogger(enabled bool) *DebugLogger {
	return &DebugLogger{enabled: enabled, out: os.Stderr}
}

// NewDebugLoggerWithWriter は出力先を指定してDebugLoggerを作成します
func NewDebugLoggerWithWriter(enabled bool, out io.Writer) *DebugLogger {
	return &DebugLogger{enabled: enabled, out: out}
}

// Printf はデバッグモードが有効な場合のみメッセージを出力します
func (d *DebugLogger) Printf(format string, a ...any) {
	if d.enabled {
		fmt.Fprintf(d.out, format, a...)
	}
}
