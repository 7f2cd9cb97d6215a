// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shiroemons/go-actorlabel/internal/labels/config"
	"github.com/shiroemons/go-actorlabel/internal/labels/fileutil"
	"github.com/shiroemons/go-actorlabel/internal/labels/interfaces"
	"github.com/shiroemons/go-actorlabel/internal/labels/models"
	"github.com/shiroemons/go-actorlabel/pkg/uasset"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config  *config.Config
	logger  *config.DebugLogger
	fs      interfaces.FileSystem
	decoder interfaces.Decoder
	walker  interfaces.Walker
	out     io.Writer
	errOut  io.Writer
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Decoder    interfaces.Decoder
	Walker     interfaces.Walker
	Out        io.Writer
	ErrOut     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	// デフォルトの復号器を設定
	decoder := opts.Decoder
	if decoder == nil {
		decoder = labelDecoder{}
	}

	// デフォルトのウォーカーを設定
	walker := opts.Walker
	if walker == nil {
		walker = fileutil.NewUAssetWalker()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	errOut := opts.ErrOut
	if errOut == nil {
		errOut = os.Stderr
	}

	return &App{
		config:  cfg,
		logger:  config.NewDebugLoggerWithWriter(cfg.DebugMode, errOut),
		fs:      fs,
		decoder: decoder,
		walker:  walker,
		out:     out,
		errOut:  errOut,
	}
}

// labelDecoder はpkg/uassetをinterfaces.Decoderに適合させます
type labelDecoder struct{}

// Decode は.uassetのバイト列からラベルを復号します
func (labelDecoder) Decode(data []byte) (uasset.Label, error) {
	return uasset.Decode(data)
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	if len(a.config.Paths) == 0 {
		return ErrNoPaths
	}

	targets := a.collectTargets()
	if len(targets) == 0 {
		return ErrNoTargets
	}

	start := time.Now()

	results, err := a.decodeAll(ctx, targets)
	if err != nil {
		return err
	}

	summary := a.report(results)
	summary.Elapsed = time.Since(start)

	a.logger.Printf("%d 個のファイルを処理しました (ラベル検出: %d 件、所要時間: %v、平均: %.3f ms/ファイル)\n",
		summary.Files, summary.Decoded, summary.Elapsed,
		float64(summary.Elapsed.Microseconds())/1000.0/float64(summary.Files))

	return nil
}

// collectTargets は指定されたパスを復号対象のファイル一覧に解決します。
// 存在しないパスは警告を出して読み飛ばし、残りの処理を続行します。
func (a *App) collectTargets() []string {
	var targets []string

	for _, path := range a.config.Paths {
		info, err := a.fs.Stat(path)
		if err != nil {
			fmt.Fprintf(a.errOut, "エラー: パスが見つかりません: %s\n", path)
			continue
		}

		if !info.IsDir() {
			// 単一ファイル指定は拡張子に関係なく復号を試みる
			targets = append(targets, path)
			continue
		}

		files, err := a.walker.FindUAssets(path)
		if err != nil {
			fmt.Fprintf(a.errOut, "エラー: %v\n", err)
			continue
		}
		if len(files) == 0 {
			a.logger.Printf("%s に.uassetファイルがありません\n", path)
		}
		targets = append(targets, files...)
	}

	return targets
}

// report は結果をパスの元の順序で出力し、統計を返します。
// ラベルを持たないファイルは標準出力には何も出しません。
func (a *App) report(results []models.Result) models.Summary {
	summary := models.Summary{Files: len(results)}

	for _, r := range results {
		if r.Err != nil {
			if errors.Is(r.Err, ErrReadFile) {
				fmt.Fprintf(a.errOut, "エラー: %v\n", r.Err)
			} else {
				a.logger.Printf("ラベルなし: %s (%v)\n", r.Path, r.Err)
			}
			continue
		}

		summary.Decoded++

		parts := make([]string, 0, 3)
		if a.config.ShowPath {
			abs, err := filepath.Abs(r.Path)
			if err != nil {
				abs = r.Path
			}
			parts = append(parts, abs)
		}
		if a.config.ShowType {
			parts = append(parts, "["+r.Label.Kind.String()+"]")
		}
		parts = append(parts, r.Label.Text)

		fmt.Fprintln(a.out, strings.Join(parts, " | "))
	}

	return summary
}
