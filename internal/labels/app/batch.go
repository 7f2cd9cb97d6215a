package app

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/shiroemons/go-actorlabel/internal/labels/models"
)

// decodeAll は対象ファイルをワーカープールで並列に復号します。
//
// ファイルごとの復号は純粋な計算でファイル間に共有状態が無いため、
// 並列化に調停は不要です。結果は対象と同じインデックスのスロットに
// 書き込むため、出力はパスの元の順序で再現可能になります。
// 復号の失敗はそのファイルのResultに記録するだけで、バッチ全体を
// 中断するのはコンテキストのキャンセルのみです。
func (a *App) decodeAll(ctx context.Context, targets []string) ([]models.Result, error) {
	results := make([]models.Result, len(targets))

	workers := a.config.Workers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range targets {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			data, err := a.fs.ReadFile(path)
			if err != nil {
				results[i] = models.Result{
					Path: path,
					Err:  fmt.Errorf("%w: %s: %w", ErrReadFile, path, err),
				}
				return nil
			}

			label, err := a.decoder.Decode(data)
			results[i] = models.Result{Path: path, Label: label, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
