package mocks

import (
	"sync"

	"github.com/shiroemons/go-actorlabel/pkg/uasset"
)

// MockDecoder はテスト用の復号器モック。
// バッファの内容（文字列化したもの）をキーにして結果を返します。
// 並列バッチから呼ばれるため呼び出し回数はミューテックスで保護します。
type MockDecoder struct {
	Labels map[string]uasset.Label
	Errors map[string]error

	mu    sync.Mutex
	calls int
}

// NewMockDecoder は新しいMockDecoderを作成します
func NewMockDecoder() *MockDecoder {
	return &MockDecoder{
		Labels: make(map[string]uasset.Label),
		Errors: make(map[string]error),
	}
}

// Decode は登録された結果を返します。未登録の内容にはErrTagNotFoundを返します
func (d *MockDecoder) Decode(data []byte) (uasset.Label, error) {
	d.mu.Lock()
	d.calls++
	d.mu.Unlock()

	key := string(data)
	if err, ok := d.Errors[key]; ok {
		return uasset.Label{}, err
	}
	if label, ok := d.Labels[key]; ok {
		return label, nil
	}
	return uasset.Label{}, uasset.ErrTagNotFound
}

// Calls は呼び出し回数を返します
func (d *MockDecoder) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}
