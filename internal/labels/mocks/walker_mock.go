package mocks

// MockWalker はテスト用のウォーカーモック
type MockWalker struct {
	FilesByRoot map[string][]string
	Err         error
}

// NewMockWalker は新しいMockWalkerを作成します
func NewMockWalker() *MockWalker {
	return &MockWalker{
		FilesByRoot: make(map[string][]string),
	}
}

// FindUAssets は登録されたファイル一覧を返します
func (w *MockWalker) FindUAssets(root string) ([]string, error) {
	if w.Err != nil {
		return nil, w.Err
	}
	return w.FilesByRoot[root], nil
}
