package app

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shiroemons/go-actorlabel/internal/labels/config"
	"github.com/shiroemons/go-actorlabel/internal/labels/mocks"
	"github.com/shiroemons/go-actorlabel/pkg/uasset"
)

// newTestApp はモックとバッファを備えたAppを組み立てます
func newTestApp(cfg *config.Config, fs *mocks.MockFileSystem, dec *mocks.MockDecoder, w *mocks.MockWalker) (*App, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	a := NewWithOptions(cfg, Options{
		FileSystem: fs,
		Decoder:    dec,
		Walker:     w,
		Out:        out,
		ErrOut:     errOut,
	})
	return a, out, errOut
}

func TestApp_Run_SingleFile(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files["actor.uasset"] = []byte("asset-1")

	dec := mocks.NewMockDecoder()
	dec.Labels["asset-1"] = uasset.Label{Kind: uasset.KindActorLabel, Text: "BP_PlayerCharacter"}

	cfg := &config.Config{Paths: []string{"actor.uasset"}, Workers: 1}
	a, out, _ := newTestApp(cfg, fs, dec, mocks.NewMockWalker())

	err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "BP_PlayerCharacter\n", out.String())
	assert.Equal(t, 1, dec.Calls())
}

func TestApp_Run_ShowPathAndType(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files["actor.uasset"] = []byte("asset-1")

	dec := mocks.NewMockDecoder()
	dec.Labels["asset-1"] = uasset.Label{Kind: uasset.KindActorLabel, Text: "BP_Hero"}

	cfg := &config.Config{
		Paths:    []string{"actor.uasset"},
		ShowPath: true,
		ShowType: true,
		Workers:  1,
	}
	a, out, _ := newTestApp(cfg, fs, dec, mocks.NewMockWalker())

	err := a.Run(context.Background())
	require.NoError(t, err)

	line := strings.TrimSpace(out.String())
	parts := strings.Split(line, " | ")
	require.Len(t, parts, 3)

	abs, err := filepath.Abs("actor.uasset")
	require.NoError(t, err)
	assert.Equal(t, abs, parts[0])
	assert.Equal(t, "[ActorLabel]", parts[1])
	assert.Equal(t, "BP_Hero", parts[2])
}

func TestApp_Run_DirectoryPreservesOrder(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Dirs["maps"] = true
	fs.Files[filepath.Join("maps", "a.uasset")] = []byte("asset-a")
	fs.Files[filepath.Join("maps", "b.uasset")] = []byte("asset-b")
	fs.Files[filepath.Join("maps", "c.uasset")] = []byte("asset-c")

	dec := mocks.NewMockDecoder()
	dec.Labels["asset-a"] = uasset.Label{Kind: uasset.KindActorLabel, Text: "Alpha"}
	dec.Labels["asset-b"] = uasset.Label{Kind: uasset.KindActorLabel, Text: "Bravo"}
	dec.Labels["asset-c"] = uasset.Label{Kind: uasset.KindActorLabel, Text: "Charlie"}

	walker := mocks.NewMockWalker()
	walker.FilesByRoot["maps"] = []string{
		filepath.Join("maps", "a.uasset"),
		filepath.Join("maps", "b.uasset"),
		filepath.Join("maps", "c.uasset"),
	}

	// ワーカーを複数にしても出力順はパスの元の順序のまま
	cfg := &config.Config{Paths: []string{"maps"}, Workers: 4}
	a, out, _ := newTestApp(cfg, fs, dec, walker)

	err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Alpha\nBravo\nCharlie\n", out.String())
}

func TestApp_Run_LabellessFilesProduceNoOutput(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files["mesh.uasset"] = []byte("asset-mesh")
	fs.Files["actor.uasset"] = []byte("asset-actor")

	dec := mocks.NewMockDecoder()
	// asset-mesh は未登録のためErrTagNotFoundになる
	dec.Labels["asset-actor"] = uasset.Label{Kind: uasset.KindActorLabel, Text: "BP_Hero"}

	cfg := &config.Config{Paths: []string{"mesh.uasset", "actor.uasset"}, Workers: 2}
	a, out, errOut := newTestApp(cfg, fs, dec, mocks.NewMockWalker())

	err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "BP_Hero\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestApp_Run_MissingPathContinues(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files["actor.uasset"] = []byte("asset-1")

	dec := mocks.NewMockDecoder()
	dec.Labels["asset-1"] = uasset.Label{Kind: uasset.KindActorLabel, Text: "BP_Hero"}

	cfg := &config.Config{Paths: []string{"missing.uasset", "actor.uasset"}, Workers: 1}
	a, out, errOut := newTestApp(cfg, fs, dec, mocks.NewMockWalker())

	err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "パスが見つかりません")
	assert.Contains(t, errOut.String(), "missing.uasset")
	assert.Equal(t, "BP_Hero\n", out.String())
}

func TestApp_Run_NoPaths(t *testing.T) {
	cfg := &config.Config{Workers: 1}
	a, _, _ := newTestApp(cfg, mocks.NewMockFileSystem(), mocks.NewMockDecoder(), mocks.NewMockWalker())

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoPaths)
}

func TestApp_Run_NoTargets(t *testing.T) {
	cfg := &config.Config{Paths: []string{"missing.uasset"}, Workers: 1}
	a, _, errOut := newTestApp(cfg, mocks.NewMockFileSystem(), mocks.NewMockDecoder(), mocks.NewMockWalker())

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoTargets)
	assert.Contains(t, errOut.String(), "missing.uasset")
}

func TestApp_Run_CancelledContext(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files["actor.uasset"] = []byte("asset-1")

	cfg := &config.Config{Paths: []string{"actor.uasset"}, Workers: 1}
	a, _, _ := newTestApp(cfg, fs, mocks.NewMockDecoder(), mocks.NewMockWalker())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := a.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApp_Run_RealDecoder(t *testing.T) {
	// 実際の復号器で不正なデータを渡してもバッチは完了する
	fs := mocks.NewMockFileSystem()
	fs.Files["broken.uasset"] = []byte("definitely not a uasset")

	cfg := &config.Config{Paths: []string{"broken.uasset"}, Workers: 1, DebugMode: true}
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	a := NewWithOptions(cfg, Options{
		FileSystem: fs,
		Out:        out,
		ErrOut:     errOut,
	})

	err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "ラベルなし")
}

func TestApp_Run_ReadErrorReported(t *testing.T) {
	fs := mocks.NewMockFileSystem()
	fs.Files["actor.uasset"] = []byte("asset-1")

	dec := mocks.NewMockDecoder()
	dec.Labels["asset-1"] = uasset.Label{Kind: uasset.KindActorLabel, Text: "BP_Hero"}

	walker := mocks.NewMockWalker()
	walker.FilesByRoot["maps"] = []string{filepath.Join("maps", "gone.uasset")}

	fs.Dirs["maps"] = true

	cfg := &config.Config{Paths: []string{"maps", "actor.uasset"}, Workers: 1}
	a, out, errOut := newTestApp(cfg, fs, dec, walker)

	err := a.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "読み込みに失敗しました")
	assert.Equal(t, "BP_Hero\n", out.String())
}
