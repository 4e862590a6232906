package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/wiregrid/internal/boxparse"
	"github.com/vk/wiregrid/internal/element"
	"github.com/vk/wiregrid/internal/recognize"
)

func newTestBuilder() *Builder {
	reg := recognize.NewRegistry(recognize.Aligner{Tolerance: recognize.DefaultTolerance})
	return New(boxparse.New(reg, 0, 0), 0, nil)
}

func TestBuildSingleSceneDefaults(t *testing.T) {
	ast, ds := newTestBuilder().Build([]string{
		"+--Login--+",
		"| #email  |",
		"+---------+",
	})
	require.Empty(t, ds)
	require.Len(t, ast.Scenes, 1)

	s := ast.Scenes[0]
	assert.Equal(t, "scene-1", s.ID)
	assert.Empty(t, s.Title)
	assert.Equal(t, element.DeviceDesktop, s.Device.Kind)
	require.Len(t, s.Elements, 1)
	assert.IsType(t, element.Box{}, s.Elements[0])
}

func TestDirectivesSetSceneMetadata(t *testing.T) {
	ast, ds := newTestBuilder().Build([]string{
		"@scene: Login Page",
		"@title: Sign in",
		"@device: mobile",
		"@transition: fade",
		"",
		"welcome",
	})
	require.Empty(t, ds)
	require.Len(t, ast.Scenes, 1)

	s := ast.Scenes[0]
	assert.Equal(t, "login-page", s.ID, "scene ids are slugified")
	assert.Equal(t, "Sign in", s.Title)
	assert.Equal(t, "fade", s.Transition)
	assert.Equal(t, 375, s.Device.Width)
	assert.Equal(t, 667, s.Device.Height)
}

func TestSeparatorSplitsScenes(t *testing.T) {
	ast, ds := newTestBuilder().Build([]string{
		"@scene: first",
		"one",
		"---",
		"@scene: second",
		"two",
	})
	require.Empty(t, ds)
	require.Equal(t, []string{"first", "second"}, ast.SceneIDs())
}

func TestUnnamedScenesNumberSequentially(t *testing.T) {
	ast, _ := newTestBuilder().Build([]string{
		"one",
		"---",
		"two",
		"---",
		"three",
	})
	assert.Equal(t, []string{"scene-1", "scene-2", "scene-3"}, ast.SceneIDs())
}

func TestEmptyChunksProduceNoScene(t *testing.T) {
	ast, _ := newTestBuilder().Build([]string{
		"only",
		"---",
		"",
		"   ",
	})
	assert.Equal(t, []string{"scene-1"}, ast.SceneIDs())
}

func TestDirectiveRowsKeepGridAligned(t *testing.T) {
	ast, ds := newTestBuilder().Build([]string{
		"@scene: home",
		"+----+",
		"|    |",
		"+----+",
	})
	require.Empty(t, ds, "a blanked directive line must not disturb the border rows")
	require.Len(t, ast.Scenes, 1)
	require.Len(t, ast.Scenes[0].Elements, 1)

	box := ast.Scenes[0].Elements[0].(element.Box)
	assert.Equal(t, 1, box.Bounds.Top, "rows keep their source index")
}

func TestCustomDeviceDimensions(t *testing.T) {
	ast, _ := newTestBuilder().Build([]string{
		"@device: 1080x1920",
		"x",
	})
	require.Len(t, ast.Scenes, 1)
	assert.Equal(t, element.Device{Kind: element.DeviceCustom, Width: 1080, Height: 1920}, ast.Scenes[0].Device)
}

func TestPresetOverridesBuiltin(t *testing.T) {
	reg := recognize.NewRegistry(recognize.Aligner{Tolerance: recognize.DefaultTolerance})
	b := New(boxparse.New(reg, 0, 0), 0, map[string]element.Device{
		"kiosk": {Kind: "kiosk", Width: 1080, Height: 1920},
	})

	ast, _ := b.Build([]string{
		"@device: kiosk",
		"x",
	})
	require.Len(t, ast.Scenes, 1)
	assert.Equal(t, 1080, ast.Scenes[0].Device.Width)
}

func TestParserDiagnosticsSurface(t *testing.T) {
	_, ds := newTestBuilder().Build([]string{
		"@scene: broken",
		"+----+",
		"|    |",
	})
	require.Len(t, ds, 1)
}
