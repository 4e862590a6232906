package element

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/wiregrid/internal/geom"
)

func TestParseDevice(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected Device
	}{
		{name: "desktop", raw: "desktop", expected: builtinDevices[DeviceDesktop]},
		{name: "mobile mixed case", raw: " Mobile ", expected: builtinDevices[DeviceMobile]},
		{name: "tablet landscape", raw: "tablet-landscape", expected: builtinDevices[DeviceTabletLandscape]},
		{name: "custom dimensions", raw: "800x600", expected: Device{Kind: DeviceCustom, Width: 800, Height: 600}},
		{name: "custom with spaces", raw: "1920 x 1080", expected: Device{Kind: DeviceCustom, Width: 1920, Height: 1080}},
		{name: "unknown falls back to desktop", raw: "smartwatch", expected: DefaultDevice()},
		{name: "empty falls back to desktop", raw: "", expected: DefaultDevice()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ParseDevice(tc.raw, nil))
		})
	}
}

func TestParseDevicePresetsWin(t *testing.T) {
	presets := map[string]Device{
		"kiosk":   {Kind: DeviceCustom, Width: 1080, Height: 1920},
		"desktop": {Kind: DeviceCustom, Width: 2560, Height: 1440},
	}

	assert.Equal(t, presets["kiosk"], ParseDevice("kiosk", presets))
	// A preset may shadow a built-in name.
	assert.Equal(t, presets["desktop"], ParseDevice("desktop", presets))
}

func TestElementJSONCarriesKind(t *testing.T) {
	btn := Button{
		ID:       "login",
		Text:     "Login",
		Position: geom.Position{Row: 2, Col: 4},
		Align:    AlignCenter,
		Actions:  []Action{{Event: "click", Name: "goto", Args: []string{"home"}}},
	}

	raw, err := json.Marshal(Element(btn))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "button", decoded["kind"])
	assert.Equal(t, "login", decoded["id"])
	assert.Equal(t, "center", decoded["align"])
}

func TestPropertiesJSONKeepsCtyTypes(t *testing.T) {
	p := Properties{
		"placeholder": cty.StringVal("you@example.com"),
		"required":    cty.True,
		"max_length":  cty.NumberIntVal(64),
	}

	raw, err := json.Marshal(p)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "you@example.com", decoded["placeholder"])
	assert.Equal(t, true, decoded["required"])
	assert.Equal(t, float64(64), decoded["max_length"])
}

func TestBoxJSONNestsChildren(t *testing.T) {
	bounds, err := geom.NewBounds(0, 0, 2, 10)
	require.NoError(t, err)
	box := Box{
		Name:   "Login",
		Bounds: bounds,
		Children: []Element{
			Input{ID: "email", Position: geom.Position{Row: 1, Col: 2}},
		},
	}

	raw, err := json.Marshal(Element(box))
	require.NoError(t, err)

	var decoded struct {
		Kind     string `json:"kind"`
		Name     string `json:"name"`
		Children []struct {
			Kind string `json:"kind"`
			ID   string `json:"id"`
		} `json:"children"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "box", decoded.Kind)
	assert.Equal(t, "Login", decoded.Name)
	require.Len(t, decoded.Children, 1)
	assert.Equal(t, "input", decoded.Children[0].Kind)
	assert.Equal(t, "email", decoded.Children[0].ID)
}

func TestSceneIDs(t *testing.T) {
	ast := AST{Scenes: []Scene{{ID: "home"}, {ID: "settings"}}}
	assert.Equal(t, []string{"home", "settings"}, ast.SceneIDs())
}
