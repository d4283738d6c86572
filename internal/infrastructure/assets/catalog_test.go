package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/webslinger/internal/domain/animation"
)

// pngFile encodes a w x 1 image; the width identifies the frame in tests.
func pngFile(t *testing.T, w int) *fstest.MapFile {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &fstest.MapFile{Data: buf.Bytes()}
}

func widthOf(img image.Image) int {
	return img.Bounds().Dx()
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"Idle/0.png":            pngFile(t, 1),
		"Idle/1.png":            pngFile(t, 2),
		"Run/b.PNG":             pngFile(t, 4),
		"Run/a.png":             pngFile(t, 3),
		"Run/notes.txt":         &fstest.MapFile{Data: []byte("ignored")},
		"Run/" + DurationsFile:  &fstest.MapFile{Data: []byte("frames: [0.1, 0.25]\n")},
		".cache/x.png":          pngFile(t, 9),
		"readme.md":             &fstest.MapFile{Data: []byte("top-level files are not clips")},
		"Jump_Ascend/frame.png": pngFile(t, 5),
	}

	cat, err := Load(fsys)
	require.NoError(t, err)

	assert.Equal(t, []string{"Idle", "Jump_Ascend", "Run"}, cat.Names())
	require.Len(t, cat.Clips["Run"], 2)
	assert.Equal(t, 3, widthOf(cat.Clips["Run"][0]), "frames are in name order")
	assert.Equal(t, 4, widthOf(cat.Clips["Run"][1]))
	assert.Equal(t, []float64{0.1, 0.25}, cat.Durations["Run"])
	assert.NotContains(t, cat.Durations, "Idle")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		fsys    fstest.MapFS
		wantErr error
	}{
		{
			name:    "no clips",
			fsys:    fstest.MapFS{"readme.md": &fstest.MapFile{}},
			wantErr: ErrNoClips,
		},
		{
			name:    "clip without images",
			fsys:    fstest.MapFS{"Idle/notes.txt": &fstest.MapFile{}},
			wantErr: animation.ErrInvalidFormat,
		},
		{
			name:    "corrupt image",
			fsys:    fstest.MapFS{"Idle/0.png": &fstest.MapFile{Data: []byte("not a png")}},
			wantErr: animation.ErrInvalidFormat,
		},
		{
			name: "bad durations yaml",
			fsys: fstest.MapFS{
				"Idle/0.png":          pngFile(t, 1),
				"Idle/durations.yaml": &fstest.MapFile{Data: []byte("frames: [oops")},
			},
			wantErr: animation.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.fsys)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBuild(t *testing.T) {
	fsys := fstest.MapFS{
		"Idle/0.png":           pngFile(t, 1),
		"Idle/1.png":           pngFile(t, 2),
		"Run/0.png":            pngFile(t, 3),
		"Run/1.png":            pngFile(t, 4),
		"Run/" + DurationsFile: &fstest.MapFile{Data: []byte("frames:\n  - 0.1\n  - 0.2\n")},
	}
	cat, err := Load(fsys)
	require.NoError(t, err)

	set, err := Build(cat, widthOf)
	require.NoError(t, err)

	idle, err := set.Frames("Idle")
	require.NoError(t, err)
	assert.Equal(t, 1, idle[0].Handle)
	assert.Equal(t, animation.DefaultFrameDuration, idle[0].Duration)

	run, err := set.Frames("Run")
	require.NoError(t, err)
	assert.Equal(t, 4, run[1].Handle)
	assert.Equal(t, 0.2, run[1].Duration)
}

func TestBuild_DurationMismatch(t *testing.T) {
	cat := &Catalog{
		Clips:     map[string][]image.Image{"Idle": {image.NewRGBA(image.Rect(0, 0, 1, 1))}},
		Durations: map[string][]float64{"Idle": {0.1, 0.2}},
	}

	_, err := Build(cat, widthOf)
	assert.ErrorIs(t, err, animation.ErrInvalidFormat)
}

func TestPlaceholder(t *testing.T) {
	cat := Placeholder(map[string]int{"Idle": 2, "Run": 4, "Empty": 0}, 16, 8)

	assert.Equal(t, []string{"Idle", "Run"}, cat.Names())
	require.Len(t, cat.Clips["Run"], 4)
	assert.Equal(t, image.Rect(0, 0, 16, 8), cat.Clips["Run"][0].Bounds())

	// marker bar grows with the frame index
	first, last := cat.Clips["Run"][0], cat.Clips["Run"][3]
	assert.NotEqual(t, first.At(15, 7), last.At(15, 7))
	assert.Equal(t, last.At(0, 7), first.At(0, 7))

	// clips are told apart by color
	assert.NotEqual(t, cat.Clips["Idle"][0].At(0, 0), cat.Clips["Run"][0].At(0, 0))

	set, err := Build(cat, widthOf)
	require.NoError(t, err)
	assert.Equal(t, 4, set.Len("Run"))
}
