package filescope

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"

	"github.com/filescope/filescope/pkg/files"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPreview(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, "(empty file)", renderPreview("a.txt", nil))
	})

	t.Run("plain_text", func(t *testing.T) {
		text := renderPreview("notes.txt", []byte("hello\nworld"))
		assert.Contains(t, text, "hello")
		assert.Contains(t, text, "world")
	})

	t.Run("go_source_is_highlighted", func(t *testing.T) {
		text := renderPreview("main.go", []byte("package main\n\nfunc main() {}\n"))
		// Chroma emits tview color tags.
		assert.Contains(t, text, "[#")
		assert.Contains(t, text, "package")
	})

	t.Run("binary", func(t *testing.T) {
		text := renderPreview("a.bin", []byte{0x7f, 'E', 'L', 'F', 0, 0, 1})
		assert.Contains(t, text, "Binary file")
	})

	t.Run("invalid_utf8", func(t *testing.T) {
		text := renderPreview("a.dat", bytes.Repeat([]byte{0xff, 0xfe}, 10))
		assert.Contains(t, text, "Binary file")
	})

	t.Run("truncated_rune_is_still_text", func(t *testing.T) {
		data := []byte("привет")
		data = data[:len(data)-1] // cut the last rune in half
		text := renderPreview("a.txt", data)
		assert.Contains(t, text, "приве")
	})

	t.Run("json_is_pretty_printed", func(t *testing.T) {
		text := renderPreview("cfg.json", []byte(`{"a":1,"b":[2,3]}`))
		assert.Contains(t, text, "\"a\"")
		assert.Contains(t, text, "  ")
	})

	t.Run("png_metadata", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 2))))
		text := renderPreview("pic.png", buf.Bytes())
		assert.Contains(t, text, "PNG image")
		assert.Contains(t, text, "4×2")
	})

	t.Run("broken_image", func(t *testing.T) {
		text := renderPreview("pic.png", []byte("not an image"))
		assert.Contains(t, text, "cannot decode header")
	})

	t.Run("notebook_cells", func(t *testing.T) {
		nb := `{"cells":[
			{"cell_type":"markdown","source":["# Title\n"]},
			{"cell_type":"code","source":["print(1)\n","print(2)\n"]}
		]}`
		text := renderPreview("analysis.ipynb", []byte(nb))
		assert.Contains(t, text, "markdown")
		assert.Contains(t, text, "# Title")
		assert.Contains(t, text, "print(1)")
		assert.Contains(t, text, "print(2)")
	})

	t.Run("broken_notebook_falls_back", func(t *testing.T) {
		text := renderPreview("broken.ipynb", []byte("not json at all"))
		assert.Contains(t, text, "not json at all")
	})
}

func TestCapLines(t *testing.T) {
	text := strings.Repeat("line\n", 10)
	assert.Equal(t, 3, strings.Count(capLines(text, 3), "line"))
	assert.Equal(t, 10, strings.Count(capLines(text, 100), "line"))
}

func TestDecodeText(t *testing.T) {
	t.Run("nul_is_binary", func(t *testing.T) {
		_, ok := decodeText([]byte("a\x00b"))
		assert.False(t, ok)
	})
	t.Run("valid_text", func(t *testing.T) {
		text, ok := decodeText([]byte("hello"))
		assert.True(t, ok)
		assert.Equal(t, "hello", text)
	})
	t.Run("trailing_partial_rune_trimmed", func(t *testing.T) {
		data := []byte("héllo")
		text, ok := decodeText(data[:len(data)-1])
		assert.True(t, ok)
		assert.Equal(t, "héll", text)
	})
}

func TestPreviewPane_ShowEntry(t *testing.T) {
	store := newFakeStore()
	entriesOf(store)
	store.content["/a.txt"] = []byte("file body")
	b, app := newTestBrowser(store)
	waitForDir(t, b, app, "/")

	app.sync(func() {
		node := b.tree.rootNode.GetChildren()[1] // a.txt
		b.tree.SetCurrentNode(node)
		b.tree.changed(node)
	})

	assert.Eventually(t, func() bool {
		var text string
		app.sync(func() {
			text = b.preview.GetText(false)
		})
		return strings.Contains(text, "file body")
	}, waitFor, tick)
}

func TestPreviewPane_ReadErrorShowsMessage(t *testing.T) {
	store := newFakeStore()
	entriesOf(store)
	b, app := newTestBrowser(store)
	waitForDir(t, b, app, "/")

	app.sync(func() {
		// No content registered for a.txt, so the read fails.
		entry := files.NewEntryWithDirPath(files.NewDirEntry("a.txt", false), "/")
		b.preview.showEntry(entry)
	})

	assert.Eventually(t, func() bool {
		var text string
		app.sync(func() {
			text = b.preview.GetText(false)
		})
		return strings.Contains(text, "Cannot preview a.txt")
	}, waitFor, tick)
}
