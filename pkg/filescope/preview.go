package filescope

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"path"
	"strings"
	"sync/atomic"
	"time"
	"unicode/utf8"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/filescope/filescope/pkg/chroma2tcell"
	"github.com/filescope/filescope/pkg/files"
	"github.com/filescope/filescope/pkg/fsutils"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	previewByteLimit = 10 * 1024
	previewLineLimit = 1000

	readFileTimeout = 30 * time.Second
)

// previewPane renders the head of the selected file: syntax
// highlighted when a lexer matches, a placeholder for anything it
// cannot decode. It never fails the application over file content.
type previewPane struct {
	*tview.TextView
	b   *Browser
	seq int64
}

func newPreviewPane(b *Browser) *previewPane {
	tv := tview.NewTextView()
	p := &previewPane{
		TextView: tv,
		b:        b,
	}
	decoratePane(tv.Box, " Preview ")
	tv.SetDynamicColors(true)
	tv.SetWrap(false)
	p.placeholder("Select a file to preview.")
	return p
}

func (p *previewPane) placeholder(text string) {
	p.SetTextColor(Style.PlaceholderColor)
	p.SetText(text)
	p.ScrollToBeginning()
}

func (p *previewPane) setError(name string, err error) {
	p.SetTextColor(Style.ErrorColor)
	p.SetText(fmt.Sprintf("Cannot preview %s: %v", name, err))
}

func (p *previewPane) showEntry(entry *files.EntryWithDirPath) {
	seq := atomic.AddInt64(&p.seq, 1)
	if entry == nil {
		p.placeholder("Select a file to preview.")
		return
	}
	if entry.IsDir() {
		p.placeholder(dirEmoji + " " + entry.Name())
		return
	}

	b := p.b
	store := b.store
	fullName := entry.FullName()
	name := entry.Name()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), readFileTimeout)
		defer cancel()
		data, err := store.ReadFile(ctx, fullName, previewByteLimit)
		b.app.QueueUpdateDraw(func() {
			if atomic.LoadInt64(&p.seq) != seq {
				return
			}
			if err != nil {
				b.logger.Error("cannot read file for preview",
					zap.String("file", fullName), zap.Error(err))
				p.setError(name, err)
				return
			}
			p.SetTextColor(tview.Styles.PrimaryTextColor)
			p.SetText(renderPreview(name, data))
			p.ScrollToBeginning()
		})
	}()
}

// renderPreview turns the head of a file into pane text with tview
// color tags. It must produce something displayable for any input.
func renderPreview(name string, data []byte) string {
	if len(data) == 0 {
		return "(empty file)"
	}

	switch strings.ToLower(path.Ext(name)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return imagePreview(data)
	case ".ipynb":
		if text, err := notebookPreview(data); err == nil {
			return text
		}
	case ".json":
		if pretty, err := prettyJSON(data); err == nil {
			data = pretty
		}
	}

	text, ok := decodeText(data)
	if !ok {
		return fmt.Sprintf("Binary file (%s read)",
			fsutils.GetSizeShortText(int64(len(data))))
	}
	text = capLines(text, previewLineLimit)

	if colorized, ok, err := chroma2tcell.HighlightByFileName(name, text); err == nil && ok {
		return colorized
	}
	return tview.Escape(text)
}

func imagePreview(data []byte) string {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "Image (cannot decode header)"
	}
	return fmt.Sprintf("🖼 %s image, %d×%d", strings.ToUpper(format), cfg.Width, cfg.Height)
}

func prettyJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// decodeText reports whether data looks like text the pane can show.
// A trailing partial UTF-8 rune from the read cap is not binary.
func decodeText(data []byte) (string, bool) {
	if bytes.IndexByte(data, 0) >= 0 {
		return "", false
	}
	// A rune is at most 4 bytes, so at most 3 bytes of it can be cut off.
	for i := 0; i < 3 && len(data) > 0 && !utf8.Valid(data); i++ {
		if r, size := utf8.DecodeLastRune(data); r == utf8.RuneError && size == 1 {
			data = data[:len(data)-1]
		}
	}
	if len(data) == 0 || !utf8.Valid(data) {
		return "", false
	}
	return string(data), true
}

func capLines(text string, limit int) string {
	count := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			count++
			if count == limit {
				return text[:i]
			}
		}
	}
	return text
}

type notebookCell struct {
	CellType string   `json:"cell_type"`
	Source   []string `json:"source"`
}

type notebook struct {
	Cells []notebookCell `json:"cells"`
}

// notebookPreview concatenates the sources of notebook cells, marking
// non-code cells with their type.
func notebookPreview(data []byte) (string, error) {
	var nb notebook
	if err := json.Unmarshal(data, &nb); err != nil {
		return "", err
	}
	if len(nb.Cells) == 0 {
		return "", fmt.Errorf("notebook has no cells")
	}
	var sb strings.Builder
	for i, cell := range nb.Cells {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if cell.CellType != "code" {
			fmt.Fprintf(&sb, "[gray]── %s ──[-]\n", cell.CellType)
		}
		sb.WriteString(tview.Escape(strings.Join(cell.Source, "")))
	}
	return sb.String(), nil
}
