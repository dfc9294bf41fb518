package filescope

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	commandHistorySize = 20
	commandTimeout     = 20 * time.Second
)

// runCommand is a seam for tests.
var runCommand = func(ctx context.Context, line string) ([]byte, error) {
	return exec.CommandContext(ctx, "sh", "-c", line).CombinedOutput()
}

// commandBar is the one-line shell at the bottom. Digits paste command
// presets, F1 pastes the selected path, Up/Down walk the history.
type commandBar struct {
	*tview.InputField
	b *Browser

	history []string
	histPos int
	draft   string
	running bool
}

func newCommandBar(b *Browser) *commandBar {
	c := &commandBar{
		InputField: tview.NewInputField(),
		b:          b,
	}
	c.SetLabel(": ")
	c.SetLabelColor(Style.PlaceholderColor)
	c.SetPlaceholder("press : to type a command, 1-9 for presets, F1 to paste path")
	c.SetPlaceholderTextColor(Style.PlaceholderColor)
	c.SetFieldBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
	c.SetFieldTextColor(tview.Styles.PrimaryTextColor)
	c.SetInputCapture(c.barInputCapture)
	c.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			c.submit()
		}
	})
	return c
}

func (c *commandBar) barInputCapture(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		c.SetText("")
		c.histPos = len(c.history)
		c.b.app.SetFocus(c.b.tree)
		return nil
	case tcell.KeyF1:
		c.insert(`"` + c.b.selectedPath() + `"`)
		return nil
	case tcell.KeyUp:
		c.historyUp()
		return nil
	case tcell.KeyDown:
		c.historyDown()
		return nil
	case tcell.KeyRune:
		if r := event.Rune(); r >= '1' && r <= '9' {
			if preset, ok := c.b.cfg.CommandForDigit(int(r - '0')); ok {
				c.insert(expandTemplate(preset.Template, c.b.selectedPath()))
				return nil
			}
		}
		return event
	default:
		return event
	}
}

// insert appends text at the cursor, which the field keeps at the end
// of the line.
func (c *commandBar) insert(text string) {
	c.SetText(c.GetText() + text)
}

func expandTemplate(template, path string) string {
	return strings.ReplaceAll(template, "{path}", path)
}

func (c *commandBar) historyUp() {
	if c.histPos == 0 || len(c.history) == 0 {
		return
	}
	if c.histPos == len(c.history) {
		c.draft = c.GetText()
	}
	c.histPos--
	c.SetText(c.history[c.histPos])
}

func (c *commandBar) historyDown() {
	if c.histPos >= len(c.history) {
		return
	}
	c.histPos++
	if c.histPos == len(c.history) {
		c.SetText(c.draft)
		return
	}
	c.SetText(c.history[c.histPos])
}

// rememberLine appends to the deduplicated, capped history.
func (c *commandBar) rememberLine(line string) {
	for i, prev := range c.history {
		if prev == line {
			c.history = append(c.history[:i], c.history[i+1:]...)
			break
		}
	}
	c.history = append(c.history, line)
	if len(c.history) > commandHistorySize {
		c.history = c.history[len(c.history)-commandHistorySize:]
	}
	c.histPos = len(c.history)
	c.draft = ""
}

func (c *commandBar) submit() {
	if c.running {
		return
	}
	line := strings.TrimSpace(c.GetText())
	if line == "" {
		return
	}
	c.rememberLine(line)
	c.SetText("")

	b := c.b
	switch line {
	case "exit":
		b.app.Stop()
		return
	case "clear":
		b.logPane.Clear()
		return
	}

	c.running = true
	c.SetDisabled(true)
	b.logger.Info("running command", zap.String("command", line))
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		output, err := runCommand(ctx, line)
		b.app.QueueUpdateDraw(func() {
			c.running = false
			c.SetDisabled(false)
			if out := strings.TrimRight(string(output), "\n"); out != "" {
				b.logger.Info("command output", zap.String("output", out))
			}
			if err != nil {
				b.logger.Error("command failed",
					zap.String("command", line), zap.Error(err))
			} else {
				b.logger.Info("command finished", zap.String("command", line))
			}
		})
	}()
}
