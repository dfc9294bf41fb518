package filescope

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strings"
	"sync/atomic"

	"github.com/filescope/filescope/pkg/files"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	maxDataRows = 20
	maxDataCols = 50

	dataReadLimit = 256 * 1024
)

// dataPane shows a tabular head of CSV/TSV files. Anything else gets a
// placeholder row.
type dataPane struct {
	*tview.Table
	b   *Browser
	seq int64
}

func newDataPane(b *Browser) *dataPane {
	table := tview.NewTable()
	d := &dataPane{
		Table: table,
		b:     b,
	}
	decoratePane(table.Box, " Data ")
	table.SetBorders(false)
	table.SetSelectable(false, false)
	d.placeholder("Select a CSV or TSV file.")
	return d
}

func (d *dataPane) placeholder(text string) {
	d.Clear()
	d.SetSelectable(false, false)
	d.SetCell(0, 0, tview.NewTableCell(text).SetTextColor(Style.PlaceholderColor))
}

func tableSeparator(name string) (rune, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case ".csv":
		return ',', true
	case ".tsv":
		return '\t', true
	default:
		return 0, false
	}
}

func (d *dataPane) showEntry(entry *files.EntryWithDirPath) {
	seq := atomic.AddInt64(&d.seq, 1)
	if entry == nil || entry.IsDir() {
		d.placeholder("Select a CSV or TSV file.")
		return
	}
	separator, ok := tableSeparator(entry.Name())
	if !ok {
		d.placeholder(fmt.Sprintf("No tabular preview for %s", entry.Name()))
		return
	}

	b := d.b
	store := b.store
	fullName := entry.FullName()
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), readFileTimeout)
		defer cancel()
		data, err := store.ReadFile(ctx, fullName, dataReadLimit)
		b.app.QueueUpdateDraw(func() {
			if atomic.LoadInt64(&d.seq) != seq {
				return
			}
			if err != nil {
				b.logger.Error("cannot read file for data preview",
					zap.String("file", fullName), zap.Error(err))
				d.placeholder(fmt.Sprintf("Cannot read %s: %v", entry.Name(), err))
				return
			}
			d.setRows(parseTableHead(data, separator))
		})
	}()
}

// parseTableHead parses up to maxDataRows records. Parse errors after
// the first record are ignored, the capped read may cut the last line.
func parseTableHead(data []byte, separator rune) [][]string {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for len(rows) < maxDataRows {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if len(rows) == 0 {
				return nil
			}
			break
		}
		if len(record) > maxDataCols {
			record = record[:maxDataCols]
		}
		rows = append(rows, record)
	}
	return rows
}

func (d *dataPane) setRows(rows [][]string) {
	if len(rows) == 0 {
		d.placeholder("(no rows)")
		return
	}
	d.Clear()
	for r, row := range rows {
		for c, value := range row {
			cell := tview.NewTableCell(tview.Escape(value))
			if r == 0 {
				cell.SetTextColor(Style.TableHeaderColor)
				cell.SetAttributes(tcell.AttrBold)
			}
			d.SetCell(r, c, cell)
		}
	}
	d.SetFixed(1, 0)
	d.SetSelectable(true, false)
	d.Select(0, 0)
	d.ScrollToBeginning()
}
