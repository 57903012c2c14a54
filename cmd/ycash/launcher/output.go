package launcher

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// table is one command result. Rows are printed as a table, or the value as
// JSON.
type table struct {
	header []string
	rows   [][]string
	value  interface{}
}

type printer struct {
	w     io.Writer
	json  bool
	color bool
}

func newPrinter(w io.Writer, cfg OutputConfig) *printer {
	return &printer{w: w, json: cfg.JSON, color: cfg.Color}
}

func (p *printer) print(t table) error {
	if p.json {
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(t.value)
	}
	tw := tablewriter.NewWriter(p.w)
	tw.SetHeader(t.header)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetBorder(false)
	tw.AppendBulk(t.rows)
	tw.Render()
	return nil
}

// highlight colours s when colour output is on.
func (p *printer) highlight(attr color.Attribute, s string) string {
	if !p.color {
		return s
	}
	c := color.New(attr)
	c.EnableColor()
	return c.Sprint(s)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func optional(v interface{}, ok bool) string {
	if !ok {
		return "-"
	}
	return fmt.Sprint(v)
}
