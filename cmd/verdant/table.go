package main

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func newTable(header ...any) table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.Style().Format.Header = text.FormatDefault
	w.Style().Format.Footer = text.FormatDefault
	w.AppendHeader(table.Row(header))
	return w
}

func renderTable(out io.Writer, w table.Writer, markdown bool) error {
	s := w.Render()
	if markdown {
		s = w.RenderMarkdown()
	}
	_, err := io.WriteString(out, s+"\n")
	return err
}
