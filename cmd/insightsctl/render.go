package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
)

// section is one titled table of a report.
type section struct {
	title   string
	headers []string
	rows    [][]string
}

// emit writes v as indented JSON when the output is json, and the sections
// as tables otherwise.
func (a *app) emit(v any, sections ...section) error {
	if a.output == "json" {
		return writeJSON(a.out, v)
	}
	for i, s := range sections {
		if i > 0 {
			fmt.Fprintln(a.out)
		}
		writeTable(a.out, s)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeTable(w io.Writer, s section) {
	if s.title != "" {
		fmt.Fprintln(w, titleStyle.Render(s.title))
	}
	if len(s.rows) == 0 {
		fmt.Fprintln(w, "(no rows)")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(s.headers...).
		Rows(s.rows...)
	fmt.Fprintln(w, t)
}

func num(n int64) string { return strconv.FormatInt(n, 10) }

func pct(p float64) string { return strconv.FormatFloat(p, 'f', 1, 64) + "%" }
