// seehuhn.de/go/chord - chord diagram layout
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan  = lipgloss.Color("36")
	colorRed   = lipgloss.Color("167")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

var (
	styleIconError = lipgloss.NewStyle().Foreground(colorRed)
	styleIconInfo  = lipgloss.NewStyle().Foreground(colorGray)
	styleKey       = lipgloss.NewStyle().Foreground(colorGray).Width(12)
	styleHeader    = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
)

const (
	iconError = "✗"
	iconInfo  = "›"
	iconArrow = "→"
)

func printTitle(w io.Writer, title, detail string) {
	fmt.Fprintln(w, StyleTitle.Render(title)+"  "+StyleDim.Render(detail))
}

func printKeyValue(w io.Writer, key, value string) {
	fmt.Fprintln(w, "  "+styleKey.Render(key)+" "+StyleValue.Render(value))
}

func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, "  "+styleIconError.Render(iconError)+" "+msg)
}

// printTable prints rows as left-aligned columns under a bold header.
// Numeric columns use the number style.
func printTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for k, h := range header {
		widths[k] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for k, cell := range row {
			widths[k] = max(widths[k], lipgloss.Width(cell))
		}
	}

	line := func(cells []string, style func(k int) lipgloss.Style) string {
		parts := make([]string, len(cells))
		for k, cell := range cells {
			parts[k] = style(k).Width(widths[k]).Render(cell)
		}
		return "  " + strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	fmt.Fprintln(w, line(header, func(int) lipgloss.Style { return styleHeader }))
	for _, row := range rows {
		fmt.Fprintln(w, line(row, func(k int) lipgloss.Style {
			if k == 0 {
				return StyleValue
			}
			return StyleNumber
		}))
	}
}
