package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	mdwerrors "github.com/msto63/chronos/foundation/core/errors"
)

type row struct {
	key   string
	value string
}

// printer renders command results either styled with lipgloss or as plain text
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer, styled bool) *printer {
	return &printer{w: w, styled: styled}
}

// panel prints a titled block of key/value rows
func (p *printer) panel(title string, rows []row) {
	width := 0
	for _, r := range rows {
		if len(r.key) > width {
			width = len(r.key)
		}
	}

	if !p.styled {
		for _, r := range rows {
			fmt.Fprintf(p.w, "%-*s  %s\n", width, r.key, r.value)
		}
		return
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, KeyStyle.Width(width+2).Render(r.key)+ValueStyle.Render(r.value))
	}
	body := lipgloss.JoinVertical(lipgloss.Left, TitleStyle.Render(title), strings.Join(lines, "\n"))
	fmt.Fprintln(p.w, BoxStyle.Render(body))
}

// check renders a pass/fail marker
func (p *printer) check(ok bool) string {
	switch {
	case ok && p.styled:
		return OKStyle.Render("ok")
	case ok:
		return "ok"
	case p.styled:
		return FailStyle.Render("invalid")
	default:
		return "invalid"
	}
}

// grid prints a table; dim marks rows rendered in the muted style
func (p *printer) grid(headers []string, rows [][]string, dim func(row int) bool) {
	if !p.styled {
		fmt.Fprintln(p.w, strings.Join(headers, "\t"))
		for _, r := range rows {
			fmt.Fprintln(p.w, strings.Join(r, "\t"))
		}
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(r, c int) lipgloss.Style {
			switch {
			case r == table.HeaderRow:
				return HeaderStyle
			case dim != nil && dim(r):
				return WeekendStyle
			default:
				return CellStyle
			}
		})
	fmt.Fprintln(p.w, t.String())
}

// printError writes a failure with its code and offending field
func printError(w io.Writer, err error) {
	msg := "error: " + err.Error()
	code := mdwerror.GetCode(err)
	if code != mdwerror.CodeUnknown {
		msg += " [" + code.String()
		if field := mdwerrors.ExtractField(err); field != "" {
			msg += " " + field
		}
		msg += "]"
	}
	fmt.Fprintln(w, ErrorMessageStyle.Render(msg))
}
