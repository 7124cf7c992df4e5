package views

import (
	"strings"

	"wofiles/internal/tui/common"
	"wofiles/internal/tui/components"
	"wofiles/internal/tui/styles"
)

// chromeLines is the number of rows the title, input, status and help take.
const chromeLines = 6

func RenderMainView(m common.ModelReader, st styles.Styles) string {
	var sb strings.Builder

	sb.WriteString(renderTitle(m, st) + "\n\n")

	fileList := components.NewFileList(st)
	fileList.SetEntries(m.Entries())
	fileList.SetCursor(m.Cursor())
	fileList.SetCurrentDir(m.CurrentDir())
	fileList.SetMarked(m.ClipboardPath())
	if m.Height() > chromeLines {
		fileList.SetHeight(m.Height() - chromeLines)
	}
	sb.WriteString(fileList.View())

	if m.Mode() != common.Normal {
		sb.WriteString("\n" + st.Input.Render(m.InputView()))
	}
	sb.WriteString("\n" + m.StatusView())
	sb.WriteString("\n" + st.Help.Render(m.HelpView()))

	return st.App.Render(sb.String())
}

func renderTitle(m common.ModelReader, st styles.Styles) string {
	title := st.Title.Render("wofiles") + " " + m.CurrentDir()
	var flags []string
	if m.Privileged() {
		flags = append(flags, "privileged")
	}
	if name := m.ActiveTheme(); name != "" {
		flags = append(flags, "theme: "+name)
	}
	if len(flags) > 0 {
		title += "  " + st.Status.Render("["+strings.Join(flags, ", ")+"]")
	}
	return title
}
