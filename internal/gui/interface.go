// Package gui is the fyne desktop front-end: an icon grid over the current
// directory with history navigation, search, shortcuts, clipboard actions
// and theme switching.
package gui

// Interface defines the contract for GUI operations
type Interface interface {
	Run()
	ShowError(title string, err error)
	ShowInfo(message string)
}
