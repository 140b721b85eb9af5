package tui

const (
	defaultWidth    = 80
	listPaneWidth   = 36
	maxOutputLines  = 2000
	headerHeight    = 2
	statusBarHeight = 2
)
