// Package ui provides semantic text formatting for CLI output.
//
// Formatters render content by role (commands, paths, configuration
// strings, ...) rather than by color. When NO_COLOR is set or the terminal
// has no color support, text decorations are used instead:
//
//	ui.Code.Sprint("enigma config init")   // `enigma config init`
//	ui.Highlight.Sprint("A")               // 'A'
//	ui.Secret.Sprint("A12,E43,B27")        // <A12,E43,B27>
//	ui.Muted.Sprint("default")             // (default)
package ui
