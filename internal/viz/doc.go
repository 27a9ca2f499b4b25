// Package viz runs the zoom animation inside a Bubble Tea program.
//
// The program owns the terminal through the alternate screen, so frames are
// redrawn in place rather than cleared and reprinted. Rendering is
// monochrome: styles only draw a border and a status line.
//
// # Key Bindings
//
//	q, Ctrl+C - Quit
//
// There is no other input; the animation runs on its own.
package viz
