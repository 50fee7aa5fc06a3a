// Package iocli abstracts terminal input/output so commands can be tested
// without a real terminal.
package iocli

//go:generate moq -out io_mock.go . IO

// IO is the console surface the CLI commands write to and read from.
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
}
