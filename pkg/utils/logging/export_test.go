package logging

import "io"

func DefaultOutput() io.Writer {
	return defaultOutput
}
