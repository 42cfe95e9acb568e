package engine

import (
	"bytes"
	"io"
	"time"
)

func newByteReader(b []byte) io.Reader { return bytes.NewReader(b) }

func timeNow() time.Time { return time.Now() }
