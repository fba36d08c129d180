package utils

import (
	"bytes"
	"fmt"
	"log"

	"github.com/davecgh/go-spew/spew"
)

var spewConfig *spew.ConfigState

func init() {
	spewConfig = spew.NewDefaultConfig()
	spewConfig.DisableCapacities = true
	spewConfig.DisablePointerAddresses = true
	spewConfig.SortKeys = true
}

func SDump(a ...interface{}) string {
	return spewConfig.Sdump(a...)
}

func LogDump(a ...interface{}) {
	log.Println(spewConfig.Sdump(a...))
}

// Preview escapes non printable bytes and cuts text to limit bytes,
// for showing foreign clipboard content in one status line
func Preview(text string, limit int) string {
	var out bytes.Buffer

	buf := []byte(text)
	cut := len(buf) > limit
	if cut {
		buf = buf[:limit]
	}
	for _, b := range buf {
		if b >= 0x20 && b < 0x7f {
			out.WriteByte(b)
		} else {
			out.WriteString(fmt.Sprintf("\\x%.2x", b))
		}
	}
	if cut {
		out.WriteString("...")
	}
	return out.String()
}
