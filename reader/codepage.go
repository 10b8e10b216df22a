package reader

import (
	"bufio"
	"bytes"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// codepageVariable is the header variable naming the file's codepage.
const codepageVariable = "$DWGCODEPAGE"

// headerScanLimit bounds the codepage sniff; the variable sits near the
// top of the header section.
const headerScanLimit = 512

// encodingFor maps a codepage identifier to its character map decoder.
// Identifiers for multi-byte codepages (CJK) and UTF-8 return nil: those
// streams pass through undecoded.
func encodingFor(codepage string) *encoding.Decoder {
	var cm *charmap.Charmap
	switch strings.ToUpper(codepage) {
	case "ANSI_874":
		cm = charmap.Windows874
	case "ANSI_1250":
		cm = charmap.Windows1250
	case "ANSI_1251":
		cm = charmap.Windows1251
	case "ANSI_1252":
		cm = charmap.Windows1252
	case "ANSI_1253":
		cm = charmap.Windows1253
	case "ANSI_1254":
		cm = charmap.Windows1254
	case "ANSI_1255":
		cm = charmap.Windows1255
	case "ANSI_1256":
		cm = charmap.Windows1256
	case "ANSI_1257":
		cm = charmap.Windows1257
	case "ANSI_1258":
		cm = charmap.Windows1258
	default:
		return nil
	}
	return cm.NewDecoder()
}

// detectCodepage scans the first lines of the raw stream for the
// $DWGCODEPAGE variable and returns its value, or "" if absent. All
// supported codepages are ASCII-compatible, so scanning the undecoded
// bytes is safe.
func detectCodepage(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	lines := 0
	for scanner.Scan() && lines < headerScanLimit {
		lines++
		if strings.TrimSpace(scanner.Text()) != codepageVariable {
			continue
		}
		// The value line follows the variable's group code line.
		if !scanner.Scan() || !scanner.Scan() {
			return ""
		}
		return strings.TrimSpace(scanner.Text())
	}
	return ""
}
