package header

import (
	"strconv"
	"strings"

	"github.com/evt3decode/evt3/decoder"
)

// EndMarker is the line prefix that terminates header processing even if
// more '%' lines would otherwise follow.
const EndMarker = "% end"

// IsHeaderLine reports whether b (the first byte of an unread line) opens a
// textual header line.
func IsHeaderLine(b byte) bool {
	return b == '%'
}

// IsEnd reports whether line is the "% end" sentinel that stops header
// processing on this line, regardless of any header lines that might
// follow it in the file.
func IsEnd(line string) bool {
	return strings.HasPrefix(line, EndMarker)
}

// ParseLine parses one '%'-prefixed header line and merges any recognized
// fields into meta. Unrecognized lines, and malformed fields within a
// recognized line, are silently ignored: ParseLine never fails and never
// returns an error.
//
// Recognized forms:
//   - "% format EVT3;width=W;height=H;..." — any number of key=value pairs;
//     only width and height are consumed.
//   - "% geometry WxH" — updates both dimensions atomically; a parse
//     failure on either half leaves meta unchanged.
//   - "% evt <version>" — records the raw version string on
//     meta.FormatVersion; never rejects a mismatched version.
func ParseLine(line string, meta *decoder.SensorMetadata) {
	line = strings.TrimRight(line, " \t\r\n")

	switch {
	case strings.HasPrefix(line, "% format "):
		parseFormatLine(strings.TrimPrefix(line, "% format "), meta)
	case strings.HasPrefix(line, "% geometry "):
		parseGeometryLine(strings.TrimPrefix(line, "% geometry "), meta)
	case strings.HasPrefix(line, "% evt "):
		meta.FormatVersion = strings.TrimPrefix(line, "% evt ")
	}
}

// parseFormatLine parses "EVT3;width=1280;height=720;..." style payloads.
func parseFormatLine(payload string, meta *decoder.SensorMetadata) {
	for _, part := range strings.Split(payload, ";") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}

		switch key {
		case "width":
			if w, err := strconv.ParseUint(value, 10, 32); err == nil {
				meta.Width = uint32(w)
			}
		case "height":
			if h, err := strconv.ParseUint(value, 10, 32); err == nil {
				meta.Height = uint32(h)
			}
		}
	}
}

// parseGeometryLine parses "1280x720" style payloads, updating both
// dimensions together or neither.
func parseGeometryLine(payload string, meta *decoder.SensorMetadata) {
	wStr, hStr, ok := strings.Cut(payload, "x")
	if !ok {
		return
	}

	w, err := strconv.ParseUint(wStr, 10, 32)
	if err != nil {
		return
	}
	h, err := strconv.ParseUint(hStr, 10, 32)
	if err != nil {
		return
	}

	meta.Width = uint32(w)
	meta.Height = uint32(h)
}
