package tui

import (
	"strconv"
	"strings"
)

// popupDimFactor is how much the frame behind the popup is darkened.
const popupDimFactor = 0.4

// dimFg is the foreground applied to otherwise-unstyled text while dimmed.
const dimFg = "\x1b[38;2;91;100;109m"

// dimColors walks an ANSI-colored frame and reduces the brightness of every
// color by the given factor (0.0–1.0). Non-color SGR attributes (bold, italic,
// underline) and non-SGR escape sequences pass through unchanged. Plain text
// is dimmed by forcing a muted default foreground after every reset and
// newline.
func dimColors(s string, factor float64) string {
	if len(s) == 0 {
		return s
	}

	var out strings.Builder
	out.Grow(len(s) + 64)
	out.WriteString(dimFg)

	i := 0
	for i < len(s) {
		if s[i] == '\n' {
			// Styles reset at line ends; re-apply the dim default so the
			// next line's plain text stays dimmed.
			out.WriteByte('\n')
			out.WriteString(dimFg)
			i++
			continue
		}

		if s[i] != '\x1b' {
			out.WriteByte(s[i])
			i++
			continue
		}

		start := i
		i = ansiEscapeEnd(s, i)
		seq := s[start:i]

		// Only CSI ...m sequences carry color; everything else passes through.
		if !strings.HasPrefix(seq, "\x1b[") || !strings.HasSuffix(seq, "m") {
			out.WriteString(seq)
			continue
		}

		out.WriteString("\x1b[")
		out.WriteString(dimSGR(seq[2:len(seq)-1], factor))
		out.WriteByte('m')
	}

	return out.String()
}

// dimSGR transforms the parameter portion of an SGR sequence
// (e.g. "38;2;255;0;0"), dimming every color it names.
func dimSGR(params string, factor float64) string {
	if params == "" {
		// ESC[m is equivalent to ESC[0m (reset).
		return "0;38;2;91;100;109"
	}

	parts := strings.Split(params, ";")
	var out []string
	i := 0
	for i < len(parts) {
		code, err := strconv.Atoi(parts[i])
		if err != nil {
			out = append(out, parts[i])
			i++
			continue
		}

		switch {
		case code == 0:
			// Reset, then re-apply the dim default foreground.
			out = append(out, "0", "38", "2", "91", "100", "109")
			i++

		case code == 39:
			// Default foreground becomes the dim default.
			out = append(out, "38", "2", "91", "100", "109")
			i++

		case (code == 38 || code == 48) && i+1 < len(parts):
			next, _ := strconv.Atoi(parts[i+1])
			if next == 2 && i+4 < len(parts) {
				// 24-bit: 38;2;R;G;B or 48;2;R;G;B
				r, _ := strconv.Atoi(parts[i+2])
				g, _ := strconv.Atoi(parts[i+3])
				b, _ := strconv.Atoi(parts[i+4])
				out = appendDimmed(out, code, r, g, b, factor)
				i += 5
			} else if next == 5 && i+2 < len(parts) {
				// 256-color: 38;5;N or 48;5;N, emitted as dimmed 24-bit.
				n, _ := strconv.Atoi(parts[i+2])
				r, g, b := color256ToRGB(n)
				out = appendDimmed(out, code, r, g, b, factor)
				i += 3
			} else {
				out = append(out, parts[i])
				i++
			}

		case code >= 30 && code <= 37:
			c := ansi16Colors[code-30]
			out = appendDimmed(out, 38, c[0], c[1], c[2], factor)
			i++

		case code >= 40 && code <= 47:
			c := ansi16Colors[code-40]
			out = appendDimmed(out, 48, c[0], c[1], c[2], factor)
			i++

		case code >= 90 && code <= 97:
			c := ansi16Colors[code-90+8]
			out = appendDimmed(out, 38, c[0], c[1], c[2], factor)
			i++

		case code >= 100 && code <= 107:
			c := ansi16Colors[code-100+8]
			out = appendDimmed(out, 48, c[0], c[1], c[2], factor)
			i++

		default:
			// Non-color attribute.
			out = append(out, parts[i])
			i++
		}
	}

	return strings.Join(out, ";")
}

// appendDimmed appends an extended-color SGR param run (plane 38 or 48) with
// the dimmed RGB values.
func appendDimmed(out []string, plane, r, g, b int, factor float64) []string {
	return append(out,
		strconv.Itoa(plane), "2",
		strconv.Itoa(int(float64(r)*factor)),
		strconv.Itoa(int(float64(g)*factor)),
		strconv.Itoa(int(float64(b)*factor)))
}

// color256ToRGB converts a 256-color index to RGB.
func color256ToRGB(n int) (int, int, int) {
	switch {
	case n < 0 || n > 255:
		return 0, 0, 0
	case n < 16:
		return ansi16Colors[n][0], ansi16Colors[n][1], ansi16Colors[n][2]
	case n < 232:
		// 6x6x6 color cube: indices 16–231.
		n -= 16
		return cubeValue(n / 36), cubeValue((n / 6) % 6), cubeValue(n % 6)
	default:
		// Grayscale ramp: indices 232–255.
		v := 8 + (n-232)*10
		return v, v, v
	}
}

func cubeValue(i int) int {
	if i == 0 {
		return 0
	}
	return 55 + i*40
}

// ansi16Colors maps the standard 16 ANSI colors to RGB (xterm defaults).
var ansi16Colors = [16][3]int{
	{0, 0, 0},       // 0: Black
	{205, 0, 0},     // 1: Red
	{0, 205, 0},     // 2: Green
	{205, 205, 0},   // 3: Yellow
	{0, 0, 238},     // 4: Blue
	{205, 0, 205},   // 5: Magenta
	{0, 205, 205},   // 6: Cyan
	{229, 229, 229}, // 7: White
	{127, 127, 127}, // 8: Bright Black (Gray)
	{255, 0, 0},     // 9: Bright Red
	{0, 255, 0},     // 10: Bright Green
	{255, 255, 0},   // 11: Bright Yellow
	{92, 92, 255},   // 12: Bright Blue
	{255, 0, 255},   // 13: Bright Magenta
	{0, 255, 255},   // 14: Bright Cyan
	{255, 255, 255}, // 15: Bright White
}
