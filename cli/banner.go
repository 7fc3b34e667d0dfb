package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const bannerDefaultWidth = 60

// PrintBanner renders a box-drawing banner with a centered title followed by
// left-aligned detail lines, using the default width.
func PrintBanner(w io.Writer, title string, lines ...string) {
	PrintBannerWidth(w, bannerDefaultWidth, title, lines...)
}

// PrintBannerWidth renders the banner at the provided width.
// If any line is wider than the inner width, the banner grows to fit it.
func PrintBannerWidth(w io.Writer, width int, title string, lines ...string) {
	if width < 10 {
		width = bannerDefaultWidth
	}

	inner := width - 2
	for _, text := range append([]string{title}, lines...) {
		if n := utf8.RuneCountInString(text) + 4; n > inner {
			inner = n
		}
	}

	topBottom := strings.Repeat("═", inner)
	fmt.Fprintf(w, "╔%s╗\n", topBottom)
	fmt.Fprintf(w, "║%s║\n", padCenter(title, inner))
	if len(lines) > 0 {
		fmt.Fprintf(w, "╟%s╢\n", strings.Repeat("─", inner))
		for _, line := range lines {
			fmt.Fprintf(w, "║  %s║\n", padRight(line, inner-2))
		}
	}
	fmt.Fprintf(w, "╚%s╝\n", topBottom)
}

func padCenter(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	padTotal := width - n
	left := padTotal / 2
	right := padTotal - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

func padRight(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return text + strings.Repeat(" ", width-n)
}
