package show

// minWidth is the smallest zero-padding width ever used, so single-digit
// numbers render as "01" rather than "1".
const minWidth = 2

// PadWidth returns the zero-padding width needed to print max without
// truncation, with a floor of two digits. It is applied independently to the
// largest season number and the largest per-season episode count.
func PadWidth(max int) int {
	w := digits(max)
	if w < minWidth {
		return minWidth
	}
	return w
}

func digits(n int) int {
	if n < 0 {
		n = -n
	}
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}
