package panel

import "sort"

// MinLabelGap is the minimum vertical distance between end-of-line labels, in %/yr.
const MinLabelGap = 0.25

// Spread sorts label positions ascending and raises each one just enough to keep it at
// least gap above its predecessor. The input is not modified.
func Spread(ys []float64, gap float64) []float64 {
	out := append([]float64(nil), ys...)
	sort.Float64s(out)
	for i := 1; i < len(out); i++ {
		if out[i]-out[i-1] < gap {
			out[i] = out[i-1] + gap
		}
	}
	return out
}

// spreadLabels orders labels by height and applies Spread to their positions.
func spreadLabels(labels []endLabel, gap float64) {
	sort.SliceStable(labels, func(i, j int) bool { return labels[i].Y < labels[j].Y })
	ys := make([]float64, len(labels))
	for i, l := range labels {
		ys[i] = l.Y
	}
	for i, y := range Spread(ys, gap) {
		labels[i].Y = y
	}
}
