package util

import "sort"

// ColorPalette is the fixed set of Gantt chart colours handed out to processes.
var ColorPalette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// AssignColors maps every distinct pid to a palette colour. Pids are coloured in
// sorted order so the same set of pids always gets the same colours; the palette
// wraps around when there are more pids than colours.
func AssignColors(pids []string) map[string]string {
	unique := make([]string, 0, len(pids))
	seen := make(map[string]bool, len(pids))
	for _, pid := range pids {
		if !seen[pid] {
			seen[pid] = true
			unique = append(unique, pid)
		}
	}
	sort.Strings(unique)

	colors := make(map[string]string, len(unique))
	for i, pid := range unique {
		colors[pid] = ColorPalette[i%len(ColorPalette)]
	}
	return colors
}
