package filter

import "github.com/anthonynsimon/bild/parallel"

// forEachRow splits [0, height) into bands and runs fn on them concurrently,
// returning once every band is done. Each band must only write its own rows.
func forEachRow(height int, fn func(start, end int)) {
	if height <= 0 {
		return
	}
	parallel.Line(height, fn)
}
