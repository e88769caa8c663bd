package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/demetriusdemiurge/placer/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// DXFResult holds the outcome of importing a board outline and position
// field from a DXF drawing.
type DXFResult struct {
	Board    model.Board
	Field    model.PositionField
	Warnings []string
	Errors   []string
}

// ImportBoardDXF reads a DXF drawing and derives a Board (from the
// bounding box of the largest-area outline, taken from LWPOLYLINEs and
// from chains of LINE/ARC segments) and a PositionField (one candidate
// position per CIRCLE center, in drawing order, relative to the outline's
// lower-left corner), following the same LWPOLYLINE/CIRCLE/ARC/LINE
// handling as the rest of the toolchain's geometry passthrough.
func ImportBoardDXF(path string) DXFResult {
	drawing, err := dxf.Open(path)
	if err != nil {
		return DXFResult{Errors: []string{fmt.Sprintf("cannot open DXF file: %v", err)}}
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		return DXFResult{Errors: []string{"DXF file contains no entities"}}
	}

	var result DXFResult
	var outlines [][][2]float64
	var segments []segment
	var circles []entity.Circle

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			outline := lwPolylineToPoints(e)
			if len(outline) >= 3 {
				outlines = append(outlines, outline)
			} else {
				result.Warnings = append(result.Warnings, "skipped LWPOLYLINE with fewer than 3 vertices")
			}
		case *entity.Circle:
			circles = append(circles, *e)
		case *entity.Arc:
			pts := arcToPoints(e, 32)
			segments = append(segments, pointsToSegments(pts)...)
		case *entity.Line:
			segments = append(segments, segment{
				start: [2]float64{e.Start[0], e.Start[1]},
				end:   [2]float64{e.End[0], e.End[1]},
			})
		}
	}

	outlines = append(outlines, chainSegments(segments, 0.01)...)
	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "no closed outline found for board boundary")
		return result
	}

	sort.Slice(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})
	minX, minY, maxX, maxY := boundingBox(outlines[0])
	w, h := maxX-minX, maxY-minY
	if w <= 0 || h <= 0 {
		result.Errors = append(result.Errors, "board outline is degenerate")
		return result
	}
	result.Board = model.DefaultBoard(w, h)

	for _, c := range circles {
		result.Field = append(result.Field, model.Position{
			X: c.Center[0] - minX,
			Y: c.Center[1] - minY,
		})
	}
	if len(result.Field) == 0 {
		result.Warnings = append(result.Warnings, "no CIRCLE entities found, position field is empty")
	}

	return result
}

type segment struct {
	start [2]float64
	end   [2]float64
}

func lwPolylineToPoints(lw *entity.LwPolyline) [][2]float64 {
	pts := make([][2]float64, 0, len(lw.Vertices))
	for _, v := range lw.Vertices {
		pts = append(pts, [2]float64{v[0], v[1]})
	}
	return pts
}

func arcToPoints(a *entity.Arc, numSegments int) [][2]float64 {
	cx, cy := a.Circle.Center[0], a.Circle.Center[1]
	r := a.Circle.Radius
	startRad := a.Angle[0] * math.Pi / 180
	endRad := a.Angle[1] * math.Pi / 180
	if endRad <= startRad {
		endRad += 2 * math.Pi
	}

	pts := make([][2]float64, numSegments+1)
	for i := 0; i <= numSegments; i++ {
		t := float64(i) / float64(numSegments)
		angle := startRad + t*(endRad-startRad)
		pts[i] = [2]float64{cx + r*math.Cos(angle), cy + r*math.Sin(angle)}
	}
	return pts
}

func pointsToSegments(pts [][2]float64) []segment {
	segs := make([]segment, 0, len(pts)-1)
	for i := 0; i < len(pts)-1; i++ {
		segs = append(segs, segment{start: pts[i], end: pts[i+1]})
	}
	return segs
}

// chainSegments connects individual LINE/ARC segments into closed
// outlines by joining endpoints within tolerance, in the order the chains
// are found; the caller sorts them by area.
func chainSegments(segs []segment, tolerance float64) [][][2]float64 {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines [][][2]float64

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := [][2]float64{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]
			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		if len(chain) >= 3 && pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			chain = chain[:len(chain)-1]
		}
		if len(chain) >= 3 {
			outlines = append(outlines, chain)
		}
	}

	return outlines
}

func pointsClose(a, b [2]float64, tolerance float64) bool {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return math.Hypot(dx, dy) <= tolerance
}

func outlineArea(pts [][2]float64) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += pts[i][0] * pts[j][1]
		area -= pts[j][0] * pts[i][1]
	}
	return math.Abs(area) / 2
}

func boundingBox(pts [][2]float64) (minX, minY, maxX, maxY float64) {
	minX, minY = pts[0][0], pts[0][1]
	maxX, maxY = pts[0][0], pts[0][1]
	for _, p := range pts[1:] {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	return
}
