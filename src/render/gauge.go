package render

import (
	"fmt"
	"sync/atomic"
	"time"
)

const (
	gaugeFilledColor   = "#00f5a0"
	gaugeUnfilledColor = "#222"
)

var gaugeSeq atomic.Uint64

// nextGaugeID yields an identifier unique per render, so verdict cards stacked
// in the scroll history never collide on their gauge instances.
func nextGaugeID() string {
	return fmt.Sprintf("gauge-%d-%d", time.Now().UnixMilli(), gaugeSeq.Add(1))
}

// gaugeSVG draws the semicircular confidence gauge. pathLength normalizes the
// arc to 100 units, so the dash pattern is exactly the confidence split: the
// filled arc covers confidence units, the remainder stays the neutral track.
func gaugeSVG(id string, confidence int) string {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 100 {
		confidence = 100
	}
	const arc = `M 10 50 A 40 40 0 0 1 90 50`
	return fmt.Sprintf(
		`<svg id="%s" viewBox="0 0 100 60" width="100" height="60" data-filled="%d" data-unfilled="%d">`+
			`<path d="%s" fill="none" stroke="%s" stroke-width="12"/>`+
			`<path d="%s" fill="none" stroke="%s" stroke-width="12" pathLength="100" stroke-dasharray="%d %d"/>`+
			`</svg>`,
		id, confidence, 100-confidence,
		arc, gaugeUnfilledColor,
		arc, gaugeFilledColor, confidence, 100-confidence,
	)
}
