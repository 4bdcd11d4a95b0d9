package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"math"
	"sync"

	"github.com/2beens/sportai/internal/posture"

	log "github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	defaultWidth  = 640
	defaultHeight = 480
	jointRadius   = 4
	lineHeight    = 18
)

var (
	colorBackground = color.RGBA{R: 24, G: 24, B: 28, A: 255}
	colorLimb       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorJoint      = color.RGBA{R: 0, G: 200, B: 255, A: 255}
	colorText       = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	colorGood       = color.RGBA{R: 0, G: 220, B: 0, A: 255}
	colorBad        = color.RGBA{R: 255, G: 40, B: 40, A: 255}
	colorAlarm      = color.RGBA{R: 255, G: 200, B: 0, A: 255}
)

// Overlay draws every processed frame (skeleton, angle readout and warning)
// and keeps the latest one JPEG encoded.
type Overlay struct {
	quality int

	mu     sync.RWMutex
	latest []byte
}

func NewOverlay(quality int) *Overlay {
	if quality <= 0 || quality > 100 {
		quality = 75
	}
	return &Overlay{quality: quality}
}

// Consume renders the report. Failures are logged, never returned.
func (o *Overlay) Consume(report posture.FrameReport) {
	img := Draw(report)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: o.quality}); err != nil {
		log.WithField("component", "overlay").Errorf("encode frame %d: %s", report.Seq, err)
		return
	}

	o.mu.Lock()
	o.latest = buf.Bytes()
	o.mu.Unlock()
}

func (o *Overlay) LatestJPEG() ([]byte, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.latest, o.latest != nil
}

// Draw renders the report onto a new canvas of the frame size.
func Draw(report posture.FrameReport) *image.RGBA {
	w, h := report.Width, report.Height
	if w <= 0 || h <= 0 {
		w, h = defaultWidth, defaultHeight
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(colorBackground), image.Point{}, draw.Src)

	for _, limb := range posture.Skeleton {
		a, okA := report.Keypoints[limb[0]]
		b, okB := report.Keypoints[limb[1]]
		if okA && okB {
			drawLine(img, a, b, colorLimb)
		}
	}
	for _, p := range report.Keypoints {
		drawJoint(img, p, colorJoint)
	}

	y := lineHeight
	drawText(img, 10, y, report.Mode.DisplayName(), colorText)

	if !report.PoseDetected {
		y += lineHeight
		drawText(img, 10, y, "No pose detected", colorText)
		return img
	}

	y += lineHeight
	label := "Shoulder"
	if report.Mode == posture.ModeHandCurl {
		label = "Elbow"
	}
	drawText(img, 10, y, fmt.Sprintf("%s angle: %.0f", label, report.RelevantAngle()), colorText)

	y += lineHeight
	warningColor := colorGood
	if report.Incorrect {
		warningColor = colorBad
	}
	drawText(img, 10, y, report.Warning, warningColor)

	y += lineHeight
	drawText(img, 10, y, fmt.Sprintf("Bad frames: %d/%d", report.Counter, posture.AlarmThreshold), colorText)

	if report.AlarmFired {
		drawText(img, w/2-20, h/2, "ALARM!", colorAlarm)
	}

	return img
}

func drawText(img *image.RGBA, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// drawLine clips the segment to the canvas, then rasterizes it with
// Bresenham. Segments entirely off the canvas draw nothing.
func drawLine(img *image.RGBA, from, to posture.Point, c color.Color) {
	x0, y0, x1, y1, ok := clipLine(img.Bounds(), from, to)
	if !ok {
		return
	}

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	e := dx + dy
	for {
		img.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipLine is Liang-Barsky against the pixel rectangle of r.
func clipLine(r image.Rectangle, from, to posture.Point) (x0, y0, x1, y1 int, ok bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}

	fx, fy := float64(from.X), float64(from.Y)
	dx, dy := float64(to.X-from.X), float64(to.Y-from.Y)
	minX, maxX := float64(r.Min.X), float64(r.Max.X-1)
	minY, maxY := float64(r.Min.Y), float64(r.Max.Y-1)

	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, fx - minX},
		{dx, maxX - fx},
		{-dy, fy - minY},
		{dy, maxY - fy},
	}
	for _, edge := range edges {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}

	clamp := func(v, lo, hi float64) int {
		return int(math.Round(math.Max(lo, math.Min(hi, v))))
	}
	x0 = clamp(fx+t0*dx, minX, maxX)
	y0 = clamp(fy+t0*dy, minY, maxY)
	x1 = clamp(fx+t1*dx, minX, maxX)
	y1 = clamp(fy+t1*dy, minY, maxY)
	return x0, y0, x1, y1, true
}

func drawJoint(img *image.RGBA, p posture.Point, c color.Color) {
	for dy := -jointRadius; dy <= jointRadius; dy++ {
		for dx := -jointRadius; dx <= jointRadius; dx++ {
			if dx*dx+dy*dy <= jointRadius*jointRadius {
				img.Set(p.X+dx, p.Y+dy, c)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
