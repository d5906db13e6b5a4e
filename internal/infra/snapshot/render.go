package snapshot

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"koerplan/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
	"github.com/pkg/errors"
)

const (
	marginRatio = 0.08
	lineWidth   = 4
	dashOn      = 12.0
	dashOff     = 8.0
	markerSize  = 5
)

var (
	background  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	routeColour = color.RGBA{R: 0x44, G: 0x44, B: 0xff, A: 0xff}
	startColour = color.RGBA{R: 0x2e, G: 0x9e, B: 0x44, A: 0xff}
	endColour   = color.RGBA{R: 0xd3, G: 0x2f, B: 0x2f, A: 0xff}
)

var errNothingToDraw = errors.New("no route geometry to draw")

// canvas maps Web Mercator coordinates onto an image
type canvas struct {
	img     *image.RGBA
	bound   orb.Bound
	scale   float64
	offsetX float64
	offsetY float64
}

// render draws every route onto a white width x height image
func render(routes []entity.RouteData, dashed bool, width, height int) (*image.RGBA, error) {
	paths := make([]orb.LineString, 0, len(routes))
	for _, route := range routes {
		path, err := route.Path()
		if err != nil {
			return nil, err
		}
		if len(path) == 0 {
			continue
		}
		paths = append(paths, project.LineString(path, project.WGS84.ToMercator))
	}
	if len(paths) == 0 {
		return nil, errNothingToDraw
	}

	c := newCanvas(paths, width, height)
	for _, path := range paths {
		c.drawPath(path, dashed)
	}
	for _, path := range paths {
		c.drawMarker(path[0], startColour)
		c.drawMarker(path[len(path)-1], endColour)
	}

	return c.img, nil
}

func newCanvas(paths []orb.LineString, width, height int) *canvas {
	bound := paths[0].Bound()
	for _, path := range paths[1:] {
		bound = bound.Union(path.Bound())
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: background}, image.Point{}, draw.Src)

	usableW := float64(width) * (1 - 2*marginRatio)
	usableH := float64(height) * (1 - 2*marginRatio)
	dx := bound.Max.X() - bound.Min.X()
	dy := bound.Max.Y() - bound.Min.Y()

	scale := 1.0
	switch {
	case dx > 0 && dy > 0:
		scale = math.Min(usableW/dx, usableH/dy)
	case dx > 0:
		scale = usableW / dx
	case dy > 0:
		scale = usableH / dy
	}

	return &canvas{
		img:     img,
		bound:   bound,
		scale:   scale,
		offsetX: (float64(width) - dx*scale) / 2,
		offsetY: (float64(height) - dy*scale) / 2,
	}
}

// toPixel converts a Mercator point; y grows downwards in the image
func (c *canvas) toPixel(p orb.Point) (float64, float64) {
	x := (p.X()-c.bound.Min.X())*c.scale + c.offsetX
	y := (c.bound.Max.Y()-p.Y())*c.scale + c.offsetY

	return x, y
}

func (c *canvas) drawPath(path orb.LineString, dashed bool) {
	travelled := 0.0
	for i := 1; i < len(path); i++ {
		x0, y0 := c.toPixel(path[i-1])
		x1, y1 := c.toPixel(path[i])
		travelled = c.drawSegment(x0, y0, x1, y1, travelled, dashed)
	}
}

// drawSegment steps along the segment one pixel at a time, returning the
// distance travelled so dashes continue across segments
func (c *canvas) drawSegment(x0, y0, x1, y1, travelled float64, dashed bool) float64 {
	length := math.Hypot(x1-x0, y1-y0)
	steps := int(math.Ceil(length))
	if steps == 0 {
		c.stamp(x0, y0)

		return travelled
	}

	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		pos := travelled + t*length
		if dashed && math.Mod(pos, dashOn+dashOff) >= dashOn {
			continue
		}
		c.stamp(x0+(x1-x0)*t, y0+(y1-y0)*t)
	}

	return travelled + length
}

// stamp paints a square brush centred on the point
func (c *canvas) stamp(x, y float64) {
	half := lineWidth / 2
	cx, cy := int(math.Round(x)), int(math.Round(y))
	rect := image.Rect(cx-half, cy-half, cx-half+lineWidth, cy-half+lineWidth)
	draw.Draw(c.img, rect.Intersect(c.img.Bounds()), &image.Uniform{C: routeColour}, image.Point{}, draw.Src)
}

func (c *canvas) drawMarker(p orb.Point, col color.RGBA) {
	x, y := c.toPixel(p)
	cx, cy := int(math.Round(x)), int(math.Round(y))

	for dy := -markerSize; dy <= markerSize; dy++ {
		for dx := -markerSize; dx <= markerSize; dx++ {
			if dx*dx+dy*dy > markerSize*markerSize {
				continue
			}
			if image.Pt(cx+dx, cy+dy).In(c.img.Bounds()) {
				c.img.SetRGBA(cx+dx, cy+dy, col)
			}
		}
	}
}
