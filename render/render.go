package render

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/fourbar/linkage"
	"github.com/katalvlaran/fourbar/sweep"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNonFinitePose is returned when a pose angle is NaN or ±Inf.
var ErrNonFinitePose = errors.New("render: pose angles must be finite")

// Figure size and the margin added around the joints, as a share of the
// longest link.
const (
	FigureSize = 8 * vg.Inch
	margin     = 0.15
)

// link styling in draw order: crank, coupler, rocker, ground.
var linkStyles = [4]struct {
	name  string
	color color.Color
	width vg.Length
}{
	{"Link a (crank)", color.RGBA{R: 31, G: 119, B: 180, A: 255}, vg.Points(3)},
	{"Link b (coupler)", color.RGBA{R: 214, G: 39, B: 40, A: 255}, vg.Points(3)},
	{"Link c (rocker)", color.RGBA{R: 44, G: 160, B: 44, A: 255}, vg.Points(3)},
	{"Link d (ground)", color.Black, vg.Points(4)},
}

// Figure is one rendered assembly branch.
type Figure struct {
	Config linkage.Configuration
	Pose   linkage.Pose
	Plot   *plot.Plot
}

// Plot draws ls in pose p under the given title.
func Plot(ls linkage.LinkSet, p linkage.Pose, title string) (*plot.Plot, error) {
	for _, v := range []float64{p.Deg2, p.Deg3, p.Deg4} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrNonFinitePose
		}
	}

	j := ls.Joints(p)
	segments := [4][2]linkage.Point{
		{j.A, j.B},
		{j.B, j.C},
		{j.C, j.D},
		{j.A, j.D},
	}

	pl := plot.New()
	pl.Title.Text = fmt.Sprintf("4-Bar Linkage - %s\n(deg2=%.2f°, deg3=%.2f°, deg4=%.2f°)",
		title, p.Deg2, p.Deg3, p.Deg4)
	pl.X.Label.Text = "Distance"
	pl.Y.Label.Text = "Distance"
	pl.Legend.Top = true
	pl.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 220}
	grid.Horizontal.Color = color.Gray{Y: 220}
	pl.Add(grid)

	for i, seg := range segments {
		line, err := plotter.NewLine(plotter.XYs{
			{X: seg[0].X, Y: seg[0].Y},
			{X: seg[1].X, Y: seg[1].Y},
		})
		if err != nil {
			return nil, fmt.Errorf("render: %s: %w", linkStyles[i].name, err)
		}
		line.LineStyle.Color = linkStyles[i].color
		line.LineStyle.Width = linkStyles[i].width
		pl.Add(line)
		pl.Legend.Add(linkStyles[i].name, line)
	}

	pins := plotter.XYs{
		{X: j.A.X, Y: j.A.Y},
		{X: j.B.X, Y: j.B.Y},
		{X: j.C.X, Y: j.C.Y},
		{X: j.D.X, Y: j.D.Y},
	}
	joints, err := plotter.NewScatter(pins)
	if err != nil {
		return nil, fmt.Errorf("render: joints: %w", err)
	}
	joints.GlyphStyle.Shape = draw.CircleGlyph{}
	joints.GlyphStyle.Radius = vg.Points(5)
	joints.GlyphStyle.Color = color.Black
	pl.Add(joints)

	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: pins, Labels: []string{"A", "B", "C", "D"}})
	if err != nil {
		return nil, fmt.Errorf("render: labels: %w", err)
	}
	labels.Offset = vg.Point{X: vg.Points(6), Y: vg.Points(6)}
	pl.Add(labels)

	squareAxes(pl, ls.Longest()*margin)

	return pl, nil
}

// squareAxes widens the shorter axis so both share one scale on a square
// canvas, after padding each side by pad.
func squareAxes(pl *plot.Plot, pad float64) {
	xmin, xmax := pl.X.Min-pad, pl.X.Max+pad
	ymin, ymax := pl.Y.Min-pad, pl.Y.Max+pad
	span := math.Max(xmax-xmin, ymax-ymin)
	cx, cy := (xmin+xmax)/2, (ymin+ymax)/2

	pl.X.Min, pl.X.Max = cx-span/2, cx+span/2
	pl.Y.Min, pl.Y.Max = cy-span/2, cy+span/2
}

// Configurations renders every assembly branch of s that has a full pose,
// in Open, Crossed order.
func Configurations(ls linkage.LinkSet, s sweep.Sample) ([]Figure, error) {
	var figs []Figure
	for _, cfg := range linkage.Configurations {
		pose, ok := s.Pose(cfg)
		if !ok {
			continue
		}
		pl, err := Plot(ls, pose, configTitle(cfg))
		if err != nil {
			return nil, err
		}
		figs = append(figs, Figure{Config: cfg, Pose: pose, Plot: pl})
	}

	return figs, nil
}

// Save writes pl to path; the extension picks the format (png, svg, pdf, …).
func Save(pl *plot.Plot, path string) error {
	if err := pl.Save(FigureSize, FigureSize, path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}

	return nil
}

// WriteTo encodes pl in format ("png", "svg", …) to w.
func WriteTo(pl *plot.Plot, w io.Writer, format string) error {
	wt, err := pl.WriterTo(FigureSize, FigureSize, format)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if _, err = wt.WriteTo(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return nil
}

// SaveConfigurations renders the branches of s into dir as PNG files
// named linkage_<config>_deg2_<angle>.png and returns their paths.
func SaveConfigurations(dir string, ls linkage.LinkSet, s sweep.Sample) ([]string, error) {
	figs, err := Configurations(ls, s)
	if err != nil {
		return nil, err
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	paths := make([]string, 0, len(figs))
	for _, fig := range figs {
		name := fmt.Sprintf("linkage_%s_deg2_%g.png", fig.Config, s.Deg2)
		path := filepath.Join(dir, name)
		if err = Save(fig.Plot, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

func configTitle(cfg linkage.Configuration) string {
	if cfg == linkage.Crossed {
		return "Crossed Configuration"
	}

	return "Open Configuration"
}
