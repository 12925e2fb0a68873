package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"cannons/internal/canvas"
	"cannons/internal/config"
	"cannons/internal/game"
	"cannons/internal/geom"
	"cannons/internal/raster"
)

type renderOptions struct {
	out    string
	algo   string
	size   string
	scale  int
	clip   string
	margin float64
	radius float64
}

func renderCmd() *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Rasterize a shape file to PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := renderFile(cfg, args[0], o); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", o.out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.out, "output", "o", "shapes.png", "output PNG file")
	f.StringVar(&o.algo, "algo", "", "line algorithm: "+algoNames()+" (default from config)")
	f.StringVar(&o.size, "size", "800x600", "canvas size WxH in pixels")
	f.IntVar(&o.scale, "scale", 1, "nearest-neighbour upscale factor")
	f.StringVar(&o.clip, "clip", "", "clip window x0,y0,x1,y1 in canvas pixels")
	f.Float64Var(&o.margin, "margin", 8, "margin around the shapes in pixels")
	f.Float64Var(&o.radius, "point-radius", 2, "circle radius for points, 0 for single pixels")
	return cmd
}

func renderFile(cfg config.Config, path string, o renderOptions) error {
	d, err := geom.Load(path)
	if err != nil {
		return err
	}
	w, h, err := parseSize(o.size)
	if err != nil {
		return err
	}
	st := geom.Style{Line: cfg.Render.Line, PointRadius: o.radius}
	if o.algo != "" {
		if st.Line, err = raster.ParseLineAlgorithm(o.algo); err != nil {
			return err
		}
	}

	img := canvas.NewImage(w, h)
	colors := cfg.Render.Colors
	img.Clear(colors.Sky.Color)
	if o.clip != "" {
		vp, err := parseRect(o.clip)
		if err != nil {
			return err
		}
		st.Clip = &vp
		img.SetColor(colors.Clip.Color)
		_ = raster.New(img).Polygon(vp.Corners())
	}
	img.SetColor(colors.Outline.Color)
	geom.Draw(raster.New(img), d, geom.Fit(d.BBox, w, h, o.margin), st)
	return img.SavePNG(o.out, o.scale)
}

type snapshotOptions struct {
	out   string
	ticks int
	scale int
}

func snapshotCmd() *cobra.Command {
	var o snapshotOptions
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render a game frame to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if err := snapshot(cfg, time.Now(), o); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", o.out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.out, "output", "o", "snapshot.png", "output PNG file")
	f.IntVar(&o.ticks, "ticks", 0, "simulate this many ticks without input first")
	f.IntVar(&o.scale, "scale", 1, "nearest-neighbour upscale factor")
	return cmd
}

func snapshot(cfg config.Config, now time.Time, o snapshotOptions) error {
	g := cfg.Game
	world := game.NewWorld(g, now)
	for range o.ticks {
		now = now.Add(g.TickInterval())
		world.Step(now, game.Input{})
	}
	w, h := int(g.Width)+1, int(g.Height)+1
	img := canvas.NewImage(w, h)
	if err := game.NewRenderer(cfg.Render).Draw(img, world, game.FitTransform(g.Width, g.Height, w, h)); err != nil {
		return err
	}
	return img.SavePNG(o.out, o.scale)
}

func algoNames() string {
	var names []string
	for _, a := range raster.LineAlgorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

// parseSize parses "WxH".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WxH", s)
	}
	w, err1 := strconv.Atoi(strings.TrimSpace(ws))
	h, err2 := strconv.Atoi(strings.TrimSpace(hs))
	if err1 != nil || err2 != nil || w < 1 || h < 1 {
		return 0, 0, fmt.Errorf("size %q: want positive WxH", s)
	}
	return w, h, nil
}

// parseRect parses "x0,y0,x1,y1" into a canonical rectangle.
func parseRect(s string) (raster.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return raster.Rect{}, fmt.Errorf("clip %q: want x0,y0,x1,y1", s)
	}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return raster.Rect{}, fmt.Errorf("clip %q: %w", s, err)
		}
		v[i] = f
	}
	return raster.Rect{XMin: v[0], YMin: v[1], XMax: v[2], YMax: v[3]}.Canon(), nil
}
