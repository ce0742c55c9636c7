// Package commands implements luzcli's kong subcommands, each wrapping
// one engine operation: mixing coat levels forward to RGB, separating
// an RGB target back into coat levels, and reporting the active
// configuration (spec.md §6's pixel-filter interface, driven here from
// the command line instead of a GEGL pixel buffer).
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hodefoting/luz"
)

// GlobalConfig carries flags shared by every subcommand.
type GlobalConfig struct {
	Config string `name:"config" help:"Path to a luz config file (defaults to the built-in bootstrap config)" type:"existingfile"`
	JSON   bool   `name:"json" help:"Emit machine-readable JSON output"`
}

func (c *GlobalConfig) loadEngine() (*luz.Engine, error) {
	var cfg string
	if c.Config != "" {
		data, err := os.ReadFile(c.Config)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", c.Config, err)
		}
		cfg = string(data)
	}
	return luz.New(cfg), nil
}

// MixCmd forward-evaluates a coat-levels tuple to device RGB.
type MixCmd struct {
	Levels []float64 `arg:"" help:"Coat levels in [0,1], one per declared coat"`
}

func (c *MixCmd) Run(g *GlobalConfig) error {
	e, err := g.loadEngine()
	if err != nil {
		return err
	}

	logger := log.Default()
	logger.Debug("mixing coats", "count", len(c.Levels))

	levels := make([]float32, len(c.Levels))
	for i, v := range c.Levels {
		levels[i] = float32(v)
	}

	r, gg, b := e.CoatsToRGB(levels)
	return printRGB(g, r, gg, b)
}

// SeparateCmd resolves a device RGB target to coat levels via the engine's LUT.
type SeparateCmd struct {
	R float64 `arg:"" help:"Red in [0,1]"`
	G float64 `arg:"" help:"Green in [0,1]"`
	B float64 `arg:"" help:"Blue in [0,1]"`
}

func (c *SeparateCmd) Run(g *GlobalConfig) error {
	e, err := g.loadEngine()
	if err != nil {
		return err
	}

	logger := log.Default()
	logger.Debug("separating rgb", "r", c.R, "g", c.G, "b", c.B)

	levels := e.RGBToCoats(float32(c.R), float32(c.G), float32(c.B))
	return printLevels(g, levels)
}

// InfoCmd reports the active engine's coat count, coverage limit and
// tuning diagnostics.
type InfoCmd struct{}

func (c *InfoCmd) Run(g *GlobalConfig) error {
	e, err := g.loadEngine()
	if err != nil {
		return err
	}

	tuningErr := e.DiagnoseTuning()
	tuningStatus := "ok"
	if tuningErr != nil {
		tuningStatus = tuningErr.Error()
	}

	if g.JSON {
		out, err := json.MarshalIndent(map[string]any{
			"coat_count":     e.GetCoatCount(),
			"coverage_limit": e.GetCoverageLimit(),
			"tuning":         tuningStatus,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	fmt.Printf("coats: %d\ncoverage limit: %s\ntuning: %s\n",
		e.GetCoatCount(), strconv.FormatFloat(float64(e.GetCoverageLimit()), 'f', 3, 32), tuningStatus)
	return nil
}

func printRGB(g *GlobalConfig, r, gg, b float32) error {
	if g.JSON {
		out, err := json.Marshal(map[string]float32{"r": r, "g": gg, "b": b})
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Printf("%s\n", formatFloats([]float32{r, gg, b}))
	return nil
}

func printLevels(g *GlobalConfig, levels []float32) error {
	if g.JSON {
		out, err := json.Marshal(levels)
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}
	fmt.Printf("%s\n", formatFloats(levels))
	return nil
}

func formatFloats(vs []float32) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = strconv.FormatFloat(float64(v), 'f', 4, 32)
	}
	return strings.Join(parts, " ")
}
