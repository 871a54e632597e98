package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/hazard-course/internal/bounds"
	"github.com/vovakirdan/hazard-course/internal/config"
	"github.com/vovakirdan/hazard-course/internal/course"
	"github.com/vovakirdan/hazard-course/internal/motion"
	"github.com/vovakirdan/hazard-course/internal/physics"
)

var flagFormat string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print a generated course layout",
	Long: `Generates the course for the configured count, palette and seed and
prints its blocks, obstacle parameters and bounds.

Examples:
  course layout                       # YAML on stdout
  course layout --format table        # Styled table
  course layout --seed 7 --difficulty marathon`,
	RunE: runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format (yaml or table)")
}

type layoutDoc struct {
	Seed   int64      `yaml:"seed"`
	Count  int        `yaml:"count"`
	Blocks []blockDoc `yaml:"blocks"`
	Bounds boundsDoc  `yaml:"bounds"`
}

type blockDoc struct {
	Index           int        `yaml:"index"`
	Kind            string     `yaml:"kind"`
	Position        [3]float64 `yaml:"position,flow"`
	AngularVelocity float64    `yaml:"angular_velocity,omitempty"`
	PhaseOffset     float64    `yaml:"phase_offset,omitempty"`
}

type boundsDoc struct {
	LeftWall  colliderDoc `yaml:"left_wall"`
	RightWall colliderDoc `yaml:"right_wall"`
	EndWall   colliderDoc `yaml:"end_wall"`
	Floor     colliderDoc `yaml:"floor"`
}

type colliderDoc struct {
	Position [3]float64 `yaml:"position,flow"`
	Size     [3]float64 `yaml:"size,flow"`
	Friction float64    `yaml:"friction"`
}

func buildLayout(cfg config.Config) (layoutDoc, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return layoutDoc{}, err
	}
	blocks, err := course.Generate(cfg.Course.Count, palette, cfg.Course.Seed)
	if err != nil {
		return layoutDoc{}, err
	}
	set, err := bounds.Build(len(blocks))
	if err != nil {
		return layoutDoc{}, err
	}

	doc := layoutDoc{Seed: cfg.Course.Seed, Count: cfg.Course.Count}
	for _, b := range blocks {
		bd := blockDoc{Index: b.Index, Kind: b.Kind.String(), Position: b.Position}
		if b.Kind.IsHazard() {
			p := motion.ParamsFor(cfg.Course.Seed, b.Index, b.Kind.Hazard)
			bd.AngularVelocity = p.AngularVelocity
			bd.PhaseOffset = p.PhaseOffset
		}
		doc.Blocks = append(doc.Blocks, bd)
	}
	doc.Bounds = boundsDoc{
		LeftWall:  colliderOf(set.LeftWall),
		RightWall: colliderOf(set.RightWall),
		EndWall:   colliderOf(set.EndWall),
		Floor:     colliderOf(set.Floor),
	}
	return doc, nil
}

func colliderOf(c physics.ColliderDesc) colliderDoc {
	return colliderDoc{Position: c.Offset, Size: c.Size(), Friction: c.Friction}
}

func runLayout(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	doc, err := buildLayout(cfg)
	if err != nil {
		return err
	}

	switch flagFormat {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(doc)
	case "table":
		fmt.Println(renderLayout(doc))
		return nil
	default:
		return fmt.Errorf("unknown format %q (want yaml or table)", flagFormat)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	hazardStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("202")).Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true)
)

func renderLayout(doc layoutDoc) string {
	rows := make([][]string, 0, len(doc.Blocks))
	for _, b := range doc.Blocks {
		param := ""
		switch {
		case b.AngularVelocity != 0:
			param = fmt.Sprintf("ω %+.3f rad/s", b.AngularVelocity)
		case b.PhaseOffset != 0:
			param = fmt.Sprintf("φ %.3f rad", b.PhaseOffset)
		}
		rows = append(rows, []string{
			strconv.Itoa(b.Index),
			b.Kind,
			strconv.FormatFloat(b.Position[2], 'f', 1, 64),
			param,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("#", "Block", "Z", "Motion").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 1 && rows[row][3] != "" {
				return hazardStyle
			}
			return cellStyle
		})

	title := titleStyle.Render(fmt.Sprintf("Course seed %d, %d hazards", doc.Seed, doc.Count))
	walls := fmt.Sprintf("Walls %.1f long, end wall at z=%.1f", doc.Bounds.LeftWall.Size[2], doc.Bounds.EndWall.Position[2])
	return lipgloss.JoinVertical(lipgloss.Left, title, t.String(), walls)
}
