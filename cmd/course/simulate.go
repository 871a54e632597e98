package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hazard-course/internal/bounds"
	"github.com/vovakirdan/hazard-course/internal/config"
	"github.com/vovakirdan/hazard-course/internal/core"
	"github.com/vovakirdan/hazard-course/internal/level"
	"github.com/vovakirdan/hazard-course/internal/physics/world"
	"github.com/vovakirdan/hazard-course/internal/session"
)

var flagRuns int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run an autopilot through generated courses",
	Long: `Builds the course in the headless reference world and drives a probe
straight down it, jumping when blocked. Each run ends at the goal or when
the time limit is reached; the next run restarts with the next seed.

Examples:
  course simulate
  course simulate --runs 5 --difficulty easy
  course simulate --seed 3 --log-level debug`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagRuns, "runs", 1, "Number of runs")
}

type runResult struct {
	Seed     int64
	Hazards  int
	Finished bool
	Elapsed  time.Duration
	Falls    int
	Frames   int
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if flagRuns < 1 {
		return fmt.Errorf("--runs must be at least 1")
	}

	results, err := simulate(cfg, flagRuns, newLogger(cfg))
	if err != nil {
		return err
	}
	fmt.Println(renderResults(results))
	return nil
}

// simulate drives runs courses back to back through one session, using a
// manual clock so run times are simulated time.
func simulate(cfg config.Config, runs int, logger *log.Logger) ([]runResult, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return nil, err
	}

	rt := cfg.Runtime()
	frameTime := rt.TickInterval()
	maxFrames := int(cfg.Run.MaxSeconds * float64(rt.TickRate))

	clock := core.NewManualClock(time.Unix(0, 0))
	sess := session.New(clock, rt.Count, rt.Seed)
	// restarts keep the block count, so the first course sizes the world
	w := world.New(world.Options{
		Depth:     bounds.Span(rt.Count + 2),
		Gravity:   cfg.Physics.Gravity,
		KillPlane: cfg.Physics.KillPlane,
		Logger:    logger.WithPrefix("world"),
	})

	var (
		probe  *world.Probe
		runner *level.Runner
		falls  int
	)
	runner, err = level.NewRunner(level.RunnerConfig{
		Session: sess,
		Palette: palette,
		Bridge:  w,
		Logger:  logger,
		OnFellOff: func() {
			falls++
			if start, err := startOf(runner); err == nil {
				probe.Respawn(start)
			}
		},
	})
	if err != nil {
		return nil, err
	}
	defer runner.Close()

	start, err := startOf(runner)
	if err != nil {
		return nil, err
	}
	probe = w.SpawnProbe(start)
	results := make([]runResult, 0, runs)

	for run := 0; run < runs; run++ {
		lvl := runner.Level()
		if lvl == nil {
			return results, runner.Err()
		}
		falls = 0
		res := runResult{Seed: lvl.Seed(), Hazards: len(lvl.Controllers())}

		sess.HandleInput(core.NewInputFrame(core.ActionForward))

		lastContacts := probe.Contacts()
		for res.Frames = 0; res.Frames < maxFrames; res.Frames++ {
			probe.Drive(0, -cfg.Probe.Speed)
			if c := probe.Contacts(); c > lastContacts+1 {
				probe.Jump(cfg.Probe.JumpSpeed)
			}
			lastContacts = probe.Contacts()

			clock.Advance(frameTime)
			runner.Tick(frameTime)

			if sess.Phase() == session.Ended {
				res.Finished = true
				break
			}
		}

		if !res.Finished {
			logger.Warn("run timed out", "seed", res.Seed, "frames", res.Frames)
			sess.End()
		}
		res.Elapsed = sess.Elapsed()
		res.Falls = falls
		results = append(results, res)

		logger.Info("run complete", "run", run+1, "seed", res.Seed, "finished", res.Finished,
			"time", session.FormatElapsed(res.Elapsed), "falls", res.Falls)

		sess.HandleInput(core.NewInputFrame(core.ActionRestart))
		start, err := startOf(runner)
		if err != nil {
			return results, err
		}
		probe.Respawn(start)
	}

	return results, nil
}

// startOf returns the spawn point of the runner's level. After a failed
// rebuild there is no level and the rebuild error is returned instead.
func startOf(runner *level.Runner) (core.Vec3, error) {
	lvl := runner.Level()
	if lvl == nil {
		if err := runner.Err(); err != nil {
			return core.Vec3{}, err
		}
		return core.Vec3{}, errors.New("simulate: no level built")
	}
	return lvl.Start(), nil
}

func renderResults(results []runResult) string {
	rows := make([][]string, 0, len(results))
	finished := 0
	for i, r := range results {
		status := "timeout"
		if r.Finished {
			status = "goal"
			finished++
		}
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Hazards),
			status,
			session.FormatElapsed(r.Elapsed),
			strconv.Itoa(r.Falls),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers("Run", "Seed", "Hazards", "Result", "Time", "Falls").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle.Padding(0, 1)
			}
			if col == 3 && rows[row][3] == "goal" {
				return hazardStyle.Foreground(lipgloss.Color("46"))
			}
			return cellStyle
		})

	summary := titleStyle.Render(fmt.Sprintf("%d of %d runs reached the goal", finished, len(results)))
	return lipgloss.JoinVertical(lipgloss.Left, summary, t.String())
}
