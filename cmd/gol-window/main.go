//go:build ebiten

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-gol/controller"
	"github.com/sheikhrachel/torus-gol/model"
	"github.com/sheikhrachel/torus-gol/utils"
)

const (
	frameRate = 60
	helpText  = "SPACE start/stop, R reset, LEFT/RIGHT tick rate, click toggles while stopped"
)

// window adapts a controller to the ebiten.Game interface
type window struct {
	ctrl     *controller.Controller
	cellSize int
	pacer    *utils.FixedStep
	logger   *log.Logger

	img *ebiten.Image
	buf []byte
}

func newWindow(config utils.Config, logger *log.Logger) (*window, error) {
	ctrl, err := controller.New(config.Width, config.Height)
	if err != nil {
		return nil, errors.Wrap(err, "[newWindow] failed to create controller")
	}
	if config.Pattern != "" {
		p, err := model.LookupPattern(config.Pattern)
		if err != nil {
			return nil, err
		}
		if err = ctrl.PlaceCentered(p); err != nil {
			return nil, err
		}
	}
	return &window{
		ctrl:     ctrl,
		cellSize: config.CellSize,
		pacer:    utils.NewFixedStep(config.TickRate),
		logger:   logger,
		img:      ebiten.NewImage(config.Width, config.Height),
		buf:      make([]byte, 4*config.Width*config.Height),
	}, nil
}

// Update handles input and advances the simulation at the current tick rate
func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		w.ctrl.StartStop()
		w.pacer.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		w.ctrl.Reset()
		w.pacer.SetRate(utils.DefaultTickRate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		w.pacer.SetRate(w.pacer.Rate() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		w.pacer.SetRate(w.pacer.Rate() + 1)
	}

	if !w.ctrl.Running() {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			px, py := ebiten.CursorPosition()
			x, y := cellAt(px, py, w.cellSize)
			if err := w.ctrl.ToggleCell(x, y); err != nil {
				w.logger.Printf("ignoring click: %v", err)
			}
		}
		return nil
	}

	if w.pacer.ShouldStep() {
		w.ctrl.Advance()
	}
	return nil
}

// Draw renders the board and the status line
func (w *window) Draw(screen *ebiten.Image) {
	fillRGBA(w.buf, w.ctrl.Frame())
	w.img.WritePixels(w.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.cellSize), float64(w.cellSize))
	screen.DrawImage(w.img, op)

	status := "Stopped"
	if w.ctrl.Running() {
		status = "Running"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Generation: %d   Status: %s   Tick Rate: %d",
		w.ctrl.Generation(), status, w.pacer.Rate()), 10, 10)
	if status == "Stopped" {
		ebitenutil.DebugPrintAt(screen, helpText, 10, screen.Bounds().Dy()-24)
	}
}

// Layout returns the logical screen size
func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	bw, bh := w.ctrl.Dimensions()
	return bw * w.cellSize, bh * w.cellSize
}

func main() {
	logger := log.New(os.Stderr, "[gol-window] ", log.Ldate|log.Ltime)

	config, err := utils.ParseConfig("gol-window", os.Args[1:], logger)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Fatalf("configuration: %+v", err)
	}

	w, err := newWindow(config, logger)
	if err != nil {
		logger.Fatalf("startup: %+v", err)
	}

	ebiten.SetWindowTitle("Conway's Game of Life")
	ebiten.SetTPS(frameRate)
	ebiten.SetWindowSize(config.Width*config.CellSize, config.Height*config.CellSize)

	if err = ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err)
	}
}
