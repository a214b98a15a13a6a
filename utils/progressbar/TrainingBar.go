// Package progressbar implements functionality of printing a progress
// bar for a running training experiment to the terminal window
package progressbar

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// TrainingBar implements a concurrent progress bar for a training run.
// All updates are done in a separate goroutine so that the progress
// bar runs concurrently with training itself. Besides raw progress,
// the bar displays the latest epoch's metrics.
type TrainingBar struct {
	// width determines the number of characters wide that the progress
	// bar should be
	width float64

	// maxProgress determines the number of times Increment() should
	// be called before the progress bar reaches 100%.
	maxProgress float64

	// currentProgress measures the number of times Increment() was
	// called
	currentProgress float64

	// incrementEvent is an event channel. When an event appears on
	// this channel, currentProgress is incremented.
	incrementEvent chan float64

	// describeEvent carries the metric summary of the last finished
	// epoch
	describeEvent chan string

	closeEvent chan struct{}
	closed     bool
}

// NewTrainingBar returns a new progress bar that is width characters
// wide and reaches 100% capacity after max Increment() calls.
func NewTrainingBar(width, max int) *TrainingBar {
	return &TrainingBar{
		width:           float64(width),
		maxProgress:     float64(max),
		currentProgress: 0,
		incrementEvent:  make(chan float64),
		describeEvent:   make(chan string),
		closeEvent:      make(chan struct{}),
	}
}

// Increment increments the internal progress counter. Each time a
// training step is performed, Increment should be called.
func (p *TrainingBar) Increment() {
	go func() {
		if p.currentProgress < p.maxProgress && !p.closed {
			p.incrementEvent <- p.currentProgress
			p.currentProgress++
		}
	}()
}

// Describe updates the metric summary shown beside the bar with the
// metrics of the 1-indexed epoch that just finished.
func (p *TrainingBar) Describe(epoch int, metrics map[string]float64) {
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "epoch %d", epoch+1)
	for _, name := range names {
		fmt.Fprintf(&b, " | %v: %.4f", name, metrics[name])
	}

	go func() {
		if !p.closed {
			p.describeEvent <- b.String()
		}
	}()
}

// Close closes the progress bar so that it will no longer display to
// the screen. This function also cleans up any resources the progress
// bar is using.
func (p *TrainingBar) Close() {
	if p.closed {
		panic("close: close on closed progress bar")
	}
	close(p.closeEvent)
	p.closed = true
	fmt.Println() // Jump to next line after printed bar
}

// Display displays the progress bar on the screen. It should only be
// called once.
func (p *TrainingBar) Display() {
	go func() {
		currentProgress := p.currentProgress
		maxProgress := p.maxProgress
		width := p.width

		startTime := time.Now()
		description := ""

		var bar strings.Builder

		for {
			select {
			case currentProgress = <-p.incrementEvent:

			case description = <-p.describeEvent:

			case <-p.closeEvent:
				return
			}

			bar.Reset()
			bar.Write([]byte("|"))

			currentProg := currentProgress / maxProgress * width
			for i := 0.0; i < currentProg; i++ {
				bar.Write([]byte("█"))
			}
			for i := currentProg; i < width; i++ {
				bar.Write([]byte(" "))
			}
			bar.Write([]byte(fmt.Sprintf("| [%.2f%v | elapsed: %v]",
				currentProgress/maxProgress*100, "%",
				time.Since(startTime).Truncate(time.Second))))
			if description != "" {
				bar.Write([]byte(" " + description))
			}

			fmt.Printf("\n\033[1A\033[K%v", bar.String())
		}
	}()
}
