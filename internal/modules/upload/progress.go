package upload

import (
	"context"
	"sync"
	"time"
)

// Progress is cosmetic. It exists so a caller can render a moving bar
// while the slow model calls run; it says nothing about real completion.
type Stage int

const (
	StageAnalyzing Stage = iota
	StageIdentifying
	StageNeutralizing
	StageFinalizing
)

var stageInfo = map[Stage]struct {
	message string
	ceiling int
}{
	StageAnalyzing:    {"Analyzing Ghibli contamination...", 40},
	StageIdentifying:  {"Identifying fantasy elements...", 50},
	StageNeutralizing: {"Neutralizing excessive whimsy...", 90},
	StageFinalizing:   {"Finalizing clinical detoxification...", 100},
}

type Progress struct {
	mu      sync.Mutex
	stage   Stage
	percent int
}

func NewProgress() *Progress {
	return &Progress{stage: StageAnalyzing}
}

func (p *Progress) SetStage(stage Stage) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stage = stage
	floor := 0
	if stage > StageAnalyzing {
		floor = stageInfo[stage-1].ceiling
	}
	if p.percent < floor {
		p.percent = floor
	}
}

func (p *Progress) Snapshot() (percent int, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.percent, stageInfo[p.stage].message
}

// Tick creeps the percentage toward the current stage's ceiling until
// the context ends, rolling into the next message when a ceiling is
// reached. Finalizing is only ever entered by SetStage on real
// completion. Run it in its own goroutine.
func (p *Progress) Tick(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.mu.Lock()
			if p.percent < stageInfo[p.stage].ceiling {
				p.percent++
			} else if p.stage < StageNeutralizing {
				p.stage++
			}
			p.mu.Unlock()
		}
	}
}
