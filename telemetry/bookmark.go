package telemetry

import (
	"fmt"
	"log/slog"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkScatter   BookmarkType = "scatter"
	BookmarkFullTank  BookmarkType = "full_tank"
	BookmarkEmptyTank BookmarkType = "empty_tank"
	BookmarkCalm      BookmarkType = "calm"
)

// calmWindows is how many quiet windows in a row make a calm bookmark.
const calmWindows = 5

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector flags notable moments in the swarm from window stats.
type BookmarkDetector struct {
	maxFish int

	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	wasFull   bool
	lastCount int
	calmCount int
}

// NewBookmarkDetector creates a detector with the given history size for a
// tank holding at most maxFish.
func NewBookmarkDetector(historySize, maxFish int) *BookmarkDetector {
	if historySize < 3 {
		historySize = 3
	}
	return &BookmarkDetector{
		maxFish:     maxFish,
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		lastCount:   -1,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	// Scatter: the pointer pushed fish far more than usual
	if b := bd.checkScatter(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Full tank: reached the cap after being below it
	if b := bd.checkFullTank(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Empty tank: the last fish swam out
	if b := bd.checkEmptyTank(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	// Calm: fish present and untouched over several windows
	if b := bd.checkCalm(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)
	bd.lastCount = stats.FishCount

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkScatter(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.AvoidFrames
	}
	avg := float64(total) / float64(len(history))

	if float64(stats.AvoidFrames) > avg*2.0 && stats.AvoidFrames >= 30 {
		desc := fmt.Sprintf("Avoid frames %d vs average %.1f", stats.AvoidFrames, avg)
		if avg > 0 {
			desc = fmt.Sprintf("Avoid frames %d is %.1fx average (%.1f)", stats.AvoidFrames, float64(stats.AvoidFrames)/avg, avg)
		}
		return &Bookmark{
			Type:        BookmarkScatter,
			Tick:        stats.WindowEndTick,
			Description: desc,
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkFullTank(stats WindowStats) *Bookmark {
	full := bd.maxFish > 0 && stats.FishCount >= bd.maxFish
	defer func() { bd.wasFull = full }()

	if full && !bd.wasFull {
		return &Bookmark{
			Type:        BookmarkFullTank,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Tank reached its cap of %d fish", bd.maxFish),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkEmptyTank(stats WindowStats) *Bookmark {
	if stats.FishCount == 0 && bd.lastCount > 0 {
		return &Bookmark{
			Type:        BookmarkEmptyTank,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Tank emptied from %d fish", bd.lastCount),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkCalm(stats WindowStats) *Bookmark {
	if stats.FishCount == 0 || stats.AvoidFrames > 0 {
		bd.calmCount = 0
		return nil
	}

	bd.calmCount++
	if bd.calmCount == calmWindows { // trigger once per calm stretch
		return &Bookmark{
			Type:        BookmarkCalm,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("%d fish undisturbed over %d windows", stats.FishCount, calmWindows),
		}
	}
	return nil
}
