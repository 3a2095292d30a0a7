package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/foodchain/traits"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkExtinction      BookmarkType = "extinction"
	BookmarkPopulationCrash BookmarkType = "population_crash"
	BookmarkRecovery        BookmarkType = "recovery"
	BookmarkDietTakeover    BookmarkType = "diet_takeover"
	BookmarkStableEcosystem BookmarkType = "stable_ecosystem"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type" json:"type"`
	Day         int          `csv:"day" json:"day"`
	Description string       `csv:"description" json:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"day", b.Day,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in the simulation.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	recentMin          int  // minimum living count since the last recovery
	recentPeak         int  // peak living count since the last crash
	dominant           int  // diet index currently holding a takeover, -1 if none
	stableWindowsCount int  // consecutive windows with a stable population
	extinct            bool // last window ended extinct
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for stable ecosystem detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
		recentMin:   -1,
		dominant:    -1,
	}
}

// Check analyzes the latest window and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if b := bd.checkExtinction(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkCrash(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkRecovery(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}
	if b := bd.checkDietTakeover(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	bd.addToHistory(stats)

	if b := bd.checkStableEcosystem(stats); b != nil {
		bookmarks = append(bookmarks, *b)
	}

	if stats.LivingMin < bd.recentMin || bd.recentMin < 0 {
		bd.recentMin = stats.LivingMin
	}
	if stats.LivingMax > bd.recentPeak {
		bd.recentPeak = stats.LivingMax
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

// getHistory returns the recorded windows, oldest first.
func (bd *BookmarkDetector) getHistory() []WindowStats {
	if !bd.historyFull {
		return bd.history[:bd.historyIdx]
	}
	out := make([]WindowStats, 0, bd.historySize)
	out = append(out, bd.history[bd.historyIdx:]...)
	return append(out, bd.history[:bd.historyIdx]...)
}

func (bd *BookmarkDetector) checkExtinction(stats WindowStats) *Bookmark {
	wasExtinct := bd.extinct
	bd.extinct = stats.Living == 0
	if stats.ExtinctDays == 0 || wasExtinct {
		return nil
	}
	return &Bookmark{
		Type:        BookmarkExtinction,
		Day:         stats.WindowEndDay,
		Description: fmt.Sprintf("Population went extinct %d time(s) in days %d-%d", stats.ExtinctDays, stats.WindowStartDay, stats.WindowEndDay),
	}
}

func (bd *BookmarkDetector) checkCrash(stats WindowStats) *Bookmark {
	if bd.recentPeak < 10 {
		return nil
	}

	drop := 1.0 - float64(stats.Living)/float64(bd.recentPeak)
	if drop > 0.5 {
		oldPeak := bd.recentPeak
		bd.recentPeak = stats.Living
		return &Bookmark{
			Type:        BookmarkPopulationCrash,
			Day:         stats.WindowEndDay,
			Description: fmt.Sprintf("Population crashed %.0f%% from peak %d to %d", drop*100, oldPeak, stats.Living),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkRecovery(stats WindowStats) *Bookmark {
	if bd.recentMin < 0 || bd.recentMin > 3 {
		return nil
	}

	threshold := bd.recentMin * 3
	if stats.Living >= threshold && stats.Living >= 9 {
		oldMin := bd.recentMin
		bd.recentMin = stats.Living
		return &Bookmark{
			Type:        BookmarkRecovery,
			Day:         stats.WindowEndDay,
			Description: fmt.Sprintf("Population recovered from %d to %d", oldMin, stats.Living),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkDietTakeover(stats WindowStats) *Bookmark {
	if stats.Living < 10 {
		bd.dominant = -1
		return nil
	}

	for i, n := range stats.DietCounts() {
		share := float64(n) / float64(stats.Living)
		if share < 0.8 {
			if bd.dominant == i {
				bd.dominant = -1
			}
			continue
		}
		if bd.dominant == i {
			return nil
		}
		bd.dominant = i
		return &Bookmark{
			Type:        BookmarkDietTakeover,
			Day:         stats.WindowEndDay,
			Description: fmt.Sprintf("%ss make up %.0f%% of %d living", traits.Diets[i], share*100, stats.Living),
		}
	}
	return nil
}

func (bd *BookmarkDetector) checkStableEcosystem(stats WindowStats) *Bookmark {
	if stats.Living < 10 || stats.DietsPresent() < 3 {
		bd.stableWindowsCount = 0
		return nil
	}

	history := bd.getHistory()
	if len(history) < 4 {
		return nil
	}

	recent := history[len(history)-4:]
	counts := make([]float64, len(recent))
	for i, h := range recent {
		counts[i] = float64(h.Living)
	}
	mean, std := stat.PopMeanStdDev(counts, nil)

	if mean > 0 && std/mean < 0.2 {
		bd.stableWindowsCount++
	} else {
		bd.stableWindowsCount = 0
	}

	if bd.stableWindowsCount == 5 { // trigger exactly once at 5 windows
		return &Bookmark{
			Type:        BookmarkStableEcosystem,
			Day:         stats.WindowEndDay,
			Description: fmt.Sprintf("Stable ecosystem of %d living across %d diets over 5+ windows", stats.Living, stats.DietsPresent()),
		}
	}
	return nil
}
