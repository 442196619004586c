package kolor

import (
	"fmt"

	"github.com/vovakirdan/kolor/internal/core"
)

// Layout constants, in terminal cells.
const (
	MinScreenW = 56
	MinScreenH = 22

	swatchW    = 20
	swatchH    = 6
	optionW    = 10
	optionH    = 4
	optionGap  = 4
	titleText  = "K O L O R"
	promptText = "What KOLOR is this?"
)

// Layout holds where each element goes on a screen of a given size.
type Layout struct {
	TooSmall bool
	TitleY   int
	HUDY     int
	PromptY  int
	Swatch   core.Rect
	Options  [OptionCount]core.Rect
	MessageY int
}

// NewLayout computes the layout for a w x h screen.
func NewLayout(w, h int) Layout {
	if w < MinScreenW || h < MinScreenH {
		return Layout{TooSmall: true}
	}

	// Content block is MinScreenH rows tall, vertically centered
	top := (h - MinScreenH) / 2
	l := Layout{
		TitleY:  top + 1,
		HUDY:    top + 3,
		PromptY: top + 5,
	}
	l.Swatch = core.CenteredIn(core.NewRect(0, top+7, w, swatchH), swatchW, swatchH)

	rowW := OptionCount*optionW + (OptionCount-1)*optionGap
	x := (w - rowW) / 2
	y := l.Swatch.Bottom() + 2
	for i := range l.Options {
		l.Options[i] = core.NewRect(x+i*(optionW+optionGap), y, optionW, optionH)
	}
	l.MessageY = y + optionH + 2
	return l
}

// OptionAt returns the option index under screen cell (x, y), or -1.
func (l Layout) OptionAt(x, y int) int {
	if l.TooSmall {
		return -1
	}
	for i, r := range l.Options {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// HUD returns the status line: time, round, score and best.
func HUD(s Snapshot) string {
	return fmt.Sprintf("TIME: %.1fs   ROUND: %d / %d   SCORE: %d   BEST: %d",
		s.TimeRemaining, s.Round, s.Rounds, s.Score, s.BestScore)
}

var (
	titleInk = core.Ink{Fg: core.ColorWhite, HasFg: true, Bold: true}
	dimInk   = core.FgInk(core.ColorGray)
	plainInk = core.Ink{}
)

// labelInk picks black or white text, whichever reads better on bg.
func labelInk(bg core.Color) core.Ink {
	fg := core.ColorWhite
	if bg.Luminance() > 0.5 {
		fg = core.ColorBlack
	}
	return core.Ink{Fg: fg, Bg: bg, HasFg: true, HasBg: true, Bold: true}
}

// feedbackInk colors the feedback message.
func feedbackInk(f Feedback) core.Ink {
	switch f {
	case FeedbackCorrect:
		return core.Ink{Fg: core.ColorGreen, HasFg: true, Bold: true}
	case FeedbackWrong:
		return core.Ink{Fg: core.ColorRed, HasFg: true, Bold: true}
	case FeedbackTimeout:
		return core.Ink{Fg: core.ColorAmber, HasFg: true, Bold: true}
	default:
		return plainInk
	}
}

// Render draws the snapshot into dst. cursor is the highlighted option
// (-1 for none). The screen is cleared first.
func Render(dst *core.Screen, s Snapshot, cursor int) {
	dst.Clear()
	l := NewLayout(dst.Width(), dst.Height())

	if l.TooSmall {
		renderTooSmall(dst)
		return
	}

	dst.DrawTextCentered(l.TitleY, titleText, titleInk)
	dst.DrawTextCentered(l.HUDY, HUD(s), plainInk)

	if s.Over {
		renderGameOver(dst, l, s)
		return
	}

	dst.DrawTextCentered(l.PromptY, promptText, plainInk)
	dst.FillRect(l.Swatch, ' ', core.BgInk(s.Target))

	for i, r := range l.Options {
		c := s.Options[i]
		dst.FillRect(r, ' ', core.BgInk(c))
		if i == cursor {
			dst.DrawBox(r.Inset(-1), titleInk)
		}
		_, cy := r.Center()
		dst.DrawTextIn(r, cy, fmt.Sprintf("%d", i+1), labelInk(c))
	}

	if msg := s.Feedback.String(); msg != "" {
		dst.DrawTextCentered(l.MessageY, msg, feedbackInk(s.Feedback))
	}
}

func renderGameOver(dst *core.Screen, l Layout, s Snapshot) {
	y := l.Swatch.Y
	dst.DrawTextCentered(y, "Game Over! Thanks for playing.", titleInk)
	dst.DrawTextCentered(y+2, fmt.Sprintf("Your Total Score: %d", s.Score), plainInk)
	dst.DrawTextCentered(y+4, fmt.Sprintf("Correct: %d   Wrong: %d   Timeouts: %d",
		s.Correct, s.Wrong, s.Timeouts), dimInk)
	if s.NewBest {
		dst.DrawTextCentered(y+6, "New best score!", feedbackInk(FeedbackCorrect))
	}
}

func renderTooSmall(dst *core.Screen) {
	msg := fmt.Sprintf("Terminal too small (need %dx%d)", MinScreenW, MinScreenH)
	dst.DrawTextCentered(dst.Height()/2, msg, plainInk)
}
