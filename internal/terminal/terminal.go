package terminal

import (
	"unicode/utf8"

	"scene-viewer/internal/commands"
	"scene-viewer/internal/input"
	"scene-viewer/internal/logger"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	BarHeight = 36
	prompt    = "> "
	fontSize  = 18
	padding   = 8
	// Log lines drawn above the input bar while the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineLen       = 160
)

var (
	barColor  = rl.NewColor(40, 40, 40, 255)
	lineColor = rl.NewColor(80, 80, 80, 255)
	logBg     = rl.NewColor(24, 24, 24, 220)
)

// Terminal is the console overlay at the bottom of the window, toggled with the console key.
// While open it owns the keyboard: typed lines are echoed to the log and run through the
// command registry, and a command's error is logged in place of its output.
type Terminal struct {
	log   *logger.Logger
	reg   *commands.Registry
	input string
	open  bool
}

// New returns a closed console that runs lines through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// Toggle opens or closes the console. Closing discards a half-typed line.
func (t *Terminal) Toggle() {
	t.open = !t.open
	t.input = ""
}

// Update handles one frame. It returns true when the console owned the keyboard this
// frame, in which case the caller must not pass the keys on to the scene. Quit closes
// an open console instead of quitting.
func (t *Terminal) Update(in input.Snapshot) (captured bool) {
	wasOpen := t.open
	switch {
	case in.Pressed(input.KeyConsole):
		t.Toggle()
		drainChars() // the toggle key itself is queued as a character
		return true
	case wasOpen && in.Pressed(input.KeyQuit):
		t.Toggle()
		return true
	case !wasOpen:
		return false
	}

	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)) {
		t.input += rl.GetClipboardText()
		drainChars()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.input += string(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		t.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		t.Submit()
	}
	return true
}

// Type appends text to the input line.
func (t *Terminal) Type(s string) { t.input += s }

// Backspace removes the last rune of the input line.
func (t *Terminal) Backspace() {
	if t.input == "" {
		return
	}
	_, size := utf8.DecodeLastRuneInString(t.input)
	t.input = t.input[:len(t.input)-size]
}

// Input returns the line being typed.
func (t *Terminal) Input() string { return t.input }

// Submit echoes the input line to the log and executes it. Blank lines are ignored.
func (t *Terminal) Submit() {
	line := t.input
	t.input = ""
	args, ok := commands.Parse(line)
	if !ok {
		return
	}
	t.log.Log(prompt + line)
	if err := t.reg.Execute(args); err != nil {
		t.log.Log(err.Error())
	}
}

// clip shortens s to at most n runes, ending in "..." when cut.
func clip(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := 0
	for i := range s {
		if runes == n-3 {
			return s[:i] + "..."
		}
		runes++
	}
	return s
}

func drainChars() {
	for rl.GetCharPressed() != 0 {
	}
}

// Draw draws the input bar and the most recent log lines above it. Nothing is drawn when closed.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	logH := int32(maxLinesOnScreen*lineHeight + padding)
	logY := barY - logH
	if logY < 0 {
		logH, logY = barY, 0
	}
	rl.DrawRectangle(0, logY, screenW, logH, logBg)

	lines := t.log.Lines()
	if len(lines) > maxLinesOnScreen {
		lines = lines[len(lines)-maxLinesOnScreen:]
	}
	for i, line := range lines {
		line = clip(line, maxLineLen)
		rl.DrawText(line, padding, logY+padding+int32(i*lineHeight), fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	rl.DrawText(prompt+t.input+"_", padding, barY+padding, fontSize, rl.White)
}
