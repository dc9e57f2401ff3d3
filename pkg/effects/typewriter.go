package effects

// Typewriter reveals text one rune per tick.
type Typewriter struct {
	text  []rune
	shown int
}

// NewTypewriter starts with nothing shown.
func NewTypewriter(text string) *Typewriter {
	return &Typewriter{text: []rune(text)}
}

// Tick reveals the next rune and reports whether more remain.
func (tw *Typewriter) Tick() bool {
	if tw.shown < len(tw.text) {
		tw.shown++
	}
	return tw.shown < len(tw.text)
}

// Done reports whether the whole text is visible.
func (tw *Typewriter) Done() bool {
	return tw.shown >= len(tw.text)
}

// Finish reveals the rest of the text at once.
func (tw *Typewriter) Finish() {
	tw.shown = len(tw.text)
}

// String returns the visible prefix.
func (tw *Typewriter) String() string {
	return string(tw.text[:tw.shown])
}
