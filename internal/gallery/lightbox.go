package gallery

// Lightbox is the photo-viewer cursor over the filtered gallery entries:
// a (record, image) pair that walks images across record boundaries without
// wrapping around either end.
type Lightbox struct {
	rec  int
	img  int
	open bool
}

// Keyboard bindings handled by the lightbox.
const (
	KeyEscape     = "Escape"
	KeyArrowRight = "ArrowRight"
	KeyArrowLeft  = "ArrowLeft"
)

// Open places the cursor on image j of record i.
func (l *Lightbox) Open(i, j int) {
	l.rec, l.img, l.open = i, j, true
}

// Close clears the cursor.
func (l *Lightbox) Close() {
	l.rec, l.img, l.open = 0, 0, false
}

// Cursor returns the current position; ok is false when the lightbox is
// closed.
func (l *Lightbox) Cursor() (rec, img int, ok bool) {
	return l.rec, l.img, l.open
}

// Next advances to the following image, rolling into the first image of the
// next record when the current one runs out. At the last image of the last
// record it is a no-op.
func (l *Lightbox) Next(entries []Entry) {
	if !l.open || l.rec >= len(entries) {
		return
	}
	if l.img+1 < len(entries[l.rec].Images) {
		l.img++
		return
	}
	if l.rec+1 < len(entries) {
		l.rec++
		l.img = 0
	}
}

// Prev retreats to the preceding image, rolling back to the last image of
// the previous record. At the first image of the first record it is a no-op.
func (l *Lightbox) Prev(entries []Entry) {
	if !l.open {
		return
	}
	if l.img > 0 {
		l.img--
		return
	}
	if l.rec > 0 {
		l.rec--
		if n := len(entries[l.rec].Images); n > 0 {
			l.img = n - 1
		} else {
			l.img = 0
		}
	}
}

// HandleKey applies a keyboard event to the cursor. Unknown keys are
// ignored.
func (l *Lightbox) HandleKey(key string, entries []Entry) {
	switch key {
	case KeyEscape:
		l.Close()
	case KeyArrowRight:
		l.Next(entries)
	case KeyArrowLeft:
		l.Prev(entries)
	}
}
