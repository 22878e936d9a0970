package docsource

import (
	"math"
	"os"
	"sort"
	"strings"
	"unicode"

	pdflib "github.com/ledongthuc/pdf"
)

// headingSizeDelta is how far above the dominant body font size a line must
// be to count as a heading.
const headingSizeDelta = 1.0

// pdfSource analyzes a PDF with ledongthuc/pdf. PDF outlines rarely carry
// usable page destinations through this library, so headings are detected by
// font size: lines set notably larger than the page body text. Pages are
// 1-based, matching the reader.
type pdfSource struct {
	path string
	f    *os.File
	r    *pdflib.Reader

	structure *Structure // computed once on first use
}

func openPDF(path string) (Source, error) {
	f, r, err := pdflib.Open(path)
	if err != nil {
		return nil, err
	}
	return &pdfSource{path: path, f: f, r: r}, nil
}

func (s *pdfSource) Close() error { return s.f.Close() }

// pdfLine is one text row with its page and dominant font size.
type pdfLine struct {
	page int
	text string
	size float64
}

func (s *pdfSource) Structure() (Structure, error) {
	if s.structure != nil {
		return *s.structure, nil
	}

	var lines []pdfLine
	sizeCounts := make(map[float64]int)

	for page := 1; page <= s.r.NumPage(); page++ {
		for _, row := range s.pageRows(page) {
			text, size := rowTextAndSize(row)
			if strings.TrimSpace(text) == "" {
				continue
			}
			size = roundHalf(size)
			lines = append(lines, pdfLine{page: page, text: strings.TrimSpace(text), size: size})
			sizeCounts[size] += len(text)
		}
	}

	bodySize := dominantSize(sizeCounts)

	// Collect heading candidates and rank their sizes into levels.
	var headings []pdfLine
	headingSizes := make(map[float64]bool)
	for _, ln := range lines {
		if isHeadingLine(ln, bodySize) {
			headings = append(headings, ln)
			headingSizes[ln.size] = true
		}
	}
	levelOf := rankSizes(headingSizes)

	st := Structure{Title: baseTitle(s.path)}
	for _, h := range headings {
		st.Outline = append(st.Outline, OutlineEntry{
			Text:  h.text,
			Page:  h.page,
			Level: levelOf[h.size],
		})
	}

	// Largest heading on the first page doubles as the document title.
	for _, h := range headings {
		if h.page > 1 {
			break
		}
		if levelOf[h.size] == 1 {
			st.Title = h.text
			break
		}
	}

	// A document with no detectable headings still yields one rankable
	// section covering the first page.
	if len(st.Outline) == 0 {
		st.Outline = []OutlineEntry{{Text: st.Title, Page: 1, Level: 1}}
	}

	s.structure = &st
	return st, nil
}

func (s *pdfSource) PageBlocks(page int) ([]string, error) {
	if page < 1 || page > s.r.NumPage() {
		return nil, ErrPageOutOfRange
	}

	rows := s.pageRows(page)
	if len(rows) == 0 {
		return nil, nil
	}

	// Group consecutive rows into blocks: a vertical gap well above the
	// median line spacing starts a new block.
	gapLimit := blockGapLimit(rows)
	var blocks []string
	var current strings.Builder
	lastPos := rows[0].Position

	flush := func() {
		if t := strings.TrimSpace(current.String()); t != "" {
			blocks = append(blocks, t)
		}
		current.Reset()
	}

	for _, row := range rows {
		text, _ := rowTextAndSize(row)
		if strings.TrimSpace(text) == "" {
			continue
		}
		if current.Len() > 0 && absInt64(lastPos-row.Position) > gapLimit {
			flush()
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(strings.TrimSpace(text))
		lastPos = row.Position
	}
	flush()

	return blocks, nil
}

// pageRows returns the text rows of a page, top to bottom. Unreadable pages
// yield no rows rather than an error; the caller falls back to synthesis.
func (s *pdfSource) pageRows(page int) []*pdflib.Row {
	defer func() { recover() }() // malformed content streams panic in the lib

	p := s.r.Page(page)
	if p.V.IsNull() {
		return nil
	}
	rows, err := p.GetTextByRow()
	if err != nil {
		return nil
	}
	return rows
}

// rowTextAndSize joins a row's text fragments and returns the largest font
// size seen. A space is inserted between fragments separated by a visible
// horizontal gap.
func rowTextAndSize(row *pdflib.Row) (string, float64) {
	var buf strings.Builder
	var size float64
	var lastEnd float64

	for i, t := range row.Content {
		if t.FontSize > size {
			size = t.FontSize
		}
		if i > 0 && t.X-lastEnd > 1.0 && !strings.HasSuffix(buf.String(), " ") && !strings.HasPrefix(t.S, " ") {
			buf.WriteString(" ")
		}
		buf.WriteString(t.S)
		lastEnd = t.X + t.W
	}
	return buf.String(), size
}

// dominantSize picks the font size carrying the most characters; that is the
// body text size.
func dominantSize(counts map[float64]int) float64 {
	var best float64
	bestCount := -1
	for size, count := range counts {
		if count > bestCount || (count == bestCount && size < best) {
			best = size
			bestCount = count
		}
	}
	return best
}

func isHeadingLine(ln pdfLine, bodySize float64) bool {
	if ln.size < bodySize+headingSizeDelta {
		return false
	}
	if len(ln.text) < 3 || len(ln.text) > 120 {
		return false
	}
	hasLetter := false
	digitsOnly := true
	for _, r := range ln.text {
		if unicode.IsLetter(r) {
			hasLetter = true
			digitsOnly = false
		} else if !unicode.IsDigit(r) && !unicode.IsSpace(r) {
			digitsOnly = false
		}
	}
	return hasLetter && !digitsOnly
}

// rankSizes maps each heading font size to an outline level: the largest
// size is level 1.
func rankSizes(sizes map[float64]bool) map[float64]int {
	ordered := make([]float64, 0, len(sizes))
	for s := range sizes {
		ordered = append(ordered, s)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(ordered)))

	levels := make(map[float64]int, len(ordered))
	for i, s := range ordered {
		level := i + 1
		if level > 6 {
			level = 6
		}
		levels[s] = level
	}
	return levels
}

// blockGapLimit derives the row gap that separates blocks from the median
// line spacing on the page.
func blockGapLimit(rows []*pdflib.Row) int64 {
	var gaps []int64
	for i := 1; i < len(rows); i++ {
		if g := absInt64(rows[i-1].Position - rows[i].Position); g > 0 {
			gaps = append(gaps, g)
		}
	}
	if len(gaps) == 0 {
		return 18
	}
	sort.Slice(gaps, func(i, j int) bool { return gaps[i] < gaps[j] })
	limit := gaps[len(gaps)/2] * 9 / 5
	if limit < 10 {
		limit = 10
	}
	return limit
}

func roundHalf(x float64) float64 {
	return math.Round(x*2) / 2
}

func absInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
