package generation

import (
	"bufio"
	"io"
	"strings"
)

// Rows returns the map as one glyph string per row, top to bottom
func (m *Map) Rows() []string {
	rows := make([]string, m.grid.Height)
	var b strings.Builder
	for y := 0; y < m.grid.Height; y++ {
		b.Reset()
		for x := 0; x < m.grid.Width; x++ {
			b.WriteRune(m.grid.Tiles[y][x].Glyph())
		}
		rows[y] = b.String()
	}
	return rows
}

// WriteASCII prints the map, one row per line
func (m *Map) WriteASCII(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range m.Rows() {
		if _, err := bw.WriteString(row); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
