// Package pathdata parses SVG path-data strings and reduces them to the
// four absolute segment kinds (M, L, C, Z) the sketch renderer consumes.
package pathdata

import (
	"fmt"
	"strconv"
)

// Segment is one path-data command with its arguments. After Parse the
// command byte is exactly as written (so case still encodes relative
// coordinates) and implicit repetitions are expanded into their own
// segments.
type Segment struct {
	Cmd  byte
	Args []float64
}

// argCount maps an upper-cased command to its argument count.
func argCount(cmd byte) (int, bool) {
	switch cmd {
	case 'M', 'L', 'T':
		return 2, true
	case 'H', 'V':
		return 1, true
	case 'C':
		return 6, true
	case 'S', 'Q':
		return 4, true
	case 'A':
		return 7, true
	case 'Z':
		return 0, true
	}
	return 0, false
}

func upper(cmd byte) byte {
	if cmd >= 'a' && cmd <= 'z' {
		return cmd - 'a' + 'A'
	}
	return cmd
}

// Parse tokenizes path data. Implicit command repetition is expanded; a
// repeated M becomes L (and m becomes l), per the SVG specification.
func Parse(d string) ([]Segment, error) {
	p := &parser{data: d}
	var segments []Segment
	for {
		p.skipSeparators()
		if p.pos >= len(p.data) {
			return segments, nil
		}
		cmd := p.data[p.pos]
		n, ok := argCount(upper(cmd))
		if !ok {
			return nil, fmt.Errorf("invalid command %q at offset %d", string(cmd), p.pos)
		}
		p.pos++
		if n == 0 {
			segments = append(segments, Segment{Cmd: cmd})
			continue
		}
		first := true
		for {
			args, err := p.readArgs(upper(cmd), n)
			if err != nil {
				return nil, err
			}
			c := cmd
			if !first {
				switch cmd {
				case 'M':
					c = 'L'
				case 'm':
					c = 'l'
				}
			}
			segments = append(segments, Segment{Cmd: c, Args: args})
			first = false
			p.skipSeparators()
			if p.pos >= len(p.data) || !p.startsNumber() {
				break
			}
		}
	}
}

type parser struct {
	data string
	pos  int
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.data) {
		switch p.data[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser) startsNumber() bool {
	c := p.data[p.pos]
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

func (p *parser) readArgs(cmd byte, n int) ([]float64, error) {
	args := make([]float64, n)
	for i := 0; i < n; i++ {
		// The two arc flags are single characters and may run into
		// the following number without a separator.
		if cmd == 'A' && (i == 3 || i == 4) {
			f, err := p.readFlag()
			if err != nil {
				return nil, err
			}
			args[i] = f
			continue
		}
		v, err := p.readNumber()
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

func (p *parser) readFlag() (float64, error) {
	p.skipSeparators()
	if p.pos >= len(p.data) {
		return 0, fmt.Errorf("unexpected end of data reading arc flag")
	}
	switch p.data[p.pos] {
	case '0':
		p.pos++
		return 0, nil
	case '1':
		p.pos++
		return 1, nil
	}
	return 0, fmt.Errorf("invalid arc flag %q at offset %d", string(p.data[p.pos]), p.pos)
}

func (p *parser) readNumber() (float64, error) {
	p.skipSeparators()
	start := p.pos
	if p.pos < len(p.data) && (p.data[p.pos] == '-' || p.data[p.pos] == '+') {
		p.pos++
	}
	digits := false
	for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
		p.pos++
		digits = true
	}
	if p.pos < len(p.data) && p.data[p.pos] == '.' {
		p.pos++
		for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
			p.pos++
			digits = true
		}
	}
	if !digits {
		return 0, fmt.Errorf("expected number at offset %d", start)
	}
	if p.pos < len(p.data) && (p.data[p.pos] == 'e' || p.data[p.pos] == 'E') {
		mark := p.pos
		p.pos++
		if p.pos < len(p.data) && (p.data[p.pos] == '-' || p.data[p.pos] == '+') {
			p.pos++
		}
		expDigits := false
		for p.pos < len(p.data) && p.data[p.pos] >= '0' && p.data[p.pos] <= '9' {
			p.pos++
			expDigits = true
		}
		if !expDigits {
			p.pos = mark
		}
	}
	v, err := strconv.ParseFloat(p.data[start:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q at offset %d", p.data[start:p.pos], start)
	}
	return v, nil
}
