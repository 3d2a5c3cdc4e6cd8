package netfmt

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/mizar/sortingnetwork-tauri-app/planner"
)

// Network is a parsed comparator network: N wires, and an ordered list of
// comparators already validated and converted to 0-based indices.
type Network struct {
	N           int
	Comparators []planner.Comparator
}

// Parse reads the three-line format:
//
//	N M
//	a1 a2 … aM
//	b1 b2 … bM
//
// with 2 <= N <= 64, M >= 0, and 1 <= ai < bi <= N on the input (1-based);
// comparators are returned 0-based. Any deviation yields an error with a
// short reason, matching the "parse error" taxonomy: no partial network is
// ever returned alongside a non-nil error.
func Parse(s string) (Network, error) {
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)

	line, ok := nextLine(scanner)
	if !ok {
		return Network{}, fmt.Errorf("sortnet: netfmt: empty input")
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Network{}, fmt.Errorf("sortnet: netfmt: missing n or m")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return Network{}, fmt.Errorf("sortnet: netfmt: parseint failed n: %w", err)
	}
	if n < 2 || n > 64 {
		return Network{}, fmt.Errorf("sortnet: netfmt: invalid n %d: must be in [2,64]", n)
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return Network{}, fmt.Errorf("sortnet: netfmt: parseint failed m: %w", err)
	}
	if m < 0 {
		return Network{}, fmt.Errorf("sortnet: netfmt: invalid m %d: must be >= 0", m)
	}

	// With m == 0 the endpoint lines are empty, and nextLine skips empty
	// lines, so they may be absent altogether.
	aLine, ok := nextLine(scanner)
	if !ok && m > 0 {
		return Network{}, fmt.Errorf("sortnet: netfmt: missing a line")
	}
	a, err := parseInts(aLine)
	if err != nil {
		return Network{}, fmt.Errorf("sortnet: netfmt: parseint failed a: %w", err)
	}

	bLine, ok := nextLine(scanner)
	if !ok && m > 0 {
		return Network{}, fmt.Errorf("sortnet: netfmt: missing b line")
	}
	b, err := parseInts(bLine)
	if err != nil {
		return Network{}, fmt.Errorf("sortnet: netfmt: parseint failed b: %w", err)
	}

	if len(a) != m || len(b) != m {
		return Network{}, fmt.Errorf("sortnet: netfmt: invalid input: expected %d comparator endpoints per line, got a=%d b=%d", m, len(a), len(b))
	}

	cmp := make([]planner.Comparator, m)
	for i := 0; i < m; i++ {
		if a[i] < 1 || a[i] > n || b[i] < 1 || b[i] > n || a[i] >= b[i] {
			return Network{}, fmt.Errorf("sortnet: netfmt: invalid comparator %d: (%d,%d) out of range for n=%d", i, a[i], b[i], n)
		}
		cmp[i] = planner.Comparator{A: a[i] - 1, B: b[i] - 1}
	}

	return Network{N: n, Comparators: cmp}, nil
}

func nextLine(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		return line, true
	}
	return "", false
}

func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Format renders a Network back into the three-line text format, converting
// 0-based comparators back to 1-based. It is the inverse of Parse for any
// network Parse would have accepted.
func Format(net Network) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d %d\n", net.N, len(net.Comparators))
	for i, c := range net.Comparators {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", c.A+1)
	}
	b.WriteByte('\n')
	for i, c := range net.Comparators {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", c.B+1)
	}
	b.WriteByte('\n')
	return b.String()
}
