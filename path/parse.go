package path

import (
	"strconv"
	"strings"
)

// Parse parses a path string.
//
// The empty string is an error; "/" is the root and yields an empty Path.
func Parse(s string) (Path, error) {
	if s == "" {
		return nil, parseErr(s, 0, ErrEmpty)
	}
	if s[0] != '/' {
		return nil, parseErr(s, 0, ErrNoRoot)
	}
	res := Path{}
	if len(s) == 1 {
		return res, nil
	}
	i := 1
	for {
		var err error
		res, i, err = parseSegment(s, i, res)
		if err != nil {
			return nil, err
		}
		if i == len(s) {
			return res, nil
		}
		if s[i] != '/' {
			return nil, parseErr(s, i, ErrUnexpected)
		}
		i++
		if i == len(s) {
			return nil, parseErr(s, i-1, ErrTrailing)
		}
	}
}

// MustParse is like Parse but panics on error. It is intended for path
// literals.
func MustParse(s string) Path {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// parseSegment parses one segment starting at s[i] and appends its nodes to
// dst.
func parseSegment(s string, i int, dst Path) (Path, int, error) {
	start := i
	switch {
	case s[i] == '\'':
		ident, j, err := parseQuoted(s, i)
		if err != nil {
			return nil, 0, err
		}
		dst = append(dst, Ident(ident))
		i = j
	case isIdentByte(s[i]):
		j := i
		for j < len(s) && isIdentByte(s[j]) {
			j++
		}
		dst = append(dst, Ident(s[i:j]))
		i = j
	}
	for i < len(s) && s[i] == '[' {
		idx, j, err := parseIndex(s, i)
		if err != nil {
			return nil, 0, err
		}
		dst = append(dst, Index(idx))
		i = j
	}
	if i == start {
		return nil, 0, parseErr(s, i, ErrUnexpected)
	}
	return dst, i, nil
}

func parseQuoted(s string, i int) (string, int, error) {
	var b strings.Builder
	j := i + 1
	for j < len(s) {
		c := s[j]
		switch c {
		case '\\':
			if j+1 == len(s) {
				return "", 0, parseErr(s, j, ErrUnterminated)
			}
			next := s[j+1]
			if next != '\'' && next != '\\' {
				return "", 0, parseErr(s, j, ErrUnexpected)
			}
			b.WriteByte(next)
			j += 2
		case '\'':
			return b.String(), j + 1, nil
		default:
			b.WriteByte(c)
			j++
		}
	}
	return "", 0, parseErr(s, i, ErrUnterminated)
}

// parseIndex parses "[" ["-"|"+"] digits "]" starting at s[i].
func parseIndex(s string, i int) (int, int, error) {
	j := i + 1
	numStart := j
	if j < len(s) && (s[j] == '-' || s[j] == '+') {
		j++
	}
	digits := j
	for j < len(s) && '0' <= s[j] && s[j] <= '9' {
		j++
	}
	if j == len(s) {
		return 0, 0, parseErr(s, i, ErrUnterminated)
	}
	if j == digits {
		return 0, 0, parseErr(s, j, ErrBadIndex)
	}
	if s[j] != ']' {
		return 0, 0, parseErr(s, j, ErrUnexpected)
	}
	n, err := strconv.Atoi(s[numStart:j])
	if err != nil {
		return 0, 0, parseErr(s, numStart, ErrBadIndex)
	}
	return n, j + 1, nil
}
