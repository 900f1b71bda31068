// Package qtarg implements the positional placeholder syntax used by Qt
// translation strings: %1 to %99, optionally written %L1 for locale-aware
// numbers, and %n for the count of a plural message.
package qtarg

import (
	"sort"
	"strconv"
	"strings"
)

type placeholder struct {
	start, end int // byte offsets of the whole escape
	num        int
}

func scan(s string) []placeholder {
	var out []placeholder
	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			continue
		}
		j := i + 1
		if j < len(s) && s[j] == 'L' {
			j++
		}
		if j >= len(s) || s[j] < '1' || s[j] > '9' {
			continue
		}
		num := int(s[j] - '0')
		j++
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			num = num*10 + int(s[j]-'0')
			j++
		}
		out = append(out, placeholder{start: i, end: j, num: num})
		i = j - 1
	}
	return out
}

// Placeholders returns the distinct placeholder numbers in s, sorted.
func Placeholders(s string) []int {
	seen := make(map[int]struct{})
	var nums []int
	for _, p := range scan(s) {
		if _, ok := seen[p.num]; ok {
			continue
		}
		seen[p.num] = struct{}{}
		nums = append(nums, p.num)
	}
	sort.Ints(nums)
	return nums
}

// Equal reports whether a and b use the same set of placeholder numbers.
func Equal(a, b string) bool {
	pa, pb := Placeholders(a), Placeholders(b)
	if len(pa) != len(pb) {
		return false
	}
	for i := range pa {
		if pa[i] != pb[i] {
			return false
		}
	}
	return true
}

// Arg substitutes args the way QString::arg does with several arguments: the
// lowest numbered placeholder receives args[0], the next lowest args[1], and
// so on. Placeholders left without an argument are kept verbatim.
func Arg(s string, args ...string) string {
	if len(args) == 0 {
		return s
	}
	ps := scan(s)
	if len(ps) == 0 {
		return s
	}
	nums := Placeholders(s)
	value := make(map[int]string, len(args))
	for i, n := range nums {
		if i >= len(args) {
			break
		}
		value[n] = args[i]
	}

	var b strings.Builder
	last := 0
	for _, p := range ps {
		v, ok := value[p.num]
		if !ok {
			continue
		}
		b.WriteString(s[last:p.start])
		b.WriteString(v)
		last = p.end
	}
	b.WriteString(s[last:])
	return b.String()
}

// HasCount reports whether s contains %n or %Ln.
func HasCount(s string) bool {
	return strings.Contains(s, "%n") || strings.Contains(s, "%Ln")
}

// Count replaces %n and %Ln with n.
func Count(s string, n int) string {
	if !HasCount(s) {
		return s
	}
	v := strconv.Itoa(n)
	return strings.NewReplacer("%Ln", v, "%n", v).Replace(s)
}
