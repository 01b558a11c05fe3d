package matcher

import "sort"

// popularThreshold is the sequence length from which frequent code points
// stop seeding matches. Long strings full of spaces would otherwise anchor
// every alignment on whitespace.
const popularThreshold = 200

// block is a maximal run where a[i:i+size] == b[j:j+size].
type block struct {
	i, j, size int
}

// sequencePair finds matching blocks between a and b by repeatedly taking
// the longest common substring and recursing on the pieces to either side.
type sequencePair struct {
	a, b []rune
	b2j  map[rune][]int
}

func newSequencePair(a, b []rune) *sequencePair {
	b2j := make(map[rune][]int)
	for j, r := range b {
		b2j[r] = append(b2j[r], j)
	}
	if n := len(b); n >= popularThreshold {
		limit := n/100 + 1
		for r, idx := range b2j {
			if len(idx) > limit {
				delete(b2j, r)
			}
		}
	}
	return &sequencePair{a: a, b: b, b2j: b2j}
}

// longestMatch returns the longest block inside a[alo:ahi] and b[blo:bhi].
// Ties go to the block that starts earliest in a, then earliest in b.
func (s *sequencePair) longestMatch(alo, ahi, blo, bhi int) block {
	best := block{i: alo, j: blo}
	j2len := map[int]int{}
	for i := alo; i < ahi; i++ {
		next := map[int]int{}
		for _, j := range s.b2j[s.a[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			next[j] = k
			if k > best.size {
				best = block{i: i - k + 1, j: j - k + 1, size: k}
			}
		}
		j2len = next
	}

	// Popular code points never seed a match, but they may still extend one.
	for best.i > alo && best.j > blo && s.a[best.i-1] == s.b[best.j-1] {
		best.i--
		best.j--
		best.size++
	}
	for best.i+best.size < ahi && best.j+best.size < bhi &&
		s.a[best.i+best.size] == s.b[best.j+best.size] {
		best.size++
	}
	return best
}

// matchingBlocks returns the non-overlapping matching blocks in increasing
// order, adjacent blocks merged, followed by the zero-size sentinel
// {len(a), len(b), 0}.
func (s *sequencePair) matchingBlocks() []block {
	type span struct{ alo, ahi, blo, bhi int }

	queue := []span{{0, len(s.a), 0, len(s.b)}}
	var found []block
	for len(queue) > 0 {
		sp := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		m := s.longestMatch(sp.alo, sp.ahi, sp.blo, sp.bhi)
		if m.size == 0 {
			continue
		}
		found = append(found, m)
		if sp.alo < m.i && sp.blo < m.j {
			queue = append(queue, span{sp.alo, m.i, sp.blo, m.j})
		}
		if m.i+m.size < sp.ahi && m.j+m.size < sp.bhi {
			queue = append(queue, span{m.i + m.size, sp.ahi, m.j + m.size, sp.bhi})
		}
	}

	sort.Slice(found, func(x, y int) bool {
		if found[x].i != found[y].i {
			return found[x].i < found[y].i
		}
		return found[x].j < found[y].j
	})

	merged := make([]block, 0, len(found)+1)
	cur := block{}
	for _, b := range found {
		if cur.i+cur.size == b.i && cur.j+cur.size == b.j {
			cur.size += b.size
			continue
		}
		if cur.size > 0 {
			merged = append(merged, cur)
		}
		cur = b
	}
	if cur.size > 0 {
		merged = append(merged, cur)
	}
	return append(merged, block{i: len(s.a), j: len(s.b)})
}

// ratio returns 2*M/T where M is the number of matched code points and T
// the combined length. Two empty sequences are identical.
func ratio(a, b []rune) float64 {
	total := len(a) + len(b)
	if total == 0 {
		return 1
	}
	matched := 0
	for _, m := range newSequencePair(a, b).matchingBlocks() {
		matched += m.size
	}
	return 2 * float64(matched) / float64(total)
}
