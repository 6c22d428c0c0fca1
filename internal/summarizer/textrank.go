package summarizer

import "math"

const (
	textrankDamping = 0.85   // PageRank damping factor
	textrankMaxIter = 50     // maximum PageRank iterations
	textrankEpsilon = 0.0001 // convergence threshold
)

// edge is a neighbor index + weight pair used for deterministic iteration.
type edge struct {
	to     int
	weight float64
}

// rankSentences scores each sentence by its centrality in the similarity
// graph. words[i] holds the distinct content words of sentence i.
func rankSentences(words [][]string) []float64 {
	return pagerank(buildGraph(words))
}

func buildGraph(words [][]string) [][]edge {
	sets := make([]map[string]struct{}, len(words))
	for i, ws := range words {
		sets[i] = make(map[string]struct{}, len(ws))
		for _, w := range ws {
			sets[i][w] = struct{}{}
		}
	}

	edges := make([][]edge, len(words))
	for i := range sets {
		for j := i + 1; j < len(sets); j++ {
			w := similarity(sets[i], sets[j])
			if w <= 0 {
				continue
			}
			edges[i] = append(edges[i], edge{to: j, weight: w})
			edges[j] = append(edges[j], edge{to: i, weight: w})
		}
	}
	return edges
}

// similarity is the TextRank sentence overlap: shared words normalized by
// the log lengths of both sentences.
func similarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}

	overlap := 0
	for w := range small {
		if _, ok := large[w]; ok {
			overlap++
		}
	}
	if overlap == 0 {
		return 0
	}
	return float64(overlap) / (math.Log(1+float64(len(a))) + math.Log(1+float64(len(b))))
}

func pagerank(edges [][]edge) []float64 {
	n := len(edges)
	if n == 0 {
		return nil
	}

	scores := make([]float64, n)
	for i := range scores {
		scores[i] = 1.0 / float64(n)
	}

	outWeight := make([]float64, n)
	for i, neighbors := range edges {
		for _, e := range neighbors {
			outWeight[i] += e.weight
		}
	}

	nf := float64(n)
	for range textrankMaxIter {
		newScores := make([]float64, n)
		maxDelta := 0.0

		for i := range n {
			sum := 0.0
			for _, e := range edges[i] {
				if outWeight[e.to] > 0 {
					sum += (e.weight / outWeight[e.to]) * scores[e.to]
				}
			}
			newScores[i] = (1-textrankDamping)/nf + textrankDamping*sum
			maxDelta = math.Max(maxDelta, math.Abs(newScores[i]-scores[i]))
		}

		scores = newScores
		if maxDelta < textrankEpsilon {
			break
		}
	}

	return scores
}
