package ml

import (
	"math/rand"
	"sort"

	"github.com/guardify/backend/internal/domain"
)

// SplitSeed makes every training run shuffle identically.
const SplitSeed = 42

// StratifiedSplit partitions examples into train and test sets, holding
// out testFraction of each label class. Shuffling is seeded so repeated
// runs on the same dataset produce the same split.
func StratifiedSplit(examples []domain.TrainingExample, testFraction float64, seed int64) (train, test []domain.TrainingExample) {
	byLabel := make(map[int][]int)
	for i, ex := range examples {
		byLabel[ex.Label] = append(byLabel[ex.Label], i)
	}

	labels := make([]int, 0, len(byLabel))
	for label := range byLabel {
		labels = append(labels, label)
	}
	sort.Ints(labels)

	rng := rand.New(rand.NewSource(seed))
	for _, label := range labels {
		indices := byLabel[label]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})

		testCount := int(float64(len(indices)) * testFraction)
		for i, idx := range indices {
			if i < testCount {
				test = append(test, examples[idx])
			} else {
				train = append(train, examples[idx])
			}
		}
	}
	return train, test
}
