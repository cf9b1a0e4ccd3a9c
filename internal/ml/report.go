package ml

import "fmt"

// ClassMetrics holds the evaluation metrics for one label class.
type ClassMetrics struct {
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1-score"`
	Support   int     `json:"support"`
}

// Report is the classification evaluation report computed on the held-out
// test split: per-class precision/recall/F1/support plus overall accuracy.
type Report struct {
	Classes  map[string]ClassMetrics `json:"classes"`
	Accuracy float64                 `json:"accuracy"`
	MacroAvg ClassMetrics            `json:"macro avg"`
}

// BuildReport computes the evaluation report from true and predicted
// binary labels.
func BuildReport(yTrue, yPred []int) Report {
	classes := map[string]ClassMetrics{}
	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}

	var macro ClassMetrics
	for _, label := range []int{0, 1} {
		var tp, fp, fn, support int
		for i := range yTrue {
			switch {
			case yTrue[i] == label && yPred[i] == label:
				tp++
			case yTrue[i] != label && yPred[i] == label:
				fp++
			case yTrue[i] == label && yPred[i] != label:
				fn++
			}
			if yTrue[i] == label {
				support++
			}
		}

		var precision, recall, f1 float64
		if tp+fp > 0 {
			precision = float64(tp) / float64(tp+fp)
		}
		if tp+fn > 0 {
			recall = float64(tp) / float64(tp+fn)
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}

		classes[fmt.Sprintf("%d", label)] = ClassMetrics{
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   support,
		}
		macro.Precision += precision / 2
		macro.Recall += recall / 2
		macro.F1 += f1 / 2
		macro.Support += support
	}

	accuracy := 0.0
	if len(yTrue) > 0 {
		accuracy = float64(correct) / float64(len(yTrue))
	}

	return Report{
		Classes:  classes,
		Accuracy: accuracy,
		MacroAvg: macro,
	}
}
