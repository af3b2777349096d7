// Package splitengine implements the split-finding kernel used by a
// decision-tree grower: given a feature matrix, a target tensor and a
// per-row sample mask, it chooses the feature and threshold that minimize
// an impurity criterion, and it provides the descent kernels that route
// rows through an already-built tree.
//
// The package is deliberately narrow. Tree growth (node queues, recursion,
// stopping rules), bagging and boosting drivers, model persistence and
// any host-language bridge live outside this package; they are callers of
// FindBestSplit, FindBestRandomSplit, ApplyTree and PredictTree.
package splitengine
