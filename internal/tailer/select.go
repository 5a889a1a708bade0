// File: internal/tailer/select.go
// Brief: Pod selection by namespace and name pattern.

package tailer

import (
	"context"
	"regexp"
	"sort"

	corev1 "k8s.io/api/core/v1"
)

// PodLister is the slice of the cluster client the selector needs.
type PodLister interface {
	ListPods(ctx context.Context, namespace string) ([]corev1.Pod, error)
}

// Select lists the namespace and returns the sorted names of pods whose name
// matches pattern. Matching uses search semantics, not full anchoring, so a
// deployment prefix like "checkout" matches all of its replicas.
//
// A listing failure is returned as a *SelectionError. An empty result is not
// an error; the caller reports the no-op to the operator.
func Select(ctx context.Context, lister PodLister, namespace string, pattern *regexp.Regexp) ([]string, error) {
	pods, err := lister.ListPods(ctx, namespace)
	if err != nil {
		return nil, &SelectionError{Namespace: namespace, Err: err}
	}
	var names []string
	for i := range pods {
		if pattern == nil || pattern.MatchString(pods[i].Name) {
			names = append(names, pods[i].Name)
		}
	}
	sort.Strings(names)
	return names, nil
}
