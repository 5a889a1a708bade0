// File: internal/ui/summary.go
// Brief: Pod summary rows for the browser table.

package ui

import (
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"
)

// PodSummary is one row of the pod table.
type PodSummary struct {
	Name       string
	Ready      int
	Containers int
	Restarts   int32
	Status     string
	Created    time.Time
}

// Summarize condenses a pod into its table row.
func Summarize(pod *corev1.Pod) PodSummary {
	summary := PodSummary{
		Name:       pod.Name,
		Containers: len(pod.Status.ContainerStatuses),
		Status:     string(pod.Status.Phase),
		Created:    pod.CreationTimestamp.Time,
	}
	for _, cs := range pod.Status.ContainerStatuses {
		if cs.Ready {
			summary.Ready++
		}
		summary.Restarts += cs.RestartCount
	}
	if summary.Containers == 0 {
		summary.Containers = len(pod.Spec.Containers)
	}
	return summary
}

// ReadyColumn renders the READY cell, e.g. "2/3".
func (s PodSummary) ReadyColumn() string {
	return fmt.Sprintf("%d/%d", s.Ready, s.Containers)
}

// Age renders the pod's age relative to now, kubectl style.
func (s PodSummary) Age(now time.Time) string {
	if s.Created.IsZero() {
		return "n/a"
	}
	diff := now.Sub(s.Created)
	switch {
	case diff < time.Minute:
		return fmt.Sprintf("%ds", int(diff.Seconds()))
	case diff < time.Hour:
		return fmt.Sprintf("%dm", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh", int(diff.Hours()))
	default:
		return fmt.Sprintf("%dd", int(diff.Hours()/24))
	}
}
