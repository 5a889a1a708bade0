// File: internal/ui/view.go
// Brief: Rendering for the pod browser.

package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	corev1 "k8s.io/api/core/v1"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	statusRunning = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusPending = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	statusFailed  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))

	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// View renders the browser.
func (a App) View() string {
	if a.width == 0 || a.height == 0 {
		return "loading..."
	}

	title := titleStyle.Render(fmt.Sprintf(" Pods — %s ", a.namespace))
	var body string
	if a.activePane == PaneDetail && a.detail != nil {
		body = a.detailView.View()
	} else {
		body = a.renderTable()
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, body, a.renderStatusBar())
}

func (a App) renderTable() string {
	if len(a.pods) == 0 {
		return dimStyle.Render("no pods in namespace")
	}

	nameW := 20
	for _, pod := range a.pods {
		if len(pod.Name) > nameW {
			nameW = len(pod.Name)
		}
	}
	if limit := a.width - 32; limit > 20 && nameW > limit {
		nameW = limit
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf(" %-*s  %-7s %-9s %-11s %s", nameW, "NAME", "READY", "RESTARTS", "STATUS", "AGE")))
	b.WriteByte('\n')

	now := time.Now()
	maxVisible := max(a.height-4, 1)
	start := 0
	if a.selectedIdx >= maxVisible {
		start = a.selectedIdx - maxVisible + 1
	}
	for i := start; i < len(a.pods) && i-start < maxVisible; i++ {
		pod := a.pods[i]
		// colorPhase pads to the column width itself; ANSI codes would
		// defeat fmt's padding.
		line := fmt.Sprintf(" %-*s  %-7s %-9d %s %s",
			nameW, truncate(pod.Name, nameW), pod.ReadyColumn(), pod.Restarts,
			colorPhase(pod.Status), pod.Age(now))
		if i == a.selectedIdx {
			line = selectedStyle.Render(fmt.Sprintf(" %-*s  %-7s %-9d %-11s %s",
				nameW, truncate(pod.Name, nameW), pod.ReadyColumn(), pod.Restarts,
				pod.Status, pod.Age(now)))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// renderDetail builds the describe-style text shown in the detail viewport.
func renderDetail(pod *corev1.Pod) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name:       %s\n", pod.Name)
	fmt.Fprintf(&b, "Namespace:  %s\n", pod.Namespace)
	fmt.Fprintf(&b, "Node:       %s\n", orDash(pod.Spec.NodeName))
	fmt.Fprintf(&b, "Status:     %s\n", colorPhase(string(pod.Status.Phase)))
	fmt.Fprintf(&b, "Pod IP:     %s\n", orDash(pod.Status.PodIP))
	if pod.Status.StartTime != nil {
		fmt.Fprintf(&b, "Started:    %s\n", pod.Status.StartTime.Format(time.RFC3339))
	}
	if len(pod.Labels) > 0 {
		fmt.Fprintf(&b, "Labels:     %s\n", formatLabels(pod.Labels))
	}
	b.WriteString("\nContainers:\n")
	for _, container := range pod.Spec.Containers {
		fmt.Fprintf(&b, "  %s\n", headerStyle.Render(container.Name))
		fmt.Fprintf(&b, "    Image:    %s\n", container.Image)
		if status := containerStatus(pod, container.Name); status != nil {
			fmt.Fprintf(&b, "    Ready:    %t\n", status.Ready)
			fmt.Fprintf(&b, "    Restarts: %d\n", status.RestartCount)
		}
	}
	return b.String()
}

func (a App) renderStatusBar() string {
	left := a.statusMsg
	if left == "" {
		left = dimStyle.Render(a.server)
	}
	right := "j/k:nav enter:describe r:refresh q:quit"
	if a.activePane == PaneDetail {
		right = "esc:back q:quit"
	}
	gap := a.width - lipgloss.Width(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return helpStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func containerStatus(pod *corev1.Pod, name string) *corev1.ContainerStatus {
	for i := range pod.Status.ContainerStatuses {
		if pod.Status.ContainerStatuses[i].Name == name {
			return &pod.Status.ContainerStatuses[i]
		}
	}
	return nil
}

func colorPhase(phase string) string {
	switch phase {
	case string(corev1.PodRunning), string(corev1.PodSucceeded):
		return statusRunning.Render(fmt.Sprintf("%-11s", phase))
	case string(corev1.PodPending):
		return statusPending.Render(fmt.Sprintf("%-11s", phase))
	case string(corev1.PodFailed):
		return statusFailed.Render(fmt.Sprintf("%-11s", phase))
	default:
		return fmt.Sprintf("%-11s", phase)
	}
}

func formatLabels(labels map[string]string) string {
	parts := make([]string, 0, len(labels))
	for k, v := range labels {
		parts = append(parts, k+"="+v)
	}
	if len(parts) > 4 {
		parts = parts[:4]
		parts = append(parts, "...")
	}
	return strings.Join(parts, ",")
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
