// File: internal/ui/app.go
// Brief: Bubble Tea model for the interactive pod browser.

// Package ui implements kl's interactive pod browser: a refreshing table of
// pods in a namespace with a describe-style detail view.
package ui

import (
	"context"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	corev1 "k8s.io/api/core/v1"
)

const refreshInterval = 2 * time.Second

// PodSource is the slice of the cluster client the browser needs.
type PodSource interface {
	ListPods(ctx context.Context, namespace string) ([]corev1.Pod, error)
	GetPod(ctx context.Context, namespace, name string) (*corev1.Pod, error)
	Server() string
}

// Pane identifies which view the browser shows.
type Pane int

const (
	PaneList Pane = iota
	PaneDetail
)

// App is the root Bubble Tea model.
type App struct {
	source    PodSource
	namespace string
	server    string

	pods        []PodSummary
	selectedIdx int
	detail      *corev1.Pod
	detailView  viewport.Model

	activePane Pane
	width      int
	height     int
	statusMsg  string
}

// NewApp creates the browser model for one namespace.
func NewApp(source PodSource, namespace string) App {
	return App{
		source:    source,
		namespace: namespace,
		server:    source.Server(),
	}
}

// Init kicks off the first pod fetch and the refresh ticker.
func (a App) Init() tea.Cmd {
	return tea.Batch(
		fetchPodsCmd(a.source, a.namespace),
		tickCmd(),
		tea.SetWindowTitle("kl — "+a.namespace),
	)
}

// tickMsg triggers periodic refresh.
type tickMsg time.Time

// podsMsg carries a refreshed pod list.
type podsMsg struct{ pods []PodSummary }

// detailMsg carries a fetched pod for the detail pane.
type detailMsg struct{ pod *corev1.Pod }

// errorMsg carries an error to display in the status bar.
type errorMsg struct{ err error }

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchPodsCmd(source PodSource, namespace string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pods, err := source.ListPods(ctx, namespace)
		if err != nil {
			return errorMsg{err}
		}
		summaries := make([]PodSummary, 0, len(pods))
		for i := range pods {
			summaries = append(summaries, Summarize(&pods[i]))
		}
		sort.Slice(summaries, func(i, j int) bool {
			return summaries[i].Name < summaries[j].Name
		})
		return podsMsg{pods: summaries}
	}
}

func fetchDetailCmd(source PodSource, namespace, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		pod, err := source.GetPod(ctx, namespace, name)
		if err != nil {
			return errorMsg{err}
		}
		return detailMsg{pod: pod}
	}
}

// Update handles messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.detailView.Width = msg.Width
		a.detailView.Height = max(msg.Height-3, 1)
		return a, nil

	case tickMsg:
		return a, tea.Batch(tickCmd(), fetchPodsCmd(a.source, a.namespace))

	case podsMsg:
		a.pods = msg.pods
		if a.selectedIdx >= len(a.pods) {
			a.selectedIdx = max(0, len(a.pods)-1)
		}
		return a, nil

	case detailMsg:
		a.detail = msg.pod
		a.detailView.SetContent(renderDetail(msg.pod))
		a.detailView.GotoTop()
		a.activePane = PaneDetail
		return a, nil

	case errorMsg:
		a.statusMsg = "error: " + msg.err.Error()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return a, tea.Quit

	case "esc":
		if a.activePane == PaneDetail {
			a.activePane = PaneList
			a.detail = nil
		}

	case "j", "down":
		if a.activePane == PaneList && len(a.pods) > 0 {
			a.selectedIdx = min(a.selectedIdx+1, len(a.pods)-1)
		}
	case "k", "up":
		if a.activePane == PaneList && a.selectedIdx > 0 {
			a.selectedIdx--
		}
	case "g":
		if a.activePane == PaneList {
			a.selectedIdx = 0
		}
	case "G":
		if a.activePane == PaneList && len(a.pods) > 0 {
			a.selectedIdx = len(a.pods) - 1
		}

	case "enter":
		if a.activePane == PaneList {
			if pod := a.selectedPod(); pod != nil {
				a.statusMsg = "describing " + pod.Name
				return a, fetchDetailCmd(a.source, a.namespace, pod.Name)
			}
		}

	case "r":
		a.statusMsg = "refreshing"
		return a, fetchPodsCmd(a.source, a.namespace)
	}

	// Remaining keys scroll the detail viewport.
	if a.activePane == PaneDetail {
		var cmd tea.Cmd
		a.detailView, cmd = a.detailView.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) selectedPod() *PodSummary {
	if a.selectedIdx < len(a.pods) {
		return &a.pods[a.selectedIdx]
	}
	return nil
}
