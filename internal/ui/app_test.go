// app_test.go covers browser model updates and key handling.
package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

type fakeSource struct {
	pods []corev1.Pod
	err  error
}

func (f *fakeSource) ListPods(ctx context.Context, namespace string) ([]corev1.Pod, error) {
	return f.pods, f.err
}

func (f *fakeSource) GetPod(ctx context.Context, namespace, name string) (*corev1.Pod, error) {
	for i := range f.pods {
		if f.pods[i].Name == name {
			return &f.pods[i], nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeSource) Server() string { return "https://example:6443" }

func appWithPods(names ...string) App {
	app := NewApp(&fakeSource{}, "shop")
	pods := make([]PodSummary, 0, len(names))
	for _, name := range names {
		pods = append(pods, PodSummary{Name: name})
	}
	model, _ := app.Update(podsMsg{pods: pods})
	return model.(App)
}

func key(s string) tea.KeyMsg {
	if s == "enter" {
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNavigationClampsToListBounds(t *testing.T) {
	app := appWithPods("a", "b", "c")

	for i := 0; i < 10; i++ {
		model, _ := app.Update(key("j"))
		app = model.(App)
	}
	if app.selectedIdx != 2 {
		t.Fatalf("expected selection pinned to last row, got %d", app.selectedIdx)
	}
	for i := 0; i < 10; i++ {
		model, _ := app.Update(key("k"))
		app = model.(App)
	}
	if app.selectedIdx != 0 {
		t.Fatalf("expected selection pinned to first row, got %d", app.selectedIdx)
	}

	model, _ := app.Update(key("G"))
	app = model.(App)
	if app.selectedIdx != 2 {
		t.Fatalf("G must jump to the last row, got %d", app.selectedIdx)
	}
	model, _ = app.Update(key("g"))
	app = model.(App)
	if app.selectedIdx != 0 {
		t.Fatalf("g must jump to the first row, got %d", app.selectedIdx)
	}
}

func TestRefreshClampsSelectionWhenPodsDisappear(t *testing.T) {
	app := appWithPods("a", "b", "c")
	model, _ := app.Update(key("G"))
	app = model.(App)

	model, _ = app.Update(podsMsg{pods: []PodSummary{{Name: "a"}}})
	app = model.(App)
	if app.selectedIdx != 0 {
		t.Fatalf("selection must clamp after shrink, got %d", app.selectedIdx)
	}
}

func TestEnterRequestsDetailAndEscReturns(t *testing.T) {
	source := &fakeSource{pods: []corev1.Pod{
		{ObjectMeta: metav1.ObjectMeta{Name: "web-0", Namespace: "shop"}},
	}}
	app := NewApp(source, "shop")
	model, _ := app.Update(podsMsg{pods: []PodSummary{{Name: "web-0"}}})
	app = model.(App)

	model, cmd := app.Update(key("enter"))
	app = model.(App)
	if cmd == nil {
		t.Fatalf("enter must issue a describe command")
	}
	msg := cmd()
	detail, ok := msg.(detailMsg)
	if !ok {
		t.Fatalf("expected detailMsg, got %T", msg)
	}
	model, _ = app.Update(detail)
	app = model.(App)
	if app.activePane != PaneDetail || app.detail == nil {
		t.Fatalf("detail pane not active after detailMsg")
	}

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(App)
	if app.activePane != PaneList || app.detail != nil {
		t.Fatalf("esc must return to the list")
	}
}

func TestErrorMessageLandsInStatusBar(t *testing.T) {
	app := appWithPods("a")
	model, _ := app.Update(errorMsg{errors.New("list pods: boom")})
	app = model.(App)
	if app.statusMsg != "error: list pods: boom" {
		t.Fatalf("unexpected status %q", app.statusMsg)
	}
}
