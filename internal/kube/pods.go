// File: internal/kube/pods.go
// Brief: Pod listing, lookup, and log stream access.

package kube

import (
	"context"
	"fmt"
	"io"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ListPods returns all pods in the namespace.
func (c *Client) ListPods(ctx context.Context, namespace string) ([]corev1.Pod, error) {
	list, err := c.Clientset.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list pods in %s: %w", namespace, err)
	}
	return list.Items, nil
}

// GetPod fetches a single pod by name.
func (c *Client) GetPod(ctx context.Context, namespace, name string) (*corev1.Pod, error) {
	pod, err := c.Clientset.CoreV1().Pods(namespace).Get(ctx, name, metav1.GetOptions{})
	if err != nil {
		return nil, fmt.Errorf("get pod %s/%s: %w", namespace, name, err)
	}
	return pod, nil
}

// OpenLogStream opens a log stream for the pod, requesting the last
// tailLines lines as initial backlog. With follow the stream stays open and
// yields new lines until the pod stops, the connection drops, or ctx is
// cancelled. tailLines < 0 requests the full available backlog.
func (c *Client) OpenLogStream(ctx context.Context, namespace, pod string, tailLines int64, follow bool) (io.ReadCloser, error) {
	opts := &corev1.PodLogOptions{Follow: follow}
	if tailLines >= 0 {
		tail := tailLines
		opts.TailLines = &tail
	}
	stream, err := c.Clientset.CoreV1().Pods(namespace).GetLogs(pod, opts).Stream(ctx)
	if err != nil {
		return nil, fmt.Errorf("stream logs for %s/%s: %w", namespace, pod, err)
	}
	return stream, nil
}
