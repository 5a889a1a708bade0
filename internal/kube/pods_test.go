// pods_test.go covers the pod access wrappers against a fake clientset.
package kube

import (
	"context"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes/fake"
)

func testClient(objects ...runtime.Object) *Client {
	return &Client{Clientset: fake.NewSimpleClientset(objects...)}
}

func TestListPodsScopedToNamespace(t *testing.T) {
	client := testClient(
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-0", Namespace: "shop"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-1", Namespace: "shop"}},
		&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "other-0", Namespace: "infra"}},
	)
	pods, err := client.ListPods(context.Background(), "shop")
	if err != nil {
		t.Fatalf("ListPods returned error: %v", err)
	}
	if len(pods) != 2 {
		t.Fatalf("expected 2 pods in shop, got %d", len(pods))
	}
	for _, pod := range pods {
		if pod.Namespace != "shop" {
			t.Fatalf("pod %s leaked from namespace %s", pod.Name, pod.Namespace)
		}
	}
}

func TestGetPodReturnsNamedPod(t *testing.T) {
	client := testClient(&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-0", Namespace: "shop"}})
	pod, err := client.GetPod(context.Background(), "shop", "web-0")
	if err != nil {
		t.Fatalf("GetPod returned error: %v", err)
	}
	if pod.Name != "web-0" {
		t.Fatalf("unexpected pod %q", pod.Name)
	}
	if _, err := client.GetPod(context.Background(), "shop", "missing"); err == nil {
		t.Fatalf("expected error for missing pod")
	}
}

func TestOpenLogStreamReturnsReadableStream(t *testing.T) {
	client := testClient(&corev1.Pod{ObjectMeta: metav1.ObjectMeta{Name: "web-0", Namespace: "shop"}})
	stream, err := client.OpenLogStream(context.Background(), "shop", "web-0", 100, false)
	if err != nil {
		t.Fatalf("OpenLogStream returned error: %v", err)
	}
	defer stream.Close()
	buf := make([]byte, 64)
	if _, err := stream.Read(buf); err != nil {
		t.Fatalf("stream not readable: %v", err)
	}
}
