// File: internal/kube/client.go
// Brief: Kubernetes client construction from kubeconfig.

// Package kube resolves cluster access for kl: kubeconfig loading, the typed
// clientset, and the pod/log operations the tailer and the browser consume.
package kube

import (
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

// Client bundles the Kubernetes access used throughout the application.
type Client struct {
	RESTConfig *rest.Config
	Clientset  kubernetes.Interface
	// Namespace is the default namespace of the active kubeconfig context.
	Namespace string

	stats *RequestStats
}

// New builds a Kubernetes client honoring the provided kubeconfig path and
// context name. An empty path falls back to the standard loading rules
// (KUBECONFIG, ~/.kube/config, in-cluster).
func New(kubeconfigPath, contextName string) (*Client, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if kubeconfigPath != "" {
		expanded, err := homedir.Expand(kubeconfigPath)
		if err != nil {
			return nil, fmt.Errorf("expand kubeconfig path: %w", err)
		}
		loadingRules.Precedence = []string{filepath.Clean(expanded)}
	}

	overrides := &clientcmd.ConfigOverrides{ClusterInfo: api.Cluster{Server: ""}}
	if contextName != "" {
		overrides.CurrentContext = contextName
	}
	clientConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, overrides)
	namespace, _, err := clientConfig.Namespace()
	if err != nil {
		return nil, fmt.Errorf("resolve default namespace: %w", err)
	}
	restConfig, err := clientConfig.ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("build rest config: %w", err)
	}
	rest.SetDefaultWarningHandler(rest.NoWarnings{})

	// No client-wide timeout: it would sever follow-mode log streams that are
	// meant to run indefinitely. Streams end only with their request context.
	restConfig.Timeout = 0
	restConfig.QPS = 50
	restConfig.Burst = 100

	stats := newRequestStats()
	attachRequestStats(restConfig, stats)

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return nil, fmt.Errorf("create typed client: %w", err)
	}

	return &Client{
		RESTConfig: restConfig,
		Clientset:  clientset,
		Namespace:  namespace,
		stats:      stats,
	}, nil
}

// RequestStats reports accumulated API request latency for this client.
func (c *Client) RequestStats() RequestSnapshot {
	if c == nil {
		return RequestSnapshot{}
	}
	return c.stats.Snapshot()
}

// Server returns the API server URL of the active context, for display.
func (c *Client) Server() string {
	if c.RESTConfig == nil {
		return ""
	}
	return c.RESTConfig.Host
}
