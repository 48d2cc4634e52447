package profile

import (
	"context"
	"sync"
)

type fakeWriter struct {
	mu      sync.Mutex
	agents  []*AgentProfile
	clients []*ClientProfile
	id      string
	err     error
}

func (w *fakeWriter) CreateAgentProfile(_ context.Context, p *AgentProfile) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.agents = append(w.agents, p.Clone())
	return w.id, w.err
}

func (w *fakeWriter) CreateClientProfile(_ context.Context, p *ClientProfile) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.clients = append(w.clients, p.Clone())
	return w.id, w.err
}
