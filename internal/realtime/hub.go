package realtime

import "sync"

// Hub fan-out em processo das mudanças na coleção de pedidos.
// O contrato é de snapshot: o assinante recebe um aviso por mutação confirmada
// e relê a lista completa, nunca um diff que precise reconciliar.
type Hub struct {
	mu   sync.Mutex
	subs map[*Subscription]struct{}
}

// Subscription handle de uma assinatura ativa. C recebe no máximo um aviso
// pendente por vez (avisos coalescem: o snapshot seguinte já cobre todos).
type Subscription struct {
	C   chan struct{}
	hub *Hub
}

// NewHub constrói o hub.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Subscribe registra um assinante. O chamador deve liberar com Unsubscribe
// ao desmontar a visão, para não deixar listeners órfãos.
func (h *Hub) Subscribe() *Subscription {
	s := &Subscription{C: make(chan struct{}, 1), hub: h}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Unsubscribe remove a assinatura imediatamente. Idempotente.
func (s *Subscription) Unsubscribe() {
	s.hub.mu.Lock()
	delete(s.hub.subs, s)
	s.hub.mu.Unlock()
}

// Publish avisa todos os assinantes de que a coleção mudou.
// Nunca bloqueia: se já há um aviso pendente no canal, o novo coalesce nele.
func (h *Hub) Publish() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for s := range h.subs {
		select {
		case s.C <- struct{}{}:
		default:
		}
	}
}

// Subscribers devolve o número de assinaturas ativas.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
