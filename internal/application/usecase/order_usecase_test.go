package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gracetone/gracetone-connect/internal/application/dto"
	"github.com/gracetone/gracetone-connect/internal/application/usecase"
	"github.com/gracetone/gracetone-connect/internal/domain"
	"github.com/gracetone/gracetone-connect/internal/domain/entity"
	"github.com/gracetone/gracetone-connect/internal/realtime"
)

// ──────────────────────────────────────────────────────────────────────────────
// Mock do repositório de pedidos (em memória)
// ──────────────────────────────────────────────────────────────────────────────

type mockOrderRepo struct {
	orders    map[string]*entity.Order
	creates   int
	updates   int
	createErr error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*entity.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, o *entity.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.creates++
	cp := *o
	m.orders[o.ID] = &cp
	return nil
}

func (m *mockOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := m.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (m *mockOrderRepo) List(_ context.Context, onlyActive bool) ([]*entity.Order, error) {
	out := []*entity.Order{}
	for _, o := range m.orders {
		if onlyActive && o.Status == entity.StatusArquivado {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

func (m *mockOrderRepo) ListByUser(_ context.Context, uid string) ([]*entity.Order, error) {
	out := []*entity.Order{}
	for _, o := range m.orders {
		if o.UserID == uid {
			cp := *o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	o, ok := m.orders[id]
	if !ok {
		return domain.ErrOrderNotFound
	}
	m.updates++
	o.Status = status
	return nil
}

func validOrderRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		Artist:      "Ministério Luz",
		Contact:     "luz@example.com",
		ServiceType: entity.ServiceCreation,
		Style:       "Worship",
		Rhythm:      "Balada",
		Objective:   entity.ObjectiveChurch,
		Description: "Uma canção de adoração para o culto de domingo, tom suave.",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

func TestSubmit_PedidoValido_CriaComStatusNovo(t *testing.T) {
	repo := newMockOrderRepo()
	hub := realtime.NewHub()
	uc := usecase.NewOrderUseCase(repo, hub)

	sub := hub.Subscribe()
	defer sub.Unsubscribe()

	out, fields, err := uc.Submit(context.Background(), "uid-1", validOrderRequest())
	require.NoError(t, err)
	require.Empty(t, fields, "pedido válido não deve devolver erros de campo")
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID, "o servidor gera o id")
	assert.Equal(t, entity.StatusNovo, out.Status, "todo pedido nasce como Novo")
	assert.Equal(t, 1, repo.creates)

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "uid-1", stored.UserID, "o pedido fica ligado à identidade autenticada")
	assert.False(t, stored.CreatedAt.IsZero(), "timestamp do servidor, nunca do cliente")

	select {
	case <-sub.C:
		// aviso publicado após a escrita confirmada
	default:
		t.Fatal("Submit deve avisar o hub após persistir")
	}
}

func TestSubmit_CampoInvalido_NaoEscreveNada(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateOrderRequest)
		field  string
	}{
		{"artista curto", func(r *dto.CreateOrderRequest) { r.Artist = "A" }, "artist"},
		{"contato curto", func(r *dto.CreateOrderRequest) { r.Contact = "abc" }, "contact"},
		{"serviço desconhecido", func(r *dto.CreateOrderRequest) { r.ServiceType = "remix" }, "serviceType"},
		{"estilo vazio", func(r *dto.CreateOrderRequest) { r.Style = "   " }, "style"},
		{"ritmo vazio", func(r *dto.CreateOrderRequest) { r.Rhythm = "" }, "rhythm"},
		{"objetivo desconhecido", func(r *dto.CreateOrderRequest) { r.Objective = "festa" }, "objective"},
		{"descrição curta", func(r *dto.CreateOrderRequest) { r.Description = "curta" }, "description"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMockOrderRepo()
			uc := usecase.NewOrderUseCase(repo, realtime.NewHub())

			req := validOrderRequest()
			tc.mutate(&req)

			out, fields, err := uc.Submit(context.Background(), "uid-1", req)
			require.NoError(t, err)
			assert.Nil(t, out)
			assert.Contains(t, fields, tc.field, "a violação deve apontar o campo")
			assert.Equal(t, 0, repo.creates, "rejeição é tudo ou nada: nenhuma escrita")
		})
	}
}

func TestSubmit_DescricaoLonga_Rejeitada(t *testing.T) {
	repo := newMockOrderRepo()
	uc := usecase.NewOrderUseCase(repo, realtime.NewHub())

	req := validOrderRequest()
	long := make([]rune, 501)
	for i := range long {
		long[i] = 'a'
	}
	req.Description = string(long)

	_, fields, err := uc.Submit(context.Background(), "uid-1", req)
	require.NoError(t, err)
	assert.Contains(t, fields, "description")
	assert.Equal(t, 0, repo.creates)
}

func TestSubmit_FalhaDePersistencia_PropagaErro(t *testing.T) {
	repo := newMockOrderRepo()
	repo.createErr = errors.New("db indisponível")
	hub := realtime.NewHub()
	uc := usecase.NewOrderUseCase(repo, hub)

	sub := hub.Subscribe()
	defer sub.Unsubscribe()

	out, fields, err := uc.Submit(context.Background(), "uid-1", validOrderRequest())
	assert.Error(t, err)
	assert.Nil(t, out)
	assert.Empty(t, fields)

	select {
	case <-sub.C:
		t.Fatal("falha de persistência não deve publicar aviso")
	default:
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStatus / Archive: o estado só avança
// ──────────────────────────────────────────────────────────────────────────────

func seedOrder(t *testing.T, repo *mockOrderRepo, uc *usecase.OrderUseCase) string {
	t.Helper()
	out, fields, err := uc.Submit(context.Background(), "uid-1", validOrderRequest())
	require.NoError(t, err)
	require.Empty(t, fields)
	return out.ID
}

func TestUpdateStatus_AvancoValido(t *testing.T) {
	repo := newMockOrderRepo()
	uc := usecase.NewOrderUseCase(repo, realtime.NewHub())
	id := seedOrder(t, repo, uc)

	require.NoError(t, uc.UpdateStatus(context.Background(), id, entity.StatusEmAnalise))
	require.NoError(t, uc.UpdateStatus(context.Background(), id, entity.StatusContactado))

	o, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusContactado, o.Status)
}

func TestUpdateStatus_Regressao_DevolveConflito(t *testing.T) {
	repo := newMockOrderRepo()
	uc := usecase.NewOrderUseCase(repo, realtime.NewHub())
	id := seedOrder(t, repo, uc)

	require.NoError(t, uc.UpdateStatus(context.Background(), id, entity.StatusContactado))

	err := uc.UpdateStatus(context.Background(), id, entity.StatusNovo)
	assert.ErrorIs(t, err, domain.ErrConflict, "o estado nunca regride")

	o, _ := repo.GetByID(context.Background(), id)
	assert.Equal(t, entity.StatusContactado, o.Status)
}

func TestUpdateStatus_StatusDesconhecido_Rejeitado(t *testing.T) {
	repo := newMockOrderRepo()
	uc := usecase.NewOrderUseCase(repo, realtime.NewHub())
	id := seedOrder(t, repo, uc)

	err := uc.UpdateStatus(context.Background(), id, "Cancelado")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateStatus_PedidoInexistente(t *testing.T) {
	uc := usecase.NewOrderUseCase(newMockOrderRepo(), realtime.NewHub())

	err := uc.UpdateStatus(context.Background(), "nao-existe", entity.StatusEmAnalise)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestArchive_Idempotente(t *testing.T) {
	repo := newMockOrderRepo()
	uc := usecase.NewOrderUseCase(repo, realtime.NewHub())
	id := seedOrder(t, repo, uc)

	require.NoError(t, uc.Archive(context.Background(), id))
	updatesAfterFirst := repo.updates

	// Segundo arquivamento: no-op de sucesso, sem nova escrita.
	require.NoError(t, uc.Archive(context.Background(), id))
	assert.Equal(t, updatesAfterFirst, repo.updates,
		"rearquivar é no-op: mesmo rank não regrava")

	o, _ := repo.GetByID(context.Background(), id)
	assert.Equal(t, entity.StatusArquivado, o.Status)
}

func TestArchive_SomeDaVisaoAtiva(t *testing.T) {
	repo := newMockOrderRepo()
	uc := usecase.NewOrderUseCase(repo, realtime.NewHub())
	id := seedOrder(t, repo, uc)
	seedOrder(t, repo, uc)

	require.NoError(t, uc.Archive(context.Background(), id))

	active, err := uc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, active, 1, "o arquivado sai da visão ativa")

	all, err := uc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2, "o registro permanece para histórico")
}

func TestListMine_FiltraPorIdentidade(t *testing.T) {
	repo := newMockOrderRepo()
	uc := usecase.NewOrderUseCase(repo, realtime.NewHub())

	_, _, err := uc.Submit(context.Background(), "uid-1", validOrderRequest())
	require.NoError(t, err)
	_, _, err = uc.Submit(context.Background(), "uid-2", validOrderRequest())
	require.NoError(t, err)

	mine, err := uc.ListMine(context.Background(), "uid-1")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "uid-1", mine[0].UserID)
}
