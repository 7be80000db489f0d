package usecase

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"paulocell_pdv/internal/adapter/persistence/repository"
	"paulocell_pdv/internal/adapter/persistence/store"
	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
	mock_interfaces "paulocell_pdv/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type fiscalFixture struct {
	uc        *FiscalDocumentUseCase
	customers *repository.CustomerRepository
	settings  *repository.SettingsRepository
	gateway   *mock_interfaces.MockIFiscalGateway
}

func newFiscalFixture(t *testing.T, withGateway bool) fiscalFixture {
	ctrl := gomock.NewController(t)
	st := store.NewMemoryStore()
	keys := repository.NewKeys("test_")
	f := fiscalFixture{
		customers: repository.NewCustomerRepository(st, keys),
		settings:  repository.NewSettingsRepository(st, keys),
		gateway:   mock_interfaces.NewMockIFiscalGateway(ctrl),
	}
	var gw interfaces.IFiscalGateway
	if withGateway {
		gw = f.gateway
	}
	f.uc = NewFiscalDocumentUseCase(repository.NewFiscalDocumentRepository(st, keys), f.customers, f.settings, gw, "env-key")
	return f
}

var fiscalItems = []entities.FiscalDocumentItem{
	{Description: " Troca de tela ", Quantity: 1, UnitPrice: 250},
	{Description: "Película", Quantity: 2, UnitPrice: 19.99},
}

func TestFiscalDocumentUseCase_Issue(t *testing.T) {
	t.Run("issues through the gateway with the settings key", func(t *testing.T) {
		ctx := context.Background()
		f := newFiscalFixture(t, true)
		_, _ = f.customers.Create(ctx, entities.Customer{ID: "c-1", Name: "Maria"})
		_ = f.settings.Save(ctx, entities.CompanySettings{Name: "Loja", FiscalAPIKey: "settings-key"})

		f.gateway.EXPECT().Issue(gomock.Any(), "settings-key", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, doc entities.FiscalDocument) (interfaces.FiscalIssueResult, error) {
				if doc.Value != 289.98 || doc.Number != "NFCE-000001" || doc.CustomerName != "Maria" {
					t.Fatalf("unexpected document %+v", doc)
				}
				return interfaces.FiscalIssueResult{ProviderRef: "ref-1", AccessKey: "3526"}, nil
			},
		)

		doc, err := f.uc.Issue(ctx, FiscalDocumentInput{Type: entities.FiscalDocumentNFCe, CustomerID: "c-1", Items: fiscalItems})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Status != entities.FiscalDocumentEmitida || doc.ProviderRef != "ref-1" || doc.Items[0].Description != "Troca de tela" {
			t.Fatalf("unexpected document %+v", doc)
		}
	})

	t.Run("without gateway documents stay pending and numbers continue past the trash", func(t *testing.T) {
		ctx := context.Background()
		f := newFiscalFixture(t, false)

		first, err := f.uc.Issue(ctx, FiscalDocumentInput{Type: entities.FiscalDocumentNFe, Items: fiscalItems})
		if err != nil || first.Status != entities.FiscalDocumentPendente || first.Number != "NFE-000001" {
			t.Fatalf("unexpected first document err=%v doc=%+v", err, first)
		}
		if _, err := f.uc.MoveToTrash(ctx, first.ID); err != nil {
			t.Fatalf("unexpected trash error: %v", err)
		}
		second, _ := f.uc.Issue(ctx, FiscalDocumentInput{Type: entities.FiscalDocumentNFe, Items: fiscalItems})
		if second.Number != "NFE-000002" {
			t.Fatalf("expected NFE-000002, got %s", second.Number)
		}
		other, _ := f.uc.Issue(ctx, FiscalDocumentInput{Type: entities.FiscalDocumentNFSe, Items: fiscalItems})
		if other.Number != "NFSE-000001" {
			t.Fatalf("each type has its own sequence, got %s", other.Number)
		}
	})

	t.Run("gateway without key keeps pending", func(t *testing.T) {
		f := newFiscalFixture(t, true)
		f.gateway.EXPECT().Issue(gomock.Any(), "env-key", gomock.Any()).Return(interfaces.FiscalIssueResult{}, interfaces.ErrFiscalGatewayNotConfigured)

		doc, err := f.uc.Issue(context.Background(), FiscalDocumentInput{Type: entities.FiscalDocumentNFCe, Items: fiscalItems})
		if err != nil || doc.Status != entities.FiscalDocumentPendente {
			t.Fatalf("expected pending document, err=%v doc=%+v", err, doc)
		}
	})

	t.Run("gateway failure stores nothing", func(t *testing.T) {
		ctx := context.Background()
		f := newFiscalFixture(t, true)
		f.gateway.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.FiscalIssueResult{}, errors.New("503"))

		_, err := f.uc.Issue(ctx, FiscalDocumentInput{Type: entities.FiscalDocumentNFCe, Items: fiscalItems})
		if !errors.Is(err, ErrFiscalGatewayFailed) {
			t.Fatalf("expected ErrFiscalGatewayFailed, got %v", err)
		}
		docs, _ := f.uc.List(ctx, FiscalDocumentFilter{})
		if len(docs) != 0 {
			t.Fatalf("expected no stored documents, got %d", len(docs))
		}
	})

	cases := []struct {
		name string
		in   FiscalDocumentInput
		want error
	}{
		{name: "bad type", in: FiscalDocumentInput{Type: "cte", Items: fiscalItems}, want: ErrInvalidFiscalDocumentType},
		{name: "no items", in: FiscalDocumentInput{Type: entities.FiscalDocumentNFe}, want: ErrInvalidFiscalDocumentItems},
		{name: "zero quantity", in: FiscalDocumentInput{Type: entities.FiscalDocumentNFe, Items: []entities.FiscalDocumentItem{{Description: "x", UnitPrice: 1}}}, want: ErrInvalidFiscalDocumentItems},
		{name: "unknown customer", in: FiscalDocumentInput{Type: entities.FiscalDocumentNFe, CustomerID: "nope", Items: fiscalItems}, want: ErrFiscalCustomerNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFiscalFixture(t, false)
			if _, err := f.uc.Issue(context.Background(), tc.in); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestFiscalDocumentUseCase_RetryAndCancel(t *testing.T) {
	ctx := context.Background()
	f := newFiscalFixture(t, true)

	f.gateway.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.FiscalIssueResult{}, interfaces.ErrFiscalGatewayNotConfigured)
	pending, _ := f.uc.Issue(ctx, FiscalDocumentInput{Type: entities.FiscalDocumentNFCe, Items: fiscalItems})

	if _, err := f.uc.Cancel(ctx, pending.ID, "erro"); !errors.Is(err, ErrFiscalDocumentNotCancellable) {
		t.Fatalf("pending documents can not be cancelled, got %v", err)
	}

	f.gateway.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.FiscalIssueResult{ProviderRef: "ref-9"}, nil)
	issued, err := f.uc.RetryIssue(ctx, pending.ID)
	if err != nil || issued.Status != entities.FiscalDocumentEmitida {
		t.Fatalf("unexpected retry err=%v doc=%+v", err, issued)
	}
	if _, err := f.uc.RetryIssue(ctx, pending.ID); !errors.Is(err, ErrFiscalDocumentNotPending) {
		t.Fatalf("expected ErrFiscalDocumentNotPending, got %v", err)
	}

	f.gateway.EXPECT().Cancel(gomock.Any(), "env-key", "ref-9", "cliente desistiu").Return(nil)
	cancelled, err := f.uc.Cancel(ctx, pending.ID, " cliente desistiu ")
	if err != nil || cancelled.Status != entities.FiscalDocumentCancelada || cancelled.CancelledAt == nil {
		t.Fatalf("unexpected cancel err=%v doc=%+v", err, cancelled)
	}
}

func TestFiscalDocumentUseCase_ListAndTrash(t *testing.T) {
	ctx := context.Background()
	f := newFiscalFixture(t, false)
	a, _ := f.uc.Issue(ctx, FiscalDocumentInput{Type: entities.FiscalDocumentNFe, Items: fiscalItems})
	time.Sleep(time.Millisecond)
	b, _ := f.uc.Issue(ctx, FiscalDocumentInput{Type: entities.FiscalDocumentNFCe, Items: fiscalItems})

	all, _ := f.uc.List(ctx, FiscalDocumentFilter{})
	if len(all) != 2 || all[0].ID != b.ID {
		t.Fatalf("expected newest first, got %+v", all)
	}
	nfe, _ := f.uc.List(ctx, FiscalDocumentFilter{Type: entities.FiscalDocumentNFe})
	if len(nfe) != 1 || nfe[0].ID != a.ID {
		t.Fatalf("unexpected type filter %+v", nfe)
	}
	future := time.Now().Add(time.Hour)
	none, _ := f.uc.List(ctx, FiscalDocumentFilter{From: &future})
	if len(none) != 0 {
		t.Fatalf("expected empty range, got %d", len(none))
	}
	if _, err := f.uc.List(ctx, FiscalDocumentFilter{Status: "x"}); !errors.Is(err, ErrInvalidFiscalDocumentStatus) {
		t.Fatalf("expected ErrInvalidFiscalDocumentStatus, got %v", err)
	}

	if _, err := f.uc.MoveToTrash(ctx, a.ID); err != nil {
		t.Fatalf("unexpected trash error: %v", err)
	}
	trash, _ := f.uc.ListTrash(ctx)
	if len(trash) != 1 || trash[0].DeletedAt == nil {
		t.Fatalf("unexpected trash %+v", trash)
	}
	restored, err := f.uc.Restore(ctx, a.ID)
	if err != nil || restored.DeletedAt != nil {
		t.Fatalf("unexpected restore err=%v doc=%+v", err, restored)
	}
	_, _ = f.uc.MoveToTrash(ctx, a.ID)
	if err := f.uc.Purge(ctx, a.ID); err != nil {
		t.Fatalf("unexpected purge error: %v", err)
	}
	if err := f.uc.Purge(ctx, a.ID); !errors.Is(err, ErrFiscalDocumentNotFound) {
		t.Fatalf("expected ErrFiscalDocumentNotFound, got %v", err)
	}
	_, _ = f.uc.MoveToTrash(ctx, b.ID)
	if n, err := f.uc.EmptyTrash(ctx); err != nil || n != 1 {
		t.Fatalf("unexpected empty trash err=%v n=%d", err, n)
	}
}

func TestFiscalDocumentUseCase_ConcurrentIssueAssignsDistinctNumbers(t *testing.T) {
	ctx := context.Background()
	f := newFiscalFixture(t, true)

	const n = 5
	f.gateway.EXPECT().Issue(gomock.Any(), gomock.Any(), gomock.Any()).Times(n).DoAndReturn(
		func(_ context.Context, _ string, doc entities.FiscalDocument) (interfaces.FiscalIssueResult, error) {
			time.Sleep(10 * time.Millisecond)
			return interfaces.FiscalIssueResult{ProviderRef: "ref-" + doc.Number}, nil
		},
	)

	numbers := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := f.uc.Issue(ctx, FiscalDocumentInput{Type: entities.FiscalDocumentNFe, Items: fiscalItems})
			if err != nil {
				t.Errorf("issue %d: %v", i, err)
				return
			}
			numbers[i] = doc.Number
		}(i)
	}
	wg.Wait()

	sort.Strings(numbers)
	want := []string{"NFE-000001", "NFE-000002", "NFE-000003", "NFE-000004", "NFE-000005"}
	for i := range want {
		if numbers[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, numbers)
		}
	}
	stored, err := f.uc.List(ctx, FiscalDocumentFilter{})
	if err != nil || len(stored) != n {
		t.Fatalf("expected %d stored documents, got %d (err=%v)", n, len(stored), err)
	}
}
