package fiscal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const defaultTimeout = 30 * time.Second

// HTTPGateway talks to the invoice issuance API.
//
//	POST {base}/documents             {type, number, customer, items, value} -> {id, status, access_key}
//	POST {base}/documents/{id}/cancel {reason}
type HTTPGateway struct {
	baseURL  string
	client   *http.Client
	mockMode bool
}

var _ interfaces.IFiscalGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(baseURL string, mockMode bool) *HTTPGateway {
	return &HTTPGateway{
		baseURL:  strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:   &http.Client{Timeout: defaultTimeout},
		mockMode: mockMode,
	}
}

type issueCustomer struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type issueItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

type issueRequest struct {
	Type     string         `json:"type"`
	Number   string         `json:"number"`
	Customer *issueCustomer `json:"customer,omitempty"`
	Items    []issueItem    `json:"items"`
	Value    float64        `json:"value"`
}

type issueResponse struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	AccessKey string `json:"access_key"`
}

func (g *HTTPGateway) Issue(ctx context.Context, apiKey string, doc entities.FiscalDocument) (interfaces.FiscalIssueResult, error) {
	log := logger.For("fiscal", "gateway").WithField("number", doc.Number)
	if g.mockMode {
		log.Info("[fiscal][gateway] mock issue")
		return interfaces.FiscalIssueResult{
			ProviderRef: "mock-" + uuid.NewString(),
			AccessKey:   fmt.Sprintf("%044d", time.Now().UTC().UnixNano()),
			Status:      "authorized",
		}, nil
	}
	if g.baseURL == "" || strings.TrimSpace(apiKey) == "" {
		return interfaces.FiscalIssueResult{}, interfaces.ErrFiscalGatewayNotConfigured
	}

	req := issueRequest{
		Type:   string(doc.Type),
		Number: doc.Number,
		Items:  make([]issueItem, 0, len(doc.Items)),
		Value:  doc.Value,
	}
	if doc.CustomerID != "" || doc.CustomerName != "" {
		req.Customer = &issueCustomer{ID: doc.CustomerID, Name: doc.CustomerName}
	}
	for _, it := range doc.Items {
		req.Items = append(req.Items, issueItem{Description: it.Description, Quantity: it.Quantity, UnitPrice: it.UnitPrice})
	}

	var resp issueResponse
	if err := g.post(ctx, apiKey, "/documents", req, &resp); err != nil {
		log.WithError(err).Error("[fiscal][gateway] issue failed")
		return interfaces.FiscalIssueResult{}, err
	}
	log.WithField("provider_ref", resp.ID).Info("[fiscal][gateway] issued")
	return interfaces.FiscalIssueResult{ProviderRef: resp.ID, AccessKey: resp.AccessKey, Status: resp.Status}, nil
}

func (g *HTTPGateway) Cancel(ctx context.Context, apiKey string, providerRef string, reason string) error {
	log := logger.For("fiscal", "gateway").WithField("provider_ref", providerRef)
	if g.mockMode {
		log.Info("[fiscal][gateway] mock cancel")
		return nil
	}
	if g.baseURL == "" || strings.TrimSpace(apiKey) == "" {
		return interfaces.ErrFiscalGatewayNotConfigured
	}
	body := map[string]string{"reason": reason}
	if err := g.post(ctx, apiKey, "/documents/"+providerRef+"/cancel", body, nil); err != nil {
		log.WithError(err).Error("[fiscal][gateway] cancel failed")
		return err
	}
	return nil
}

func (g *HTTPGateway) post(ctx context.Context, apiKey, path string, in any, out any) error {
	b, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+strings.TrimSpace(apiKey))

	res, err := g.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return err
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return fmt.Errorf("fiscal api status %d: %s", res.StatusCode, strings.TrimSpace(string(raw)))
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}
