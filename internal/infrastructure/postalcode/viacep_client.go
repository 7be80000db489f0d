package postalcode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/usecase/interfaces"
)

const DefaultBaseURL = "https://viacep.com.br/ws"

// ViaCEPClient resolves CEPs through {base}/{cep}/json/.
type ViaCEPClient struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IPostalCodeClient = (*ViaCEPClient)(nil)

func NewViaCEPClient(baseURL string) *ViaCEPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &ViaCEPClient{baseURL: baseURL, client: &http.Client{Timeout: 10 * time.Second}}
}

type viaCEPResponse struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	IBGE        string `json:"ibge"`
	// ViaCEP answers 200 with {"erro": true} (older versions: "true") for unknown CEPs.
	Erro any `json:"erro"`
}

func (c *ViaCEPClient) Lookup(ctx context.Context, cep string) (entities.PostalAddress, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", c.baseURL, cep), nil)
	if err != nil {
		return entities.PostalAddress{}, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return entities.PostalAddress{}, err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusBadRequest {
		return entities.PostalAddress{}, interfaces.ErrPostalCodeUnknown
	}
	if res.StatusCode != http.StatusOK {
		return entities.PostalAddress{}, fmt.Errorf("viacep status %d", res.StatusCode)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return entities.PostalAddress{}, fmt.Errorf("viacep decode: %w", err)
	}
	switch v := body.Erro.(type) {
	case bool:
		if v {
			return entities.PostalAddress{}, interfaces.ErrPostalCodeUnknown
		}
	case string:
		if v == "true" {
			return entities.PostalAddress{}, interfaces.ErrPostalCodeUnknown
		}
	}

	return entities.PostalAddress{
		PostalCode:   cep,
		Street:       body.Logradouro,
		Complement:   body.Complemento,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		State:        body.UF,
		IBGECode:     body.IBGE,
	}, nil
}
