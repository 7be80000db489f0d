package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound                = errors.New("payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentServiceID        = errors.New("invalid service id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrServiceNotPayable              = errors.New("service not completed")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IPaymentUseCase charges completed repair services.
type IPaymentUseCase interface {
	ChargeService(ctx context.Context, serviceID string, mpPayload json.RawMessage) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByServiceID(ctx context.Context, serviceID string) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	serviceRepo  interfaces.IServiceRepository
	customerRepo interfaces.ICustomerRepository
	gateway      interfaces.IPaymentGateway
	mockMode     bool
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IPaymentRepository,
	serviceRepo interfaces.IServiceRepository,
	customerRepo interfaces.ICustomerRepository,
	gateway interfaces.IPaymentGateway,
	mockMode bool,
) *PaymentUseCase {
	return &PaymentUseCase{
		repo:         repo,
		serviceRepo:  serviceRepo,
		customerRepo: customerRepo,
		gateway:      gateway,
		mockMode:     mockMode,
	}
}

func (u *PaymentUseCase) ChargeService(ctx context.Context, serviceID string, mpPayload json.RawMessage) (entities.Payment, error) {
	log := logger.For("payment", "usecase")
	serviceID = strings.TrimSpace(serviceID)
	log.WithField("payload_len", len(mpPayload)).Infof("[payment][usecase] charge start service_id=%q", serviceID)
	if serviceID == "" {
		return entities.Payment{}, ErrInvalidPaymentServiceID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.mockMode {
			log.Infof("[payment][usecase] invalid payload service_id=%s", serviceID)
			return entities.Payment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		log.Infof("[payment][usecase] gateway not configured service_id=%s", serviceID)
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}

	svc, err := u.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Payment{}, err
	}
	if svc.ID == "" {
		return entities.Payment{}, ErrServiceNotFound
	}
	if svc.Status != entities.ServiceStatusCompleted && svc.Status != entities.ServiceStatusDelivered {
		log.Infof("[payment][usecase] service not payable service_id=%s status=%s", serviceID, svc.Status)
		return entities.Payment{}, ErrServiceNotPayable
	}
	customer, err := u.customerRepo.GetByID(ctx, svc.CustomerID)
	if err != nil {
		return entities.Payment{}, err
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.mockMode {
			return entities.Payment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
		log.Infof("[payment][usecase] missing payment_method_id service_id=%s", serviceID)
		return entities.Payment{}, ErrInvalidMPPayload
	}
	if !u.mockMode {
		normalizeSandboxPayerFromUserID(reqMap)
		ensurePayerDefaults(reqMap, customer.Email)
		if !hasPayer(reqMap) {
			log.Infof("[payment][usecase] missing/invalid payer service_id=%s", serviceID)
			return entities.Payment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = serviceID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Serviço %s", serviceID)
	}
	// The stored total is the only source for the amount.
	reqMap["transaction_amount"] = svc.TotalCost
	if b, err := json.Marshal(reqMap); err == nil {
		mpPayload = b
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, mpPayload)
	if err != nil {
		log.WithError(err).Errorf("[payment][usecase] payment gateway failed service_id=%s", serviceID)
		switch {
		case isGatewayCustomerNotFound(err):
			return entities.Payment{}, ErrPaymentGatewayCustomerNotFound
		case isGatewayInvalidUsers(err):
			return entities.Payment{}, ErrPaymentGatewayInvalidUsers
		case isGatewayUnauthorized(err):
			return entities.Payment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.Payment{}, ErrPaymentGatewayBadRequest
		}
		return entities.Payment{}, err
	}
	if providerPaymentID == "" {
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.WithError(err).Warnf("[payment][usecase] provider response unmarshal failed service_id=%s", serviceID)
	}

	method, _ := reqMap["payment_method_id"].(string)
	p := entities.Payment{
		ID:                 providerPaymentID,
		ServiceID:          serviceID,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		Amount:             svc.TotalCost,
		Method:             method,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.WithError(err).Errorf("[payment][usecase] payment repository create failed service_id=%s payment_id=%s", serviceID, p.ID)
		return entities.Payment{}, err
	}
	log.Infof("[payment][usecase] charge success service_id=%s payment_id=%s status=%s", serviceID, created.ID, created.Status)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByServiceID(ctx context.Context, serviceID string) ([]entities.Payment, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return nil, ErrInvalidPaymentServiceID
	}
	return u.repo.ListByServiceID(ctx, serviceID)
}

// paymentStatusFromProvider maps Mercado Pago statuses to the stored ones.
func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(status) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	}
	return entities.PaymentStatusPendente
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.email from the customer when the request
// has neither id nor email, falling back to the sandbox test user.
func ensurePayerDefaults(m map[string]any, customerEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case strings.TrimSpace(customerEmail) != "":
		payer["email"] = strings.TrimSpace(customerEmail)
	case strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")) != "":
		payer["email"] = strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	case strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-"):
		payer["email"] = "test_user_br@testuser.com"
	}
}

// normalizeSandboxPayerFromUserID swaps a configured sandbox payer id for its
// e-mail, which is what the test environment accepts.
func normalizeSandboxPayerFromUserID(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}
	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != configuredUserID {
		return
	}
	payer["email"] = configuredEmail
	delete(payer, "id")
}

func isGatewayBadRequest(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
