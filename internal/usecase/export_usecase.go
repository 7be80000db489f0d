package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"paulocell_pdv/internal/domain/entities"
	"paulocell_pdv/internal/infrastructure/logger"
	"paulocell_pdv/internal/usecase/interfaces"
	"paulocell_pdv/pkg"
)

var (
	ErrUnknownExportDataset = errors.New("unknown export dataset")
	ErrUnknownExportFormat  = errors.New("unknown export format")
	ErrDocumentRenderer     = errors.New("document renderer not configured")
)

// Export datasets.
const (
	ExportCustomers = "customers"
	ExportServices  = "services"
	ExportInventory = "inventory"
	ExportDocuments = "documents"
)

// ExportFile is a generated download.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

type IExportUseCase interface {
	Export(ctx context.Context, dataset string, format string) (ExportFile, error)
	FiscalDocumentPDF(ctx context.Context, id string) (ExportFile, error)
	ServiceReceiptPDF(ctx context.Context, id string) (ExportFile, error)
}

// ExportUseCase builds tables from the collections and hands them to the
// format exporters. archive may be nil.
type ExportUseCase struct {
	customers interfaces.ICustomerRepository
	devices   interfaces.IDeviceRepository
	services  interfaces.IServiceRepository
	inventory interfaces.IInventoryRepository
	documents interfaces.IFiscalDocumentRepository
	settings  interfaces.ISettingsRepository
	exporters map[string]interfaces.ITableExporter
	renderer  interfaces.IDocumentRenderer
	archive   interfaces.IArtifactArchive
	now       func() time.Time
}

var _ IExportUseCase = (*ExportUseCase)(nil)

func NewExportUseCase(
	customers interfaces.ICustomerRepository,
	devices interfaces.IDeviceRepository,
	services interfaces.IServiceRepository,
	inventory interfaces.IInventoryRepository,
	documents interfaces.IFiscalDocumentRepository,
	settings interfaces.ISettingsRepository,
	exporters []interfaces.ITableExporter,
	renderer interfaces.IDocumentRenderer,
	archive interfaces.IArtifactArchive,
) *ExportUseCase {
	byFormat := make(map[string]interfaces.ITableExporter, len(exporters))
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &ExportUseCase{
		customers: customers,
		devices:   devices,
		services:  services,
		inventory: inventory,
		documents: documents,
		settings:  settings,
		exporters: byFormat,
		renderer:  renderer,
		archive:   archive,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (u *ExportUseCase) Export(ctx context.Context, dataset, format string) (ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	exporter, ok := u.exporters[format]
	if !ok {
		return ExportFile{}, ErrUnknownExportFormat
	}

	var (
		table interfaces.ExportTable
		err   error
	)
	switch strings.ToLower(strings.TrimSpace(dataset)) {
	case ExportCustomers:
		table, err = u.customersTable(ctx)
	case ExportServices:
		table, err = u.servicesTable(ctx)
	case ExportInventory:
		table, err = u.inventoryTable(ctx)
	case ExportDocuments:
		table, err = u.documentsTable(ctx)
	default:
		return ExportFile{}, ErrUnknownExportDataset
	}
	if err != nil {
		return ExportFile{}, err
	}

	data, err := exporter.Render(table)
	if err != nil {
		return ExportFile{}, fmt.Errorf("render %s: %w", format, err)
	}
	file := ExportFile{
		Name:        fmt.Sprintf("%s_%s.%s", strings.ToLower(dataset), u.now().Format("20060102_150405"), exporter.Format()),
		ContentType: exporter.ContentType(),
		Data:        data,
	}
	u.archiveFile(ctx, file)
	return file, nil
}

func (u *ExportUseCase) FiscalDocumentPDF(ctx context.Context, id string) (ExportFile, error) {
	if u.renderer == nil {
		return ExportFile{}, ErrDocumentRenderer
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ExportFile{}, ErrInvalidFiscalDocumentID
	}
	doc, err := u.documents.GetByID(ctx, id)
	if err != nil {
		return ExportFile{}, err
	}
	if doc.ID == "" {
		return ExportFile{}, ErrFiscalDocumentNotFound
	}
	company, err := u.company(ctx)
	if err != nil {
		return ExportFile{}, err
	}
	data, err := u.renderer.RenderFiscalDocument(company, doc)
	if err != nil {
		return ExportFile{}, err
	}
	file := ExportFile{Name: strings.ToLower(doc.Number) + ".pdf", ContentType: "application/pdf", Data: data}
	u.archiveFile(ctx, file)
	return file, nil
}

func (u *ExportUseCase) ServiceReceiptPDF(ctx context.Context, id string) (ExportFile, error) {
	if u.renderer == nil {
		return ExportFile{}, ErrDocumentRenderer
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ExportFile{}, ErrInvalidServiceID
	}
	svc, err := u.services.GetByID(ctx, id)
	if err != nil {
		return ExportFile{}, err
	}
	if svc.ID == "" {
		return ExportFile{}, ErrServiceNotFound
	}
	customer, err := u.customers.GetByID(ctx, svc.CustomerID)
	if err != nil {
		return ExportFile{}, err
	}
	device, err := u.devices.GetByID(ctx, svc.DeviceID)
	if err != nil {
		return ExportFile{}, err
	}
	company, err := u.company(ctx)
	if err != nil {
		return ExportFile{}, err
	}
	data, err := u.renderer.RenderServiceReceipt(company, svc, customer, device)
	if err != nil {
		return ExportFile{}, err
	}
	file := ExportFile{Name: "os_" + svc.ID + ".pdf", ContentType: "application/pdf", Data: data}
	u.archiveFile(ctx, file)
	return file, nil
}

func (u *ExportUseCase) company(ctx context.Context) (entities.CompanySettings, error) {
	s, found, err := u.settings.Get(ctx)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if !found {
		return entities.DefaultCompanySettings(), nil
	}
	return s, nil
}

func (u *ExportUseCase) archiveFile(ctx context.Context, f ExportFile) {
	if u.archive == nil {
		return
	}
	if err := u.archive.Put(ctx, f.Name, f.ContentType, f.Data); err != nil {
		logger.For("export", "usecase").WithError(err).WithField("file", f.Name).Warn("[export][usecase] archive failed")
	}
}

func (u *ExportUseCase) customersTable(ctx context.Context) (interfaces.ExportTable, error) {
	all, err := u.customers.List(ctx)
	if err != nil {
		return interfaces.ExportTable{}, err
	}
	t := interfaces.ExportTable{
		Title:   "Clientes",
		Headers: []string{"Nome", "Tipo", "CPF/CNPJ", "E-mail", "Telefone", "Cidade", "UF", "Cadastro"},
	}
	for _, c := range all {
		kind := "Pessoa física"
		if c.IsCompany {
			kind = "Pessoa jurídica"
		}
		t.Rows = append(t.Rows, []string{c.Name, kind, c.TaxID, c.Email, c.Phone, c.City, c.State, pkg.FormatDate(c.CreatedAt)})
	}
	return t, nil
}

func (u *ExportUseCase) servicesTable(ctx context.Context) (interfaces.ExportTable, error) {
	services, err := u.services.List(ctx)
	if err != nil {
		return interfaces.ExportTable{}, err
	}
	customers, err := u.customers.List(ctx)
	if err != nil {
		return interfaces.ExportTable{}, err
	}
	devices, err := u.devices.List(ctx)
	if err != nil {
		return interfaces.ExportTable{}, err
	}
	customerNames := make(map[string]string, len(customers))
	for _, c := range customers {
		customerNames[c.ID] = c.Name
	}
	deviceLabels := make(map[string]string, len(devices))
	for _, d := range devices {
		deviceLabels[d.ID] = d.Label()
	}

	t := interfaces.ExportTable{
		Title:   "Serviços",
		Headers: []string{"Cliente", "Aparelho", "Descrição", "Status", "Peças", "Mão de obra", "Total", "Abertura"},
	}
	for _, s := range services {
		t.Rows = append(t.Rows, []string{
			customerNames[s.CustomerID],
			deviceLabels[s.DeviceID],
			s.Description,
			s.Status.Label(),
			pkg.FormatBRL(entities.RoundMoney(s.PartsCost())),
			pkg.FormatBRL(s.LaborCost),
			pkg.FormatBRL(s.TotalCost),
			pkg.FormatDate(s.CreatedAt),
		})
	}
	return t, nil
}

func (u *ExportUseCase) inventoryTable(ctx context.Context) (interfaces.ExportTable, error) {
	all, err := u.inventory.List(ctx)
	if err != nil {
		return interfaces.ExportTable{}, err
	}
	t := interfaces.ExportTable{
		Title:   "Estoque",
		Headers: []string{"Nome", "SKU", "Categoria", "Preço", "Estoque", "Mínimo", "Valor em estoque"},
	}
	for _, it := range all {
		t.Rows = append(t.Rows, []string{
			it.Name,
			it.SKU,
			it.Category,
			pkg.FormatBRL(it.Price),
			strconv.Itoa(it.CurrentStock),
			strconv.Itoa(it.MinimumStock),
			pkg.FormatBRL(entities.RoundMoney(it.StockValue())),
		})
	}
	return t, nil
}

func (u *ExportUseCase) documentsTable(ctx context.Context) (interfaces.ExportTable, error) {
	all, err := u.documents.List(ctx)
	if err != nil {
		return interfaces.ExportTable{}, err
	}
	t := interfaces.ExportTable{
		Title:   "Notas fiscais",
		Headers: []string{"Número", "Tipo", "Cliente", "Valor", "Status", "Emissão", "Chave de acesso"},
	}
	for _, d := range all {
		t.Rows = append(t.Rows, []string{
			d.Number,
			d.Type.NumberPrefix(),
			d.CustomerName,
			pkg.FormatBRL(d.Value),
			string(d.Status),
			pkg.FormatDate(d.IssuedAt),
			d.AccessKey,
		})
	}
	return t, nil
}
