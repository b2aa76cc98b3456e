package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tu-usuario/billogram-batch/internal/application/dto"
	"github.com/tu-usuario/billogram-batch/internal/domain"
	domainbilling "github.com/tu-usuario/billogram-batch/internal/domain/billing"
	"github.com/tu-usuario/billogram-batch/internal/domain/entity"
	"github.com/tu-usuario/billogram-batch/pkg/logger"
)

// Options opciones de la corrida.
type Options struct {
	SkipCustomers bool   // no registrar clientes antes de facturar
	DryRun        bool   // mapear y validar sin llamar al API
	FallbackTitle string // título de reemplazo cuando el del CSV excede el largo máximo
}

// SubmitInvoicesUseCase procesa archivos CSV de facturación: una fila de
// datos es exactamente una factura y una llamada de creación al API. Las
// filas se procesan en orden y de a una; el fallo de una fila se registra y
// no detiene a las siguientes.
type SubmitInvoicesUseCase struct {
	source  RowSource
	gateway BillogramGateway
	opts    Options
	log     *logger.Logger
}

// NewSubmitInvoicesUseCase construye el caso de uso.
func NewSubmitInvoicesUseCase(source RowSource, gateway BillogramGateway, opts Options, log *logger.Logger) *SubmitInvoicesUseCase {
	if opts.FallbackTitle == "" {
		opts.FallbackTitle = "item"
	}
	return &SubmitInvoicesUseCase{
		source:  source,
		gateway: gateway,
		opts:    opts,
		log:     log,
	}
}

// SubmitFile procesa todas las filas del archivo indicado. Devuelve error solo
// ante un fallo fatal (archivo ilegible o CSV inválido); los fallos por fila
// quedan en el Report.
func (uc *SubmitInvoicesUseCase) SubmitFile(ctx context.Context, path string) (*Report, error) {
	rows, err := uc.source.Rows(path)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}

	report := &Report{
		RunID: uuid.NewString(),
		File:  path,
		Rows:  make([]RowResult, 0, len(rows)),
	}
	log := uc.log.With().Str("run_id", report.RunID).Str("file", path).Logger()

	log.Info().Int("rows", len(rows)).Msg("procesando facturas")
	for i, rec := range rows {
		var result RowResult
		if rec.Err != nil {
			// Fila malformada: se reporta y se sigue con la siguiente.
			result = RowResult{
				Invoice: entity.Invoice{State: entity.InvoiceStateFailed},
				Err:     rec.Err,
			}
		} else {
			result = uc.submitRow(ctx, rec.Data)
		}
		result.Row = i + 1
		if result.Failed() {
			log.Error().
				Err(result.Err).
				Int("row", result.Row).
				Str("customer", rec.Data.Name).
				Msg("fila con fallo")
		} else {
			log.Info().
				Int("row", result.Row).
				Str("billogram_id", result.Invoice.BillogramID).
				Str("method", result.Invoice.SendMethod).
				Str("customer", rec.Data.Name).
				Msg("factura procesada")
		}
		report.Rows = append(report.Rows, result)
	}
	log.Info().
		Int("sent", report.Sent()).
		Int("failed", report.FailedCount()).
		Msg("archivo procesado")

	return report, nil
}

// submitRow procesa una fila: mapeo y validación, alta opcional del cliente,
// creación de la factura y orden de envío.
func (uc *SubmitInvoicesUseCase) submitRow(ctx context.Context, row entity.CustomerRow) RowResult {
	invoice := entity.Invoice{
		InvoiceNumber: row.InvoiceNumber,
		State:         entity.InvoiceStateFailed,
	}

	customer, err := domainbilling.NewCustomer(row)
	if err != nil {
		return RowResult{Invoice: invoice, Err: err}
	}
	invoice.CustomerNumber = customer.CustomerNumber
	invoice.CustomerName = customer.Name

	item, err := domainbilling.NewItem(row.ArticleName, row.ArticlePrice, uc.opts.FallbackTitle)
	if err != nil {
		return RowResult{Invoice: invoice, Err: err}
	}

	method := domainbilling.PickSendMethod(customer)
	invoice.SendMethod = method

	if uc.opts.DryRun {
		invoice.State = entity.InvoiceStateDryRun
		return RowResult{Invoice: invoice}
	}

	if !uc.opts.SkipCustomers {
		if err := uc.gateway.CreateCustomer(ctx, dto.NewCustomerPayload(customer)); err != nil {
			return RowResult{Invoice: invoice, Err: fmt.Errorf("registrar cliente %s: %w", customer.Name, err)}
		}
	}

	id, err := uc.gateway.CreateInvoice(ctx, dto.NewBillogramPayload(row.InvoiceNumber, customer.CustomerNumber, item))
	if err != nil {
		return RowResult{Invoice: invoice, Err: fmt.Errorf("crear factura para %s: %w", customer.Name, err)}
	}
	invoice.BillogramID = id
	invoice.State = entity.InvoiceStateCreated

	if err := uc.gateway.SendInvoice(ctx, id, method); err != nil {
		return RowResult{Invoice: invoice, Err: fmt.Errorf("enviar factura a %s: %w (%w)", customer.Name, err, domain.ErrInvoiceNotSent)}
	}
	invoice.State = entity.InvoiceStateSent

	return RowResult{Invoice: invoice}
}
