package billing

import (
	"context"

	"github.com/tu-usuario/billogram-batch/internal/application/dto"
	"github.com/tu-usuario/billogram-batch/internal/domain/entity"
)

// BillogramGateway puerto de salida hacia el API de Billogram.
// La implementación concreta usa HTTP; para tests se inyecta un mock.
type BillogramGateway interface {
	// CreateCustomer registra (o actualiza) el cliente en Billogram.
	CreateCustomer(ctx context.Context, payload dto.CustomerPayload) error
	// CreateInvoice crea la factura y devuelve el id que le asignó Billogram.
	CreateInvoice(ctx context.Context, payload dto.BillogramPayload) (string, error)
	// SendInvoice ordena el envío de la factura por el método indicado.
	SendInvoice(ctx context.Context, billogramID, method string) error
}

// RowSource puerto de entrada: entrega las filas de datos de un archivo, ya
// sin encabezado. Las filas malformadas vienen con su error en el RowRecord;
// solo un archivo ilegible o inválido completo es error del método.
type RowSource interface {
	Rows(path string) ([]entity.RowRecord, error)
}
