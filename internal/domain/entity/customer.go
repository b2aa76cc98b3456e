package entity

// CustomerRow es una fila de datos del CSV de entrada. Los tags csv fijan en un
// solo lugar el contrato de columnas entre el productor del archivo y el mapeo
// hacia la API; cambiar una columna es cambiar aquí el tag, no lógica dispersa.
type CustomerRow struct {
	CustomerNumber string `csv:"customer_number"`
	Name           string `csv:"name"`
	Email          string `csv:"email"`
	PhoneNumber    string `csv:"phone_number"`
	StreetAddress  string `csv:"street_address"`
	PostalCode     string `csv:"postal_code"`
	City           string `csv:"city"`
	InvoiceNumber  string `csv:"invoice_number"`
	ArticleName    string `csv:"article_name"`
	ArticlePrice   string `csv:"article_price"`
}

// RowRecord resultado de leer una fila de datos: los campos mapeados o el
// error de parseo de esa fila. Una fila malformada no invalida el archivo;
// viaja con su error para que el reporte la registre y el resto se procese.
type RowRecord struct {
	Data CustomerRow
	Err  error
}

// Address dirección principal del cliente.
type Address struct {
	StreetAddress string
	ZipCode       string
	City          string
}

// Contact datos de contacto del cliente; determinan el método de envío.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Customer cliente tal como lo registra Billogram.
type Customer struct {
	CustomerNumber string
	Name           string
	Address        Address
	Contact        Contact
}
