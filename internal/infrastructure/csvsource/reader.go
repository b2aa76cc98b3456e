package csvsource

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tu-usuario/billogram-batch/internal/domain"
	"github.com/tu-usuario/billogram-batch/internal/domain/entity"
	"github.com/tu-usuario/billogram-batch/pkg/config"
)

// utf8BOM marca de orden de bytes que algunos exports de planillas anteponen.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader implementa billing.RowSource leyendo archivos CSV con encabezado.
// Las columnas se asocian por nombre a los tags csv de entity.CustomerRow.
type Reader struct {
	delimiter rune
	latin1    bool
}

// NewReader construye el lector según la configuración. Soporta utf-8 (por
// defecto) y latin-1, habitual en exports de sistemas legados.
func NewReader(cfg config.CSVConfig) (*Reader, error) {
	r := &Reader{delimiter: ','}
	if cfg.Delimiter != "" {
		r.delimiter = []rune(cfg.Delimiter)[0]
	}

	switch strings.ToLower(cfg.Encoding) {
	case "", "utf-8", "utf8":
	case "latin-1", "latin1", "iso-8859-1":
		r.latin1 = true
	default:
		return nil, fmt.Errorf("csv.encoding %q no soportada: %w", cfg.Encoding, domain.ErrConfigInvalid)
	}
	return r, nil
}

// Rows devuelve las filas de datos del archivo, en orden, sin el encabezado.
// Un archivo solo con encabezado devuelve cero filas sin error. Una fila con
// un número de campos distinto al del encabezado no es fatal: queda registrada
// con su error en el RowRecord correspondiente y las demás se devuelven.
func (r *Reader) Rows(path string) ([]entity.RowRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var src io.Reader = f
	if r.latin1 {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", path, err)
	}
	content = bytes.TrimPrefix(content, utf8BOM)

	cr := csv.NewReader(bytes.NewReader(content))
	cr.Comma = r.delimiter
	cr.LazyQuotes = true
	cr.TrimLeadingSpace = true
	// El conteo de campos se valida aquí fila por fila; un registro corto o
	// largo no debe abortar el archivo completo.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsear %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("parsear %s: %w", path, gocsv.ErrEmptyCSVFile)
	}

	header := records[0]
	data := records[1:]

	out := make([]entity.RowRecord, len(data))
	wellFormed := make([][]string, 0, len(data)+1)
	wellFormed = append(wellFormed, header)
	indices := make([]int, 0, len(data))
	for i, rec := range data {
		if len(rec) != len(header) {
			out[i] = entity.RowRecord{Err: fmt.Errorf(
				"fila %d: %d campos, el encabezado tiene %d: %w",
				i+1, len(rec), len(header), domain.ErrMalformedRow)}
			continue
		}
		wellFormed = append(wellFormed, rec)
		indices = append(indices, i)
	}

	var rows []entity.CustomerRow
	if err := gocsv.UnmarshalCSV(&sliceReader{records: wellFormed}, &rows); err != nil {
		return nil, fmt.Errorf("parsear %s: %w", path, err)
	}
	for j, row := range rows {
		out[indices[j]] = entity.RowRecord{Data: row}
	}
	return out, nil
}

// sliceReader adapta registros ya leídos y validados a la interfaz CSVReader
// de gocsv.
type sliceReader struct {
	records [][]string
	i       int
}

func (s *sliceReader) Read() ([]string, error) {
	if s.i >= len(s.records) {
		return nil, io.EOF
	}
	rec := s.records[s.i]
	s.i++
	return rec, nil
}

func (s *sliceReader) ReadAll() ([][]string, error) {
	rest := s.records[s.i:]
	s.i = len(s.records)
	return rest, nil
}
