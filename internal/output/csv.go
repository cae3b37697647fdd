package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/visatax/visatax/internal/domain"
)

// CSVFormatter emits a one-row summary, suitable for batch evaluation of many
// profiles with a shared header.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"TaxYear", "AnnualGross", "AGI", "StandardDeduction", "TaxableIncome",
		"FederalTax", "FICATotal", "StateTax", "TotalTax", "TakeHome",
		"FederalRefund", "EffectiveRate", "MarginalRate",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	row := []string{
		strconv.Itoa(result.TaxYear),
		result.AnnualGross.StringFixed(2),
		result.AGI.StringFixed(2),
		result.StandardDeduction.StringFixed(2),
		result.TaxableIncome.StringFixed(2),
		result.FederalTax.StringFixed(2),
		result.FICA.Total.StringFixed(2),
		result.State.Tax.StringFixed(2),
		result.TotalTax.StringFixed(2),
		result.TakeHome.StringFixed(2),
		result.FederalRefund.StringFixed(2),
		result.EffectiveRate.StringFixed(4),
		result.MarginalRate.StringFixed(4),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
