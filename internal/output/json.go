package output

import (
	"encoding/json"

	"github.com/visatax/visatax/internal/domain"
)

// JSONFormatter emits the full result as indented JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(result *domain.TaxResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
