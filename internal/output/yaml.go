package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/tabscrape/tabscrape/pkg/tabular"
)

// yamlWriter emits the table rows as a YAML sequence of mappings.
type yamlWriter struct {
	w io.Writer
}

func (y *yamlWriter) Write(t tabular.Table) error {
	enc := yaml.NewEncoder(y.w)
	defer enc.Close()
	return enc.Encode(t.Records())
}
