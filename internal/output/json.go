package output

import (
	"encoding/json"
	"io"

	"github.com/tabscrape/tabscrape/pkg/tabular"
)

// jsonWriter emits the table rows as an array of column-keyed objects.
type jsonWriter struct {
	w      io.Writer
	pretty bool
	indent string
}

func (j *jsonWriter) Write(t tabular.Table) error {
	enc := json.NewEncoder(j.w)
	if j.pretty {
		enc.SetIndent("", j.indent)
	}
	return enc.Encode(t.Records())
}
