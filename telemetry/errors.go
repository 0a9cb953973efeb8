package telemetry

import (
	"fmt"
	"strings"
)

// ErrorUnknownExporter is returned for an exporter name that is not supported.
type ErrorUnknownExporter struct {
	Kind string
	Name string
}

func (e *ErrorUnknownExporter) Error() string {
	return fmt.Sprintf("unknown %s exporter %q, supported exporters: %s", e.Kind, e.Name, strings.Join(AllExporterTypes, ", "))
}
