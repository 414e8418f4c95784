package output

import (
	"fmt"
	"io"
	"os"

	"github.com/owenrumney/go-sarif/v3/pkg/report/v210/sarif"

	"github.com/reglet-dev/fieldset/internal/engine"
)

// SARIFFormatter formats run results as SARIF 2.1.0 JSON. Each validation
// error kind becomes a SARIF rule; each document becomes a result.
type SARIFFormatter struct {
	writer  io.Writer
	version string
}

// NewSARIFFormatter creates a new SARIF formatter. version is the fieldset
// build version embedded in the tool driver block.
func NewSARIFFormatter(w io.Writer, version string) *SARIFFormatter {
	return &SARIFFormatter{
		writer:  w,
		version: version,
	}
}

// sarifRules describes the fixed validation error taxonomy.
var sarifRules = []struct {
	id, description string
}{
	{engine.KindUnknownField, "A supplied field name is not part of the record's resolved schema."},
	{engine.KindTypeMismatch, "A supplied value's type differs from the field's declared type."},
	{engine.KindPrecondition, "A correctly typed value was rejected by the field's precondition."},
	{engine.KindMissingFields, "One or more required fields were absent from the supplied values."},
	{engine.KindUnknownRecord, "The document names a record type the schema does not declare."},
}

// Format writes the run result as SARIF 2.1.0 JSON.
func (f *SARIFFormatter) Format(result *engine.RunResult) error {
	report := sarif.NewReport()

	run := sarif.NewRunWithInformationURI("fieldset", "https://github.com/reglet-dev/fieldset")
	run.Tool.Driver.Version = &f.version

	f.addRules(run)
	f.addResults(run, result)
	f.addInvocation(run, result)

	props := sarif.NewPropertyBag()
	props.Add("summary", result.Summary)
	run.WithProperties(props)

	report.AddRun(run)

	if err := report.Write(f.writer); err != nil {
		return fmt.Errorf("failed to write SARIF output: %w", err)
	}

	_, err := f.writer.Write([]byte("\n"))
	return err
}

func (f *SARIFFormatter) addRules(run *sarif.Run) {
	for _, r := range sarifRules {
		rule := sarif.NewReportingDescriptor().WithID(r.id)
		rule.WithName(r.id)
		rule.WithShortDescription(&sarif.MultiformatMessageString{
			Text: ptrString(r.description),
		})
		rule.WithDefaultConfiguration(&sarif.ReportingConfiguration{
			Level: "error",
		})
		run.Tool.Driver.AddRule(rule)
	}
}

func (f *SARIFFormatter) addResults(run *sarif.Run, result *engine.RunResult) {
	for _, doc := range result.Documents {
		if doc.Status == engine.StatusPass {
			continue
		}

		res := sarif.NewRuleResult(doc.Kind)
		res.Level = "error"
		res.Kind = "fail"
		res.Message = sarif.NewTextMessage(doc.Message)

		props := sarif.NewPropertyBag()
		props.Add("document_index", doc.Index)
		props.Add("record", doc.Record)
		props.Add("duration_ms", doc.Duration.Milliseconds())
		res.WithProperties(props)

		run.AddResult(res)
	}
}

func (f *SARIFFormatter) addInvocation(run *sarif.Run, result *engine.RunResult) {
	invocation := sarif.NewInvocation()

	invocation.ExecutionSuccessful = ptrBool(result.Summary.ErrorDocuments == 0)

	startTime := result.StartTime.UTC().Format("2006-01-02T15:04:05.000Z")
	endTime := result.EndTime.UTC().Format("2006-01-02T15:04:05.000Z")
	invocation.StartTimeUtc = &startTime
	invocation.EndTimeUtc = &endTime

	if hostname, err := os.Hostname(); err == nil {
		invocation.Machine = &hostname
	}

	props := sarif.NewPropertyBag()
	props.Add("schemaName", result.SchemaName)
	props.Add("schemaVersion", result.SchemaVersion)
	props.Add("runId", result.RunID)
	invocation.WithProperties(props)

	run.AddInvocation(invocation)
}

func ptrString(s string) *string {
	return &s
}

func ptrBool(b bool) *bool {
	return &b
}
