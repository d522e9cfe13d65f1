package report

import (
	"encoding/json"
	"fmt"

	"github.com/beevik/etree"
	"github.com/tirasundara/spending-dashboard/internal/domain"
)

// Supported output formats
const (
	FormatJSON = "json"
	FormatXML  = "xml"
)

const indent = "    "

// OutputFormatter defines the interface for formatting dashboard reports
type OutputFormatter interface {
	Format(r domain.Report) ([]byte, error)
	FileExtension() string
	ContentType() string
}

// NewFormatter returns the formatter for a format name
func NewFormatter(format string, prettyPrint bool) (OutputFormatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(prettyPrint), nil
	case FormatXML:
		return NewXMLFormatter(prettyPrint), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// JSONFormatter formats dashboard reports as JSON
type JSONFormatter struct {
	PrettyPrint bool
}

func NewJSONFormatter(prettyPrint bool) *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for JSON
func (f *JSONFormatter) Format(r domain.Report) ([]byte, error) {
	doc := NewDocument(r)
	if f.PrettyPrint {
		return json.MarshalIndent(doc, "", indent)
	}
	return json.Marshal(doc)
}

func (f *JSONFormatter) FileExtension() string {
	return FormatJSON
}

func (f *JSONFormatter) ContentType() string {
	return "application/json"
}

// XMLFormatter formats dashboard reports as XML, using the JSON keys as element names.
// Undefined values are written as empty elements carrying nil="true".
type XMLFormatter struct {
	PrettyPrint bool
}

func NewXMLFormatter(prettyPrint bool) *XMLFormatter {
	return &XMLFormatter{
		PrettyPrint: prettyPrint,
	}
}

// Format implements the OutputFormatter interface for XML
func (f *XMLFormatter) Format(r domain.Report) ([]byte, error) {
	doc := NewDocument(r)

	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := xml.CreateElement("dashboard")

	summary := root.CreateElement("summary")
	summary.CreateElement("total_spent").SetText(doc.Summary.TotalSpent.Text())
	writeOptional(summary, "avg_monthly_sub", doc.Summary.AvgMonthlySub)
	writeOptional(summary, "weekend_avg", doc.Summary.WeekendAvg)
	writeOptional(summary, "weekday_avg", doc.Summary.WeekdayAvg)
	summary.CreateElement("saving_hint").SetText(doc.Summary.SavingHint)

	trend := root.CreateElement("monthly_trend")
	for _, m := range doc.MonthlyTrend {
		entry := trend.CreateElement("entry")
		entry.CreateElement("month").SetText(m.Month)
		entry.CreateElement("amount").SetText(m.Amount.Text())
	}

	dist := root.CreateElement("category_distribution")
	for _, c := range doc.CategoryDistribution {
		entry := dist.CreateElement("entry")
		entry.CreateElement("category").SetText(c.Category)
		entry.CreateElement("amount").SetText(c.Amount.Text())
	}

	groups := root.CreateElement("weekend_vs_weekday")
	for _, g := range doc.WeekendVsWeekday {
		entry := groups.CreateElement("entry")
		entry.CreateElement("type").SetText(g.Type)
		entry.CreateElement("amount").SetText(g.Amount.Text())
	}

	recent := root.CreateElement("recent_transactions")
	for _, t := range doc.RecentTransactions {
		entry := recent.CreateElement("entry")
		entry.CreateElement("date").SetText(t.Date)
		entry.CreateElement("description").SetText(t.Description)
		entry.CreateElement("category").SetText(t.Category)
		entry.CreateElement("amount").SetText(t.Amount)
	}

	if f.PrettyPrint {
		xml.Indent(len(indent))
	}

	out, err := xml.WriteToBytes()
	if err != nil {
		return nil, fmt.Errorf("writing XML: %w", err)
	}
	return out, nil
}

func (f *XMLFormatter) FileExtension() string {
	return FormatXML
}

func (f *XMLFormatter) ContentType() string {
	return "application/xml"
}

func writeOptional(parent *etree.Element, tag string, m *Money) {
	el := parent.CreateElement(tag)
	if m == nil {
		el.CreateAttr("nil", "true")
		return
	}
	el.SetText(m.Text())
}
