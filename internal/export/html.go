package export

import (
	"html/template"
	"io"

	"github.com/talqui/cx-insight/internal"
)

// HTMLExporter renders the self-contained static report page.
type HTMLExporter struct{}

var htmlTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head>
    <title>CX Report</title>
    <meta charset="utf-8">
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; }
        .header { background: #1f77b4; color: white; padding: 20px; border-radius: 10px; }
        .metric { background: #f8f9fa; padding: 15px; margin: 10px 0; border-radius: 5px; }
        .insight { background: #e8f5e8; padding: 10px; margin: 5px 0; border-radius: 5px; }
        table { width: 100%; border-collapse: collapse; margin: 20px 0; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background-color: #f2f2f2; }
        .footer { margin-top: 50px; text-align: center; color: #666; }
    </style>
</head>
<body>
    <div class="header">
        <h1>CX Report</h1>
        <p>Generated: {{.GeneratedAt.Format "2006-01-02 15:04:05"}}</p>
    </div>

    <h2>Summary</h2>
    {{with .Summary.Messages}}
    <div class="metric">
        <h3>Messages</h3>
        <ul>
            <li>Total: {{.Total}}</li>
            <li>Inbound: {{.Inbound}}</li>
            <li>Outbound: {{.Outbound}}</li>
            <li>Unique contacts: {{.UniqueContacts}}</li>
            <li>Unique sessions: {{.UniqueSessions}}</li>
        </ul>
    </div>
    {{end}}
    {{with .Summary.Sessions}}
    <div class="metric">
        <h3>Sessions</h3>
        <ul>
            <li>Total: {{.Total}}</li>
            <li>Average duration: {{printf "%.1f" .AvgDurationMinutes}} min</li>
            <li>Average queue time: {{printf "%.1f" .AvgQueueMinutes}} min</li>
            <li>Average rating: {{printf "%.2f" .AvgRating}}</li>
            <li>Unique operators: {{.UniqueOperators}}</li>
        </ul>
    </div>
    {{end}}

    {{if .Insights}}
    <h2>Insights</h2>
    {{range .Insights}}<div class="insight">{{.}}</div>
    {{end}}
    {{end}}

    {{with .Operators}}
    <h2>Operator Performance</h2>
    <table>
        <tr><th>Operator</th><th>Sessions</th><th>Avg Duration (s)</th><th>Avg Rating</th><th>Efficiency (sess/h)</th><th>Satisfaction</th></tr>
        {{range .Operators}}
        <tr><td>{{.Operator}}</td><td>{{.Sessions}}</td><td>{{printf "%.1f" .AvgDuration}}</td><td>{{printf "%.2f" .AvgRating}}</td><td>{{printf "%.1f" .Efficiency}}</td><td>{{printf "%.1f" .SatisfactionRate}}%</td></tr>
        {{end}}
    </table>
    {{end}}

    {{with .Sentiment}}
    <h2>Sentiment</h2>
    <div class="metric">
        <ul>
            <li>Positive: {{.Positives}}</li>
            <li>Neutral: {{.Neutrals}}</li>
            <li>Negative: {{.Negatives}}</li>
        </ul>
    </div>
    {{if .NegativeSamples}}
    <h3>Sample Negative Messages</h3>
    <ul>
        {{range .NegativeSamples}}<li>{{.}}</li>
        {{end}}
    </ul>
    {{end}}
    {{end}}

    {{with .Segments}}
    <h2>Customer Segments</h2>
    <table>
        <tr><th>Tier</th><th>Contacts</th><th>Avg Sessions</th><th>Avg Messages</th><th>Avg Relationship (days)</th></tr>
        {{range .Tiers}}
        <tr><td>{{.Tier}}</td><td>{{.Contacts}}</td><td>{{printf "%.2f" .AvgSessions}}</td><td>{{printf "%.2f" .AvgMessages}}</td><td>{{printf "%.2f" .AvgRelationshipDays}}</td></tr>
        {{end}}
    </table>
    {{end}}

    <div class="footer">
        <p>cx-insight | report generated automatically</p>
    </div>
</body>
</html>
`))

// Export exports a report to HTML format
func (e *HTMLExporter) Export(report *internal.Report, w io.Writer) error {
	return htmlTemplate.Execute(w, report)
}

// Extension returns the file extension for this format
func (e *HTMLExporter) Extension() string {
	return "html"
}
