// Package saga implements the asynchronous report pipeline: dispatch,
// build, enrich, collect. Every hop is keyed by the correlation ID so one
// saga instance is always processed in order, and each consuming stage is
// deduplicated against at-least-once redelivery.
package saga

// Bus topics of the report pipeline, in hop order.
const (
	TopicReportRequests          = "report-requests"
	TopicReportResponses         = "report-responses"
	TopicReportResponsesEnriched = "report-responses-enriched"
	TopicReportResponsesDLQ      = "report-responses-dlq"
)
