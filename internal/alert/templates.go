package alert

import (
	"fmt"

	"webhook-ops/internal/model"
)

// Template constructors fix title/severity/category and default
// auto-dismiss TTL per scenario. Callers fill in the message, source
// and metadata.

// WebhookFailure covers signature failures, unparseable payloads and
// delivery errors on the ingestion path.
func WebhookFailure(source, message string, metadata map[string]interface{}) CreateAlertInput {
	return CreateAlertInput{
		Title:    fmt.Sprintf("Webhook failure: %s", source),
		Message:  message,
		Severity: model.AlertSeverityWarning,
		Category: model.AlertCategoryWebhook,
		Source:   source,
		Metadata: metadata,
	}
}

// PaymentFailure covers failed charges and billing webhook anomalies.
func PaymentFailure(source, message string, metadata map[string]interface{}) CreateAlertInput {
	return CreateAlertInput{
		Title:    "Payment failure",
		Message:  message,
		Severity: model.AlertSeverityCritical,
		Category: model.AlertCategoryPayment,
		Source:   source,
		Metadata: metadata,
	}
}

// SystemError covers internal infrastructure failures.
func SystemError(source, message string, metadata map[string]interface{}) CreateAlertInput {
	return CreateAlertInput{
		Title:    "System error",
		Message:  message,
		Severity: model.AlertSeverityCritical,
		Category: model.AlertCategorySystem,
		Source:   source,
		Metadata: metadata,
	}
}

// SecurityIncident covers signature tampering and auth anomalies.
func SecurityIncident(source, message string, metadata map[string]interface{}) CreateAlertInput {
	return CreateAlertInput{
		Title:    "Security incident",
		Message:  message,
		Severity: model.AlertSeverityCritical,
		Category: model.AlertCategorySecurity,
		Source:   source,
		Metadata: metadata,
	}
}

// RateLimit is raised when a source exceeds its ingestion rate limit.
// Self-heals, so it auto-dismisses after an hour.
func RateLimit(source, message string, metadata map[string]interface{}) CreateAlertInput {
	return CreateAlertInput{
		Title:              fmt.Sprintf("Rate limit exceeded: %s", source),
		Message:            message,
		Severity:           model.AlertSeverityWarning,
		Category:           model.AlertCategorySecurity,
		Source:             source,
		Metadata:           metadata,
		AutoDismissMinutes: 60,
	}
}

// NewCustomer is an informational alert for operator awareness; it
// auto-dismisses after a day.
func NewCustomer(source, message string, metadata map[string]interface{}) CreateAlertInput {
	return CreateAlertInput{
		Title:              "New customer",
		Message:            message,
		Severity:           model.AlertSeverityInfo,
		Category:           model.AlertCategoryUser,
		Source:             source,
		Metadata:           metadata,
		AutoDismissMinutes: 24 * 60,
	}
}
