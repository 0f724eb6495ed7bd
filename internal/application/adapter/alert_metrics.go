// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/paisa-buddy/backend/internal/domain/entity"

// AlertMetrics records emitted budget alerts.
type AlertMetrics interface {
	// AlertEmitted counts one emitted alert of the given type.
	AlertEmitted(alertType entity.AlertType)
}
