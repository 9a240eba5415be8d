// Package domain contains the core business types for voqa: documents,
// answer extraction results, language configurations, and evaluation data.
// Types here have no dependencies on adapters or external services.
package domain
